package features_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trknhr/creditrisk/internal/applicant"
	"github.com/trknhr/creditrisk/internal/features"
)

func valueOf(t *testing.T, v features.Vector, name string) float64 {
	t.Helper()
	got, ok := v.Get(name)
	require.True(t, ok, "column %q missing", name)
	return got
}

func groupSum(v features.Vector, prefix string) (sum float64, n int) {
	for _, name := range v.Names() {
		if strings.HasPrefix(name, prefix) {
			val, _ := v.Get(name)
			sum += val
			n++
		}
	}
	return sum, n
}

func TestEncode_ReferenceExample(t *testing.T) {
	in := applicant.Input{
		Sex:             applicant.Male,
		Age:             30,
		Job:             2,
		Housing:         applicant.HousingOwn,
		SavingAccount:   applicant.SavingLittle,
		CheckingAccount: applicant.CheckingModerate,
		CreditAmount:    1000,
		Duration:        24,
		Purpose:         applicant.PurposeEducation,
	}
	v := features.Encode(in)

	assert.Equal(t, 0.0, valueOf(t, v, "Sex"))
	assert.Equal(t, 30.0, valueOf(t, v, "Age"))
	assert.Equal(t, 2.0, valueOf(t, v, "Job"))
	assert.Equal(t, 1000.0, valueOf(t, v, "Credit amount"))
	assert.Equal(t, 24.0, valueOf(t, v, "Duration"))

	assert.Equal(t, 1.0, valueOf(t, v, "Age_group_Adult"))
	assert.Equal(t, 0.0, valueOf(t, v, "Age_group_Senior"))
	assert.Equal(t, 0.0, valueOf(t, v, "Age_group_Elder"))

	assert.Equal(t, 0.0, valueOf(t, v, "Credit_bin_Medium"))
	assert.Equal(t, 0.0, valueOf(t, v, "Credit_bin_High"))
	assert.Equal(t, 0.0, valueOf(t, v, "Credit_bin_Very_High"))

	assert.Equal(t, 1.0, valueOf(t, v, "Housing_own"))
	assert.Equal(t, 0.0, valueOf(t, v, "Housing_free"))

	assert.Equal(t, 1.0, valueOf(t, v, "Saving accounts_little"))
	assert.Equal(t, 0.0, valueOf(t, v, "Saving accounts_moderate"))
	assert.Equal(t, 0.0, valueOf(t, v, "Saving accounts_quite rich"))
	assert.Equal(t, 0.0, valueOf(t, v, "Saving accounts_rich"))

	assert.Equal(t, 1.0, valueOf(t, v, "Checking account_moderate"))
	assert.Equal(t, 0.0, valueOf(t, v, "Checking account_little"))
	assert.Equal(t, 0.0, valueOf(t, v, "Checking account_rich"))

	assert.Equal(t, 1.0, valueOf(t, v, "Purpose_education"))
	sum, _ := groupSum(v, features.PurposePrefix)
	assert.Equal(t, 1.0, sum)
}

func TestEncode_FemaleIsOne(t *testing.T) {
	in := applicant.Default()
	in.Sex = applicant.Female
	assert.Equal(t, 1.0, valueOf(t, features.Encode(in), "Sex"))
}

func TestEncode_VeryHighCredit(t *testing.T) {
	in := applicant.Default()
	in.CreditAmount = 5000
	v := features.Encode(in)

	assert.Equal(t, 1.0, valueOf(t, v, "Credit_bin_Very_High"))
	assert.Equal(t, 0.0, valueOf(t, v, "Credit_bin_Medium"))
	assert.Equal(t, 0.0, valueOf(t, v, "Credit_bin_High"))
}

func TestEncode_ExactlyOneIndicatorPerGroup(t *testing.T) {
	groups := []struct {
		prefix string
		size   int
	}{
		{features.HousingPrefix, len(applicant.AllHousing())},
		{features.SavingPrefix, len(applicant.AllSavingAccounts())},
		{features.CheckingPrefix, len(applicant.AllCheckingAccounts())},
		{features.PurposePrefix, len(applicant.AllPurposes())},
	}

	for _, h := range applicant.AllHousing() {
		for _, s := range applicant.AllSavingAccounts() {
			for _, c := range applicant.AllCheckingAccounts() {
				for _, p := range applicant.AllPurposes() {
					in := applicant.Default()
					in.Housing, in.SavingAccount, in.CheckingAccount, in.Purpose = h, s, c, p
					v := features.Encode(in)
					for _, g := range groups {
						sum, n := groupSum(v, g.prefix)
						if sum != 1 || n != g.size {
							t.Fatalf("%s group for %v/%v/%v/%v: sum=%v columns=%d", g.prefix, h, s, c, p, sum, n)
						}
					}
				}
			}
		}
	}
}

func TestEncode_UnknownCategoryLeavesBlockAtZero(t *testing.T) {
	in := applicant.Default()
	in.Housing = applicant.Housing("castle")
	v := features.Encode(in)

	sum, n := groupSum(v, features.HousingPrefix)
	assert.Equal(t, 0.0, sum)
	assert.Equal(t, len(applicant.AllHousing()), n)
}

func TestAgeGroup_MutuallyExclusive(t *testing.T) {
	for age := applicant.MinAge; age <= applicant.MaxAge; age++ {
		var set int
		for _, f := range features.AgeGroupOf(age).Indicators() {
			set += int(f.Value)
		}
		want := 1
		if age <= 25 {
			want = 0
		}
		if set != want {
			t.Fatalf("age %d: %d indicators set, want %d", age, set, want)
		}
	}
}

func TestAgeGroup_Boundaries(t *testing.T) {
	cases := map[int]features.AgeGroup{
		18: features.Young, 25: features.Young,
		26: features.Adult, 35: features.Adult,
		36: features.Senior, 50: features.Senior,
		51: features.Elder, 75: features.Elder,
	}
	for age, want := range cases {
		assert.Equal(t, want, features.AgeGroupOf(age), "age %d", age)
	}
}

func TestBuckets_StringOutOfRange(t *testing.T) {
	assert.Equal(t, "Elder", features.Elder.String())
	assert.Equal(t, "AgeGroup(7)", features.AgeGroup(7).String())
	assert.Equal(t, "Very_High", features.CreditVeryHigh.String())
	assert.Equal(t, "CreditBin(-1)", features.CreditBin(-1).String())
}

func TestCreditBin_Boundaries(t *testing.T) {
	cases := map[int]features.CreditBin{
		0: features.CreditLow, 1365: features.CreditLow,
		1366: features.CreditMedium, 2319: features.CreditMedium,
		2320: features.CreditHigh, 3972: features.CreditHigh,
		3973: features.CreditVeryHigh, 1_000_000: features.CreditVeryHigh,
	}
	for amount, want := range cases {
		bin := features.CreditBinOf(amount)
		assert.Equal(t, want, bin, "amount %d", amount)

		var set int
		for _, f := range bin.Indicators() {
			set += int(f.Value)
		}
		if bin == features.CreditLow {
			assert.Equal(t, 0, set)
		} else {
			assert.Equal(t, 1, set)
		}
	}
}

func TestReindex_MatchesExpectedColumns(t *testing.T) {
	for _, sex := range applicant.AllSex() {
		for _, h := range applicant.AllHousing() {
			for _, s := range applicant.AllSavingAccounts() {
				for _, c := range applicant.AllCheckingAccounts() {
					for _, p := range applicant.AllPurposes() {
						in := applicant.Default()
						in.Sex, in.Housing, in.SavingAccount, in.CheckingAccount, in.Purpose = sex, h, s, c, p

						enc := features.Encode(in)
						out := features.EncodeFor(in, features.DefaultColumns)
						require.Len(t, out, len(features.DefaultColumns))
						for i, col := range features.DefaultColumns {
							want, _ := enc.Get(col)
							require.Equal(t, want, out[i], "%+v column %q", in, col)
						}
					}
				}
			}
		}
	}
}

func TestReindex_ReferenceCategoriesHaveNoColumn(t *testing.T) {
	in := applicant.Default()
	in.Housing = applicant.HousingRent
	out := features.EncodeFor(in, features.DefaultColumns)

	for i, col := range features.DefaultColumns {
		if strings.HasPrefix(col, features.HousingPrefix) {
			assert.Equal(t, 0.0, out[i], col)
		}
	}
}

func TestReindex_FillsMissingAndDropsExtra(t *testing.T) {
	in := applicant.Default()
	in.Housing = applicant.HousingRent
	columns := []string{"Duration", "Not a feature", "Housing_own", "Age"}

	out := features.Encode(in).Reindex(columns)

	assert.Equal(t, []float64{24, 0, 0, 30}, out)
}
