// Package features turns a captured applicant into the numeric feature
// vector the credit model was fit on.
package features

import (
	"github.com/trknhr/creditrisk/internal/applicant"
)

const (
	ColSex          = "Sex"
	ColAge          = "Age"
	ColJob          = "Job"
	ColCreditAmount = "Credit amount"
	ColDuration     = "Duration"

	HousingPrefix  = "Housing_"
	SavingPrefix   = "Saving accounts_"
	CheckingPrefix = "Checking account_"
	PurposePrefix  = "Purpose_"
)

// Encode is pure. Each one-hot group carries exactly one set indicator for
// a known category, including the value a model may treat as its reference;
// Reindex drops such columns when the model does not expect them.
func Encode(in applicant.Input) Vector {
	v := newVector(40)

	v.set(Feature{ColSex, sexCode(in.Sex)})
	v.set(Feature{ColAge, float64(in.Age)})
	v.set(Feature{ColJob, float64(in.Job)})
	v.set(Feature{ColCreditAmount, float64(in.CreditAmount)})
	v.set(Feature{ColDuration, float64(in.Duration)})

	v.setAll(AgeGroupOf(in.Age).Indicators())
	v.setAll(CreditBinOf(in.CreditAmount).Indicators())

	v.setAll(HousingIndicators(in.Housing))
	v.setAll(SavingIndicators(in.SavingAccount))
	v.setAll(CheckingIndicators(in.CheckingAccount))
	v.setAll(PurposeIndicators(in.Purpose))

	return *v
}

// EncodeFor encodes and aligns to the model's expected columns in one step.
func EncodeFor(in applicant.Input, columns []string) []float64 {
	return Encode(in).Reindex(columns)
}

func sexCode(s applicant.Sex) float64 {
	if s == applicant.Female {
		return 1
	}
	return 0
}

func HousingIndicators(h applicant.Housing) []Feature {
	return oneHot(HousingPrefix, h, applicant.AllHousing())
}

func SavingIndicators(s applicant.SavingAccount) []Feature {
	return oneHot(SavingPrefix, s, applicant.AllSavingAccounts())
}

func CheckingIndicators(c applicant.CheckingAccount) []Feature {
	return oneHot(CheckingPrefix, c, applicant.AllCheckingAccounts())
}

func PurposeIndicators(p applicant.Purpose) []Feature {
	return oneHot(PurposePrefix, p, applicant.AllPurposes())
}

// oneHot emits one column per known value. A value outside known leaves
// every indicator at 0.
func oneHot[T ~string](prefix string, value T, known []T) []Feature {
	out := make([]Feature, len(known))
	for i, k := range known {
		out[i] = Feature{Name: prefix + string(k), Value: indicator(k == value)}
	}
	return out
}
