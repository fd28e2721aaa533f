package applicant_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trknhr/creditrisk/internal/applicant"
)

func TestParseSavingAccount_AcceptsBothSpellings(t *testing.T) {
	for _, v := range []string{"quite rich", "quite_rich", "Quite Rich"} {
		got, err := applicant.ParseSavingAccount(v)
		require.NoError(t, err, v)
		assert.Equal(t, applicant.SavingQuiteRich, got)
	}

	got, err := applicant.ParseSavingAccount("no_info")
	require.NoError(t, err)
	assert.Equal(t, applicant.SavingNoInfo, got)
}

func TestParse_UnknownCategoryIsRejected(t *testing.T) {
	_, err := applicant.ParseHousing("castle")
	assert.True(t, errors.Is(err, applicant.ErrUnknownCategory))

	_, err = applicant.ParsePurpose("vacation")
	assert.True(t, errors.Is(err, applicant.ErrUnknownCategory))

	_, err = applicant.ParseJob("7")
	assert.True(t, errors.Is(err, applicant.ErrUnknownCategory))

	_, err = applicant.ParseSex("unknown")
	assert.True(t, errors.Is(err, applicant.ErrUnknownCategory))
}

func TestParsePurpose_DatasetSpellings(t *testing.T) {
	for _, p := range applicant.AllPurposes() {
		got, err := applicant.ParsePurpose(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	got, err := applicant.ParsePurpose("RADIO/TV")
	require.NoError(t, err)
	assert.Equal(t, applicant.PurposeRadioTV, got)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, applicant.Default().Validate())

	in := applicant.Default()
	in.Age = 17
	in.Duration = 100
	in.CreditAmount = -5
	err := in.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "age 17")
	assert.Contains(t, err.Error(), "duration 100")
	assert.Contains(t, err.Error(), "credit amount -5")
}
