package applicant

import (
	"errors"
	"fmt"
)

const (
	MinAge      = 18
	MaxAge      = 75
	MinDuration = 4
	MaxDuration = 72
)

// Input is one applicant as captured by the form. It is a value type and is
// never mutated after capture.
type Input struct {
	Sex             Sex
	Age             int
	Job             Job
	Housing         Housing
	SavingAccount   SavingAccount
	CheckingAccount CheckingAccount
	CreditAmount    int
	Duration        int
	Purpose         Purpose
}

// Default mirrors the initial state of the form widgets.
func Default() Input {
	return Input{
		Sex:             Male,
		Age:             30,
		Job:             0,
		Housing:         HousingOwn,
		SavingAccount:   SavingLittle,
		CheckingAccount: CheckingLittle,
		CreditAmount:    1000,
		Duration:        24,
		Purpose:         PurposeRadioTV,
	}
}

// Validate reports every out-of-range field. The encoder does not call it;
// range checks belong to whoever captures the input.
func (in Input) Validate() error {
	var errs error
	if in.Age < MinAge || in.Age > MaxAge {
		errs = errors.Join(errs, fmt.Errorf("age %d out of range [%d,%d]", in.Age, MinAge, MaxAge))
	}
	if in.Duration < MinDuration || in.Duration > MaxDuration {
		errs = errors.Join(errs, fmt.Errorf("duration %d out of range [%d,%d]", in.Duration, MinDuration, MaxDuration))
	}
	if in.CreditAmount < 0 {
		errs = errors.Join(errs, fmt.Errorf("credit amount %d is negative", in.CreditAmount))
	}
	if in.Job < 0 || in.Job > 3 {
		errs = errors.Join(errs, fmt.Errorf("job %d out of range [0,3]", in.Job))
	}
	return errs
}
