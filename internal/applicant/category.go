package applicant

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownCategory = errors.New("unknown category")

type Sex int

const (
	Male Sex = iota
	Female
)

func (s Sex) String() string {
	switch s {
	case Male:
		return "male"
	case Female:
		return "female"
	default:
		return fmt.Sprintf("Sex(%d)", int(s))
	}
}

func AllSex() []Sex { return []Sex{Male, Female} }

func ParseSex(v string) (Sex, error) {
	for _, s := range AllSex() {
		if normalize(v) == normalize(s.String()) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("sex %q: %w", v, ErrUnknownCategory)
}

type Housing string

const (
	HousingOwn  Housing = "own"
	HousingFree Housing = "free"
	HousingRent Housing = "rent"
)

func (h Housing) String() string { return string(h) }

func AllHousing() []Housing { return []Housing{HousingOwn, HousingFree, HousingRent} }

func ParseHousing(v string) (Housing, error) {
	return parseCategory("housing", v, AllHousing())
}

type SavingAccount string

const (
	SavingLittle    SavingAccount = "little"
	SavingModerate  SavingAccount = "moderate"
	SavingRich      SavingAccount = "rich"
	SavingQuiteRich SavingAccount = "quite rich"
	SavingNoInfo    SavingAccount = "no_info"
)

func (s SavingAccount) String() string { return string(s) }

func AllSavingAccounts() []SavingAccount {
	return []SavingAccount{SavingLittle, SavingModerate, SavingRich, SavingQuiteRich, SavingNoInfo}
}

func ParseSavingAccount(v string) (SavingAccount, error) {
	return parseCategory("saving account", v, AllSavingAccounts())
}

type CheckingAccount string

const (
	CheckingLittle   CheckingAccount = "little"
	CheckingModerate CheckingAccount = "moderate"
	CheckingRich     CheckingAccount = "rich"
	CheckingNoInfo   CheckingAccount = "no_info"
)

func (c CheckingAccount) String() string { return string(c) }

func AllCheckingAccounts() []CheckingAccount {
	return []CheckingAccount{CheckingLittle, CheckingModerate, CheckingRich, CheckingNoInfo}
}

func ParseCheckingAccount(v string) (CheckingAccount, error) {
	return parseCategory("checking account", v, AllCheckingAccounts())
}

type Purpose string

const (
	PurposeRadioTV           Purpose = "radio/TV"
	PurposeEducation         Purpose = "education"
	PurposeFurniture         Purpose = "furniture/equipment"
	PurposeNewCar            Purpose = "new car"
	PurposeUsedCar           Purpose = "used car"
	PurposeBusiness          Purpose = "business"
	PurposeDomesticAppliance Purpose = "domestic appliance"
	PurposeRepairs           Purpose = "repairs"
	PurposeOther             Purpose = "other"
)

func (p Purpose) String() string { return string(p) }

// AllPurposes lists purposes in the order the form offers them.
func AllPurposes() []Purpose {
	return []Purpose{
		PurposeRadioTV, PurposeEducation, PurposeFurniture, PurposeNewCar, PurposeUsedCar,
		PurposeBusiness, PurposeDomesticAppliance, PurposeRepairs, PurposeOther,
	}
}

func ParsePurpose(v string) (Purpose, error) {
	return parseCategory("purpose", v, AllPurposes())
}

// Job is the skill level recorded in the dataset (0 unskilled non-resident .. 3 highly skilled).
type Job int

func AllJobs() []Job { return []Job{0, 1, 2, 3} }

func (j Job) String() string { return fmt.Sprintf("%d", int(j)) }

func ParseJob(v string) (Job, error) {
	for _, j := range AllJobs() {
		if strings.TrimSpace(v) == j.String() {
			return j, nil
		}
	}
	return 0, fmt.Errorf("job %q: %w", v, ErrUnknownCategory)
}

func parseCategory[T ~string](field, v string, allowed []T) (T, error) {
	key := normalize(v)
	for _, a := range allowed {
		if key == normalize(string(a)) {
			return a, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%s %q: %w", field, v, ErrUnknownCategory)
}

// normalize folds case and treats '_' and ' ' as the same separator,
// so "quite_rich" matches "quite rich". "no_info" folds the same way.
func normalize(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	return strings.ReplaceAll(v, "_", " ")
}
