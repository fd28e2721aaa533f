package features

import "fmt"

// AgeGroup is derived once from age. Young is the reference category and has
// no indicator column.
type AgeGroup int

const (
	Young AgeGroup = iota
	Adult
	Senior
	Elder
)

var ageGroupNames = [...]string{"Young", "Adult", "Senior", "Elder"}

func (g AgeGroup) String() string {
	if g < 0 || int(g) >= len(ageGroupNames) {
		return fmt.Sprintf("AgeGroup(%d)", int(g))
	}
	return ageGroupNames[g]
}

func AgeGroupOf(age int) AgeGroup {
	switch {
	case age <= 25:
		return Young
	case age <= 35:
		return Adult
	case age <= 50:
		return Senior
	default:
		return Elder
	}
}

// Indicators returns the Age_group_* columns with exactly the matching one set.
func (g AgeGroup) Indicators() []Feature {
	return bucketIndicators("Age_group_", int(g), ageGroupNames[:])
}

// CreditBin is derived once from the credit amount. Low is the reference
// category and has no indicator column.
type CreditBin int

const (
	CreditLow CreditBin = iota
	CreditMedium
	CreditHigh
	CreditVeryHigh
)

var creditBinNames = [...]string{"Low", "Medium", "High", "Very_High"}

func (b CreditBin) String() string {
	if b < 0 || int(b) >= len(creditBinNames) {
		return fmt.Sprintf("CreditBin(%d)", int(b))
	}
	return creditBinNames[b]
}

func CreditBinOf(amount int) CreditBin {
	switch {
	case amount <= 1365:
		return CreditLow
	case amount <= 2319:
		return CreditMedium
	case amount <= 3972:
		return CreditHigh
	default:
		return CreditVeryHigh
	}
}

func (b CreditBin) Indicators() []Feature {
	return bucketIndicators("Credit_bin_", int(b), creditBinNames[:])
}

// bucketIndicators skips index 0, the reference bucket.
func bucketIndicators(prefix string, selected int, names []string) []Feature {
	out := make([]Feature, 0, len(names)-1)
	for i := 1; i < len(names); i++ {
		out = append(out, Feature{Name: prefix + names[i], Value: indicator(i == selected)})
	}
	return out
}

func indicator(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
