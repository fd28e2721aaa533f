package features

// DefaultColumns is the column order of the reference German credit model.
// Reference categories (Housing rent, no_info accounts, business purpose,
// Young, Low) have no column.
var DefaultColumns = []string{
	ColSex, ColAge, ColJob, ColCreditAmount, ColDuration,
	"Housing_free", "Housing_own",
	"Saving accounts_little", "Saving accounts_moderate", "Saving accounts_quite rich", "Saving accounts_rich",
	"Checking account_little", "Checking account_moderate", "Checking account_rich",
	"Purpose_domestic appliance", "Purpose_education", "Purpose_furniture/equipment", "Purpose_new car",
	"Purpose_other", "Purpose_radio/TV", "Purpose_repairs", "Purpose_used car",
	"Age_group_Adult", "Age_group_Senior", "Age_group_Elder",
	"Credit_bin_Medium", "Credit_bin_High", "Credit_bin_Very_High",
}
