package constants

// Fee category prefixes carried over from the legacy catalog. The code of a
// tuition group starts with one of these (e.g. "HP06" is the grade-6 tuition).
const (
	FeeGroupTuition     = "HP" // hoc phi — monthly tuition
	FeeGroupDayBoarding = "BT" // ban tru — day boarding
	FeeGroupBoarding    = "NT" // noi tru — boarding
	FeeGroupYearly      = "LP" // le phi — yearly/registration fee
	FeeGroupInsurance   = "BH" // bao hiem — insurance
)

// FeeGroups lists every known category, in report order.
var FeeGroups = []string{
	FeeGroupTuition,
	FeeGroupDayBoarding,
	FeeGroupBoarding,
	FeeGroupYearly,
	FeeGroupInsurance,
}

// IsKnownFeeGroup reports whether g is one of the legacy categories.
func IsKnownFeeGroup(g string) bool {
	for _, k := range FeeGroups {
		if g == k {
			return true
		}
	}
	return false
}

// Operator roles.
const (
	RoleAdmin      = "admin"
	RoleAccountant = "accountant"
)
