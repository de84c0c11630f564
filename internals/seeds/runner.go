package seeds

import (
	"gorm.io/gorm"

	operators "hocphi_backend/internals/seeds/operators"
	tuitiongroups "hocphi_backend/internals/seeds/tuition_groups"
)

func RunAllSeeds(db *gorm.DB) {
	operators.SeedOperatorsFromJSON(db, "internals/seeds/operators/data_operators.json")
	tuitiongroups.SeedTuitionGroupsFromJSON(db, "internals/seeds/tuition_groups/data_tuition_groups.json")
}
