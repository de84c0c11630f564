package tuitiongroups

import (
	"encoding/json"
	"log"
	"os"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"hocphi_backend/internals/features/finance/tuition_groups/model"
)

type TuitionGroupSeed struct {
	Code          string `json:"code"`
	Name          string `json:"name"`
	Group         string `json:"group"`
	Grade         string `json:"grade"`
	MonthApply    string `json:"month_apply"`
	DefaultAmount int64  `json:"default_amount"`
}

// SeedTuitionGroupsFromJSON loads the fee catalog. Existing codes are
// skipped, so reruns are safe.
func SeedTuitionGroupsFromJSON(db *gorm.DB, filePath string) {
	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("[SEED] read %s: %v", filePath, err)
	}

	var inputs []TuitionGroupSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("[SEED] decode %s: %v", filePath, err)
	}

	for _, data := range inputs {
		var existing model.TuitionGroup
		if err := db.Where("tuition_group_code = ?", data.Code).First(&existing).Error; err == nil {
			log.Printf("[SEED] tuition group %q already exists, skipped", data.Code)
			continue
		}

		g := model.TuitionGroup{
			TuitionGroupCode:          data.Code,
			TuitionGroupName:          data.Name,
			TuitionGroupGroup:         data.Group,
			TuitionGroupGrade:         data.Grade,
			TuitionGroupMonthApply:    data.MonthApply,
			TuitionGroupDefaultAmount: decimal.NewFromInt(data.DefaultAmount),
		}
		if err := db.Create(&g).Error; err != nil {
			log.Printf("[SEED] create tuition group %q: %v", data.Code, err)
			continue
		}
		log.Printf("[SEED] tuition group %q created", data.Code)
	}
}
