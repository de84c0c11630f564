package operators

import (
	"encoding/json"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hocphi_backend/internals/features/users/auth/model"
)

type OperatorSeed struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// SeedOperatorsFromJSON loads back-office accounts. Existing usernames are
// skipped, so reruns are safe.
func SeedOperatorsFromJSON(db *gorm.DB, filePath string) {
	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("[SEED] read %s: %v", filePath, err)
	}

	var inputs []OperatorSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("[SEED] decode %s: %v", filePath, err)
	}

	for _, data := range inputs {
		var existing model.Operator
		if err := db.Where("operator_username = ?", data.Username).First(&existing).Error; err == nil {
			log.Printf("[SEED] operator %q already exists, skipped", data.Username)
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("[SEED] hash password for %q: %v", data.Username, err)
			continue
		}

		op := model.Operator{
			OperatorUsername:     data.Username,
			OperatorPasswordHash: string(hash),
			OperatorRole:         data.Role,
		}
		if err := db.Create(&op).Error; err != nil {
			log.Printf("[SEED] create operator %q: %v", data.Username, err)
			continue
		}
		log.Printf("[SEED] operator %q created", data.Username)
	}
}
