package seeds

import (
	"gorm.io/gorm"

	users "dataku_backend/internals/seeds/users"
)

func RunAllSeeds(db *gorm.DB) {
	users.SeedDefaultUsers(db)
}
