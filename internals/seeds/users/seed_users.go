package users

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"

	"gorm.io/gorm"

	"dataku_backend/internals/constants"
	authModel "dataku_backend/internals/features/users/auth/model"
	authRepo "dataku_backend/internals/features/users/auth/repository"
	authService "dataku_backend/internals/features/users/auth/service"
)

// SeedDefaultUsers membuat akun kelurahan (superadmin) + satu akun per RW.
// Password dibangkitkan acak dan dicetak sekali ke log; ganti lewat
// forgot-password setelah login pertama.
func SeedDefaultUsers(db *gorm.DB) {
	type account struct {
		Username string
		Role     string
	}

	accounts := []account{{Username: "KELURAHAN", Role: constants.RoleSuperadmin}}
	for i := 1; i <= constants.RWCount; i++ {
		accounts = append(accounts, account{
			Username: fmt.Sprintf("RW%d", i),
			Role:     fmt.Sprintf("%02d", i),
		})
	}

	for _, acc := range accounts {
		if _, err := authRepo.FindUserByUsername(db, acc.Username); err == nil {
			log.Printf("ℹ️ User '%s' sudah ada, dilewati.", acc.Username)
			continue
		}

		plain, err := randomPassword()
		if err != nil {
			log.Fatalf("❌ Gagal membangkitkan password: %v", err)
		}
		hashed, err := authService.HashPassword(plain)
		if err != nil {
			log.Printf("❌ Gagal hash password untuk '%s': %v", acc.Username, err)
			continue
		}

		user := authModel.UserModel{
			Username: acc.Username,
			Password: hashed,
			Role:     acc.Role,
		}
		if err := authRepo.CreateUser(db, &user); err != nil {
			log.Printf("❌ Gagal insert user '%s': %v", acc.Username, err)
			continue
		}
		log.Printf("✅ User '%s' dibuat, password awal: %s", acc.Username, plain)
	}
}

func randomPassword() (string, error) {
	buf := make([]byte, 9)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
