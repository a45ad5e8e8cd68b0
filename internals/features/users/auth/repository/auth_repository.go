package repository

import (
	"time"

	"gorm.io/gorm"

	authModel "dataku_backend/internals/features/users/auth/model"
)

/* ====================== USER ====================== */

func FindUserByUsername(db *gorm.DB, username string) (*authModel.UserModel, error) {
	var user authModel.UserModel
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByUID(db *gorm.DB, uid uint) (*authModel.UserModel, error) {
	var user authModel.UserModel
	if err := db.First(&user, uid).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func CreateUser(db *gorm.DB, user *authModel.UserModel) error {
	return db.Create(user).Error
}

func UpdateUserPassword(db *gorm.DB, uid uint, hashed string) error {
	return db.Model(&authModel.UserModel{}).Where("uid = ?", uid).
		Update("password", hashed).Error
}

/* ====================== RESET TOKEN ====================== */

func CreateResetToken(db *gorm.DB, t *authModel.PasswordResetTokenModel) error {
	return db.Create(t).Error
}

func FindResetToken(db *gorm.DB, token string) (*authModel.PasswordResetTokenModel, error) {
	var t authModel.PasswordResetTokenModel
	if err := db.Where("token = ?", token).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func MarkResetTokenUsed(db *gorm.DB, id uint) error {
	return db.Model(&authModel.PasswordResetTokenModel{}).Where("id = ?", id).
		Update("used", true).Error
}

func CleanupExpiredResetTokens(db *gorm.DB) (int64, error) {
	res := db.Where("expires_at <= ? OR used = ?", time.Now().UTC(), true).
		Delete(&authModel.PasswordResetTokenModel{})
	return res.RowsAffected, res.Error
}
