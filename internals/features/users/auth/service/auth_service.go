package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"dataku_backend/internals/configs"
	authModel "dataku_backend/internals/features/users/auth/model"
	authRepo "dataku_backend/internals/features/users/auth/repository"
)

const accessTTL = 24 * time.Hour

var ErrInvalidCredentials = errors.New("username atau password salah")

// Login memverifikasi kredensial dan menerbitkan access token.
// Username tak dikenal dan password salah sengaja tidak dibedakan.
func Login(db *gorm.DB, username, password string) (string, *authModel.UserModel, error) {
	user, err := authRepo.FindUserByUsername(db, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := issueAccessToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func issueAccessToken(user *authModel.UserModel) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":   user.UID,
		"user_name": user.Username,
		"role":      user.Role,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(configs.JWTSecret))
}

func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
