package model

import "time"

// UserModel: akun petugas. Role menentukan cakupan data:
// "admin"/"superadmin" melihat semua RW, "01".."12" hanya RW tersebut.
type UserModel struct {
	UID       uint      `json:"uid" gorm:"column:uid;primaryKey;autoIncrement"`
	Email     string    `json:"email" gorm:"size:120"`
	Username  string    `json:"username" gorm:"size:80;uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	Role      string    `json:"role" gorm:"type:varchar(10);not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
