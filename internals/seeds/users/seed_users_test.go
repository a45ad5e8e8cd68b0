package users

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"dataku_backend/internals/constants"
	authModel "dataku_backend/internals/features/users/auth/model"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&authModel.UserModel{}))
	return db
}

func TestSeedDefaultUsersCreatesAllAccounts(t *testing.T) {
	db := setupDB(t)
	SeedDefaultUsers(db)

	var total int64
	require.NoError(t, db.Model(&authModel.UserModel{}).Count(&total).Error)
	assert.EqualValues(t, constants.RWCount+1, total)

	var kelurahan authModel.UserModel
	require.NoError(t, db.Where("username = ?", "KELURAHAN").First(&kelurahan).Error)
	assert.Equal(t, constants.RoleSuperadmin, kelurahan.Role)
	assert.NotEmpty(t, kelurahan.Password)

	var rw1 authModel.UserModel
	require.NoError(t, db.Where("username = ?", "RW1").First(&rw1).Error)
	assert.Equal(t, "01", rw1.Role)
}

func TestSeedDefaultUsersIdempotent(t *testing.T) {
	db := setupDB(t)
	SeedDefaultUsers(db)

	var rw1Before authModel.UserModel
	require.NoError(t, db.Where("username = ?", "RW1").First(&rw1Before).Error)

	// jalan kedua: tidak ada duplikat, password lama tidak ditimpa
	SeedDefaultUsers(db)

	var total int64
	require.NoError(t, db.Model(&authModel.UserModel{}).Count(&total).Error)
	assert.EqualValues(t, constants.RWCount+1, total)

	var rw1After authModel.UserModel
	require.NoError(t, db.Where("username = ?", "RW1").First(&rw1After).Error)
	assert.Equal(t, rw1Before.Password, rw1After.Password)
}
