package service

import (
	"gorm.io/gorm"

	"dataku_backend/internals/features/registry/model"
)

// RecomputeDerivedFlags menghitung ulang flag turunan sebuah keluarga dari
// anggotanya dan menyimpannya. Idempotent; dipanggil setiap path mutasi
// anggota (create/update/delete) dalam transaksi yang sama dengan mutasinya.
func RecomputeDerivedFlags(db *gorm.DB, kk string) error {
	var members []model.PersonModel
	if err := db.Where("family_id = ?", kk).Find(&members).Error; err != nil {
		return err
	}

	disability, putusSekolah := false, false
	for i := range members {
		if members[i].HasDisability() {
			disability = true
		}
		if members[i].IsDroppedOut() {
			putusSekolah = true
		}
	}

	return db.Model(&model.FamilyModel{}).
		Where("kk = ?", kk).
		Updates(map[string]interface{}{
			"disability":    disability,
			"putus_sekolah": putusSekolah,
		}).Error
}
