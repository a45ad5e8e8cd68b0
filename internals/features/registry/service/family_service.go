package service

import (
	"gorm.io/gorm"

	"dataku_backend/internals/features/registry/model"
)

// CreateFamilyWithMembers menyimpan keluarga baru beserta anggotanya dalam
// satu transaksi. Keluarga ditulis lebih dulu supaya foreign key
// persons.family_id valid saat anggota ditulis, lalu flag turunan dihitung.
func CreateFamilyWithMembers(db *gorm.DB, fam *model.FamilyModel, members []model.PersonModel) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(fam).Error; err != nil {
			return err
		}
		for i := range members {
			members[i].FamilyID = fam.KK
		}
		if len(members) > 0 {
			if err := tx.Create(&members).Error; err != nil {
				return err
			}
		}
		return RecomputeDerivedFlags(tx, fam.KK)
	})
}

// GetFamily mengambil keluarga by id berikut anggotanya.
func GetFamily(db *gorm.DB, id uint) (*model.FamilyModel, error) {
	var fam model.FamilyModel
	if err := db.Preload("Members").First(&fam, id).Error; err != nil {
		return nil, err
	}
	return &fam, nil
}

// UpdateFamily memperbarui atribut keluarga (bukan anggota). Bila KK berubah,
// family_id anggota ikut dipindahkan dalam transaksi yang sama.
func UpdateFamily(db *gorm.DB, id uint, updates map[string]interface{}) (*model.FamilyModel, error) {
	var fam model.FamilyModel
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&fam, id).Error; err != nil {
			return err
		}
		oldKK := fam.KK
		if err := tx.Model(&fam).Updates(updates).Error; err != nil {
			return err
		}
		if newKK, ok := updates["kk"].(string); ok && newKK != "" && newKK != oldKK {
			if err := tx.Model(&model.PersonModel{}).
				Where("family_id = ?", oldKK).
				Update("family_id", newKK).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &fam, nil
}

// DeleteFamily menghapus keluarga; anggota dihapus lebih dulu (cascade manual,
// urutan penting karena FK).
func DeleteFamily(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var fam model.FamilyModel
		if err := tx.First(&fam, id).Error; err != nil {
			return err
		}
		if err := tx.Where("family_id = ?", fam.KK).Delete(&model.PersonModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&fam).Error
	})
}

// GetPerson mengambil satu penduduk by id.
func GetPerson(db *gorm.DB, id uint) (*model.PersonModel, error) {
	var p model.PersonModel
	if err := db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// AddPerson menambah anggota ke keluarga yang sudah ada lalu menghitung ulang
// flag turunannya.
func AddPerson(db *gorm.DB, p *model.PersonModel) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var fam model.FamilyModel
		if err := tx.Where("kk = ?", p.FamilyID).First(&fam).Error; err != nil {
			return err
		}
		if err := tx.Create(p).Error; err != nil {
			return err
		}
		return RecomputeDerivedFlags(tx, p.FamilyID)
	})
}

// UpdatePerson memperbarui data penduduk lalu menghitung ulang flag keluarga.
func UpdatePerson(db *gorm.DB, id uint, updates map[string]interface{}) (*model.PersonModel, error) {
	var p model.PersonModel
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&p, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&p).Updates(updates).Error; err != nil {
			return err
		}
		return RecomputeDerivedFlags(tx, p.FamilyID)
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// DeletePerson menghapus penduduk lalu menghitung ulang flag keluarganya.
func DeletePerson(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var p model.PersonModel
		if err := tx.First(&p, id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&p).Error; err != nil {
			return err
		}
		return RecomputeDerivedFlags(tx, p.FamilyID)
	})
}
