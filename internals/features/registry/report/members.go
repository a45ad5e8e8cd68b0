package report

import (
	"gorm.io/gorm"

	"dataku_backend/internals/features/registry/model"
)

// loadMembers mengambil anggota untuk satu halaman keluarga sekaligus,
// dikelompokkan per KK.
func loadMembers(db *gorm.DB, kks []string) (map[string][]model.PersonModel, error) {
	grouped := make(map[string][]model.PersonModel, len(kks))
	if len(kks) == 0 {
		return grouped, nil
	}
	var persons []model.PersonModel
	if err := db.Where("family_id IN ?", kks).Order("id").Find(&persons).Error; err != nil {
		return nil, err
	}
	for _, p := range persons {
		grouped[p.FamilyID] = append(grouped[p.FamilyID], p)
	}
	return grouped, nil
}

// headName mencari nama kepala keluarga; keluarga tanpa kepala dirender
// dengan placeholder literal "Not found" (kontrak lama, jangan diganti null).
func headName(members []model.PersonModel) string {
	for _, m := range members {
		if m.Status == model.StatusKepalaKeluarga {
			return m.Name
		}
	}
	return model.HeadNotFoundPlaceholder
}
