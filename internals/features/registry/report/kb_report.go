package report

import (
	"gorm.io/gorm"

	"dataku_backend/internals/features/registry/dto"
	"dataku_backend/internals/features/registry/model"
	"dataku_backend/internals/features/registry/scope"
)

// KelompokKB: daftar keluarga plus vektor hitung per metode KB.
// recordsTotal di sini BUKAN vektor per-RW melainkan 9 slot tetap
// [0, tradisional, kondom, pil, suntik, implan, IUD, MOW, MOP]; slot 0
// dipertahankan 0 apa pun role-nya (kontrak lama). Role tetap membatasi
// baris data dan hitungannya.
func KelompokKB(db *gorm.DB, role scope.Role, p Params) (*dto.Envelope, error) {
	q := db.Model(&model.FamilyModel{})
	q = applyFamilySearch(q, p.Search, false)
	if !role.IsSuperuser() {
		q = q.Where("families.rw = ?", role.Code())
	}
	q = q.Session(&gorm.Session{})

	totals := make([]int64, 0, len(model.KBMethods)+1)
	totals = append(totals, 0)
	for _, method := range model.KBMethods {
		var n int64
		if err := q.Session(&gorm.Session{}).Where("families.kb = ?", method).Count(&n).Error; err != nil {
			return nil, err
		}
		totals = append(totals, n)
	}

	filtered, err := countRows(q.Session(&gorm.Session{}))
	if err != nil {
		return nil, err
	}

	rows := applySort(q, familySortColumns, p.SortKey, p.SortDir)
	var fams []model.FamilyModel
	if err := rows.Offset(p.Start).Limit(p.Length).Find(&fams).Error; err != nil {
		return nil, err
	}

	members, err := loadMembers(db, familyKKs(fams))
	if err != nil {
		return nil, err
	}
	out := make([]dto.FamilyRow, 0, len(fams))
	for _, f := range fams {
		out = append(out, dto.FamilyRow{
			KK:   f.KK,
			Head: headName(members[f.KK]),
			RT:   f.RT,
			RW:   f.RW,
		})
	}

	return &dto.Envelope{
		Draw:            p.Draw,
		RecordsTotal:    totals,
		RecordsFiltered: filtered,
		Data:            out,
	}, nil
}
