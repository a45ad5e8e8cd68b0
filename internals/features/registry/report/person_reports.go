package report

import (
	"strings"

	"gorm.io/gorm"

	"dataku_backend/internals/features/registry/dto"
	"dataku_backend/internals/features/registry/model"
	"dataku_backend/internals/features/registry/scope"
)

// KelompokBalita: baris per-orang umur < 5 tahun.
func KelompokBalita(db *gorm.DB, role scope.Role, p Params) (*dto.Envelope, error) {
	return runPersonReport(db, role, p, func(q *gorm.DB, p Params) *gorm.DB {
		return BandBalita.Where(q, "persons.dob", p.ReferenceDate)
	})
}

// KelompokRemaja: baris per-orang 10-24 tahun, belum menikah.
func KelompokRemaja(db *gorm.DB, role scope.Role, p Params) (*dto.Envelope, error) {
	return runPersonReport(db, role, p, func(q *gorm.DB, p Params) *gorm.DB {
		q = q.Where("persons.menikah = ?", model.BelumMenikah)
		return BandRemaja.Where(q, "persons.dob", p.ReferenceDate)
	})
}

// KelompokUsiaSubur: baris per-orang perempuan 15-49 tahun.
func KelompokUsiaSubur(db *gorm.DB, role scope.Role, p Params) (*dto.Envelope, error) {
	return runPersonReport(db, role, p, func(q *gorm.DB, p Params) *gorm.DB {
		q = q.Where("persons.gender = ?", model.GenderPerempuan)
		return BandUsiaSubur.Where(q, "persons.dob", p.ReferenceDate)
	})
}

// KelompokUsiaLansia: baris per-orang >= 60 tahun.
func KelompokUsiaLansia(db *gorm.DB, role scope.Role, p Params) (*dto.Envelope, error) {
	return runPersonReport(db, role, p, func(q *gorm.DB, p Params) *gorm.DB {
		return BandLansia.Where(q, "persons.dob", p.ReferenceDate)
	})
}

func runPersonReport(db *gorm.DB, role scope.Role, p Params, filter func(q *gorm.DB, p Params) *gorm.DB) (*dto.Envelope, error) {
	// join families dibutuhkan untuk pembatasan RW
	q := db.Model(&model.PersonModel{}).
		Joins("JOIN families ON families.kk = persons.family_id")
	q = filter(q, p)
	if p.Search != "" {
		s := "%" + strings.ToLower(p.Search) + "%"
		q = q.Where(
			"(LOWER(persons.name) LIKE ? OR LOWER(CAST(persons.dob AS TEXT)) LIKE ? OR LOWER(persons.gender) LIKE ? OR LOWER(persons.disability) LIKE ? OR LOWER(persons.pendidikan) LIKE ?)",
			s, s, s, s, s,
		)
	}
	q = q.Session(&gorm.Session{})

	scoped, totals, err := scope.Apply(q, role, countRows)
	if err != nil {
		return nil, err
	}
	scoped = scoped.Session(&gorm.Session{})

	filtered, err := countRows(scoped)
	if err != nil {
		return nil, err
	}

	rows := applySort(scoped, personSortColumns, p.SortKey, p.SortDir)
	var persons []model.PersonModel
	if err := rows.Offset(p.Start).Limit(p.Length).Find(&persons).Error; err != nil {
		return nil, err
	}

	out := make([]dto.PersonRow, 0, len(persons))
	for i := range persons {
		pr := &persons[i]
		out = append(out, dto.PersonRow{
			Nama:         pr.Name,
			TanggalLahir: pr.DOBString(),
			Gender:       pr.Gender,
			Disability:   pr.Disability,
			Pendidikan:   pr.Pendidikan,
		})
	}

	return &dto.Envelope{
		Draw:            p.Draw,
		RecordsTotal:    totals,
		RecordsFiltered: filtered,
		Data:            out,
	}, nil
}

func countRows(q *gorm.DB) (int64, error) {
	var n int64
	err := q.Count(&n).Error
	return n, err
}
