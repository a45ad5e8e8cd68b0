package report

import (
	"strings"

	"gorm.io/gorm"

	"dataku_backend/internals/features/registry/dto"
	"dataku_backend/internals/features/registry/model"
	"dataku_backend/internals/features/registry/scope"
)

// familyQuery mendeskripsikan satu varian laporan tingkat keluarga.
type familyQuery struct {
	joinMembers bool
	filter      func(q *gorm.DB, p Params) *gorm.DB
	withMembers bool // sertakan id + members[] di proyeksi (all-data)
	headSort    bool // izinkan sort key sintetis "head" (all-data)
}

// AllData: seluruh keluarga beserta anggotanya.
func AllData(db *gorm.DB, role scope.Role, p Params) (*dto.Envelope, error) {
	return runFamilyReport(db, role, p, familyQuery{
		joinMembers: true,
		withMembers: true,
		headSort:    true,
	})
}

// PUS: keluarga dengan istri usia subur (15-49) per tanggal acuan.
func PUS(db *gorm.DB, role scope.Role, p Params) (*dto.Envelope, error) {
	return runFamilyReport(db, role, p, familyQuery{
		joinMembers: true,
		filter: func(q *gorm.DB, p Params) *gorm.DB {
			q = q.Where("persons.status = ?", model.StatusIstri)
			return BandUsiaSubur.Where(q, "persons.dob", p.ReferenceDate)
		},
	})
}

// IbuHamil: keluarga dengan flag hamil.
func IbuHamil(db *gorm.DB, role scope.Role, p Params) (*dto.Envelope, error) {
	return runFamilyReport(db, role, p, familyQuery{
		filter: func(q *gorm.DB, _ Params) *gorm.DB {
			return q.Where("families.status_hamil = ?", true)
		},
	})
}

// Balita: keluarga dengan anggota berumur < 5 tahun.
func Balita(db *gorm.DB, role scope.Role, p Params) (*dto.Envelope, error) {
	return runFamilyReport(db, role, p, familyQuery{
		joinMembers: true,
		filter: func(q *gorm.DB, p Params) *gorm.DB {
			return BandBalita.Where(q, "persons.dob", p.ReferenceDate)
		},
	})
}

// Remaja: keluarga dengan anggota 10-24 tahun yang belum menikah.
func Remaja(db *gorm.DB, role scope.Role, p Params) (*dto.Envelope, error) {
	return runFamilyReport(db, role, p, familyQuery{
		joinMembers: true,
		filter: func(q *gorm.DB, p Params) *gorm.DB {
			q = q.Where("persons.menikah = ?", model.BelumMenikah)
			return BandRemaja.Where(q, "persons.dob", p.ReferenceDate)
		},
	})
}

// Lansia: keluarga dengan anggota >= 60 tahun.
func Lansia(db *gorm.DB, role scope.Role, p Params) (*dto.Envelope, error) {
	return runFamilyReport(db, role, p, familyQuery{
		joinMembers: true,
		filter: func(q *gorm.DB, p Params) *gorm.DB {
			return BandLansia.Where(q, "persons.dob", p.ReferenceDate)
		},
	})
}

// KeluargaDisabilitas: keluarga dengan flag turunan disabilitas.
func KeluargaDisabilitas(db *gorm.DB, role scope.Role, p Params) (*dto.Envelope, error) {
	return runFamilyReport(db, role, p, familyQuery{
		filter: func(q *gorm.DB, _ Params) *gorm.DB {
			return q.Where("families.disability = ?", true)
		},
	})
}

// KeluargaPutusSekolah: keluarga dengan flag turunan putus sekolah.
func KeluargaPutusSekolah(db *gorm.DB, role scope.Role, p Params) (*dto.Envelope, error) {
	return runFamilyReport(db, role, p, familyQuery{
		filter: func(q *gorm.DB, _ Params) *gorm.DB {
			return q.Where("families.putus_sekolah = ?", true)
		},
	})
}

func runFamilyReport(db *gorm.DB, role scope.Role, p Params, spec familyQuery) (*dto.Envelope, error) {
	q := db.Model(&model.FamilyModel{})
	if spec.joinMembers {
		q = q.Joins("JOIN persons ON persons.family_id = families.kk")
	}
	if spec.filter != nil {
		q = spec.filter(q, p)
	}
	q = applyFamilySearch(q, p.Search, spec.joinMembers)
	q = q.Session(&gorm.Session{})

	scoped, totals, err := scope.Apply(q, role, countDistinctFamilies)
	if err != nil {
		return nil, err
	}
	scoped = scoped.Session(&gorm.Session{})

	filtered, err := countDistinctFamilies(scoped)
	if err != nil {
		return nil, err
	}

	// dedup hasil join: satu keluarga tampil sekali walau N anggota match
	rows := scoped.Group("families.id")
	if spec.headSort && p.SortKey == "head" {
		// join kedua khusus kepala keluarga, terpisah dari join anggota
		rows = rows.Joins(
			"JOIN persons AS heads ON heads.family_id = families.kk AND heads.status = ?",
			model.StatusKepalaKeluarga,
		)
		dir := p.SortDir
		if dir != "desc" {
			dir = "asc"
		}
		rows = rows.Order("heads.name " + dir)
	} else {
		rows = applySort(rows, familySortColumns, p.SortKey, p.SortDir)
	}

	var fams []model.FamilyModel
	if err := rows.Offset(p.Start).Limit(p.Length).Find(&fams).Error; err != nil {
		return nil, err
	}

	members, err := loadMembers(db, familyKKs(fams))
	if err != nil {
		return nil, err
	}

	var data interface{}
	if spec.withMembers {
		out := make([]dto.FamilyDetailRow, 0, len(fams))
		for _, f := range fams {
			ms := members[f.KK]
			rows := make([]dto.MemberRow, 0, len(ms))
			for _, m := range ms {
				rows = append(rows, dto.MemberRow{
					ID:     m.ID,
					Name:   m.Name,
					Status: m.Status,
					DOB:    m.DOBString(),
				})
			}
			out = append(out, dto.FamilyDetailRow{
				ID:      f.ID,
				KK:      f.KK,
				Head:    headName(ms),
				RT:      f.RT,
				RW:      f.RW,
				Members: rows,
			})
		}
		data = out
	} else {
		out := make([]dto.FamilyRow, 0, len(fams))
		for _, f := range fams {
			out = append(out, dto.FamilyRow{
				KK:   f.KK,
				Head: headName(members[f.KK]),
				RT:   f.RT,
				RW:   f.RW,
			})
		}
		data = out
	}

	return &dto.Envelope{
		Draw:            p.Draw,
		RecordsTotal:    totals,
		RecordsFiltered: filtered,
		Data:            data,
	}, nil
}

// applyFamilySearch: OR case-insensitive atas kk/rt/rw/nama anggota.
// Pada query ber-join nama dicocokkan ke baris join (anggota yang memenuhi
// predikat laporan); tanpa join dipakai EXISTS ke anggota keluarga.
func applyFamilySearch(q *gorm.DB, search string, joined bool) *gorm.DB {
	if search == "" {
		return q
	}
	s := "%" + strings.ToLower(search) + "%"
	if joined {
		return q.Where(
			"(LOWER(families.kk) LIKE ? OR LOWER(families.rt) LIKE ? OR LOWER(families.rw) LIKE ? OR LOWER(persons.name) LIKE ?)",
			s, s, s, s,
		)
	}
	return q.Where(
		"(LOWER(families.kk) LIKE ? OR LOWER(families.rt) LIKE ? OR LOWER(families.rw) LIKE ? OR EXISTS (SELECT 1 FROM persons WHERE persons.family_id = families.kk AND LOWER(persons.name) LIKE ?))",
		s, s, s, s,
	)
}

func countDistinctFamilies(q *gorm.DB) (int64, error) {
	var n int64
	err := q.Distinct("families.id").Count(&n).Error
	return n, err
}

func familyKKs(fams []model.FamilyModel) []string {
	kks := make([]string, 0, len(fams))
	for _, f := range fams {
		kks = append(kks, f.KK)
	}
	return kks
}
