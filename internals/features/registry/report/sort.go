package report

import "gorm.io/gorm"

// Allow-list kolom sort per entity: key yang dikirim klien → kolom SQL tetap.
// Key tak dikenal tidak error, hanya menonaktifkan sorting, sehingga string
// klien tidak pernah sampai ke klausa ORDER BY.
var familySortColumns = map[string]string{
	"id":            "families.id",
	"kk":            "families.kk",
	"address":       "families.address",
	"rt":            "families.rt",
	"rw":            "families.rw",
	"kb":            "families.kb",
	"status_hamil":  "families.status_hamil",
	"disability":    "families.disability",
	"putus_sekolah": "families.putus_sekolah",
}

var personSortColumns = map[string]string{
	"id":         "persons.id",
	"name":       "persons.name",
	"nik":        "persons.nik",
	"dob":        "persons.dob",
	"gender":     "persons.gender",
	"disability": "persons.disability",
	"pendidikan": "persons.pendidikan",
	"status":     "persons.status",
	"menikah":    "persons.menikah",
	"pekerjaan":  "persons.pekerjaan",
}

func applySort(q *gorm.DB, columns map[string]string, key, dir string) *gorm.DB {
	col, ok := columns[key]
	if !ok {
		return q
	}
	if dir != "desc" {
		dir = "asc"
	}
	return q.Order(col + " " + dir)
}
