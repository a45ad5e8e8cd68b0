package report

import (
	"time"

	"gorm.io/gorm"
)

// AgeBand adalah rentang umur inklusif dalam tahun penuh; MaxAge < 0 berarti
// tanpa batas atas (mis. lansia >= 60).
type AgeBand struct {
	MinAge int
	MaxAge int
}

// Kelompok umur laporan demografi.
var (
	BandBalita    = AgeBand{MinAge: 0, MaxAge: 4}   // umur < 5
	BandRemaja    = AgeBand{MinAge: 10, MaxAge: 24} // + belum menikah
	BandUsiaSubur = AgeBand{MinAge: 15, MaxAge: 49}
	BandLansia    = AgeBand{MinAge: 60, MaxAge: -1}
)

// Bounds menerjemahkan band umur menjadi batas tanggal lahir terhadap tanggal
// acuan: umur >= min ⟺ dob <= ref-min tahun; umur <= max ⟺ dob > ref-(max+1)
// tahun. Perbandingan tanggal membuat predikat portable antar engine dan
// otomatis mengecualikan dob NULL.
func (b AgeBand) Bounds(ref time.Time) (maxDOB time.Time, minDOBExcl *time.Time) {
	ref = truncateToDate(ref)
	maxDOB = ref.AddDate(-b.MinAge, 0, 0)
	if b.MaxAge >= 0 {
		m := ref.AddDate(-(b.MaxAge + 1), 0, 0)
		minDOBExcl = &m
	}
	return maxDOB, minDOBExcl
}

// Contains menghitung keanggotaan band untuk satu tanggal lahir (dipakai tes
// dan validasi); semantiknya sama dengan Where.
func (b AgeBand) Contains(ref, dob time.Time) bool {
	maxDOB, minExcl := b.Bounds(ref)
	dob = truncateToDate(dob)
	if dob.After(maxDOB) {
		return false
	}
	if minExcl != nil && !dob.After(*minExcl) {
		return false
	}
	return true
}

// Where menambahkan predikat band umur ke query pada kolom dob yang diberikan.
func (b AgeBand) Where(q *gorm.DB, column string, ref time.Time) *gorm.DB {
	maxDOB, minExcl := b.Bounds(ref)
	q = q.Where(column+" <= ?", maxDOB)
	if minExcl != nil {
		q = q.Where(column+" > ?", *minExcl)
	} else {
		// batas bawah terbuka: cukup pastikan dob terisi
		q = q.Where(column + " IS NOT NULL")
	}
	return q
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
