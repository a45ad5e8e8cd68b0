package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBalitaBoundary(t *testing.T) {
	ref := date(2024, 6, 15)

	// tepat 5 tahun pada tanggal acuan: sudah bukan balita
	assert.False(t, BandBalita.Contains(ref, date(2019, 6, 15)))
	// sehari lebih muda dari 5 tahun: masih balita
	assert.True(t, BandBalita.Contains(ref, date(2019, 6, 16)))
	// lahir hari ini: balita
	assert.True(t, BandBalita.Contains(ref, ref))
}

func TestRemajaBoundary(t *testing.T) {
	ref := date(2024, 6, 15)

	// tepat 10 tahun: masuk
	assert.True(t, BandRemaja.Contains(ref, date(2014, 6, 15)))
	// sehari sebelum ulang tahun ke-10: belum masuk
	assert.False(t, BandRemaja.Contains(ref, date(2014, 6, 16)))
	// tepat 24 tahun: masih masuk
	assert.True(t, BandRemaja.Contains(ref, date(2000, 6, 15)))
	// tepat 25 tahun: keluar
	assert.False(t, BandRemaja.Contains(ref, date(1999, 6, 15)))
}

func TestLansiaOpenUpperBound(t *testing.T) {
	ref := date(2024, 6, 15)

	assert.True(t, BandLansia.Contains(ref, date(1964, 6, 15)))  // tepat 60
	assert.False(t, BandLansia.Contains(ref, date(1964, 6, 16))) // 59
	assert.True(t, BandLansia.Contains(ref, date(1900, 1, 1)))   // sangat tua
}

func TestBoundsShiftWithReferenceDate(t *testing.T) {
	dob := date(2019, 6, 16)

	// balita terhadap acuan 2024-06-15, bukan lagi terhadap 2024-06-16
	assert.True(t, BandBalita.Contains(date(2024, 6, 15), dob))
	assert.False(t, BandBalita.Contains(date(2024, 6, 16), dob))
}

func TestBoundsIgnoresTimeOfDay(t *testing.T) {
	ref := time.Date(2024, 6, 15, 23, 59, 59, 0, time.UTC)
	maxDOB, _ := BandBalita.Bounds(ref)
	assert.Equal(t, date(2024, 6, 15), maxDOB)
}
