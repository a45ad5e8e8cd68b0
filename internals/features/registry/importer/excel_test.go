package importer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// fillPerson menulis satu blok orang mulai dari baris start di kolom D.
func fillPerson(t *testing.T, f *excelize.File, sheet string, start int, vals []string) {
	t.Helper()
	for i, v := range vals {
		require.NoError(t, f.SetCellValue(sheet, fmt.Sprintf("D%d", start+i), v))
	}
}

func newFilledForm(t *testing.T) *excelize.File {
	t.Helper()
	f, err := BuildTemplate()
	require.NoError(t, err)
	sheet := f.GetSheetName(0)

	// bagian keluarga: baris 2..7
	for i, v := range []string{"1", "3", "Jl. Melati No. 5", "3201010101010001", "Suntik", "Ya"} {
		require.NoError(t, f.SetCellValue(sheet, fmt.Sprintf("D%d", 2+i), v))
	}
	// kepala: baris 8..15
	fillPerson(t, f, sheet, 8, []string{
		"Budi Santoso", "3201010101010011", "1980-01-01", "Laki",
		"Tidak", "SMA", "Menikah", "Wiraswasta",
	})
	// istri: baris 16..23
	fillPerson(t, f, sheet, 16, []string{
		"Siti Aminah", "3201010101010012", "1985-05-05", "P",
		"Tidak", "SMP", "Menikah", "Ibu Rumah Tangga",
	})
	// anggota 1: baris 24..32 (dengan Status Keluarga)
	fillPerson(t, f, sheet, 24, []string{
		"Eka Putri", "3201010101010013", "2015-08-17", "Perempuan",
		"Tidak", "SD", "Anak", "Belum Menikah", "Belum Bekerja",
	})
	return f
}

func TestParseKKSheetComplete(t *testing.T) {
	f := newFilledForm(t)
	defer f.Close()

	req, err := ParseKKSheet(f)
	require.NoError(t, err)

	assert.Equal(t, "3201010101010001", req.KK)
	assert.Equal(t, "01", req.RW)
	assert.Equal(t, "03", req.RT)
	assert.Equal(t, "Jl. Melati No. 5", req.Address)
	assert.Equal(t, "Suntik", req.KB)
	assert.True(t, req.Hamil)

	assert.Equal(t, "Budi Santoso", req.Kepala.Name)
	assert.Equal(t, "Laki-laki", req.Kepala.Gender)
	assert.Equal(t, "1980-01-01", req.Kepala.DOB)

	require.NotNil(t, req.Istri)
	assert.Equal(t, "Siti Aminah", req.Istri.Name)
	assert.Equal(t, "Perempuan", req.Istri.Gender)

	require.Len(t, req.Anggota, 1)
	assert.Equal(t, "Eka Putri", req.Anggota[0].Name)
	assert.Equal(t, "Anak", req.Anggota[0].Status)
	assert.Equal(t, "2015-08-17", req.Anggota[0].DOB)
}

func TestParseKKSheetWithoutSpouse(t *testing.T) {
	f := newFilledForm(t)
	defer f.Close()
	sheet := f.GetSheetName(0)
	for row := 16; row <= 23; row++ {
		require.NoError(t, f.SetCellValue(sheet, fmt.Sprintf("D%d", row), ""))
	}

	req, err := ParseKKSheet(f)
	require.NoError(t, err)
	assert.Nil(t, req.Istri)
}

func TestParseKKSheetPartialMemberBlock(t *testing.T) {
	f := newFilledForm(t)
	defer f.Close()
	sheet := f.GetSheetName(0)
	// anggota 2 hanya diisi nama: blok terisi sebagian
	require.NoError(t, f.SetCellValue(sheet, "D33", "Separuh Data"))

	_, err := ParseKKSheet(f)
	require.Error(t, err)
	assert.Equal(t, "DATA GAGAL DI-INPUT! Data Anggota 2 Harus Lengkap", err.Error())
}

func TestParseKKSheetMissingHead(t *testing.T) {
	f := newFilledForm(t)
	defer f.Close()
	sheet := f.GetSheetName(0)
	for row := 8; row <= 15; row++ {
		require.NoError(t, f.SetCellValue(sheet, fmt.Sprintf("D%d", row), ""))
	}

	_, err := ParseKKSheet(f)
	require.Error(t, err)
	assert.Equal(t, "DATA GAGAL DI-INPUT! Data Kepala Keluarga Harus Lengkap", err.Error())
}

func TestParseKKSheetAlternateDateLayout(t *testing.T) {
	f := newFilledForm(t)
	defer f.Close()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetCellValue(sheet, "D10", "01-01-1980")) // DD-MM-YYYY

	req, err := ParseKKSheet(f)
	require.NoError(t, err)
	assert.Equal(t, "1980-01-01", req.Kepala.DOB)
}

func TestBuildTemplateLayout(t *testing.T) {
	f, err := BuildTemplate()
	require.NoError(t, err)
	defer f.Close()
	sheet := f.GetSheetName(0)

	v, err := f.GetCellValue(sheet, "C2")
	require.NoError(t, err)
	assert.Equal(t, "RW", v)

	// baris label terakhir = akhir blok anggota 10
	v, err = f.GetCellValue(sheet, "C113")
	require.NoError(t, err)
	assert.Equal(t, "Anggota 10 - Pekerjaan", v)

	// tidak ada label yang tumpah melewati area isian
	v, err = f.GetCellValue(sheet, "C114")
	require.NoError(t, err)
	assert.Empty(t, v)
}
