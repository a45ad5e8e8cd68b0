package importer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"dataku_backend/internals/features/registry/dto"
	"dataku_backend/internals/features/registry/model"
)

// Layout formulir satu KK: semua nilai diisi di kolom D, baris 2..113.
//   baris 2..7   : RW, RT, Alamat, No KK, KB, Hamil
//   baris 8..15  : blok Kepala Keluarga (8 field)
//   baris 16..23 : blok Istri (8 field)
//   baris 24..   : 10 blok Anggota, masing-masing 9 field (plus Status Keluarga)
const (
	valueColumn = "D"
	labelColumn = "C"
	firstRow    = 2
	lastRow     = 113

	headBlockStart   = 6  // offset di dalam slice nilai
	spouseBlockStart = 14
	memberBlockStart = 22
	memberBlockSize  = 9
	memberBlocks     = 10
)

var dobLayouts = []string{"2006-01-02", "02-01-2006", "2006/01/02", "01-02-06", "1/2/06 15:04"}

// ErrIncomplete: blok anggota terisi sebagian. Pesan lama dipertahankan.
type ErrIncomplete struct {
	Block string
}

func (e *ErrIncomplete) Error() string {
	return fmt.Sprintf("DATA GAGAL DI-INPUT! Data %s Harus Lengkap", e.Block)
}

// ParseKKSheet membaca formulir satu KK dan mengembalikan request yang sama
// dengan input manual, sehingga jalur simpan-nya satu pintu.
func ParseKKSheet(f *excelize.File) (*dto.CreateFamilyRequest, error) {
	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook tidak punya sheet")
	}

	vals := make([]string, 0, lastRow-firstRow+1)
	for row := firstRow; row <= lastRow; row++ {
		v, err := f.GetCellValue(sheet, valueColumn+strconv.Itoa(row))
		if err != nil {
			return nil, fmt.Errorf("baca sel %s%d: %w", valueColumn, row, err)
		}
		vals = append(vals, strings.TrimSpace(v))
	}

	req := &dto.CreateFamilyRequest{
		RW:      dto.Zfill2(vals[0]),
		RT:      dto.Zfill2(vals[1]),
		Address: vals[2],
		KK:      vals[3],
		KB:      vals[4],
		Hamil:   parseBool(vals[5]),
	}

	kepala, filled, err := parsePersonBlock(vals[headBlockStart:headBlockStart+8], false)
	if err != nil {
		return nil, &ErrIncomplete{Block: "Kepala Keluarga"}
	}
	if !filled {
		return nil, &ErrIncomplete{Block: "Kepala Keluarga"}
	}
	req.Kepala = *kepala

	istri, filled, err := parsePersonBlock(vals[spouseBlockStart:spouseBlockStart+8], false)
	if err != nil {
		return nil, &ErrIncomplete{Block: "Istri"}
	}
	if filled {
		istri.Gender = model.GenderPerempuan
		req.Istri = istri
	}

	for i := 0; i < memberBlocks; i++ {
		off := memberBlockStart + i*memberBlockSize
		anggota, filled, err := parsePersonBlock(vals[off:off+memberBlockSize], true)
		if err != nil {
			return nil, &ErrIncomplete{Block: fmt.Sprintf("Anggota %d", i+1)}
		}
		if filled {
			req.Anggota = append(req.Anggota, *anggota)
		}
	}

	return req, nil
}

// parsePersonBlock membaca satu blok orang. withStatus=true untuk blok anggota
// yang punya field Status Keluarga di posisi ke-7.
// Mengembalikan filled=false kalau blok kosong total; error kalau terisi
// sebagian.
func parsePersonBlock(cells []string, withStatus bool) (*dto.PersonInput, bool, error) {
	any := false
	for _, c := range cells {
		if c != "" {
			any = true
			break
		}
	}
	if !any {
		return nil, false, nil
	}

	in := &dto.PersonInput{
		Name:       cells[0],
		NIK:        cells[1],
		Gender:     normalizeGender(cells[3]),
		Disability: cells[4],
		Pendidikan: cells[5],
	}
	if withStatus {
		in.Status = cells[6]
		in.Menikah = cells[7]
		in.Pekerjaan = cells[8]
	} else {
		in.Menikah = cells[6]
		in.Pekerjaan = cells[7]
	}

	dob, err := parseDOBCell(cells[2])
	if err != nil {
		return nil, true, err
	}
	in.DOB = dob

	// Field inti wajib lengkap; pekerjaan & gender boleh kosong.
	if in.Name == "" || in.NIK == "" || in.DOB == "" ||
		in.Disability == "" || in.Pendidikan == "" || in.Menikah == "" {
		return nil, true, fmt.Errorf("blok terisi sebagian")
	}
	return in, true, nil
}

func parseDOBCell(s string) (string, error) {
	if s == "" {
		return "", fmt.Errorf("tanggal lahir kosong")
	}
	for _, layout := range dobLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	return "", fmt.Errorf("tanggal lahir %q tidak dikenali", s)
}

func normalizeGender(s string) string {
	if s == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(s), "l") {
		return model.GenderLaki
	}
	return model.GenderPerempuan
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "ya", "y", "true", "1", "hamil":
		return true
	}
	return false
}
