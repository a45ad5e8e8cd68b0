package importer

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

var personLabels = []string{
	"Nama Lengkap", "NIK", "Tanggal Lahir (YYYY-MM-DD)", "Jenis Kelamin",
	"Disabilitas", "Pendidikan", "Status Pernikahan", "Pekerjaan",
}

// BuildTemplate membangun workbook kosong formulir satu KK dengan label di
// kolom C dan sel isian di kolom D, mengikuti layout yang dibaca ParseKKSheet.
func BuildTemplate() (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	labelStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#DDEBF7"}},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		f.Close()
		return nil, err
	}
	sectionStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 12},
	})
	if err != nil {
		f.Close()
		return nil, err
	}

	if err := f.SetCellValue(sheet, "C1", "FORMULIR DATA KELUARGA"); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.SetCellStyle(sheet, "C1", "C1", sectionStyle); err != nil {
		f.Close()
		return nil, err
	}

	row := firstRow
	write := func(label string) error {
		cell := fmt.Sprintf("%s%d", labelColumn, row)
		if err := f.SetCellValue(sheet, cell, label); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, labelStyle); err != nil {
			return err
		}
		row++
		return nil
	}
	writeBlock := func(title string, withStatus bool) error {
		for i, label := range personLabels {
			if err := write(title + " - " + label); err != nil {
				return err
			}
			if withStatus && i == 5 {
				if err := write(title + " - Status Keluarga"); err != nil {
					return err
				}
			}
		}
		return nil
	}

	for _, label := range []string{"RW", "RT", "Alamat", "Nomor KK", "KB", "Hamil (Ya/Tidak)"} {
		if err := write(label); err != nil {
			f.Close()
			return nil, err
		}
	}
	if err := writeBlock("Kepala Keluarga", false); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeBlock("Istri", false); err != nil {
		f.Close()
		return nil, err
	}
	for i := 1; i <= memberBlocks; i++ {
		if err := writeBlock(fmt.Sprintf("Anggota %d", i), true); err != nil {
			f.Close()
			return nil, err
		}
	}

	if err := f.SetColWidth(sheet, labelColumn, labelColumn, 38); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.SetColWidth(sheet, valueColumn, valueColumn, 28); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}
