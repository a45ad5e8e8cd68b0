package model

import (
	"time"

	"gorm.io/datatypes"
)

// Status anggota dalam keluarga.
const (
	StatusKepalaKeluarga = "Kepala Keluarga"
	StatusIstri          = "Istri"
	StatusAnak           = "Anak"
)

// Status pernikahan.
const (
	Menikah      = "Menikah"
	BelumMenikah = "Belum Menikah"
)

// Gender.
const (
	GenderLaki      = "Laki-laki"
	GenderPerempuan = "Perempuan"
)

// Sentinel khusus.
const (
	DisabilityTidak         = "Tidak"         // tidak ada disabilitas
	PendidikanTidakSekolah  = "Tidak Sekolah" // putus sekolah (template excel)
	PendidikanPutusSekolah  = "Putus Sekolah" // putus sekolah (input manual)
	PekerjaanBelumBekerja   = "Belum Bekerja"
	HeadNotFoundPlaceholder = "Not found" // nilai head bila keluarga tanpa kepala
)

// PersonModel merepresentasikan satu penduduk di tabel persons.
// FamilyID mereferensikan families.kk (bukan families.id).
type PersonModel struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	Name       string          `gorm:"type:varchar(100)" json:"name" validate:"required"`
	NIK        string          `gorm:"type:char(16);unique" json:"nik" validate:"required,len=16,numeric"`
	DOB        *datatypes.Date `gorm:"type:date" json:"dob"`
	Gender     string          `gorm:"type:varchar(10)" json:"gender"`
	Disability string          `gorm:"type:varchar(30)" json:"disability"`
	Pendidikan string          `gorm:"type:varchar(50)" json:"pendidikan"`
	FamilyID   string          `gorm:"type:char(16);index;not null" json:"family_id"`
	Status     string          `gorm:"type:varchar(20);default:'Anak'" json:"status"`
	Menikah    string          `gorm:"type:varchar(20);default:'Belum Menikah'" json:"menikah"`
	Pekerjaan  string          `gorm:"type:varchar(50);default:'Belum Bekerja'" json:"pekerjaan"`
}

func (PersonModel) TableName() string {
	return "persons"
}

// DOBTime mengembalikan dob sebagai time.Time, false bila kosong.
func (p *PersonModel) DOBTime() (time.Time, bool) {
	if p.DOB == nil {
		return time.Time{}, false
	}
	return time.Time(*p.DOB), true
}

// DOBString memformat dob sebagai YYYY-MM-DD, nil bila kosong.
func (p *PersonModel) DOBString() *string {
	t, ok := p.DOBTime()
	if !ok {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

// IsDroppedOut: pendidikan menyentuh sentinel putus sekolah.
// Sumber data lama memakai dua ejaan, keduanya dianggap putus sekolah.
func (p *PersonModel) IsDroppedOut() bool {
	return p.Pendidikan == PendidikanTidakSekolah || p.Pendidikan == PendidikanPutusSekolah
}

// HasDisability: kategori disabilitas apa pun selain "Tidak".
func (p *PersonModel) HasDisability() bool {
	return p.Disability != DisabilityTidak
}
