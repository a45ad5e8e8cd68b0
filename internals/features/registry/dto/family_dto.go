package dto

import (
	"fmt"
	"time"

	"gorm.io/datatypes"

	"dataku_backend/internals/features/registry/model"
)

// PersonInput: payload satu anggota pada input manual.
// Aturan lama dipertahankan: kalau blok anggota diisi, semua field inti
// harus lengkap.
type PersonInput struct {
	Name       string `json:"name" validate:"required"`
	NIK        string `json:"nik" validate:"required,len=16,numeric"`
	DOB        string `json:"dob" validate:"required"` // YYYY-MM-DD
	Gender     string `json:"gender"`
	Disability string `json:"disability" validate:"required"`
	Pendidikan string `json:"pendidikan" validate:"required"`
	Menikah    string `json:"menikah" validate:"required,oneof=Menikah 'Belum Menikah'"`
	Pekerjaan  string `json:"pekerjaan"`
	Status     string `json:"status"`
}

// ToModel mengubah input menjadi PersonModel; status dipaksa dari posisi blok
// (kepala/istri/anggota), bukan dari klien.
func (in *PersonInput) ToModel(status string) (model.PersonModel, error) {
	dob, err := time.Parse("2006-01-02", in.DOB)
	if err != nil {
		return model.PersonModel{}, fmt.Errorf("tanggal lahir %q tidak valid, pakai YYYY-MM-DD", in.DOB)
	}
	d := datatypes.Date(dob)

	p := model.PersonModel{
		Name:       in.Name,
		NIK:        in.NIK,
		DOB:        &d,
		Gender:     in.Gender,
		Disability: in.Disability,
		Pendidikan: in.Pendidikan,
		Status:     status,
		Menikah:    in.Menikah,
		Pekerjaan:  in.Pekerjaan,
	}
	if p.Status == "" {
		p.Status = model.StatusAnak
	}
	if p.Pekerjaan == "" {
		p.Pekerjaan = model.PekerjaanBelumBekerja
	}
	return p, nil
}

// CreateFamilyRequest: satu KK lengkap dari form input manual.
type CreateFamilyRequest struct {
	KK      string        `json:"kk" validate:"required,len=16,numeric"`
	Address string        `json:"alamat"`
	RT      string        `json:"rt"`
	RW      string        `json:"rw" validate:"required"`
	KB      string        `json:"kb"`
	Hamil   bool          `json:"hamil"`
	Kepala  PersonInput   `json:"kepala" validate:"required"`
	Istri   *PersonInput  `json:"istri"`
	Anggota []PersonInput `json:"anggota" validate:"dive"`
}

type UpdateFamilyRequest struct {
	KK          string `json:"kk" validate:"omitempty,len=16,numeric"`
	Address     string `json:"alamat"`
	RT          string `json:"rt"`
	RW          string `json:"rw"`
	KB          string `json:"kb"`
	StatusHamil *bool  `json:"status_hamil"`
}

type CreatePersonRequest struct {
	PersonInput
	FamilyID string `json:"family_id" validate:"required,len=16,numeric"`
}

type UpdatePersonRequest struct {
	Name       string `json:"name"`
	NIK        string `json:"nik" validate:"omitempty,len=16,numeric"`
	DOB        string `json:"dob"`
	Gender     string `json:"gender"`
	Disability string `json:"disability"`
	Pendidikan string `json:"pendidikan"`
	Status     string `json:"status"`
	Menikah    string `json:"menikah"`
	Pekerjaan  string `json:"pekerjaan"`
}

// Zfill2 menormalkan rt/rw menjadi dua digit ("1" → "01").
func Zfill2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
