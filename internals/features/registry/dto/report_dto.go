package dto

// Envelope adalah amplop respons gaya DataTables yang dipakai semua endpoint
// laporan. RecordsTotal berupa vektor: superuser 13 slot (slot 0 null,
// slot 1..12 hitungan per RW), role RW 1 slot, khusus kelompok-kb 9 slot
// hitungan per metode KB (slot 0 selalu 0).
type Envelope struct {
	Draw            int         `json:"draw"`
	RecordsTotal    interface{} `json:"recordsTotal"`
	RecordsFiltered int64       `json:"recordsFiltered"`
	Data            interface{} `json:"data"`
}

// FamilyRow: proyeksi baris keluarga untuk sub-laporan.
type FamilyRow struct {
	KK   string `json:"kk"`
	Head string `json:"head"`
	RT   string `json:"rt"`
	RW   string `json:"rw"`
}

// FamilyDetailRow: proyeksi /api/all-data, termasuk daftar anggota.
type FamilyDetailRow struct {
	ID      uint        `json:"id"`
	KK      string      `json:"kk"`
	Head    string      `json:"head"`
	RT      string      `json:"rt"`
	RW      string      `json:"rw"`
	Members []MemberRow `json:"members"`
}

type MemberRow struct {
	ID     uint    `json:"id"`
	Name   string  `json:"name"`
	Status string  `json:"status"`
	DOB    *string `json:"dob"`
}

// PersonRow: proyeksi laporan per-orang (kelompok-*). Nama field JSON
// mengikuti kontrak lama, termasuk "tanggal lahir" dengan spasi.
type PersonRow struct {
	Nama         string  `json:"nama"`
	TanggalLahir *string `json:"tanggal lahir"`
	Gender       string  `json:"gender"`
	Disability   string  `json:"disability"`
	Pendidikan   string  `json:"pendidikan"`
}
