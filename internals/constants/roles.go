package constants

// Role string sebagaimana tersimpan di tabel users. Dua role pengawas
// (kelurahan) plus 12 role wilayah "01".."12" yang match kolom families.rw.
const (
	RoleSuperadmin = "superadmin"
	RoleAdmin      = "admin"
)

// RWCount jumlah partisi RW di kelurahan.
const RWCount = 12
