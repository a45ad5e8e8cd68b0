package scope

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dataku_backend/internals/constants"
)

// ErrInvalidRole: role bukan superuser dan bukan kode RW 1..12.
// Dikembalikan saat parse di boundary auth, bukan saat query.
var ErrInvalidRole = errors.New("role tidak dikenal: bukan superadmin dan bukan kode RW 01..12")

// Role adalah varian ter-tag: superuser (admin/superadmin, lihat semua RW)
// atau satu kode RW. Di-parse sekali dari klaim token, query layer hanya
// menerima bentuk yang sudah valid.
type Role struct {
	superuser bool
	rw        int // 1..12, hanya terisi bila !superuser
}

// Superadmin mengembalikan role tanpa pembatasan wilayah.
func Superadmin() Role {
	return Role{superuser: true}
}

// RW mengembalikan role wilayah untuk n 1..12.
func RW(n int) (Role, error) {
	if n < 1 || n > constants.RWCount {
		return Role{}, fmt.Errorf("%w: %d", ErrInvalidRole, n)
	}
	return Role{rw: n}, nil
}

// ParseRole menerjemahkan string role dari tabel users / klaim JWT.
// Menerima "admin", "superadmin", dan kode RW dengan atau tanpa nol
// di depan ("01" maupun "1").
func ParseRole(s string) (Role, error) {
	s = strings.TrimSpace(s)
	switch s {
	case constants.RoleAdmin, constants.RoleSuperadmin:
		return Superadmin(), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return Role{}, fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
	return RW(n)
}

func (r Role) IsSuperuser() bool {
	return r.superuser
}

// Code mengembalikan kode RW dua digit ("01".."12"); kosong untuk superuser.
func (r Role) Code() string {
	if r.superuser {
		return ""
	}
	return RWCode(r.rw)
}

func (r Role) String() string {
	if r.superuser {
		return constants.RoleSuperadmin
	}
	return r.Code()
}

// RWCode memformat nomor RW menjadi dua digit.
func RWCode(n int) string {
	return fmt.Sprintf("%02d", n)
}

// CountFunc menghitung jumlah baris hasil sebuah query; builder laporan
// memasok fungsi ini agar semantik dedup (distinct keluarga vs baris person)
// ikut terbawa ke hitungan per partisi.
type CountFunc func(q *gorm.DB) (int64, error)

// Apply membatasi query sesuai role dan menghitung snapshot recordsTotal.
// Superuser: query tidak dibatasi, vektor 13 slot dengan slot 0 nil
// (placeholder, di-serialize sebagai null) dan slot 1..12 hitungan per RW.
// Role RW: query dibatasi ke families.rw = kode, vektor 1 slot.
func Apply(q *gorm.DB, role Role, count CountFunc) (*gorm.DB, []*int64, error) {
	if role.IsSuperuser() {
		totals := make([]*int64, constants.RWCount+1)
		for i := 1; i <= constants.RWCount; i++ {
			n, err := count(q.Session(&gorm.Session{}).Where("families.rw = ?", RWCode(i)))
			if err != nil {
				return nil, nil, err
			}
			c := n
			totals[i] = &c
		}
		return q, totals, nil
	}

	scoped := q.Where("families.rw = ?", role.Code())
	n, err := count(scoped.Session(&gorm.Session{}))
	if err != nil {
		return nil, nil, err
	}
	return scoped, []*int64{&n}, nil
}

const localsKey = "registry_role"

// StoreCtx menyimpan role hasil parse ke Locals request.
func StoreCtx(c *fiber.Ctx, r Role) {
	c.Locals(localsKey, r)
}

// FromCtx mengambil role ter-parse dari Locals; false bila middleware auth
// belum jalan di route tersebut.
func FromCtx(c *fiber.Ctx) (Role, bool) {
	r, ok := c.Locals(localsKey).(Role)
	return r, ok
}
