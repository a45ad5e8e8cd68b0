package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"

	helper "dataku_backend/internals/helpers"
)

// --- PG error mapping (pgx/libpq) ---
func mapPGError(err error) (int, string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return http.StatusNotFound, "Data tidak ditemukan"
	}

	// pgx
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		switch pgxErr.Code {
		case "23503":
			return http.StatusBadRequest, "Referensi tidak ditemukan (FK violation)."
		case "23505":
			return http.StatusConflict, "GAGAL MENAMBAHKAN DATA. Data sudah terdaftar!"
		default:
			return http.StatusInternalServerError, "Database error occurred!"
		}
	}
	// lib/pq
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case "23503":
			return http.StatusBadRequest, "Referensi tidak ditemukan (FK violation)."
		case "23505":
			return http.StatusConflict, "GAGAL MENAMBAHKAN DATA. Data sudah terdaftar!"
		default:
			return http.StatusInternalServerError, "Database error occurred!"
		}
	}
	// driver lain (mis. sqlite saat tes): cek substring
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint") {
		return http.StatusConflict, "GAGAL MENAMBAHKAN DATA. Data sudah terdaftar!"
	}
	return http.StatusInternalServerError, "Database error occurred!"
}

func writePGError(c *fiber.Ctx, err error) error {
	code, msg := mapPGError(err)
	return helper.Error(c, code, msg)
}
