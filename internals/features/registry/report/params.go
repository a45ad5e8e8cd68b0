package report

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// ErrInvalidDate: reference_date tidak berformat YYYY-MM-DD.
// Teks ini dipakai persis sebagai body {"error": ...} oleh controller;
// huruf kapital dan titik di akhir disengaja (kontrak klien lama),
// jangan "dirapikan" mengikuti konvensi error string Go.
var ErrInvalidDate = errors.New("Invalid date format. Use YYYY-MM-DD.")

// ErrBadRequest membungkus kesalahan parameter klien (start/length negatif dll).
type ErrBadRequest struct {
	Msg string
}

func (e *ErrBadRequest) Error() string {
	return e.Msg
}

// Params adalah parameter gaya DataTables yang dipakai semua endpoint laporan.
type Params struct {
	Draw    int
	Start   int
	Length  int
	Search  string
	SortKey string
	SortDir string // "asc" | "desc"

	// ReferenceDate hanya terisi untuk laporan berbasis umur;
	// default hari ini.
	ReferenceDate time.Time
}

// ParseParams membaca draw/start/length/search[value]/order/columns dari query.
// start & length wajib bilangan non-negatif; selain itu error klien.
// Kolom sort diambil dari columns[order[0][column]][data], default "kk".
func ParseParams(c *fiber.Ctx) (Params, error) {
	draw, err := queryInt(c, "draw", 1)
	if err != nil {
		return Params{}, err
	}
	start, err := queryInt(c, "start", 0)
	if err != nil {
		return Params{}, err
	}
	length, err := queryInt(c, "length", 10)
	if err != nil {
		return Params{}, err
	}
	if start < 0 {
		return Params{}, &ErrBadRequest{Msg: "start harus bilangan non-negatif"}
	}
	if length < 0 {
		return Params{}, &ErrBadRequest{Msg: "length harus bilangan non-negatif"}
	}

	orderIdx := c.Query("order[0][column]")
	sortKey := c.Query(fmt.Sprintf("columns[%s][data]", orderIdx), "kk")
	sortDir := strings.ToLower(c.Query("order[0][dir]", "asc"))
	if sortDir != "desc" {
		sortDir = "asc"
	}

	return Params{
		Draw:    draw,
		Start:   start,
		Length:  length,
		Search:  c.Query("search[value]"),
		SortKey: sortKey,
		SortDir: sortDir,
	}, nil
}

// ParseParamsWithDate seperti ParseParams plus reference_date (YYYY-MM-DD,
// default hari ini). Format salah → ErrInvalidDate (HTTP 400).
func ParseParamsWithDate(c *fiber.Ctx) (Params, error) {
	p, err := ParseParams(c)
	if err != nil {
		return Params{}, err
	}

	raw := c.Query("reference_date")
	if raw == "" {
		p.ReferenceDate = time.Now()
		return p, nil
	}
	ref, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return Params{}, ErrInvalidDate
	}
	p.ReferenceDate = ref
	return p, nil
}

func queryInt(c *fiber.Ctx, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &ErrBadRequest{Msg: key + " harus berupa angka"}
	}
	return n, nil
}
