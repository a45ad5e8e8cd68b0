package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dataku_backend/internals/features/registry/dto"
	"dataku_backend/internals/features/registry/report"
	"dataku_backend/internals/features/registry/scope"
	helper "dataku_backend/internals/helpers"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

type reportFunc func(*gorm.DB, scope.Role, report.Params) (*dto.Envelope, error)

// Laporan tingkat keluarga
func (ctl *ReportController) AllData(c *fiber.Ctx) error {
	return ctl.run(c, false, report.AllData)
}

func (ctl *ReportController) PUS(c *fiber.Ctx) error {
	return ctl.run(c, true, report.PUS)
}

func (ctl *ReportController) IbuHamil(c *fiber.Ctx) error {
	return ctl.run(c, false, report.IbuHamil)
}

func (ctl *ReportController) Balita(c *fiber.Ctx) error {
	return ctl.run(c, true, report.Balita)
}

func (ctl *ReportController) Remaja(c *fiber.Ctx) error {
	return ctl.run(c, true, report.Remaja)
}

func (ctl *ReportController) Lansia(c *fiber.Ctx) error {
	return ctl.run(c, true, report.Lansia)
}

func (ctl *ReportController) KeluargaDisabilitas(c *fiber.Ctx) error {
	return ctl.run(c, false, report.KeluargaDisabilitas)
}

func (ctl *ReportController) KeluargaPutusSekolah(c *fiber.Ctx) error {
	return ctl.run(c, false, report.KeluargaPutusSekolah)
}

// Laporan per-orang
func (ctl *ReportController) KelompokBalita(c *fiber.Ctx) error {
	return ctl.run(c, true, report.KelompokBalita)
}

func (ctl *ReportController) KelompokRemaja(c *fiber.Ctx) error {
	return ctl.run(c, true, report.KelompokRemaja)
}

func (ctl *ReportController) KelompokUsiaSubur(c *fiber.Ctx) error {
	return ctl.run(c, true, report.KelompokUsiaSubur)
}

func (ctl *ReportController) KelompokUsiaLansia(c *fiber.Ctx) error {
	return ctl.run(c, true, report.KelompokUsiaLansia)
}

// Laporan KB
func (ctl *ReportController) KelompokKB(c *fiber.Ctx) error {
	return ctl.run(c, false, report.KelompokKB)
}

func (ctl *ReportController) run(c *fiber.Ctx, withDate bool, fn reportFunc) error {
	role, ok := scope.FromCtx(c)
	if !ok {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized: role tidak ditemukan")
	}

	var (
		p   report.Params
		err error
	)
	if withDate {
		p, err = report.ParseParamsWithDate(c)
	} else {
		p, err = report.ParseParams(c)
	}
	if err != nil {
		var badReq *report.ErrBadRequest
		if errors.Is(err, report.ErrInvalidDate) || errors.As(err, &badReq) {
			// body {"error": ...} adalah kontrak lama klien DataTables
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membaca parameter")
	}

	env, err := fn(ctl.DB.WithContext(c.UserContext()), role, p)
	if err != nil {
		log.Printf("[ERROR] report %s: %v", c.Path(), err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	return c.JSON(env)
}
