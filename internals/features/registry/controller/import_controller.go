package controller

import (
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"dataku_backend/internals/features/registry/importer"
	"dataku_backend/internals/features/registry/service"
	helper "dataku_backend/internals/helpers"
)

type ImportController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewImportController(db *gorm.DB, v *validator.Validate) *ImportController {
	return &ImportController{DB: db, Validate: v}
}

// Upload menerima satu file formulir KK (.xlsx/.xls) dan menyimpannya lewat
// jalur yang sama dengan input manual.
func (ctl *ImportController) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "File tidak ditemukan di form")
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if ext != ".xlsx" && ext != ".xls" {
		return helper.Error(c, fiber.StatusBadRequest, "Format file harus .xlsx atau .xls")
	}

	src, err := fh.Open()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "File tidak bisa dibuka")
	}
	defer src.Close()

	wb, err := excelize.OpenReader(src)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "File Excel tidak valid")
	}
	defer wb.Close()

	req, err := importer.ParseKKSheet(wb)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	fam, members, err := buildFamilyFromRequest(req)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if err := service.CreateFamilyWithMembers(ctl.DB.WithContext(c.UserContext()), fam, members); err != nil {
		return writePGError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Data berhasil diimpor", fam)
}

// Template mengunduh formulir kosong.
func (ctl *ImportController) Template(c *fiber.Ctx) error {
	wb, err := importer.BuildTemplate()
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat template")
	}
	defer wb.Close()

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="formulir_data_keluarga.xlsx"`)
	if _, err := wb.WriteTo(c.Response().BodyWriter()); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menulis template")
	}
	return nil
}
