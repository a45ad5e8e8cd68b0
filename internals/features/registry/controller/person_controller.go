package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dataku_backend/internals/features/registry/dto"
	"dataku_backend/internals/features/registry/service"
	helper "dataku_backend/internals/helpers"
)

type PersonController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewPersonController(db *gorm.DB, v *validator.Validate) *PersonController {
	return &PersonController{DB: db, Validate: v}
}

func (ctl *PersonController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	p, err := service.GetPerson(ctl.DB.WithContext(c.UserContext()), uint(id))
	if err != nil {
		return writePGError(c, err)
	}
	return helper.Success(c, "OK", p)
}

// Create menambah anggota ke keluarga yang sudah ada.
func (ctl *PersonController) Create(c *fiber.Ctx) error {
	var req dto.CreatePersonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	p, err := req.ToModel(req.Status)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	p.FamilyID = req.FamilyID

	if err := service.AddPerson(ctl.DB.WithContext(c.UserContext()), &p); err != nil {
		return writePGError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Anggota berhasil ditambahkan", p)
}

func (ctl *PersonController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var req dto.UpdatePersonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.NIK != "" {
		updates["nik"] = req.NIK
	}
	if req.DOB != "" {
		dob, err := parseDOB(req.DOB)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Tanggal lahir tidak valid, pakai YYYY-MM-DD")
		}
		updates["dob"] = dob
	}
	if req.Gender != "" {
		updates["gender"] = req.Gender
	}
	if req.Disability != "" {
		updates["disability"] = req.Disability
	}
	if req.Pendidikan != "" {
		updates["pendidikan"] = req.Pendidikan
	}
	if req.Status != "" {
		updates["status"] = req.Status
	}
	if req.Menikah != "" {
		updates["menikah"] = req.Menikah
	}
	if req.Pekerjaan != "" {
		updates["pekerjaan"] = req.Pekerjaan
	}

	p, err := service.UpdatePerson(ctl.DB.WithContext(c.UserContext()), uint(id), updates)
	if err != nil {
		return writePGError(c, err)
	}
	return helper.Success(c, "Data penduduk diperbarui", p)
}

func (ctl *PersonController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	if err := service.DeletePerson(ctl.DB.WithContext(c.UserContext()), uint(id)); err != nil {
		return writePGError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
