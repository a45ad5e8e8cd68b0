package controller

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"dataku_backend/internals/features/registry/dto"
	"dataku_backend/internals/features/registry/model"
	"dataku_backend/internals/features/registry/service"
	helper "dataku_backend/internals/helpers"
)

type FamilyController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewFamilyController(db *gorm.DB, v *validator.Validate) *FamilyController {
	return &FamilyController{DB: db, Validate: v}
}

// Create menerima satu KK lengkap (kepala + istri opsional + anggota) dan
// menyimpannya dalam satu transaksi.
func (ctl *FamilyController) Create(c *fiber.Ctx) error {
	var req dto.CreateFamilyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	fam, members, err := buildFamilyFromRequest(&req)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := service.CreateFamilyWithMembers(ctl.DB.WithContext(c.UserContext()), fam, members); err != nil {
		return writePGError(c, err)
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Data berhasil disimpan", fam)
}

// buildFamilyFromRequest merakit model keluarga + anggota dari satu request
// KK lengkap. Status diisi dari posisi blok, bukan dari klien. Dipakai oleh
// input manual dan import Excel.
func buildFamilyFromRequest(req *dto.CreateFamilyRequest) (*model.FamilyModel, []model.PersonModel, error) {
	fam := &model.FamilyModel{
		KK:          req.KK,
		Address:     req.Address,
		RT:          dto.Zfill2(req.RT),
		RW:          dto.Zfill2(req.RW),
		KB:          req.KB,
		StatusHamil: req.Hamil,
	}

	kepala, err := req.Kepala.ToModel(model.StatusKepalaKeluarga)
	if err != nil {
		return nil, nil, err
	}
	members := []model.PersonModel{kepala}

	if req.Istri != nil {
		istri, err := req.Istri.ToModel(model.StatusIstri)
		if err != nil {
			return nil, nil, fmt.Errorf("DATA GAGAL DI-INPUT! Data Istri Harus Lengkap")
		}
		istri.Gender = model.GenderPerempuan
		members = append(members, istri)
	}
	for i := range req.Anggota {
		anak, err := req.Anggota[i].ToModel(req.Anggota[i].Status)
		if err != nil {
			return nil, nil, err
		}
		members = append(members, anak)
	}
	return fam, members, nil
}

func (ctl *FamilyController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	fam, err := service.GetFamily(ctl.DB.WithContext(c.UserContext()), uint(id))
	if err != nil {
		return writePGError(c, err)
	}
	return helper.Success(c, "OK", fam)
}

func (ctl *FamilyController) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var req dto.UpdateFamilyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.KK != "" {
		updates["kk"] = req.KK
	}
	if req.Address != "" {
		updates["address"] = req.Address
	}
	if req.RT != "" {
		updates["rt"] = dto.Zfill2(req.RT)
	}
	if req.RW != "" {
		updates["rw"] = dto.Zfill2(req.RW)
	}
	if req.KB != "" {
		updates["kb"] = req.KB
	}
	if req.StatusHamil != nil {
		updates["status_hamil"] = *req.StatusHamil
	}

	fam, err := service.UpdateFamily(ctl.DB.WithContext(c.UserContext()), uint(id), updates)
	if err != nil {
		return writePGError(c, err)
	}
	return helper.Success(c, "Data keluarga diperbarui", fam)
}

func (ctl *FamilyController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	if err := service.DeleteFamily(ctl.DB.WithContext(c.UserContext()), uint(id)); err != nil {
		return writePGError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// parseDOB dipakai controller person untuk kolom tanggal opsional.
func parseDOB(s string) (*datatypes.Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	d := datatypes.Date(t)
	return &d, nil
}
