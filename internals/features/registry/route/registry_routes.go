package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	registryController "dataku_backend/internals/features/registry/controller"
)

// RegistryRoutes memasang seluruh endpoint laporan + CRUD data keluarga.
// Router yang diterima sudah berada di balik AuthMiddleware.
func RegistryRoutes(router fiber.Router, db *gorm.DB, v *validator.Validate) {
	reportCtl := registryController.NewReportController(db)
	familyCtl := registryController.NewFamilyController(db, v)
	personCtl := registryController.NewPersonController(db, v)
	importCtl := registryController.NewImportController(db, v)

	// Laporan keluarga (baris per KK)
	router.Get("/all-data", reportCtl.AllData)
	router.Get("/pus", reportCtl.PUS)
	router.Get("/ibu-hamil", reportCtl.IbuHamil)
	router.Get("/balita", reportCtl.Balita)
	router.Get("/remaja", reportCtl.Remaja)
	router.Get("/lansia", reportCtl.Lansia)
	router.Get("/keluarga-disabilitas", reportCtl.KeluargaDisabilitas)
	router.Get("/keluarga-putus-sekolah", reportCtl.KeluargaPutusSekolah)

	// Laporan kelompok (baris per orang)
	router.Get("/kelompok-balita", reportCtl.KelompokBalita)
	router.Get("/kelompok-remaja", reportCtl.KelompokRemaja)
	router.Get("/kelompok-usia-subur", reportCtl.KelompokUsiaSubur)
	router.Get("/kelompok-usia-lansia", reportCtl.KelompokUsiaLansia)
	router.Get("/kelompok-kb", reportCtl.KelompokKB)

	// CRUD keluarga
	families := router.Group("/families")
	families.Post("/", familyCtl.Create)
	families.Get("/:id", familyCtl.GetByID)
	families.Put("/:id", familyCtl.Update)
	families.Delete("/:id", familyCtl.Delete)

	// CRUD penduduk
	persons := router.Group("/persons")
	persons.Post("/", personCtl.Create)
	persons.Get("/:id", personCtl.GetByID)
	persons.Put("/:id", personCtl.Update)
	persons.Delete("/:id", personCtl.Delete)

	// Import Excel
	router.Post("/import/excel", importCtl.Upload)
	router.Get("/import/template", importCtl.Template)
}
