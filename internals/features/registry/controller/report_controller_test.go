package controller

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"dataku_backend/internals/features/registry/model"
	"dataku_backend/internals/features/registry/scope"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.FamilyModel{}, &model.PersonModel{}))
	return db
}

// newTestApp memasang seluruh route laporan di balik middleware role palsu.
func newTestApp(db *gorm.DB, role scope.Role) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		scope.StoreCtx(c, role)
		return c.Next()
	})

	ctl := NewReportController(db)
	app.Get("/api/all-data", ctl.AllData)
	app.Get("/api/balita", ctl.Balita)
	app.Get("/api/kelompok-kb", ctl.KelompokKB)
	return app
}

func seedOneFamily(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Create(&model.FamilyModel{KK: "3201010101010001", RT: "01", RW: "01"}).Error)
	d := datatypes.Date(time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, db.Create(&model.PersonModel{
		FamilyID: "3201010101010001", Name: "Budi Santoso", NIK: "3201010101010011",
		Status: model.StatusKepalaKeluarga, DOB: &d, Gender: model.GenderLaki,
		Menikah: model.Menikah, Disability: model.DisabilityTidak, Pendidikan: "SMA",
	}).Error)
}

func doGet(t *testing.T, app *fiber.App, url string) (*http.Response, []byte) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, url, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func TestInvalidReferenceDateBody(t *testing.T) {
	db := setupDB(t)
	app := newTestApp(db, scope.Superadmin())

	resp, body := doGet(t, app, "/api/balita?reference_date=2024-13-40")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"error": "Invalid date format. Use YYYY-MM-DD."}`, string(body))
}

func TestNegativeStartRejected(t *testing.T) {
	db := setupDB(t)
	app := newTestApp(db, scope.Superadmin())

	resp, body := doGet(t, app, "/api/all-data?start=-1")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var parsed map[string]string
	require.NoError(t, json.Unmarshal(body, &parsed))
	assert.Contains(t, parsed, "error")
}

func TestNonNumericLengthRejected(t *testing.T) {
	db := setupDB(t)
	app := newTestApp(db, scope.Superadmin())

	resp, _ := doGet(t, app, "/api/all-data?length=banyak")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestMissingRoleUnauthorized(t *testing.T) {
	db := setupDB(t)
	app := fiber.New()
	app.Get("/api/all-data", NewReportController(db).AllData)

	resp, _ := doGet(t, app, "/api/all-data")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestEnvelopeShapeSuperuser(t *testing.T) {
	db := setupDB(t)
	seedOneFamily(t, db)
	app := newTestApp(db, scope.Superadmin())

	resp, body := doGet(t, app, "/api/all-data?draw=7")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var env struct {
		Draw            int               `json:"draw"`
		RecordsTotal    []*int64          `json:"recordsTotal"`
		RecordsFiltered int64             `json:"recordsFiltered"`
		Data            []json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &env))

	assert.Equal(t, 7, env.Draw)
	require.Len(t, env.RecordsTotal, 13)
	assert.Nil(t, env.RecordsTotal[0], "slot 0 harus null")
	require.NotNil(t, env.RecordsTotal[1])
	assert.EqualValues(t, 1, *env.RecordsTotal[1])
	assert.EqualValues(t, 1, env.RecordsFiltered)
	require.Len(t, env.Data, 1)

	var row map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data[0], &row))
	assert.Equal(t, "Budi Santoso", row["head"])
	assert.Contains(t, row, "members")
}

func TestEnvelopeShapeRW(t *testing.T) {
	db := setupDB(t)
	seedOneFamily(t, db)
	role, err := scope.RW(1)
	require.NoError(t, err)
	app := newTestApp(db, role)

	_, body := doGet(t, app, "/api/all-data")
	var env struct {
		RecordsTotal []*int64 `json:"recordsTotal"`
	}
	require.NoError(t, json.Unmarshal(body, &env))
	require.Len(t, env.RecordsTotal, 1)
	assert.EqualValues(t, 1, *env.RecordsTotal[0])
}

func TestKelompokKBEnvelope(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.Create(&model.FamilyModel{KK: "3201010101010001", RT: "01", RW: "01", KB: model.KBSuntik}).Error)
	app := newTestApp(db, scope.Superadmin())

	_, body := doGet(t, app, "/api/kelompok-kb")
	var env struct {
		RecordsTotal []int64 `json:"recordsTotal"`
	}
	require.NoError(t, json.Unmarshal(body, &env))
	require.Len(t, env.RecordsTotal, 9)
	assert.EqualValues(t, 0, env.RecordsTotal[0])

	want := []int64{0, 0, 0, 0, 1, 0, 0, 0, 0}
	for i, n := range want {
		assert.EqualValues(t, n, env.RecordsTotal[i], fmt.Sprintf("slot %d", i))
	}
}
