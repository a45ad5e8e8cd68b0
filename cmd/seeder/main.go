package main

import (
	"log"

	"dataku_backend/internals/configs"
	database "dataku_backend/internals/databases"
	seeds "dataku_backend/internals/seeds"
)

// Seeder: jalankan sekali setelah deploy untuk migrasi skema + akun awal.
func main() {
	configs.LoadEnv()

	db := configs.InitSeederDB()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("❌ Migrasi gagal: %v", err)
	}
	log.Println("✅ Migrasi selesai")

	seeds.RunAllSeeds(db)
	log.Println("✅ Seeding selesai")
}
