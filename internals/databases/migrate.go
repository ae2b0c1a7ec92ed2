package databases

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"gymdesk_backend/internals/configs"
)

// RunMigrations applies pending SQL migrations from ./migrations before the
// app starts serving. Safe to call on every boot (no-op when up to date).
func RunMigrations() {
	dir := configs.GetEnv("MIGRATIONS_DIR", "migrations")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		configs.GetEnv("DB_SSLMODE", "require"),
	)

	m, err := migrate.New("file://"+dir, dsn)
	if err != nil {
		log.Fatalf("❌ migrate init failed: %v", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			log.Printf("migrate close (source) err: %v", srcErr)
		}
		if dbErr != nil {
			log.Printf("migrate close (db) err: %v", dbErr)
		}
	}()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Println("✅ Migrations up to date.")
			return
		}
		log.Fatalf("❌ migrate up failed: %v", err)
	}
	log.Println("✅ Migrations applied.")
}
