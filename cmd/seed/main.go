package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/hoagiehub/hoagie-api/config"
	"github.com/hoagiehub/hoagie-api/pkg/helpers"
)

// Seeds the configured test account. The login bypass (TEST_LOGIN_ENABLED)
// only returns an account that actually exists, so development setups run
// this once; it is idempotent and resets the password hash on re-run.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	dsn := cfg.PostgresDSN()
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	hash, err := helpers.HashPassword(cfg.TestLoginPassword)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (email, password_hash, name)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET password_hash = EXCLUDED.password_hash, updated_at = now()
		RETURNING id
	`, cfg.TestLoginEmail, hash, cfg.TestLoginName).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed test user: %v", err)
	}
	fmt.Printf("seeded test user: id=%s email=%s name=%s\n", id, cfg.TestLoginEmail, cfg.TestLoginName)
}
