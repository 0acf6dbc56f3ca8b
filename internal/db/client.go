package db

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/joho/godotenv"
)

// loadEnv walks up from the working directory looking for a .env file.
// Missing files are fine: in containers the variables arrive from the
// environment directly.
func loadEnv() {
	wd, err := os.Getwd()
	if err != nil {
		return
	}
	for _, dir := range []string{wd, filepath.Join(wd, ".."), filepath.Join(wd, "..", "..")} {
		if err := godotenv.Load(filepath.Join(dir, ".env")); err == nil {
			return
		}
	}
}

func NewDb(ctx context.Context) (*Database, error) {
	loadEnv()

	pool, err := pgxpool.Connect(ctx, generateDsn())
	if err != nil {
		return nil, fmt.Errorf("db: connect: %w", err)
	}
	return NewDatabase(pool), nil
}

func generateDsn() string {
	host := envOr("DB_HOST", "localhost")
	port := envOr("DB_PORT", "5432")
	user := envOr("POSTGRES_USER", "farmstand")
	password := os.Getenv("POSTGRES_PASSWORD")
	dbname := envOr("POSTGRES_DB", "farmstand")

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
