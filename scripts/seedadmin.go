// Seeds the first admin account. Run once against a fresh database:
//
//	SEED_ADMIN_EMAIL=admin@example.com SEED_ADMIN_PASSWORD=... go run scripts/seedadmin.go
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	name := os.Getenv("SEED_ADMIN_NAME")
	email := strings.ToLower(strings.TrimSpace(os.Getenv("SEED_ADMIN_EMAIL")))
	password := os.Getenv("SEED_ADMIN_PASSWORD")

	if dbURL == "" || email == "" || password == "" {
		fmt.Fprintln(os.Stderr, "DATABASE_URL, SEED_ADMIN_EMAIL and SEED_ADMIN_PASSWORD are required")
		os.Exit(1)
	}
	if name == "" {
		name = "Administrator"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, err := pgx.Connect(ctx, dbURL)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Connect failed:", err)
		os.Exit(1)
	}
	defer conn.Close(ctx)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Hash failed:", err)
		os.Exit(1)
	}

	id := uuid.NewString()
	_, err = conn.Exec(ctx,
		`INSERT INTO admins (id, name, email, password_hash, role, created_at)
		 VALUES ($1, $2, $3, $4, 'admin', NOW())
		 ON CONFLICT (email) DO NOTHING`,
		id, name, email, string(hash))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Insert failed:", err)
		os.Exit(1)
	}

	fmt.Printf("Admin ready: %s (%s)\n", email, id)
}
