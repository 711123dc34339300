package main

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/muftipurwa/portfolio-api/internal/config"
)

func main() {
	fmt.Println("seeding portfolio profile into database...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}

	pool, err := pgxpool.New(context.Background(), cfg.DB.DSN)
	if err != nil {
		log.Fatalf("cannot connect DB: %v", err)
	}
	defer pool.Close()

	query := `
		INSERT INTO profile (name, greeting, email, linkedin_url, whatsapp_number, about_description)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (slot) DO NOTHING
	`
	tag, err := pool.Exec(context.Background(), query,
		cfg.ProfileDefaults.Name,
		cfg.ProfileDefaults.Greeting,
		cfg.ProfileDefaults.Email,
		cfg.ProfileDefaults.LinkedinURL,
		cfg.ProfileDefaults.WhatsappNumber,
		cfg.ProfileDefaults.AboutDescription,
	)
	if err != nil {
		log.Fatalf("cannot seed profile: %v", err)
	}

	if tag.RowsAffected() == 0 {
		fmt.Println("profile already exists, nothing to do.")
		return
	}
	fmt.Printf("seeded profile '%s' successfully!\n", cfg.ProfileDefaults.Name)
}
