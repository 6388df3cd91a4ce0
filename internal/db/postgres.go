package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("Connected to PostgreSQL")

	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// USERS
	// -------------------------------
	userTableSQL := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			age INT NOT NULL,
			gender VARCHAR(20) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			allergies TEXT[] NOT NULL DEFAULT '{}',
			plan VARCHAR(20) NOT NULL DEFAULT 'free',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, userTableSQL); err != nil {
		return err
	}

	// -------------------------------
	// USAGE STATES (daily quota counters)
	// -------------------------------
	usageStatesSQL := `
		CREATE TABLE IF NOT EXISTS usage_states (
			user_id UUID PRIMARY KEY REFERENCES users(id),
			scans_today INT NOT NULL DEFAULT 0,
			analysis_today INT NOT NULL DEFAULT 0,
			last_scan_date DATE,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, usageStatesSQL); err != nil {
		return err
	}

	// -------------------------------
	// SCAN HISTORY (append only)
	// -------------------------------
	scanHistorySQL := `
		CREATE TABLE IF NOT EXISTS scan_history (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL,
			ingredients_text TEXT NOT NULL,
			allergies_found TEXT[] NOT NULL DEFAULT '{}',
			harmful_notes TEXT[] NOT NULL DEFAULT '{}',
			image_url VARCHAR(500) NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, scanHistorySQL); err != nil {
		return err
	}

	historyIndexSQL := `
		CREATE INDEX IF NOT EXISTS idx_scan_history_user_created
		ON scan_history (user_id, created_at DESC)
	`
	if _, err := db.Exec(ctx, historyIndexSQL); err != nil {
		return err
	}

	log.Println("Schema initialized successfully")
	return nil
}
