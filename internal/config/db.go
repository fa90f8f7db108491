package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DBConfig holds database connection parameters
type DBConfig struct {
	DSN string
}

// LoadDBConfig loads database configuration from environment variables.
// DATABASE_URL wins when present; otherwise the individual DB_* variables
// are assembled into a DSN.
func LoadDBConfig() (*DBConfig, error) {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return &DBConfig{DSN: url}, nil
	}

	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")

	if dbHost == "" || dbPort == "" || dbUser == "" || dbName == "" {
		return nil, fmt.Errorf("database environment variables not set (DATABASE_URL or DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME)")
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPassword, dbName)

	return &DBConfig{DSN: dsn}, nil
}

// ConnectDB establishes a connection to the PostgreSQL database
func ConnectDB(cfg *DBConfig) (*pgxpool.Pool, error) {
	var pool *pgxpool.Pool
	var err error

	// Retry connecting to the database a few times
	maxRetries := 5
	retryInterval := 5 * time.Second

	for i := 0; i < maxRetries; i++ {
		pool, err = pgxpool.New(context.Background(), cfg.DSN)
		if err == nil {
			err = pool.Ping(context.Background())
			if err == nil {
				log.Println("Successfully connected to PostgreSQL!")
				return pool, nil
			}
		}
		log.Printf("Failed to connect to database (attempt %d/%d): %v. Retrying in %v...", i+1, maxRetries, err, retryInterval)
		time.Sleep(retryInterval)
	}
	return nil, fmt.Errorf("unable to connect to database after %d attempts: %w", maxRetries, err)
}

// AutoMigrate creates tables if they don't exist
func AutoMigrate(db *pgxpool.Pool) error {
	sql := `
	CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		phone TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		full_name TEXT NOT NULL,
		role TEXT NOT NULL CHECK (role IN ('client', 'master', 'salon_admin')),
		photo_url TEXT,
		city TEXT,
		salon_name TEXT,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_users_phone ON users(phone);
	`
	_, err := db.Exec(context.Background(), sql)
	if err != nil {
		return fmt.Errorf("unable to apply migrations: %w", err)
	}

	log.Println("AutoMigrate applied successfully")
	return nil
}
