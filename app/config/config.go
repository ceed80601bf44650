package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type Config struct {
	DB         *sql.DB
	Port       string
	CookieName string
}

var AppConfig *Config

// LoadEnv reads .env if present. Real environment variables win.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
}

// GetEnv returns the value of key, or fallback if unset.
func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDB() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			GetEnv("PGHOST", "localhost"),
			GetEnv("PGPORT", "5432"),
			GetEnv("PGUSER", "postgres"),
			GetEnv("PGPASSWORD", ""),
			GetEnv("PGDATABASE", "pctcup"),
			GetEnv("PGSSLMODE", "disable"),
		)
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	// Connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if err = db.Ping(); err != nil {
		log.Fatal("Cannot establish database connection:", err)
	}

	AppConfig = &Config{
		DB:         db,
		Port:       GetEnv("PORT", "3001"),
		CookieName: GetEnv("COOKIE_NAME", "pctcup_session"),
	}
	log.Println("Database connected successfully")
}

func GetDB() *sql.DB {
	return AppConfig.DB
}

func CookieName() string {
	return AppConfig.CookieName
}
