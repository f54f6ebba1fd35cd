package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// Applies migrations/<n>.sql in order on top of the tables the server creates
// with AutoMigrate. Run from the repository root after the first server start.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using the environment")
	}

	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable search_path=vaulting",
		os.Getenv("DATABASE_HOST"),
		os.Getenv("DATABASE_PORT"),
		os.Getenv("POSTGRES_USER"),
		os.Getenv("POSTGRES_PASSWORD"),
		os.Getenv("DATABASE_NAME"),
	)
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()
	version, err := getMigrationVersion(db)
	if err != nil {
		log.Fatal(err)
	}

	for {
		version++
		if _, err := os.Stat(migrationFile(version)); err != nil {
			fmt.Printf("At version %d\n", version-1)
			return
		}
		if err := migrateUp(db, version); err != nil {
			log.Fatal(err)
		}
	}
}

func migrationFile(version int) string {
	return fmt.Sprintf("migrations/%d.sql", version)
}

// migrateUp runs one file and bumps the version in the same transaction.
func migrateUp(db *sql.DB, version int) error {
	file, err := os.ReadFile(migrationFile(version))
	if err != nil {
		return err
	}
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()
	if _, err := tx.Exec(string(file)); err != nil {
		return fmt.Errorf("error executing migration %d: %w", version, err)
	}
	if _, err := tx.Exec("UPDATE migrations SET version = $1", version); err != nil {
		return fmt.Errorf("error updating migration version: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	fmt.Printf("Migrated to version %d\n", version)
	return nil
}

func getMigrationVersion(db *sql.DB) (version int, err error) {
	if _, err := db.Exec("CREATE SCHEMA IF NOT EXISTS vaulting;"); err != nil {
		return 0, err
	}
	err = db.QueryRow("SELECT version FROM migrations").Scan(&version)
	if err != nil {
		err := generateMigrationTable(db)
		if err != nil {
			return 0, err
		}
		return 0, nil
	}
	return version, nil
}

func generateMigrationTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS migrations (
			version INT PRIMARY KEY
		);
		INSERT INTO migrations (version) VALUES (0);
	`)
	return err
}
