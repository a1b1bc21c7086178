package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("a migration name is required.")
	}
	migrationName := os.Args[1]

	if err := godotenv.Load(); err != nil {
		log.Fatal("Error loading .env file")
	}

	db, err := sql.Open("postgres", dbConnString())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	basePath := filepath.Join(".", "internal", "adapters", "repository", "postgres", "migrations")
	fileContent, err := migrationFileContent(basePath, migrationName)
	if err != nil {
		log.Fatal(err)
	}

	if _, err := db.Exec(string(fileContent)); err != nil {
		log.Fatalf("Failed to execute SQL file: %v", err)
	}

	fmt.Println("Migration file executed successfully.")
}

func migrationFileContent(basePath string, migrationName string) ([]byte, error) {
	fileName, err := migrationFileName(basePath, migrationName)
	if err != nil {
		return nil, err
	}

	return os.ReadFile(filepath.Join(basePath, fileName))
}

func migrationFileName(basePath string, migrationName string) (string, error) {
	regex, err := regexp.Compile(fmt.Sprintf(`^.*%s\.sql`, regexp.QuoteMeta(migrationName)))
	if err != nil {
		return "", fmt.Errorf("invalid pattern: %w", err)
	}

	files, err := os.ReadDir(basePath)
	if err != nil {
		return "", fmt.Errorf("failed to read migrations directory: %w", err)
	}

	for _, f := range files {
		if f.IsDir() {
			continue
		}
		if regex.MatchString(f.Name()) {
			return f.Name(), nil
		}
	}

	return "", fmt.Errorf("migration file not found")
}

func dbConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		os.Getenv("POSTGRES_USER"),
		os.Getenv("POSTGRES_PASSWORD"),
		os.Getenv("POSTGRES_HOST"),
		os.Getenv("POSTGRES_PORT"),
		os.Getenv("POSTGRES_DB"),
	)
}
