package db

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestMigrationFilesExist verifies that migration files are present
func TestMigrationFilesExist(t *testing.T) {
	migrationsDir := "../../migrations"

	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		t.Fatalf("migrations directory does not exist: %s", migrationsDir)
	}

	expectedFiles := []string{
		"000001_init_schema.up.sql",
		"000001_init_schema.down.sql",
	}

	for _, filename := range expectedFiles {
		filePath := filepath.Join(migrationsDir, filename)
		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			t.Errorf("migration file does not exist: %s", filePath)
		}
	}
}

// TestMigrationFilesParseable verifies that migration files contain valid SQL
func TestMigrationFilesParseable(t *testing.T) {
	migrationsDir := "../../migrations"

	migrationFiles := []string{
		"000001_init_schema.up.sql",
		"000001_init_schema.down.sql",
	}

	for _, filename := range migrationFiles {
		filePath := filepath.Join(migrationsDir, filename)
		content, err := os.ReadFile(filePath)
		if err != nil {
			t.Fatalf("failed to read migration file %s: %v", filename, err)
		}

		if len(content) == 0 {
			t.Errorf("migration file %s is empty", filename)
		}

		contentStr := string(content)
		if strings.HasSuffix(filename, ".up.sql") {
			if !strings.Contains(contentStr, "CREATE TABLE") {
				t.Errorf("up migration %s does not contain expected CREATE statements", filename)
			}
		} else {
			if !strings.Contains(contentStr, "DROP TABLE") {
				t.Errorf("down migration %s does not contain expected DROP statements", filename)
			}
		}
	}
}

// TestUpMigrationCoversCoreTables checks the schema creates every table the
// repositories query
func TestUpMigrationCoversCoreTables(t *testing.T) {
	content, err := os.ReadFile("../../migrations/000001_init_schema.up.sql")
	if err != nil {
		t.Fatalf("failed to read up migration: %v", err)
	}

	tables := []string{
		"sessions", "users", "modules", "user_progress", "mentors",
		"mentor_sessions", "forum_posts", "forum_answers",
		"interview_challenges", "challenge_attempts", "user_badges",
	}
	for _, table := range tables {
		if !strings.Contains(string(content), "CREATE TABLE "+table) {
			t.Errorf("up migration missing table %s", table)
		}
	}
}
