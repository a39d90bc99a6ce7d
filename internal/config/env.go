package config

import (
	"path/filepath"

	"github.com/joho/godotenv"
)

var envFiles = []string{".env", ".env.local"}

// loadEnvFiles loads .env then .env.local from dir. Missing files are
// skipped and variables already set in the process are never overridden.
func loadEnvFiles(dir string) {
	for _, name := range envFiles {
		_ = godotenv.Load(filepath.Join(dir, name))
	}
}
