package config

import (
	"os"

	"github.com/joho/godotenv"
)

// loadDotenv loads a .env file if one exists next to the working directory or
// one level up. Best-effort for local development; errors are ignored.
func loadDotenv() {
	for _, path := range []string{".env", "../.env"} {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		_ = godotenv.Load(path)
		return
	}
}
