// internal/config/config.go
//
// Runtime configuration from the environment.
// A .env file (if present) is loaded first; real environment variables win.
//
// Environment variables:
//   LOG_LEVEL=debug|info|warn|error   (default info)
//   LOG_FILE=/path/to/wordgrid.log    (default wordgrid.log; the TUI owns stdout)
//   WORDGRID_THEME=/path/to/theme.toml
//   WORDGRID_ANSWER=crane             (fixed answer, mostly for testing)
//   WORDGRID_ROWS=6
//   WORDGRID_DAILY_SALT=secret        (keys the daily answer; default local_dev_salt)
//   WORDS_ANSWERS_FILE / WORDS_ALLOWED_FILE are read by the words package.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel  string
	LogFile   string
	ThemeFile string
	Answer    string
	Rows      int
	DailySalt string
}

// Load reads files (".env" when none are given) into the environment and
// builds a Config from it. Missing files are ignored.
func Load(files ...string) Config {
	_ = godotenv.Load(files...)
	return Config{
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFile:   getEnv("LOG_FILE", "wordgrid.log"),
		ThemeFile: getEnv("WORDGRID_THEME", ""),
		Answer:    getEnv("WORDGRID_ANSWER", ""),
		Rows:      getEnvInt("WORDGRID_ROWS", 6),
		DailySalt: getEnv("WORDGRID_DAILY_SALT", "local_dev_salt"),
	}
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
