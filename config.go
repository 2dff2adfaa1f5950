package f1gn

import (
	"os"
	"strconv"
)

// Config collects the runtime settings. Defaults reproduce the original
// zero-configuration deployment: port 3000, uploads next to the binary,
// one fixed race on the results page.
type Config struct {
	// Address is the listen address for the HTTP server.
	Address string
	// UploadDir holds one JSON file per post.
	UploadDir string
	// PublicDir is served as static assets at the site root.
	PublicDir string
	// RacingDSN is the SQLite database carrying the race results schema.
	// Empty disables the database connection; the results page then fails
	// per request instead of at startup.
	RacingDSN string
	// RaceID is the fixed race whose classification /race-results shows.
	RaceID int64
	// Logging configures the go-logger provider.
	Logging LoggingConfig
}

// LoggingConfig mirrors the knobs of the go-logger adapter.
type LoggingConfig struct {
	Level     string
	Format    string
	AddSource bool
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		Address:   ":3000",
		UploadDir: "uploads",
		PublicDir: "public",
		RacingDSN: "file:racing.db",
		RaceID:    132,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig applies F1GN_* environment overrides on top of the defaults.
func LoadConfig() Config {
	cfg := DefaultConfig()

	setString(&cfg.Address, "F1GN_ADDR")
	setString(&cfg.UploadDir, "F1GN_UPLOAD_DIR")
	setString(&cfg.PublicDir, "F1GN_PUBLIC_DIR")
	setString(&cfg.RacingDSN, "F1GN_RACING_DSN")
	setString(&cfg.Logging.Level, "F1GN_LOG_LEVEL")
	setString(&cfg.Logging.Format, "F1GN_LOG_FORMAT")

	if value, ok := os.LookupEnv("F1GN_RACE_ID"); ok {
		if id, err := strconv.ParseInt(value, 10, 64); err == nil {
			cfg.RaceID = id
		}
	}
	return cfg
}

func setString(target *string, key string) {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		*target = value
	}
}
