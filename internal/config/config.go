package config

import (
	"os"
	"path/filepath"
	"strings"
)

type Config struct {
	Addr          string
	DataDir       string
	DBPath        string
	LogLevel      string
	JWTSecret     string
	AdminUsername string
	AdminPassword string
	AllowOrigins  []string
	StaticDir     string
}

func Load() Config {
	addr := getenv("TRUYEN_ADDR", ":8080")
	dataDir := getenv("TRUYEN_DATA_DIR", "data")

	dbPath := os.Getenv("TRUYEN_DB_PATH")
	if dbPath == "" {
		dbPath = filepath.Join(dataDir, "truyen.db")
	}

	return Config{
		Addr:          addr,
		DataDir:       filepath.Clean(dataDir),
		DBPath:        filepath.Clean(dbPath),
		LogLevel:      getenv("TRUYEN_LOG_LEVEL", "info"),
		JWTSecret:     os.Getenv("TRUYEN_JWT_SECRET"),
		AdminUsername: getenv("TRUYEN_ADMIN_USERNAME", "admin"),
		AdminPassword: os.Getenv("TRUYEN_ADMIN_PASSWORD"),
		AllowOrigins:  parseOrigins(os.Getenv("TRUYEN_ALLOWED_ORIGINS")),
		StaticDir:     os.Getenv("TRUYEN_STATIC_DIR"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// parseOrigins splits a comma-separated origin list. An empty value means
// any origin is accepted.
func parseOrigins(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{"*"}
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
