package config

import (
	"os"
	"path/filepath"
)

type Paths struct {
	DataDir    string
	UploadsDir string
	DataFile   string
}

func DefaultPaths() Paths {
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "/data"
		if _, err := os.Stat(dataDir); err != nil {
			dataDir = filepath.Join(".", "data")
		}
	}
	return Paths{
		DataDir:    dataDir,
		UploadsDir: filepath.Join(dataDir, "uploads"),
		DataFile:   filepath.Join(dataDir, "data.json"),
	}
}

func EnsureDir(dir string) { _ = os.MkdirAll(dir, 0o755) }

// AdminUsername is the one identity whose registrations are granted the
// admin role. Defaults to the site owner.
func AdminUsername() string {
	if v := os.Getenv("ADMIN_USERNAME"); v != "" {
		return v
	}
	return "Lenny Fisbeck"
}

// SessionSecret signs session tokens. The fallback keeps local development
// working; deployments override it.
func SessionSecret() []byte {
	if v := os.Getenv("SESSION_SECRET"); v != "" {
		return []byte(v)
	}
	return []byte("lenny_social_2026_key")
}

func Port() string {
	if v := os.Getenv("PORT"); v != "" {
		return v
	}
	return "8088"
}

func LogLevel() string {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		return v
	}
	return "info"
}
