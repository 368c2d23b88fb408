package config

import (
	"errors"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

type Config struct {
	Env         string
	Port        string
	LogLevel    string
	DBType      string
	DBDSN       string
	FileUsers   string
	FileReports string

	AdminEmail    string
	AdminPassword string
	// MasterRecoveryKey grants admin access when set; leave empty to
	// disable the recovery path entirely.
	MasterRecoveryKey string
}

var (
	cfg  *Config
	once sync.Once
)

func Load() *Config {
	once.Do(func() {
		_ = godotenv.Load()
		cfg = &Config{
			Env:               getEnv("APP_ENV", "development"),
			Port:              getEnv("APP_PORT", "3000"),
			LogLevel:          getEnv("LOG_LEVEL", "info"),
			DBType:            getEnv("STORAGE_BACKEND", "file"),
			DBDSN:             getEnv("POSTGRES_DSN", ""),
			FileUsers:         getEnv("USERS_FILE", "data/database.json"),
			FileReports:       getEnv("REPORTS_FILE", "data/reports.json"),
			AdminEmail:        getEnv("ADMIN_EMAIL", "admin@hospital.com"),
			AdminPassword:     getEnv("ADMIN_PASSWORD", ""),
			MasterRecoveryKey: getEnv("MASTER_RECOVERY_KEY", ""),
		}
		if err := cfg.Validate(); err != nil {
			panic("Invalid config: " + err.Error())
		}
	})
	return cfg
}

func (c *Config) Validate() error {
	if c.DBType == "postgres" && c.DBDSN == "" {
		return errors.New("POSTGRES_DSN is required when STORAGE_BACKEND=postgres")
	}
	if c.DBType == "file" && (c.FileUsers == "" || c.FileReports == "") {
		return errors.New("File storage requires USERS_FILE and REPORTS_FILE to be set")
	}
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return errors.New("APP_ENV must be one of: development, staging, production")
	}
	if c.Env == "production" && c.AdminPassword == "" {
		return errors.New("ADMIN_PASSWORD is required in production")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
