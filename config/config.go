package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Company struct {
	Name    string `json:"nama"`
	Address string `json:"alamat"`
	Phone   string `json:"telepon"`
	Email   string `json:"email"`
	About   string `json:"tentang"`
}

type Config struct {
	Env           string
	Port          string
	DBDriver      string
	DBDSN         string
	JWTSecret     string
	JWTTTL        time.Duration
	UploadDir     string
	PublicDir     string
	CORSOrigins   string
	AllowRegister bool
	Company       Company
}

// App holds the configuration loaded at boot.
var App = Default()

func Default() Config {
	return Config{
		Env:           "dev",
		Port:          "8000",
		DBDriver:      "mysql",
		DBDSN:         "root:@/sewaalatberat?parseTime=true",
		JWTSecret:     "secret",
		JWTTTL:        24 * time.Hour,
		UploadDir:     "./uploads",
		PublicDir:     "./public",
		CORSOrigins:   "http://localhost:3000",
		AllowRegister: true,
		Company: Company{
			Name: "CV Sewa Alat Berat",
		},
	}
}

func (c Config) IsProd() bool {
	return c.Env == "prod" || c.Env == "production"
}

func Load() (Config, error) {
	// a missing .env is fine, the environment may already carry everything
	_ = godotenv.Load()

	cfg := Default()
	cfg.Env = strings.ToLower(get("APP_ENV", cfg.Env))
	cfg.Port = get("PORT", cfg.Port)
	cfg.DBDriver = strings.ToLower(get("DB_DRIVER", cfg.DBDriver))
	cfg.DBDSN = get("DB_DSN", cfg.DBDSN)
	cfg.JWTTTL = time.Duration(getInt("JWT_TTL_HOURS", 24)) * time.Hour
	cfg.UploadDir = get("UPLOAD_DIR", cfg.UploadDir)
	cfg.PublicDir = get("PUBLIC_DIR", cfg.PublicDir)
	cfg.CORSOrigins = get("CORS_ORIGINS", cfg.CORSOrigins)
	cfg.AllowRegister = getBool("ALLOW_REGISTER", !cfg.IsProd())

	secret := os.Getenv("JWT_SECRET")
	if secret == "" && cfg.IsProd() {
		return cfg, errors.New("JWT_SECRET wajib diisi pada mode prod")
	}
	if secret != "" {
		cfg.JWTSecret = secret
	}

	cfg.Company = Company{
		Name:    get("COMPANY_NAME", cfg.Company.Name),
		Address: get("COMPANY_ADDRESS", ""),
		Phone:   get("COMPANY_PHONE", ""),
		Email:   get("COMPANY_EMAIL", ""),
		About:   get("COMPANY_ABOUT", ""),
	}
	return cfg, nil
}

func get(name, def string) string {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	return v
}

func getInt(name string, def int) int {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil || i <= 0 {
		return def
	}
	return i
}

func getBool(name string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
