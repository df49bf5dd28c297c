package config

import (
	"log"
	"os"
)

type Config struct {
	HTTPAddr      string
	DatabaseURL   string
	InternalToken string

	LogoPath    string
	CompanyName string
	CompanyAddr string
	CompanyVAT  string
	CompanyWeb  string
}

// Load reads the optional settings. The server-only required values stay
// empty; MustLoad enforces them.
func Load() Config {
	return Config{
		HTTPAddr:    env("HTTP_ADDR", ":8080"),
		LogoPath:    env("LOGO_PATH", "logo.png"),
		CompanyName: env("COMPANY_NAME", "Presidia Group srl"),
		CompanyAddr: env("COMPANY_ADDR", "Via Vittorio Veneto, 180/1 - AREZZO"),
		CompanyVAT:  env("COMPANY_VAT", "P.IVA 07141051214"),
		CompanyWeb:  env("COMPANY_WEB", "www.presidiagroup.it"),
	}
}

func MustLoad() Config {
	cfg := Load()
	cfg.DatabaseURL = mustEnv("DATABASE_URL")
	cfg.InternalToken = mustEnv("INTERNAL_TOKEN")
	return cfg
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing env %s", k)
	}
	return v
}
