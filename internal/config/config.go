package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Upstream  UpstreamConfig
	Issuer    IssuerConfig
	Tax       TaxConfig
	Numbering NumberingConfig
	Storage   StorageConfig
	Email     EmailConfig
	CORS      CORSConfig
	Log       LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// UpstreamConfig holds settings for the legacy reference backend.
type UpstreamConfig struct {
	BaseURL     string        `mapstructure:"base_url"`
	Timeout     time.Duration `mapstructure:"timeout"`
	MaxAttempts int           `mapstructure:"max_attempts"`
}

// IssuerConfig holds the fixed issuer identity printed on every document.
// These are organization constants, injected rather than hardcoded in the
// renderer.
type IssuerConfig struct {
	Name         string   `mapstructure:"name"`
	AddressLines []string `mapstructure:"address_lines"`
	GSTIN        string   `mapstructure:"gstin"`
	PAN          string   `mapstructure:"pan"`
	Signatory    string   `mapstructure:"signatory"`
	BankName     string   `mapstructure:"bank_name"`
	BankBranch   string   `mapstructure:"bank_branch"`
	IFSC         string   `mapstructure:"ifsc"`
	AccountNo    string   `mapstructure:"account_no"`
}

// TaxConfig holds the region-based default tax policy.
type TaxConfig struct {
	HomeState    string  `mapstructure:"home_state"`
	FallbackRate float64 `mapstructure:"fallback_rate"`
}

// NumberingConfig holds invoice number composition settings.
type NumberingConfig struct {
	Prefix string `mapstructure:"prefix"`
}

// StorageConfig holds rendered-document storage settings.
type StorageConfig struct {
	Provider      string `mapstructure:"provider"` // "local" or "s3"
	LocalDir      string `mapstructure:"local_dir"`
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// EmailConfig holds invoice notification settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"` // "noop" or "ses"
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the LITVOICE_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("LITVOICE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// Upstream defaults
	v.SetDefault("upstream.base_url", "http://localhost:5000/api")
	v.SetDefault("upstream.timeout", "10s")
	v.SetDefault("upstream.max_attempts", 1)

	// Issuer defaults
	v.SetDefault("issuer.name", "M/S. L-IT TRULY SERVICES PRIVATE LIMITED")
	v.SetDefault("issuer.address_lines", []string{
		"No 33, 2nd Floor, Chikathoguru Main Road,",
		"Hosur Road, Electronic City, Bangalore,",
		"Karnataka, India, 560100",
	})
	v.SetDefault("issuer.gstin", "29AAECL9590K1ZP")
	v.SetDefault("issuer.pan", "AAECL9590K")
	v.SetDefault("issuer.signatory", "For L-IT Truly Services Pvt Ltd")
	v.SetDefault("issuer.bank_name", "L-IT TRULY SERVICES PVT LTD")
	v.SetDefault("issuer.bank_branch", "IDFC, Electronic City, Bangalore")
	v.SetDefault("issuer.ifsc", "IDFB0080189")
	v.SetDefault("issuer.account_no", "10088308677")

	// Tax defaults
	v.SetDefault("tax.home_state", "Karnataka")
	v.SetDefault("tax.fallback_rate", 18.0)

	// Numbering defaults
	v.SetDefault("numbering.prefix", "LIT")

	// Storage defaults
	v.SetDefault("storage.provider", "local")
	v.SetDefault("storage.local_dir", "invoices")
	v.SetDefault("storage.region", "ap-south-1")
	v.SetDefault("storage.bucket", "lit-invoices")
	v.SetDefault("storage.endpoint", "")
	v.SetDefault("storage.presign_expiry", 3600)

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "ap-south-1")
	v.SetDefault("email.from_address", "billing@l-ittruly.com")
	v.SetDefault("email.from_name", "L-IT Truly Billing")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":            "LITVOICE_SERVER_PORT",
		"server.read_timeout":    "LITVOICE_SERVER_READ_TIMEOUT",
		"server.write_timeout":   "LITVOICE_SERVER_WRITE_TIMEOUT",
		"server.environment":     "LITVOICE_SERVER_ENVIRONMENT",
		"upstream.base_url":      "LITVOICE_UPSTREAM_BASE_URL",
		"upstream.timeout":       "LITVOICE_UPSTREAM_TIMEOUT",
		"upstream.max_attempts":  "LITVOICE_UPSTREAM_MAX_ATTEMPTS",
		"issuer.name":            "LITVOICE_ISSUER_NAME",
		"issuer.gstin":           "LITVOICE_ISSUER_GSTIN",
		"issuer.pan":             "LITVOICE_ISSUER_PAN",
		"issuer.signatory":       "LITVOICE_ISSUER_SIGNATORY",
		"issuer.bank_name":       "LITVOICE_ISSUER_BANK_NAME",
		"issuer.bank_branch":     "LITVOICE_ISSUER_BANK_BRANCH",
		"issuer.ifsc":            "LITVOICE_ISSUER_IFSC",
		"issuer.account_no":      "LITVOICE_ISSUER_ACCOUNT_NO",
		"tax.home_state":         "LITVOICE_TAX_HOME_STATE",
		"tax.fallback_rate":      "LITVOICE_TAX_FALLBACK_RATE",
		"numbering.prefix":       "LITVOICE_NUMBERING_PREFIX",
		"storage.provider":       "LITVOICE_STORAGE_PROVIDER",
		"storage.local_dir":      "LITVOICE_STORAGE_LOCAL_DIR",
		"storage.region":         "LITVOICE_STORAGE_REGION",
		"storage.bucket":         "LITVOICE_STORAGE_BUCKET",
		"storage.endpoint":       "LITVOICE_STORAGE_ENDPOINT",
		"storage.access_key":     "LITVOICE_STORAGE_ACCESS_KEY",
		"storage.secret_key":     "LITVOICE_STORAGE_SECRET_KEY",
		"storage.presign_expiry": "LITVOICE_STORAGE_PRESIGN_EXPIRY",
		"email.provider":         "LITVOICE_EMAIL_PROVIDER",
		"email.region":           "LITVOICE_EMAIL_REGION",
		"email.from_address":     "LITVOICE_EMAIL_FROM_ADDRESS",
		"email.from_name":        "LITVOICE_EMAIL_FROM_NAME",
		"log.level":              "LITVOICE_LOG_LEVEL",
		"log.format":             "LITVOICE_LOG_FORMAT",
		"cors.allowed_origins":   "LITVOICE_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if LITVOICE_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("LITVOICE_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Upstream = UpstreamConfig{
		BaseURL:     v.GetString("upstream.base_url"),
		Timeout:     v.GetDuration("upstream.timeout"),
		MaxAttempts: v.GetInt("upstream.max_attempts"),
	}
	cfg.Issuer = IssuerConfig{
		Name:         v.GetString("issuer.name"),
		AddressLines: v.GetStringSlice("issuer.address_lines"),
		GSTIN:        v.GetString("issuer.gstin"),
		PAN:          v.GetString("issuer.pan"),
		Signatory:    v.GetString("issuer.signatory"),
		BankName:     v.GetString("issuer.bank_name"),
		BankBranch:   v.GetString("issuer.bank_branch"),
		IFSC:         v.GetString("issuer.ifsc"),
		AccountNo:    v.GetString("issuer.account_no"),
	}
	cfg.Tax = TaxConfig{
		HomeState:    v.GetString("tax.home_state"),
		FallbackRate: v.GetFloat64("tax.fallback_rate"),
	}
	cfg.Numbering = NumberingConfig{
		Prefix: v.GetString("numbering.prefix"),
	}
	cfg.Storage = StorageConfig{
		Provider:      v.GetString("storage.provider"),
		LocalDir:      v.GetString("storage.local_dir"),
		Region:        v.GetString("storage.region"),
		Bucket:        v.GetString("storage.bucket"),
		Endpoint:      v.GetString("storage.endpoint"),
		AccessKey:     v.GetString("storage.access_key"),
		SecretKey:     v.GetString("storage.secret_key"),
		PresignExpiry: v.GetInt64("storage.presign_expiry"),
	}
	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: splitAndTrim(v.GetString("cors.allowed_origins")),
	}

	return cfg, nil
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
