package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Env holds all runtime configuration. Values come from the environment, with
// an optional .env file for local development.
type Env struct {
	AppAddr string
	GinMode string

	LogLevel  string
	LogFormat string

	CORSAllowedOrigins []string

	TemplateDir string
	LogoPath    string

	// Image URLs referencing the internal storage host are rewritten to the
	// public base URL so headless Chrome can fetch them.
	PublicStorageURL  string
	InternalMediaHost string

	BrowserBin string
	PDFTimeout time.Duration

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	MailFrom     string
	MailFromName string
	MailTimeout  time.Duration
}

// LoadEnv reads configuration from the environment. A missing .env file is not
// an error.
func LoadEnv() Env {
	_ = godotenv.Load()

	return Env{
		AppAddr: getString("APP_ADDR", ":8080"),
		GinMode: getString("GIN_MODE", ""),

		LogLevel:  getString("LOG_LEVEL", "info"),
		LogFormat: getString("LOG_FORMAT", "console"),

		CORSAllowedOrigins: getList("CORS_ALLOWED_ORIGINS", []string{"*"}),

		TemplateDir: getString("TEMPLATE_DIR", "templates"),
		LogoPath:    getString("LOGO_PATH", "assets/logo.png"),

		PublicStorageURL:  getString("PUBLIC_STORAGE_URL", "http://127.0.0.1:54321"),
		InternalMediaHost: getString("INTERNAL_MEDIA_HOST", "kong:8000"),

		BrowserBin: getString("BROWSER_BIN", ""),
		PDFTimeout: getDuration("PDF_TIMEOUT", 30*time.Second),

		SMTPHost:     getString("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:     getInt("SMTP_PORT", 587),
		SMTPUser:     getString("SMTP_USER", ""),
		SMTPPassword: getString("SMTP_PASSWORD", ""),
		MailFrom:     getString("MAIL_FROM", ""),
		MailFromName: getString("MAIL_FROM_NAME", "Cox & Kings"),
		MailTimeout:  getDuration("MAIL_TIMEOUT", 60*time.Second),
	}
}

func getString(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func getInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func getList(key string, def []string) []string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
