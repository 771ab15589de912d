package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// DefaultAPIURL — endpoint пакетной отправки SMS у провайдера.
const DefaultAPIURL = "https://rest.smsportal.com/bulkmessages"

// ErrMissingCredentials возвращается, когда не задан ключ или секрет API.
var ErrMissingCredentials = errors.New("missing SMSPORTAL_API_KEY or SMSPORTAL_API_SECRET")

type Config struct {
	// Database patch settings
	DatabaseDSN  string `env:"DATABASE_URI"`
	InvoiceTable string `env:"INVOICE_TABLE"`

	// SMS sender settings
	APIKey       string   `env:"SMSPORTAL_API_KEY"`
	APISecret    string   `env:"SMSPORTAL_API_SECRET"`
	APIURL       string   `env:"SMSPORTAL_URL"`
	Destinations []string `env:"SMSPORTAL_DESTINATIONS" envSeparator:","`
	CustomerID   string   `env:"SMSPORTAL_CUSTOMER_ID"`
	MessageText  string   `env:"SMSPORTAL_MESSAGE"`

	// Logging
	LogFile  string `env:"LOG_FILE"`
	LogLevel string `env:"LOG_LEVEL"`

	// Portal stub settings
	BaseURL         string `env:"BASE_URL"`
	StubDatabaseDSN string `env:"STUB_DATABASE_URI"`

	Version bool `env:"-"` // show version and exit (flag only)
}

// destinationsFlag позволяет передавать номера через запятую или повторным -to.
type destinationsFlag struct {
	dst *[]string
	set bool
}

func (f *destinationsFlag) String() string {
	if f.dst == nil {
		return ""
	}
	return strings.Join(*f.dst, ",")
}

func (f *destinationsFlag) Set(v string) error {
	// первое значение из флага заменяет значение из env
	if !f.set {
		*f.dst = nil
		f.set = true
	}
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			*f.dst = append(*f.dst, p)
		}
	}
	return nil
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// флаги переопределяют значения из env
	// Database patch flags
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database file path or DSN (file path, file: URI or postgres://)")
	flag.StringVar(&cfg.InvoiceTable, "table", cfg.InvoiceTable, "invoice table name")
	// SMS flags
	flag.StringVar(&cfg.APIKey, "api-key", cfg.APIKey, "SMS provider API key")
	flag.StringVar(&cfg.APISecret, "api-secret", cfg.APISecret, "SMS provider API secret")
	flag.StringVar(&cfg.APIURL, "api-url", cfg.APIURL, "bulk messages endpoint URL")
	flag.Var(&destinationsFlag{dst: &cfg.Destinations}, "to", "destination phone numbers, comma separated")
	flag.StringVar(&cfg.CustomerID, "customer-id", cfg.CustomerID, "customer id attached to every message")
	flag.StringVar(&cfg.MessageText, "message", cfg.MessageText, "message text; current time is appended")
	// Logging flags
	flag.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "log file path (resolved automatically when empty)")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	// Stub flags
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "portal stub listen address host:port")
	flag.StringVar(&cfg.StubDatabaseDSN, "stub-db", cfg.StubDatabaseDSN, "portal stub database DSN")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show version and exit")

	flag.Parse()

	// Defaults
	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = filepath.Join(executableDir(), "test.db")
	}
	if cfg.InvoiceTable == "" {
		cfg.InvoiceTable = "Invoice"
	}
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.CustomerID == "" {
		cfg.CustomerID = "optimax_test_2"
	}
	if cfg.MessageText == "" {
		cfg.MessageText = "This is a test message from smsportal at"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	// BaseURL must be "address:port" (no scheme, no path). Otherwise use default.
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = "localhost:8082"
	}
	if cfg.StubDatabaseDSN == "" {
		cfg.StubDatabaseDSN = "file::memory:?cache=shared"
	}

	return cfg
}

// Credentials возвращает пару ключ/секрет. Флаги имеют приоритет над переменными
// окружения, окружение — над .env (godotenv не перезаписывает уже заданные переменные).
func (c *Config) Credentials() (key, secret string, err error) {
	key = strings.TrimSpace(c.APIKey)
	secret = strings.TrimSpace(c.APISecret)
	if key == "" || secret == "" {
		return "", "", ErrMissingCredentials
	}
	return key, secret, nil
}

// executableDir возвращает каталог запущенного бинарника (с раскрытыми симлинками).
func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}
