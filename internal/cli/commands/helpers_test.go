package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"OptiTools/internal/config"
)

// withStdoutCapture перехватывает Out на время теста.
func withStdoutCapture(t *testing.T, fn func()) string {
	t.Helper()
	old := Out
	var buf bytes.Buffer
	Out = &buf
	defer func() { Out = old }()
	fn()
	return buf.String()
}

// testConfig возвращает конфиг с логом во временном каталоге.
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		DatabaseDSN:  filepath.Join(dir, "test.db"),
		InvoiceTable: "Invoice",
		APIURL:       config.DefaultAPIURL,
		CustomerID:   "cust",
		MessageText:  "hello at",
		LogFile:      filepath.Join(dir, "smsportal.log"),
		LogLevel:     "info",
	}
}

func readLog(t *testing.T, cfg *config.Config) string {
	t.Helper()
	b, err := os.ReadFile(cfg.LogFile)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	return string(b)
}
