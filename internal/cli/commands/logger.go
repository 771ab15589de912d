package commands

import (
	"OptiTools/internal/config"
	"OptiTools/internal/logging"

	"go.uber.org/zap"
)

// openLogger открывает файловый логгер: путь из конфига или найденный резолвером.
func openLogger(cfg *config.Config) (*zap.SugaredLogger, string, func()) {
	path := cfg.LogFile
	if path == "" {
		path = logging.ResolvePath()
	}
	log, done := logging.New(path, cfg.LogLevel)
	return log, path, done
}
