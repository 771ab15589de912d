package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a SugaredLogger appending line-oriented entries
// ("<time> <LEVEL> <message> <fields>") to path. If the file cannot be opened
// the logger writes to stderr instead. The returned func syncs and closes the file.
func New(path, level string) (*zap.SugaredLogger, func()) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encCfg.ConsoleSeparator = " "
	enc := zapcore.NewConsoleEncoder(encCfg)

	f, openErr := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	var ws zapcore.WriteSyncer
	if openErr != nil {
		ws = zapcore.Lock(os.Stderr)
	} else {
		ws = zapcore.AddSync(f)
	}

	logger := zap.New(zapcore.NewCore(enc, ws, lvl))
	sugar := logger.Sugar()
	if openErr != nil {
		sugar.Warnw("cannot open log file, logging to stderr", "path", path, "error", openErr)
	}

	closeFn := func() {
		_ = logger.Sync()
		if f != nil {
			_ = f.Close()
		}
	}
	return sugar, closeFn
}
