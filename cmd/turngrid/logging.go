package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/turngrid/config"
)

// setupLogging opens the debug log file and builds a JSON zap logger on it
// With debug off it returns a no-op logger and a nil file.
// Output never goes to stdout or stderr: the terminal belongs to the game screen.
func setupLogging(cfg config.LogConfig) (*zap.Logger, *os.File, error) {
	if !cfg.Debug {
		return zap.NewNop(), nil, nil
	}

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, nil, errors.Wrap(err, "create log dir")
	}

	logPath := filepath.Join(cfg.Dir, cfg.File)
	if err := rotateLog(logPath, cfg.MaxSize); err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open log file")
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	zcore := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(f),
		zap.DebugLevel,
	)
	return zap.New(zcore), f, nil
}

// rotateLog moves an oversized log aside as <name>-<timestamp>.log
func rotateLog(logPath string, maxSize int64) error {
	info, err := os.Stat(logPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrap(err, "stat log file")
	}
	if maxSize <= 0 || info.Size() <= maxSize {
		return nil
	}

	ext := filepath.Ext(logPath)
	base := strings.TrimSuffix(logPath, ext)
	rotated := fmt.Sprintf("%s-%s%s", base, time.Now().Format("20060102-150405"), ext)
	if err := os.Rename(logPath, rotated); err != nil {
		return errors.Wrap(err, "rotate log file")
	}
	return nil
}
