package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/DeRuina/timberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/blogem/logentry-manager/config"
)

// New builds the application logger: a console core on stderr and, when
// LOG_FILE_PATH is set, a JSON file core rotated by timberjack.
func New(cfg *config.Config) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	consoleEncoderCfg, fileEncoderCfg := encoderConfigs()

	var consoleEncoder zapcore.Encoder
	if cfg.IsDevelopment() {
		consoleEncoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		consoleEncoder = zapcore.NewConsoleEncoder(consoleEncoderCfg)
	} else {
		consoleEncoder = zapcore.NewJSONEncoder(fileEncoderCfg)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(consoleEncoder, zapcore.Lock(os.Stderr), level),
	}

	if cfg.LogFilePath != "" {
		writer, err := newFileWriter(cfg)
		if err != nil {
			return nil, err
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(fileEncoderCfg), writer, level))
	}

	return zap.New(
		zapcore.NewTee(cores...),
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	), nil
}

// newFileWriter ensures the log directory exists and wraps a rotating timberjack writer
func newFileWriter(cfg *config.Config) (zapcore.WriteSyncer, error) {
	if dir := filepath.Dir(cfg.LogFilePath); dir != "." && dir != "/" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
		}
	}

	return zapcore.AddSync(&timberjack.Logger{
		Filename:   cfg.LogFilePath,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
		LocalTime:  true,
	}), nil
}

func encoderConfigs() (zapcore.EncoderConfig, zapcore.EncoderConfig) {
	console := zap.NewDevelopmentEncoderConfig()
	console.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.000")

	file := zap.NewProductionEncoderConfig()
	file.TimeKey = "timestamp"
	file.EncodeTime = zapcore.ISO8601TimeEncoder

	return console, file
}
