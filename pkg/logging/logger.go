package logging

import (
	"io"
	"os"

	"github.com/escuelaing/webframework/pkg/config"
	"github.com/natefinch/lumberjack"
	"github.com/rs/zerolog"
)

var globalLogger = zerolog.Nop()

// InitGlobalLogger 初始化全局 logger
// 开启文件日志时写入滚动文件（debug 下同时写 stderr）；
// 否则只在 debug 下写 stderr，其余情况丢弃
func InitGlobalLogger(debug bool, cfg *config.Config) {
	var output io.Writer

	if cfg != nil && cfg.Logging.LogToFile {
		fileLogger := &lumberjack.Logger{
			Filename:   cfg.Logging.LogFilePath,
			MaxSize:    cfg.Logging.MaxSize,
			MaxBackups: cfg.Logging.MaxBackups,
			MaxAge:     cfg.Logging.MaxAge,
			Compress:   cfg.Logging.Compress,
		}
		if debug {
			output = io.MultiWriter(fileLogger, os.Stderr)
		} else {
			output = fileLogger
		}
	} else if debug {
		output = os.Stderr
	} else {
		output = io.Discard
	}

	globalLogger = NewLogger(debug, output)
}

// NewLogger 创建 JSON logger，debug 为 false 时只输出 info 及以上
func NewLogger(debug bool, output io.Writer) zerolog.Logger {
	if output == nil {
		output = os.Stderr
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	return zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func Debug(msg string) {
	globalLogger.Debug().Msg(msg)
}

func Info(msg string) {
	globalLogger.Info().Msg(msg)
}

// InfoWith 带附加字段的 info 日志
func InfoWith(msg string, fields map[string]interface{}) {
	globalLogger.Info().Fields(fields).Msg(msg)
}

// ErrorWith 带附加字段的 error 日志
func ErrorWith(msg string, fields map[string]interface{}) {
	globalLogger.Error().Fields(fields).Msg(msg)
}

// WithComponent 返回带 component 字段的子 logger
func WithComponent(component string) zerolog.Logger {
	return globalLogger.With().Str("component", component).Logger()
}
