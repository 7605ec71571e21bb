/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package log

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

import (
	"github.com/natefinch/lumberjack"

	"github.com/pkg/errors"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type (
	// LogLevel represents the level of logging.
	LogLevel int8
	// LogType represents the type of logging.
	LogType string
)

const (
	// DebugLevel logs are typically voluminous, and are usually disabled in
	// production.
	DebugLevel = LogLevel(zapcore.DebugLevel)
	// InfoLevel is the default logging priority.
	InfoLevel = LogLevel(zapcore.InfoLevel)
	// WarnLevel logs are more important than Info, but don't need individual
	// human review.
	WarnLevel = LogLevel(zapcore.WarnLevel)
	// ErrorLevel logs are high-priority.
	ErrorLevel = LogLevel(zapcore.ErrorLevel)
	// PanicLevel logs a message, then panics.
	PanicLevel = LogLevel(zapcore.PanicLevel)
	// FatalLevel logs a message, then calls os.Exit(1).
	FatalLevel = LogLevel(zapcore.FatalLevel)

	_minLevel = DebugLevel
	_maxLevel = FatalLevel

	MainLog     = LogType("main")
	SequenceLog = LogType("sequence")

	defaultLoggerLevel = InfoLevel
)

type LoggingConfig struct {
	LogName         string   `yaml:"log_name" json:"log_name" default:"base36.log"`
	LogPath         string   `yaml:"log_path" json:"log_path"`
	LogLevel        LogLevel `yaml:"log_level" json:"log_level"`
	LogMaxSize      int      `yaml:"log_max_size" json:"log_max_size" default:"10" validate:"gte=0"`
	LogMaxBackups   int      `yaml:"log_max_backups" json:"log_max_backups" default:"5" validate:"gte=0"`
	LogMaxAge       int      `yaml:"log_max_age" json:"log_max_age" default:"30" validate:"gte=0"`
	LogCompress     bool     `yaml:"log_compress" json:"log_compress"`
	SequenceLogName string   `yaml:"sequence_log_name" json:"sequence_log_name" default:"sequence.log"`
}

func (l *LogLevel) UnmarshalText(text []byte) error {
	if l == nil {
		return errors.New("can't unmarshal a nil *Level")
	}
	if !l.unmarshalText(text) && !l.unmarshalText(bytes.ToLower(text)) {
		return fmt.Errorf("unrecognized level: %q", text)
	}
	return nil
}

func (l *LogLevel) unmarshalText(text []byte) bool {
	switch string(text) {
	case "debug", "DEBUG":
		*l = DebugLevel
	case "info", "INFO", "": // make the zero value useful
		*l = InfoLevel
	case "warn", "WARN":
		*l = WarnLevel
	case "error", "ERROR":
		*l = ErrorLevel
	case "panic", "PANIC":
		*l = PanicLevel
	case "fatal", "FATAL":
		*l = FatalLevel
	default:
		return false
	}
	return true
}

func (l LogLevel) MarshalText() ([]byte, error) {
	return []byte(zapcore.Level(l).String()), nil
}

// Logger is implemented by the global logger.
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})
	Info(v ...interface{})
	Infof(format string, v ...interface{})
	Warn(v ...interface{})
	Warnf(format string, v ...interface{})
	Error(v ...interface{})
	Errorf(format string, v ...interface{})
	Fatal(v ...interface{})
	Fatalf(format string, v ...interface{})
}

var (
	globalLogger *compositeLogger

	defaultLoggingConfig = &LoggingConfig{
		LogName:         "base36.log",
		LogLevel:        InfoLevel,
		LogMaxSize:      10,
		LogMaxBackups:   5,
		LogMaxAge:       30,
		SequenceLogName: "sequence.log",
	}
)

var _ Logger = (*compositeLogger)(nil)

func init() {
	globalLogger = NewCompositeLogger(defaultLoggingConfig)
}

// Init replaces the global logger.
func Init(cfg *LoggingConfig) {
	if cfg == nil {
		cfg = defaultLoggingConfig
	}
	globalLogger = NewCompositeLogger(cfg)
}

// DefaultConfig returns a copy of the built-in logging configuration.
func DefaultConfig() LoggingConfig {
	return *defaultLoggingConfig
}

type compositeLogger struct {
	mainLog     *zap.SugaredLogger
	sequenceLog *zap.SugaredLogger
}

func NewCompositeLogger(cfg *LoggingConfig) *compositeLogger {
	return &compositeLogger{
		mainLog:     NewLogger(MainLog, cfg),
		sequenceLog: NewLogger(SequenceLog, cfg),
	}
}

// NewLogger builds a console logger on stderr, teed into a rotated file when
// LogPath is set. Only the main log honors the configured level.
func NewLogger(logType LogType, cfg *LoggingConfig) *zap.SugaredLogger {
	syncer := zapcore.AddSync(os.Stderr)
	if len(cfg.LogPath) > 0 {
		syncer = zapcore.NewMultiWriteSyncer(zapcore.AddSync(buildLumberJack(cfg.LogPath, logType, cfg)), syncer)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	encoder := zapcore.NewConsoleEncoder(encoderConfig)
	level := zap.DebugLevel
	if logType == MainLog {
		level = getLoggerLevel(cfg.LogLevel)
	}
	core := zapcore.NewCore(encoder, syncer, zap.NewAtomicLevelAt(level))
	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(2)).Sugar()
}

//nolint:staticcheck
func buildLumberJack(logPath string, logType LogType, cfg *LoggingConfig) *lumberjack.Logger {
	var logName string

	switch logType {
	case MainLog:
		logName = cfg.LogName
	case SequenceLog:
		logName = cfg.SequenceLogName
	}

	return &lumberjack.Logger{
		Filename:   filepath.Join(logPath, logName),
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	}
}

func getLoggerLevel(level LogLevel) zapcore.Level {
	if level < _minLevel || level > _maxLevel {
		return zapcore.Level(defaultLoggerLevel)
	}
	return zapcore.Level(level)
}

func (c *compositeLogger) Debug(v ...interface{}) {
	c.mainLog.Debug(v...)
}

func (c *compositeLogger) Debugf(format string, v ...interface{}) {
	c.mainLog.Debugf(format, v...)
}

func (c *compositeLogger) DebugfWithLogType(logType LogType, format string, v ...interface{}) {
	c.mainLog.Debugf(format, v...)
	if logType == SequenceLog {
		c.sequenceLog.Debugf(format, v...)
	}
}

func (c *compositeLogger) Info(v ...interface{}) {
	c.mainLog.Info(v...)
}

func (c *compositeLogger) Infof(format string, v ...interface{}) {
	c.mainLog.Infof(format, v...)
}

// InfofWithLogType writes to the main log and, for SequenceLog, to the sequence log too.
func (c *compositeLogger) InfofWithLogType(logType LogType, format string, v ...interface{}) {
	c.mainLog.Infof(format, v...)
	if logType == SequenceLog {
		c.sequenceLog.Infof(format, v...)
	}
}

func (c *compositeLogger) Warn(v ...interface{}) {
	c.mainLog.Warn(v...)
}

func (c *compositeLogger) Warnf(format string, v ...interface{}) {
	c.mainLog.Warnf(format, v...)
}

func (c *compositeLogger) Error(v ...interface{}) {
	c.mainLog.Error(v...)
}

func (c *compositeLogger) Errorf(format string, v ...interface{}) {
	c.mainLog.Errorf(format, v...)
}

func (c *compositeLogger) Fatal(v ...interface{}) {
	c.mainLog.Fatal(v...)
}

func (c *compositeLogger) Fatalf(format string, v ...interface{}) {
	c.mainLog.Fatalf(format, v...)
}

// Sync flushes buffered entries of both logs.
func Sync() {
	_ = globalLogger.mainLog.Sync()
	_ = globalLogger.sequenceLog.Sync()
}

// Debug ...
func Debug(v ...interface{}) {
	globalLogger.Debug(v...)
}

// Debugf ...
func Debugf(format string, v ...interface{}) {
	globalLogger.Debugf(format, v...)
}

// DebugfWithLogType ...
func DebugfWithLogType(logType LogType, format string, v ...interface{}) {
	globalLogger.DebugfWithLogType(logType, format, v...)
}

// Info ...
func Info(v ...interface{}) {
	globalLogger.Info(v...)
}

// Infof ...
func Infof(format string, v ...interface{}) {
	globalLogger.Infof(format, v...)
}

// InfofWithLogType ...
func InfofWithLogType(logType LogType, format string, v ...interface{}) {
	globalLogger.InfofWithLogType(logType, format, v...)
}

// Warn ...
func Warn(v ...interface{}) {
	globalLogger.Warn(v...)
}

// Warnf ...
func Warnf(format string, v ...interface{}) {
	globalLogger.Warnf(format, v...)
}

// Error ...
func Error(v ...interface{}) {
	globalLogger.Error(v...)
}

// Errorf ...
func Errorf(format string, v ...interface{}) {
	globalLogger.Errorf(format, v...)
}

// Fatal ...
func Fatal(v ...interface{}) {
	globalLogger.Fatal(v...)
}

// Fatalf ...
func Fatalf(format string, v ...interface{}) {
	globalLogger.Fatalf(format, v...)
}
