package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/piresc/fleettrack/internal/pkg/models"
	"github.com/sirupsen/logrus"
)

// AppLogger is our custom logger that supports multiple outputs
type AppLogger struct {
	*logrus.Logger
	service  string
	filePath string
	file     *os.File
}

// NewAppLogger creates a new application logger
func NewAppLogger(service string, config models.LoggerConfig) (*AppLogger, error) {
	logger := logrus.New()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if config.Format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
	}

	appLogger := &AppLogger{
		Logger:  logger,
		service: service,
	}

	if config.FilePath != "" {
		if err := appLogger.setupFileOutput(config.FilePath); err != nil {
			return nil, fmt.Errorf("failed to setup file output: %w", err)
		}
	}

	return appLogger, nil
}

// setupFileOutput configures file output for the logger
func (al *AppLogger) setupFileOutput(filePath string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	al.filePath = filePath
	al.file = file

	// Set output to both stdout and file
	al.Logger.SetOutput(io.MultiWriter(os.Stdout, file))

	return nil
}

// Close closes the log file
func (al *AppLogger) Close() error {
	if al.file != nil {
		return al.file.Close()
	}
	return nil
}

func (al *AppLogger) entry(fields []Field) *logrus.Entry {
	entry := al.Logger.WithFields(toLogrus(fields))
	if al.service != "" {
		entry = entry.WithField("service", al.service)
	}
	return entry
}

// Debug logs a debug message
func (al *AppLogger) Debug(msg string, fields ...Field) {
	al.entry(fields).Debug(msg)
}

// Info logs an info message
func (al *AppLogger) Info(msg string, fields ...Field) {
	al.entry(fields).Info(msg)
}

// Warn logs a warning message
func (al *AppLogger) Warn(msg string, fields ...Field) {
	al.entry(fields).Warn(msg)
}

// Error logs an error message
func (al *AppLogger) Error(msg string, fields ...Field) {
	al.entry(fields).Error(msg)
}

// Fatal logs a message and exits the process
func (al *AppLogger) Fatal(msg string, fields ...Field) {
	al.entry(fields).Fatal(msg)
}

// LogHTTPRequest logs an HTTP request with its outcome
func (al *AppLogger) LogHTTPRequest(method, path, clientIP, requestID string, statusCode int, latency time.Duration, err error) {
	entry := al.entry(nil).WithFields(logrus.Fields{
		"status":     statusCode,
		"latency":    latency.String(),
		"latency_ms": latency.Milliseconds(),
		"client_ip":  clientIP,
		"method":     method,
		"path":       path,
		"request_id": requestID,
	})
	if err != nil {
		entry = entry.WithError(err)
	}

	// Log with appropriate level based on status code
	if statusCode >= 500 {
		entry.Error("Server error")
	} else if statusCode >= 400 {
		entry.Warn("Client error")
	} else {
		entry.Info("Request processed")
	}
}
