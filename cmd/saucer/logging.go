package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	logDir      = "logs"
	logFileName = "saucer.log"
	maxLogSize  = 10 * 1024 * 1024
)

var renameFile = os.Rename

// setupLogging routes the standard logger to logs/saucer.log when debug is set,
// and discards it otherwise; the terminal belongs to the game either way
// Returns the open log file, nil when logging is off or the file cannot be opened
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	var rotateErr error
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("saucer-%s.log", time.Now().Format("20060102-150405")))
		rotateErr = renameFile(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.Printf("=== saucer started, pid %d ===", os.Getpid())
	if rotateErr != nil {
		log.Printf("log rotation failed, appending: %v", rotateErr)
	}
	return f
}
