// Package watch runs the geofence automation loop as a background process.
package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/adrg/xdg"
)

const (
	// AppName is the application name used for runtime directories.
	AppName = "pointeuse"
	// PIDFileName is the PID file name.
	PIDFileName = "pointeuse-watch.pid"
)

// Errors
var (
	ErrNotRunning     = fmt.Errorf("watch is not running")
	ErrAlreadyRunning = fmt.Errorf("watch is already running")
)

// PIDFile manages the watcher PID file.
type PIDFile struct {
	path string
}

// NewPIDFile creates a new PID file manager.
func NewPIDFile() *PIDFile {
	return &PIDFile{path: PIDFilePath()}
}

// PIDFilePath returns the path to the PID file. The XDG state directory is
// user-specific and survives reboots, unlike the runtime dir on macOS.
func PIDFilePath() string {
	return filepath.Join(xdg.StateHome, AppName, PIDFileName)
}

// Write writes the current process PID to the file.
func (p *PIDFile) Write() error {
	return p.WritePID(os.Getpid())
}

// WritePID writes a specific PID to the file.
func (p *PIDFile) WritePID(pid int) error {
	if err := os.MkdirAll(filepath.Dir(p.path), 0755); err != nil {
		return fmt.Errorf("failed to create PID directory: %w", err)
	}
	if err := os.WriteFile(p.path, []byte(strconv.Itoa(pid)), 0644); err != nil {
		return fmt.Errorf("failed to write PID file: %w", err)
	}
	return nil
}

// Read reads the PID from the file.
func (p *PIDFile) Read() (int, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, ErrNotRunning
		}
		return 0, fmt.Errorf("failed to read PID file: %w", err)
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("invalid PID in file: %w", err)
	}
	return pid, nil
}

// Remove removes the PID file.
func (p *PIDFile) Remove() error {
	if err := os.Remove(p.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove PID file: %w", err)
	}
	return nil
}

// RunningPID returns the PID if the watcher is running, or 0 if not.
func (p *PIDFile) RunningPID() int {
	pid, err := p.Read()
	if err != nil {
		return 0
	}
	if !IsProcessRunning(pid) {
		return 0
	}
	return pid
}

// Path returns the PID file path.
func (p *PIDFile) Path() string {
	return p.path
}

// IsProcessRunning checks if a process with the given PID is running.
func IsProcessRunning(pid int) bool {
	if pid <= 0 {
		return false
	}
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	// On Unix FindProcess always succeeds, so probe with signal 0.
	return process.Signal(syscall.Signal(0)) == nil
}
