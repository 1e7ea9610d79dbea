// Package instance keeps a single API server per state directory using an
// advisory file lock and a PID file beside it.
package instance

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofrs/flock"
)

const (
	LockFileName = "moviesearch.lock"
	PIDFileName  = "moviesearch.pid"
)

// ErrAlreadyRunning is returned by Acquire when another process holds the lock.
var ErrAlreadyRunning = errors.New("moviesearch server already running")

// Lock is a held instance lock.
type Lock struct {
	lockPath string
	pidPath  string
	lock     *flock.Flock
}

// Acquire takes the instance lock in stateDir and records the current PID.
func Acquire(stateDir string) (*Lock, error) {
	if strings.TrimSpace(stateDir) == "" {
		return nil, errors.New("instance: state directory is required")
	}
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		return nil, fmt.Errorf("create state directory: %w", err)
	}
	l := &Lock{
		lockPath: filepath.Join(stateDir, LockFileName),
		pidPath:  filepath.Join(stateDir, PIDFileName),
	}
	l.lock = flock.New(l.lockPath)

	ok, err := l.lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, ErrAlreadyRunning
	}

	value := strconv.Itoa(os.Getpid()) + "\n"
	if err := os.WriteFile(l.pidPath, []byte(value), 0o644); err != nil {
		_ = l.lock.Unlock()
		return nil, fmt.Errorf("write pid file: %w", err)
	}
	return l, nil
}

// Path returns the lock file path.
func (l *Lock) Path() string {
	return l.lockPath
}

// Release removes the PID file and drops the lock.
func (l *Lock) Release() error {
	if l == nil || l.lock == nil {
		return nil
	}
	if err := os.Remove(l.pidPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		_ = l.lock.Unlock()
		return fmt.Errorf("remove pid file %q: %w", l.pidPath, err)
	}
	if err := l.lock.Unlock(); err != nil {
		return fmt.Errorf("release lock: %w", err)
	}
	return nil
}

// Status describes whether a server currently holds the lock.
type Status struct {
	Running  bool
	PID      int
	LockPath string
	PIDPath  string
}

// Inspect probes the lock in stateDir without holding it.
func Inspect(stateDir string) (Status, error) {
	status := Status{
		LockPath: filepath.Join(stateDir, LockFileName),
		PIDPath:  filepath.Join(stateDir, PIDFileName),
	}
	if _, err := os.Stat(status.LockPath); errors.Is(err, os.ErrNotExist) {
		return status, nil
	}

	probe := flock.New(status.LockPath)
	ok, err := probe.TryLock()
	if err != nil {
		return status, fmt.Errorf("probe lock: %w", err)
	}
	if ok {
		_ = probe.Unlock()
		return status, nil
	}

	status.Running = true
	data, err := os.ReadFile(status.PIDPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return status, nil
		}
		return status, fmt.Errorf("read pid file %q: %w", status.PIDPath, err)
	}
	if pid, parseErr := strconv.Atoi(strings.TrimSpace(string(data))); parseErr == nil && pid > 0 {
		status.PID = pid
	}
	return status, nil
}
