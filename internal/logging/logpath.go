// Package logging resolves where the tools write their log file and builds
// the zap logger writing to it.
package logging

import (
	"errors"
	"os"
	"path/filepath"
)

const (
	// LogFileName is the log file name used by every candidate and as the last resort.
	LogFileName = "smsportal.log"
	appDirName  = "smsportal"
)

// Candidate produces one log path to try. An error skips the candidate.
type Candidate func() (string, error)

// Resolver tries Candidates in order and returns the first writable path.
type Resolver struct {
	Candidates []Candidate
	Fallback   string
}

// executable is swapped in tests.
var executable = os.Executable

// NewResolver returns the default preference order: next to the executable,
// then the per-user application data directory.
func NewResolver() Resolver {
	return Resolver{
		Candidates: []Candidate{ExecutableDirCandidate, AppDataCandidate},
		Fallback:   LogFileName,
	}
}

// ResolvePath is a shortcut for NewResolver().Resolve().
func ResolvePath() string {
	return NewResolver().Resolve()
}

// Resolve never fails: probe errors are swallowed per candidate and Fallback
// is returned when nothing is writable.
func (r Resolver) Resolve() string {
	for _, c := range r.Candidates {
		p, err := c()
		if err != nil || p == "" {
			continue
		}
		if err := probe(p); err != nil {
			continue
		}
		return p
	}
	return r.Fallback
}

// ExecutableDirCandidate returns LogFileName next to the running binary.
func ExecutableDirCandidate() (string, error) {
	exe, err := executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	dir, err := filepath.Abs(filepath.Dir(exe))
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, LogFileName), nil
}

// AppDataCandidate returns <base>/smsportal/smsportal.log where base is the first
// of LOCALAPPDATA, APPDATA that is set, or the user's home directory.
func AppDataCandidate() (string, error) {
	base := os.Getenv("LOCALAPPDATA")
	if base == "" {
		base = os.Getenv("APPDATA")
	}
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = home
	}
	if base == "" {
		return "", errors.New("no application data directory")
	}
	return filepath.Join(base, appDirName, LogFileName), nil
}

// probe creates the parent directory and opens the file for append.
func probe(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	return f.Close()
}
