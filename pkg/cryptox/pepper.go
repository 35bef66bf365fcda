package cryptox

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// The pepper is a server side secret appended to every password before
// hashing. It lives in a file next to the database and is created on
// first use.
var (
	pepperMu   sync.Mutex
	pepper     string
	pepperFile = "pepper"
)

// SetPepperPath sets the pepper file and forgets any pepper already loaded.
func SetPepperPath(file string) {
	pepperMu.Lock()
	defer pepperMu.Unlock()

	pepperFile = filepath.Clean(file)
	pepper = ""
}

// Pepper returns the pepper, loading or generating it on first use.
func Pepper() (string, error) {
	pepperMu.Lock()
	defer pepperMu.Unlock()

	if pepper != "" {
		return pepper, nil
	}

	p, err := loadPepper(pepperFile)
	if errors.Is(err, os.ErrNotExist) {
		p, err = createPepper(pepperFile)
	}
	if err != nil {
		return "", fmt.Errorf("cryptox: pepper %s: %w", pepperFile, err)
	}

	pepper = p
	return pepper, nil
}

func loadPepper(file string) (string, error) {
	b, err := os.ReadFile(file)
	if err != nil {
		return "", err
	}

	p := strings.TrimSpace(string(b))
	if p == "" {
		return "", errors.New("file is empty")
	}
	return p, nil
}

// createPepper writes a new pepper with O_EXCL so two processes starting
// together cannot end up with different secrets.
func createPepper(file string) (string, error) {
	if err := os.MkdirAll(filepath.Dir(file), 0o750); err != nil {
		return "", err
	}

	p, err := RandomString(PepperBytes)
	if err != nil {
		return "", err
	}

	f, err := os.OpenFile(file, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if errors.Is(err, os.ErrExist) {
		return loadPepper(file)
	}
	if err != nil {
		return "", err
	}

	if _, err := f.WriteString(p); err != nil {
		_ = f.Close()
		return "", err
	}
	return p, f.Close()
}
