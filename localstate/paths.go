package localstate

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	envHome    = "ADMIN_STATE_HOME"       // override for tests and multi-profile use
	dirName    = ".futuresoulmate-admin" // default under $HOME
	dbFilename = "session.db"
)

// DataDir returns the directory where local state is stored
// (~/.futuresoulmate-admin unless ADMIN_STATE_HOME is set).
// It creates the directory with 0700 permissions if it does not exist.
func DataDir() (string, error) {
	return DataDirAt(os.Getenv(envHome))
}

// DataDirAt is DataDir with an explicit override; "" means the default.
func DataDirAt(custom string) (string, error) {
	if custom != "" {
		if err := os.MkdirAll(custom, 0o700); err != nil {
			return "", err
		}
		return custom, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine user home: %w", err)
	}
	dir := filepath.Join(home, dirName)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return dir, nil
}

// DBPath returns the absolute path to the session database under dir
// (DataDir when dir is empty).
func DBPath(dir string) (string, error) {
	dir, err := DataDirAt(firstNonEmpty(dir, os.Getenv(envHome)))
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, dbFilename), nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
