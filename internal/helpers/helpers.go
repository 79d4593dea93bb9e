package helpers

import (
	"os"
	"path/filepath"
)

func ContainsStr(s []string, e string) bool {
	return IndexOfStr(s, e) != -1
}

func IndexOfStr(s []string, e string) int {
	for i, a := range s {
		if a == e {
			return i
		}
	}
	return -1
}

// GetProjectRoot walks up from the working directory to the nearest go.mod.
func GetProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(cwd, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			break
		}

		parent := filepath.Dir(cwd)
		if parent == cwd {
			return "", os.ErrNotExist
		}
		cwd = parent
	}

	return cwd, nil
}
