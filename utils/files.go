package utils

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ReplaceFile writes data to a uniquely named temp file next to path and
// renames it over path, so readers never observe a partially written file.
func ReplaceFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmp, data, perm); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
