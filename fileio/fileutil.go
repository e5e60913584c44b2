package fileio

import (
	"os"
	"path/filepath"
)

// CreateFile creates (or truncates) path, creating missing parent directories
func CreateFile(path string) (*os.File, error) {
	f, err := os.Create(path)
	if err != nil {
		err2 := os.MkdirAll(filepath.Dir(path), os.ModePerm)
		if err2 == nil {
			f, err = os.Create(path)
		}
		if err != nil {
			return nil, err
		}
	}

	return f, nil
}

func writeFile(text string, targetPath string) error {
	f, err := CreateFile(targetPath)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err = f.Write([]byte(text)); err != nil {
		return err
	}

	return nil
}

func isDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}
