package utils

import (
	"os"
)

// IsFile tests wether given path exists and is a file
func IsFile(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}

	return info.Mode().IsRegular()
}

// IsDirectory tests wether given path exists and is a directory
func IsDirectory(dirPath string) bool {
	info, err := os.Stat(dirPath)
	if err != nil {
		return false
	}

	return info.IsDir()
}

// EnsureDirectory creates dirPath (and parents) if it doesn't exist yet
func EnsureDirectory(dirPath string) error {
	if IsDirectory(dirPath) {
		return nil
	}
	return os.MkdirAll(dirPath, os.ModePerm)
}
