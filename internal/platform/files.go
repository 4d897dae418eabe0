package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
)

// File permissions
const (
	DefaultDirPermissions = 0750
)

// AppDirName is the per-user directory holding application data
const AppDirName = "quizdesk"

// DataDirEnv overrides the data directory when set
const DataDirEnv = "QUIZDESK_DATA_DIR"

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// GetDataDir returns the directory the database is stored in
func GetDataDir() (string, error) {
	if dir := os.Getenv(DataDirEnv); dir != "" {
		return dir, nil
	}

	// Fyne Android apps run as libdist.so and have no user config dir
	if runtime.GOOS == OSAndroid || filepath.Base(os.Args[0]) == "libdist.so" {
		if dir := os.Getenv("FILESDIR"); dir != "" {
			return filepath.Join(dir, AppDirName), nil
		}
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		homeDir, herr := os.UserHomeDir()
		if herr != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", herr)
		}
		return filepath.Join(homeDir, "."+AppDirName), nil
	}
	return filepath.Join(configDir, AppDirName), nil
}

// DataFile returns name inside the data directory, creating the directory
func DataFile(name string) (string, error) {
	dir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}
	return filepath.Join(dir, name), nil
}
