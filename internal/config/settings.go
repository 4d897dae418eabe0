package config

import (
	"path/filepath"

	"fyne.io/fyne/v2"

	"github.com/ytget/quizdesk/internal/logging"
	"github.com/ytget/quizdesk/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDatabasePath = "database_path"
	KeyLanguage     = "app_language"
	KeyLogLevel     = "log_level"
)

// Default values
const (
	DefaultDatabaseFile = "quizdesk.db"
	DefaultLanguage     = "system"
	DefaultLogLevel     = logging.LevelInfo
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDatabasePath returns the configured database file
func (s *Settings) GetDatabasePath() string {
	path := s.app.Preferences().String(KeyDatabasePath)
	if path == "" {
		defaultPath, err := platform.DataFile(DefaultDatabaseFile)
		if err != nil {
			defaultPath = filepath.Join(".", DefaultDatabaseFile)
		}
		s.SetDatabasePath(defaultPath)
		return defaultPath
	}
	return path
}

// SetDatabasePath sets the database file
func (s *Settings) SetDatabasePath(path string) {
	s.app.Preferences().SetString(KeyDatabasePath, path)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLogLevel returns the configured log level
func (s *Settings) GetLogLevel() string {
	level := s.app.Preferences().String(KeyLogLevel)
	if level == "" {
		s.SetLogLevel(DefaultLogLevel)
		return DefaultLogLevel
	}
	return level
}

// SetLogLevel sets the log level. Unknown names reset it to the default.
func (s *Settings) SetLogLevel(level string) {
	valid := false
	for _, l := range logging.Levels() {
		if l == level {
			valid = true
			break
		}
	}
	if !valid {
		level = DefaultLogLevel
	}
	s.app.Preferences().SetString(KeyLogLevel, level)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"pt":     "Português",
		"ru":     "Русский",
	}
}
