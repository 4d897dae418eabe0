package ui

import (
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/quizdesk/internal/config"
	"github.com/ytget/quizdesk/internal/logging"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	databaseEntry  *widget.Entry
	logLevelSelect *widget.Select
	languageSelect *widget.Select
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Database file selection
	sd.databaseEntry = widget.NewEntry()
	sd.databaseEntry.SetPlaceHolder(config.DefaultDatabaseFile)

	browseBtn := widget.NewButton("…", sd.onBrowseDatabase)
	databaseRow := container.NewBorder(nil, nil, nil, browseBtn, sd.databaseEntry)

	sd.logLevelSelect = widget.NewSelect(logging.Levels(), nil)

	// Language selection, sorted so the order is stable
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyDatabasePath)+":"),
		databaseRow,

		widget.NewLabel(sd.localization.GetText(KeyLogLevel)+":"),
		sd.logLevelSelect,

		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.databaseEntry.SetText(sd.settings.GetDatabasePath())
	sd.logLevelSelect.SetSelected(sd.settings.GetLogLevel())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onBrowseDatabase picks an existing database file
func (sd *SettingsDialog) onBrowseDatabase() {
	open := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		sd.databaseEntry.SetText(reader.URI().Path())
	}, sd.window)
	open.SetFilter(storage.NewExtensionFileFilter([]string{".db", ".sqlite"}))
	open.Show()
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	restart := sd.apply()
	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.savedMessage(restart), sd.window)
}

// apply stores the dialog values and reports whether a restart is needed.
// The database and logger are opened once at startup.
func (sd *SettingsDialog) apply() bool {
	restart := false

	if path := strings.TrimSpace(sd.databaseEntry.Text); path != "" && path != sd.settings.GetDatabasePath() {
		sd.settings.SetDatabasePath(path)
		restart = true
	}

	if level := sd.logLevelSelect.Selected; level != "" && level != sd.settings.GetLogLevel() {
		sd.settings.SetLogLevel(level)
		restart = true
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}
	return restart
}

func (sd *SettingsDialog) savedMessage(restart bool) string {
	msg := sd.localization.GetText(KeySettingsSaved)
	if restart {
		msg += "\n" + sd.localization.GetText(KeySettingsRestart)
	}
	return msg
}
