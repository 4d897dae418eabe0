package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/quizdesk/internal/config"
	"github.com/ytget/quizdesk/internal/crud"
	"github.com/ytget/quizdesk/internal/model"
)

// Services are the record services behind the main window
type Services struct {
	Alternatives crud.Service[model.Alternative]
	Questions    QuestionLister
}

// RootUI represents the main UI structure
type RootUI struct {
	ctx          context.Context
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	services     Services
	logger       *zap.Logger

	list       *AlternativeList
	controller *crud.Controller[model.Alternative]
	editors    []*crud.Session[model.Alternative]

	newBtn     *widget.Button
	refreshBtn *widget.Button
}

// NewRootUI creates the main window content and loads the first rows
func NewRootUI(ctx context.Context, window fyne.Window, settings *config.Settings, services Services, logger *zap.Logger) *RootUI {
	if logger == nil {
		logger = zap.NewNop()
	}

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		ctx:          ctx,
		window:       window,
		settings:     settings,
		localization: localization,
		services:     services,
		logger:       logger,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	ui.setupUI()
	ui.rebuildController()
	ui.refresh()

	logger.Info("UI setup completed", zap.Int("rows", ui.list.Len()))
	return ui
}

// Controller returns the controller currently driving the list
func (ui *RootUI) Controller() *crud.Controller[model.Alternative] {
	return ui.controller
}

// List returns the rendered list
func (ui *RootUI) List() *AlternativeList {
	return ui.list
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.newBtn = widget.NewButton(IconNew+" "+ui.localization.GetText(KeyNew), ui.onNew)
	ui.newBtn.Importance = widget.HighImportance

	ui.refreshBtn = widget.NewButton(IconRefresh+" "+ui.localization.GetText(KeyRefresh), ui.refresh)
	ui.refreshBtn.Importance = widget.LowImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	topPanel := container.NewBorder(nil, nil, ui.newBtn, container.NewHBox(ui.refreshBtn, settingsBtn))

	ui.list = NewAlternativeList(ui.window, ui.localization, len(AlternativeColumns(ui.localization)))

	content := container.NewBorder(
		topPanel,          // top
		nil,               // bottom
		nil,               // left
		nil,               // right
		ui.list.Content(), // center
	)
	ui.window.SetContent(content)
}

// rebuildController creates a controller for the current language. Editors
// opened by the previous controller are cancelled so no stale controller
// renders into the list.
func (ui *RootUI) rebuildController() {
	ui.closeEditors()

	editor := NewAlternativeEditor(ui.ctx, EditorConfig{
		Parent:       ui.window,
		Localization: ui.localization,
		Alternatives: ui.services.Alternatives,
		Questions:    ui.services.Questions,
		Alerts:       ui.list,
		Logger:       ui.logger,
	})
	ui.controller = crud.NewController(crud.ControllerConfig[model.Alternative]{
		Surface:  ui.list,
		Columns:  AlternativeColumns(ui.localization),
		NewDraft: model.NewAlternative,
		Clone:    model.Alternative.Clone,
		Sessions: func() *crud.Session[model.Alternative] {
			s := editor()
			ui.trackEditor(s)
			return s
		},
		Messages: ui.localization.Messages(),
		Logger:   ui.logger,
	})
	ui.controller.AttachService(ui.services.Alternatives)
}

// trackEditor remembers s and forgets editors that already finished
func (ui *RootUI) trackEditor(s *crud.Session[model.Alternative]) {
	open := ui.editors[:0]
	for _, e := range ui.editors {
		if !e.State().IsTerminal() {
			open = append(open, e)
		}
	}
	ui.editors = append(open, s)
}

// closeEditors cancels every editor that is still open
func (ui *RootUI) closeEditors() {
	for _, e := range ui.editors {
		e.Cancel()
	}
	if len(ui.editors) > 0 {
		ui.logger.Debug("Open editors closed", zap.Int("count", len(ui.editors)))
	}
	ui.editors = nil
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)
	ui.window.SetMainMenu(mainMenu)
}

// onNew opens the editor on an empty alternative
func (ui *RootUI) onNew() {
	if _, err := ui.controller.OnNew(ui.ctx); err != nil {
		ui.logger.Warn("Editor opened with errors", zap.Error(err))
	}
}

// refresh reloads all rows; failures are shown by the controller
func (ui *RootUI) refresh() {
	if err := ui.controller.Refresh(ui.ctx); err != nil {
		ui.logger.Warn("Refresh failed", zap.Error(err))
	}
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.newBtn.SetText(IconNew + " " + ui.localization.GetText(KeyNew))
	ui.refreshBtn.SetText(IconRefresh + " " + ui.localization.GetText(KeyRefresh))
	ui.list.SetLocalization(ui.localization)

	// headers and messages are bound at construction
	ui.rebuildController()
	ui.refresh()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, func() {
		ui.onLanguageChange(ui.settings.GetLanguage())
	}).Show()
}
