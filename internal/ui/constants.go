package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconNew      = "+"
	IconRefresh  = "⟳"
)

// Text fragments
const (
	DashPlaceholder     = "—"
	QuestionOptionFmt   = "%d - %s"
	ActionColumnsPerRow = 2
)

// Layout sizing
const (
	WindowWidth  float32 = 800
	WindowHeight float32 = 600

	RowMinHeight float32 = 36

	EditorDialogWidth  float32 = 480
	EditorDialogHeight float32 = 300

	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 360
)
