package crud

// Choice is the answer of a confirmation prompt
type Choice int

const (
	// ChoiceDismissed means the prompt was closed without an answer
	ChoiceDismissed Choice = iota
	ChoiceYes
	ChoiceNo
)

// String returns the choice name
func (c Choice) String() string {
	switch c {
	case ChoiceYes:
		return "yes"
	case ChoiceNo:
		return "no"
	default:
		return "dismissed"
	}
}

// Alerter shows errors to the user
type Alerter interface {
	ShowError(title string, err error)
}

// Surface is the rendering side of a controller: the row list, the
// confirmation prompt and error alerts.
type Surface[E any] interface {
	Alerter

	// Render replaces the visible rows. columns holds one header per
	// attribute; the edit and remove action columns are implied.
	Render(columns []string, rows []RowView[E])

	// Confirm asks a yes/no question. answer may be called after Confirm
	// returns but must be called on the UI goroutine.
	Confirm(title, message string, answer func(Choice))
}

// Window is the modal window hosting an editor session
type Window interface {
	Show()
	Close()
}

// Messages are the user facing titles used by controllers and sessions
type Messages struct {
	ConfirmTitle     string
	ConfirmRemove    string
	ListErrorTitle   string
	RemoveErrorTitle string
	SaveErrorTitle   string
	LoadErrorTitle   string
}

// DefaultMessages returns English messages
func DefaultMessages() Messages {
	return Messages{
		ConfirmTitle:     "Confirmation",
		ConfirmRemove:    "Are you sure you want to delete?",
		ListErrorTitle:   "Error loading records",
		RemoveErrorTitle: "Error removing object",
		SaveErrorTitle:   "Error saving object",
		LoadErrorTitle:   "Error loading view",
	}
}

func (m Messages) withDefaults() Messages {
	d := DefaultMessages()
	if m.ConfirmTitle == "" {
		m.ConfirmTitle = d.ConfirmTitle
	}
	if m.ConfirmRemove == "" {
		m.ConfirmRemove = d.ConfirmRemove
	}
	if m.ListErrorTitle == "" {
		m.ListErrorTitle = d.ListErrorTitle
	}
	if m.RemoveErrorTitle == "" {
		m.RemoveErrorTitle = d.RemoveErrorTitle
	}
	if m.SaveErrorTitle == "" {
		m.SaveErrorTitle = d.SaveErrorTitle
	}
	if m.LoadErrorTitle == "" {
		m.LoadErrorTitle = d.LoadErrorTitle
	}
	return m
}
