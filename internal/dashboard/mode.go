package dashboard

// Mode is the mutually-exclusive popup state of the dashboard. The preview
// overlay is tracked separately: it opens and closes independently of the
// popup lifecycle.
type Mode int

const (
	ModeIdle Mode = iota
	ModeTemplatePicker
	ModeForm
	ModeConfirmation
)

// String returns the wire name of the mode
func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeTemplatePicker:
		return "template_picker"
	case ModeForm:
		return "form"
	case ModeConfirmation:
		return "confirmation"
	default:
		return "unknown"
	}
}
