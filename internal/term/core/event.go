package core

// EventType identifies the type of a decoded terminal input event.
type EventType int

// Decoded input event types.
const (
	EventNone EventType = iota
	EventKey
	EventResize
	EventModeReport
)

// DEC mode-report status codes (DECRPM). A report of set or reset
// means the terminal recognizes the queried mode; the permanent
// variants and "not recognized" mean it cannot be changed.
const (
	ModeReportNotRecognized = 0
	ModeReportSet           = 1
	ModeReportReset         = 2
	ModeReportPermanentSet  = 3
	ModeReportPermanentOff  = 4
)

// DECModeIntro is the Initial byte of a mode report about a DEC
// private mode.
const DECModeIntro = '?'

// Event is one decoded terminal input event. The terminal layer
// decodes raw input elsewhere; drivers only ever see this form.
type Event struct {
	Type EventType

	// Key event fields
	Rune rune

	// Resize event fields
	Lines, Cols int

	// Mode report fields: Initial distinguishes DEC private modes
	// (DECModeIntro) from ANSI modes, Mode is the reported mode
	// number, and Status is one of the ModeReport codes.
	Initial byte
	Mode    int
	Status  int
}

// ModeReportEvent builds a DEC private mode-report event.
func ModeReportEvent(mode, status int) Event {
	return Event{
		Type:    EventModeReport,
		Initial: DECModeIntro,
		Mode:    mode,
		Status:  status,
	}
}
