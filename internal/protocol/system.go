package protocol

import "encoding/json"

// Notification, system-control and UI-update message kinds. None of these
// carry a correlation id; they are fire-and-forget instructions.

const (
	TypeNotify          Type = "notify"
	TypeBeep            Type = "beep"
	TypeSay             Type = "say"
	TypeSetStatus       Type = "setStatus"
	TypeHud             Type = "hud"
	TypeMenu            Type = "menu"
	TypeClipboard       Type = "clipboard"
	TypeKeyboard        Type = "keyboard"
	TypeMouse           Type = "mouse"
	TypeShow            Type = "show"
	TypeHide            Type = "hide"
	TypeBrowse          Type = "browse"
	TypeExec            Type = "exec"
	TypeSetPanel        Type = "setPanel"
	TypeSetPreview      Type = "setPreview"
	TypeSetPrompt       Type = "setPrompt"
	TypeSetError        Type = "setError"
	TypeSetActions      Type = "setActions"
	TypeActionTriggered Type = "actionTriggered"
	TypeShowGrid        Type = "showGrid"
	TypeHideGrid        Type = "hideGrid"
)

// Notify posts a system notification.
type Notify struct {
	Title string `json:"title,omitempty"`
	Body  string `json:"body,omitempty"`
}

func (Notify) messageType() Type { return TypeNotify }

// Beep plays the system beep.
type Beep struct{}

func (Beep) messageType() Type { return TypeBeep }

// Say speaks text aloud.
type Say struct {
	Text  string `json:"text"`
	Voice string `json:"voice,omitempty"`
}

func (Say) messageType() Type { return TypeSay }

// SetStatus updates the status bar.
type SetStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

func (SetStatus) messageType() Type { return TypeSetStatus }

// Hud flashes a heads-up overlay message.
type Hud struct {
	Text       string `json:"text"`
	DurationMs *int64 `json:"duration_ms,omitempty"`
}

func (Hud) messageType() Type { return TypeHud }

// Menu configures the menu bar icon and its script list.
type Menu struct {
	Icon    string   `json:"icon,omitempty"`
	Scripts []string `json:"scripts,omitempty"`
}

func (Menu) messageType() Type { return TypeMenu }

// Clipboard reads or writes the system clipboard. The id is optional: a
// write without an id expects no response.
type Clipboard struct {
	ID      string          `json:"id,omitempty"`
	Action  ClipboardAction `json:"action"`
	Format  ClipboardFormat `json:"format,omitempty"`
	Content string          `json:"content,omitempty"`
}

func (Clipboard) messageType() Type { return TypeClipboard }

func (c Clipboard) promptID() (string, bool) { return c.ID, c.ID != "" }

// Keyboard simulates keyboard input.
type Keyboard struct {
	Action KeyboardAction `json:"action"`
	Keys   string         `json:"keys,omitempty"`
}

func (Keyboard) messageType() Type { return TypeKeyboard }

// Mouse controls the pointer. Action selects the semantics; Data carries the
// coordinates (see MouseData for the legacy encoding caveat).
type Mouse struct {
	Action MouseAction `json:"action"`
	Data   *MouseData  `json:"data,omitempty"`
}

func (Mouse) messageType() Type { return TypeMouse }

// Show makes the launcher window visible.
type Show struct{}

func (Show) messageType() Type { return TypeShow }

// Hide hides the launcher window.
type Hide struct{}

func (Hide) messageType() Type { return TypeHide }

// Browse opens a URL in the default browser.
type Browse struct {
	URL string `json:"url"`
}

func (Browse) messageType() Type { return TypeBrowse }

// Exec runs a shell command on the script's behalf.
type Exec struct {
	Command string          `json:"command"`
	Options json.RawMessage `json:"options,omitempty"`
}

func (Exec) messageType() Type { return TypeExec }

// SetPanel replaces the panel HTML.
type SetPanel struct {
	HTML string `json:"html"`
}

func (SetPanel) messageType() Type { return TypeSetPanel }

// SetPreview replaces the preview HTML.
type SetPreview struct {
	HTML string `json:"html"`
}

func (SetPreview) messageType() Type { return TypeSetPreview }

// SetPrompt replaces the prompt HTML.
type SetPrompt struct {
	HTML string `json:"html"`
}

func (SetPrompt) messageType() Type { return TypeSetPrompt }

// SetError reports a structured script failure.
type SetError struct {
	ErrorMessage string   `json:"errorMessage"`
	StderrOutput string   `json:"stderrOutput,omitempty"`
	ExitCode     *int     `json:"exitCode,omitempty"`
	StackTrace   string   `json:"stackTrace,omitempty"`
	ScriptPath   string   `json:"scriptPath"`
	Suggestions  []string `json:"suggestions,omitempty"`
	Timestamp    string   `json:"timestamp,omitempty"`
}

func (SetError) messageType() Type { return TypeSetError }

// SetActions populates the actions panel.
type SetActions struct {
	Actions []Action `json:"actions"`
}

func (SetActions) messageType() Type { return TypeSetActions }

// ActionTriggered tells the script one of its actions fired.
type ActionTriggered struct {
	Action string `json:"action"`
	Value  string `json:"value,omitempty"`
	Input  string `json:"input"`
}

func (ActionTriggered) messageType() Type { return TypeActionTriggered }

// ShowGrid enables the debug grid overlay; its options flatten onto the
// wire object.
type ShowGrid struct {
	GridOptions
}

func (ShowGrid) messageType() Type { return TypeShowGrid }

// HideGrid disables the debug grid overlay.
type HideGrid struct{}

func (HideGrid) messageType() Type { return TypeHideGrid }
