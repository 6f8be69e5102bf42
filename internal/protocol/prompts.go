package protocol

import "encoding/json"

// Handshake, prompt lifecycle and response message kinds. Prompt kinds embed
// PromptID; the id names the prompt session the script is driving.

const (
	TypeHello              Type = "hello"
	TypeHelloAck           Type = "helloAck"
	TypeArg                Type = "arg"
	TypeDiv                Type = "div"
	TypeSubmit             Type = "submit"
	TypeUpdate             Type = "update"
	TypeExit               Type = "exit"
	TypeForceSubmit        Type = "forceSubmit"
	TypeSetInput           Type = "setInput"
	TypeEditor             Type = "editor"
	TypeMini               Type = "mini"
	TypeMicro              Type = "micro"
	TypeSelect             Type = "select"
	TypeConfirm            Type = "confirm"
	TypeFields             Type = "fields"
	TypeForm               Type = "form"
	TypePath               Type = "path"
	TypeDrop               Type = "drop"
	TypeHotkey             Type = "hotkey"
	TypeTemplate           Type = "template"
	TypeEnv                Type = "env"
	TypeChat               Type = "chat"
	TypeChatMessage        Type = "chatMessage"
	TypeChatStreamStart    Type = "chatStreamStart"
	TypeChatStreamChunk    Type = "chatStreamChunk"
	TypeChatStreamComplete Type = "chatStreamComplete"
	TypeChatClear          Type = "chatClear"
	TypeChatSetError       Type = "chatSetError"
	TypeChatClearError     Type = "chatClearError"
	TypeChatSubmit         Type = "chatSubmit"
	TypeTerm               Type = "term"
	TypeWidget             Type = "widget"
	TypeWebcam             Type = "webcam"
	TypeMic                Type = "mic"
)

// Hello is the optional capability handshake (script → app). A session that
// never sends it is treated as a legacy SDK with no optional capabilities.
type Hello struct {
	Protocol     int      `json:"protocol"`
	SDKVersion   string   `json:"sdkVersion"`
	Capabilities []string `json:"capabilities,omitempty"`
}

func (Hello) messageType() Type { return TypeHello }

// HelloAck confirms the negotiated capability subset (app → script).
type HelloAck struct {
	Protocol     int      `json:"protocol"`
	Capabilities []string `json:"capabilities,omitempty"`
}

func (HelloAck) messageType() Type { return TypeHelloAck }

// Arg is a choice prompt with a filterable list.
type Arg struct {
	PromptID
	Placeholder string   `json:"placeholder"`
	Choices     []Choice `json:"choices"`
	Actions     []Action `json:"actions,omitempty"`
}

func (Arg) messageType() Type { return TypeArg }

// Div displays a block of HTML.
type Div struct {
	PromptID
	HTML             string          `json:"html"`
	ContainerClasses string          `json:"containerClasses,omitempty"`
	Actions          []Action        `json:"actions,omitempty"`
	Placeholder      string          `json:"placeholder,omitempty"`
	Hint             string          `json:"hint,omitempty"`
	Footer           string          `json:"footer,omitempty"`
	ContainerBg      string          `json:"containerBg,omitempty"`
	ContainerPadding json.RawMessage `json:"containerPadding,omitempty"`
	Opacity          *int            `json:"opacity,omitempty"`
}

func (Div) messageType() Type { return TypeDiv }

// Submit answers a prompt with the selected value, or null on cancel.
type Submit struct {
	PromptID
	Value *string `json:"value"`
}

func (Submit) messageType() Type { return TypeSubmit }

// Update pushes a live update into an open prompt. Its extra fields are
// flattened onto the wire object, so it carries custom marshaling.
type Update struct {
	PromptID
	Data map[string]any `json:"-"`
}

func (Update) messageType() Type { return TypeUpdate }

func (u Update) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(u.Data)+1)
	for k, v := range u.Data {
		out[k] = v
	}
	out["id"] = u.ID
	return json.Marshal(out)
}

func (u *Update) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if id, ok := raw["id"].(string); ok {
		u.ID = id
	}
	delete(raw, "id")
	delete(raw, "type")
	u.Data = raw
	return nil
}

// Exit signals script termination.
type Exit struct {
	Code    *int   `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

func (Exit) messageType() Type { return TypeExit }

// ForceSubmit submits the current prompt with a value chosen by the script.
type ForceSubmit struct {
	Value json.RawMessage `json:"value"`
}

func (ForceSubmit) messageType() Type { return TypeForceSubmit }

// SetInput replaces the current prompt's input text.
type SetInput struct {
	Text string `json:"text"`
}

func (SetInput) messageType() Type { return TypeSetInput }

// Editor opens a code editor prompt.
type Editor struct {
	PromptID
	Content  string   `json:"content,omitempty"`
	Language string   `json:"language,omitempty"`
	Template string   `json:"template,omitempty"`
	OnInit   string   `json:"onInit,omitempty"`
	OnSubmit string   `json:"onSubmit,omitempty"`
	Actions  []Action `json:"actions,omitempty"`
}

func (Editor) messageType() Type { return TypeEditor }

// Mini is a compact arg prompt.
type Mini struct {
	PromptID
	Placeholder string   `json:"placeholder"`
	Choices     []Choice `json:"choices"`
}

func (Mini) messageType() Type { return TypeMini }

// Micro is a tiny arg prompt.
type Micro struct {
	PromptID
	Placeholder string   `json:"placeholder"`
	Choices     []Choice `json:"choices"`
}

func (Micro) messageType() Type { return TypeMicro }

// Select prompts for one or several choices.
type Select struct {
	PromptID
	Placeholder string   `json:"placeholder"`
	Choices     []Choice `json:"choices"`
	Multiple    *bool    `json:"multiple,omitempty"`
}

func (Select) messageType() Type { return TypeSelect }

// Confirm shows a yes/no dialog.
type Confirm struct {
	PromptID
	Message     string `json:"message"`
	ConfirmText string `json:"confirmText,omitempty"`
	CancelText  string `json:"cancelText,omitempty"`
}

func (Confirm) messageType() Type { return TypeConfirm }

// Fields prompts for multiple named inputs.
type Fields struct {
	PromptID
	Fields  []Field  `json:"fields"`
	Actions []Action `json:"actions,omitempty"`
}

func (Fields) messageType() Type { return TypeFields }

// Form renders a custom HTML form.
type Form struct {
	PromptID
	HTML    string   `json:"html"`
	Actions []Action `json:"actions,omitempty"`
}

func (Form) messageType() Type { return TypeForm }

// Path opens a file/folder picker.
type Path struct {
	PromptID
	StartPath string `json:"startPath,omitempty"`
	Hint      string `json:"hint,omitempty"`
}

func (Path) messageType() Type { return TypePath }

// Drop opens a file drop zone.
type Drop struct {
	PromptID
}

func (Drop) messageType() Type { return TypeDrop }

// Hotkey captures a key combination.
type Hotkey struct {
	PromptID
	Placeholder string `json:"placeholder,omitempty"`
}

func (Hotkey) messageType() Type { return TypeHotkey }

// Template prompts with a fill-in template string.
type Template struct {
	PromptID
	Template string `json:"template"`
}

func (Template) messageType() Type { return TypeTemplate }

// Env prompts for an environment variable value.
type Env struct {
	PromptID
	Key    string `json:"key"`
	Secret *bool  `json:"secret,omitempty"`
}

func (Env) messageType() Type { return TypeEnv }

// Chat opens a chat interface with optional seeded history.
type Chat struct {
	PromptID
	Placeholder string        `json:"placeholder,omitempty"`
	Messages    []ChatEntry   `json:"messages,omitempty"`
	Hint        string        `json:"hint,omitempty"`
	Footer      string        `json:"footer,omitempty"`
	Actions     []Action      `json:"actions,omitempty"`
}

func (Chat) messageType() Type { return TypeChat }

// ChatMessage appends one message to an open chat prompt.
type ChatMessage struct {
	PromptID
	Message ChatEntry `json:"message"`
}

func (ChatMessage) messageType() Type { return TypeChatMessage }

// ChatStreamStart begins a streamed chat message.
type ChatStreamStart struct {
	PromptID
	MessageID string       `json:"messageId"`
	Position  ChatPosition `json:"position,omitempty"`
}

func (ChatStreamStart) messageType() Type { return TypeChatStreamStart }

// ChatStreamChunk appends text to the streaming message.
type ChatStreamChunk struct {
	PromptID
	MessageID string `json:"messageId"`
	Chunk     string `json:"chunk"`
}

func (ChatStreamChunk) messageType() Type { return TypeChatStreamChunk }

// ChatStreamComplete finishes the streaming message.
type ChatStreamComplete struct {
	PromptID
	MessageID string `json:"messageId"`
}

func (ChatStreamComplete) messageType() Type { return TypeChatStreamComplete }

// ChatClear removes all messages from a chat prompt.
type ChatClear struct {
	PromptID
}

func (ChatClear) messageType() Type { return TypeChatClear }

// ChatSetError marks a chat message as failed.
type ChatSetError struct {
	PromptID
	MessageID string `json:"messageId"`
	Error     string `json:"error"`
}

func (ChatSetError) messageType() Type { return TypeChatSetError }

// ChatClearError clears a failure mark from a chat message.
type ChatClearError struct {
	PromptID
	MessageID string `json:"messageId"`
}

func (ChatClearError) messageType() Type { return TypeChatClearError }

// ChatSubmit reports the text the user submitted in a chat prompt.
type ChatSubmit struct {
	PromptID
	Text string `json:"text"`
}

func (ChatSubmit) messageType() Type { return TypeChatSubmit }

// Term opens a terminal prompt, optionally running a command.
type Term struct {
	PromptID
	Command string   `json:"command,omitempty"`
	Actions []Action `json:"actions,omitempty"`
}

func (Term) messageType() Type { return TypeTerm }

// Widget renders a floating HTML widget.
type Widget struct {
	PromptID
	HTML    string          `json:"html"`
	Options json.RawMessage `json:"options,omitempty"`
}

func (Widget) messageType() Type { return TypeWidget }

// Webcam opens a webcam capture prompt.
type Webcam struct {
	PromptID
}

func (Webcam) messageType() Type { return TypeWebcam }

// Mic opens a microphone recording prompt.
type Mic struct {
	PromptID
}

func (Mic) messageType() Type { return TypeMic }
