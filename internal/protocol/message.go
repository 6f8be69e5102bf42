// Package protocol implements the newline-delimited JSON wire protocol
// spoken between the launcher and a running script over stdio pipes.
//
// Every message is one line of JSON tagged by a "type" field. The set of
// message kinds is closed: unknown tags are surfaced as parse issues rather
// than silently invented. Kinds split into two correlation families — prompt
// messages carry an "id", request/response pairs carry a "requestId" — and a
// kind never carries both.
package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Type discriminates message kinds on the wire.
type Type string

// Payload is the decoded body of a single message kind.
type Payload interface {
	messageType() Type
}

// Message pairs a type tag with its decoded payload.
type Message struct {
	Type    Type
	Payload Payload
}

// New wraps a payload in a Message carrying its type tag.
func New(p Payload) Message {
	return Message{Type: p.messageType(), Payload: p}
}

// promptScoped is implemented by payloads embedding PromptID.
type promptScoped interface {
	promptID() (string, bool)
}

// requestScoped is implemented by payloads embedding RequestID.
type requestScoped interface {
	requestID() (string, bool)
}

// PromptID carries the prompt-session correlation id shared by all prompt
// lifecycle messages.
type PromptID struct {
	ID string `json:"id"`
}

func (p PromptID) promptID() (string, bool) { return p.ID, true }

// RequestID carries the request/response correlation id shared by all
// request-identified messages.
type RequestID struct {
	RequestID string `json:"requestId"`
}

func (r RequestID) requestID() (string, bool) { return r.RequestID, true }

// PromptID returns the prompt correlation id for prompt-family messages.
func (m Message) PromptID() (string, bool) {
	if p, ok := m.Payload.(promptScoped); ok {
		return p.promptID()
	}
	return "", false
}

// RequestID returns the request correlation id for request-family messages.
func (m Message) RequestID() (string, bool) {
	if r, ok := m.Payload.(requestScoped); ok {
		return r.requestID()
	}
	return "", false
}

/// ID is the unified accessor: it tries the prompt family first, then the
// request family.
func (m Message) ID() (string, bool) {
	if id, ok := m.PromptID(); ok {
		return id, true
	}
	return m.RequestID()
}

// UnknownTypeError reports a line whose "type" tag names no known kind.
type UnknownTypeError struct {
	Type Type
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("protocol: unknown message type %q", string(e.Type))
}

// MarshalJSON emits the payload object with the "type" tag spliced in as the
// first member, producing exactly the wire shape the SDK expects.
func (m Message) MarshalJSON() ([]byte, error) {
	if m.Type == "" {
		return nil, errors.New("protocol: message has no type")
	}
	tag, err := json.Marshal(struct {
		Type Type `json:"type"`
	}{m.Type})
	if err != nil {
		return nil, err
	}
	if m.Payload == nil {
		return tag, nil
	}
	body, err := json.Marshal(m.Payload)
	if err != nil {
		return nil, err
	}
	if len(body) <= 2 {
		// Empty payload object.
		return tag, nil
	}
	out := make([]byte, 0, len(tag)+len(body))
	out = append(out, tag[:len(tag)-1]...)
	out = append(out, ',')
	out = append(out, body[1:]...)
	return out, nil
}

// UnmarshalJSON decodes one wire object by dispatching on its "type" tag.
func (m *Message) UnmarshalJSON(data []byte) error {
	var head struct {
		Type Type `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}
	if head.Type == "" {
		return errors.New(`protocol: missing "type" discriminant`)
	}
	p, ok := payloadFor(head.Type)
	if !ok {
		return &UnknownTypeError{Type: head.Type}
	}
	if err := json.Unmarshal(data, p); err != nil {
		return err
	}
	m.Type = head.Type
	m.Payload = p
	return nil
}

// payloadFor instantiates the payload struct registered for a type tag.
// This switch is the single source of truth for the closed message set.
func payloadFor(t Type) (Payload, bool) {
	switch t {
	case TypeHello:
		return &Hello{}, true
	case TypeHelloAck:
		return &HelloAck{}, true
	case TypeArg:
		return &Arg{}, true
	case TypeDiv:
		return &Div{}, true
	case TypeSubmit:
		return &Submit{}, true
	case TypeUpdate:
		return &Update{}, true
	case TypeExit:
		return &Exit{}, true
	case TypeForceSubmit:
		return &ForceSubmit{}, true
	case TypeSetInput:
		return &SetInput{}, true
	case TypeEditor:
		return &Editor{}, true
	case TypeMini:
		return &Mini{}, true
	case TypeMicro:
		return &Micro{}, true
	case TypeSelect:
		return &Select{}, true
	case TypeConfirm:
		return &Confirm{}, true
	case TypeFields:
		return &Fields{}, true
	case TypeForm:
		return &Form{}, true
	case TypePath:
		return &Path{}, true
	case TypeDrop:
		return &Drop{}, true
	case TypeHotkey:
		return &Hotkey{}, true
	case TypeTemplate:
		return &Template{}, true
	case TypeEnv:
		return &Env{}, true
	case TypeChat:
		return &Chat{}, true
	case TypeChatMessage:
		return &ChatMessage{}, true
	case TypeChatStreamStart:
		return &ChatStreamStart{}, true
	case TypeChatStreamChunk:
		return &ChatStreamChunk{}, true
	case TypeChatStreamComplete:
		return &ChatStreamComplete{}, true
	case TypeChatClear:
		return &ChatClear{}, true
	case TypeChatSetError:
		return &ChatSetError{}, true
	case TypeChatClearError:
		return &ChatClearError{}, true
	case TypeChatSubmit:
		return &ChatSubmit{}, true
	case TypeTerm:
		return &Term{}, true
	case TypeWidget:
		return &Widget{}, true
	case TypeWebcam:
		return &Webcam{}, true
	case TypeMic:
		return &Mic{}, true
	case TypeNotify:
		return &Notify{}, true
	case TypeBeep:
		return &Beep{}, true
	case TypeSay:
		return &Say{}, true
	case TypeSetStatus:
		return &SetStatus{}, true
	case TypeHud:
		return &Hud{}, true
	case TypeMenu:
		return &Menu{}, true
	case TypeClipboard:
		return &Clipboard{}, true
	case TypeKeyboard:
		return &Keyboard{}, true
	case TypeMouse:
		return &Mouse{}, true
	case TypeShow:
		return &Show{}, true
	case TypeHide:
		return &Hide{}, true
	case TypeBrowse:
		return &Browse{}, true
	case TypeExec:
		return &Exec{}, true
	case TypeSetPanel:
		return &SetPanel{}, true
	case TypeSetPreview:
		return &SetPreview{}, true
	case TypeSetPrompt:
		return &SetPrompt{}, true
	case TypeSetError:
		return &SetError{}, true
	case TypeSetActions:
		return &SetActions{}, true
	case TypeActionTriggered:
		return &ActionTriggered{}, true
	case TypeShowGrid:
		return &ShowGrid{}, true
	case TypeHideGrid:
		return &HideGrid{}, true
	case TypeGetSelectedText:
		return &GetSelectedText{}, true
	case TypeSetSelectedText:
		return &SetSelectedText{}, true
	case TypeCheckAccessibility:
		return &CheckAccessibility{}, true
	case TypeRequestAccessibility:
		return &RequestAccessibility{}, true
	case TypeGetWindowBounds:
		return &GetWindowBounds{}, true
	case TypeWindowBounds:
		return &WindowBounds{}, true
	case TypeSelectedText:
		return &SelectedText{}, true
	case TypeTextSet:
		return &TextSet{}, true
	case TypeAccessibilityStatus:
		return &AccessibilityStatus{}, true
	case TypeClipboardHistory:
		return &ClipboardHistory{}, true
	case TypeClipboardHistoryEntry:
		return &ClipboardHistoryEntry{}, true
	case TypeClipboardHistoryList:
		return &ClipboardHistoryList{}, true
	case TypeClipboardHistoryResult:
		return &ClipboardHistoryResult{}, true
	case TypeWindowList:
		return &WindowList{}, true
	case TypeWindowAction:
		return &WindowAction{}, true
	case TypeWindowListResult:
		return &WindowListResult{}, true
	case TypeWindowActionResult:
		return &WindowActionResult{}, true
	case TypeDisplayList:
		return &DisplayList{}, true
	case TypeDisplayListResult:
		return &DisplayListResult{}, true
	case TypeFrontmostWindow:
		return &FrontmostWindow{}, true
	case TypeFrontmostWindowResult:
		return &FrontmostWindowResult{}, true
	case TypeFileSearch:
		return &FileSearch{}, true
	case TypeFileSearchResult:
		return &FileSearchResult{}, true
	case TypeCaptureScreenshot:
		return &CaptureScreenshot{}, true
	case TypeScreenshotResult:
		return &ScreenshotResult{}, true
	case TypeGetState:
		return &GetState{}, true
	case TypeStateResult:
		return &StateResult{}, true
	case TypeGetElements:
		return &GetElements{}, true
	case TypeElementsResult:
		return &ElementsResult{}, true
	case TypeGetLayoutInfo:
		return &GetLayoutInfo{}, true
	case TypeLayoutInfoResult:
		return &LayoutInfoResult{}, true
	case TypeRunScriptlet:
		return &RunScriptlet{}, true
	case TypeGetScriptlets:
		return &GetScriptlets{}, true
	case TypeScriptletList:
		return &ScriptletList{}, true
	case TypeScriptletResult:
		return &ScriptletResult{}, true
	case TypeSimulateClick:
		return &SimulateClick{}, true
	case TypeSimulateClickResult:
		return &SimulateClickResult{}, true
	case TypeGetMenuBar:
		return &GetMenuBar{}, true
	case TypeMenuBarResult:
		return &MenuBarResult{}, true
	case TypeExecuteMenuAction:
		return &ExecuteMenuAction{}, true
	case TypeMenuActionResult:
		return &MenuActionResult{}, true
	case TypeAiIsOpen:
		return &AiIsOpen{}, true
	case TypeAiIsOpenResult:
		return &AiIsOpenResult{}, true
	case TypeAiGetActiveChat:
		return &AiGetActiveChat{}, true
	case TypeAiActiveChatResult:
		return &AiActiveChatResult{}, true
	case TypeAiListChats:
		return &AiListChats{}, true
	case TypeAiChatListResult:
		return &AiChatListResult{}, true
	case TypeAiGetConversation:
		return &AiGetConversation{}, true
	case TypeAiConversationResult:
		return &AiConversationResult{}, true
	case TypeAiStartChat:
		return &AiStartChat{}, true
	case TypeAiChatCreated:
		return &AiChatCreated{}, true
	case TypeAiAppendMessage:
		return &AiAppendMessage{}, true
	case TypeAiMessageAppended:
		return &AiMessageAppended{}, true
	case TypeAiSendMessage:
		return &AiSendMessage{}, true
	case TypeAiMessageSent:
		return &AiMessageSent{}, true
	case TypeAiSetSystemPrompt:
		return &AiSetSystemPrompt{}, true
	case TypeAiSystemPromptSet:
		return &AiSystemPromptSet{}, true
	case TypeAiFocus:
		return &AiFocus{}, true
	case TypeAiFocusResult:
		return &AiFocusResult{}, true
	case TypeAiGetStreamingStatus:
		return &AiGetStreamingStatus{}, true
	case TypeAiStreamingStatusResult:
		return &AiStreamingStatusResult{}, true
	case TypeAiDeleteChat:
		return &AiDeleteChat{}, true
	case TypeAiChatDeleted:
		return &AiChatDeleted{}, true
	case TypeAiSubscribe:
		return &AiSubscribe{}, true
	case TypeAiSubscribed:
		return &AiSubscribed{}, true
	case TypeAiUnsubscribe:
		return &AiUnsubscribe{}, true
	case TypeAiUnsubscribed:
		return &AiUnsubscribed{}, true
	case TypeAiStreamChunk:
		return &AiStreamChunk{}, true
	case TypeAiStreamComplete:
		return &AiStreamComplete{}, true
	case TypeAiNewMessage:
		return &AiNewMessage{}, true
	case TypeAiError:
		return &AiError{}, true
	}
	return nil, false
}
