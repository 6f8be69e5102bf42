package protocol

import "encoding/json"

// Request/response message kinds. Each embeds RequestID; the app answers a
// request with the paired result kind carrying the same id.

const (
	TypeGetSelectedText        Type = "getSelectedText"
	TypeSetSelectedText        Type = "setSelectedText"
	TypeCheckAccessibility     Type = "checkAccessibility"
	TypeRequestAccessibility   Type = "requestAccessibility"
	TypeGetWindowBounds        Type = "getWindowBounds"
	TypeWindowBounds           Type = "windowBounds"
	TypeSelectedText           Type = "selectedText"
	TypeTextSet                Type = "textSet"
	TypeAccessibilityStatus    Type = "accessibilityStatus"
	TypeClipboardHistory       Type = "clipboardHistory"
	TypeClipboardHistoryEntry  Type = "clipboardHistoryEntry"
	TypeClipboardHistoryList   Type = "clipboardHistoryList"
	TypeClipboardHistoryResult Type = "clipboardHistoryResult"
	TypeWindowList             Type = "windowList"
	TypeWindowAction           Type = "windowAction"
	TypeWindowListResult       Type = "windowListResult"
	TypeWindowActionResult     Type = "windowActionResult"
	TypeDisplayList            Type = "displayList"
	TypeDisplayListResult      Type = "displayListResult"
	TypeFrontmostWindow        Type = "frontmostWindow"
	TypeFrontmostWindowResult  Type = "frontmostWindowResult"
	TypeFileSearch             Type = "fileSearch"
	TypeFileSearchResult       Type = "fileSearchResult"
	TypeCaptureScreenshot      Type = "captureScreenshot"
	TypeScreenshotResult       Type = "screenshotResult"
	TypeGetState               Type = "getState"
	TypeStateResult            Type = "stateResult"
	TypeGetElements            Type = "getElements"
	TypeElementsResult         Type = "elementsResult"
	TypeGetLayoutInfo          Type = "getLayoutInfo"
	TypeLayoutInfoResult       Type = "layoutInfoResult"
	TypeRunScriptlet           Type = "runScriptlet"
	TypeGetScriptlets          Type = "getScriptlets"
	TypeScriptletList          Type = "scriptletList"
	TypeScriptletResult        Type = "scriptletResult"
	TypeSimulateClick          Type = "simulateClick"
	TypeSimulateClickResult    Type = "simulateClickResult"
	TypeGetMenuBar             Type = "getMenuBar"
	TypeMenuBarResult          Type = "menuBarResult"
	TypeExecuteMenuAction      Type = "executeMenuAction"
	TypeMenuActionResult       Type = "menuActionResult"
)

// GetSelectedText asks for the focused application's selection.
type GetSelectedText struct {
	RequestID
}

func (GetSelectedText) messageType() Type { return TypeGetSelectedText }

// SetSelectedText replaces the focused application's selection.
type SetSelectedText struct {
	RequestID
	Text string `json:"text"`
}

func (SetSelectedText) messageType() Type { return TypeSetSelectedText }

// CheckAccessibility queries accessibility permission state.
type CheckAccessibility struct {
	RequestID
}

func (CheckAccessibility) messageType() Type { return TypeCheckAccessibility }

// RequestAccessibility prompts the user for accessibility permission.
type RequestAccessibility struct {
	RequestID
}

func (RequestAccessibility) messageType() Type { return TypeRequestAccessibility }

// GetWindowBounds asks for the launcher window's position and size.
type GetWindowBounds struct {
	RequestID
}

func (GetWindowBounds) messageType() Type { return TypeGetWindowBounds }

// WindowBounds answers GetWindowBounds.
type WindowBounds struct {
	RequestID
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (WindowBounds) messageType() Type { return TypeWindowBounds }

// SelectedText answers GetSelectedText.
type SelectedText struct {
	RequestID
	Text string `json:"text"`
}

func (SelectedText) messageType() Type { return TypeSelectedText }

// TextSet answers SetSelectedText.
type TextSet struct {
	RequestID
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func (TextSet) messageType() Type { return TypeTextSet }

// AccessibilityStatus answers CheckAccessibility and RequestAccessibility.
type AccessibilityStatus struct {
	RequestID
	Granted bool `json:"granted"`
}

func (AccessibilityStatus) messageType() Type { return TypeAccessibilityStatus }

// ClipboardHistory requests a clipboard-history operation.
type ClipboardHistory struct {
	RequestID
	Action  ClipboardHistoryAction `json:"action"`
	EntryID string                 `json:"entryId,omitempty"`
}

func (ClipboardHistory) messageType() Type { return TypeClipboardHistory }

// ClipboardHistoryEntry returns a single history entry.
type ClipboardHistoryEntry struct {
	RequestID
	EntryID     string             `json:"entryId"`
	Content     string             `json:"content"`
	ContentType ClipboardEntryType `json:"contentType"`
	Timestamp   string             `json:"timestamp"`
	Pinned      bool               `json:"pinned"`
}

func (ClipboardHistoryEntry) messageType() Type { return TypeClipboardHistoryEntry }

// ClipboardHistoryList returns the history listing.
type ClipboardHistoryList struct {
	RequestID
	Entries []ClipboardHistoryEntryData `json:"entries"`
}

func (ClipboardHistoryList) messageType() Type { return TypeClipboardHistoryList }

// ClipboardHistoryResult reports the outcome of a mutation.
type ClipboardHistoryResult struct {
	RequestID
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func (ClipboardHistoryResult) messageType() Type { return TypeClipboardHistoryResult }

// WindowList asks for all system windows.
type WindowList struct {
	RequestID
}

func (WindowList) messageType() Type { return TypeWindowList }

// WindowAction manipulates a system window.
type WindowAction struct {
	RequestID
	Action       WindowActionType `json:"action"`
	WindowID     *uint32          `json:"windowId,omitempty"`
	Bounds       *WindowRect      `json:"bounds,omitempty"`
	TilePosition TilePosition     `json:"tilePosition,omitempty"`
}

func (WindowAction) messageType() Type { return TypeWindowAction }

// WindowListResult answers WindowList.
type WindowListResult struct {
	RequestID
	Windows []SystemWindowInfo `json:"windows"`
}

func (WindowListResult) messageType() Type { return TypeWindowListResult }

// WindowActionResult answers WindowAction.
type WindowActionResult struct {
	RequestID
	Success bool              `json:"success"`
	Error   string            `json:"error,omitempty"`
	Window  *SystemWindowInfo `json:"window,omitempty"`
}

func (WindowActionResult) messageType() Type { return TypeWindowActionResult }

// DisplayList asks for attached displays.
type DisplayList struct {
	RequestID
}

func (DisplayList) messageType() Type { return TypeDisplayList }

// DisplayListResult answers DisplayList.
type DisplayListResult struct {
	RequestID
	Displays []DisplayInfo `json:"displays"`
}

func (DisplayListResult) messageType() Type { return TypeDisplayListResult }

// FrontmostWindow asks for the window that was frontmost before the
// launcher appeared.
type FrontmostWindow struct {
	RequestID
}

func (FrontmostWindow) messageType() Type { return TypeFrontmostWindow }

// FrontmostWindowResult answers FrontmostWindow.
type FrontmostWindowResult struct {
	RequestID
	Window *SystemWindowInfo `json:"window,omitempty"`
	Error  string            `json:"error,omitempty"`
}

func (FrontmostWindowResult) messageType() Type { return TypeFrontmostWindowResult }

// FileSearch runs a metadata file search.
type FileSearch struct {
	RequestID
	Query  string `json:"query"`
	OnlyIn string `json:"onlyin,omitempty"`
}

func (FileSearch) messageType() Type { return TypeFileSearch }

// FileSearchResult answers FileSearch.
type FileSearchResult struct {
	RequestID
	Files []FileSearchEntry `json:"files"`
}

func (FileSearchResult) messageType() Type { return TypeFileSearchResult }

// CaptureScreenshot captures the launcher window.
type CaptureScreenshot struct {
	RequestID
	HiDPI *bool `json:"hiDpi,omitempty"`
}

func (CaptureScreenshot) messageType() Type { return TypeCaptureScreenshot }

// ScreenshotResult answers CaptureScreenshot with base64 PNG data.
type ScreenshotResult struct {
	RequestID
	Data   string `json:"data"`
	Width  uint32 `json:"width"`
	Height uint32 `json:"height"`
}

func (ScreenshotResult) messageType() Type { return TypeScreenshotResult }

// GetState queries the current UI state without modifying it.
type GetState struct {
	RequestID
}

func (GetState) messageType() Type { return TypeGetState }

// StateResult answers GetState.
type StateResult struct {
	RequestID
	PromptType         string  `json:"promptType"`
	PromptID           string  `json:"promptId,omitempty"`
	Placeholder        string  `json:"placeholder,omitempty"`
	InputValue         string  `json:"inputValue"`
	ChoiceCount        int     `json:"choiceCount"`
	VisibleChoiceCount int     `json:"visibleChoiceCount"`
	SelectedIndex      int     `json:"selectedIndex"`
	SelectedValue      *string `json:"selectedValue,omitempty"`
	IsFocused          bool    `json:"isFocused"`
	WindowVisible      bool    `json:"windowVisible"`
}

func (StateResult) messageType() Type { return TypeStateResult }

// GetElements asks for visible UI elements with semantic ids.
type GetElements struct {
	RequestID
	Limit *int `json:"limit,omitempty"`
}

func (GetElements) messageType() Type { return TypeGetElements }

// ElementsResult answers GetElements.
type ElementsResult struct {
	RequestID
	Elements   []ElementInfo `json:"elements"`
	TotalCount int           `json:"totalCount"`
}

func (ElementsResult) messageType() Type { return TypeElementsResult }

// GetLayoutInfo asks for the component tree with computed layout.
type GetLayoutInfo struct {
	RequestID
}

func (GetLayoutInfo) messageType() Type { return TypeGetLayoutInfo }

// LayoutInfoResult answers GetLayoutInfo; the layout fields flatten onto
// the wire object.
type LayoutInfoResult struct {
	RequestID
	LayoutInfo
}

func (LayoutInfoResult) messageType() Type { return TypeLayoutInfoResult }

// RunScriptlet executes a scriptlet with variable substitution.
type RunScriptlet struct {
	RequestID
	Scriptlet ScriptletData   `json:"scriptlet"`
	Inputs    json.RawMessage `json:"inputs,omitempty"`
	Args      []string        `json:"args,omitempty"`
}

func (RunScriptlet) messageType() Type { return TypeRunScriptlet }

// GetScriptlets lists available scriptlets.
type GetScriptlets struct {
	RequestID
	Kit   string `json:"kit,omitempty"`
	Group string `json:"group,omitempty"`
}

func (GetScriptlets) messageType() Type { return TypeGetScriptlets }

// ScriptletList answers GetScriptlets.
type ScriptletList struct {
	RequestID
	Scriptlets []ScriptletData `json:"scriptlets"`
}

func (ScriptletList) messageType() Type { return TypeScriptletList }

// ScriptletResult answers RunScriptlet.
type ScriptletResult struct {
	RequestID
	Success  bool   `json:"success"`
	Output   string `json:"output,omitempty"`
	Error    string `json:"error,omitempty"`
	ExitCode *int   `json:"exitCode,omitempty"`
}

func (ScriptletResult) messageType() Type { return TypeScriptletResult }

// SimulateClick clicks at window-relative coordinates (test tooling).
type SimulateClick struct {
	RequestID
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Button string  `json:"button,omitempty"`
}

func (SimulateClick) messageType() Type { return TypeSimulateClick }

// SimulateClickResult answers SimulateClick.
type SimulateClickResult struct {
	RequestID
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func (SimulateClickResult) messageType() Type { return TypeSimulateClickResult }

// GetMenuBar asks for an application's menu hierarchy.
type GetMenuBar struct {
	RequestID
	BundleID string `json:"bundleId,omitempty"`
}

func (GetMenuBar) messageType() Type { return TypeGetMenuBar }

// MenuBarResult answers GetMenuBar.
type MenuBarResult struct {
	RequestID
	Items []MenuBarItem `json:"items"`
}

func (MenuBarResult) messageType() Type { return TypeMenuBarResult }

// ExecuteMenuAction clicks a menu item by title path.
type ExecuteMenuAction struct {
	RequestID
	BundleID string   `json:"bundleId"`
	Path     []string `json:"path"`
}

func (ExecuteMenuAction) messageType() Type { return TypeExecuteMenuAction }

// MenuActionResult answers ExecuteMenuAction.
type MenuActionResult struct {
	RequestID
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func (MenuActionResult) messageType() Type { return TypeMenuActionResult }
