package protocol

import "encoding/json"

// Supporting wire types shared across message kinds. All field names follow
// the camelCase convention of the SDK side.

// Choice is one selectable entry in a list prompt. Key, when present, gives
// the choice a stable identity across re-renders (choiceKey capability).
type Choice struct {
	Name        string `json:"name"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
	Key         string `json:"key,omitempty"`
}

// Field is one input in a fields prompt.
type Field struct {
	Name        string `json:"name"`
	Label       string `json:"label,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`
	Type        string `json:"type,omitempty"`
	Value       string `json:"value,omitempty"`
}

// Action is an entry in the actions panel. HasAction controls routing: true
// sends actionTriggered back to the script, false submits the value directly.
type Action struct {
	Name      string `json:"name"`
	Shortcut  string `json:"shortcut,omitempty"`
	Value     string `json:"value,omitempty"`
	HasAction bool   `json:"hasAction,omitempty"`
	Visible   *bool  `json:"visible,omitempty"`
}

// ChatPosition places a chat message: "left" (assistant) or "right" (user).
// Empty defaults to left.
type ChatPosition string

const (
	ChatPositionLeft  ChatPosition = "left"
	ChatPositionRight ChatPosition = "right"
)

// ChatEntry is one message in a chat prompt.
type ChatEntry struct {
	Text     string       `json:"text"`
	Position ChatPosition `json:"position,omitempty"`
}

// ClipboardAction selects the clipboard operation.
type ClipboardAction string

const (
	ClipboardRead  ClipboardAction = "read"
	ClipboardWrite ClipboardAction = "write"
)

// ClipboardFormat names the clipboard payload format.
type ClipboardFormat string

const (
	ClipboardFormatText  ClipboardFormat = "text"
	ClipboardFormatImage ClipboardFormat = "image"
)

// ClipboardEntryType categorizes a clipboard history entry's content.
type ClipboardEntryType string

const (
	ClipboardEntryText  ClipboardEntryType = "text"
	ClipboardEntryImage ClipboardEntryType = "image"
)

// ClipboardHistoryAction selects a clipboard-history operation. Pin, unpin
// and remove require an entry id.
type ClipboardHistoryAction string

const (
	ClipboardHistoryActionList ClipboardHistoryAction = "list"
	ClipboardHistoryGet        ClipboardHistoryAction = "get"
	ClipboardHistoryPin        ClipboardHistoryAction = "pin"
	ClipboardHistoryUnpin      ClipboardHistoryAction = "unpin"
	ClipboardHistoryRemove     ClipboardHistoryAction = "remove"
	ClipboardHistoryClear      ClipboardHistoryAction = "clear"
)

// ClipboardHistoryEntryData is one entry in a clipboard history listing.
type ClipboardHistoryEntryData struct {
	EntryID     string             `json:"entryId"`
	Content     string             `json:"content"`
	ContentType ClipboardEntryType `json:"contentType"`
	Timestamp   string             `json:"timestamp"`
	Pinned      bool               `json:"pinned"`
}

// KeyboardAction selects the keyboard simulation mode.
type KeyboardAction string

const (
	KeyboardType  KeyboardAction = "type"
	KeyboardPress KeyboardAction = "press"
)

// MouseAction selects the pointer operation.
type MouseAction string

const (
	MouseMove        MouseAction = "move"
	MouseClick       MouseAction = "click"
	MouseSetPosition MouseAction = "setPosition"
)

// MouseData carries pointer coordinates and an optional button. Under the
// legacy encoding (before the mouseDataV2 capability) move deltas and
// absolute positions were an untagged union and serialize identically; only
// the accompanying action disambiguates them. Receivers must not infer
// semantics from the data shape alone.
type MouseData struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Button string  `json:"button,omitempty"`
}

// WindowActionType selects a system-window operation.
type WindowActionType string

const (
	WindowFocus     WindowActionType = "focus"
	WindowMinimize  WindowActionType = "minimize"
	WindowMaximize  WindowActionType = "maximize"
	WindowRestore   WindowActionType = "restore"
	WindowClose     WindowActionType = "close"
	WindowSetBounds WindowActionType = "setBounds"
	WindowTile      WindowActionType = "tile"
	WindowCenter    WindowActionType = "center"
)

// TilePosition places a window for the tile action.
type TilePosition string

const (
	TileLeft        TilePosition = "left"
	TileRight       TilePosition = "right"
	TileTop         TilePosition = "top"
	TileBottom      TilePosition = "bottom"
	TileTopLeft     TilePosition = "topLeft"
	TileTopRight    TilePosition = "topRight"
	TileBottomLeft  TilePosition = "bottomLeft"
	TileBottomRight TilePosition = "bottomRight"
)

// WindowRect is a window rectangle in screen coordinates.
type WindowRect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// SystemWindowInfo describes one system window.
type SystemWindowInfo struct {
	WindowID    uint32     `json:"windowId"`
	Title       string     `json:"title"`
	AppName     string     `json:"appName"`
	BundleID    string     `json:"bundleId,omitempty"`
	Bounds      WindowRect `json:"bounds"`
	IsMinimized bool       `json:"isMinimized,omitempty"`
	IsFrontmost bool       `json:"isFrontmost,omitempty"`
}

// DisplayInfo describes one attached display.
type DisplayInfo struct {
	DisplayID   uint32     `json:"displayId"`
	Bounds      WindowRect `json:"bounds"`
	IsPrimary   bool       `json:"isPrimary"`
	ScaleFactor float64    `json:"scaleFactor"`
}

// FileSearchEntry is one hit from a metadata file search.
type FileSearchEntry struct {
	Path string `json:"path"`
	Name string `json:"name"`
}

// ElementInfo describes one visible UI element with its semantic id.
type ElementInfo struct {
	ID     string       `json:"id"`
	Role   string       `json:"role"`
	Label  string       `json:"label,omitempty"`
	Value  string       `json:"value,omitempty"`
	Bounds LayoutBounds `json:"bounds"`
}

// LayoutBounds is a bounding rectangle in window pixels.
type LayoutBounds struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// BoxSides holds per-side box model values in pixels.
type BoxSides struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// BoxModel is the computed spacing of a component.
type BoxModel struct {
	Padding *BoxSides `json:"padding,omitempty"`
	Margin  *BoxSides `json:"margin,omitempty"`
	Gap     *float64  `json:"gap,omitempty"`
}

// FlexStyle is the computed flex layout of a component.
type FlexStyle struct {
	Direction      string   `json:"direction,omitempty"`
	Grow           *float64 `json:"grow,omitempty"`
	Shrink         *float64 `json:"shrink,omitempty"`
	AlignItems     string   `json:"alignItems,omitempty"`
	JustifyContent string   `json:"justifyContent,omitempty"`
}

// LayoutComponentInfo describes one component in the layout tree, including
// an optional plain-language explanation of its size and position.
type LayoutComponentInfo struct {
	Name          string       `json:"name"`
	ComponentType string       `json:"type"`
	Bounds        LayoutBounds `json:"bounds"`
	BoxModel      *BoxModel    `json:"boxModel,omitempty"`
	Flex          *FlexStyle   `json:"flex,omitempty"`
	Depth         uint32       `json:"depth"`
	Parent        string       `json:"parent,omitempty"`
	Children      []string     `json:"children,omitempty"`
	Explanation   string       `json:"explanation,omitempty"`
}

// LayoutInfo is the full layout snapshot returned for a layout query.
type LayoutInfo struct {
	WindowWidth  float64               `json:"windowWidth"`
	WindowHeight float64               `json:"windowHeight"`
	PromptType   string                `json:"promptType"`
	Components   []LayoutComponentInfo `json:"components"`
	Timestamp    string                `json:"timestamp"`
}

// GridOptions configures the debug grid overlay. Depth is either a preset
// string ("prompts", "all") or a list of component names, so it stays raw.
type GridOptions struct {
	GridSize            uint32           `json:"gridSize,omitempty"`
	ShowBounds          bool             `json:"showBounds,omitempty"`
	ShowBoxModel        bool             `json:"showBoxModel,omitempty"`
	ShowAlignmentGuides bool             `json:"showAlignmentGuides,omitempty"`
	ShowDimensions      bool             `json:"showDimensions,omitempty"`
	Depth               json.RawMessage  `json:"depth,omitempty"`
	ColorScheme         *GridColorScheme `json:"colorScheme,omitempty"`
}

// GridColorScheme overrides overlay colors, hex "#RRGGBB" or "#RRGGBBAA".
type GridColorScheme struct {
	GridLines      string `json:"gridLines,omitempty"`
	PromptBounds   string `json:"promptBounds,omitempty"`
	InputBounds    string `json:"inputBounds,omitempty"`
	ButtonBounds   string `json:"buttonBounds,omitempty"`
	ListBounds     string `json:"listBounds,omitempty"`
	PaddingFill    string `json:"paddingFill,omitempty"`
	MarginFill     string `json:"marginFill,omitempty"`
	AlignmentGuide string `json:"alignmentGuide,omitempty"`
}

// ScriptletData describes one runnable scriptlet.
type ScriptletData struct {
	Name     string   `json:"name"`
	Tool     string   `json:"tool"`
	Command  string   `json:"command"`
	Inputs   []string `json:"inputs,omitempty"`
	Kit      string   `json:"kit,omitempty"`
	Group    string   `json:"group,omitempty"`
	FilePath string   `json:"filePath,omitempty"`
}

// AiChatInfo is chat metadata without its messages.
type AiChatInfo struct {
	ChatID       string `json:"chatId"`
	Title        string `json:"title"`
	ModelID      string `json:"modelId"`
	Provider     string `json:"provider"`
	CreatedAt    string `json:"createdAt,omitempty"`
	UpdatedAt    string `json:"updatedAt,omitempty"`
	MessageCount int    `json:"messageCount,omitempty"`
}

// AiMessageInfo is one message in an AI conversation.
type AiMessageInfo struct {
	MessageID string `json:"messageId"`
	Role      string `json:"role"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// MenuBarItem is one entry in an application's menu hierarchy.
type MenuBarItem struct {
	Title    string        `json:"title"`
	Enabled  bool          `json:"enabled"`
	Shortcut string        `json:"shortcut,omitempty"`
	Submenu  []MenuBarItem `json:"submenu,omitempty"`
}
