package protocol

// AI chat message kinds. Requests and their paired results embed RequestID;
// the subscription push events (AiStreamChunk, AiStreamComplete, AiNewMessage)
// correlate by subscription id instead and carry no request id. AiError is the
// one kind where the request id is optional: subscription errors omit it.

const (
	TypeAiIsOpen                Type = "aiIsOpen"
	TypeAiIsOpenResult          Type = "aiIsOpenResult"
	TypeAiGetActiveChat         Type = "aiGetActiveChat"
	TypeAiActiveChatResult      Type = "aiActiveChatResult"
	TypeAiListChats             Type = "aiListChats"
	TypeAiChatListResult        Type = "aiChatListResult"
	TypeAiGetConversation       Type = "aiGetConversation"
	TypeAiConversationResult    Type = "aiConversationResult"
	TypeAiStartChat             Type = "aiStartChat"
	TypeAiChatCreated           Type = "aiChatCreated"
	TypeAiAppendMessage         Type = "aiAppendMessage"
	TypeAiMessageAppended       Type = "aiMessageAppended"
	TypeAiSendMessage           Type = "aiSendMessage"
	TypeAiMessageSent           Type = "aiMessageSent"
	TypeAiSetSystemPrompt       Type = "aiSetSystemPrompt"
	TypeAiSystemPromptSet       Type = "aiSystemPromptSet"
	TypeAiFocus                 Type = "aiFocus"
	TypeAiFocusResult           Type = "aiFocusResult"
	TypeAiGetStreamingStatus    Type = "aiGetStreamingStatus"
	TypeAiStreamingStatusResult Type = "aiStreamingStatusResult"
	TypeAiDeleteChat            Type = "aiDeleteChat"
	TypeAiChatDeleted           Type = "aiChatDeleted"
	TypeAiSubscribe             Type = "aiSubscribe"
	TypeAiSubscribed            Type = "aiSubscribed"
	TypeAiUnsubscribe           Type = "aiUnsubscribe"
	TypeAiUnsubscribed          Type = "aiUnsubscribed"
	TypeAiStreamChunk           Type = "aiStreamChunk"
	TypeAiStreamComplete        Type = "aiStreamComplete"
	TypeAiNewMessage            Type = "aiNewMessage"
	TypeAiError                 Type = "aiError"
)

// AiIsOpen asks whether the AI window is open.
type AiIsOpen struct {
	RequestID
}

func (AiIsOpen) messageType() Type { return TypeAiIsOpen }

// AiIsOpenResult answers AiIsOpen.
type AiIsOpenResult struct {
	RequestID
	IsOpen       bool   `json:"isOpen"`
	ActiveChatID string `json:"activeChatId,omitempty"`
}

func (AiIsOpenResult) messageType() Type { return TypeAiIsOpenResult }

// AiGetActiveChat asks for the active chat's metadata.
type AiGetActiveChat struct {
	RequestID
}

func (AiGetActiveChat) messageType() Type { return TypeAiGetActiveChat }

// AiActiveChatResult answers AiGetActiveChat; Chat is null when no chat is
// active.
type AiActiveChatResult struct {
	RequestID
	Chat *AiChatInfo `json:"chat,omitempty"`
}

func (AiActiveChatResult) messageType() Type { return TypeAiActiveChatResult }

// AiListChats lists stored chats.
type AiListChats struct {
	RequestID
	Limit          *int `json:"limit,omitempty"`
	IncludeDeleted bool `json:"includeDeleted,omitempty"`
}

func (AiListChats) messageType() Type { return TypeAiListChats }

// AiChatListResult answers AiListChats.
type AiChatListResult struct {
	RequestID
	Chats      []AiChatInfo `json:"chats"`
	TotalCount int          `json:"totalCount"`
}

func (AiChatListResult) messageType() Type { return TypeAiChatListResult }

// AiGetConversation fetches messages from a chat; ChatID defaults to the
// active chat when empty.
type AiGetConversation struct {
	RequestID
	ChatID string `json:"chatId,omitempty"`
	Limit  *int   `json:"limit,omitempty"`
}

func (AiGetConversation) messageType() Type { return TypeAiGetConversation }

// AiConversationResult answers AiGetConversation.
type AiConversationResult struct {
	RequestID
	ChatID   string          `json:"chatId"`
	Messages []AiMessageInfo `json:"messages"`
	HasMore  bool            `json:"hasMore"`
}

func (AiConversationResult) messageType() Type { return TypeAiConversationResult }

// AiStartChat starts a new conversation seeded with one user message.
type AiStartChat struct {
	RequestID
	Message      string `json:"message"`
	SystemPrompt string `json:"systemPrompt,omitempty"`
	Image        string `json:"image,omitempty"`
	ModelID      string `json:"modelId,omitempty"`
	NoResponse   bool   `json:"noResponse,omitempty"`
}

func (AiStartChat) messageType() Type { return TypeAiStartChat }

// AiChatCreated answers AiStartChat.
type AiChatCreated struct {
	RequestID
	ChatID           string `json:"chatId"`
	Title            string `json:"title"`
	ModelID          string `json:"modelId"`
	Provider         string `json:"provider"`
	StreamingStarted bool   `json:"streamingStarted"`
}

func (AiChatCreated) messageType() Type { return TypeAiChatCreated }

// AiAppendMessage appends a message without triggering a response.
type AiAppendMessage struct {
	RequestID
	ChatID  string `json:"chatId"`
	Content string `json:"content"`
	Role    string `json:"role"`
}

func (AiAppendMessage) messageType() Type { return TypeAiAppendMessage }

// AiMessageAppended answers AiAppendMessage.
type AiMessageAppended struct {
	RequestID
	MessageID string `json:"messageId"`
	ChatID    string `json:"chatId"`
}

func (AiMessageAppended) messageType() Type { return TypeAiMessageAppended }

// AiSendMessage sends a user message and triggers the AI response.
type AiSendMessage struct {
	RequestID
	ChatID  string `json:"chatId"`
	Content string `json:"content"`
	Image   string `json:"image,omitempty"`
}

func (AiSendMessage) messageType() Type { return TypeAiSendMessage }

// AiMessageSent answers AiSendMessage.
type AiMessageSent struct {
	RequestID
	UserMessageID    string `json:"userMessageId"`
	ChatID           string `json:"chatId"`
	StreamingStarted bool   `json:"streamingStarted"`
}

func (AiMessageSent) messageType() Type { return TypeAiMessageSent }

// AiSetSystemPrompt replaces a chat's system prompt.
type AiSetSystemPrompt struct {
	RequestID
	ChatID string `json:"chatId"`
	Prompt string `json:"prompt"`
}

func (AiSetSystemPrompt) messageType() Type { return TypeAiSetSystemPrompt }

// AiSystemPromptSet answers AiSetSystemPrompt.
type AiSystemPromptSet struct {
	RequestID
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func (AiSystemPromptSet) messageType() Type { return TypeAiSystemPromptSet }

// AiFocus brings the AI window to the front, opening it if needed.
type AiFocus struct {
	RequestID
}

func (AiFocus) messageType() Type { return TypeAiFocus }

// AiFocusResult answers AiFocus.
type AiFocusResult struct {
	RequestID
	Success bool `json:"success"`
	WasOpen bool `json:"wasOpen"`
}

func (AiFocusResult) messageType() Type { return TypeAiFocusResult }

// AiGetStreamingStatus asks whether a chat is mid-stream.
type AiGetStreamingStatus struct {
	RequestID
	ChatID string `json:"chatId,omitempty"`
}

func (AiGetStreamingStatus) messageType() Type { return TypeAiGetStreamingStatus }

// AiStreamingStatusResult answers AiGetStreamingStatus.
type AiStreamingStatusResult struct {
	RequestID
	IsStreaming    bool   `json:"isStreaming"`
	ChatID         string `json:"chatId,omitempty"`
	PartialContent string `json:"partialContent,omitempty"`
}

func (AiStreamingStatusResult) messageType() Type { return TypeAiStreamingStatusResult }

// AiDeleteChat deletes a chat; soft delete unless Permanent.
type AiDeleteChat struct {
	RequestID
	ChatID    string `json:"chatId"`
	Permanent bool   `json:"permanent,omitempty"`
}

func (AiDeleteChat) messageType() Type { return TypeAiDeleteChat }

// AiChatDeleted answers AiDeleteChat.
type AiChatDeleted struct {
	RequestID
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func (AiChatDeleted) messageType() Type { return TypeAiChatDeleted }

// AiSubscribe subscribes to AI events ("message", "streamChunk",
// "streamComplete", "error"), optionally filtered to one chat.
type AiSubscribe struct {
	RequestID
	Events []string `json:"events"`
	ChatID string   `json:"chatId,omitempty"`
}

func (AiSubscribe) messageType() Type { return TypeAiSubscribe }

// AiSubscribed answers AiSubscribe with the id to unsubscribe with.
type AiSubscribed struct {
	RequestID
	SubscriptionID string   `json:"subscriptionId"`
	Events         []string `json:"events"`
}

func (AiSubscribed) messageType() Type { return TypeAiSubscribed }

// AiUnsubscribe cancels a subscription.
type AiUnsubscribe struct {
	RequestID
}

func (AiUnsubscribe) messageType() Type { return TypeAiUnsubscribe }

// AiUnsubscribed answers AiUnsubscribe.
type AiUnsubscribed struct {
	RequestID
}

func (AiUnsubscribed) messageType() Type { return TypeAiUnsubscribed }

// AiStreamChunk is pushed to subscribers as response text streams in.
type AiStreamChunk struct {
	SubscriptionID     string `json:"subscriptionId"`
	ChatID             string `json:"chatId"`
	Chunk              string `json:"chunk"`
	AccumulatedContent string `json:"accumulatedContent"`
}

func (AiStreamChunk) messageType() Type { return TypeAiStreamChunk }

// AiStreamComplete is pushed to subscribers when a stream finishes.
type AiStreamComplete struct {
	SubscriptionID string  `json:"subscriptionId"`
	ChatID         string  `json:"chatId"`
	MessageID      string  `json:"messageId"`
	FullContent    string  `json:"fullContent"`
	TokensUsed     *uint32 `json:"tokensUsed,omitempty"`
}

func (AiStreamComplete) messageType() Type { return TypeAiStreamComplete }

// AiNewMessage is pushed to subscribers when a message lands in a chat.
type AiNewMessage struct {
	SubscriptionID string        `json:"subscriptionId"`
	ChatID         string        `json:"chatId"`
	Message        AiMessageInfo `json:"message"`
}

func (AiNewMessage) messageType() Type { return TypeAiNewMessage }

// AiError reports a failed AI request or a subscription error. It belongs to
// the request family only when the request id is present.
type AiError struct {
	SubscriptionID string `json:"subscriptionId,omitempty"`
	ReqID          string `json:"requestId,omitempty"`
	Code           string `json:"code"`
	Message        string `json:"message"`
}

func (AiError) messageType() Type { return TypeAiError }

func (e AiError) requestID() (string, bool) { return e.ReqID, e.ReqID != "" }
