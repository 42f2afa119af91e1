package model

// ChatMessage is one turn of a conversation as sent by the client.
type ChatMessage struct {
	Role    string `json:"role"` // "user", "assistant" or "system"
	Content string `json:"content"`
}

// ChatRequest is the chat endpoint payload.
type ChatRequest struct {
	Messages []ChatMessage `json:"messages" binding:"required"`
}

// ToolCallInfo is the machine-readable sidecar describing the tool run
// performed for a chat turn, embedded for client-side reconstruction.
type ToolCallInfo struct {
	ToolType ToolType          `json:"toolType"`
	Params   map[string]string `json:"params"`
	Result   interface{}       `json:"result"`
}

// ToolOutcome is what the tool router returns to the orchestrator and the
// tools endpoint: the selected tool, the classification that selected it,
// and the raw handler result.
type ToolOutcome struct {
	ToolType     ToolType     `json:"toolType"`
	IntentResult IntentResult `json:"intentResult"`
	Result       interface{}  `json:"result"`
}
