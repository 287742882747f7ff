package openai

// Assistant is a provider-managed configuration bundle addressed by an opaque ID.
type Assistant struct {
	ID            string         `json:"id"`
	Object        string         `json:"object,omitempty"`
	Name          string         `json:"name"`
	Model         string         `json:"model,omitempty"`
	Instructions  string         `json:"instructions,omitempty"`
	Tools         []Tool         `json:"tools,omitempty"`
	ToolResources *ToolResources `json:"tool_resources,omitempty"`
}

// Tool enables an assistant capability, e.g. file_search or code_interpreter.
type Tool struct {
	Type string `json:"type"`
}

// ToolResources binds provider resources (vector stores) to assistant tools.
type ToolResources struct {
	FileSearch *FileSearchResources `json:"file_search,omitempty"`
}

// FileSearchResources lists vector stores available to the file_search tool.
type FileSearchResources struct {
	VectorStoreIDs []string `json:"vector_store_ids"`
}

// AssistantList is the response from GET /assistants.
type AssistantList struct {
	Object  string      `json:"object"`
	Data    []Assistant `json:"data"`
	HasMore bool        `json:"has_more,omitempty"`
}

// CreateAssistantRequest is the payload for POST /assistants.
type CreateAssistantRequest struct {
	Model        string `json:"model"`
	Name         string `json:"name"`
	Instructions string `json:"instructions,omitempty"`
	Tools        []Tool `json:"tools,omitempty"`
}

// UpdateAssistantRequest is the payload for POST /assistants/{id}.
type UpdateAssistantRequest struct {
	ToolResources *ToolResources `json:"tool_resources,omitempty"`
}

// VectorStore is a provider-managed index of uploaded documents.
type VectorStore struct {
	ID     string `json:"id"`
	Object string `json:"object,omitempty"`
	Name   string `json:"name"`
	Status string `json:"status,omitempty"`
}

// File is an uploaded provider file handle.
type File struct {
	ID       string `json:"id"`
	Object   string `json:"object,omitempty"`
	Filename string `json:"filename,omitempty"`
	Purpose  string `json:"purpose,omitempty"`
	Bytes    int64  `json:"bytes,omitempty"`
}

// FileBatch tracks a set of files being indexed into a vector store.
type FileBatch struct {
	ID         string     `json:"id"`
	Object     string     `json:"object,omitempty"`
	Status     string     `json:"status"`
	FileCounts FileCounts `json:"file_counts"`
}

// FileCounts summarizes per-file indexing outcomes within a batch.
type FileCounts struct {
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
	Failed     int `json:"failed"`
	Cancelled  int `json:"cancelled"`
	Total      int `json:"total"`
}

// Thread is a provider-managed conversation context.
type Thread struct {
	ID     string `json:"id"`
	Object string `json:"object,omitempty"`
}

// Message is a single message within a thread.
type Message struct {
	ID      string           `json:"id"`
	Object  string           `json:"object,omitempty"`
	Role    string           `json:"role"`
	Content []MessageContent `json:"content"`
}

// MessageContent is one content block of a message. Only text blocks carry
// a value this client reads.
type MessageContent struct {
	Type string       `json:"type"`
	Text *MessageText `json:"text,omitempty"`
}

// MessageText holds the text value of a text content block.
type MessageText struct {
	Value string `json:"value"`
}

// Text returns the first text block value of the message, or "".
func (m Message) Text() string {
	for _, c := range m.Content {
		if c.Type == "text" && c.Text != nil {
			return c.Text.Value
		}
	}
	return ""
}

// MessageList is the response from GET /threads/{id}/messages.
type MessageList struct {
	Object  string    `json:"object"`
	Data    []Message `json:"data"`
	HasMore bool      `json:"has_more,omitempty"`
}

// Run executes an assistant against a thread. Status moves through
// queued and in_progress before reaching a terminal state.
type Run struct {
	ID          string `json:"id"`
	Object      string `json:"object,omitempty"`
	ThreadID    string `json:"thread_id,omitempty"`
	AssistantID string `json:"assistant_id,omitempty"`
	Status      string `json:"status"`
	LastError   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"last_error,omitempty"`
}

// Pending reports whether the run (or batch) status is still non-terminal.
func Pending(status string) bool {
	return status == "queued" || status == "in_progress"
}

// deleted is the provider's acknowledgement for DELETE calls.
type deleted struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}
