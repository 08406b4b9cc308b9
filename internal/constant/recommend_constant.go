package constant

const (
	ChatMessageRoleUser   = "user"
	ChatMessageRoleModel  = "model"
	ChatMessageRoleSystem = "system"

	// Gemini embedding task types
	EmbeddingTaskQuery    = "RETRIEVAL_QUERY"
	EmbeddingTaskDocument = "RETRIEVAL_DOCUMENT"
)

// User-facing error messages. The internal error text never leaves the server.
const (
	MsgInvalidBody        = "Invalid request body. Required: {'question': 'your non-empty query'}."
	MsgNotJSON            = "Request must be JSON."
	MsgInternalError      = "An internal error occurred while processing the request."
	MsgServiceUnavailable = "Service Unavailable"
)
