package httpdto

// MessageResponse is the body of handler-level failures (400/404).
type MessageResponse struct {
	Message string `json:"Message"`
}

// ErrorResponse is the body written by the pipeline itself (401/500).
type ErrorResponse struct {
	Error string `json:"error"`
}

// ProblemDetails follows RFC 9457 and is sent as application/problem+json.
type ProblemDetails struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

const ProblemContentType = "application/problem+json"

func NewMessageResponse(msg string) MessageResponse {
	return MessageResponse{Message: msg}
}

func NewErrorResponse(err string) ErrorResponse {
	return ErrorResponse{Error: err}
}

// NewServerProblem builds a 500 problem with a caller supplied detail.
func NewServerProblem(detail string) ProblemDetails {
	return ProblemDetails{
		Type:   "https://tools.ietf.org/html/rfc9110#section-15.6.1",
		Title:  "An error occurred while processing your request.",
		Status: 500,
		Detail: detail,
	}
}
