package httpdto

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status string `json:"status"`
	Users  int    `json:"users"`
	Error  string `json:"error,omitempty"`
}
