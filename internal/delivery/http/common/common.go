package http_common

// ErrorResponse is the error body shared by all HTTP controllers.
type ErrorResponse struct {
	Error   string `json:"error,omitempty"`
	Message string `json:"message"`
	Code    int    `json:"code,omitempty"`
}
