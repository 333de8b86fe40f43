package types

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorEnvelope is the single error shape returned by every endpoint.
type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

// StatusResponse is returned by the health probes.
type StatusResponse struct {
	Status string `json:"status"`
}
