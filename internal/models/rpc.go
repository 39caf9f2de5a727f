package models

// RPCResult is the envelope every named procedure answers with.
type RPCResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}
