package dtos

import "encoding/json"

// Envelope wraps every response from both services.
type Envelope struct {
	StatusCode int    `json:"status_code"`
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	Data       any    `json:"data"`
}

// RawEnvelope is used by clients that decode the data payload lazily.
type RawEnvelope struct {
	StatusCode int             `json:"status_code"`
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
}
