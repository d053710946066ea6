package responses

type ResponseDTO struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponseDTO is the serialized error envelope. DevMessage is populated
// outside production only.
type ErrorResponseDTO struct {
	StatusCode int    `json:"status_code"`
	Success    bool   `json:"success"`
	Code       string `json:"error_code,omitempty"`
	Message    string `json:"message"`
	DevMessage string `json:"dev_message,omitempty"`
}
