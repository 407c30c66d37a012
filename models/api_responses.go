package models

// ApiResponse is the envelope every backend and proxy endpoint speaks:
// {success, code, data, error}. Data is absent on failure, Error on success.
type ApiResponse struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Envelope is the generic decode-side form used when the data shape is known.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func SuccessResponse(code int, data any) ApiResponse {
	return ApiResponse{
		Success: true,
		Code:    code,
		Data:    data,
	}
}

func ErrorResponse(code int, message string) ApiResponse {
	return ApiResponse{
		Code:  code,
		Error: message,
	}
}
