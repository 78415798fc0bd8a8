package dto

import "time"

// APIResponse is the envelope of every response body.
type APIResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Data    any       `json:"data"`
	Error   *ErrorDTO `json:"error"`
}

type ErrorDTO struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
}

func Success(message string, data any) APIResponse {
	return APIResponse{Success: true, Message: message, Data: data}
}

// Failure prefixes message the way every error body does.
func Failure(message string, err *ErrorDTO) APIResponse {
	return APIResponse{Success: false, Message: "Erro: " + message, Error: err}
}

// Page is one slice of a paginated listing. Page numbers start at 0.
type Page[D any] struct {
	Content       []D   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

func NewPage[D any](content []D, page, size int, total int64) Page[D] {
	if content == nil {
		content = []D{}
	}
	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}
	return Page[D]{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}
