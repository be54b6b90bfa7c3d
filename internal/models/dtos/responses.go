package dtos

type APIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	ResponseTime string `json:"response_time"`
	Data         any    `json:"data,omitzero"`
}

type DeleteResponse struct {
	Success bool `json:"success"`
}
