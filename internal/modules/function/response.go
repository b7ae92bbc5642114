package function

import "net/http"

// Response is shared by all five functions; each sets only its own fields.
type Response struct {
	StatusCode      int    `json:"statusCode"`
	Message         string `json:"message,omitempty"`
	ImageData       string `json:"image_data,omitempty"`
	Seed            *int64 `json:"seed,omitempty"`
	Style           string `json:"style,omitempty"`
	Prompt          string `json:"prompt,omitempty"`
	OptimizedPrompt string `json:"optimized_prompt,omitempty"`
	PromptID        string `json:"prompt_id,omitempty"`
	LabelID         string `json:"label_id,omitempty"`
	LabelName       string `json:"label_name,omitempty"`
}

func (r *Response) Succeed() bool {
	return r.StatusCode == http.StatusOK
}

func badRequest(err error) Response {
	return Response{StatusCode: http.StatusBadRequest, Message: err.Error()}
}

func serverError(message string) Response {
	return Response{StatusCode: http.StatusInternalServerError, Message: message}
}
