package chat

import (
	jsoniter "github.com/json-iterator/go"
)

type RequestContent interface {
	Body() ([]byte, error)
	InitResponse(modelID string) Response
}

// CompletionRequest is the Claude text-completion body.
type CompletionRequest struct {
	Prompt            string   `json:"prompt"`
	MaxTokensToSample int      `json:"max_tokens_to_sample"`
	Temperature       float64  `json:"temperature"`
	TopP              float64  `json:"top_p,omitempty"`
	TopK              int      `json:"top_k,omitempty"`
	StopSequences     []string `json:"stop_sequences,omitempty"`
}

func (c *CompletionRequest) Body() ([]byte, error) {
	return jsoniter.Marshal(c)
}

func (c *CompletionRequest) InitResponse(modelID string) Response {
	return &CommonResponse{Model: modelID}
}
