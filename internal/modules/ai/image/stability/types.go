package stability

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/reusedev/prompt-studio/internal/modules/ai/image"
)

const (
	cfgScale = 10
	steps    = 30
)

type TextPrompt struct {
	Text   string  `json:"text"`
	Weight float64 `json:"weight,omitempty"`
}

// TextToImageRequest is the SDXL body; Width/Height are omitted when zero so
// the model uses its native size.
type TextToImageRequest struct {
	TextPrompts []TextPrompt `json:"text_prompts"`
	StylePreset string       `json:"style_preset,omitempty"`
	Seed        int64        `json:"seed"`
	CfgScale    float64      `json:"cfg_scale"`
	Steps       int          `json:"steps"`
	Width       int          `json:"width,omitempty"`
	Height      int          `json:"height,omitempty"`
}

func (t *TextToImageRequest) Body() ([]byte, error) {
	return jsoniter.Marshal(t)
}

func (t *TextToImageRequest) InitResponse(modelID string) image.Response {
	return &TextToImageResponse{BaseResponse: image.BaseResponse{Model: modelID, Seed: t.Seed}}
}

type TextToImageResponse struct {
	image.BaseResponse
}

type artifact struct {
	Seed         int64  `json:"seed"`
	Base64       string `json:"base64"`
	FinishReason string `json:"finishReason"`
}

type ArtifactsB64Strategy struct{}

func (a *ArtifactsB64Strategy) ExtractB64s(body []byte) ([]string, error) {
	var s struct {
		Result    string     `json:"result"`
		Artifacts []artifact `json:"artifacts"`
		Message   string     `json:"message"`
	}
	if err := jsoniter.Unmarshal(body, &s); err != nil {
		return nil, fmt.Errorf("malformed artifacts response: %w", err)
	}
	if s.Message != "" && len(s.Artifacts) == 0 {
		return nil, fmt.Errorf("%s", s.Message)
	}
	var b64s []string
	for _, a := range s.Artifacts {
		switch a.FinishReason {
		case "", "SUCCESS":
		default:
			return nil, fmt.Errorf("artifact finish reason %s", a.FinishReason)
		}
		if a.Base64 != "" {
			b64s = append(b64s, a.Base64)
		}
	}
	return b64s, nil
}
