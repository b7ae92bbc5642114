package titan

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/reusedev/prompt-studio/internal/modules/ai/image"
)

const (
	taskTypeOutpainting = "OUTPAINTING"
	cfgScale            = 8.0
)

type OutPaintingParams struct {
	Text            string `json:"text"`
	Image           string `json:"image"`
	MaskImage       string `json:"maskImage,omitempty"`
	MaskPrompt      string `json:"maskPrompt,omitempty"`
	OutPaintingMode string `json:"outPaintingMode"`
}

type ImageGenerationConfig struct {
	NumberOfImages int     `json:"numberOfImages"`
	Height         int     `json:"height"`
	Width          int     `json:"width"`
	CfgScale       float64 `json:"cfgScale"`
	Seed           *int64  `json:"seed,omitempty"`
}

type OutpaintRequest struct {
	TaskType              string                `json:"taskType"`
	OutPaintingParams     OutPaintingParams     `json:"outPaintingParams"`
	ImageGenerationConfig ImageGenerationConfig `json:"imageGenerationConfig"`
}

func (o *OutpaintRequest) Body() ([]byte, error) {
	return jsoniter.Marshal(o)
}

func (o *OutpaintRequest) InitResponse(modelID string) image.Response {
	ret := &OutpaintResponse{BaseResponse: image.BaseResponse{Model: modelID}}
	if o.ImageGenerationConfig.Seed != nil {
		ret.Seed = *o.ImageGenerationConfig.Seed
	}
	return ret
}

type OutpaintResponse struct {
	image.BaseResponse
}

type ImagesB64Strategy struct{}

func (i *ImagesB64Strategy) ExtractB64s(body []byte) ([]string, error) {
	var s struct {
		Images []string `json:"images"`
		Error  *string  `json:"error"`
	}
	if err := jsoniter.Unmarshal(body, &s); err != nil {
		return nil, fmt.Errorf("malformed images response: %w", err)
	}
	if s.Error != nil && *s.Error != "" {
		return nil, fmt.Errorf("image generation error: %s", *s.Error)
	}
	if s.Images == nil {
		return nil, fmt.Errorf("malformed response: 'images' field not found")
	}
	return s.Images, nil
}
