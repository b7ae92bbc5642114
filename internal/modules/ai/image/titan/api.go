package titan

import (
	"context"

	"github.com/reusedev/prompt-studio/internal/consts"
	"github.com/reusedev/prompt-studio/internal/modules/ai"
	"github.com/reusedev/prompt-studio/internal/modules/ai/image"
)

// Request carries base64 payloads as received; exactly one of MaskImage or
// MaskPrompt is sent, MaskImage winning when both are set.
type Request struct {
	Prompt     string
	Image      string
	MaskImage  string
	MaskPrompt string
	Mode       consts.OutpaintingMode
	Width      int
	Height     int
	Seed       *int64
}

func NewOutpaintParser() *image.GenericParser {
	return image.NewGenericParser(&ImagesB64Strategy{})
}

func Outpaint(ctx context.Context, runtime ai.Runtime, modelID string, request Request) image.Response {
	params := OutPaintingParams{
		Text:            request.Prompt,
		Image:           request.Image,
		OutPaintingMode: request.Mode.String(),
	}
	if request.MaskImage != "" {
		params.MaskImage = request.MaskImage
	} else {
		params.MaskPrompt = request.MaskPrompt
	}
	content := OutpaintRequest{
		TaskType:          taskTypeOutpainting,
		OutPaintingParams: params,
		ImageGenerationConfig: ImageGenerationConfig{
			NumberOfImages: 1,
			Height:         request.Height,
			Width:          request.Width,
			CfgScale:       cfgScale,
			Seed:           request.Seed,
		},
	}
	return image.NewRequester(ctx, runtime, modelID, &content, NewOutpaintParser()).Do()
}
