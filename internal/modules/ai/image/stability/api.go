package stability

import (
	"context"

	"github.com/reusedev/prompt-studio/internal/modules/ai"
	"github.com/reusedev/prompt-studio/internal/modules/ai/image"
)

type Request struct {
	Prompt string
	Seed   int64
	Style  string
	Width  int
	Height int
}

func NewTextToImageParser() *image.GenericParser {
	return image.NewGenericParser(&ArtifactsB64Strategy{})
}

func Generate(ctx context.Context, runtime ai.Runtime, modelID string, request Request) image.Response {
	content := TextToImageRequest{
		TextPrompts: []TextPrompt{{Text: request.Prompt, Weight: 1}},
		StylePreset: request.Style,
		Seed:        request.Seed,
		CfgScale:    cfgScale,
		Steps:       steps,
		Width:       request.Width,
		Height:      request.Height,
	}
	return image.NewRequester(ctx, runtime, modelID, &content, NewTextToImageParser()).Do()
}
