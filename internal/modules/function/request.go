package function

import (
	"fmt"
	"strings"

	"github.com/reusedev/prompt-studio/internal/consts"
	"github.com/reusedev/prompt-studio/internal/modules/payload"
)

type GenerateImageRequest struct {
	Prompt     string `json:"prompt"`
	Seed       *int64 `json:"seed,omitempty"`
	Style      string `json:"style,omitempty"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Suggestion string `json:"suggestion,omitempty"` // rewrite the prompt with this feedback first
}

func (g *GenerateImageRequest) Valid() error {
	if strings.TrimSpace(g.Prompt) == "" {
		return fmt.Errorf("Missing 'prompt' in the request.")
	}
	if g.Width < 0 || g.Height < 0 {
		return fmt.Errorf("'width' and 'height' must not be negative.")
	}
	return nil
}

func (g *GenerateImageRequest) FullWithDefault() {
	if g.Seed == nil {
		seed := consts.DefaultSeed
		g.Seed = &seed
	}
	if g.Style == "" {
		g.Style = consts.DefaultStyle
	}
}

type OutpaintRequest struct {
	Prompt          string `json:"prompt,omitempty"`
	InputImageData  string `json:"input_image_data"`
	MaskImageData   string `json:"mask_image_data,omitempty"`
	MaskPrompt      string `json:"mask_prompt,omitempty"`
	Width           int    `json:"width,omitempty"`
	Height          int    `json:"height,omitempty"`
	Seed            *int64 `json:"seed,omitempty"`
	OutPaintingMode string `json:"outPaintingMode,omitempty"`
}

// Valid requires a source image and at least one mask form. Both forms may be
// present; the mask image is then used.
func (o *OutpaintRequest) Valid() error {
	if o.InputImageData == "" || (o.MaskImageData == "" && strings.TrimSpace(o.MaskPrompt) == "") {
		return fmt.Errorf("input_image_data and either mask_image_data or mask_prompt are required.")
	}
	if _, err := payload.Decode(o.InputImageData); err != nil {
		return fmt.Errorf("input_image_data is not valid base64.")
	}
	if o.MaskImageData != "" {
		if _, err := payload.Decode(o.MaskImageData); err != nil {
			return fmt.Errorf("mask_image_data is not valid base64.")
		}
	}
	if o.Width < 0 || o.Height < 0 {
		return fmt.Errorf("'width' and 'height' must not be negative.")
	}
	switch consts.OutpaintingMode(o.OutPaintingMode) {
	case "", consts.OutpaintingDefault, consts.OutpaintingPrecise:
	default:
		return fmt.Errorf("outPaintingMode must be DEFAULT or PRECISE.")
	}
	return nil
}

func (o *OutpaintRequest) FullWithDefault() {
	if strings.TrimSpace(o.Prompt) == "" {
		o.Prompt = consts.DefaultOutpaintPrompt
	}
	if o.Width == 0 {
		o.Width = consts.DefaultOutpaintSize
	}
	if o.Height == 0 {
		o.Height = consts.DefaultOutpaintSize
	}
	if o.OutPaintingMode == "" {
		o.OutPaintingMode = consts.OutpaintingDefault.String()
	}
}

type OptimizePromptRequest struct {
	Prompt     string `json:"prompt"`
	Suggestion string `json:"suggestion"`
	Seed       *int64 `json:"seed,omitempty"`
	Style      string `json:"style,omitempty"`
}

func (o *OptimizePromptRequest) Valid() error {
	if strings.TrimSpace(o.Prompt) == "" || strings.TrimSpace(o.Suggestion) == "" {
		return fmt.Errorf("Missing 'prompt' or 'suggestion' in the request.")
	}
	return nil
}

func (o *OptimizePromptRequest) FullWithDefault() {}

type SavePromptRequest struct {
	Prompt string   `json:"prompt"`
	Rating *int     `json:"rating"`
	Seed   *int64   `json:"seed,omitempty"`
	Labels []string `json:"labels,omitempty"` // label ids
}

func (s *SavePromptRequest) Valid() error {
	if strings.TrimSpace(s.Prompt) == "" || s.Rating == nil {
		return fmt.Errorf("Missing 'prompt' or 'rating' in the request.")
	}
	if *s.Rating < consts.MinRating || *s.Rating > consts.MaxRating {
		return fmt.Errorf("'rating' must be between %d and %d.", consts.MinRating, consts.MaxRating)
	}
	return nil
}

func (s *SavePromptRequest) FullWithDefault() {
	if s.Seed == nil {
		seed := consts.DefaultSeed
		s.Seed = &seed
	}
}

// LabelsString is the display form stored with the prompt.
func (s *SavePromptRequest) LabelsString() string {
	if len(s.Labels) == 0 {
		return consts.EmptyLabels
	}
	return strings.Join(s.Labels, ", ")
}

type AddLabelRequest struct {
	LabelName string `json:"label_name"`
}

func (a *AddLabelRequest) Valid() error {
	if strings.TrimSpace(a.LabelName) == "" {
		return fmt.Errorf("Missing 'label_name' in the request.")
	}
	return nil
}

func (a *AddLabelRequest) FullWithDefault() {}
