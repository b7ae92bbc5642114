package session

import (
	"fmt"
	"strings"

	"github.com/reusedev/prompt-studio/internal/consts"
)

// Fields is a partial form update; nil pointers leave the state untouched.
type Fields struct {
	Prompt          *string `form:"prompt" json:"prompt"`
	MaskMode        *string `form:"mask_mode" json:"mask_mode"`
	MaskPrompt      *string `form:"mask_prompt" json:"mask_prompt"`
	Seed            *int64  `form:"seed" json:"seed"`
	Style           *string `form:"style" json:"style"`
	DimensionLabel  *string `form:"dimension_label" json:"dimension_label"`
	OutpaintingMode *string `form:"outpainting_mode" json:"outpainting_mode"`
	Rating          *int    `form:"rating" json:"rating"`

	// SelectedLabels replaces the selection only when UpdateLabels is set,
	// since an empty multi-select sends nothing.
	SelectedLabels []string `form:"selected_labels" json:"selected_labels"`
	UpdateLabels   bool     `form:"update_labels" json:"update_labels"`

	FeedbackComposition *string `form:"feedback_composition" json:"feedback_composition"`
	FeedbackLighting    *string `form:"feedback_lighting" json:"feedback_lighting"`
	FeedbackStyle       *string `form:"feedback_style" json:"feedback_style"`
	FeedbackDetails     *string `form:"feedback_details" json:"feedback_details"`
	FeedbackAdjustments *string `form:"feedback_adjustments" json:"feedback_adjustments"`
}

func (f *Fields) Valid() error {
	if f.MaskMode != nil {
		switch consts.MaskMode(*f.MaskMode) {
		case consts.MaskPrompt, consts.MaskImage:
		default:
			return fmt.Errorf("invalid mask mode: %s, must be 'prompt' or 'image'", *f.MaskMode)
		}
	}
	if f.Seed != nil && *f.Seed < 0 {
		return fmt.Errorf("invalid seed: %d, must be non-negative", *f.Seed)
	}
	if f.Style != nil && strings.TrimSpace(*f.Style) == "" {
		return fmt.Errorf("style must not be empty")
	}
	if f.DimensionLabel != nil {
		if _, ok := consts.DimensionByLabel(*f.DimensionLabel); !ok {
			return fmt.Errorf("invalid dimension: %s", *f.DimensionLabel)
		}
	}
	if f.OutpaintingMode != nil {
		switch consts.OutpaintingMode(*f.OutpaintingMode) {
		case consts.OutpaintingDefault, consts.OutpaintingPrecise:
		default:
			return fmt.Errorf("invalid outpainting mode: %s", *f.OutpaintingMode)
		}
	}
	if f.Rating != nil && (*f.Rating < consts.MinRating || *f.Rating > consts.MaxRating) {
		return fmt.Errorf("invalid rating: %d, must be between %d and %d", *f.Rating, consts.MinRating, consts.MaxRating)
	}
	return nil
}

// apply copies the set fields into s. Choosing a mask mode clears the other
// mask form.
func (f *Fields) apply(s *State) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&s.Prompt, f.Prompt)
	set(&s.MaskPrompt, f.MaskPrompt)
	set(&s.Style, f.Style)
	set(&s.DimensionLabel, f.DimensionLabel)
	set(&s.OutpaintingMode, f.OutpaintingMode)
	set(&s.Feedback.Composition, f.FeedbackComposition)
	set(&s.Feedback.Lighting, f.FeedbackLighting)
	set(&s.Feedback.Style, f.FeedbackStyle)
	set(&s.Feedback.Details, f.FeedbackDetails)
	set(&s.Feedback.Adjustments, f.FeedbackAdjustments)
	if f.Seed != nil {
		s.Seed = *f.Seed
	}
	if f.Rating != nil {
		s.Rating = *f.Rating
	}
	if f.UpdateLabels {
		s.SelectedLabels = append([]string{}, f.SelectedLabels...)
	}
	if f.MaskMode != nil {
		s.selectMaskMode(consts.MaskMode(*f.MaskMode))
	}
}

func (s *State) selectMaskMode(mode consts.MaskMode) {
	s.MaskMode = mode
	switch mode {
	case consts.MaskPrompt:
		s.MaskImage = ""
		s.MaskName = ""
	case consts.MaskImage:
		s.MaskPrompt = ""
	}
}
