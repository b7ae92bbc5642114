package session

import (
	"fmt"
	"slices"
	"time"

	"github.com/reusedev/prompt-studio/internal/consts"
)

type Phase string

const (
	PhaseNoImage           Phase = "no-image"
	PhaseImageUploaded     Phase = "image-uploaded"
	PhaseGenerating        Phase = "generating"
	PhaseGenerated         Phase = "generated"
	PhaseRatingAndTagging  Phase = "rating-and-tagging"
	PhaseFeedbackCollected Phase = "feedback-collected"
	PhaseOptimizing        Phase = "optimizing"
	PhaseOptimized         Phase = "optimized"
	PhaseSaving            Phase = "saving"
)

func (p Phase) String() string {
	return string(p)
}

type Feedback struct {
	Composition string `json:"feedback_composition" form:"feedback_composition"`
	Lighting    string `json:"feedback_lighting" form:"feedback_lighting"`
	Style       string `json:"feedback_style" form:"feedback_style"`
	Details     string `json:"feedback_details" form:"feedback_details"`
	Adjustments string `json:"feedback_adjustments" form:"feedback_adjustments"`
}

func (f Feedback) Empty() bool {
	return f == Feedback{}
}

// Suggestion is the feedback text handed to the prompt rewriter.
func (f Feedback) Suggestion() string {
	return fmt.Sprintf("Composition: %s\nLighting: %s\nStyle: %s\nDetails: %s\nAdjustments: %s",
		f.Composition, f.Lighting, f.Style, f.Details, f.Adjustments)
}

// State is everything one browser session holds. Image payloads are base64.
type State struct {
	SourceImage string `json:"-"`
	SourceName  string `json:"source_name"`
	MaskImage   string `json:"-"`
	MaskName    string `json:"mask_name"`

	MaskMode        consts.MaskMode `json:"mask_mode"`
	MaskPrompt      string          `json:"mask_prompt"`
	Prompt          string          `json:"prompt"`
	OptimizedPrompt string          `json:"optimized_prompt"`
	Seed            int64           `json:"seed"`
	Style           string          `json:"style"`
	DimensionLabel  string          `json:"dimension_label"`
	OutpaintingMode string          `json:"outpainting_mode"`

	GeneratedImage string   `json:"-"`
	Rating         int      `json:"rating"`
	SelectedLabels []string `json:"selected_labels"`
	Feedback

	SavedPromptID string    `json:"saved_prompt_id,omitempty"`
	Pending       Phase     `json:"-"`
	Message       string    `json:"message,omitempty"`
	Error         string    `json:"error,omitempty"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func NewState() State {
	return State{
		MaskMode:        consts.MaskPrompt,
		Prompt:          consts.DefaultOutpaintPrompt,
		Seed:            consts.DefaultSeed,
		Style:           consts.DefaultStyle,
		DimensionLabel:  consts.DimensionOptions[0].Label,
		OutpaintingMode: consts.OutpaintingDefault.String(),
		Rating:          consts.DefaultRating,
		SelectedLabels:  []string{},
		UpdatedAt:       time.Now(),
	}
}

// Phase is derived from which fields are populated; an in-flight action
// overrides it.
func (s State) Phase() Phase {
	switch {
	case s.Pending != "":
		return s.Pending
	case s.OptimizedPrompt != "":
		return PhaseOptimized
	case s.GeneratedImage != "" && !s.Feedback.Empty():
		return PhaseFeedbackCollected
	case s.GeneratedImage != "" && (s.Rating != consts.DefaultRating || len(s.SelectedLabels) != 0):
		return PhaseRatingAndTagging
	case s.GeneratedImage != "":
		return PhaseGenerated
	case s.SourceImage != "":
		return PhaseImageUploaded
	default:
		return PhaseNoImage
	}
}

// PromptToSave prefers the optimized prompt over the one being edited.
func (s State) PromptToSave() string {
	if s.OptimizedPrompt != "" {
		return s.OptimizedPrompt
	}
	return s.Prompt
}

func (s State) Dimension() consts.Dimension {
	if d, ok := consts.DimensionByLabel(s.DimensionLabel); ok {
		return d
	}
	return consts.DimensionOptions[0]
}

func (s State) HasMask() bool {
	if s.MaskMode == consts.MaskImage {
		return s.MaskImage != ""
	}
	return s.MaskPrompt != ""
}

func (s State) clone() State {
	s.SelectedLabels = slices.Clone(s.SelectedLabels)
	if s.SelectedLabels == nil {
		s.SelectedLabels = []string{}
	}
	return s
}

// View is the JSON form of State with the derived phase.
type View struct {
	State
	Phase        Phase  `json:"phase"`
	HasSource    bool   `json:"has_source"`
	HasMaskImage bool   `json:"has_mask_image"`
	HasGenerated bool   `json:"has_generated"`
	PromptToSave string `json:"prompt_to_save"`
}

func (s State) View() View {
	return View{
		State:        s,
		Phase:        s.Phase(),
		HasSource:    s.SourceImage != "",
		HasMaskImage: s.MaskImage != "",
		HasGenerated: s.GeneratedImage != "",
		PromptToSave: s.PromptToSave(),
	}
}
