package session

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/reusedev/prompt-studio/internal/consts"
	"github.com/reusedev/prompt-studio/internal/modules/function"
	"github.com/reusedev/prompt-studio/internal/modules/invoker"
	"github.com/reusedev/prompt-studio/internal/modules/logs"
	"github.com/reusedev/prompt-studio/internal/modules/payload"
	"github.com/reusedev/prompt-studio/internal/modules/store"
	"github.com/reusedev/prompt-studio/tools"
)

var (
	// ErrValidation means the action was refused before any remote call.
	ErrValidation = errors.New("validation failed")
	// ErrRejected means the function answered with a non-200 status.
	ErrRejected = errors.New("request rejected")
)

const transportFailure = "The service could not be reached. Please try again."

// Controller turns user actions into function calls and folds the responses
// back into the session. A failed action leaves the state as it was, apart
// from the error message.
type Controller struct {
	invoker  invoker.Invoker
	store    store.Store
	sessions *Manager
}

func NewController(inv invoker.Invoker, s store.Store, sessions *Manager) *Controller {
	return &Controller{invoker: inv, store: s, sessions: sessions}
}

func (c *Controller) State(id string) State {
	return c.sessions.Get(id)
}

// Labels reads the full label table on every call.
func (c *Controller) Labels(ctx context.Context) (map[string]string, error) {
	return store.Labels(ctx, c.store)
}

func (c *Controller) Prompts(ctx context.Context) ([]store.PromptRecord, error) {
	return c.store.ScanPrompts(ctx)
}

func (c *Controller) Reset(id string) (State, error) {
	release, err := c.sessions.Acquire(id)
	if err != nil {
		return c.refuse(id, err)
	}
	defer release()
	if err = c.sessions.Delete(id); err != nil {
		return State{}, err
	}
	return NewState(), nil
}

func (c *Controller) UploadSource(id, name string, data []byte) (State, error) {
	return c.upload(id, data, func(s *State, encoded string) {
		s.SourceImage = encoded
		s.SourceName = name
		s.Message = fmt.Sprintf("Uploaded %s.", name)
	})
}

// UploadMask stores a mask image and switches the session to image mask mode.
func (c *Controller) UploadMask(id, name string, data []byte) (State, error) {
	return c.upload(id, data, func(s *State, encoded string) {
		s.selectMaskMode(consts.MaskImage)
		s.MaskImage = encoded
		s.MaskName = name
		s.Message = fmt.Sprintf("Uploaded mask %s.", name)
	})
}

func (c *Controller) upload(id string, data []byte, set func(s *State, encoded string)) (State, error) {
	return c.mutate(id, func(s *State) error {
		normalized, _, err := tools.NormalizeUpload(data)
		if err != nil {
			return err
		}
		set(s, payload.Encode(normalized))
		return nil
	})
}

func (c *Controller) UpdateFields(id string, f Fields) (State, error) {
	return c.mutate(id, func(s *State) error {
		if err := f.Valid(); err != nil {
			return err
		}
		f.apply(s)
		s.Message = ""
		return nil
	})
}

// mutate applies a local change under the session's busy guard.
func (c *Controller) mutate(id string, change func(s *State) error) (State, error) {
	release, err := c.sessions.Acquire(id)
	if err != nil {
		return c.refuse(id, err)
	}
	defer release()
	s := c.sessions.Get(id)
	next := s.clone()
	if err = change(&next); err != nil {
		s.Message = ""
		s.Error = err.Error()
		_ = c.sessions.Put(id, s)
		return s, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	next.Error = ""
	return next, c.sessions.Put(id, next)
}

func (c *Controller) refuse(id string, err error) (State, error) {
	s := c.sessions.Get(id)
	s.Error = "Please wait for the current action to finish."
	return s, err
}

// Generate, like every remote action, first folds the form values posted
// with it into the session.
func (c *Controller) Generate(ctx context.Context, id string, f Fields) (State, error) {
	return c.run(ctx, id, f, PhaseGenerating, func(s State) (consts.Function, validator, error) {
		seed := s.Seed
		return consts.GenerateImage, &function.GenerateImageRequest{Prompt: s.Prompt, Seed: &seed, Style: s.Style}, nil
	}, func(s *State, resp function.Response) {
		s.GeneratedImage = resp.ImageData
		if resp.Seed != nil {
			s.Seed = *resp.Seed
		}
		if resp.Style != "" {
			s.Style = resp.Style
		}
		s.SavedPromptID = ""
		s.Message = "Image generated successfully!"
	})
}

func (c *Controller) Outpaint(ctx context.Context, id string, f Fields) (State, error) {
	return c.run(ctx, id, f, PhaseGenerating, func(s State) (consts.Function, validator, error) {
		if s.SourceImage == "" || !s.HasMask() {
			return "", nil, fmt.Errorf("Please upload the main image and provide either a mask prompt or a mask image.")
		}
		seed := s.Seed
		d := s.Dimension()
		req := &function.OutpaintRequest{
			Prompt:          s.Prompt,
			InputImageData:  s.SourceImage,
			Width:           d.Width,
			Height:          d.Height,
			Seed:            &seed,
			OutPaintingMode: s.OutpaintingMode,
		}
		if s.MaskMode == consts.MaskImage {
			req.MaskImageData = s.MaskImage
		} else {
			req.MaskPrompt = s.MaskPrompt
		}
		return consts.Outpaint, req, nil
	}, func(s *State, resp function.Response) {
		s.GeneratedImage = resp.ImageData
		s.SavedPromptID = ""
		s.Message = "Outpainted image generated successfully!"
	})
}

func (c *Controller) Optimize(ctx context.Context, id string, f Fields) (State, error) {
	return c.run(ctx, id, f, PhaseOptimizing, func(s State) (consts.Function, validator, error) {
		if s.Feedback.Empty() {
			return "", nil, fmt.Errorf("Provide feedback before optimizing the prompt.")
		}
		seed := s.Seed
		return consts.OptimizePrompt, &function.OptimizePromptRequest{
			Prompt:     s.Prompt,
			Suggestion: s.Feedback.Suggestion(),
			Seed:       &seed,
			Style:      s.Style,
		}, nil
	}, func(s *State, resp function.Response) {
		s.OptimizedPrompt = resp.OptimizedPrompt
		s.Message = "Optimized prompt generated based on your feedback!"
	})
}

func (c *Controller) Save(ctx context.Context, id string, f Fields) (State, error) {
	return c.run(ctx, id, f, PhaseSaving, func(s State) (consts.Function, validator, error) {
		rating, seed := s.Rating, s.Seed
		return consts.SavePrompt, &function.SavePromptRequest{
			Prompt: s.PromptToSave(),
			Rating: &rating,
			Seed:   &seed,
			Labels: slices.Clone(s.SelectedLabels),
		}, nil
	}, func(s *State, resp function.Response) {
		s.SavedPromptID = resp.PromptID
		s.Message = "Prompt saved successfully!"
	})
}

// AddLabel creates the label and selects it.
func (c *Controller) AddLabel(ctx context.Context, id, name string, f Fields) (State, error) {
	return c.run(ctx, id, f, PhaseRatingAndTagging, func(State) (consts.Function, validator, error) {
		return consts.AddLabel, &function.AddLabelRequest{LabelName: name}, nil
	}, func(s *State, resp function.Response) {
		if resp.LabelID != "" && !slices.Contains(s.SelectedLabels, resp.LabelID) {
			s.SelectedLabels = append(s.SelectedLabels, resp.LabelID)
		}
		s.Message = fmt.Sprintf("Tag '%s' added.", name)
	})
}

type validator interface {
	Valid() error
}

// run performs one remote action: apply the posted fields, build and validate
// the request, mark the session pending, invoke, then fold the response in or
// record the failure.
func (c *Controller) run(ctx context.Context, id string, f Fields, pending Phase,
	build func(s State) (consts.Function, validator, error),
	apply func(s *State, resp function.Response)) (State, error) {
	release, err := c.sessions.Acquire(id)
	if err != nil {
		return c.refuse(id, err)
	}
	defer release()

	s := c.sessions.Get(id)
	s.Message = ""
	if err = f.Valid(); err != nil {
		s.Error = err.Error()
		_ = c.sessions.Put(id, s)
		return s, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	f.apply(&s)
	name, req, err := build(s)
	if err == nil {
		err = req.Valid()
	}
	if err != nil {
		s.Error = err.Error()
		_ = c.sessions.Put(id, s)
		return s, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	inflight := s.clone()
	inflight.Pending = pending
	if err = c.sessions.Put(id, inflight); err != nil {
		return s, err
	}

	resp, err := c.invoker.Invoke(ctx, name, req)
	if err != nil {
		logs.Logger.Error().Err(err).Str("function", name.String()).Msg("invoke failed")
		s.Error = transportFailure
		_ = c.sessions.Put(id, s)
		return s, err
	}
	if !resp.Succeed() {
		logs.Logger.Warn().Str("function", name.String()).
			Int("status_code", resp.StatusCode).
			Str("message", resp.Message).
			Msg("function rejected request")
		s.Error = resp.Message
		if s.Error == "" {
			s.Error = "Unknown error"
		}
		_ = c.sessions.Put(id, s)
		return s, fmt.Errorf("%w: %d %s", ErrRejected, resp.StatusCode, resp.Message)
	}
	apply(&s, resp)
	s.Error = ""
	return s, c.sessions.Put(id, s)
}
