package function

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/reusedev/prompt-studio/config"
	"github.com/reusedev/prompt-studio/internal/consts"
	"github.com/reusedev/prompt-studio/internal/modules/ai"
	"github.com/reusedev/prompt-studio/internal/modules/ai/chat"
	"github.com/reusedev/prompt-studio/internal/modules/ai/image"
	"github.com/reusedev/prompt-studio/internal/modules/ai/image/stability"
	"github.com/reusedev/prompt-studio/internal/modules/ai/image/titan"
	"github.com/reusedev/prompt-studio/internal/modules/logs"
	"github.com/reusedev/prompt-studio/internal/modules/payload"
	"github.com/reusedev/prompt-studio/internal/modules/store"
)

// Handlers implements the five functions. Every call validates its request
// before touching the runtime or the store.
type Handlers struct {
	runtime     ai.Runtime
	store       store.Store
	models      config.Models
	labelPolicy consts.LabelPolicy
	now         func() time.Time
}

func NewHandlers(runtime ai.Runtime, s store.Store, models config.Models, labelPolicy consts.LabelPolicy) *Handlers {
	return &Handlers{
		runtime:     runtime,
		store:       s,
		models:      models,
		labelPolicy: labelPolicy,
		now:         time.Now,
	}
}

func (h *Handlers) GenerateImage(ctx context.Context, req GenerateImageRequest) Response {
	if err := req.Valid(); err != nil {
		logs.Logger.Warn().Str("function", consts.GenerateImage.String()).Err(err).Msg("invalid request")
		return badRequest(err)
	}
	req.FullWithDefault()

	prompt := req.Prompt
	if strings.TrimSpace(req.Suggestion) != "" {
		rewritten, err := chat.Rewrite(ctx, h.runtime, h.models.TextModelID, req.Prompt, req.Suggestion)
		if err != nil {
			logs.Logger.Error().Err(err).Str("function", consts.GenerateImage.String()).Msg("rewrite prompt failed")
			return serverError(fmt.Sprintf("Error optimizing prompt: %v", err))
		}
		prompt = rewritten
	}

	resp := stability.Generate(ctx, h.runtime, h.models.ImageModelID, stability.Request{
		Prompt: prompt,
		Seed:   *req.Seed,
		Style:  req.Style,
		Width:  req.Width,
		Height: req.Height,
	})
	if !resp.Succeed() {
		logs.Logger.Error().Err(resp.GetError()).Str("function", consts.GenerateImage.String()).
			Str("model_id", h.models.ImageModelID).Msg("generate image failed")
		return serverError(fmt.Sprintf("Error generating image: %v", resp.GetError()))
	}
	seed := resp.GetSeed()
	logs.Logger.Info().Str("function", consts.GenerateImage.String()).
		Int64("seed", seed).
		Str("style", req.Style).
		Int64("req_consume_ms", resp.ReqConsumeMs()).
		Msg("image generated")
	return Response{
		StatusCode: http.StatusOK,
		ImageData:  image.FirstB64(resp),
		Seed:       &seed,
		Style:      req.Style,
		Prompt:     prompt,
	}
}

func (h *Handlers) Outpaint(ctx context.Context, req OutpaintRequest) Response {
	if err := req.Valid(); err != nil {
		logs.Logger.Warn().Str("function", consts.Outpaint.String()).Err(err).Msg("invalid request")
		return badRequest(err)
	}
	req.FullWithDefault()
	if req.MaskImageData != "" && req.MaskPrompt != "" {
		logs.Logger.Warn().Str("function", consts.Outpaint.String()).Msg("both mask forms present, using mask image")
	}

	resp := titan.Outpaint(ctx, h.runtime, h.models.OutpaintModelID, titan.Request{
		Prompt:     req.Prompt,
		Image:      req.InputImageData,
		MaskImage:  req.MaskImageData,
		MaskPrompt: req.MaskPrompt,
		Mode:       consts.OutpaintingMode(req.OutPaintingMode),
		Width:      req.Width,
		Height:     req.Height,
		Seed:       req.Seed,
	})
	if !resp.Succeed() {
		logs.Logger.Error().Err(resp.GetError()).Str("function", consts.Outpaint.String()).
			Str("model_id", h.models.OutpaintModelID).Msg("outpaint failed")
		return serverError(fmt.Sprintf("Image generation error: %v", resp.GetError()))
	}
	logs.Logger.Info().Str("function", consts.Outpaint.String()).
		Int("width", req.Width).
		Int("height", req.Height).
		Int64("req_consume_ms", resp.ReqConsumeMs()).
		Msg("image outpainted")
	return Response{
		StatusCode: http.StatusOK,
		ImageData:  image.FirstB64(resp),
		Message:    "Image generated successfully.",
	}
}

func (h *Handlers) OptimizePrompt(ctx context.Context, req OptimizePromptRequest) Response {
	if err := req.Valid(); err != nil {
		logs.Logger.Warn().Str("function", consts.OptimizePrompt.String()).Err(err).Msg("invalid request")
		return badRequest(err)
	}
	req.FullWithDefault()

	optimized, err := chat.Rewrite(ctx, h.runtime, h.models.TextModelID, req.Prompt, req.Suggestion)
	if err != nil {
		logs.Logger.Error().Err(err).Str("function", consts.OptimizePrompt.String()).
			Str("model_id", h.models.TextModelID).Msg("optimize prompt failed")
		return serverError(fmt.Sprintf("Error optimizing prompt: %v", err))
	}
	logs.Logger.Info().Str("function", consts.OptimizePrompt.String()).Int("length", len(optimized)).Msg("prompt optimized")
	return Response{StatusCode: http.StatusOK, OptimizedPrompt: optimized}
}

func (h *Handlers) SavePrompt(ctx context.Context, req SavePromptRequest) Response {
	if err := req.Valid(); err != nil {
		logs.Logger.Warn().Str("function", consts.SavePrompt.String()).Err(err).Msg("invalid request")
		return badRequest(err)
	}
	req.FullWithDefault()

	record := store.PromptRecord{
		PromptID:  payload.ContentKey(req.Prompt),
		Prompt:    req.Prompt,
		Seed:      *req.Seed,
		Rating:    strconv.Itoa(*req.Rating),
		Labels:    req.LabelsString(),
		Timestamp: h.now().UTC().Format(time.RFC3339Nano),
	}
	if err := h.store.PutPrompt(ctx, record); err != nil {
		logs.Logger.Error().Err(err).Str("function", consts.SavePrompt.String()).Str("prompt_id", record.PromptID).Msg("save prompt failed")
		return serverError(fmt.Sprintf("Error saving prompt: %v", err))
	}
	logs.Logger.Info().Str("function", consts.SavePrompt.String()).
		Str("prompt_id", record.PromptID).
		Str("rating", record.Rating).
		Str("labels", record.Labels).
		Msg("prompt saved")
	return Response{StatusCode: http.StatusOK, Message: "Prompt saved successfully.", PromptID: record.PromptID}
}

func (h *Handlers) AddLabel(ctx context.Context, req AddLabelRequest) Response {
	if err := req.Valid(); err != nil {
		logs.Logger.Warn().Str("function", consts.AddLabel.String()).Err(err).Msg("invalid request")
		return badRequest(err)
	}
	req.FullWithDefault()

	record := store.LabelRecord{LabelID: payload.ContentKey(req.LabelName), LabelName: req.LabelName}
	var err error
	if h.labelPolicy == consts.LabelReject {
		err = h.store.InsertLabel(ctx, record)
	} else {
		err = h.store.PutLabel(ctx, record)
	}
	if errors.Is(err, store.ErrConflict) {
		logs.Logger.Info().Str("function", consts.AddLabel.String()).Str("label_id", record.LabelID).Msg("label exists")
		return Response{
			StatusCode: http.StatusConflict,
			Message:    fmt.Sprintf("Label '%s' already exists.", req.LabelName),
			LabelID:    record.LabelID,
			LabelName:  record.LabelName,
		}
	}
	if err != nil {
		logs.Logger.Error().Err(err).Str("function", consts.AddLabel.String()).Str("label_id", record.LabelID).Msg("save label failed")
		return serverError(fmt.Sprintf("Error saving label: %v", err))
	}
	logs.Logger.Info().Str("function", consts.AddLabel.String()).
		Str("label_id", record.LabelID).
		Str("label_name", record.LabelName).
		Str("policy", h.labelPolicy.String()).
		Msg("label saved")
	return Response{
		StatusCode: http.StatusOK,
		Message:    "Label saved successfully.",
		LabelID:    record.LabelID,
		LabelName:  record.LabelName,
	}
}
