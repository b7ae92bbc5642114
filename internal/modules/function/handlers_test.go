package function

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	jsoniter "github.com/json-iterator/go"
	"github.com/reusedev/prompt-studio/config"
	"github.com/reusedev/prompt-studio/internal/consts"
	"github.com/reusedev/prompt-studio/internal/modules/payload"
	"github.com/reusedev/prompt-studio/internal/modules/store"
	"github.com/reusedev/prompt-studio/internal/modules/store/memory"
	"github.com/stretchr/testify/require"
)

// fakeRuntime answers per model id and records every call.
type fakeRuntime struct {
	bodies map[string]string
	err    error
	calls  []*bedrockruntime.InvokeModelInput
}

func (f *fakeRuntime) InvokeModel(_ context.Context, params *bedrockruntime.InvokeModelInput, _ ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error) {
	f.calls = append(f.calls, params)
	if f.err != nil {
		return nil, f.err
	}
	return &bedrockruntime.InvokeModelOutput{Body: []byte(f.bodies[aws.ToString(params.ModelId)])}, nil
}

func newFakeRuntime() *fakeRuntime {
	return &fakeRuntime{bodies: map[string]string{
		consts.DefaultImageModelID:    `{"result":"success","artifacts":[{"seed":42,"base64":"aW1n","finishReason":"SUCCESS"}]}`,
		consts.DefaultOutpaintModelID: `{"images":["b3V0"]}`,
		consts.DefaultTextModelID:     `{"completion":" A neon city at dusk ","stop_reason":"stop_sequence"}`,
	}}
}

func newHandlers(rt *fakeRuntime, s store.Store, policy consts.LabelPolicy) *Handlers {
	h := NewHandlers(rt, s, config.Default().Models, policy)
	h.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	return h
}

func TestGenerateImage(t *testing.T) {
	rt := newFakeRuntime()
	h := newHandlers(rt, memory.New(), consts.LabelUpsert)

	seed := int64(42)
	resp := h.GenerateImage(context.Background(), GenerateImageRequest{Prompt: "A futuristic city at sunset", Seed: &seed})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, resp.ImageData)
	require.Equal(t, int64(42), *resp.Seed)
	require.Equal(t, "photographic", resp.Style)
	require.Len(t, rt.calls, 1)
}

func TestGenerateImageDefaultsAndSuggestion(t *testing.T) {
	rt := newFakeRuntime()
	h := newHandlers(rt, memory.New(), consts.LabelUpsert)

	resp := h.GenerateImage(context.Background(), GenerateImageRequest{Prompt: "A city", Style: "anime", Suggestion: "Lighting: dusk"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, consts.DefaultSeed, *resp.Seed)
	require.Equal(t, "anime", resp.Style)
	require.Equal(t, "A neon city at dusk", resp.Prompt)
	require.Len(t, rt.calls, 2)
	require.Equal(t, consts.DefaultTextModelID, aws.ToString(rt.calls[0].ModelId))

	var sent map[string]any
	require.NoError(t, jsoniter.Unmarshal(rt.calls[1].Body, &sent))
	require.Equal(t, "A neon city at dusk", sent["text_prompts"].([]any)[0].(map[string]any)["text"])
}

func TestGenerateImageBlankSuggestionSkipsRewrite(t *testing.T) {
	rt := newFakeRuntime()
	h := newHandlers(rt, memory.New(), consts.LabelUpsert)

	resp := h.GenerateImage(context.Background(), GenerateImageRequest{Prompt: "A city", Suggestion: " \n\t "})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "A city", resp.Prompt)
	require.Len(t, rt.calls, 1)
	require.Equal(t, consts.DefaultImageModelID, aws.ToString(rt.calls[0].ModelId))
}

func TestGenerateImageRejectsEmptyPrompt(t *testing.T) {
	rt := newFakeRuntime()
	h := newHandlers(rt, memory.New(), consts.LabelUpsert)

	for _, prompt := range []string{"", "   "} {
		resp := h.GenerateImage(context.Background(), GenerateImageRequest{Prompt: prompt})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.Equal(t, "Missing 'prompt' in the request.", resp.Message)
	}
	require.Empty(t, rt.calls)
}

func TestGenerateImageProviderFailure(t *testing.T) {
	rt := newFakeRuntime()
	rt.err = errors.New("ValidationException: bad style")
	h := newHandlers(rt, memory.New(), consts.LabelUpsert)

	resp := h.GenerateImage(context.Background(), GenerateImageRequest{Prompt: "x"})
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	require.Contains(t, resp.Message, "Error generating image:")
	require.Contains(t, resp.Message, "bad style")
	require.Empty(t, resp.ImageData)
}

func TestOutpaintValidation(t *testing.T) {
	img := payload.Encode([]byte("png"))
	tests := []struct {
		name string
		req  OutpaintRequest
		code int
	}{
		{"missing image", OutpaintRequest{MaskPrompt: "sky"}, http.StatusBadRequest},
		{"missing mask", OutpaintRequest{InputImageData: img}, http.StatusBadRequest},
		{"blank mask prompt", OutpaintRequest{InputImageData: img, MaskPrompt: "  "}, http.StatusBadRequest},
		{"bad base64", OutpaintRequest{InputImageData: "!!!", MaskPrompt: "sky"}, http.StatusBadRequest},
		{"bad mode", OutpaintRequest{InputImageData: img, MaskPrompt: "sky", OutPaintingMode: "FAST"}, http.StatusBadRequest},
		{"mask prompt", OutpaintRequest{InputImageData: img, MaskPrompt: "sky"}, http.StatusOK},
		{"mask image", OutpaintRequest{InputImageData: img, MaskImageData: img}, http.StatusOK},
		{"both masks", OutpaintRequest{InputImageData: img, MaskImageData: img, MaskPrompt: "sky"}, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := newFakeRuntime()
			h := newHandlers(rt, memory.New(), consts.LabelUpsert)
			resp := h.Outpaint(context.Background(), tt.req)
			require.Equal(t, tt.code, resp.StatusCode, resp.Message)
			if tt.code == http.StatusOK {
				require.Equal(t, "b3V0", resp.ImageData)
				require.Len(t, rt.calls, 1)
			} else {
				require.Empty(t, rt.calls)
			}
		})
	}
}

func TestOutpaintDefaults(t *testing.T) {
	rt := newFakeRuntime()
	h := newHandlers(rt, memory.New(), consts.LabelUpsert)
	resp := h.Outpaint(context.Background(), OutpaintRequest{InputImageData: "aW1n", MaskPrompt: "sky"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "Image generated successfully.", resp.Message)

	var sent map[string]any
	require.NoError(t, jsoniter.Unmarshal(rt.calls[0].Body, &sent))
	params := sent["outPaintingParams"].(map[string]any)
	require.Equal(t, "Expand the scene", params["text"])
	require.Equal(t, "DEFAULT", params["outPaintingMode"])
	cfg := sent["imageGenerationConfig"].(map[string]any)
	require.EqualValues(t, 512, cfg["width"])
	require.EqualValues(t, 512, cfg["height"])
}

func TestOptimizePrompt(t *testing.T) {
	rt := newFakeRuntime()
	h := newHandlers(rt, memory.New(), consts.LabelUpsert)

	resp := h.OptimizePrompt(context.Background(), OptimizePromptRequest{Prompt: "A city"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "Missing 'prompt' or 'suggestion' in the request.", resp.Message)
	require.Empty(t, rt.calls)

	resp = h.OptimizePrompt(context.Background(), OptimizePromptRequest{Prompt: "A city", Suggestion: "Lighting: dusk"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "A neon city at dusk", resp.OptimizedPrompt)

	rt.err = errors.New("throttled")
	resp = h.OptimizePrompt(context.Background(), OptimizePromptRequest{Prompt: "A city", Suggestion: "Lighting: dusk"})
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	require.Contains(t, resp.Message, "Error optimizing prompt:")
}

func TestSavePrompt(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	h := newHandlers(newFakeRuntime(), s, consts.LabelUpsert)

	rating := 8
	resp := h.SavePrompt(ctx, SavePromptRequest{Prompt: "Expand the scene", Rating: &rating})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "Prompt saved successfully.", resp.Message)

	records, err := s.ScanPrompts(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, payload.ContentKey("Expand the scene"), records[0].PromptID)
	require.Equal(t, "8", records[0].Rating)
	require.Equal(t, "N/A", records[0].Labels)
	require.Equal(t, consts.DefaultSeed, records[0].Seed)
	require.Equal(t, "2024-05-01T12:00:00Z", records[0].Timestamp)

	rating = 3
	resp = h.SavePrompt(ctx, SavePromptRequest{Prompt: "Expand the scene", Rating: &rating, Labels: []string{"a", "b"}})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	records, err = s.ScanPrompts(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "3", records[0].Rating)
	require.Equal(t, "a, b", records[0].Labels)
}

func TestSavePromptValidation(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	h := newHandlers(newFakeRuntime(), s, consts.LabelUpsert)

	resp := h.SavePrompt(ctx, SavePromptRequest{Prompt: "x"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "Missing 'prompt' or 'rating' in the request.", resp.Message)

	rating := 11
	resp = h.SavePrompt(ctx, SavePromptRequest{Prompt: "x", Rating: &rating})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	records, err := s.ScanPrompts(ctx)
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestAddLabelPolicies(t *testing.T) {
	ctx := context.Background()

	t.Run("upsert", func(t *testing.T) {
		s := memory.New()
		h := newHandlers(newFakeRuntime(), s, consts.LabelUpsert)
		for i := 0; i < 2; i++ {
			resp := h.AddLabel(ctx, AddLabelRequest{LabelName: "sunset"})
			require.Equal(t, http.StatusOK, resp.StatusCode)
			require.Equal(t, "Label saved successfully.", resp.Message)
			require.Equal(t, payload.ContentKey("sunset"), resp.LabelID)
			require.Equal(t, "sunset", resp.LabelName)
		}
		labels, err := store.Labels(ctx, s)
		require.NoError(t, err)
		require.Equal(t, map[string]string{payload.ContentKey("sunset"): "sunset"}, labels)
	})

	t.Run("reject", func(t *testing.T) {
		s := memory.New()
		h := newHandlers(newFakeRuntime(), s, consts.LabelReject)
		require.Equal(t, http.StatusOK, h.AddLabel(ctx, AddLabelRequest{LabelName: "sunset"}).StatusCode)
		resp := h.AddLabel(ctx, AddLabelRequest{LabelName: "sunset"})
		require.Equal(t, http.StatusConflict, resp.StatusCode)
		labels, err := store.Labels(ctx, s)
		require.NoError(t, err)
		require.Len(t, labels, 1)
	})

	t.Run("missing name", func(t *testing.T) {
		h := newHandlers(newFakeRuntime(), memory.New(), consts.LabelUpsert)
		resp := h.AddLabel(ctx, AddLabelRequest{})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.Equal(t, "Missing 'label_name' in the request.", resp.Message)
	})
}
