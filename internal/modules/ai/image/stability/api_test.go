package stability

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	jsoniter "github.com/json-iterator/go"
	"github.com/reusedev/prompt-studio/internal/modules/ai/image"
	"github.com/stretchr/testify/require"
)

type fakeRuntime struct {
	input *bedrockruntime.InvokeModelInput
	body  string
	err   error
}

func (f *fakeRuntime) InvokeModel(_ context.Context, params *bedrockruntime.InvokeModelInput, _ ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &bedrockruntime.InvokeModelOutput{Body: []byte(f.body)}, nil
}

func TestGenerate(t *testing.T) {
	rt := &fakeRuntime{body: `{"result":"success","artifacts":[{"seed":42,"base64":"aW1n","finishReason":"SUCCESS"}]}`}
	resp := Generate(context.Background(), rt, "stability.stable-diffusion-xl-v1", Request{
		Prompt: "A futuristic city at sunset",
		Seed:   42,
		Style:  "photographic",
	})
	require.True(t, resp.Succeed())
	require.Equal(t, "aW1n", image.FirstB64(resp))
	require.Equal(t, int64(42), resp.GetSeed())
	require.Equal(t, "stability.stable-diffusion-xl-v1", *rt.input.ModelId)
	require.Equal(t, "application/json", *rt.input.ContentType)

	var sent map[string]any
	require.NoError(t, jsoniter.Unmarshal(rt.input.Body, &sent))
	require.Equal(t, "photographic", sent["style_preset"])
	require.EqualValues(t, 42, sent["seed"])
	require.EqualValues(t, 10, sent["cfg_scale"])
	require.EqualValues(t, 30, sent["steps"])
	require.NotContains(t, sent, "width")
	prompts := sent["text_prompts"].([]any)
	require.Equal(t, "A futuristic city at sunset", prompts[0].(map[string]any)["text"])
}

func TestGenerateWithSize(t *testing.T) {
	rt := &fakeRuntime{body: `{"artifacts":[{"base64":"aW1n","finishReason":"SUCCESS"}]}`}
	Generate(context.Background(), rt, "m", Request{Prompt: "p", Width: 1024, Height: 768})
	var sent map[string]any
	require.NoError(t, jsoniter.Unmarshal(rt.input.Body, &sent))
	require.EqualValues(t, 1024, sent["width"])
	require.EqualValues(t, 768, sent["height"])
}

func TestGenerateFailures(t *testing.T) {
	tests := []struct {
		name string
		rt   *fakeRuntime
		want error
	}{
		{name: "invoke error", rt: &fakeRuntime{err: errors.New("AccessDeniedException")}, want: image.ErrProvider},
		{name: "filtered", rt: &fakeRuntime{body: `{"artifacts":[{"base64":"","finishReason":"CONTENT_FILTERED"}]}`}, want: image.ErrContentFiltered},
		{name: "no artifacts", rt: &fakeRuntime{body: `{"artifacts":[]}`}, want: image.ErrNoImage},
		{name: "malformed", rt: &fakeRuntime{body: `<html>`}, want: image.ErrProvider},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := Generate(context.Background(), tt.rt, "m", Request{Prompt: "p"})
			require.False(t, resp.Succeed())
			require.ErrorIs(t, resp.GetError(), tt.want)
		})
	}
}
