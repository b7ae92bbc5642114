package function

import (
	"context"
	"net/http"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/reusedev/prompt-studio/internal/consts"
	"github.com/reusedev/prompt-studio/internal/modules/store/memory"
	"github.com/stretchr/testify/require"
)

func TestRegistryCoversEveryFunction(t *testing.T) {
	h := newHandlers(newFakeRuntime(), memory.New(), consts.LabelUpsert)
	registry := h.Registry()
	for _, name := range consts.Functions {
		require.Contains(t, registry, name)
	}
	_, err := h.Lookup("resize")
	require.Error(t, err)
}

func TestRegistryRoundTrip(t *testing.T) {
	h := newHandlers(newFakeRuntime(), memory.New(), consts.LabelUpsert)
	fn, err := h.Lookup(consts.GenerateImage)
	require.NoError(t, err)

	out, err := fn(context.Background(), []byte(`{"prompt":"A futuristic city at sunset","seed":42,"style":"photographic"}`))
	require.NoError(t, err)
	var resp Response
	require.NoError(t, jsoniter.Unmarshal(out, &resp))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, int64(42), *resp.Seed)
	require.Equal(t, "aW1n", resp.ImageData)

	out, err = fn(context.Background(), []byte(`[1,2]`))
	require.NoError(t, err)
	require.NoError(t, jsoniter.Unmarshal(out, &resp))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
