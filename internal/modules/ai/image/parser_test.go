package image

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type staticStrategy struct {
	b64s []string
	err  error
}

func (s *staticStrategy) ExtractB64s([]byte) ([]string, error) { return s.b64s, s.err }

func TestGenericParser_Parse(t *testing.T) {
	t.Run("image extracted", func(t *testing.T) {
		resp := &BaseResponse{Model: "m"}
		err := NewGenericParser(&staticStrategy{b64s: []string{"aGk="}}).Parse(nil, resp)
		require.NoError(t, err)
		require.True(t, resp.Succeed())
		require.Equal(t, "aGk=", FirstB64(resp))
	})

	t.Run("empty result", func(t *testing.T) {
		resp := &BaseResponse{Model: "m"}
		require.NoError(t, NewGenericParser(&staticStrategy{}).Parse(nil, resp))
		require.False(t, resp.Succeed())
		require.ErrorIs(t, resp.GetError(), ErrNoImage)
		require.Empty(t, FirstB64(resp))
	})

	t.Run("strategy error", func(t *testing.T) {
		resp := &BaseResponse{Model: "m"}
		require.NoError(t, NewGenericParser(&staticStrategy{err: errors.New("boom")}).Parse(nil, resp))
		require.ErrorIs(t, resp.GetError(), ErrProvider)
	})
}

func TestDetectError(t *testing.T) {
	require.Nil(t, DetectError(nil))
	require.ErrorIs(t, DetectError(errors.New("ValidationException: This request has been blocked by our content filters.")), ErrContentFiltered)
	require.ErrorIs(t, DetectError(errors.New("artifact finish reason CONTENT_FILTERED")), ErrContentFiltered)
	require.ErrorIs(t, DetectError(errors.New("ThrottlingException")), ErrProvider)
	require.ErrorIs(t, DetectError(ErrNoImage), ErrNoImage)
}
