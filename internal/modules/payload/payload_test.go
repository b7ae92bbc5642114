package payload

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContentKey(t *testing.T) {
	key := ContentKey("Expand the scene")
	require.Len(t, key, 64)
	require.Equal(t, key, ContentKey("Expand the scene"))
	require.NotEqual(t, key, ContentKey("Expand the scene."))
	require.NotEqual(t, ContentKey("sunset"), ContentKey("Sunset"))
	// sha256("abc")
	require.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", ContentKey("abc"))
}

func TestCodecRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for _, n := range []int{0, 1, 2, 3, 57, 4096} {
		b := make([]byte, n)
		r.Read(b)
		got, err := Decode(Encode(b))
		require.NoError(t, err)
		require.True(t, bytes.Equal(b, got), "size %d", n)
	}

	require.Equal(t, "iVBORw==", Encode([]byte{0x89, 'P', 'N', 'G'}))
}

func TestDecodeInvalid(t *testing.T) {
	_, err := Decode("not base64!")
	require.Error(t, err)
}
