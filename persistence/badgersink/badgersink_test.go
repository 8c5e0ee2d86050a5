package badgersink

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSink_WriteReadExistsRoundTrip(t *testing.T) {
	t.Parallel()

	s, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	ok, err := s.Exists()
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Write([]byte("hello")))

	ok, err = s.Exists()
	require.NoError(t, err)
	assert.True(t, ok)

	data, err := s.Read()
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	require.NoError(t, s.Write([]byte("world")))
	data, err = s.Read()
	require.NoError(t, err)
	assert.Equal(t, "world", string(data))
}
