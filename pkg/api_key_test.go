package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAPIKey(t *testing.T) {
	hash, err := HashAPIKey("secret-key")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, CheckAPIKeyHash("secret-key", hash))
	assert.False(t, CheckAPIKeyHash("secret-key-2", hash))
	assert.False(t, CheckAPIKeyHash("", hash))
	assert.False(t, CheckAPIKeyHash("secret-key", "not-a-hash"))
}

func TestBytesToString(t *testing.T) {
	assert.Equal(t, "fittrack", BytesToString([]byte("fittrack")))
	assert.Equal(t, "", BytesToString(nil))
}
