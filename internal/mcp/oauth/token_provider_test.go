package oauth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/giantswarm/mcp-oauth/storage/memory"
)

func TestTokenProvider(t *testing.T) {
	store := memory.New()
	defer store.Stop()

	provider := NewTokenProvider(store)
	require.NotNil(t, provider)

	ctx := context.Background()
	account := "alice@example.com"

	token := &oauth2.Token{
		AccessToken:  "test-access-token",
		RefreshToken: "test-refresh-token",
		TokenType:    "Bearer",
		Expiry:       time.Now().Add(time.Hour),
	}

	require.NoError(t, provider.SaveToken(ctx, account, token))

	retrieved, err := provider.GetTokenForAccount(ctx, account)
	require.NoError(t, err)
	assert.Equal(t, token.AccessToken, retrieved.AccessToken)
	assert.Equal(t, token.RefreshToken, retrieved.RefreshToken)

	assert.True(t, provider.HasTokenForAccount(account))
}

func TestTokenProvider_NonExistentAccount(t *testing.T) {
	store := memory.New()
	defer store.Stop()

	provider := NewTokenProvider(store)

	_, err := provider.GetTokenForAccount(context.Background(), "nonexistent@example.com")
	assert.Error(t, err)

	assert.False(t, provider.HasTokenForAccount("nonexistent@example.com"))
}
