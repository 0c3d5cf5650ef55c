package google

import (
	"context"
	"testing"
)

func TestFileTokenProvider_HasTokenForAccount(t *testing.T) {
	provider := NewFileTokenProvider()

	if provider.HasTokenForAccount("nonexistent-test-account") {
		t.Error("HasTokenForAccount() should return false for an account without a token file")
	}

	if provider.HasTokenForAccount("") {
		t.Error("HasTokenForAccount() should return false for empty account name")
	}
}

func TestFileTokenProvider_GetTokenForAccount_Missing(t *testing.T) {
	provider := NewFileTokenProvider()

	token, err := provider.GetTokenForAccount(context.Background(), "nonexistent-test-account")
	if err == nil {
		t.Error("GetTokenForAccount() should fail for an account without a token file")
	}
	if token != nil {
		t.Error("GetTokenForAccount() should return a nil token on failure")
	}
}
