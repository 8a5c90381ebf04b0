package entitlement

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"simple", "user@example.com", "user@example.com", false},
		{"normalized", "  User@Example.COM ", "user@example.com", false},
		{"subdomain", "a@b.co.uk", "a@b.co.uk", false},
		{"empty", "", "", true},
		{"whitespace only", "   ", "", true},
		{"no at sign", "not-an-email", "", true},
		{"no tld", "user@host", "", true},
		{"spaces inside", "us er@example.com", "", true},
		{"double at", "a@@b.com", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateEmail(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidEmail)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRestoreMalformedEmailSkipsNetwork(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	r := NewResolver(srv.URL, srv.Client())
	_, err := r.Restore(context.Background(), "not-an-email")

	assert.ErrorIs(t, err, ErrInvalidEmail)
	assert.Zero(t, calls, "validation failure must not hit the network")
}

func TestRestoreFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "user@example.com", r.URL.Query().Get("email"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"isPremium":true,"purchasedAt":"2025-06-01T12:00:00Z"}`))
	}))
	defer srv.Close()

	r := NewResolver(srv.URL, srv.Client())
	result, err := r.Restore(context.Background(), " User@example.com ")

	require.NoError(t, err)
	assert.True(t, result.IsPremium)
	assert.Equal(t, "2025-06-01T12:00:00Z", result.PurchasedAt)
	assert.Equal(t, "user@example.com", result.Email)
}

func TestRestoreNotFoundIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"isPremium":false}`))
	}))
	defer srv.Close()

	r := NewResolver(srv.URL, srv.Client())
	result, err := r.Restore(context.Background(), "nobody@example.com")

	require.NoError(t, err)
	assert.False(t, result.IsPremium)
}

func TestRestoreNon2xxIsLookupFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	r := NewResolver(srv.URL, srv.Client())
	_, err := r.Restore(context.Background(), "user@example.com")
	assert.ErrorIs(t, err, ErrLookupFailed)
}

func TestRestoreBadJSONIsLookupFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	r := NewResolver(srv.URL, srv.Client())
	_, err := r.Restore(context.Background(), "user@example.com")
	assert.ErrorIs(t, err, ErrLookupFailed)
}

func TestRestoreNetworkErrorIsLookupFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	r := NewResolver(srv.URL, nil)
	_, err := r.Restore(context.Background(), "user@example.com")
	assert.ErrorIs(t, err, ErrLookupFailed)
}

func TestIsUnlockLink(t *testing.T) {
	assert.True(t, IsUnlockLink("notted://purchase-success"))
	assert.True(t, IsUnlockLink("https://notted.app/purchase-success?checkout_id=abc"))
	assert.False(t, IsUnlockLink("notted://settings"))
	assert.False(t, IsUnlockLink(""))
}
