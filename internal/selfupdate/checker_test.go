package selfupdate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/repos/abhisek/skillforge/releases/latest" {
			_, _ = w.Write([]byte(`{"tag_name":"v1.2.0","html_url":"https://example.com/v1.2.0"}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	checker := NewChecker(WithBaseURL(server.URL))

	t.Run("update available", func(t *testing.T) {
		result, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
		require.NoError(t, err)
		assert.True(t, result.UpdateAvailable)
		assert.Equal(t, "v1.2.0", result.LatestVersion)
		assert.Equal(t, "https://example.com/v1.2.0", result.ReleaseURL)
	})

	t.Run("already latest", func(t *testing.T) {
		result, err := checker.Check(context.Background(), &CheckInput{Version: "v1.2.0"})
		require.NoError(t, err)
		assert.False(t, result.UpdateAvailable)
	})

	t.Run("dev build", func(t *testing.T) {
		result, err := checker.Check(context.Background(), &CheckInput{Version: "(devel)"})
		require.NoError(t, err)
		assert.False(t, result.UpdateAvailable)
	})

	t.Run("api error", func(t *testing.T) {
		broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer broken.Close()

		_, err := NewChecker(WithBaseURL(broken.URL)).Check(context.Background(), &CheckInput{Version: "v1.0.0"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP 500")
	})
}

func TestIsNewer(t *testing.T) {
	tests := []struct {
		latest  string
		current string
		want    bool
	}{
		{"v2.0.0", "v1.0.0", true},
		{"v1.0.1", "v1.0.0", true},
		{"v1.0.0", "v1.0.0", false},
		{"v1.0.0", "v2.0.0", false},
		{"1.1.0", "v1.0.0", true},
		{"v1.1.0", "1.0.0", true},
		{"garbage", "v1.0.0", false},
		{"v1.1.0", "garbage", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, isNewer(tt.latest, tt.current), "%s vs %s", tt.latest, tt.current)
	}
}
