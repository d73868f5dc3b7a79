package stylist

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/darji-master/orders-service/internal/logger"
)

func TestMain(m *testing.M) {
	logger.InitNop()
	os.Exit(m.Run())
}

func TestSuggestReturnsModelText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Path, "gemini-2.5-flash")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"**Fabric**: Ivory silk"}]}}]}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", "gemini-2.5-flash").WithBaseURL(srv.URL)
	got := c.Suggest(context.Background(), "Wedding", "Winter", "dark colors")
	assert.Equal(t, "**Fabric**: Ivory silk", got)
}

func TestSuggestFallsBackWithoutKey(t *testing.T) {
	c := NewClient("", "gemini-2.5-flash")
	assert.Equal(t, Fallback, c.Suggest(context.Background(), "Wedding", "Winter", ""))
}

func TestSuggestFallsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient("test-key", "gemini-2.5-flash").WithBaseURL(srv.URL)
	assert.Equal(t, Fallback, c.Suggest(context.Background(), "Festival", "Summer", ""))
}

func TestSuggestFallsBackOnEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", "gemini-2.5-flash").WithBaseURL(srv.URL)
	assert.Equal(t, Fallback, c.Suggest(context.Background(), "Reception", "Monsoon", ""))
}

func TestSuggestFallsBackOnUnreachableHost(t *testing.T) {
	c := NewClient("test-key", "gemini-2.5-flash").WithBaseURL("http://127.0.0.1:1")
	assert.Equal(t, Fallback, c.Suggest(context.Background(), "Wedding", "Spring", ""))
}
