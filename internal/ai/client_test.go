package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func fakeAPI(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func completionJSON(text string) string {
	return `{"choices":[{"message":{"role":"assistant","content":` + jsonString(text) + `}}]}`
}

func jsonString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestCompleteRoundTrip(t *testing.T) {
	var got completionRequest
	srv := fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completionJSON("hello there")))
	})

	c := NewClient("test-key", srv.URL, "test-model")
	text, err := c.Complete(context.Background(), []Message{{Role: RoleUser, Content: "hi"}})
	require.NoError(t, err)
	require.Equal(t, "hello there", text)
	require.Equal(t, "test-model", got.Model)
	require.Len(t, got.Messages, 1)
}

func TestCompleteWithoutKey(t *testing.T) {
	c := NewClient("", "", "")
	_, err := c.Complete(context.Background(), []Message{{Role: RoleUser, Content: "hi"}})
	require.Error(t, err)
	require.False(t, c.Configured())
}

func TestCompleteAPIError(t *testing.T) {
	srv := fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	})

	c := NewClient("test-key", srv.URL, "test-model")
	_, err := c.Complete(context.Background(), []Message{{Role: RoleUser, Content: "hi"}})
	require.Error(t, err)
	require.Contains(t, err.Error(), "429")
}

func TestCompleteEmptyChoices(t *testing.T) {
	srv := fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	})

	c := NewClient("test-key", srv.URL, "test-model")
	_, err := c.Complete(context.Background(), []Message{{Role: RoleUser, Content: "hi"}})
	require.Error(t, err)
}

func TestGenerateDescription(t *testing.T) {
	var got completionRequest
	srv := fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(completionJSON("Fresh kicks for fast feet.")))
	})

	c := NewClient("test-key", srv.URL, "test-model")
	desc := c.GenerateDescription(context.Background(), "Velocity Runner X", "light, fast")
	require.Equal(t, "Fresh kicks for fast feet.", desc)

	require.Len(t, got.Messages, 1)
	require.Contains(t, got.Messages[0].Content, "Velocity Runner X")
	require.Contains(t, got.Messages[0].Content, "light, fast")
}

func TestGenerateDescriptionFallbacks(t *testing.T) {
	t.Run("missing key", func(t *testing.T) {
		c := NewClient("", "", "")
		require.Equal(t, descriptionUnavailable, c.GenerateDescription(context.Background(), "X", ""))
	})

	t.Run("service error", func(t *testing.T) {
		srv := fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		c := NewClient("test-key", srv.URL, "test-model")
		require.Equal(t, descriptionFailed, c.GenerateDescription(context.Background(), "X", ""))
	})
}

func TestStylistReplyCarriesPersonaAndHistory(t *testing.T) {
	var got completionRequest
	srv := fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(completionJSON("Go with the white ones!")))
	})

	c := NewClient("test-key", srv.URL, "test-model")
	history := []Message{
		{Role: RoleAssistant, Content: "Hey! Need help finding a fit?"},
		{Role: RoleUser, Content: "Something for rainy days"},
	}
	reply := c.StylistReply(context.Background(), history, "White or black?")
	require.Equal(t, "Go with the white ones!", reply)

	require.Len(t, got.Messages, 4)
	require.Equal(t, RoleSystem, got.Messages[0].Role)
	require.Contains(t, got.Messages[0].Content, "SoleBot")
	require.Equal(t, RoleUser, got.Messages[3].Role)
	require.Equal(t, "White or black?", got.Messages[3].Content)
}

func TestStylistReplyFallbacks(t *testing.T) {
	t.Run("missing key", func(t *testing.T) {
		c := NewClient("", "", "")
		require.Equal(t, chatUnavailable, c.StylistReply(context.Background(), nil, "hi"))
	})

	t.Run("service error", func(t *testing.T) {
		srv := fakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})
		c := NewClient("test-key", srv.URL, "test-model")
		require.Equal(t, chatFailed, c.StylistReply(context.Background(), nil, "hi"))
	})
}
