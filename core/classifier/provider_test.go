package classifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClassifier_Classify(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var body classifyRequestBody
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "guard-small", body.Model)
		assert.NotEmpty(t, body.System)
		assert.Equal(t, "suspicious text", body.Input)

		json.NewEncoder(w).Encode(classifyResponseBody{Output: `{"is_attack": true}`})
	}))
	defer server.Close()

	c := NewHTTPClassifier(&HTTPConfig{
		Endpoint: server.URL,
		APIKey:   "test-key",
		Model:    "guard-small",
		Timeout:  time.Second,
	})

	out, err := c.Classify(context.Background(), &Request{
		SystemInstruction: systemInstruction,
		Text:              "suspicious text",
		MaxTokens:         64,
	})
	require.NoError(t, err)
	assert.Equal(t, `{"is_attack": true}`, out)
}

func TestHTTPClassifier_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	c := NewHTTPClassifier(&HTTPConfig{Endpoint: server.URL})
	_, err := c.Classify(context.Background(), &Request{Text: "x"})
	assert.Error(t, err)
}

func TestHTTPClassifier_EndpointError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(classifyResponseBody{Error: "model overloaded"})
	}))
	defer server.Close()

	c := NewHTTPClassifier(&HTTPConfig{Endpoint: server.URL})
	_, err := c.Classify(context.Background(), &Request{Text: "x"})
	assert.ErrorContains(t, err, "model overloaded")
}

func TestHTTPClassifier_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	c := NewHTTPClassifier(&HTTPConfig{Endpoint: server.URL, Timeout: 20 * time.Millisecond})
	_, err := c.Classify(context.Background(), &Request{Text: "x"})
	assert.Error(t, err)
}
