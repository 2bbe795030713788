package ollama_test

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cvparser/internal/config"
	"cvparser/internal/domain"
	"cvparser/internal/inference/ollama"
	"cvparser/internal/port"
)

func newTestClient(endpoint string) *ollama.Client {
	return ollama.NewClient(&config.OllamaConfig{
		Host:        endpoint,
		Model:       "gemma3:1b",
		TimeoutSecs: 5,
	})
}

// closedEndpoint returns a URL on which nothing is listening.
func closedEndpoint(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())
	return "http://" + addr + "/api/generate"
}

func TestClient_ExtractFields_Success(t *testing.T) {
	modelText := "```json\n{\"name\": \"Alice Smith\", \"email\": null}\n```"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/generate", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var reqBody map[string]interface{}
		err := json.NewDecoder(r.Body).Decode(&reqBody)
		assert.NoError(t, err)
		assert.Equal(t, "gemma3:1b", reqBody["model"])
		assert.Equal(t, false, reqBody["stream"])
		assert.Contains(t, reqBody["prompt"], "Alice Smith")
		assert.Contains(t, reqBody["prompt"], "Fields to extract: name, email")

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"model":    "gemma3:1b",
			"response": modelText,
			"done":     true,
		})
	}))
	defer server.Close()

	c := newTestClient(server.URL + "/api/generate")
	data, err := c.ExtractFields(context.Background(), port.FieldExtractionInput{
		Text:   "Alice Smith",
		Fields: []string{"name", "email"},
	})

	require.NoError(t, err)
	assert.Equal(t, domain.ExtractedData{"response": modelText}, data)
}

func TestClient_ExtractFields_DefaultFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var reqBody map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&reqBody)
		assert.Contains(t, reqBody["prompt"], "Fields to extract: name, email, skills, experience, education")
		_, _ = w.Write([]byte(`{"response":"{}"}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).ExtractFields(context.Background(), port.FieldExtractionInput{Text: "cv"})
	require.NoError(t, err)
}

func TestClient_ExtractFields_NonJSONModelOutputPassedThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"response":"Sorry, I cannot help with that."}`))
	}))
	defer server.Close()

	data, err := newTestClient(server.URL).ExtractFields(context.Background(), port.FieldExtractionInput{Text: "cv"})

	require.NoError(t, err)
	assert.Equal(t, "Sorry, I cannot help with that.", data.Response())
}

func TestClient_ExtractFields_Non2xxStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"model 'gemma3:1b' not found"}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).ExtractFields(context.Background(), port.FieldExtractionInput{Text: "cv"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
	assert.Contains(t, err.Error(), "not found")
}

func TestClient_ExtractFields_MalformedEnvelope(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `<html>bad gateway</html>`},
		{"missing response", `{"done":true}`},
		{"response not a string", `{"response":{"name":"Alice"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := newTestClient(server.URL).ExtractFields(context.Background(), port.FieldExtractionInput{Text: "cv"})
			assert.Error(t, err)
		})
	}
}

func TestClient_ExtractFields_Unreachable(t *testing.T) {
	c := newTestClient(closedEndpoint(t))

	data, err := c.ExtractFields(context.Background(), port.FieldExtractionInput{Text: "cv"})

	require.Error(t, err)
	assert.Nil(t, data)
	assert.Contains(t, err.Error(), "calling ollama API")
	assert.Contains(t, err.Error(), "connect")
}

func TestClient_ExtractFields_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(server.URL).ExtractFields(ctx, port.FieldExtractionInput{Text: "cv"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_Ping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/", r.URL.Path)
		_, _ = w.Write([]byte("Ollama is running"))
	}))
	defer server.Close()

	assert.NoError(t, newTestClient(server.URL+"/api/generate").Ping(context.Background()))
}

func TestClient_Ping_Unreachable(t *testing.T) {
	assert.Error(t, newTestClient(closedEndpoint(t)).Ping(context.Background()))
}
