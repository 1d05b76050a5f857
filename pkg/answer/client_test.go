package answer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ai-pdfchat-be/pkg/turnlog"

	"github.com/stretchr/testify/assert"
)

func history() []turnlog.Turn {
	log := turnlog.New()
	log.Append(turnlog.RoleAssistant, "I've read your document.")
	log.Append(turnlog.RoleUser, "What is it about?")
	log.Append(turnlog.RoleAssistant, "It covers quarterly revenue.")
	return log.All()
}

func TestAskWireFormat(t *testing.T) {
	var got askRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/ask", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"answer": "42 million."}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	reply, err := client.Ask(context.Background(), "full document text", "How much revenue?", history())

	assert.NoError(t, err)
	assert.Equal(t, "42 million.", reply)

	assert.Equal(t, "full document text", got.Context)
	assert.Equal(t, "How much revenue?", got.Message)
	if assert.Len(t, got.History, 3) {
		assert.Equal(t, "assistant", got.History[0].Role)
		assert.Equal(t, "user", got.History[1].Role)
		assert.Equal(t, "What is it about?", got.History[1].Content)
	}
}

func TestAskDoesNotMutateHistory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"answer": "ok"}`))
	}))
	defer srv.Close()

	hist := history()
	before := make([]turnlog.Turn, len(hist))
	copy(before, hist)

	client := NewClient(srv.URL, 5*time.Second)
	_, err := client.Ask(context.Background(), "ctx", "msg", hist)

	assert.NoError(t, err)
	assert.Equal(t, before, hist)
}

func TestAskErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-2xx status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("<html>gateway error</html>"))
			},
		},
		{
			name: "empty answer",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"answer": ""}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client := NewClient(srv.URL, 5*time.Second)
			_, err := client.Ask(context.Background(), "ctx", "msg", nil)
			assert.Error(t, err)
		})
	}
}

func TestAskTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Write([]byte(`{"answer": "too late"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 50*time.Millisecond)
	_, err := client.Ask(context.Background(), "ctx", "msg", nil)

	assert.Error(t, err)
}
