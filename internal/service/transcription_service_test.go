package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"interview_warmup_backend/internal/config"
	"interview_warmup_backend/internal/util"

	"github.com/stretchr/testify/require"
)

func TestTranscribeMissingAPIKey(t *testing.T) {
	svc := NewTranscriptionService(config.OpenAIConfig{})

	_, err := svc.Transcribe(context.Background(), "audio.mp3", []byte("data"))
	require.ErrorIs(t, err, util.ErrAPIKeyMissing)
}

func TestTranscribeEmptyPayload(t *testing.T) {
	svc := NewTranscriptionService(config.OpenAIConfig{APIKey: "sk-test"})

	_, err := svc.Transcribe(context.Background(), "audio.mp3", nil)
	require.ErrorIs(t, err, util.ErrEmptyAudio)
}

func TestTranscribeSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/audio/transcriptions", r.URL.Path)
		require.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseMultipartForm(32<<20))
		require.Equal(t, "whisper-1", r.FormValue("model"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		require.Equal(t, "audio.mp3", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"text":"hello world"}`))
	}))
	defer server.Close()

	svc := NewTranscriptionService(config.OpenAIConfig{
		APIKey:  "sk-test",
		BaseURL: server.URL,
		Model:   "whisper-1",
	})

	text, err := svc.Transcribe(context.Background(), "audio.mp3", []byte("fake-mp3"))
	require.NoError(t, err)
	require.Equal(t, "hello world", text)
}

func TestTranscribeUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}))
	defer server.Close()

	svc := NewTranscriptionService(config.OpenAIConfig{
		APIKey:  "sk-test",
		BaseURL: server.URL,
		Model:   "whisper-1",
	})

	_, err := svc.Transcribe(context.Background(), "audio.mp3", []byte("fake-mp3"))
	require.True(t, util.IsUpstreamError(err))

	var ue *util.UpstreamError
	require.ErrorAs(t, err, &ue)
	require.Equal(t, http.StatusTooManyRequests, ue.Status)
	require.Contains(t, ue.Body, "rate limited")
}

func TestTranscribeMalformedProviderResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json at all"))
	}))
	defer server.Close()

	svc := NewTranscriptionService(config.OpenAIConfig{
		APIKey:  "sk-test",
		BaseURL: server.URL,
		Model:   "whisper-1",
	})

	_, err := svc.Transcribe(context.Background(), "audio.mp3", []byte("fake-mp3"))
	require.True(t, util.IsUpstreamError(err))
}
