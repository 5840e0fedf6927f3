package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"interview_warmup_backend/internal/config"
	"interview_warmup_backend/internal/model"
	"interview_warmup_backend/internal/util"

	"github.com/stretchr/testify/require"
)

func TestSynthesizeMissingAPIKey(t *testing.T) {
	svc := NewTTSService(config.TTSConfig{})

	_, err := svc.Synthesize(context.Background(), "Tell me about yourself.", model.LangEn)
	require.ErrorIs(t, err, util.ErrTTSKeyMissing)
}

func TestSynthesizeSelectsVoiceByLanguage(t *testing.T) {
	var gotRequests []ttsRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer fa-test", r.Header.Get("Authorization"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var req ttsRequest
		require.NoError(t, json.Unmarshal(body, &req))
		gotRequests = append(gotRequests, req)

		w.Write([]byte("mp3-bytes"))
	}))
	defer server.Close()

	svc := NewTTSService(config.TTSConfig{
		APIKey:  "fa-test",
		BaseURL: server.URL,
	})

	audio, err := svc.Synthesize(context.Background(), "Tell me about yourself.", model.LangEn)
	require.NoError(t, err)
	require.Equal(t, []byte("mp3-bytes"), audio)

	_, err = svc.Synthesize(context.Background(), "请做个自我介绍。", model.LangZh)
	require.NoError(t, err)

	require.Len(t, gotRequests, 2)
	require.Equal(t, "en-US-1", gotRequests[0].VoiceID)
	require.Equal(t, "zh-CN-1", gotRequests[1].VoiceID)
	require.Equal(t, "mp3", gotRequests[0].Format)
	require.Equal(t, 64, gotRequests[0].MP3Bitrate)
}

func TestSynthesizeUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte("quota exceeded"))
	}))
	defer server.Close()

	svc := NewTTSService(config.TTSConfig{APIKey: "fa-test", BaseURL: server.URL})

	_, err := svc.Synthesize(context.Background(), "Hello", model.LangEn)

	var ue *util.UpstreamError
	require.ErrorAs(t, err, &ue)
	require.Equal(t, http.StatusPaymentRequired, ue.Status)
	require.Contains(t, ue.Body, "quota exceeded")
}
