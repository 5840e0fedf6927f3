package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"interview_warmup_backend/internal/config"
	"interview_warmup_backend/internal/model"
	"interview_warmup_backend/internal/util"
)

// TTSService 调用 Fish Audio 接口合成题目语音，仅离线批处理脚本使用
type TTSService struct {
	cfg    config.TTSConfig
	client *http.Client
}

func NewTTSService(cfg config.TTSConfig) *TTSService {
	if cfg.VoiceEn == "" {
		cfg.VoiceEn = "en-US-1"
	}
	if cfg.VoiceZh == "" {
		cfg.VoiceZh = "zh-CN-1"
	}
	return &TTSService{
		cfg:    cfg,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

func (s *TTSService) Configured() bool {
	return s.cfg.APIKey != ""
}

type ttsRequest struct {
	Text        string `json:"text"`
	VoiceID     string `json:"voice_id"`
	ChunkLength int    `json:"chunk_length"`
	Normalize   bool   `json:"normalize"`
	Format      string `json:"format"`
	MP3Bitrate  int    `json:"mp3_bitrate"`
	OpusBitrate int    `json:"opus_bitrate"`
	Latency     string `json:"latency"`
}

// Synthesize 合成一段 MP3 语音，返回原始音频字节
func (s *TTSService) Synthesize(ctx context.Context, text string, lang model.Language) ([]byte, error) {
	if !s.Configured() {
		return nil, util.ErrTTSKeyMissing
	}
	if text == "" {
		return nil, errors.New("合成文本不能为空")
	}

	voiceID := s.cfg.VoiceEn
	if lang == model.LangZh {
		voiceID = s.cfg.VoiceZh
	}

	reqBody := ttsRequest{
		Text:        text,
		VoiceID:     voiceID,
		ChunkLength: 200,
		Normalize:   true,
		Format:      "mp3",
		MP3Bitrate:  64,
		OpusBitrate: -1000,
		Latency:     "normal",
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.cfg.BaseURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &util.UpstreamError{Status: 0, Body: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &util.UpstreamError{Status: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}
