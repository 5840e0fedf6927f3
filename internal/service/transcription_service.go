package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"interview_warmup_backend/internal/config"
	"interview_warmup_backend/internal/util"
)

// TranscriptionService 调用 OpenAI Whisper 接口做语音转写。
// 单次往返、不重试；是否让用户重录由调用方决定。
type TranscriptionService struct {
	cfg    config.OpenAIConfig
	client *http.Client
}

func NewTranscriptionService(cfg config.OpenAIConfig) *TranscriptionService {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &TranscriptionService{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
	}
}

// Configured 凭证是否就位，必须在发起请求前检查而非靠请求失败发现
func (s *TranscriptionService) Configured() bool {
	return s.cfg.APIKey != ""
}

type transcriptionResponse struct {
	Text string `json:"text"`
}

// Transcribe 上传一段音频并返回识别文本。
// 不做任何格式转换，调用方需保证载荷是服务商接受的格式。
func (s *TranscriptionService) Transcribe(ctx context.Context, filename string, data []byte) (string, error) {
	if !s.Configured() {
		return "", util.ErrAPIKeyMissing
	}
	if len(data) == 0 {
		return "", util.ErrEmptyAudio
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("构造上传表单失败: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("写入音频数据失败: %v", err)
	}
	if err := writer.WriteField("model", s.cfg.Model); err != nil {
		return "", fmt.Errorf("写入表单字段失败: %v", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("关闭上传表单失败: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.cfg.BaseURL+"/audio/transcriptions", &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		// 含超时在内的传输层失败一律视为服务商侧错误
		return "", &util.UpstreamError{Status: 0, Body: err.Error()}
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", &util.UpstreamError{Status: resp.StatusCode, Body: string(respBody)}
	}

	var result transcriptionResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", &util.UpstreamError{Status: resp.StatusCode, Body: "unexpected response: " + string(respBody)}
	}

	return result.Text, nil
}
