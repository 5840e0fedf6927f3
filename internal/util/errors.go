package util

import (
	"errors"
	"fmt"
)

var (
	ErrPositionNotFound  = errors.New("position not found")
	ErrCatalogUnreadable = errors.New("题库文件无法读取或解析")
	ErrAPIKeyMissing     = errors.New("OpenAI API key not configured")
	ErrEmptyAudio        = errors.New("no audio data to transcribe")
	ErrPermissionDenied  = errors.New("microphone permission denied")
	ErrDeviceUnavailable = errors.New("audio device unavailable")
	ErrTTSKeyMissing     = errors.New("Fish Audio API key not configured")
	ErrRecorderBusy      = errors.New("recording already in progress")
	ErrRecorderIdle      = errors.New("no recording in progress")
	ErrInvalidCredential = errors.New("邮箱或密码不正确")
)

// UpstreamError 语音服务商返回的非成功响应，保留状态码和原始响应体用于排障
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("speech provider error (status %d): %s", e.Status, e.Body)
}

// IsUpstreamError 判断是否为服务商侧错误
func IsUpstreamError(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}
