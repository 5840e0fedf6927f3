package util

import (
	"net/http"
	"strings"
)

// DetectMimeType 基于内容嗅探 MIME 类型，最多读取前 512 字节
func DetectMimeType(data []byte) string {
	if len(data) > 512 {
		data = data[:512]
	}
	return http.DetectContentType(data)
}

// IsAudio 检测是否为音频载荷
// 浏览器录音的 WebM 容器会被嗅探为 video/webm，这里一并放行；
// 嗅探不出类型的二进制流交给服务商判断
func IsAudio(mimeType string) bool {
	return strings.HasPrefix(mimeType, "audio/") ||
		mimeType == "video/webm" ||
		mimeType == "application/octet-stream"
}
