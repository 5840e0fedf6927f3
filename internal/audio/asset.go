package audio

import "github.com/google/uuid"

// Asset 一段完成的录音，已封装为可直接上传的容器格式
type Asset struct {
	ID        uuid.UUID
	MediaType string
	Data      []byte
}

// Filename 返回上传时使用的文件名
func (a Asset) Filename() string {
	ext := ".bin"
	switch a.MediaType {
	case WAVMediaType:
		ext = ".wav"
	case "audio/mpeg":
		ext = ".mp3"
	case "audio/webm", "video/webm":
		ext = ".webm"
	}
	return a.ID.String() + ext
}

// Empty 判断录音是否没有采集到任何样本
func (a Asset) Empty() bool {
	// WAV 头 44 字节之外没有数据即为空
	return len(a.Data) <= 44
}

// NewWAVAsset 把原始 PCM 打包成带头的 WAV 资产
func NewWAVAsset(pcm []byte) Asset {
	return Asset{
		ID:        uuid.New(),
		MediaType: WAVMediaType,
		Data:      EncodePCM16WAV(pcm, SampleRate, Channels),
	}
}
