package util

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// ConvertToMP3 使用ffmpeg-go库将浏览器录音（WebM/Opus等）转码为MP3
// Whisper接口按文件扩展名识别格式，上传前统一转为MP3
func ConvertToMP3(data []byte, srcExt string) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrEmptyAudio
	}
	if srcExt == "" {
		srcExt = ".webm"
	}

	tmpDir, err := os.MkdirTemp("", "warmup-audio-*")
	if err != nil {
		return nil, fmt.Errorf("创建临时目录失败: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	src := filepath.Join(tmpDir, "input"+srcExt)
	dst := filepath.Join(tmpDir, "output.mp3")

	if err := os.WriteFile(src, data, 0644); err != nil {
		return nil, fmt.Errorf("写入临时音频失败: %v", err)
	}

	err = ffmpeg.Input(src).
		Output(dst, ffmpeg.KwArgs{
			"vn":     "",           // 丢弃可能存在的视频轨
			"acodec": "libmp3lame", // MP3 编码
			"b:a":    "64k",
			"ar":     "16000",
			"ac":     "1",
		}).
		OverWriteOutput().
		Run()
	if err != nil {
		return nil, fmt.Errorf("音频转码失败: %v", err)
	}

	out, err := os.ReadFile(dst)
	if err != nil {
		return nil, fmt.Errorf("读取转码结果失败: %v", err)
	}
	return out, nil
}

// GetFFmpegVersion 获取FFmpeg版本信息，用于启动时检查FFmpeg是否正确安装
func GetFFmpegVersion() (string, error) {
	cmd := exec.Command("ffmpeg", "-version", "-hide_banner")
	var out bytes.Buffer
	var errOut bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errOut

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("获取FFmpeg版本失败，请确保FFmpeg已正确安装: %v, %s", err, errOut.String())
	}

	return out.String(), nil
}
