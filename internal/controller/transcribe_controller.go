package controller

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"interview_warmup_backend/internal/service"
	"interview_warmup_backend/internal/util"
	"interview_warmup_backend/pkg/logger"
	"interview_warmup_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TranscribeController 处理录音上传与转写请求
type TranscribeController struct {
	TranscriptionService *service.TranscriptionService
}

func NewTranscribeController(transcriptionService *service.TranscriptionService) *TranscribeController {
	return &TranscribeController{TranscriptionService: transcriptionService}
}

// Transcribe godoc
// @Summary 转写一段答题录音
// @Description 接收 multipart 音频文件，WebM 先转码为 MP3 再提交转写
// @Tags 转写
// @Accept  multipart/form-data
// @Produce  json
// @Param   file formData file true "音频文件"
// @Success 200 {object} map[string]string "转写文本"
// @Failure 400 {object} map[string]string "未上传文件"
// @Failure 500 {object} map[string]string "凭证缺失或转写失败"
// @Router /api/transcribe [post]
func (c *TranscribeController) Transcribe(ctx *gin.Context) {
	// 历史客户端依赖裸 {"error": ...} 响应形状，这里不走统一信封。
	// 凭证先于文件字段检查：文件和凭证都缺失时返回 500 而不是 400
	if !c.TranscriptionService.Configured() {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "OpenAI API key not configured"})
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred during transcription"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred during transcription"})
		return
	}
	if len(data) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	if mimeType := util.DetectMimeType(data); !util.IsAudio(mimeType) {
		logger.Log.Warn("拒绝非音频载荷", zap.String("mime", mimeType))
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported file type"})
		return
	}

	start := time.Now()
	filename := fileHeader.Filename

	// 浏览器 MediaRecorder 产出 WebM，服务商不收，先转码
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == ".webm" || ext == "" {
		converted, convErr := util.ConvertToMP3(data, ext)
		if convErr != nil {
			logger.Log.Error("音频转码失败", zap.String("filename", filename), zap.Error(convErr))
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred during transcription"})
			return
		}
		data = converted
		filename = strings.TrimSuffix(filename, ext) + ".mp3"
	}

	text, err := c.TranscriptionService.Transcribe(ctx.Request.Context(), filename, data)
	monitoring.TranscriptionDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		logger.Log.Error("转写失败", zap.String("filename", filename), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred during transcription"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"transcription": text})
}
