// 离线批量生成题目语音文件
//
// 遍历题库目录下的全部岗位题库，为每道题合成中英文两段语音，
// 写入语音存储后把资源路径回写进题库文件。只在题库变更后手动执行，
// 不属于交互请求链路。
//
// 用法: go run scripts/generate_voice_files.go

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"interview_warmup_backend/internal/config"
	"interview_warmup_backend/internal/model"
	"interview_warmup_backend/internal/service"
	"interview_warmup_backend/pkg/logger"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	logger.InitLogger(cfg.Server.Mode)

	tts := service.NewTTSService(cfg.TTS)
	if !tts.Configured() {
		log.Fatal("FISH_AUDIO_API_KEY 未配置，无法合成语音")
	}
	storage := service.NewStorageService(cfg)

	entries, err := os.ReadDir(cfg.Questions.Dir)
	if err != nil {
		log.Fatalf("无法读取题库目录 %s: %v", cfg.Questions.Dir, err)
	}

	ctx := context.Background()
	total := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		path := filepath.Join(cfg.Questions.Dir, entry.Name())
		n, err := processCatalog(ctx, path, tts, storage)
		if err != nil {
			log.Fatalf("处理 %s 失败: %v", entry.Name(), err)
		}
		log.Printf("%s: 合成 %d 段语音", entry.Name(), n)
		total += n
	}

	log.Printf("完成，共合成 %d 段语音", total)
}

// processCatalog 为一个岗位题库合成缺失的语音并回写资源路径
func processCatalog(ctx context.Context, path string, tts *service.TTSService, storage *service.StorageService) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	var questions []model.Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return 0, fmt.Errorf("题库解析失败: %v", err)
	}

	base := strings.TrimSuffix(filepath.Base(path), ".json")
	synthesized := 0
	for i := range questions {
		q := &questions[i]

		if q.AudioURLEn == "" && q.TextEn != "" {
			url, err := synthesizeOne(ctx, tts, storage, base, q.ID, q.TextEn, model.LangEn)
			if err != nil {
				return synthesized, err
			}
			q.AudioURLEn = url
			synthesized++
		}

		if q.AudioURLZh == "" && q.TextZh != "" {
			url, err := synthesizeOne(ctx, tts, storage, base, q.ID, q.TextZh, model.LangZh)
			if err != nil {
				return synthesized, err
			}
			q.AudioURLZh = url
			synthesized++
		}
	}

	if synthesized == 0 {
		return 0, nil
	}

	out, err := json.MarshalIndent(questions, "", "  ")
	if err != nil {
		return synthesized, err
	}
	return synthesized, os.WriteFile(path, out, 0644)
}

func synthesizeOne(ctx context.Context, tts *service.TTSService, storage *service.StorageService, base string, id int, text string, lang model.Language) (string, error) {
	audio, err := tts.Synthesize(ctx, text, lang)
	if err != nil {
		return "", fmt.Errorf("合成 %s q%d (%s) 失败: %v", base, id, lang, err)
	}

	filename := fmt.Sprintf("%s_%s_%d.mp3", lang, base, id)
	url, err := storage.Upload(ctx, filename, audio, "audio/mpeg")
	if err != nil {
		return "", fmt.Errorf("写入 %s 失败: %v", filename, err)
	}
	return url, nil
}
