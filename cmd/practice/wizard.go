package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"interview_warmup_backend/internal/audio"
	"interview_warmup_backend/internal/config"
	"interview_warmup_backend/internal/i18n"
	"interview_warmup_backend/internal/model"
	"interview_warmup_backend/internal/service"
	"interview_warmup_backend/internal/session"
	"interview_warmup_backend/internal/util"
	"interview_warmup_backend/pkg/logger"
)

// wizard 把会话状态机映射成终端交互循环
type wizard struct {
	cfg      *config.Config
	sess     *session.Session
	bundle   *i18n.Bundle
	question *service.QuestionService
	in       *bufio.Scanner
}

func newWizard(cfg *config.Config, lang string) *wizard {
	language := model.Language(lang)
	if !language.Valid() {
		language = model.LangEn
	}

	questionSvc := service.NewQuestionService(cfg.Questions.Dir)
	recorder := audio.NewRecorder(cfg.Audio.Input, cfg.Audio.Fallback)
	transcriber := service.NewTranscriptionService(cfg.OpenAI)

	sess := session.NewSession(
		questionSvc,
		recorder,
		&transcriberAdapter{svc: transcriber},
		cfg.Questions.Count,
		language,
		logger.Log,
	)

	return &wizard{
		cfg:      cfg,
		sess:     sess,
		bundle:   i18n.NewBundle(logger.Log),
		question: questionSvc,
		in:       bufio.NewScanner(os.Stdin),
	}
}

// transcriberAdapter 让转写服务满足会话的窄接口
type transcriberAdapter struct {
	svc *service.TranscriptionService
}

func (a *transcriberAdapter) Transcribe(ctx context.Context, filename string, data []byte) (string, error) {
	return a.svc.Transcribe(ctx, filename, data)
}

func (w *wizard) t(key i18n.Key) string {
	return w.bundle.Lookup(w.sess.Language(), key)
}

func (w *wizard) readLine(prompt string) (string, bool) {
	fmt.Print(prompt)
	if !w.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(w.in.Text()), true
}

func (w *wizard) run(ctx context.Context, presetPosition string) error {
	fmt.Printf("\n=== %s ===\n%s\n", w.t(i18n.KeyAppTitle), w.t(i18n.KeyMainTagline))

	for {
		switch w.sess.Page() {
		case session.PageMain:
			if _, ok := w.readLine(fmt.Sprintf("\n[Enter] %s > ", w.t(i18n.KeyMainStart))); !ok {
				return nil
			}
			if err := w.sess.Start(); err != nil {
				return err
			}

		case session.PagePositionSelect:
			if err := w.choosePosition(presetPosition); err != nil {
				return err
			}
			presetPosition = ""

		case session.PageIntro:
			fmt.Printf("\n%s\n%s\n", w.t(i18n.KeyIntroTitle), w.t(i18n.KeyIntroBody))
			if _, ok := w.readLine(fmt.Sprintf("[Enter] %s > ", w.t(i18n.KeyIntroStart))); !ok {
				return nil
			}
			if err := w.sess.BeginInterview(); err != nil {
				return err
			}

		case session.PageInterview:
			if done := w.interviewStep(ctx); done {
				return nil
			}

		case session.PageAnalysis:
			if done := w.analysisStep(); done {
				return nil
			}
		}
	}
}

func (w *wizard) choosePosition(preset string) error {
	pos := preset
	if pos == "" {
		positions, err := w.question.Positions()
		if err == nil && len(positions) > 0 {
			fmt.Printf("\n%s\n", w.t(i18n.KeyPositionPrompt))
			for _, p := range positions {
				fmt.Printf("  - %s\n", p)
			}
		}
		line, ok := w.readLine("> ")
		if !ok {
			return errors.New("输入结束")
		}
		pos = line
	}

	if err := w.sess.ChoosePosition(pos); err != nil {
		fmt.Printf("%s: %v\n", w.t(i18n.KeyErrQuestions), err)
	}
	return nil
}

// interviewStep 处理一轮答题交互，返回 true 表示用户退出
func (w *wizard) interviewStep(ctx context.Context) bool {
	total := len(w.sess.Questions())
	fmt.Printf("\n[%d/%d] %s\n", w.sess.Index()+1, total, w.sess.CurrentText())
	if url := w.sess.CurrentAudioURL(); url != "" {
		fmt.Printf("(audio: %s)\n", url)
	}
	if draft := w.sess.Draft(); draft != "" {
		fmt.Printf("--- %s\n", draft)
	}

	nextLabel := w.t(i18n.KeyInterviewNext)
	if w.sess.Index() == total-1 {
		nextLabel = w.t(i18n.KeyInterviewFinish)
	}
	prompt := fmt.Sprintf("[n]%s [p]%s [r]%s [l]en/zh [q]uit 或直接输入回答 > ",
		nextLabel, w.t(i18n.KeyInterviewPrev), w.t(i18n.KeyRecordStart))

	line, ok := w.readLine(prompt)
	if !ok {
		return true
	}

	switch line {
	case "q":
		return true
	case "n":
		if err := w.sess.Next(); err != nil {
			if errors.Is(err, session.ErrEmptyAnswer) {
				fmt.Println(w.t(i18n.KeyErrEmptyAnswer))
			} else {
				fmt.Println(err)
			}
		}
	case "p":
		if err := w.sess.Previous(); err != nil {
			fmt.Println(err)
		}
	case "r":
		w.record(ctx)
	case "l":
		_ = w.sess.SetLanguage(w.sess.Language().Other())
	default:
		if line != "" {
			w.sess.SetDraft(line)
		}
	}
	return false
}

func (w *wizard) record(ctx context.Context) {
	if err := w.sess.StartRecording(ctx); err != nil {
		fmt.Printf("%v\n", err)
		return
	}

	// stdin 关闭也要走停止流程，保证设备被释放
	_, _ = w.readLine(fmt.Sprintf("... [Enter] %s > ", w.t(i18n.KeyRecordStop)))

	fmt.Println(w.t(i18n.KeyTranscribing))
	if err := w.sess.StopRecording(ctx); err != nil {
		switch {
		case errors.Is(err, util.ErrEmptyAudio):
			fmt.Println("(no audio captured)")
		default:
			fmt.Printf("%s: %v\n", w.t(i18n.KeyErrTranscribe), err)
		}
		return
	}
	fmt.Printf("--- %s\n", w.sess.Draft())
}

// analysisStep 展示全部问答并询问是否再练一次
func (w *wizard) analysisStep() bool {
	fmt.Printf("\n%s\n%s\n\n", w.t(i18n.KeyAnalysisTitle), w.t(i18n.KeyAnalysisBody))

	questions := w.sess.Questions()
	answers := w.sess.Answers()
	for i, q := range questions {
		fmt.Printf("%d. %s\n   %s\n", i+1, i18n.QuestionText(q, w.sess.Language()), answers[i])
	}

	line, ok := w.readLine(fmt.Sprintf("\n[a]%s [b]ack [q]uit > ", w.t(i18n.KeyPracticeAgain)))
	if !ok {
		return true
	}
	switch line {
	case "a":
		if err := w.sess.PracticeAgain(); err != nil {
			fmt.Println(err)
		}
	case "b":
		if err := w.sess.Back(); err != nil {
			fmt.Println(err)
		}
	default:
		return true
	}
	return false
}

// listDevices 打印 Pulse 输入源清单
func listDevices(ctx context.Context) error {
	devices, err := audio.ListDevices(ctx)
	if err != nil {
		return err
	}

	for _, d := range devices {
		marker := " "
		if d.Default {
			marker = "*"
		}
		state := "available"
		if !d.Available {
			state = "unavailable"
		}
		if d.Muted {
			state += ", muted"
		}
		fmt.Printf("%s %s (%s) [%s]\n", marker, d.ID, d.Description, state)
	}
	return nil
}
