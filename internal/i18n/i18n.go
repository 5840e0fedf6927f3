// Package i18n 提供界面文案与题目文本/语音的双语查找。
// 查找是纯函数：相同的 (语言, key) 永远返回相同结果。
package i18n

import (
	"interview_warmup_backend/internal/model"

	"go.uber.org/zap"
)

type Key string

const (
	KeyAppTitle        Key = "app.title"
	KeyMainTagline     Key = "main.tagline"
	KeyMainStart       Key = "main.start"
	KeyPositionPrompt  Key = "position.prompt"
	KeyIntroTitle      Key = "intro.title"
	KeyIntroBody       Key = "intro.body"
	KeyIntroStart      Key = "intro.start"
	KeyInterviewNext   Key = "interview.next"
	KeyInterviewFinish Key = "interview.finish"
	KeyInterviewPrev   Key = "interview.previous"
	KeyRecordStart     Key = "record.start"
	KeyRecordStop      Key = "record.stop"
	KeyTranscribing    Key = "record.transcribing"
	KeyAnalysisTitle   Key = "analysis.title"
	KeyAnalysisBody    Key = "analysis.body"
	KeyPracticeAgain   Key = "analysis.again"
	KeyErrEmptyAnswer  Key = "error.empty_answer"
	KeyErrTranscribe   Key = "error.transcribe"
	KeyErrQuestions    Key = "error.questions"
)

var tables = map[model.Language]map[Key]string{
	model.LangEn: {
		KeyAppTitle:        "Interview warmup",
		KeyMainTagline:     "A quick way to prepare for your next interview",
		KeyMainStart:       "Start practicing",
		KeyPositionPrompt:  "What field do you want to practice for?",
		KeyIntroTitle:      "Answer 5 interview questions",
		KeyIntroBody:       "When you're done, review your answers and discover insights.",
		KeyIntroStart:      "Start",
		KeyInterviewNext:   "Next",
		KeyInterviewFinish: "Finish",
		KeyInterviewPrev:   "Previous",
		KeyRecordStart:     "Answer with voice",
		KeyRecordStop:      "Stop recording",
		KeyTranscribing:    "Transcribing...",
		KeyAnalysisTitle:   "Congrats, you did it! Let's review.",
		KeyAnalysisBody:    "Use the insight buttons to learn more about your answers. Identify what you'd like to improve, then practice again.",
		KeyPracticeAgain:   "Practice again",
		KeyErrEmptyAnswer:  "Please answer the question before moving on",
		KeyErrTranscribe:   "Transcription failed, please try again",
		KeyErrQuestions:    "Failed to load questions",
	},
	model.LangZh: {
		KeyAppTitle:        "面试热身",
		KeyMainTagline:     "快速为下一场面试做好准备",
		KeyMainStart:       "开始练习",
		KeyPositionPrompt:  "你想练习哪个领域的面试？",
		KeyIntroTitle:      "回答 5 道面试题",
		KeyIntroBody:       "完成后回顾你的回答，发现可以改进的地方。",
		KeyIntroStart:      "开始",
		KeyInterviewNext:   "下一题",
		KeyInterviewFinish: "完成",
		KeyInterviewPrev:   "上一题",
		KeyRecordStart:     "语音作答",
		KeyRecordStop:      "停止录音",
		KeyTranscribing:    "转写中...",
		KeyAnalysisTitle:   "恭喜完成！来回顾一下吧。",
		KeyAnalysisBody:    "从面试官的角度回顾你的回答，找出想要改进的地方，然后再练一次。",
		KeyPracticeAgain:   "再练一次",
		KeyErrEmptyAnswer:  "请先回答本题再继续",
		KeyErrTranscribe:   "转写失败，请重试",
		KeyErrQuestions:    "题目加载失败",
	},
}

// Bundle 无状态的文案查找器
type Bundle struct {
	log *zap.Logger
}

func NewBundle(log *zap.Logger) *Bundle {
	if log == nil {
		log = zap.NewNop()
	}
	return &Bundle{log: log}
}

// Lookup 返回指定语言下的文案；缺失时记录日志并回退到另一种语言，再退为空串
func (b *Bundle) Lookup(lang model.Language, key Key) string {
	if !lang.Valid() {
		lang = model.LangEn
	}
	if s, ok := tables[lang][key]; ok {
		return s
	}

	b.log.Warn("missing translation",
		zap.String("language", string(lang)),
		zap.String("key", string(key)),
	)

	if s, ok := tables[lang.Other()][key]; ok {
		return s
	}
	return ""
}

// QuestionText 按语言取题干，缺失时回退另一语言
func QuestionText(q model.Question, lang model.Language) string {
	if lang == model.LangZh && q.TextZh != "" {
		return q.TextZh
	}
	if q.TextEn != "" {
		return q.TextEn
	}
	return q.TextZh
}

// QuestionAudio 按语言取语音文件路径，缺失时回退另一语言
func QuestionAudio(q model.Question, lang model.Language) string {
	if lang == model.LangZh && q.AudioURLZh != "" {
		return q.AudioURLZh
	}
	if q.AudioURLEn != "" {
		return q.AudioURLEn
	}
	return q.AudioURLZh
}
