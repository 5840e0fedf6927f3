package session

import (
	"context"
	"errors"
	"strings"

	"interview_warmup_backend/internal/audio"
	"interview_warmup_backend/internal/i18n"
	"interview_warmup_backend/internal/model"
	"interview_warmup_backend/internal/util"

	"go.uber.org/zap"
)

var (
	// ErrEmptyAnswer 空白草稿不允许进入下一题
	ErrEmptyAnswer = errors.New("answer draft is empty")
	// ErrTranscriptionInFlight 上一段录音还在转写中
	ErrTranscriptionInFlight = errors.New("transcription already in flight")
	// ErrNoQuestions 岗位题库为空，无题可答
	ErrNoQuestions = errors.New("no questions available for position")
)

// QuestionSource 题目来源
type QuestionSource interface {
	FetchSample(position string, count int) ([]model.Question, error)
}

// Recorder 录音采集器
type Recorder interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) (audio.Asset, error)
}

// Transcriber 语音转写
type Transcriber interface {
	Transcribe(ctx context.Context, filename string, data []byte) (string, error)
}

// Session 一个用户上下文独占的练习会话。
// 假定由单一控制流驱动（UI 事件循环或请求处理器），不做并发防护。
type Session struct {
	questions   QuestionSource
	recorder    Recorder
	transcriber Transcriber
	log         *zap.Logger
	sampleSize  int

	page     Page
	language model.Language

	selectedPosition string
	sample           []model.Question
	answers          []string
	index            int
	draft            string

	recording    bool
	transcribing bool
}

// NewSession 构造处于初始页面的会话。语言等请求级配置在构造时注入
func NewSession(questions QuestionSource, recorder Recorder, transcriber Transcriber, sampleSize int, language model.Language, log *zap.Logger) *Session {
	if sampleSize <= 0 {
		sampleSize = 5
	}
	if !language.Valid() {
		language = model.LangEn
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		questions:   questions,
		recorder:    recorder,
		transcriber: transcriber,
		log:         log,
		sampleSize:  sampleSize,
		page:        PageMain,
		language:    language,
	}
}

func (s *Session) Page() Page { return s.page }

func (s *Session) Position() string { return s.selectedPosition }

func (s *Session) Questions() []model.Question {
	out := make([]model.Question, len(s.sample))
	copy(out, s.sample)
	return out
}

func (s *Session) Answers() []string {
	out := make([]string, len(s.answers))
	copy(out, s.answers)
	return out
}

func (s *Session) Index() int { return s.index }

func (s *Session) Draft() string { return s.draft }

func (s *Session) Language() model.Language { return s.language }

func (s *Session) Recording() bool { return s.recording }

func (s *Session) Transcribing() bool { return s.transcribing }

// CurrentQuestion 当前题目，不在答题页或越界时返回 false
func (s *Session) CurrentQuestion() (model.Question, bool) {
	if s.page != PageInterview || s.index < 0 || s.index >= len(s.sample) {
		return model.Question{}, false
	}
	return s.sample[s.index], true
}

// CurrentText 当前题目按会话语言渲染后的文本
func (s *Session) CurrentText() string {
	q, ok := s.CurrentQuestion()
	if !ok {
		return ""
	}
	return i18n.QuestionText(q, s.language)
}

// CurrentAudioURL 当前题目按会话语言选择的语音地址
func (s *Session) CurrentAudioURL() string {
	q, ok := s.CurrentQuestion()
	if !ok {
		return ""
	}
	return i18n.QuestionAudio(q, s.language)
}

// Start 从主页进入岗位选择
func (s *Session) Start() error {
	next, err := Transition(s.page, EventStartPractice)
	if err != nil {
		return err
	}
	s.page = next
	return nil
}

// ChoosePosition 选定岗位并抽取题目。
// 抽题失败时停留在岗位选择页，错误交给调用方呈现。
func (s *Session) ChoosePosition(position string) error {
	if _, err := Transition(s.page, EventPositionChosen); err != nil {
		return err
	}

	sample, err := s.questions.FetchSample(position, s.sampleSize)
	if err != nil {
		s.log.Warn("抽取题目失败", zap.String("position", position), zap.Error(err))
		return err
	}
	// 题库文件可以合法地是空数组，此时无题可进入答题流程
	if len(sample) == 0 {
		s.log.Warn("岗位题库为空", zap.String("position", position))
		return ErrNoQuestions
	}

	s.selectedPosition = position
	s.sample = sample
	s.answers = make([]string, len(sample))
	s.index = 0
	s.draft = ""
	s.page = PageIntro
	return nil
}

// BeginInterview 进入答题页，从第一题开始
func (s *Session) BeginInterview() error {
	next, err := Transition(s.page, EventBeginInterview)
	if err != nil {
		return err
	}
	s.page = next
	s.index = 0
	s.draft = s.answers[0]
	return nil
}

// SetDraft 覆盖当前草稿
func (s *Session) SetDraft(text string) {
	s.draft = text
}

// Next 提交当前草稿并前进。最后一题前进即完成，进入分析页。
// 草稿去空白后为空时拒绝前进，页面与题号均不变。
func (s *Session) Next() error {
	if s.page != PageInterview {
		return invalidTransition(s.page, EventFinish)
	}
	if strings.TrimSpace(s.draft) == "" {
		return ErrEmptyAnswer
	}

	s.answers[s.index] = s.draft

	if s.index == len(s.sample)-1 {
		s.page = PageAnalysis
		return nil
	}
	s.index++
	s.draft = s.answers[s.index]
	return nil
}

// Previous 提交当前草稿并后退，第一题后退回到说明页
func (s *Session) Previous() error {
	if s.page != PageInterview {
		return invalidTransition(s.page, EventBack)
	}

	s.answers[s.index] = s.draft

	if s.index == 0 {
		s.page = PageIntro
		return nil
	}
	s.index--
	s.draft = s.answers[s.index]
	return nil
}

// Back 通用后退。答题页后退等同 Previous，分析页后退回到最后一题
func (s *Session) Back() error {
	if s.page == PageInterview {
		return s.Previous()
	}

	next, err := Transition(s.page, EventBack)
	if err != nil {
		return err
	}
	s.page = next

	if next == PageInterview && len(s.sample) > 0 {
		s.index = len(s.sample) - 1
		s.draft = s.answers[s.index]
	}
	return nil
}

// PracticeAgain 从分析页回到主页并清空全部会话状态
func (s *Session) PracticeAgain() error {
	next, err := Transition(s.page, EventPracticeAgain)
	if err != nil {
		return err
	}
	s.page = next
	s.selectedPosition = ""
	s.sample = nil
	s.answers = nil
	s.index = 0
	s.draft = ""
	return nil
}

// SetLanguage 切换显示语言。只影响渲染，不重新抽题
func (s *Session) SetLanguage(lang model.Language) error {
	if !lang.Valid() {
		return errors.New("unsupported language: " + string(lang))
	}
	s.language = lang
	return nil
}

// StartRecording 开始为当前题目录音
func (s *Session) StartRecording(ctx context.Context) error {
	if s.page != PageInterview {
		return invalidTransition(s.page, "record")
	}
	if s.transcribing {
		return ErrTranscriptionInFlight
	}
	if s.recording {
		return util.ErrRecorderBusy
	}

	if err := s.recorder.Start(ctx); err != nil {
		return err
	}
	s.recording = true
	return nil
}

// StopRecording 结束录音并转写，结果追加到当前草稿。
// 空录音不发起网络请求；转写失败时草稿保持不变，可直接重录。
func (s *Session) StopRecording(ctx context.Context) error {
	if !s.recording {
		return util.ErrRecorderIdle
	}

	asset, err := s.recorder.Stop(ctx)
	s.recording = false
	if err != nil {
		return err
	}

	if asset.Empty() {
		return util.ErrEmptyAudio
	}

	s.transcribing = true
	defer func() { s.transcribing = false }()

	text, err := s.transcriber.Transcribe(ctx, asset.Filename(), asset.Data)
	if err != nil {
		s.log.Warn("转写失败", zap.Error(err))
		return err
	}

	if s.draft == "" {
		s.draft = text
	} else {
		s.draft = s.draft + " " + text
	}
	return nil
}
