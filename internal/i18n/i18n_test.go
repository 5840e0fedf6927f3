package i18n

import (
	"testing"

	"interview_warmup_backend/internal/model"

	"github.com/stretchr/testify/require"
)

func TestLookupReturnsLanguageSpecificString(t *testing.T) {
	b := NewBundle(nil)

	require.Equal(t, "Start practicing", b.Lookup(model.LangEn, KeyMainStart))
	require.Equal(t, "开始练习", b.Lookup(model.LangZh, KeyMainStart))
}

func TestLookupFallsBackForUnknownLanguage(t *testing.T) {
	b := NewBundle(nil)

	require.Equal(t, "Start practicing", b.Lookup(model.Language("fr"), KeyMainStart))
}

func TestLookupMissingKeyReturnsEmpty(t *testing.T) {
	b := NewBundle(nil)

	require.Equal(t, "", b.Lookup(model.LangEn, Key("does.not.exist")))
}

func TestQuestionTextSelection(t *testing.T) {
	q := model.Question{TextEn: "Tell me about yourself.", TextZh: "介绍一下你自己。"}

	require.Equal(t, "Tell me about yourself.", QuestionText(q, model.LangEn))
	require.Equal(t, "介绍一下你自己。", QuestionText(q, model.LangZh))

	// 中文缺失时回退英文
	q.TextZh = ""
	require.Equal(t, "Tell me about yourself.", QuestionText(q, model.LangZh))
}

func TestQuestionAudioSelection(t *testing.T) {
	q := model.Question{AudioURLEn: "/voice_files/en_general_1.mp3"}

	require.Equal(t, "/voice_files/en_general_1.mp3", QuestionAudio(q, model.LangEn))
	// 中文语音未生成时回退英文
	require.Equal(t, "/voice_files/en_general_1.mp3", QuestionAudio(q, model.LangZh))
}
