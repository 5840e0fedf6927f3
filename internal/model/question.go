package model

// QuestionType 题目类型，驱动前端的题型标签展示
type QuestionType string

const (
	QuestionBackground  QuestionType = "Background"
	QuestionSituational QuestionType = "Situational"
)

// Question 题库中的一道面试题，随岗位题库文件加载，运行期只读
type Question struct {
	ID              int          `json:"question_id"`
	Category        string       `json:"category"`
	Type            QuestionType `json:"type"`
	EvaluationPoint string       `json:"evaluation_point"`
	Field           string       `json:"field"`
	TextEn          string       `json:"question"`
	TextZh          string       `json:"question_zh"`
	AudioURLEn      string       `json:"voice_file_en,omitempty"`
	AudioURLZh      string       `json:"voice_file_zh,omitempty"`
}

// Language 展示语言
type Language string

const (
	LangEn Language = "en"
	LangZh Language = "zh"
)

// Valid 仅接受 en/zh 两种语言
func (l Language) Valid() bool {
	return l == LangEn || l == LangZh
}

// Other 返回另一种语言，用于翻译缺失时的回退
func (l Language) Other() Language {
	if l == LangZh {
		return LangEn
	}
	return LangZh
}
