// Package session 驱动一次练习会话的页面状态机与答案提交流程
package session

import "fmt"

// Page 向导页面，闭集枚举
type Page string

// Event 页面迁移事件
type Event string

const (
	PageMain           Page = "main"
	PagePositionSelect Page = "position_select"
	PageIntro          Page = "intro"
	PageInterview      Page = "interview"
	PageAnalysis       Page = "analysis"
)

const (
	EventStartPractice  Event = "start_practice"
	EventPositionChosen Event = "position_chosen"
	EventBeginInterview Event = "begin_interview"
	EventFinish         Event = "finish"
	EventPracticeAgain  Event = "practice_again"
	EventBack           Event = "back"
)

// Transition 计算页面迁移，未定义的组合报错且保持原页面
func Transition(current Page, event Event) (Page, error) {
	switch current {
	case PageMain:
		switch event {
		case EventStartPractice:
			return PagePositionSelect, nil
		default:
			return current, invalidTransition(current, event)
		}
	case PagePositionSelect:
		switch event {
		case EventPositionChosen:
			return PageIntro, nil
		case EventBack:
			return PageMain, nil
		default:
			return current, invalidTransition(current, event)
		}
	case PageIntro:
		switch event {
		case EventBeginInterview:
			return PageInterview, nil
		case EventBack:
			return PagePositionSelect, nil
		default:
			return current, invalidTransition(current, event)
		}
	case PageInterview:
		switch event {
		case EventFinish:
			return PageAnalysis, nil
		case EventBack:
			return PageIntro, nil
		default:
			return current, invalidTransition(current, event)
		}
	case PageAnalysis:
		switch event {
		case EventPracticeAgain:
			return PageMain, nil
		case EventBack:
			return PageInterview, nil
		default:
			return current, invalidTransition(current, event)
		}
	default:
		return current, fmt.Errorf("unknown page %q", current)
	}
}

func invalidTransition(page Page, event Event) error {
	return fmt.Errorf("invalid transition: %s --(%s)--> ?", page, event)
}
