package session

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTransitionHappyPath(t *testing.T) {
	p := PageMain

	p, err := Transition(p, EventStartPractice)
	require.NoError(t, err)
	require.Equal(t, PagePositionSelect, p)

	p, err = Transition(p, EventPositionChosen)
	require.NoError(t, err)
	require.Equal(t, PageIntro, p)

	p, err = Transition(p, EventBeginInterview)
	require.NoError(t, err)
	require.Equal(t, PageInterview, p)

	p, err = Transition(p, EventFinish)
	require.NoError(t, err)
	require.Equal(t, PageAnalysis, p)

	p, err = Transition(p, EventPracticeAgain)
	require.NoError(t, err)
	require.Equal(t, PageMain, p)
}

func TestTransitionBackChain(t *testing.T) {
	p, err := Transition(PageAnalysis, EventBack)
	require.NoError(t, err)
	require.Equal(t, PageInterview, p)

	p, err = Transition(PageInterview, EventBack)
	require.NoError(t, err)
	require.Equal(t, PageIntro, p)

	p, err = Transition(PageIntro, EventBack)
	require.NoError(t, err)
	require.Equal(t, PagePositionSelect, p)

	p, err = Transition(PagePositionSelect, EventBack)
	require.NoError(t, err)
	require.Equal(t, PageMain, p)
}

func TestTransitionRejectsUndefined(t *testing.T) {
	cases := []struct {
		page  Page
		event Event
	}{
		{PageMain, EventBack},
		{PageMain, EventFinish},
		{PagePositionSelect, EventBeginInterview},
		{PageIntro, EventFinish},
		{PageInterview, EventStartPractice},
		{PageAnalysis, EventPositionChosen},
	}

	for _, tc := range cases {
		next, err := Transition(tc.page, tc.event)
		require.Error(t, err, "page=%s event=%s", tc.page, tc.event)
		require.Equal(t, tc.page, next, "失败时必须停留在原页面")
	}
}

func TestTransitionUnknownPage(t *testing.T) {
	_, err := Transition(Page("settings"), EventBack)
	require.Error(t, err)
}
