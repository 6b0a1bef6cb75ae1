package session

import (
	"testing"

	"talentmate/internal/domain/interview"
)

func sessionWithScores(scores ...int) *Session {
	s := &Session{
		Questions: make([]interview.QuestionRecord, 0, len(scores)),
		Scores:    map[string]interview.ScoreResult{},
	}
	for i, sc := range scores {
		id := string(rune('a' + i))
		s.Questions = append(s.Questions, interview.QuestionRecord{ID: id})
		s.Scores[id] = interview.ScoreResult{Score: sc}
	}
	return s
}

func TestComputeOverall(t *testing.T) {
	cases := []struct {
		scores []int
		want   int
	}{
		{[]int{80}, 80},
		{[]int{80, 45}, 62},  // 62.5 ties to even
		{[]int{82, 45}, 64},  // 63.5 ties to even
		{[]int{80, 45, 46}, 57},
		{[]int{0, 0}, 0},
	}
	for _, tc := range cases {
		if got := sessionWithScores(tc.scores...).ComputeOverall(); got != tc.want {
			t.Errorf("ComputeOverall(%v) = %d, want %d", tc.scores, got, tc.want)
		}
	}

	empty := &Session{Scores: map[string]interview.ScoreResult{}}
	if got := empty.ComputeOverall(); got != 0 {
		t.Errorf("ComputeOverall with no scores = %d, want 0", got)
	}
}

func TestAnswered(t *testing.T) {
	s := sessionWithScores(80, 45)
	if !s.Answered() {
		t.Error("Answered = false with every question scored")
	}

	s.Questions = append(s.Questions, interview.QuestionRecord{ID: "z"})
	if s.Answered() {
		t.Error("Answered = true with an unscored question")
	}

	if (&Session{}).Answered() {
		t.Error("Answered = true with no questions")
	}
}
