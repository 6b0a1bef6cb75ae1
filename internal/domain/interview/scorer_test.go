package interview

import (
	"errors"
	"strings"
	"testing"
)

type stubSentiment struct {
	res SentimentResult
	err error

	gotText string
}

func (s *stubSentiment) Analyze(text string) (SentimentResult, error) {
	s.gotText = text
	return s.res, s.err
}

func TestScore_TooShort(t *testing.T) {
	s := NewScorer(nil)

	for _, answer := range []string{"", "   ", "short", "nine ch.."} {
		res := s.Score(answer, TypeCoding)
		if res.Score != 0 {
			t.Errorf("answer %q: score = %d, want 0", answer, res.Score)
		}
		if res.Feedback != "Answer is too short. Please provide a more detailed response." {
			t.Errorf("answer %q: feedback = %q", answer, res.Feedback)
		}
		if len(res.AreasToImprove) != 2 ||
			res.AreasToImprove[0] != "Provide more detailed explanations" ||
			res.AreasToImprove[1] != "Include specific examples" {
			t.Errorf("answer %q: areas = %v", answer, res.AreasToImprove)
		}
	}
}

func TestScore_CodingLengthAndKeywords(t *testing.T) {
	s := NewScorer(nil)

	// 100 words, rich in technical vocabulary, no periods.
	words := make([]string, 0, 100)
	words = append(words, "algorithm", "complexity", "time")
	for len(words) < 100 {
		words = append(words, "and")
	}
	answer := strings.Join(words, " ")

	res := s.Score(answer, TypeCoding)
	// 20 (length) + 30 (>=3 keyword hits), structure check fails.
	if res.Score != 50 {
		t.Fatalf("score = %d, want 50", res.Score)
	}
	if !strings.HasPrefix(res.Feedback, "Average response. ") {
		t.Errorf("feedback = %q", res.Feedback)
	}
	if !strings.Contains(res.Feedback, "Good level of detail in response") {
		t.Errorf("missing length feedback: %q", res.Feedback)
	}
	if !strings.Contains(res.Feedback, "Good use of technical terminology") {
		t.Errorf("missing keyword feedback: %q", res.Feedback)
	}
	if !containsString(res.AreasToImprove, "Improve response structure and organization") {
		t.Errorf("missing structure suggestion: %v", res.AreasToImprove)
	}
}

func TestScore_CodingKeywordTiers(t *testing.T) {
	s := NewScorer(nil)

	cases := []struct {
		name      string
		answer    string
		wantScore int
		wantArea  string
	}{
		{
			name:      "one keyword scores fifteen",
			answer:    "I would write a loop over the input and inspect each element carefully",
			wantScore: 15,
			wantArea:  "Include more technical terminology",
		},
		{
			name:      "zero keywords",
			answer:    "I would just try things until something works out well enough",
			wantScore: 0,
			wantArea:  "Use more technical language and concepts",
		},
	}

	for _, c := range cases {
		res := s.Score(c.answer, TypeCoding)
		if res.Score != c.wantScore {
			t.Errorf("%s: score = %d, want %d", c.name, res.Score, c.wantScore)
		}
		if !containsString(res.AreasToImprove, c.wantArea) {
			t.Errorf("%s: areas = %v", c.name, res.AreasToImprove)
		}
	}
}

func TestScore_RoleSpecificFamilySelection(t *testing.T) {
	s := NewScorer(nil)

	// Four salesforce-family keywords. The salesforce family is the
	// first with any hit, so its full list is the counting vocabulary.
	answer := "I would write an apex trigger with a validation rule and a flow in lightning"
	res := s.Score(answer, TypeRoleSpecific)
	// 4+ hits in the family list earns 35; 15 words earn no length
	// bonus; no periods, so no structure bonus.
	if res.Score != 35 {
		t.Fatalf("score = %d, want 35", res.Score)
	}
	if !strings.Contains(res.Feedback, "Excellent use of role-specific technical knowledge") {
		t.Errorf("feedback = %q", res.Feedback)
	}
}

func TestScore_RoleSpecificGenericFallback(t *testing.T) {
	s := NewScorer(nil)

	// No family keywords at all; generic vocabulary applies and
	// "solution" plus "testing" count as two hits.
	answer := "My solution would be verified with thorough testing before release"
	res := s.Score(answer, TypeRoleSpecific)
	if res.Score != 20 {
		t.Fatalf("score = %d, want 20", res.Score)
	}
	if !strings.Contains(res.Feedback, "Good technical understanding demonstrated") {
		t.Errorf("feedback = %q", res.Feedback)
	}
}

func TestScore_ScenarioKeywords(t *testing.T) {
	s := NewScorer(nil)

	answer := "The situation was tough. My approach involved the whole team. The result was positive."
	res := s.Score(answer, TypeScenario)
	// 30 (situation/approach/result/team) + 20 (structure), 15 words.
	if res.Score != 50 {
		t.Fatalf("score = %d, want 50", res.Score)
	}
	if !strings.Contains(res.Feedback, "Good storytelling and situation description") {
		t.Errorf("feedback = %q", res.Feedback)
	}
	if !strings.Contains(res.Feedback, "Well-structured response") {
		t.Errorf("feedback = %q", res.Feedback)
	}
}

func TestScore_SentimentBonusAndTruncation(t *testing.T) {
	stub := &stubSentiment{res: SentimentResult{Label: SentimentLabelPositive, Confidence: 0.95}}
	s := NewScorer(stub)

	answer := strings.Repeat("confident answer text ", 40) // >512 chars, >50 words
	res := s.Score(answer, TypeScenario)

	if len([]rune(stub.gotText)) != 512 {
		t.Fatalf("sentiment input length = %d, want 512", len([]rune(stub.gotText)))
	}
	if !strings.Contains(res.Feedback, "Positive and confident tone") {
		t.Errorf("feedback = %q", res.Feedback)
	}
}

func TestScore_SentimentLowConfidenceSuggestsMore(t *testing.T) {
	stub := &stubSentiment{res: SentimentResult{Label: "NEGATIVE", Confidence: 0.2}}
	s := NewScorer(stub)

	res := s.Score("An answer that is long enough to be analyzed properly", TypeScenario)
	if !containsString(res.AreasToImprove, "Show more confidence in your response") {
		t.Errorf("areas = %v", res.AreasToImprove)
	}
}

func TestScore_SentimentFailureIsSwallowed(t *testing.T) {
	stub := &stubSentiment{err: errors.New("model unavailable")}
	withFailed := NewScorer(stub)
	without := NewScorer(nil)

	answer := "The situation was tough. My approach involved the whole team. The result was positive."
	a := withFailed.Score(answer, TypeScenario)
	b := without.Score(answer, TypeScenario)

	if a.Score != b.Score || a.Feedback != b.Feedback {
		t.Fatalf("failed sentiment changed scoring: %+v vs %+v", a, b)
	}
}

func TestScore_CappedAt100(t *testing.T) {
	stub := &stubSentiment{res: SentimentResult{Label: SentimentLabelPositive, Confidence: 0.99}}
	s := NewScorer(stub)

	// Max out every heuristic: 20 + 35 + 20 + 15 = 90, then pad the
	// role answer with extra family keywords; score must stay <= 100.
	parts := []string{
		"We used apex and soql with a trigger, a workflow, a validation rule, a lightning component, a process builder and a flow.",
		"That covered the integration end to end.",
		"The rollout went smoothly across every org.",
	}
	answer := strings.Join(parts, " ") + " " + strings.Repeat("detail ", 40)

	res := s.Score(answer, TypeRoleSpecific)
	if res.Score < 0 || res.Score > 100 {
		t.Fatalf("score = %d, want within [0,100]", res.Score)
	}
	if !strings.HasPrefix(res.Feedback, "Excellent response! ") {
		t.Errorf("feedback = %q", res.Feedback)
	}
}

func TestScore_FeedbackBands(t *testing.T) {
	s := NewScorer(nil)

	cases := []struct {
		answer string
		qt     QuestionType
		prefix string
	}{
		// 0 points beyond nothing: short words, no keywords, no structure.
		{"just some plain words here that say very little overall", TypeCoding, "Needs significant improvement. "},
	}
	for _, c := range cases {
		res := s.Score(c.answer, c.qt)
		if !strings.HasPrefix(res.Feedback, c.prefix) {
			t.Errorf("answer %q: feedback = %q, want prefix %q", c.answer, res.Feedback, c.prefix)
		}
	}
}
