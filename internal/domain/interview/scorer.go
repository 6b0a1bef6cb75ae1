package interview

import "strings"

// ScoreResult is the heuristic evaluation of one free-text answer.
type ScoreResult struct {
	Score          int      `json:"score"`
	Feedback       string   `json:"feedback"`
	AreasToImprove []string `json:"areas_to_improve"`
}

// SentimentResult is the outcome of the optional sentiment collaborator.
type SentimentResult struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// SentimentLabelPositive is the label that can earn a tone bonus.
const SentimentLabelPositive = "POSITIVE"

// SentimentAnalyzer is the optional external sentiment capability. An
// implementation is injected at construction time or left nil; the
// scorer treats a nil analyzer and a failed call identically.
type SentimentAnalyzer interface {
	Analyze(text string) (SentimentResult, error)
}

// Scorer evaluates free-text answers against keyword heuristics. Safe
// for concurrent use; it holds only read-only keyword tables and the
// optional sentiment capability.
type Scorer struct {
	sentiment SentimentAnalyzer
}

// NewScorer returns a Scorer. sentiment may be nil, in which case the
// tone heuristic is skipped entirely.
func NewScorer(sentiment SentimentAnalyzer) *Scorer {
	return &Scorer{sentiment: sentiment}
}

const (
	minAnswerLength    = 10
	sentimentTextLimit = 512
	tooShortFeedback   = "Answer is too short. Please provide a more detailed response."
)

var tooShortImprovements = []string{
	"Provide more detailed explanations",
	"Include specific examples",
}

var codingKeywords = []string{
	"algorithm", "complexity", "time", "space", "data structure",
	"variable", "function", "loop", "condition", "efficiency",
}

// roleKeywordFamilies is iterated in order; the first family with any
// keyword present in the answer supplies the counting vocabulary.
var roleKeywordFamilies = []struct {
	name     string
	keywords []string
}{
	{"salesforce", []string{"apex", "soql", "trigger", "workflow", "validation", "lightning", "component", "process builder", "flow"}},
	{"java", []string{"spring", "hibernate", "jpa", "microservices", "rest api", "junit", "maven", "dependency injection"}},
	{"python", []string{"django", "flask", "orm", "serializer", "middleware", "celery", "rest framework", "async"}},
	{"dotnet", []string{"asp.net", "entity framework", "mvc", "web api", "dependency injection", "middleware", "linq"}},
	{"analyst", []string{"requirements", "stakeholder", "user story", "acceptance criteria", "gap analysis", "process", "kpi"}},
}

var genericRoleKeywords = []string{
	"solution", "implementation", "design", "architecture", "best practice",
	"optimization", "integration", "configuration", "development", "testing",
}

var scenarioKeywords = []string{
	"experience", "situation", "approach", "result", "learned",
	"challenge", "solution", "team", "communication",
}

// Score computes a 0-100 heuristic score plus feedback and improvement
// suggestions for one answer. It never fails: blank or too-short
// answers are a valid zero-score case.
func (s *Scorer) Score(answer string, questionType QuestionType) ScoreResult {
	if len(strings.TrimSpace(answer)) < minAnswerLength {
		return ScoreResult{
			Score:          0,
			Feedback:       tooShortFeedback,
			AreasToImprove: append([]string(nil), tooShortImprovements...),
		}
	}

	score := 0
	var feedbackPoints []string
	var areasToImprove []string

	wordCount := len(strings.Fields(answer))
	switch {
	case wordCount >= 50:
		score += 20
		feedbackPoints = append(feedbackPoints, "Good level of detail in response")
	case wordCount >= 25:
		score += 10
		areasToImprove = append(areasToImprove, "Provide more detailed explanations")
	default:
		areasToImprove = append(areasToImprove, "Increase response length and detail")
	}

	answerLower := strings.ToLower(answer)

	switch questionType {
	case TypeCoding:
		n := countKeywords(answerLower, codingKeywords)
		switch {
		case n >= 3:
			score += 30
			feedbackPoints = append(feedbackPoints, "Good use of technical terminology")
		case n >= 1:
			score += 15
			areasToImprove = append(areasToImprove, "Include more technical terminology")
		default:
			areasToImprove = append(areasToImprove, "Use more technical language and concepts")
		}

	case TypeRoleSpecific:
		vocabulary := genericRoleKeywords
		for _, family := range roleKeywordFamilies {
			if containsAny(answerLower, family.keywords) {
				vocabulary = family.keywords
				break
			}
		}
		n := countKeywords(answerLower, vocabulary)
		switch {
		case n >= 4:
			score += 35
			feedbackPoints = append(feedbackPoints, "Excellent use of role-specific technical knowledge")
		case n >= 2:
			score += 20
			feedbackPoints = append(feedbackPoints, "Good technical understanding demonstrated")
		case n >= 1:
			score += 10
			areasToImprove = append(areasToImprove, "Include more specific technical details and terminology")
		default:
			areasToImprove = append(areasToImprove, "Demonstrate deeper technical knowledge and use specific terminology")
		}

	case TypeScenario:
		n := countKeywords(answerLower, scenarioKeywords)
		switch {
		case n >= 3:
			score += 30
			feedbackPoints = append(feedbackPoints, "Good storytelling and situation description")
		case n >= 1:
			score += 15
			areasToImprove = append(areasToImprove, "Include more specific examples and outcomes")
		default:
			areasToImprove = append(areasToImprove, "Provide concrete examples and specific situations")
		}
	}

	if len(strings.Split(answer, ".")) >= 3 {
		score += 20
		feedbackPoints = append(feedbackPoints, "Well-structured response")
	} else {
		areasToImprove = append(areasToImprove, "Improve response structure and organization")
	}

	if s.sentiment != nil {
		if res, ok := s.analyzeSentiment(answer); ok {
			if res.Label == SentimentLabelPositive && res.Confidence > 0.6 {
				score += 15
				feedbackPoints = append(feedbackPoints, "Positive and confident tone")
			} else if res.Confidence < 0.3 {
				areasToImprove = append(areasToImprove, "Show more confidence in your response")
			}
		}
	}

	if score > 100 {
		score = 100
	}

	var overall string
	switch {
	case score >= 80:
		overall = "Excellent response! "
	case score >= 60:
		overall = "Good response with room for improvement. "
	case score >= 40:
		overall = "Average response. "
	default:
		overall = "Needs significant improvement. "
	}

	return ScoreResult{
		Score:          score,
		Feedback:       overall + strings.Join(feedbackPoints, " "),
		AreasToImprove: areasToImprove,
	}
}

// analyzeSentiment runs the collaborator on at most the first 512
// characters. Failures contribute nothing; the second return
// distinguishes a usable result from an absent one.
func (s *Scorer) analyzeSentiment(answer string) (SentimentResult, bool) {
	text := answer
	if runes := []rune(text); len(runes) > sentimentTextLimit {
		text = string(runes[:sentimentTextLimit])
	}
	res, err := s.sentiment.Analyze(text)
	if err != nil {
		return SentimentResult{}, false
	}
	return res, true
}

func countKeywords(answerLower string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(answerLower, kw) {
			n++
		}
	}
	return n
}
