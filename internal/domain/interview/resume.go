package interview

import "strings"

// ExperienceLevel is the coarse seniority estimate inferred from resume text.
type ExperienceLevel string

const (
	LevelJunior       ExperienceLevel = "junior"
	LevelIntermediate ExperienceLevel = "intermediate"
	LevelMid          ExperienceLevel = "mid"
	LevelSenior       ExperienceLevel = "senior"
)

// Profile is the coarse candidate profile produced from extracted resume
// text. Immutable after creation.
type Profile struct {
	Skills          []string        `json:"skills"`
	ExperienceLevel ExperienceLevel `json:"experience_level"`
	FullText        string          `json:"full_text"`
}

// skillKeywords is matched by plain substring against the lower-cased
// resume text. No word-boundary checks: partial-word hits (e.g. "ai"
// inside another word) are an accepted limitation.
var skillKeywords = []string{
	"python", "java", "javascript", "react", "angular", "node.js", "sql", "mongodb",
	"aws", "docker", "kubernetes", "git", "machine learning", "ai", "data science",
}

// experienceIndicators is ordered: the first level with any keyword hit
// wins, so senior outranks mid outranks junior.
var experienceIndicators = []struct {
	level    ExperienceLevel
	keywords []string
}{
	{LevelSenior, []string{"senior", "lead", "architect", "principal", "manager"}},
	{LevelMid, []string{"experienced", "specialist", "developer", "3+ years", "4+ years", "5+ years"}},
	{LevelJunior, []string{"junior", "entry", "graduate", "intern", "trainee"}},
}

// AnalyzeResume derives a profile from already-extracted resume text.
// It never fails: no keyword hits yield an empty skill list and the
// default intermediate level.
func AnalyzeResume(text string) Profile {
	lower := strings.ToLower(text)

	skills := make([]string, 0, len(skillKeywords))
	for _, kw := range skillKeywords {
		if strings.Contains(lower, kw) {
			skills = append(skills, kw)
		}
	}

	level := LevelIntermediate
	for _, ind := range experienceIndicators {
		if containsAny(lower, ind.keywords) {
			level = ind.level
			break
		}
	}

	return Profile{Skills: skills, ExperienceLevel: level, FullText: text}
}

// CodingDifficulty maps an experience level to the coding-question tier.
func (p Profile) CodingDifficulty() Difficulty {
	switch p.ExperienceLevel {
	case LevelSenior:
		return DifficultyAdvanced
	case LevelJunior:
		return DifficultyBeginner
	default:
		return DifficultyIntermediate
	}
}
