package interview

import (
	"fmt"
	"math/rand"
)

// QuestionType tags how a generated question is scored.
type QuestionType string

const (
	TypeCoding       QuestionType = "coding"
	TypeRoleSpecific QuestionType = "role_specific"
	TypeScenario     QuestionType = "scenario"
)

// QuestionRecord is one generated interview question. The id is unique
// only within a single generated set.
type QuestionRecord struct {
	ID       string       `json:"id"`
	Type     QuestionType `json:"type"`
	Question string       `json:"question"`
	Category string       `json:"category"`
}

// DefaultQuestionCount is the generated set size when the caller does
// not ask for a specific count.
const DefaultQuestionCount = 5

const (
	maxPrimaryQuestions   = 3
	maxScenarioCategories = 2
)

// Generator selects questions from a bank for a candidate profile and
// target job role. Sampling is uniform without replacement within each
// bucket; every Generate call draws from its own rand instance, so a
// Generator is safe for concurrent use.
type Generator struct {
	bank    *Bank
	newRand func() *rand.Rand
}

// NewGenerator returns a Generator over the given bank using a freshly
// seeded random source per call.
func NewGenerator(bank *Bank) *Generator {
	return &Generator{
		bank: bank,
		newRand: func() *rand.Rand {
			// rand.Int63 is the locked global source; a per-call local
			// rand avoids contention during sampling.
			return rand.New(rand.NewSource(rand.Int63()))
		},
	}
}

// NewGeneratorWithRand is NewGenerator with an injected source factory,
// for deterministic selection in tests.
func NewGeneratorWithRand(bank *Bank, newRand func() *rand.Rand) *Generator {
	return &Generator{bank: bank, newRand: newRand}
}

// Generate returns at most count question records: a primary set of up
// to three role-specific questions (or coding questions matching the
// profile's difficulty tier when no role bucket applies) followed by
// up to two scenario questions chosen by role family.
func (g *Generator) Generate(profile Profile, jobRole string, count int) []QuestionRecord {
	if count <= 0 {
		count = DefaultQuestionCount
	}

	r := g.newRand()
	roleCategory := ClassifyRole(jobRole)

	var out []QuestionRecord

	if bucket := g.bank.roleBucket(roleCategory); roleCategory != RoleNone && len(bucket) > 0 {
		picks := sampleWithoutReplacement(r, bucket, maxPrimaryQuestions)
		for i, q := range picks {
			out = append(out, QuestionRecord{
				ID:       fmt.Sprintf("role_%d", i+1),
				Type:     TypeRoleSpecific,
				Question: q,
				Category: roleCategory.DisplayName() + " Specific",
			})
		}
	} else {
		picks := sampleWithoutReplacement(r, g.bank.codingBucket(profile.CodingDifficulty()), maxPrimaryQuestions)
		for i, q := range picks {
			out = append(out, QuestionRecord{
				ID:       fmt.Sprintf("coding_%d", i+1),
				Type:     TypeCoding,
				Question: q,
				Category: "Technical Coding",
			})
		}
	}

	themes := scenarioThemes(roleCategory, profile.ExperienceLevel)
	n := 0
	for _, theme := range themes[:minInt(maxScenarioCategories, len(themes))] {
		bucket := g.bank.scenarioBucket(theme)
		if len(bucket) == 0 {
			continue
		}
		picks := sampleWithoutReplacement(r, bucket, 1)
		for _, q := range picks {
			n++
			out = append(out, QuestionRecord{
				ID:       fmt.Sprintf("scenario_%d", n),
				Type:     TypeScenario,
				Question: q,
				Category: "Behavioral/Scenario",
			})
		}
	}

	if len(out) > count {
		out = out[:count]
	}
	return out
}

// scenarioThemes returns the candidate scenario buckets for a role
// family; seniors get leadership appended, but only the first two
// themes are ever used.
func scenarioThemes(rc RoleCategory, level ExperienceLevel) []ScenarioTheme {
	var themes []ScenarioTheme
	switch {
	case rc.IsSalesforce():
		themes = []ScenarioTheme{ThemeSalesforceSpecific, ThemeProblemSolving}
	case rc == RoleProgramAnalyst:
		themes = []ScenarioTheme{ThemeAnalystSpecific, ThemeCommunication}
	default:
		themes = []ScenarioTheme{ThemeProblemSolving, ThemeCommunication}
	}
	if level == LevelSenior {
		themes = append(themes, ThemeLeadership)
	}
	return themes
}

func sampleWithoutReplacement(r *rand.Rand, bucket []string, k int) []string {
	if k > len(bucket) {
		k = len(bucket)
	}
	if k <= 0 {
		return nil
	}
	idx := r.Perm(len(bucket))[:k]
	out := make([]string, 0, k)
	for _, i := range idx {
		out = append(out, bucket[i])
	}
	return out
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
