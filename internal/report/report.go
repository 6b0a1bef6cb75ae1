package report

import (
	"context"
	"fmt"
	"html/template"
	"log"
	"strings"
	"time"

	"talentmate/internal/domain/session"
	"talentmate/internal/usecase"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// Generator renders the interview report HTML and prints it to PDF
// with headless Chrome.
type Generator struct {
	timeout time.Duration
	logger  *log.Logger
}

func NewGenerator(timeout time.Duration, logger *log.Logger) *Generator {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Generator{timeout: timeout, logger: logger}
}

type reportData struct {
	GeneratedAt string
	JobRole     string
	Results     *usecase.SessionResults
	Questions   []questionEntry
	Skills      string
}

type questionEntry struct {
	Number         int
	Question       string
	Type           string
	Answer         string
	Score          int
	Feedback       string
	AreasToImprove []string
}

// PDF builds the report for a session and returns the PDF bytes.
func (g *Generator) PDF(ctx context.Context, s *session.Session, results *usecase.SessionResults) ([]byte, error) {
	html, err := renderHTML(s, results)
	if err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	return g.printToPDF(ctx, html)
}

func renderHTML(s *session.Session, results *usecase.SessionResults) (string, error) {
	entries := make([]questionEntry, 0, len(s.Questions))
	for i, q := range s.Questions {
		e := questionEntry{
			Number:   i + 1,
			Question: q.Question,
			Type:     string(q.Type),
			Answer:   s.Answers[q.ID],
		}
		if sc, ok := s.Scores[q.ID]; ok {
			e.Score = sc.Score
			e.Feedback = sc.Feedback
			e.AreasToImprove = sc.AreasToImprove
		}
		entries = append(entries, e)
	}

	data := reportData{
		GeneratedAt: time.Now().Format("January 2, 2006 15:04"),
		JobRole:     s.JobRole,
		Results:     results,
		Questions:   entries,
		Skills:      strings.Join(results.SkillsIdentified, ", "),
	}

	var sb strings.Builder
	if err := reportTemplate.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (g *Generator) printToPDF(ctx context.Context, html string) ([]byte, error) {
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, g.timeout)
	defer cancelRun()

	var pdf []byte
	err := chromedp.Run(runCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("print to pdf: %w", err)
	}
	return pdf, nil
}

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Helvetica, Arial, sans-serif; color: #1a1a2e; margin: 40px; }
  h1 { color: #16213e; border-bottom: 3px solid #0f3460; padding-bottom: 8px; }
  h2 { color: #0f3460; margin-top: 28px; }
  .meta { color: #666; font-size: 13px; }
  .summary { display: flex; gap: 24px; margin: 16px 0; }
  .stat { background: #f4f6fb; border-radius: 8px; padding: 12px 20px; text-align: center; }
  .stat .value { font-size: 26px; font-weight: bold; color: #0f3460; }
  .stat .label { font-size: 12px; color: #666; }
  .question { border: 1px solid #e0e4ee; border-radius: 8px; padding: 14px 18px; margin: 12px 0; page-break-inside: avoid; }
  .question .q { font-weight: bold; }
  .question .type { font-size: 11px; text-transform: uppercase; color: #888; }
  .answer { background: #fafbfd; border-left: 3px solid #0f3460; padding: 8px 12px; margin: 8px 0; white-space: pre-wrap; }
  .improve li { font-size: 13px; }
</style>
</head>
<body>
  <h1>Interview Performance Report</h1>
  <p class="meta">Position: {{.JobRole}} &middot; Generated {{.GeneratedAt}}</p>

  <h2>Overall Performance</h2>
  <div class="summary">
    <div class="stat"><div class="value">{{printf "%.1f" .Results.OverallScore}}</div><div class="label">Average Score</div></div>
    <div class="stat"><div class="value">{{.Results.MaxScore}}</div><div class="label">Best Score</div></div>
    <div class="stat"><div class="value">{{.Results.MinScore}}</div><div class="label">Lowest Score</div></div>
    <div class="stat"><div class="value">{{.Results.AnsweredQuestions}}/{{.Results.TotalQuestions}}</div><div class="label">Answered</div></div>
  </div>

  {{if .Skills}}<h2>Skills Identified</h2><p>{{.Skills}}</p>{{end}}

  {{if .Results.ImprovementSuggestions}}
  <h2>Improvement Suggestions</h2>
  <ul class="improve">
    {{range .Results.ImprovementSuggestions}}<li>{{.}}</li>{{end}}
  </ul>
  {{end}}

  <h2>Question Analysis</h2>
  {{range .Questions}}
  <div class="question">
    <div class="type">{{.Type}}</div>
    <div class="q">Q{{.Number}}. {{.Question}}</div>
    {{if .Answer}}<div class="answer">{{.Answer}}</div>
    <div>Score: <strong>{{.Score}}/100</strong> {{.Feedback}}</div>
    {{if .AreasToImprove}}<ul class="improve">{{range .AreasToImprove}}<li>{{.}}</li>{{end}}</ul>{{end}}
    {{else}}<div class="meta">Not answered.</div>{{end}}
  </div>
  {{end}}
</body>
</html>`))
