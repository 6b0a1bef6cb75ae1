package jobimport

import (
	"errors"
	"log"
	"net/url"
	"strings"
	"time"

	"talentmate/internal/domain/interview"

	"github.com/gocolly/colly/v2"
)

var (
	ErrInvalidURL = errors.New("invalid job posting url")
	ErrFetch      = errors.New("could not fetch job posting")
)

// Posting is what the importer extracts from a job posting page.
type Posting struct {
	URL          string `json:"url"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	RoleCategory string `json:"role_category"`
}

// Importer fetches a public job posting and infers the role category
// from its title, so recruiters can seed interviews matching the
// posted role.
type Importer struct {
	logger *log.Logger
}

func NewImporter(logger *log.Logger) *Importer {
	if logger == nil {
		logger = log.Default()
	}
	return &Importer{logger: logger}
}

func (i *Importer) Import(rawURL string) (*Posting, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, ErrInvalidURL
	}

	c := colly.NewCollector(colly.AllowedDomains(u.Host))
	c.SetRequestTimeout(15 * time.Second)
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*", Parallelism: 1, Delay: 300 * time.Millisecond})

	var (
		title    string
		desc     strings.Builder
		fetchErr error
	)

	c.OnHTML("h1", func(e *colly.HTMLElement) {
		if title == "" {
			title = strings.TrimSpace(e.Text)
		}
	})
	c.OnHTML("title", func(e *colly.HTMLElement) {
		if title == "" {
			title = strings.TrimSpace(e.Text)
		}
	})
	c.OnHTML("body", func(e *colly.HTMLElement) {
		text := strings.TrimSpace(e.Text)
		if len(text) > 4000 {
			text = text[:4000]
		}
		desc.WriteString(text)
	})
	c.OnError(func(r *colly.Response, err error) {
		fetchErr = err
	})

	if err := c.Visit(u.String()); err != nil {
		i.logger.Printf("JobImport | visit failed url=%s err=%v", u, err)
		return nil, ErrFetch
	}
	c.Wait()

	if fetchErr != nil {
		i.logger.Printf("JobImport | fetch failed url=%s err=%v", u, fetchErr)
		return nil, ErrFetch
	}

	role := interview.ClassifyRole(title)
	category := ""
	if role != interview.RoleNone {
		category = role.DisplayName()
	}

	return &Posting{
		URL:          u.String(),
		Title:        title,
		Description:  desc.String(),
		RoleCategory: category,
	}, nil
}
