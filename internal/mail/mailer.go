package mail

import (
	"context"
	"fmt"
	"log"
)

// LogMailer writes outgoing mail to the log instead of a delivery
// service. It stands in until a real provider is wired up.
type LogMailer struct {
	logger *log.Logger
	from   string
}

func NewLogMailer(logger *log.Logger, from string) *LogMailer {
	if logger == nil {
		logger = log.Default()
	}
	if from == "" {
		from = "no-reply@talentmate.local"
	}
	return &LogMailer{logger: logger, from: from}
}

func (m *LogMailer) SendDecision(ctx context.Context, to, candidateName string, approved bool, dateInfo, recruiterResponse string) {
	status := "DECLINED"
	if approved {
		status = "ACCEPTED"
	}
	subject := fmt.Sprintf("Interview Schedule Update - %s", status)
	if recruiterResponse == "" {
		recruiterResponse = "No additional message provided."
	}

	body := fmt.Sprintf(
		"Dear %s,\n\nYour interview request has been %s.\n\n%s\n\nRecruiter Response:\n%s\n\nBest regards,\nTalentMate Team",
		candidateName, status, dateInfo, recruiterResponse,
	)

	m.logger.Printf("Mail | from=%s to=%s subject=%q\n%s", m.from, to, subject, body)
}
