package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/bitrise-steplib/steps-playwright-email-report/report"
)

// Rendering limits.
const (
	MaxListedFailures = 8
	MaxErrorLength    = 400
	shortCommitLength = 7
	ellipsis          = "…"
)

//go:embed templates/email.html.tmpl
var templateFS embed.FS

// Status is the overall result of the CI run, it is either failed or passed.
type Status string

// Statuses ...
const (
	StatusFailed Status = "failed"
	StatusPassed Status = "passed"
)

// ParseStatus maps "failed" to StatusFailed and any other value to StatusPassed.
func ParseStatus(s string) Status {
	if s == string(StatusFailed) {
		return StatusFailed
	}
	return StatusPassed
}

// Metadata describes the CI run the report belongs to.
type Metadata struct {
	Brand      string
	Repository string
	Branch     string
	Commit     string
	Actor      string
	RunURL     string
	Status     Status
	Locale     Locale
}

// Renderer ...
type Renderer interface {
	Render(results report.Results, metadata Metadata) (string, error)
}

type renderer struct {
	tmpl *template.Template
}

// NewRenderer ...
func NewRenderer() (Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/email.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email template: %w", err)
	}
	return &renderer{tmpl: tmpl}, nil
}

type failureView struct {
	Title    string
	Project  string
	File     string
	Duration string
	Error    string
}

type reportView struct {
	Labels     Labels
	Brand      string
	Repository string
	Branch     string
	Commit     string
	Actor      string
	RunURL     string
	Failed     bool

	Summary     report.Summary
	Failures    []failureView
	FailedCount int
}

// Render builds the HTML email. The output only depends on its arguments.
func (r renderer) Render(results report.Results, metadata Metadata) (string, error) {
	view := reportView{
		Labels:      LabelsFor(metadata.Locale),
		Brand:       metadata.Brand,
		Repository:  metadata.Repository,
		Branch:      metadata.Branch,
		Commit:      ShortCommit(metadata.Commit),
		Actor:       metadata.Actor,
		RunURL:      metadata.RunURL,
		Failed:      metadata.Status == StatusFailed,
		Summary:     results.Summary,
		FailedCount: results.Summary.Failed,
	}

	for _, failure := range results.Failures(MaxListedFailures) {
		item := failureView{
			Title:   failure.Title,
			Project: failure.Project,
			File:    failure.File,
			Error:   Truncate(failure.ErrorMessage, MaxErrorLength),
		}
		if failure.HasDuration && failure.Duration > 0 {
			item.Duration = fmt.Sprintf("%.2fs", failure.Duration.Seconds())
		}
		view.Failures = append(view.Failures, item)
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("failed to execute email template: %w", err)
	}
	return buf.String(), nil
}

// ShortCommit returns the first 7 characters of the commit hash.
func ShortCommit(commit string) string {
	runes := []rune(commit)
	if len(runes) <= shortCommitLength {
		return commit
	}
	return string(runes[:shortCommitLength])
}

// Truncate cuts s after limit characters and marks the cut with an ellipsis.
func Truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + ellipsis
}
