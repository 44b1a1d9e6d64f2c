// Package json reads and writes dashboards and rendered documents as JSON.
package json

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/brochure"
)

// envelope is the v1 wire format for a dashboard.
type envelope struct {
	Version  int          `json:"version"`
	Name     string       `json:"name"`
	Hero     heroDTO      `json:"hero"`
	FAQ      []faqDTO     `json:"faq"`
	Callouts []calloutDTO `json:"callouts"`
	Footer   footerDTO    `json:"footer"`
}

type heroDTO struct {
	Headline    string `json:"headline"`
	Subheadline string `json:"subheadline,omitempty"`
}

type faqDTO struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type calloutDTO struct {
	Title     string `json:"title"`
	Highlight string `json:"highlight,omitempty"`
	Body      string `json:"body,omitempty"`
	Label     string `json:"label"`
	URL       string `json:"url"`
	Source    string `json:"source,omitempty"`
	Accent    *int   `json:"accent,omitempty"`
}

type footerDTO struct {
	Text string `json:"text"`
}

// MarshalDashboard serializes a Dashboard to JSON in v1 envelope format.
func MarshalDashboard(d brochure.Dashboard) ([]byte, error) {
	env := envelope{
		Version:  1,
		Name:     d.Name,
		Hero:     heroDTO{Headline: d.Hero.Headline, Subheadline: d.Hero.Subheadline},
		FAQ:      make([]faqDTO, len(d.FAQ)),
		Callouts: make([]calloutDTO, len(d.Callouts)),
		Footer:   footerDTO{Text: d.Footer.Text},
	}
	for i, item := range d.FAQ {
		env.FAQ[i] = faqDTO{Question: item.Question, Answer: item.Answer}
	}
	for i, c := range d.Callouts {
		accent := c.Accent
		env.Callouts[i] = calloutDTO{
			Title:     c.Title,
			Highlight: c.Highlight,
			Body:      c.Body,
			Label:     c.Label,
			URL:       c.URL,
			Source:    c.Source,
			Accent:    &accent,
		}
	}
	return json.MarshalIndent(env, "", "  ")
}

// UnmarshalDashboard deserializes a Dashboard from JSON in v1 envelope
// format. A callout without an accent gets no color (-1).
func UnmarshalDashboard(data []byte) (brochure.Dashboard, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return brochure.Dashboard{}, fmt.Errorf("unmarshal envelope: %w", err)
	}
	if env.Version != 1 {
		return brochure.Dashboard{}, fmt.Errorf("unsupported envelope version: %d", env.Version)
	}
	d := brochure.Dashboard{
		Name:   env.Name,
		Hero:   brochure.Hero{Headline: env.Hero.Headline, Subheadline: env.Hero.Subheadline},
		Footer: brochure.Footer{Text: env.Footer.Text},
	}
	if len(env.FAQ) > 0 {
		d.FAQ = make([]brochure.FAQItem, len(env.FAQ))
		for i, dto := range env.FAQ {
			d.FAQ[i] = brochure.FAQItem{Question: dto.Question, Answer: dto.Answer}
		}
	}
	if len(env.Callouts) > 0 {
		d.Callouts = make([]brochure.Callout, len(env.Callouts))
		for i, dto := range env.Callouts {
			accent := -1
			if dto.Accent != nil {
				accent = *dto.Accent
			}
			d.Callouts[i] = brochure.Callout{
				Title:     dto.Title,
				Highlight: dto.Highlight,
				Body:      dto.Body,
				Label:     dto.Label,
				URL:       dto.URL,
				Source:    dto.Source,
				Accent:    accent,
			}
		}
	}
	return d, nil
}

// Save writes a Dashboard to a JSON file, creating parent directories as
// needed.
func Save(path string, d brochure.Dashboard) error {
	data, err := MarshalDashboard(d)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Load reads a Dashboard from a JSON file.
func Load(path string) (brochure.Dashboard, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return brochure.Dashboard{}, fmt.Errorf("read file: %w", err)
	}
	return UnmarshalDashboard(data)
}
