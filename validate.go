package brochure

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate checks that a dashboard has everything its views need.
func (d Dashboard) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("dashboard name is required: %w", ErrValidation)
	}
	for i, item := range d.FAQ {
		if strings.TrimSpace(item.Question) == "" {
			return fmt.Errorf("faq %d: question is required: %w", i, ErrValidation)
		}
		if strings.TrimSpace(item.Answer) == "" {
			return fmt.Errorf("faq %d: answer is required: %w", i, ErrValidation)
		}
	}
	for i, c := range d.Callouts {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("callout %d: %w", i, err)
		}
	}
	return nil
}

// Validate checks a callout's title, label, link target and accent color.
func (c Callout) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("title is required: %w", ErrValidation)
	}
	if strings.TrimSpace(c.Label) == "" {
		return fmt.Errorf("label is required: %w", ErrValidation)
	}
	u, err := url.Parse(c.URL)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", c.URL, ErrValidation)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url must be absolute http(s), got %q: %w", c.URL, ErrValidation)
	}
	if u.Host == "" {
		return fmt.Errorf("url has no host, got %q: %w", c.URL, ErrValidation)
	}
	if !ValidColor(c.Accent) {
		return fmt.Errorf("accent must be in [-1, 15], got %d: %w", c.Accent, ErrValidation)
	}
	return nil
}
