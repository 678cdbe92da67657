package services

import (
	"strings"
)

// ValidationResult is the outcome of a content check. An empty Warning means the text passed.
type ValidationResult struct {
	Field   string
	Warning string
}

func (r ValidationResult) OK() bool {
	return r.Warning == ""
}

// Err converts a failed result into a *ValidationError, nil otherwise.
func (r ValidationResult) Err() error {
	if r.OK() {
		return nil
	}
	return &ValidationError{Field: r.Field, Message: r.Warning}
}

// ContentFilter rejects comment text containing any forbidden word.
type ContentFilter struct {
	words   []string
	warning string
}

func NewContentFilter(words []string, warning string) *ContentFilter {
	f := &ContentFilter{warning: warning}
	for _, w := range words {
		// an empty word would match every text
		if w = strings.TrimSpace(w); w != "" {
			f.words = append(f.words, w)
		}
	}
	return f
}

// Validate does a case-sensitive substring scan of text.
func (f *ContentFilter) Validate(text string) ValidationResult {
	for _, w := range f.words {
		if strings.Contains(text, w) {
			return ValidationResult{Field: "text", Warning: f.warning}
		}
	}
	return ValidationResult{Field: "text"}
}
