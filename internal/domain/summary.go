package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Summary is the AI-generated digest of a transcript: a short title and a
// bullet-point body that may contain markdown checkbox action items.
// At most one Summary exists per transcript (upsert semantics).
type Summary struct {
	ID           uuid.UUID
	TranscriptID uuid.UUID
	Title        string
	Body         string
	Notes        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SummaryRequest carries the input for summary generation. RawText is
// always set; TranscriptID is set only when a server-side transcript
// exists, in which case the generated summary is persisted against it.
type SummaryRequest struct {
	TranscriptID *uuid.UUID
	RawText      string
	Title        string
	Notes        string
}

// SummaryResult is the outcome of one summarization call.
type SummaryResult struct {
	Title string
	Body  string
}

// checkboxLine matches a markdown checkbox item: "- [ ]", "* [x]", "- [X]".
var checkboxLine = regexp.MustCompile(`^\s*[-*] \[[ xX]\]`)

// ToggleCheckbox flips the Nth checkbox occurrence (0-indexed, in document
// order) in body between checked and unchecked, leaving every other
// character unchanged. Returns the body unmodified with ok=false if fewer
// than index+1 checkboxes exist.
func ToggleCheckbox(body string, index int) (string, bool) {
	if index < 0 {
		return body, false
	}

	lines := strings.Split(body, "\n")
	count := -1
	toggled := false

	for i, line := range lines {
		if !checkboxLine.MatchString(line) {
			continue
		}
		count++
		if count != index {
			continue
		}
		switch {
		case strings.Contains(line, "[x]"):
			lines[i] = strings.Replace(line, "[x]", "[ ]", 1)
		case strings.Contains(line, "[X]"):
			lines[i] = strings.Replace(line, "[X]", "[ ]", 1)
		default:
			lines[i] = strings.Replace(line, "[ ]", "[x]", 1)
		}
		toggled = true
		break
	}

	if !toggled {
		return body, false
	}
	return strings.Join(lines, "\n"), true
}

// CountCheckboxes returns the number of checkbox items in body.
func CountCheckboxes(body string) int {
	n := 0
	for _, line := range strings.Split(body, "\n") {
		if checkboxLine.MatchString(line) {
			n++
		}
	}
	return n
}
