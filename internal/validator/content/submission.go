package content

import (
	"fmt"
	"strconv"
	"strings"

	"pulsar/internal/domain"
)

// Submission is the document the validation engine scores. It arrives as the
// JSON body of a validation or submit request and is never persisted in this
// form; field names follow the frontend wire contract.
type Submission struct {
	ContentType  domain.ContentType     `json:"contentType"`
	Title        string                 `json:"title"`
	Description  string                 `json:"description"`
	Content      string                 `json:"content"`
	Metadata     Metadata               `json:"metadata"`
	ChallengeID  string                 `json:"challengeId"`
	UserID       string                 `json:"userId"`
	CustomFields map[string]interface{} `json:"customFields"`
	Tags         []string               `json:"tags"`
}

// Metadata holds the optional technical properties of the content payload.
// Numeric fields are pointers so "absent" and "zero" stay distinguishable.
type Metadata struct {
	Duration      *float64 `json:"duration,omitempty"`
	Resolution    string   `json:"resolution,omitempty"`
	FileSizeBytes *int64   `json:"fileSizeBytes,omitempty"`
	Format        string   `json:"format,omitempty"`
}

// ParseResolution parses a "WxH" resolution string.
func ParseResolution(s string) (width, height int, err error) {
	parts := strings.SplitN(strings.ToLower(strings.TrimSpace(s)), "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed resolution %q", s)
	}
	width, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("malformed resolution %q: %w", s, err)
	}
	height, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("malformed resolution %q: %w", s, err)
	}
	return width, height, nil
}
