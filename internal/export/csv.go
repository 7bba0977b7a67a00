package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"pulsar/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the leaderboard export header row.
var columns = []string{
	"Rank",
	"Submission",
	"Content Type",
	"Creator",
	"Votes",
	"Validation Score",
	"Submitted At",
}

// WriteCSV writes the challenge leaderboard as CSV, BOM-prefixed.
func WriteCSV(w io.Writer, entries []domain.LeaderboardEntry) error {
	if _, err := w.Write(BOM); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return err
	}
	for i := range entries {
		if err := cw.Write(entryToRow(&entries[i])); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func entryToRow(e *domain.LeaderboardEntry) []string {
	return []string{
		strconv.Itoa(e.Rank),
		e.Title,
		e.ContentType,
		e.DisplayName,
		strconv.Itoa(e.Votes),
		strconv.Itoa(e.ValidationScore),
		e.SubmittedAt.Format(time.RFC3339),
	}
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a challenge title for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for Content-Disposition header.
// Format: {sanitized_challenge_title}_leaderboard_{YYYY-MM-DD}.{ext}
func BuildFilename(challengeTitle, ext string) string {
	sanitized := SanitizeFilename(challengeTitle)
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("%s_leaderboard_%s.%s", sanitized, date, ext)
}
