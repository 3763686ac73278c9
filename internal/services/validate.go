package services

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/tbourn/go-games-backend/internal/utils"
)

// Path parameter names as they appear in routes and error messages.
const (
	ParamReviewID = "review_id"
	ParamSlug     = "slug"
)

const reasonNotASlug = "is not a valid slug"

// ParseID strictly parses raw as a positive integer identifier. Any failure is
// an InvalidParameter for param; no lookup should follow.
func ParseID(param, raw string) (int64, error) {
	id, err := utils.ParsePositiveID(raw)
	if err != nil {
		return 0, NotANumber(param)
	}
	return id, nil
}

// NormalizeSlug validates a category slug and returns its NFC form. Slugs
// contain spaces and punctuation ("children's games"), so only emptiness and
// encoding are checked.
func NormalizeSlug(raw string) (string, error) {
	if !utf8.ValidString(raw) || strings.TrimSpace(raw) == "" {
		return "", InvalidParameter(ParamSlug, reasonNotASlug)
	}
	return norm.NFC.String(raw), nil
}
