package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"steamcache/internal/domain/constants"
)

// IsNumericID reports whether value is a Steam application id.
func IsNumericID(value string) bool {
	if value == "" {
		return false
	}
	_, err := strconv.ParseUint(value, 10, 64)

	return err == nil
}

// NormalizeLanguage lower-cases a stored review language, "unknown" when absent.
func NormalizeLanguage(language string) string {
	language = strings.ToLower(strings.TrimSpace(language))
	if language == "" {
		return constants.LanguageUnknown
	}

	return language
}

// NormalizeLanguageFilter lower-cases a requested language, "all" when absent.
func NormalizeLanguageFilter(language string) string {
	language = strings.ToLower(strings.TrimSpace(language))
	if language == "" {
		return constants.LanguageAll
	}

	return language
}

// SplitKeywords splits on commas and whitespace, lower-cases and drops duplicates.
func SplitKeywords(raw ...string) []string {
	seen := make(map[string]struct{})
	keywords := make([]string, 0)

	for _, part := range raw {
		fields := strings.FieldsFunc(part, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
		for _, field := range fields {
			keyword := strings.ToLower(field)
			if _, ok := seen[keyword]; ok {
				continue
			}
			seen[keyword] = struct{}{}
			keywords = append(keywords, keyword)
		}
	}

	return keywords
}

// ClampPageSize returns fallback for non-positive sizes and caps the result at maxSize.
func ClampPageSize(size, fallback, maxSize int) int {
	if size <= 0 {
		size = fallback
	}
	if maxSize > 0 && size > maxSize {
		size = maxSize
	}

	return size
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
