package prompt

import (
	"regexp"
	"strings"
)

var segmentDelimiter = regexp.MustCompile(`(?m)^\s*-{3,}\s*$`)

// Segments shorter than this are treated as noise (stray numbering,
// empty lines between delimiters) rather than a usable reply.
const minSegmentLen = 10

// SplitThree cuts a raw completion reply into the three response
// variants the neuro-responses endpoint promises. If the reply does not
// yield three usable segments, the full text is returned three times;
// degraded output is preferred over a failure here.
func SplitThree(text string) [3]string {
	parts := segmentDelimiter.Split(text, -1)

	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if len([]rune(trimmed)) >= minSegmentLen {
			segments = append(segments, trimmed)
		}
	}

	if len(segments) < 3 {
		return [3]string{text, text, text}
	}
	return [3]string{segments[0], segments[1], segments[2]}
}
