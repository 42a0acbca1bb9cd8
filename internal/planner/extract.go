package planner

import (
	"regexp"
	"strings"
)

// Model responses routinely wrap their JSON in markdown code fences, with or
// without a language hint and in mixed case.
var (
	openFenceRe  = regexp.MustCompile("(?i)^```(?:json)?\\s*")
	closeFenceRe = regexp.MustCompile("\\s*```$")
)

// ExtractJSON strips a surrounding markdown code fence and whitespace from a
// raw model response so it can be handed to the JSON parser. Input without a
// fence passes through trimmed, so the function is idempotent. It never
// validates that the result actually parses; that is the caller's job.
func ExtractJSON(s string) string {
	s = strings.TrimSpace(s)
	s = openFenceRe.ReplaceAllString(s, "")
	s = closeFenceRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
