package normalize

import (
	"regexp"
	"strings"
)

// presentWords are the phrases that stand in for an open-ended range.
const presentWords = `present|now|current|actuel|aujourd'hui`

type dateRule struct {
	re   *regexp.Regexp
	repl string
}

// dateRules rewrite the common date-range shapes into one canonical form.
// Order matters: the more specific month/year shapes must run before the bare
// year-to-year shape. The rules are applied in sequence to the same string so
// a text mixing several shapes gets every range normalized; the "to" in the
// output is not re-matchable by any rule, so the cascade cannot corrupt
// earlier rewrites.
var dateRules = []dateRule{
	{regexp.MustCompile(`(?i)(\d{2})/(\d{4})\s*[-–—]\s*(\d{2})/(\d{4})`), "${2}-${1} to ${4}-${3}"},
	{regexp.MustCompile(`(?i)(\d{4})/(\d{2})\s*[-–—]\s*(\d{4})/(\d{2})`), "${1}-${2} to ${3}-${4}"},
	{regexp.MustCompile(`(?i)(\d{4})\s*[-–—]\s*(\d{4})`), "${1} to ${2}"},
	{regexp.MustCompile(`(?i)(\d{2})/(\d{4})\s*[-–—]\s*(?:` + presentWords + `)`), "${2}-${1} to Present"},
	{regexp.MustCompile(`(?i)(\d{4})\s*[-–—]\s*(?:` + presentWords + `)`), "${1} to Present"},
}

// NormalizeDateRanges rewrites varied date-range spellings (hyphen, en-dash
// and em-dash variants, month/year orders, "present" markers) into a single
// canonical "start to end" form. Blank input yields "".
func NormalizeDateRanges(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	for _, rule := range dateRules {
		text = rule.re.ReplaceAllString(text, rule.repl)
	}
	return text
}
