package normalize

import (
	"regexp"
	"strings"
)

// salaryRes are tried in order; the first match wins and is returned
// verbatim. Ranges come before single amounts so "45k-55k EUR" is not
// truncated to "45k".
var salaryRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+k?)\s*[-–]\s*(\d+k?)\s*(€|eur|euro|dollars?|\$|usd)`),
	regexp.MustCompile(`(?i)salary\s*expectation:?\s*(\d+k?)\s*(€|eur|euro|dollars?|\$|usd)`),
	regexp.MustCompile(`(?i)expected\s*salary:?\s*(\d+k?)\s*(€|eur|euro|dollars?|\$|usd)`),
	regexp.MustCompile(`(?i)(\d+k?)\s*(€|eur|euro|dollars?|\$|usd)`),
}

// ExtractSalary pulls a salary expectation out of free text. It returns the
// matched fragment as written, or "" when nothing salary-shaped appears.
func ExtractSalary(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	for _, re := range salaryRes {
		if m := re.FindString(text); m != "" {
			return m
		}
	}
	return ""
}
