package normalize

import (
	"regexp"
	"strconv"
	"time"
)

const (
	// maxExperienceYears bounds the estimate against parsing noise in the
	// date-range tier.
	maxExperienceYears = 50.0

	// minCareerYear guards the date-range tier against OCR/typo years.
	minCareerYear = 1990
)

var (
	directPhraseRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d+)\s*\+?\s*(?:years?|ans?|yrs?)\s*(?:of\s*)?(?:experience|expérience)`),
		regexp.MustCompile(`(?i)(\d+)\s*\+?\s*(?:years?|ans?|yrs?)`),
		regexp.MustCompile(`(?i)experience[:\s]+(\d+)`),
	}
	yearRangeRe  = regexp.MustCompile(`(?i)(\d{4})\s*[-–—]\s*(?:(\d{4})|` + presentWords + `)`)
	looseIntRe   = regexp.MustCompile(`\b(\d+)\b`)
	alreadyNorm  = regexp.MustCompile(`(?i)(\d{4})\s+to\s+(?:(\d{4})|present)`)
	rangeSources = []*regexp.Regexp{yearRangeRe, alreadyNorm}
)

// ExperienceEstimator derives total years of experience from free text using
// an ordered list of strategies; the first one that produces a value wins.
type ExperienceEstimator struct {
	now func() time.Time
}

func NewExperienceEstimator() *ExperienceEstimator {
	return &ExperienceEstimator{now: time.Now}
}

// NewExperienceEstimatorAt pins the estimator's clock, used by tests and by
// reprocessing runs that must be reproducible.
func NewExperienceEstimatorAt(now func() time.Time) *ExperienceEstimator {
	if now == nil {
		now = time.Now
	}
	return &ExperienceEstimator{now: now}
}

// Estimate returns a value in [0, 50]. Tiers, in priority order: an explicit
// "<N> years of experience" phrase, a sum over parsed year ranges, and a loose
// first-plausible-integer fallback. Malformed text degrades to 0.
func (e *ExperienceEstimator) Estimate(text string) float64 {
	if text == "" {
		return 0
	}

	strategies := []func(string) (float64, bool){
		e.fromDirectPhrase,
		e.fromDateRanges,
		e.fromLooseNumber,
	}
	for _, strategy := range strategies {
		if years, ok := strategy(text); ok {
			return clampYears(years)
		}
	}
	return 0
}

func (e *ExperienceEstimator) fromDirectPhrase(text string) (float64, bool) {
	for _, re := range directPhraseRes {
		if m := re.FindStringSubmatch(text); m != nil {
			if years, err := strconv.ParseFloat(m[1], 64); err == nil {
				return years, true
			}
		}
	}
	return 0, false
}

func (e *ExperienceEstimator) fromDateRanges(text string) (float64, bool) {
	currentYear := e.now().Year()
	total := 0.0

	for _, re := range rangeSources {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			start, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			end := currentYear
			if m[2] != "" {
				if end, err = strconv.Atoi(m[2]); err != nil {
					continue
				}
			}
			// Inverted or implausible pairs are noise, not errors.
			if start >= minCareerYear && start <= end && end <= currentYear {
				total += float64(end - start)
			}
		}
		if total > 0 {
			return total, true
		}
	}
	return 0, false
}

func (e *ExperienceEstimator) fromLooseNumber(text string) (float64, bool) {
	for _, m := range looseIntRe.FindAllStringSubmatch(text, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if n >= 0 && n <= int(maxExperienceYears) {
			return float64(n), true
		}
	}
	return 0, false
}

func clampYears(years float64) float64 {
	if years < 0 {
		return 0
	}
	if years > maxExperienceYears {
		return maxExperienceYears
	}
	return years
}
