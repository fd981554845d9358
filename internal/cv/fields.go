package cv

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"cv-filter/internal/normalize"
)

// sectionCap bounds how far past a section heading extraction reads when no
// other heading follows.
const sectionCap = 800

var (
	emailRe = regexp.MustCompile(`\b[A-Za-z0-9](?:[A-Za-z0-9._%-]*[A-Za-z0-9])?@[A-Za-z0-9](?:[A-Za-z0-9.-]*[A-Za-z0-9])?\.[A-Za-z]{2,}\b`)

	phoneRes = []*regexp.Regexp{
		regexp.MustCompile(`(?:\+33|0)[1-9](?:[\s.-]?\d{2}){4}`),
		regexp.MustCompile(`\+?\d{1,4}[\s.-]?\(?\d{1,4}\)?[\s.-]?\d{1,4}[\s.-]?\d{1,4}[\s.-]?\d{1,4}`),
		regexp.MustCompile(`\b\d{10}\b`),
		regexp.MustCompile(`\b\d{2}[\s.-]\d{2}[\s.-]\d{2}[\s.-]\d{2}[\s.-]\d{2}\b`),
	}

	nameLineRe   = regexp.MustCompile(`^[A-Za-zÀ-ÿ\s'.-]+$`)
	nameLabelRe  = regexp.MustCompile(`(?i)(?:nom|name|prénom|prenom)\s*:?\s*([A-Za-zÀ-ÿ\s'.-]+)`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

var (
	skillsHeadings = []string{
		"compétences", "compétence", "skills", "savoir-faire", "aptitudes",
	}
	experienceHeadings = []string{
		"expériences professionnelles", "expérience", "experience", "work experience",
		"parcours professionnel", "emplois",
	}
	educationHeadings = []string{
		"formations", "formation", "education", "diplômes", "diplôme", "études",
		"academic", "university", "université", "école", "degree",
	}

	// One case-insensitive pattern per heading. Matching the original text
	// directly keeps byte offsets valid; lowercasing a copy first shifts
	// offsets for runes whose case pair changes UTF-8 length.
	headingRes = compileHeadings(skillsHeadings, experienceHeadings, educationHeadings)
)

func compileHeadings(lists ...[]string) map[string]*regexp.Regexp {
	res := make(map[string]*regexp.Regexp)
	for _, list := range lists {
		for _, heading := range list {
			res[heading] = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(heading))
		}
	}
	return res
}

// Contact is the directly-extractable identity of a CV.
type Contact struct {
	Email string
	Phone string
}

// ExtractFields pulls the candidate name and each CV section out of raw
// document text, ready for the normalization pipeline.
func ExtractFields(text string) normalize.Fields {
	return normalize.Fields{
		Name:           extractName(text),
		SkillsText:     extractSection(text, skillsHeadings, append(experienceHeadings, educationHeadings...)),
		ExperienceText: extractSection(text, experienceHeadings, append(skillsHeadings, educationHeadings...)),
		EducationText:  extractSection(text, educationHeadings, append(skillsHeadings, experienceHeadings...)),
		Description:    text,
	}
}

// ExtractContact finds the first plausible email and phone number.
func ExtractContact(text string) Contact {
	return Contact{
		Email: strings.ToLower(emailRe.FindString(text)),
		Phone: extractPhone(text),
	}
}

// extractName assumes the name sits near the top of the document: a short
// letters-only line of two to four words within the first ten lines. A
// labelled "name:" field is the fallback.
func extractName(text string) string {
	lines := strings.Split(text, "\n")
	limit := len(lines)
	if limit > 10 {
		limit = 10
	}

	for _, line := range lines[:limit] {
		line = strings.TrimSpace(line)
		if len(line) <= 2 || len(line) >= 60 {
			continue
		}
		if !nameLineRe.MatchString(line) {
			continue
		}
		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		lower := strings.ToLower(line)
		if strings.Contains(lower, "cv") || strings.Contains(lower, "curriculum") ||
			strings.Contains(lower, "resume") || strings.Contains(lower, "téléphone") ||
			strings.Contains(lower, "email") || strings.Contains(lower, "adresse") {
			continue
		}
		return line
	}

	if m := nameLabelRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

func extractPhone(text string) string {
	for _, re := range phoneRes {
		m := re.FindString(text)
		if m == "" {
			continue
		}
		digits := 0
		for _, r := range m {
			if r >= '0' && r <= '9' {
				digits++
			}
		}
		if digits >= 8 && digits <= 15 {
			return strings.TrimSpace(m)
		}
	}
	return ""
}

// extractSection returns the text between the first matching heading and the
// nearest following heading of another section, capped at sectionCap bytes.
func extractSection(text string, headings, stopHeadings []string) string {
	for _, heading := range headings {
		loc := headingRes[heading].FindStringIndex(text)
		if loc == nil {
			continue
		}
		start := loc[0]
		end := sectionEnd(text, loc[1], stopHeadings)
		if end <= start {
			continue
		}
		return cleanSection(text[start:end])
	}
	return ""
}

func sectionEnd(text string, startPos int, stopHeadings []string) int {
	end := len(text)
	for _, stop := range stopHeadings {
		if loc := headingRes[stop].FindStringIndex(text[startPos:]); loc != nil && startPos+loc[0] < end {
			end = startPos + loc[0]
		}
	}
	if end > startPos+sectionCap {
		end = startPos + sectionCap
	}
	for end > startPos && end < len(text) && !utf8.RuneStart(text[end]) {
		end--
	}
	return end
}

func cleanSection(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}
