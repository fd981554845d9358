package normalize

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

const (
	// fuzzyAcceptScore is the minimum similarity for a token to be mapped
	// onto a vocabulary alias, and for two skills to count as duplicates.
	fuzzyAcceptScore = 85

	minTokenLen = 2
)

var (
	skillLabelRe    = regexp.MustCompile(`compétences identifiées:|technical skills:|skills:|compétences:`)
	skillSplitRe    = regexp.MustCompile(`[,;•\n\r\t|]+`)
	parentheticalRe = regexp.MustCompile(`\([^)]*\)`)
)

// SkillCanonicalizer maps free-text skill tokens onto a controlled vocabulary,
// falling back to fuzzy alias matching and finally to the token itself.
type SkillCanonicalizer struct {
	vocab *Vocabulary
	sim   Similarity
}

func NewSkillCanonicalizer(vocab *Vocabulary, sim Similarity) (*SkillCanonicalizer, error) {
	if vocab == nil || vocab.Len() == 0 {
		return nil, ErrEmptyVocabulary
	}
	if sim == nil {
		sim = LevenshteinSimilarity
	}
	return &SkillCanonicalizer{vocab: vocab, sim: sim}, nil
}

// Canonicalize splits raw skill text into tokens and resolves each to a
// canonical name. Blank input yields an empty set, never an error. The result
// is deduplicated and sorted for stable downstream output.
func (c *SkillCanonicalizer) Canonicalize(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	text := strings.ToLower(raw)
	text = skillLabelRe.ReplaceAllString(text, "")

	seen := make(map[string]struct{})
	for _, token := range skillSplitRe.Split(text, -1) {
		token = strings.TrimSpace(token)
		if len(token) < minTokenLen {
			continue
		}
		token = strings.TrimSpace(parentheticalRe.ReplaceAllString(token, ""))
		if len(token) < minTokenLen {
			continue
		}
		seen[c.resolve(token)] = struct{}{}
	}

	if len(seen) == 0 {
		return nil
	}

	skills := make([]string, 0, len(seen))
	for s := range seen {
		skills = append(skills, s)
	}
	sort.Strings(skills)
	return skills
}

// CanonicalizeText is Canonicalize with a sorted ", "-joined result, matching
// the shape the tabular outputs expect.
func (c *SkillCanonicalizer) CanonicalizeText(raw string) string {
	return strings.Join(c.Canonicalize(raw), ", ")
}

func (c *SkillCanonicalizer) resolve(token string) string {
	if canonical, ok := c.vocab.Lookup(token); ok {
		return canonical
	}

	// Fuzzy fallback over aliases in vocabulary order; ties keep the
	// earliest entry.
	best := ""
	bestScore := 0.0
	for _, e := range c.vocab.Entries() {
		if score := c.sim(token, e.Alias); score > bestScore {
			bestScore = score
			best = e.Canonical
		}
	}
	if bestScore >= fuzzyAcceptScore {
		return best
	}

	// Unknown tokens survive as ad-hoc skills in display form.
	return titleCase(token)
}

// Dedupe collapses near-duplicate skills in an already-split list. It walks
// left to right and drops a skill whose similarity to any accepted skill
// exceeds the cutoff; first occurrence wins. Greedy O(n²), fine for the tens
// of skills a single record carries.
func (c *SkillCanonicalizer) Dedupe(skills []string) []string {
	var unique []string
	for _, skill := range skills {
		skill = strings.TrimSpace(skill)
		if skill == "" {
			continue
		}
		dup := false
		for _, accepted := range unique {
			if c.sim(strings.ToLower(skill), strings.ToLower(accepted)) > fuzzyAcceptScore {
				dup = true
				break
			}
		}
		if !dup {
			unique = append(unique, skill)
		}
	}
	return unique
}

// titleCase capitalizes the first letter of every word and lowercases the
// rest, like the tabular outputs' display form.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}
