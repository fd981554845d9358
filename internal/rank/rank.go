// Package rank orders candidates by textual similarity between their CV
// content and a job description, using TF-IDF weighted cosine similarity.
package rank

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
	"time"

	"cv-filter/internal/normalize"
)

// maxTopN bounds how many rankings a single request may ask for.
const maxTopN = 20

var (
	ErrEmptyDescription = errors.New("job description is empty")

	nonWordRe = regexp.MustCompile(`[^a-zA-ZÀ-ÿ0-9\s]`)
)

// stopwords are high-frequency French and English words that carry no
// ranking signal.
var stopwords = map[string]struct{}{
	"le": {}, "de": {}, "et": {}, "à": {}, "un": {}, "il": {}, "être": {},
	"en": {}, "avoir": {}, "que": {}, "pour": {}, "dans": {}, "ce": {},
	"son": {}, "une": {}, "sur": {}, "avec": {}, "ne": {}, "se": {},
	"pas": {}, "tout": {}, "plus": {}, "par": {}, "grand": {},
	"the": {}, "be": {}, "to": {}, "of": {}, "and": {}, "a": {}, "in": {},
	"that": {}, "have": {}, "i": {}, "it": {}, "for": {}, "not": {},
	"on": {}, "with": {}, "he": {}, "as": {}, "you": {}, "do": {}, "at": {},
}

// Ranking is one candidate's similarity to a job description, with its
// 1-based position after sorting.
type Ranking struct {
	Candidate       *normalize.Candidate `json:"candidate"`
	SimilarityScore float64              `json:"similarity_score"`
	Rank            int                  `json:"rank"`
	RankedAt        time.Time            `json:"ranked_at"`
}

// Ranker computes TF-IDF rankings. Stateless apart from its clock.
type Ranker struct {
	now func() time.Time
}

func NewRanker() *Ranker {
	return &Ranker{now: time.Now}
}

func NewRankerAt(now func() time.Time) *Ranker {
	if now == nil {
		now = time.Now
	}
	return &Ranker{now: now}
}

// Rank scores every candidate against the job description and returns the
// topN best, ranks assigned from 1. The description is document zero of the
// TF-IDF corpus so its term weights share the candidates' IDF scale.
func (r *Ranker) Rank(jobDescription string, candidates []*normalize.Candidate, topN int) ([]Ranking, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return nil, ErrEmptyDescription
	}
	if topN <= 0 || topN > maxTopN {
		return nil, fmt.Errorf("topN must be between 1 and %d, got %d", maxTopN, topN)
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	docs := make([][]string, 0, len(candidates)+1)
	docs = append(docs, tokenize(jobDescription))
	for _, c := range candidates {
		docs = append(docs, tokenize(candidateText(c)))
	}

	vectors := tfidfVectors(docs)

	rankedAt := r.now()
	rankings := make([]Ranking, 0, len(candidates))
	for i, c := range candidates {
		rankings = append(rankings, Ranking{
			Candidate:       c,
			SimilarityScore: cosine(vectors[0], vectors[i+1]),
			RankedAt:        rankedAt,
		})
	}

	sort.SliceStable(rankings, func(i, j int) bool {
		return rankings[i].SimilarityScore > rankings[j].SimilarityScore
	})

	if topN < len(rankings) {
		rankings = rankings[:topN]
	}
	for i := range rankings {
		rankings[i].Rank = i + 1
	}
	return rankings, nil
}

// Best returns the single closest candidate, or nil when there are none.
func (r *Ranker) Best(jobDescription string, candidates []*normalize.Candidate) (*Ranking, error) {
	rankings, err := r.Rank(jobDescription, candidates, 1)
	if err != nil {
		return nil, err
	}
	if len(rankings) == 0 {
		return nil, nil
	}
	return &rankings[0], nil
}

// candidateText concatenates the searchable sections of a candidate.
func candidateText(c *normalize.Candidate) string {
	parts := []string{
		c.SkillsText,
		c.ExperienceText,
		c.EducationText,
		c.Name,
	}
	var b strings.Builder
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			continue
		}
		b.WriteString(" ")
		b.WriteString(p)
	}
	return b.String()
}

// tokenize lowercases, strips punctuation, and drops stopwords and words of
// two characters or fewer.
func tokenize(text string) []string {
	text = strings.ToLower(text)
	text = nonWordRe.ReplaceAllString(text, " ")

	var tokens []string
	for _, w := range strings.Fields(text) {
		if len([]rune(w)) <= 2 {
			continue
		}
		if _, stop := stopwords[w]; stop {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}

// tfidfVectors builds one sparse term->weight vector per document, with
// weight (1 + log tf) * log(N / df).
func tfidfVectors(docs [][]string) []map[string]float64 {
	termFreqs := make([]map[string]int, len(docs))
	docFreqs := make(map[string]int)
	for i, doc := range docs {
		tf := make(map[string]int, len(doc))
		for _, w := range doc {
			tf[w]++
		}
		termFreqs[i] = tf
		for w := range tf {
			docFreqs[w]++
		}
	}

	n := float64(len(docs))
	vectors := make([]map[string]float64, len(docs))
	for i, tf := range termFreqs {
		vec := make(map[string]float64, len(tf))
		for w, freq := range tf {
			vec[w] = (1 + math.Log(float64(freq))) * math.Log(n/float64(docFreqs[w]))
		}
		vectors[i] = vec
	}
	return vectors
}

func cosine(a, b map[string]float64) float64 {
	var dot, normA, normB float64
	for w, va := range a {
		if vb, ok := b[w]; ok {
			dot += va * vb
		}
		normA += va * va
	}
	for _, vb := range b {
		normB += vb * vb
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
