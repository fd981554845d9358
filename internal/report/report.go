// Package report summarizes a batch of normalized candidates: field
// coverage, skill frequencies, experience statistics and the education
// distribution.
package report

import (
	"fmt"
	"io"
	"sort"

	"cv-filter/internal/normalize"
)

const topSkillCount = 10

// SkillCount is one skill with its occurrence count across the batch.
type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// Stats is the aggregate view over one processed batch.
type Stats struct {
	TotalRecords       int            `json:"total_records"`
	WithName           int            `json:"records_with_name"`
	WithSkills         int            `json:"records_with_skills"`
	WithExperience     int            `json:"records_with_experience"`
	WithEducation      int            `json:"records_with_education"`
	TopSkills          []SkillCount   `json:"top_skills"`
	MinExperienceYears float64        `json:"min_experience_years"`
	AvgExperienceYears float64        `json:"avg_experience_years"`
	MaxExperienceYears float64        `json:"max_experience_years"`
	EducationCounts    map[string]int `json:"education_distribution"`
}

// Build computes batch statistics from normalized candidates.
func Build(candidates []*normalize.Candidate) *Stats {
	stats := &Stats{
		TotalRecords:    len(candidates),
		EducationCounts: make(map[string]int),
	}

	skillCounts := make(map[string]int)
	first := true
	var expSum float64

	for _, c := range candidates {
		if c.Name != "" {
			stats.WithName++
		}
		if len(c.Skills) > 0 {
			stats.WithSkills++
		}
		if c.TotalExperienceYears > 0 {
			stats.WithExperience++
		}
		if c.EducationLevel > normalize.LevelNone {
			stats.WithEducation++
		}

		for _, s := range c.Skills {
			skillCounts[s]++
		}

		stats.EducationCounts[c.EducationLevel.String()]++

		expSum += c.TotalExperienceYears
		if first || c.TotalExperienceYears < stats.MinExperienceYears {
			stats.MinExperienceYears = c.TotalExperienceYears
		}
		if first || c.TotalExperienceYears > stats.MaxExperienceYears {
			stats.MaxExperienceYears = c.TotalExperienceYears
		}
		first = false
	}

	if len(candidates) > 0 {
		stats.AvgExperienceYears = expSum / float64(len(candidates))
	}

	stats.TopSkills = topSkills(skillCounts, topSkillCount)
	return stats
}

// topSkills returns the n most frequent skills, ties broken alphabetically
// so the report is stable.
func topSkills(counts map[string]int, n int) []SkillCount {
	all := make([]SkillCount, 0, len(counts))
	for skill, count := range counts {
		all = append(all, SkillCount{Skill: skill, Count: count})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Count != all[j].Count {
			return all[i].Count > all[j].Count
		}
		return all[i].Skill < all[j].Skill
	})
	if len(all) > n {
		all = all[:n]
	}
	return all
}

// Write prints the report in its tabular console form.
func (s *Stats) Write(w io.Writer) error {
	var err error
	p := func(format string, args ...interface{}) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	p("==================================================\n")
	p("CV DATA PROCESSING REPORT\n")
	p("==================================================\n")
	p("Total records processed: %d\n", s.TotalRecords)
	p("Records with names: %d\n", s.WithName)
	p("Records with standardized skills: %d\n", s.WithSkills)
	p("Records with experience years calculated: %d\n", s.WithExperience)
	p("Records with degree level identified: %d\n", s.WithEducation)

	p("\nTop %d most common skills:\n", topSkillCount)
	for _, sc := range s.TopSkills {
		p("  %s: %d\n", sc.Skill, sc.Count)
	}

	p("\nExperience statistics:\n")
	p("  Average experience: %.1f years\n", s.AvgExperienceYears)
	p("  Max experience: %.1f years\n", s.MaxExperienceYears)
	p("  Min experience: %.1f years\n", s.MinExperienceYears)

	p("\nEducation level distribution:\n")
	for _, level := range []normalize.Level{
		normalize.LevelNone, normalize.LevelHighSchool, normalize.LevelAssociate,
		normalize.LevelBachelor, normalize.LevelMaster, normalize.LevelPhD,
	} {
		if count, ok := s.EducationCounts[level.String()]; ok {
			p("  %s: %d\n", level.String(), count)
		}
	}

	return err
}
