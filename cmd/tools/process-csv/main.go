// Batch-normalizes a CSV export of CV data and prints a processing report.
//
// Expected input columns: name, skills, experience, education, description.
// Columns are matched by header name; anything else in the file is ignored.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"cv-filter/internal/normalize"
	"cv-filter/internal/report"
)

func main() {
	var inputPath string
	var outputPath string
	flag.StringVar(&inputPath, "input", "", "Path to the input CSV file (required)")
	flag.StringVar(&outputPath, "output", "normalized.csv", "Path for the normalized CSV output")
	flag.Parse()

	if inputPath == "" {
		log.Fatal("-input is required")
	}

	in, err := os.Open(inputPath)
	if err != nil {
		log.Fatalf("failed to open input: %v", err)
	}
	defer in.Close()

	reader := csv.NewReader(in)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		log.Fatalf("failed to read CSV: %v", err)
	}
	if len(rows) < 2 {
		log.Fatal("input CSV has no data rows")
	}

	cols := headerIndex(rows[0])
	for _, required := range []string{"name", "skills", "experience", "education"} {
		if _, ok := cols[required]; !ok {
			log.Fatalf("input CSV is missing column %q", required)
		}
	}

	normalizer, err := normalize.NewNormalizer(nil)
	if err != nil {
		log.Fatalf("failed to build normalizer: %v", err)
	}

	candidates := make([]*normalize.Candidate, 0, len(rows)-1)
	for i, row := range rows[1:] {
		fields := normalize.Fields{
			Name:           cell(row, cols, "name"),
			SkillsText:     cell(row, cols, "skills"),
			ExperienceText: cell(row, cols, "experience"),
			EducationText:  cell(row, cols, "education"),
			Description:    cell(row, cols, "description"),
		}
		c := normalizer.Normalize(fields)
		candidates = append(candidates, c)
		if (i+1)%100 == 0 {
			log.Printf("Processed %d rows...", i+1)
		}
	}

	out, err := os.Create(outputPath)
	if err != nil {
		log.Fatalf("failed to create output: %v", err)
	}
	defer out.Close()

	writer := csv.NewWriter(out)
	header := []string{"name", "skills", "total_experience_years", "education_level", "salary_expectation"}
	if err := writer.Write(header); err != nil {
		log.Fatalf("failed to write output: %v", err)
	}
	for _, c := range candidates {
		record := []string{
			c.Name,
			strings.Join(c.Skills, "; "),
			fmt.Sprintf("%.1f", c.TotalExperienceYears),
			c.EducationLevelName,
			c.SalaryExpectation,
		}
		if err := writer.Write(record); err != nil {
			log.Fatalf("failed to write output: %v", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Fatalf("failed to flush output: %v", err)
	}

	log.Printf("Wrote %d normalized rows to %s", len(candidates), outputPath)

	stats := report.Build(candidates)
	if err := stats.Write(os.Stdout); err != nil {
		log.Fatalf("failed to print report: %v", err)
	}
}

func headerIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return cols
}

func cell(row []string, cols map[string]int, name string) string {
	idx, ok := cols[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}
