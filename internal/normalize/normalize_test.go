package normalize_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"cv-filter/internal/normalize"
)

func TestCleanName(t *testing.T) {
	Convey("Given raw candidate names", t, func() {
		cases := []struct {
			name string
			in   string
			want string
		}{
			{"extra whitespace", "  jean   dupont ", "Jean Dupont"},
			{"document noise words", "CV Marie Curie - Contact", "Marie Curie"},
			{"digits and initials dropped", "J. Smith 42", "Smith"},
			{"all caps normalized", "ALICE JOHNSON", "Alice Johnson"},
			{"nothing usable", "CV 12345", ""},
			{"blank", "   ", ""},
		}

		for _, tc := range cases {
			tc := tc
			Convey("When cleaning "+tc.name, func() {
				So(normalize.CleanName(tc.in), ShouldEqual, tc.want)
			})
		}
	})
}

func TestExtractSalary(t *testing.T) {
	Convey("Given descriptions mentioning pay", t, func() {
		Convey("When a range appears", func() {
			So(normalize.ExtractSalary("Looking for 45k - 55k € in Paris"), ShouldEqual, "45k - 55k €")
		})

		Convey("When a labelled single amount appears", func() {
			So(normalize.ExtractSalary("Expected salary: 60k EUR"), ShouldEqual, "Expected salary: 60k EUR")
		})

		Convey("When a bare amount with a currency appears", func() {
			So(normalize.ExtractSalary("Around 70000 USD per year"), ShouldEqual, "70000 USD")
		})

		Convey("When nothing salary-shaped appears", func() {
			So(normalize.ExtractSalary("Ten years in backend work"), ShouldEqual, "")
			So(normalize.ExtractSalary(""), ShouldEqual, "")
		})
	})
}

func TestNormalizer_Normalize(t *testing.T) {
	n, err := normalize.NewNormalizerAt(nil, fixedNow)
	if err != nil {
		t.Fatalf("build normalizer: %v", err)
	}

	Convey("Given a full set of raw fields", t, func() {
		fields := normalize.Fields{
			Name:           "cv jean DUPONT",
			SkillsText:     "Skills: Python, JS, python, k8s",
			ExperienceText: "Backend developer 2018 - 2022\nTeam lead 2022 - present",
			EducationText:  "MSc Computer Science 2016 - 2018",
			Description:    "Salary expectation: 55k €",
		}

		c := n.Normalize(fields)

		Convey("Then the name is cleaned", func() {
			So(c.Name, ShouldEqual, "Jean Dupont")
		})

		Convey("Then skills are canonical, deduplicated and sorted", func() {
			So(c.Skills, ShouldResemble, []string{"JavaScript", "Kubernetes", "Python"})
			So(c.SkillsText, ShouldEqual, "JavaScript, Kubernetes, Python")
		})

		Convey("Then experience years accumulate across ranges", func() {
			So(c.TotalExperienceYears, ShouldEqual, 7)
		})

		Convey("Then date ranges are rewritten in both sections", func() {
			So(c.ExperienceText, ShouldContainSubstring, "2018 to 2022")
			So(c.ExperienceText, ShouldContainSubstring, "2022 to Present")
			So(c.EducationText, ShouldContainSubstring, "2016 to 2018")
		})

		Convey("Then the education level is classified", func() {
			So(c.EducationLevel, ShouldEqual, normalize.LevelMaster)
			So(c.EducationLevelName, ShouldEqual, "MASTER")
		})

		Convey("Then the salary expectation is extracted", func() {
			So(c.SalaryExpectation, ShouldNotBeEmpty)
		})

		Convey("Then the description is retained for relevance scoring", func() {
			So(c.Description, ShouldEqual, fields.Description)
		})
	})

	Convey("Given near-duplicate ad-hoc skills", t, func() {
		c := n.Normalize(normalize.Fields{
			SkillsText: "Problem Solvings, Problem Solving",
		})

		Convey("Then the fuzzy near-duplicate collapses to one entry", func() {
			So(c.Skills, ShouldResemble, []string{"Problem Solving"})
		})
	})

	Convey("Given empty fields", t, func() {
		c := n.Normalize(normalize.Fields{})

		Convey("Then every output degrades quietly", func() {
			So(c.Name, ShouldEqual, "")
			So(c.Skills, ShouldBeEmpty)
			So(c.TotalExperienceYears, ShouldEqual, 0)
			So(c.EducationLevel, ShouldEqual, normalize.LevelNone)
			So(c.SalaryExpectation, ShouldEqual, "")
		})
	})
}
