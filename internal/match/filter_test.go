package match_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"cv-filter/internal/match"
	"cv-filter/internal/normalize"
)

func TestFilter_Passes(t *testing.T) {
	filter := match.NewFilter(nil)

	Convey("Given no job at all", t, func() {
		So(filter.Passes(fittingCandidate(), nil, true), ShouldBeTrue)
		So(filter.Passes(&normalize.Candidate{}, nil, true), ShouldBeTrue)
	})

	Convey("Given a job with every dimension unspecified", t, func() {
		job := &match.JobRequirement{Title: "Open role"}

		Convey("Then even an empty candidate passes in strict mode", func() {
			So(filter.Passes(&normalize.Candidate{}, job, true), ShouldBeTrue)
		})
	})

	Convey("Given a fully fitting candidate", t, func() {
		So(filter.Passes(fittingCandidate(), javaJob(), true), ShouldBeTrue)
		So(filter.Passes(fittingCandidate(), javaJob(), false), ShouldBeTrue)
	})
}

func TestFilter_Experience(t *testing.T) {
	filter := match.NewFilter(nil)

	Convey("Given a candidate one year short of a five-year requirement", t, func() {
		c := fittingCandidate()
		c.TotalExperienceYears = 4

		Convey("Then strict mode rejects and lenient mode tolerates the gap", func() {
			So(filter.Passes(c, javaJob(), true), ShouldBeFalse)
			So(filter.Passes(c, javaJob(), false), ShouldBeTrue)
		})
	})

	Convey("Given a candidate far below the requirement", t, func() {
		c := fittingCandidate()
		c.TotalExperienceYears = 1

		Convey("Then even lenient mode rejects", func() {
			So(filter.Passes(c, javaJob(), false), ShouldBeFalse)
		})
	})

	Convey("Given a short requirement where the floor tolerance applies", t, func() {
		job := javaJob()
		job.MinExperienceYears = 2

		c := fittingCandidate()
		c.TotalExperienceYears = 1

		Convey("Then lenient mode allows a one-year shortfall", func() {
			So(filter.Passes(c, job, false), ShouldBeTrue)
		})
	})
}

func TestFilter_Skills(t *testing.T) {
	filter := match.NewFilter(nil)

	Convey("Given a job requiring five skills", t, func() {
		job := javaJob()
		job.RequiredSkills = []string{"Java", "Spring", "Docker", "AWS", "SQL"}
		job.MinExperienceYears = 0
		job.RequiredDegree = normalize.LevelNone

		Convey("When the candidate covers two of them", func() {
			c := &normalize.Candidate{Skills: []string{"Java", "Spring"}}

			Convey("Then strict mode rejects and lenient mode accepts half coverage", func() {
				So(filter.Passes(c, job, true), ShouldBeFalse)
				So(filter.Passes(c, job, false), ShouldBeTrue)
			})
		})

		Convey("When the candidate covers only one", func() {
			c := &normalize.Candidate{Skills: []string{"SQL"}}

			So(filter.Passes(c, job, false), ShouldBeFalse)
		})
	})

	Convey("Given spelling drift in the candidate's skills", t, func() {
		job := &match.JobRequirement{RequiredSkills: []string{"Kubernetes"}}
		c := &normalize.Candidate{Skills: []string{"Kubernetez"}}

		Convey("Then fuzzy matching still accepts the skill", func() {
			So(filter.Passes(c, job, true), ShouldBeTrue)
		})
	})

	Convey("Given containment in either direction", t, func() {
		job := &match.JobRequirement{RequiredSkills: []string{"Postgres"}}
		c := &normalize.Candidate{Skills: []string{"PostgreSQL"}}

		So(filter.Passes(c, job, true), ShouldBeTrue)
	})

	Convey("Given a short requirement that is a substring of an unrelated skill", t, func() {
		job := &match.JobRequirement{RequiredSkills: []string{"Go"}}

		Convey("Then a mid-word occurrence does not count", func() {
			c := &normalize.Candidate{Skills: []string{"Django"}}
			So(filter.Passes(c, job, true), ShouldBeFalse)
		})

		Convey("And the skill itself still matches", func() {
			c := &normalize.Candidate{Skills: []string{"Go"}}
			So(filter.Passes(c, job, true), ShouldBeTrue)
		})
	})
}

func TestFilter_Education(t *testing.T) {
	filter := match.NewFilter(nil)

	Convey("Given a job requiring a master's degree", t, func() {
		job := &match.JobRequirement{RequiredDegree: normalize.LevelMaster}

		Convey("Then a doctorate passes and a bachelor's fails in both modes", func() {
			phd := &normalize.Candidate{EducationLevel: normalize.LevelPhD}
			bsc := &normalize.Candidate{EducationLevel: normalize.LevelBachelor}

			So(filter.Passes(phd, job, true), ShouldBeTrue)
			So(filter.Passes(phd, job, false), ShouldBeTrue)
			So(filter.Passes(bsc, job, true), ShouldBeFalse)
			So(filter.Passes(bsc, job, false), ShouldBeFalse)
		})
	})
}

// Lenient mode must never reject a candidate strict mode accepts.
func TestFilter_StrictImpliesLenient(t *testing.T) {
	filter := match.NewFilter(nil)

	candidates := []*normalize.Candidate{
		{},
		{Skills: []string{"Java"}, TotalExperienceYears: 1},
		{Skills: []string{"Java", "Spring"}, TotalExperienceYears: 4, EducationLevel: normalize.LevelBachelor},
		fittingCandidate(),
		{Skills: []string{"Python", "Docker", "AWS"}, TotalExperienceYears: 12, EducationLevel: normalize.LevelPhD},
	}
	jobs := []*match.JobRequirement{
		nil,
		{},
		javaJob(),
		{MinExperienceYears: 10, RequiredDegree: normalize.LevelMaster, RequiredSkills: []string{"Python", "AWS"}},
	}

	Convey("Given a grid of candidates and jobs", t, func() {
		for _, c := range candidates {
			for _, job := range jobs {
				if filter.Passes(c, job, true) {
					So(filter.Passes(c, job, false), ShouldBeTrue)
				}
			}
		}
	})
}
