package normalize_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"cv-filter/internal/normalize"
)

func newCanonicalizer(t *testing.T) *normalize.SkillCanonicalizer {
	t.Helper()
	c, err := normalize.NewSkillCanonicalizer(normalize.DefaultVocabulary(), nil)
	if err != nil {
		t.Fatalf("build canonicalizer: %v", err)
	}
	return c
}

func TestSkillCanonicalizer_Canonicalize(t *testing.T) {
	c := newCanonicalizer(t)

	Convey("Given messy comma-separated skill text", t, func() {
		Convey("When aliases repeat with different casing and spacing", func() {
			got := c.Canonicalize("Python, JS, python ")

			Convey("Then duplicates collapse and aliases resolve to canonical names", func() {
				So(got, ShouldResemble, []string{"JavaScript", "Python"})
			})
		})

		Convey("When a skill-list label prefixes the text", func() {
			got := c.Canonicalize("Technical Skills: java; node.js\nk8s")

			Convey("Then the label is dropped and every separator style splits", func() {
				So(got, ShouldResemble, []string{"Java", "Kubernetes", "Node.js"})
			})
		})

		Convey("When tokens carry parenthetical qualifiers", func() {
			got := c.Canonicalize("python (3 years), docker (expert)")

			Convey("Then the qualifiers are stripped before resolution", func() {
				So(got, ShouldResemble, []string{"Docker", "Python"})
			})
		})

		Convey("When a token is a close misspelling of an alias", func() {
			got := c.Canonicalize("javascrpt, postgre")

			Convey("Then fuzzy matching recovers the canonical names", func() {
				So(got, ShouldContain, "JavaScript")
				So(got, ShouldContain, "PostgreSQL")
			})
		})

		Convey("When a token is not in the vocabulary at all", func() {
			got := c.Canonicalize("basket weaving")

			Convey("Then it survives in title case as an ad-hoc skill", func() {
				So(got, ShouldResemble, []string{"Basket Weaving"})
			})
		})

		Convey("When the input is blank or below the token length floor", func() {
			So(c.Canonicalize(""), ShouldBeNil)
			So(c.Canonicalize("   "), ShouldBeNil)
			So(c.Canonicalize("x, ,  "), ShouldBeNil)
		})
	})
}

func TestSkillCanonicalizer_Idempotent(t *testing.T) {
	c := newCanonicalizer(t)

	Convey("Given text that is already canonical output", t, func() {
		first := c.CanonicalizeText("py, react.js, golang, aws")
		second := c.CanonicalizeText(first)

		Convey("Then canonicalizing again changes nothing", func() {
			So(second, ShouldEqual, first)
		})
	})
}

func TestSkillCanonicalizer_Dedupe(t *testing.T) {
	c := newCanonicalizer(t)

	Convey("Given a list with near-duplicate spellings", t, func() {
		got := c.Dedupe([]string{"JavaScript", "Javascript", "Java", "", "React"})

		Convey("Then the first spelling wins and distinct skills survive", func() {
			So(got, ShouldResemble, []string{"JavaScript", "Java", "React"})
		})
	})

	Convey("Given an empty list", t, func() {
		So(c.Dedupe(nil), ShouldBeEmpty)
	})
}

func TestNewSkillCanonicalizer_EmptyVocabulary(t *testing.T) {
	Convey("Given no vocabulary", t, func() {
		_, err := normalize.NewSkillCanonicalizer(nil, nil)

		Convey("Then construction fails", func() {
			So(err, ShouldEqual, normalize.ErrEmptyVocabulary)
		})
	})
}
