package normalize_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"cv-filter/internal/normalize"
)

func TestClassifyEducation(t *testing.T) {
	Convey("Given education free text", t, func() {
		cases := []struct {
			name string
			in   string
			want normalize.Level
		}{
			{"doctorate", "PhD in Computer Science, MIT", normalize.LevelPhD},
			{"french doctorate", "Doctorat en informatique", normalize.LevelPhD},
			{"masters", "MSc Software Engineering, 2019", normalize.LevelMaster},
			{"mba", "MBA, HEC Paris", normalize.LevelMaster},
			{"bachelors", "Bachelor of Science in CS", normalize.LevelBachelor},
			{"french licence", "Licence en mathématiques", normalize.LevelBachelor},
			{"associate", "BTS Informatique", normalize.LevelAssociate},
			{"high school", "Baccalauréat scientifique", normalize.LevelHighSchool},
			{"no keyword", "Self-taught programmer", normalize.LevelNone},
			{"blank", "   ", normalize.LevelNone},
		}

		for _, tc := range cases {
			tc := tc
			Convey("When classifying "+tc.name, func() {
				So(normalize.ClassifyEducation(tc.in), ShouldEqual, tc.want)
			})
		}

		Convey("When several degrees appear", func() {
			got := normalize.ClassifyEducation("BSc 2015, currently pursuing a Master's degree")

			Convey("Then the highest one wins regardless of order", func() {
				So(got, ShouldEqual, normalize.LevelMaster)
			})
		})
	})
}

func TestLevel_Ordering(t *testing.T) {
	Convey("Given the level enum", t, func() {
		Convey("Then levels order from none up to doctorate", func() {
			So(normalize.LevelNone, ShouldBeLessThan, normalize.LevelHighSchool)
			So(normalize.LevelHighSchool, ShouldBeLessThan, normalize.LevelAssociate)
			So(normalize.LevelAssociate, ShouldBeLessThan, normalize.LevelBachelor)
			So(normalize.LevelBachelor, ShouldBeLessThan, normalize.LevelMaster)
			So(normalize.LevelMaster, ShouldBeLessThan, normalize.LevelPhD)
		})
	})
}

func TestLevel_StringRoundTrip(t *testing.T) {
	Convey("Given every level", t, func() {
		levels := []normalize.Level{
			normalize.LevelNone,
			normalize.LevelHighSchool,
			normalize.LevelAssociate,
			normalize.LevelBachelor,
			normalize.LevelMaster,
			normalize.LevelPhD,
		}

		Convey("Then ParseLevel inverts String", func() {
			for _, l := range levels {
				So(normalize.ParseLevel(l.String()), ShouldEqual, l)
			}
		})

		Convey("And unknown strings degrade to NONE_SPECIFIED", func() {
			So(normalize.ParseLevel("SORCERER"), ShouldEqual, normalize.LevelNone)
			So(normalize.ParseLevel(""), ShouldEqual, normalize.LevelNone)
		})
	})
}
