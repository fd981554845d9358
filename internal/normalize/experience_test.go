package normalize_test

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"cv-filter/internal/normalize"
)

// fixedNow pins the estimator clock so open-ended ranges resolve the same way
// on every run.
func fixedNow() time.Time {
	return time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
}

func TestExperienceEstimator_DirectPhrase(t *testing.T) {
	est := normalize.NewExperienceEstimatorAt(fixedNow)

	Convey("Given text with an explicit experience phrase", t, func() {
		cases := []struct {
			name string
			in   string
			want float64
		}{
			{"years of experience", "5+ years of experience in Java", 5},
			{"french phrasing", "8 ans d'expérience en développement", 8},
			{"bare years", "3 years at Acme", 3},
			{"experience label", "Experience: 12", 12},
		}

		for _, tc := range cases {
			tc := tc
			Convey("When estimating from "+tc.name, func() {
				So(est.Estimate(tc.in), ShouldEqual, tc.want)
			})
		}

		Convey("When the phrase conflicts with date ranges", func() {
			got := est.Estimate("10 years of experience\n2023 - 2024 Acme")

			Convey("Then the explicit phrase wins", func() {
				So(got, ShouldEqual, 10)
			})
		})
	})
}

func TestExperienceEstimator_DateRanges(t *testing.T) {
	est := normalize.NewExperienceEstimatorAt(fixedNow)

	Convey("Given text with year ranges only", t, func() {
		Convey("When a single closed range appears", func() {
			So(est.Estimate("Acme Corp 2018 - 2022"), ShouldEqual, 4)
		})

		Convey("When several ranges appear", func() {
			got := est.Estimate("Dev 2015 - 2018\nLead 2019 - 2024")

			Convey("Then their durations accumulate", func() {
				So(got, ShouldEqual, 8)
			})
		})

		Convey("When a range runs to the present", func() {
			So(est.Estimate("Acme 2020 - present"), ShouldEqual, 5)
		})

		Convey("When ranges were already rewritten to 'start to end' form", func() {
			So(est.Estimate("Acme 2018 to 2022"), ShouldEqual, 4)
		})

		Convey("When a range is inverted or starts before a plausible career", func() {
			So(est.Estimate("Acme 2022 - 2018"), ShouldEqual, 0)
			So(est.Estimate("Acme 1024 - 2020"), ShouldEqual, 0)
		})
	})
}

func TestExperienceEstimator_Fallbacks(t *testing.T) {
	est := normalize.NewExperienceEstimatorAt(fixedNow)

	Convey("Given text with no phrase and no ranges", t, func() {
		Convey("When a small bare integer appears", func() {
			So(est.Estimate("environ 7 dans le domaine"), ShouldEqual, 7)
		})

		Convey("When the only integers are implausible as years of experience", func() {
			So(est.Estimate("born 1985, zip 75002"), ShouldEqual, 0)
		})

		Convey("When the text is empty or free of numbers", func() {
			So(est.Estimate(""), ShouldEqual, 0)
			So(est.Estimate("senior engineer"), ShouldEqual, 0)
		})
	})
}

func TestExperienceEstimator_Clamp(t *testing.T) {
	est := normalize.NewExperienceEstimatorAt(fixedNow)

	Convey("Given an absurdly large explicit phrase", t, func() {
		Convey("Then the estimate is capped", func() {
			So(est.Estimate("99 years of experience"), ShouldEqual, 50)
		})
	})
}
