package normalize

import "strings"

// Level is an ordered education level; higher values meet-or-exceed lower
// ones.
type Level int

const (
	LevelNone Level = iota
	LevelHighSchool
	LevelAssociate
	LevelBachelor
	LevelMaster
	LevelPhD
)

var levelNames = map[Level]string{
	LevelNone:       "NONE_SPECIFIED",
	LevelHighSchool: "HIGH_SCHOOL",
	LevelAssociate:  "ASSOCIATE",
	LevelBachelor:   "BACHELOR",
	LevelMaster:     "MASTER",
	LevelPhD:        "PHD",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "NONE_SPECIFIED"
}

// ParseLevel maps a stored degree string ("MASTER", "PHD", ...) back to its
// Level. Unknown strings degrade to NONE_SPECIFIED.
func ParseLevel(s string) Level {
	s = strings.ToUpper(strings.TrimSpace(s))
	for level, name := range levelNames {
		if name == s {
			return level
		}
	}
	return LevelNone
}

// educationKeywords maps degree keywords to levels. Two-letter aliases such
// as "ba" or "bs" are deliberately absent: substring matching makes them fire
// inside ordinary words.
var educationKeywords = []struct {
	keyword string
	level   Level
}{
	{"phd", LevelPhD},
	{"ph.d", LevelPhD},
	{"doctorate", LevelPhD},
	{"doctoral", LevelPhD},
	{"doctorat", LevelPhD},
	{"master", LevelMaster},
	{"msc", LevelMaster},
	{"m.sc", LevelMaster},
	{"mba", LevelMaster},
	{"bachelor", LevelBachelor},
	{"bsc", LevelBachelor},
	{"b.sc", LevelBachelor},
	{"licence", LevelBachelor},
	{"undergraduate", LevelBachelor},
	{"associate", LevelAssociate},
	{"diploma", LevelAssociate},
	{"certificate", LevelAssociate},
	{"certificat", LevelAssociate},
	{"bts", LevelAssociate},
	{"dut", LevelAssociate},
	{"high school", LevelHighSchool},
	{"secondary", LevelHighSchool},
	{"baccalauréat", LevelHighSchool},
}

// ClassifyEducation returns the highest level whose keyword appears anywhere
// in the text: a maximum over all matches, not a first-match short-circuit,
// so "BSc ... pursuing Master's" classifies as MASTER. No keyword means
// NONE_SPECIFIED.
func ClassifyEducation(text string) Level {
	if strings.TrimSpace(text) == "" {
		return LevelNone
	}

	lower := strings.ToLower(text)
	highest := LevelNone
	for _, kw := range educationKeywords {
		if kw.level > highest && strings.Contains(lower, kw.keyword) {
			highest = kw.level
		}
	}
	return highest
}
