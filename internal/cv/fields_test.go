package cv

import (
	"strings"
	"testing"
)

const sampleCV = `Jean Dupont
Développeur Backend
Email: jean.dupont@example.com
Téléphone: 06 12 34 56 78

Compétences: Python, Django, PostgreSQL, Docker

Expérience professionnelle
Backend developer chez Acme, 2018 - 2022
Team lead chez Widgets SA, 2022 - present

Formation
Master Informatique, Université de Lyon, 2016 - 2018
`

func TestExtractFields(t *testing.T) {
	fields := ExtractFields(sampleCV)

	if fields.Name != "Jean Dupont" {
		t.Errorf("expected name 'Jean Dupont', got %q", fields.Name)
	}
	if !strings.Contains(fields.SkillsText, "Python") || !strings.Contains(fields.SkillsText, "Docker") {
		t.Errorf("skills section missing entries: %q", fields.SkillsText)
	}
	if strings.Contains(fields.SkillsText, "Acme") {
		t.Errorf("skills section leaked into experience: %q", fields.SkillsText)
	}
	if !strings.Contains(fields.ExperienceText, "2018 - 2022") {
		t.Errorf("experience section missing date range: %q", fields.ExperienceText)
	}
	if !strings.Contains(fields.EducationText, "Master Informatique") {
		t.Errorf("education section missing degree: %q", fields.EducationText)
	}
	if fields.Description != sampleCV {
		t.Error("description should carry the full text")
	}
}

func TestExtractFields_Empty(t *testing.T) {
	fields := ExtractFields("")

	if fields.Name != "" || fields.SkillsText != "" || fields.ExperienceText != "" || fields.EducationText != "" {
		t.Errorf("empty input should produce empty fields, got %+v", fields)
	}
}

func TestExtractFields_UnicodeCaseLengths(t *testing.T) {
	// 'Ⱥ' lowercases to a longer UTF-8 sequence, 'İ' to a shorter one;
	// section offsets must stay valid either way.
	widens := "Jean Dupont\nskills: Python, Go ȺȺȺȺ devops"
	fields := ExtractFields(widens)
	if !strings.Contains(fields.SkillsText, "devops") {
		t.Errorf("skills section truncated: %q", fields.SkillsText)
	}

	narrows := "Jean Dupont\nİİİİ İİİİ\nexperience: Backend developer, 2018 - 2022"
	fields = ExtractFields(narrows)
	if !strings.Contains(fields.ExperienceText, "2018 - 2022") {
		t.Errorf("experience section truncated: %q", fields.ExperienceText)
	}
}

func TestExtractName_Fallbacks(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"top line", "Marie Curie\nPhysicienne", "Marie Curie"},
		{"skips noise lines", "CURRICULUM VITAE\nMarie Curie\n", "Marie Curie"},
		{"labelled name", "0612345678\nNom: Pierre Martin\n", "Pierre Martin"},
		{"nothing usable", "123456\n!!!\n", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := extractName(tc.in); got != tc.want {
				t.Errorf("extractName(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestExtractContact(t *testing.T) {
	contact := ExtractContact(sampleCV)

	if contact.Email != "jean.dupont@example.com" {
		t.Errorf("expected email, got %q", contact.Email)
	}
	if contact.Phone == "" {
		t.Error("expected a phone number")
	}
}

func TestExtractContact_Absent(t *testing.T) {
	contact := ExtractContact("no contact details here")

	if contact.Email != "" || contact.Phone != "" {
		t.Errorf("expected empty contact, got %+v", contact)
	}
}
