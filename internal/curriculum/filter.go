package curriculum

import (
	_ "embed"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/bacdz/eduai/internal/auth"
)

//go:embed rules.yaml
var rulesYAML []byte

// UnitRule restricts one unit to the listed tracks.
type UnitRule struct {
	ID      string   `yaml:"id"`
	OnlyFor []string `yaml:"only_for"`
}

// LessonRule restricts one lesson within a unit to the listed tracks.
type LessonRule struct {
	Unit    string   `yaml:"unit"`
	ID      string   `yaml:"id"`
	OnlyFor []string `yaml:"only_for"`
}

// SubjectRule is the rule set for one subject.
type SubjectRule struct {
	Subject string       `yaml:"subject"`
	Units   []UnitRule   `yaml:"units"`
	Lessons []LessonRule `yaml:"lessons"`
}

// Filter applies the visibility rule table. It is pure: the catalog is never
// mutated, and filtering an already-filtered result is a no-op.
type Filter struct {
	rules map[string]SubjectRule
}

// LoadFilter parses the embedded rule table.
func LoadFilter() (*Filter, error) {
	var doc struct {
		Rules []SubjectRule `yaml:"rules"`
	}
	if err := yaml.Unmarshal(rulesYAML, &doc); err != nil {
		return nil, fmt.Errorf("parse filter rules: %w", err)
	}

	rules := make(map[string]SubjectRule, len(doc.Rules))
	for _, r := range doc.Rules {
		if r.Subject == "" {
			return nil, fmt.Errorf("filter rule with empty subject")
		}
		if _, dup := rules[r.Subject]; dup {
			return nil, fmt.Errorf("duplicate filter rule for subject %q", r.Subject)
		}
		rules[r.Subject] = r
	}
	return &Filter{rules: rules}, nil
}

// VisibleUnits returns the units of the subject the given user may see.
//
// A subject with no curriculum yields nil. An unselected specialty yields the
// full curriculum for teachers browsing the whole program, and nothing for
// students. Subjects without a rule pass through unchanged; an unknown
// specialty id matches no only_for list, so every restricted item is dropped.
func (f *Filter) VisibleUnits(subject *Subject, specialtyID string, role auth.Role) []Unit {
	if subject == nil || len(subject.Curriculum) == 0 {
		return nil
	}

	if specialtyID == "" {
		if role == auth.RoleTeacher {
			return slices.Clone(subject.Curriculum)
		}
		return nil
	}

	rule, ok := f.rules[subject.ID]
	if !ok {
		return slices.Clone(subject.Curriculum)
	}

	var out []Unit
	for _, u := range subject.Curriculum {
		if !unitVisible(rule, u.ID, specialtyID) {
			continue
		}

		kept := u
		kept.Lessons = visibleLessons(rule, u, specialtyID)
		if len(kept.Lessons) == 0 {
			continue
		}
		out = append(out, kept)
	}
	return out
}

func unitVisible(rule SubjectRule, unitID, specialtyID string) bool {
	for _, ur := range rule.Units {
		if ur.ID == unitID {
			return slices.Contains(ur.OnlyFor, specialtyID)
		}
	}
	return true
}

func visibleLessons(rule SubjectRule, u Unit, specialtyID string) []Lesson {
	var out []Lesson
	for _, l := range u.Lessons {
		if lessonVisible(rule, u.ID, l.ID, specialtyID) {
			out = append(out, l)
		}
	}
	return out
}

func lessonVisible(rule SubjectRule, unitID, lessonID, specialtyID string) bool {
	for _, lr := range rule.Lessons {
		if lr.Unit == unitID && lr.ID == lessonID {
			return slices.Contains(lr.OnlyFor, specialtyID)
		}
	}
	return true
}
