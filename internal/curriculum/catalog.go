package curriculum

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Catalog is the full static curriculum: every track, subject, unit and
// lesson, before any per-track filtering.
type Catalog struct {
	Specialties []Specialty `yaml:"specialties"`
	Subjects    []Subject   `yaml:"subjects"`
}

// LoadCatalog parses and validates the embedded curriculum.
func LoadCatalog() (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(catalogYAML, &c); err != nil {
		return nil, fmt.Errorf("parse curriculum: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("invalid curriculum: %w", err)
	}
	return &c, nil
}

// SpecialtyByID returns the track with the given id, or nil.
func (c *Catalog) SpecialtyByID(id string) *Specialty {
	for i := range c.Specialties {
		if c.Specialties[i].ID == id {
			return &c.Specialties[i]
		}
	}
	return nil
}

// SubjectByID returns the subject with the given id, or nil.
func (c *Catalog) SubjectByID(id string) *Subject {
	for i := range c.Subjects {
		if c.Subjects[i].ID == id {
			return &c.Subjects[i]
		}
	}
	return nil
}

// SubjectsFor returns the subjects taught in the given track, in catalog
// order. An empty specialty id returns every subject.
func (c *Catalog) SubjectsFor(specialtyID string) []*Subject {
	var out []*Subject
	for i := range c.Subjects {
		if specialtyID == "" || c.Subjects[i].ForSpecialty(specialtyID) {
			out = append(out, &c.Subjects[i])
		}
	}
	return out
}

// FindLesson locates a lesson and its unit within a subject.
func (c *Catalog) FindLesson(subjectID, lessonID string) (*Unit, *Lesson) {
	sub := c.SubjectByID(subjectID)
	if sub == nil {
		return nil, nil
	}
	for i := range sub.Curriculum {
		u := &sub.Curriculum[i]
		for j := range u.Lessons {
			if u.Lessons[j].ID == lessonID {
				return u, &u.Lessons[j]
			}
		}
	}
	return nil, nil
}

func (c *Catalog) validate() error {
	if len(c.Specialties) == 0 {
		return fmt.Errorf("no specialties")
	}
	if len(c.Subjects) == 0 {
		return fmt.Errorf("no subjects")
	}

	specIDs := make(map[string]bool, len(c.Specialties))
	for _, s := range c.Specialties {
		if s.ID == "" || s.Name == "" {
			return fmt.Errorf("specialty with empty id or name")
		}
		if specIDs[s.ID] {
			return fmt.Errorf("duplicate specialty id %q", s.ID)
		}
		specIDs[s.ID] = true
	}

	subIDs := make(map[string]bool, len(c.Subjects))
	seen := make(map[string]bool)
	for _, sub := range c.Subjects {
		if sub.ID == "" {
			return fmt.Errorf("subject with empty id")
		}
		if subIDs[sub.ID] {
			return fmt.Errorf("duplicate subject id %q", sub.ID)
		}
		subIDs[sub.ID] = true

		for _, spec := range sub.Specialties {
			if !specIDs[spec] {
				return fmt.Errorf("subject %q references unknown specialty %q", sub.ID, spec)
			}
		}

		for _, u := range sub.Curriculum {
			if u.Semester < 1 || u.Semester > 3 {
				return fmt.Errorf("unit %q: semester %d out of range", u.ID, u.Semester)
			}
			if seen[u.ID] {
				return fmt.Errorf("duplicate unit id %q", u.ID)
			}
			seen[u.ID] = true
			for _, l := range u.Lessons {
				if seen[l.ID] {
					return fmt.Errorf("duplicate lesson id %q", l.ID)
				}
				seen[l.ID] = true
			}
		}
	}
	return nil
}
