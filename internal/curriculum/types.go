package curriculum

// Specialty is one baccalaureate track.
type Specialty struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Icon string `yaml:"icon"`
}

// Lesson is a single curriculum leaf. Content is optional full lesson text;
// when present it grounds generation instead of the bare title.
type Lesson struct {
	ID      string `yaml:"id"`
	Title   string `yaml:"title"`
	Content string `yaml:"content,omitempty"`
}

// Unit groups lessons within one semester.
type Unit struct {
	ID       string   `yaml:"id"`
	Title    string   `yaml:"title"`
	Semester int      `yaml:"semester"` // 1, 2 or 3
	Lessons  []Lesson `yaml:"lessons"`
}

// Subject is one teachable subject. Curriculum holds the raw unfiltered
// units; visibility per track is derived by the filter, never by mutating
// this data.
type Subject struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Icon        string   `yaml:"icon"`
	Specialties []string `yaml:"specialties"`
	Scientific  bool     `yaml:"scientific"` // prompts use LaTeX notation
	Curriculum  []Unit   `yaml:"curriculum"`
}

// ForSpecialty reports whether the subject is taught in the given track.
func (s *Subject) ForSpecialty(specialtyID string) bool {
	for _, id := range s.Specialties {
		if id == specialtyID {
			return true
		}
	}
	return false
}

// LessonsForSemester returns the titles of every lesson in units of the
// given semester, in curriculum order.
func (s *Subject) LessonsForSemester(semester int) []string {
	var titles []string
	for _, u := range s.Curriculum {
		if u.Semester != semester {
			continue
		}
		for _, l := range u.Lessons {
			titles = append(titles, l.Title)
		}
	}
	return titles
}
