package nav

// Step is the active navigation screen. Exactly one step is active at a time.
type Step int

const (
	StepRoleSelection Step = iota
	StepSpecialty
	StepSubject
	StepLesson
	StepMode
	StepChat
	StepExercises
	StepQuiz
	StepExamFlow
	StepPDFUpload
	StepTeacherSetup
	StepTeacherDashboard
	StepProgramUpload
	StepGradebook
)

func (s Step) String() string {
	switch s {
	case StepRoleSelection:
		return "role-selection"
	case StepSpecialty:
		return "specialty"
	case StepSubject:
		return "subject"
	case StepLesson:
		return "lesson"
	case StepMode:
		return "mode"
	case StepChat:
		return "chat"
	case StepExercises:
		return "exercises"
	case StepQuiz:
		return "quiz"
	case StepExamFlow:
		return "exam-flow"
	case StepPDFUpload:
		return "pdf-upload"
	case StepTeacherSetup:
		return "teacher-setup"
	case StepTeacherDashboard:
		return "teacher-dashboard"
	case StepProgramUpload:
		return "program-upload"
	case StepGradebook:
		return "gradebook"
	default:
		return "unknown"
	}
}

// Mode is a study mode pickable at the mode step.
type Mode int

const (
	ModeFast Mode = iota
	ModeThink
	ModeSearch
	ModeAnalyze
	ModeExercises
	ModeQuiz
	ModeLessonPlan
	ModeExamBuilder
)

func (m Mode) String() string {
	switch m {
	case ModeFast:
		return "fast"
	case ModeThink:
		return "think"
	case ModeSearch:
		return "search"
	case ModeAnalyze:
		return "analyze"
	case ModeExercises:
		return "exercises"
	case ModeQuiz:
		return "quiz"
	case ModeLessonPlan:
		return "lesson-plan"
	case ModeExamBuilder:
		return "exam-builder"
	default:
		return "unknown"
	}
}

// Conversational reports whether the mode lands in the chat transcript
// rather than a dedicated artifact screen.
func (m Mode) Conversational() bool {
	switch m {
	case ModeFast, ModeThink, ModeSearch, ModeAnalyze, ModeLessonPlan:
		return true
	}
	return false
}

// TeacherOnly reports whether the mode is reserved for teachers.
func (m Mode) TeacherOnly() bool {
	return m == ModeLessonPlan || m == ModeExamBuilder
}

// Slot identifies one generation target. At most one request per slot may be
// outstanding at a time.
type Slot int

const (
	SlotChat Slot = iota
	SlotExercises
	SlotSolution
	SlotQuiz
	SlotExam
	SlotSuggestions
)

func (s Slot) String() string {
	switch s {
	case SlotChat:
		return "chat"
	case SlotExercises:
		return "exercises"
	case SlotSolution:
		return "solution"
	case SlotQuiz:
		return "quiz"
	case SlotExam:
		return "exam"
	case SlotSuggestions:
		return "suggestions"
	default:
		return "unknown"
	}
}
