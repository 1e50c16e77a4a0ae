package generate

// Context carries the resolved curriculum position a request is grounded in.
type Context struct {
	// Mode is the active conversational mode name; it selects the model
	// tier, the grounding policy and the prompt directive.
	Mode          string
	SpecialtyName string
	SubjectID     string
	SubjectName   string
	// Scientific selects LaTeX notation in prompts; literary subjects get
	// plain Arabic prose instead. Derived from the catalog, never inferred.
	Scientific    bool
	LessonTitle string
	// LessonContent is the full lesson text when one exists: curriculum
	// content or an uploaded document. It outranks the title as grounding.
	LessonContent string
	// ProgramText is the teacher's yearly program, appended as extra
	// grounding when no lesson content is available.
	ProgramText string
}

// Exam is the exam-builder artifact: a full exam paper and its marking
// scheme for one semester.
type Exam struct {
	ExamText     string `json:"examText"`
	SolutionText string `json:"solutionText"`
}
