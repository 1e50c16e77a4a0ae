// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/bacdz/eduai/ent/gradebookentry"
	"github.com/bacdz/eduai/ent/llmrequestevent"
	"github.com/bacdz/eduai/ent/profile"
	"github.com/bacdz/eduai/ent/quizresultevent"
	"github.com/bacdz/eduai/ent/schema"
	"github.com/bacdz/eduai/ent/sessionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	gradebookentryFields := schema.GradebookEntry{}.Fields()
	_ = gradebookentryFields
	// gradebookentryDescStudent is the schema descriptor for student field.
	gradebookentryDescStudent := gradebookentryFields[0].Descriptor()
	// gradebookentry.StudentValidator is a validator for the "student" field. It is called by the builders before save.
	gradebookentry.StudentValidator = gradebookentryDescStudent.Validators[0].(func(string) error)
	// gradebookentryDescSubjectID is the schema descriptor for subject_id field.
	gradebookentryDescSubjectID := gradebookentryFields[1].Descriptor()
	// gradebookentry.SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	gradebookentry.SubjectIDValidator = gradebookentryDescSubjectID.Validators[0].(func(string) error)
	// gradebookentryDescLabel is the schema descriptor for label field.
	gradebookentryDescLabel := gradebookentryFields[2].Descriptor()
	// gradebookentry.LabelValidator is a validator for the "label" field. It is called by the builders before save.
	gradebookentry.LabelValidator = gradebookentryDescLabel.Validators[0].(func(string) error)
	// gradebookentryDescKind is the schema descriptor for kind field.
	gradebookentryDescKind := gradebookentryFields[3].Descriptor()
	// gradebookentry.DefaultKind holds the default value on creation for the kind field.
	gradebookentry.DefaultKind = gradebookentryDescKind.Default.(string)
	// gradebookentryDescNotes is the schema descriptor for notes field.
	gradebookentryDescNotes := gradebookentryFields[6].Descriptor()
	// gradebookentry.DefaultNotes holds the default value on creation for the notes field.
	gradebookentry.DefaultNotes = gradebookentryDescNotes.Default.(string)
	// gradebookentryDescRecordedAt is the schema descriptor for recorded_at field.
	gradebookentryDescRecordedAt := gradebookentryFields[7].Descriptor()
	// gradebookentry.DefaultRecordedAt holds the default value on creation for the recorded_at field.
	gradebookentry.DefaultRecordedAt = gradebookentryDescRecordedAt.Default.(func() time.Time)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescSchemaName is the schema descriptor for schema_name field.
	llmrequesteventDescSchemaName := llmrequesteventFields[2].Descriptor()
	// llmrequestevent.DefaultSchemaName holds the default value on creation for the schema_name field.
	llmrequestevent.DefaultSchemaName = llmrequesteventDescSchemaName.Default.(string)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescName is the schema descriptor for name field.
	profileDescName := profileFields[0].Descriptor()
	// profile.NameValidator is a validator for the "name" field. It is called by the builders before save.
	profile.NameValidator = profileDescName.Validators[0].(func(string) error)
	// profileDescRole is the schema descriptor for role field.
	profileDescRole := profileFields[1].Descriptor()
	// profile.RoleValidator is a validator for the "role" field. It is called by the builders before save.
	profile.RoleValidator = profileDescRole.Validators[0].(func(string) error)
	// profileDescSpecialtyID is the schema descriptor for specialty_id field.
	profileDescSpecialtyID := profileFields[2].Descriptor()
	// profile.DefaultSpecialtyID holds the default value on creation for the specialty_id field.
	profile.DefaultSpecialtyID = profileDescSpecialtyID.Default.(string)
	// profileDescSubjectID is the schema descriptor for subject_id field.
	profileDescSubjectID := profileFields[3].Descriptor()
	// profile.DefaultSubjectID holds the default value on creation for the subject_id field.
	profile.DefaultSubjectID = profileDescSubjectID.Default.(string)
	// profileDescProgramText is the schema descriptor for program_text field.
	profileDescProgramText := profileFields[4].Descriptor()
	// profile.DefaultProgramText holds the default value on creation for the program_text field.
	profile.DefaultProgramText = profileDescProgramText.Default.(string)
	// profileDescCreatedAt is the schema descriptor for created_at field.
	profileDescCreatedAt := profileFields[5].Descriptor()
	// profile.DefaultCreatedAt holds the default value on creation for the created_at field.
	profile.DefaultCreatedAt = profileDescCreatedAt.Default.(func() time.Time)
	// profileDescUpdatedAt is the schema descriptor for updated_at field.
	profileDescUpdatedAt := profileFields[6].Descriptor()
	// profile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	profile.DefaultUpdatedAt = profileDescUpdatedAt.Default.(func() time.Time)
	// profile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	profile.UpdateDefaultUpdatedAt = profileDescUpdatedAt.UpdateDefault.(func() time.Time)
	quizresulteventMixin := schema.QuizResultEvent{}.Mixin()
	quizresulteventMixinFields0 := quizresulteventMixin[0].Fields()
	_ = quizresulteventMixinFields0
	quizresulteventFields := schema.QuizResultEvent{}.Fields()
	_ = quizresulteventFields
	// quizresulteventDescTimestamp is the schema descriptor for timestamp field.
	quizresulteventDescTimestamp := quizresulteventMixinFields0[1].Descriptor()
	// quizresultevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	quizresultevent.DefaultTimestamp = quizresulteventDescTimestamp.Default.(func() time.Time)
	// quizresulteventDescSessionID is the schema descriptor for session_id field.
	quizresulteventDescSessionID := quizresulteventFields[0].Descriptor()
	// quizresultevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	quizresultevent.SessionIDValidator = quizresulteventDescSessionID.Validators[0].(func(string) error)
	// quizresulteventDescSubjectID is the schema descriptor for subject_id field.
	quizresulteventDescSubjectID := quizresulteventFields[1].Descriptor()
	// quizresultevent.SubjectIDValidator is a validator for the "subject_id" field. It is called by the builders before save.
	quizresultevent.SubjectIDValidator = quizresulteventDescSubjectID.Validators[0].(func(string) error)
	// quizresulteventDescLessonID is the schema descriptor for lesson_id field.
	quizresulteventDescLessonID := quizresulteventFields[2].Descriptor()
	// quizresultevent.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	quizresultevent.LessonIDValidator = quizresulteventDescLessonID.Validators[0].(func(string) error)
	// quizresulteventDescDurationSecs is the schema descriptor for duration_secs field.
	quizresulteventDescDurationSecs := quizresulteventFields[5].Descriptor()
	// quizresultevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	quizresultevent.DefaultDurationSecs = quizresulteventDescDurationSecs.Default.(int)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescRole is the schema descriptor for role field.
	sessioneventDescRole := sessioneventFields[2].Descriptor()
	// sessionevent.DefaultRole holds the default value on creation for the role field.
	sessionevent.DefaultRole = sessioneventDescRole.Default.(string)
	// sessioneventDescSpecialtyID is the schema descriptor for specialty_id field.
	sessioneventDescSpecialtyID := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultSpecialtyID holds the default value on creation for the specialty_id field.
	sessionevent.DefaultSpecialtyID = sessioneventDescSpecialtyID.Default.(string)
	// sessioneventDescSubjectID is the schema descriptor for subject_id field.
	sessioneventDescSubjectID := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultSubjectID holds the default value on creation for the subject_id field.
	sessionevent.DefaultSubjectID = sessioneventDescSubjectID.Default.(string)
	// sessioneventDescLessonID is the schema descriptor for lesson_id field.
	sessioneventDescLessonID := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultLessonID holds the default value on creation for the lesson_id field.
	sessionevent.DefaultLessonID = sessioneventDescLessonID.Default.(string)
	// sessioneventDescMode is the schema descriptor for mode field.
	sessioneventDescMode := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultMode holds the default value on creation for the mode field.
	sessionevent.DefaultMode = sessioneventDescMode.Default.(string)
}
