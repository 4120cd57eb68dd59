// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/openlearn/coursepack/ent/auditevent"
	"github.com/openlearn/coursepack/ent/lesson"
	"github.com/openlearn/coursepack/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	auditeventFields := schema.AuditEvent{}.Fields()
	_ = auditeventFields
	// auditeventDescRunID is the schema descriptor for run_id field.
	auditeventDescRunID := auditeventFields[0].Descriptor()
	// auditevent.RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	auditevent.RunIDValidator = auditeventDescRunID.Validators[0].(func(string) error)
	// auditeventDescTimestamp is the schema descriptor for timestamp field.
	auditeventDescTimestamp := auditeventFields[1].Descriptor()
	// auditevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	auditevent.DefaultTimestamp = auditeventDescTimestamp.Default.(func() time.Time)
	lessonFields := schema.Lesson{}.Fields()
	_ = lessonFields
	// lessonDescLessonID is the schema descriptor for lesson_id field.
	lessonDescLessonID := lessonFields[0].Descriptor()
	// lesson.LessonIDValidator is a validator for the "lesson_id" field. It is called by the builders before save.
	lesson.LessonIDValidator = lessonDescLessonID.Validators[0].(func(string) error)
	// lessonDescDay is the schema descriptor for day field.
	lessonDescDay := lessonFields[1].Descriptor()
	// lesson.DayValidator is a validator for the "day" field. It is called by the builders before save.
	lesson.DayValidator = lessonDescDay.Validators[0].(func(int) error)
	// lessonDescLanguage is the schema descriptor for language field.
	lessonDescLanguage := lessonFields[2].Descriptor()
	// lesson.LanguageValidator is a validator for the "language" field. It is called by the builders before save.
	lesson.LanguageValidator = lessonDescLanguage.Validators[0].(func(string) error)
	// lessonDescTitle is the schema descriptor for title field.
	lessonDescTitle := lessonFields[3].Descriptor()
	// lesson.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	lesson.TitleValidator = lessonDescTitle.Validators[0].(func(string) error)
}
