package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/openlearn/coursepack/ent"
	"github.com/openlearn/coursepack/ent/lesson"
	"github.com/openlearn/coursepack/internal/course"
)

// LessonRepo moves whole packages between the database and the in-memory
// model. The package is always replaced as a unit: imports happen only
// after a package passed audit, so a partially written package would defeat
// the fail-closed pipeline.
type LessonRepo interface {
	// ReplacePackage atomically replaces all stored lessons with pkg.
	// Lessons without an ID are assigned one.
	ReplacePackage(ctx context.Context, pkg *course.Package) error

	// LoadPackage reads all stored lessons in day order.
	LoadPackage(ctx context.Context) (*course.Package, error)
}

type lessonRepo struct {
	client *ent.Client
}

func (r *lessonRepo) ReplacePackage(ctx context.Context, pkg *course.Package) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if _, err := tx.Lesson.Delete().Exec(ctx); err != nil {
		return rollback(tx, fmt.Errorf("clear lessons: %w", err))
	}

	for i, l := range pkg.Lessons {
		id := l.ID
		if id == "" {
			id = uuid.NewString()
		}
		questions, err := encodeQuestions(l.Questions)
		if err != nil {
			return rollback(tx, fmt.Errorf("lesson %d: %w", i+1, err))
		}
		_, err = tx.Lesson.Create().
			SetLessonID(id).
			SetDay(l.Day).
			SetLanguage(l.Language).
			SetTitle(l.Title).
			SetContent(l.Content).
			SetQuestions(questions).
			Save(ctx)
		if err != nil {
			return rollback(tx, fmt.Errorf("save lesson %d: %w", i+1, err))
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *lessonRepo) LoadPackage(ctx context.Context) (*course.Package, error) {
	rows, err := r.client.Lesson.Query().
		Order(ent.Asc(lesson.FieldDay)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query lessons: %w", err)
	}

	pkg := &course.Package{Lessons: make([]course.Lesson, 0, len(rows))}
	for _, row := range rows {
		questions, err := decodeQuestions(row.Questions)
		if err != nil {
			return nil, fmt.Errorf("lesson %q: %w", row.LessonID, err)
		}
		pkg.Lessons = append(pkg.Lessons, course.Lesson{
			ID:        row.LessonID,
			Day:       row.Day,
			Language:  row.Language,
			Title:     row.Title,
			Content:   row.Content,
			Questions: questions,
		})
	}
	return pkg, nil
}

// encodeQuestions converts to the generic JSON shape the ent field uses.
func encodeQuestions(qs []course.Question) ([]map[string]any, error) {
	raw, err := json.Marshal(qs)
	if err != nil {
		return nil, fmt.Errorf("encode questions: %w", err)
	}
	var out []map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("reshape questions: %w", err)
	}
	return out, nil
}

func decodeQuestions(in []map[string]any) ([]course.Question, error) {
	raw, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("reshape questions: %w", err)
	}
	var qs []course.Question
	if err := json.Unmarshal(raw, &qs); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}
	return qs, nil
}

func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return fmt.Errorf("%w (rollback failed: %v)", err, rerr)
	}
	return err
}
