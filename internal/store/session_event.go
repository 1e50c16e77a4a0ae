package store

import (
	"context"
	"fmt"

	"github.com/bacdz/eduai/ent"
	"github.com/bacdz/eduai/ent/quizresultevent"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetRole(data.Role).
		SetSpecialtyID(data.SpecialtyID).
		SetSubjectID(data.SubjectID).
		SetLessonID(data.LessonID).
		SetMode(data.Mode).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendQuizResult(ctx context.Context, data QuizResultEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.QuizResultEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetSubjectID(data.SubjectID).
		SetLessonID(data.LessonID).
		SetCorrect(data.Correct).
		SetTotal(data.Total).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save quiz result event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuizHistory(ctx context.Context, lessonID string, limit int) ([]QuizResult, error) {
	q := r.client.QuizResultEvent.Query().
		Where(quizresultevent.LessonID(lessonID)).
		Order(ent.Desc(quizresultevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query quiz history: %w", err)
	}

	out := make([]QuizResult, len(events))
	for i, e := range events {
		out[i] = QuizResult{
			SessionID:    e.SessionID,
			SubjectID:    e.SubjectID,
			LessonID:     e.LessonID,
			Correct:      e.Correct,
			Total:        e.Total,
			DurationSecs: e.DurationSecs,
			Timestamp:    e.Timestamp,
		}
	}
	return out, nil
}
