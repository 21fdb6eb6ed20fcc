package app_test

import (
	"errors"
	"strconv"
	"testing"

	"biologia-quiz-client/internal/app"
	"biologia-quiz-client/internal/domain"
)

func sampleQuestions(n int) []domain.Question {
	questions := make([]domain.Question, 0, n)
	for i := 1; i <= n; i++ {
		questions = append(questions, domain.Question{
			ID:            i,
			Text:          "question " + strconv.Itoa(i),
			Options:       []string{"alpha", "beta", "gamma"},
			CorrectAnswer: "alpha",
		})
	}
	return questions
}

func TestNewNavigatorRejectsEmptyList(t *testing.T) {
	if _, err := app.NewNavigator(nil); err != domain.ErrNoQuestions {
		t.Fatalf("expected ErrNoQuestions, got %v", err)
	}
}

func TestAdvanceRequiresAnswer(t *testing.T) {
	nav, err := app.NewNavigator(sampleQuestions(3))
	if err != nil {
		t.Fatalf("new navigator: %v", err)
	}

	if nav.CanAdvance() {
		t.Fatalf("expected CanAdvance false before any answer")
	}
	if nav.Advance() {
		t.Fatalf("expected Advance to be a no-op without an answer")
	}
	if nav.CurrentIndex() != 0 {
		t.Fatalf("expected index 0, got %d", nav.CurrentIndex())
	}

	if err := nav.SelectAnswer(1, "beta"); err != nil {
		t.Fatalf("select answer: %v", err)
	}
	if !nav.CanAdvance() {
		t.Fatalf("expected CanAdvance true after answering")
	}
	if !nav.Advance() {
		t.Fatalf("expected Advance to move")
	}
	if nav.CurrentIndex() != 1 {
		t.Fatalf("expected index 1, got %d", nav.CurrentIndex())
	}
}

func TestAdvanceStopsAtLastQuestion(t *testing.T) {
	nav, _ := app.NewNavigator(sampleQuestions(2))

	_ = nav.SelectAnswer(1, "alpha")
	nav.Advance()
	_ = nav.SelectAnswer(2, "alpha")

	if !nav.IsLastQuestion() {
		t.Fatalf("expected last question at index %d", nav.CurrentIndex())
	}
	if nav.Advance() {
		t.Fatalf("expected Advance to be a no-op on the last question")
	}
	if nav.CurrentIndex() != 1 {
		t.Fatalf("index moved past the end: %d", nav.CurrentIndex())
	}
}

func TestSelectAnswerValidatesMembership(t *testing.T) {
	nav, _ := app.NewNavigator(sampleQuestions(2))

	if err := nav.SelectAnswer(99, "alpha"); err != domain.ErrQuestionNotFound {
		t.Fatalf("expected ErrQuestionNotFound, got %v", err)
	}
	if err := nav.SelectAnswer(1, "not an option"); err != domain.ErrOptionNotFound {
		t.Fatalf("expected ErrOptionNotFound, got %v", err)
	}
	if nav.AnsweredCount() != 0 {
		t.Fatalf("rejected answers must not be stored, got %d", nav.AnsweredCount())
	}
}

func TestSelectAnswerOverwritesPerID(t *testing.T) {
	nav, _ := app.NewNavigator(sampleQuestions(2))

	_ = nav.SelectAnswer(1, "alpha")
	_ = nav.SelectAnswer(1, "gamma")

	if nav.AnsweredCount() != 1 {
		t.Fatalf("expected one answered question, got %d", nav.AnsweredCount())
	}
	if !nav.IsSelected(1, "gamma") {
		t.Fatalf("expected the last selection to win")
	}
	if nav.IsComplete() {
		t.Fatalf("overwrites must not fake completion")
	}
}

func TestIsCompleteRequiresFullCoverage(t *testing.T) {
	questions := sampleQuestions(4)
	nav, _ := app.NewNavigator(questions)

	for i, q := range questions {
		if nav.IsComplete() {
			t.Fatalf("complete before question %d was answered", q.ID)
		}
		if err := nav.SelectAnswer(q.ID, q.Options[0]); err != nil {
			t.Fatalf("select answer %d: %v", q.ID, err)
		}
		if i < len(questions)-1 {
			nav.Advance()
		}
	}
	if !nav.IsComplete() {
		t.Fatalf("expected complete after covering every id")
	}
}

func TestBuildSubmissionIncomplete(t *testing.T) {
	nav, _ := app.NewNavigator(sampleQuestions(3))
	_ = nav.SelectAnswer(1, "alpha")

	_, err := nav.BuildSubmission()
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestBuildSubmissionStringKeysAndValues(t *testing.T) {
	questions := sampleQuestions(3)
	nav, _ := app.NewNavigator(questions)
	for _, q := range questions {
		_ = nav.SelectAnswer(q.ID, "beta")
		nav.Advance()
	}

	payload, err := nav.BuildSubmission()
	if err != nil {
		t.Fatalf("build submission: %v", err)
	}
	if len(payload) != len(questions) {
		t.Fatalf("expected %d entries, got %d", len(questions), len(payload))
	}
	for _, q := range questions {
		got, ok := payload[strconv.Itoa(q.ID)]
		if !ok {
			t.Fatalf("missing key %q", strconv.Itoa(q.ID))
		}
		if got != "beta" {
			t.Fatalf("expected last stored value, got %q", got)
		}
	}
}

func TestFullSeventeenQuestionRun(t *testing.T) {
	questions := sampleQuestions(17)
	nav, _ := app.NewNavigator(questions)

	for _, q := range questions {
		if err := nav.SelectAnswer(q.ID, q.Options[0]); err != nil {
			t.Fatalf("select answer %d: %v", q.ID, err)
		}
		nav.Advance()
	}

	if !nav.IsComplete() {
		t.Fatalf("expected complete after answering all 17")
	}
	if got := nav.ProgressFraction(); got != 1.0 {
		t.Fatalf("expected progress 1.0, got %v", got)
	}
}

func TestProgressFractionMonotonic(t *testing.T) {
	questions := sampleQuestions(5)
	nav, _ := app.NewNavigator(questions)

	prev := 0.0
	for range questions {
		got := nav.ProgressFraction()
		if got <= 0 || got > 1 {
			t.Fatalf("progress out of range: %v", got)
		}
		if got < prev {
			t.Fatalf("progress decreased: %v -> %v", prev, got)
		}
		prev = got
		_ = nav.SelectAnswer(nav.CurrentQuestion().ID, "alpha")
		nav.Advance()
	}
}
