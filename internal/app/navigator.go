package app

import (
	"sort"

	"biologia-quiz-client/internal/domain"
)

// Navigator drives the user through a fixed, ordered list of questions one at
// a time. Navigation is forward-only: there is no previous-question operation,
// and Advance only moves once the current question has an answer.
type Navigator struct {
	questions []domain.Question
	index     int
	answers   map[int]string
}

// NewNavigator builds a navigator over the given question list. The list is
// copied and immutable for the session; its order defines the sequence.
func NewNavigator(questions []domain.Question) (*Navigator, error) {
	if len(questions) == 0 {
		return nil, domain.ErrNoQuestions
	}
	copied := make([]domain.Question, len(questions))
	copy(copied, questions)
	return &Navigator{
		questions: copied,
		answers:   make(map[int]string),
	}, nil
}

// CurrentQuestion returns the question at the current position. The transition
// rules keep the index in range at all times.
func (n *Navigator) CurrentQuestion() domain.Question {
	return n.questions[n.index]
}

// CurrentIndex returns the zero-based position.
func (n *Navigator) CurrentIndex() int {
	return n.index
}

// QuestionNumber returns the one-based position for display.
func (n *Navigator) QuestionNumber() int {
	return n.index + 1
}

// TotalQuestions returns the length of the list.
func (n *Navigator) TotalQuestions() int {
	return len(n.questions)
}

// SelectAnswer upserts the chosen option for a question. The question must
// exist and the text must be one of its options; a mismatch is a caller error,
// not something to silently store.
func (n *Navigator) SelectAnswer(questionID int, option string) error {
	question, ok := n.find(questionID)
	if !ok {
		return domain.ErrQuestionNotFound
	}
	if !question.HasOption(option) {
		return domain.ErrOptionNotFound
	}
	n.answers[questionID] = option
	return nil
}

// IsSelected reports whether option is the recorded answer for questionID.
func (n *Navigator) IsSelected(questionID int, option string) bool {
	return n.answers[questionID] == option
}

// AnsweredCount returns how many distinct questions have an answer.
func (n *Navigator) AnsweredCount() int {
	return len(n.answers)
}

// CanAdvance reports whether the current question has an answer.
func (n *Navigator) CanAdvance() bool {
	_, ok := n.answers[n.CurrentQuestion().ID]
	return ok
}

// IsLastQuestion reports whether the current position is the final one.
func (n *Navigator) IsLastQuestion() bool {
	return n.index == len(n.questions)-1
}

// Advance moves to the next question iff the current one is answered and is
// not the last; otherwise it is a no-op. Returns whether the position moved.
func (n *Navigator) Advance() bool {
	if !n.CanAdvance() || n.IsLastQuestion() {
		return false
	}
	n.index++
	return true
}

// IsComplete reports whether every question ID in the list has an answer.
// Coverage is checked by ID, not by count, so duplicate overwrites cannot
// fake completion.
func (n *Navigator) IsComplete() bool {
	for _, q := range n.questions {
		if _, ok := n.answers[q.ID]; !ok {
			return false
		}
	}
	return true
}

// ProgressFraction returns (position+1)/total, in (0, 1], monotonically
// non-decreasing across the session.
func (n *Navigator) ProgressFraction() float64 {
	return float64(n.index+1) / float64(len(n.questions))
}

// BuildSubmission returns the payload mapping each question ID, in canonical
// string form, to its chosen option. The receiving deserializer is keyed on
// string identifiers, so both keys and values are strings regardless of the
// in-memory representation. Fails with a ValidationError while incomplete.
func (n *Navigator) BuildSubmission() (map[string]string, error) {
	if !n.IsComplete() {
		missing := n.missingIDs()
		return nil, domain.NewValidationError("quiz incomplete: %d of %d questions unanswered", len(missing), len(n.questions))
	}
	payload := make(map[string]string, len(n.questions))
	for _, q := range n.questions {
		payload[q.Key()] = n.answers[q.ID]
	}
	return payload, nil
}

func (n *Navigator) find(questionID int) (domain.Question, bool) {
	for _, q := range n.questions {
		if q.ID == questionID {
			return q, true
		}
	}
	return domain.Question{}, false
}

func (n *Navigator) missingIDs() []int {
	var missing []int
	for _, q := range n.questions {
		if _, ok := n.answers[q.ID]; !ok {
			missing = append(missing, q.ID)
		}
	}
	sort.Ints(missing)
	return missing
}
