package domain

import "strconv"

// Question models an MCQ question shown to the participant. The list order
// defines the navigation sequence and is immutable for a session.
type Question struct {
	ID            int      `json:"id"`
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"` // informational; scoring happens server-side
}

// Key renders the question ID in the canonical string form required by the
// submission payload contract.
func (q Question) Key() string {
	return strconv.Itoa(q.ID)
}

// HasOption reports whether text is one of the question's options.
func (q Question) HasOption(text string) bool {
	for _, opt := range q.Options {
		if opt == text {
			return true
		}
	}
	return false
}

// Registration carries the fields collected at sign-up. JSON tags match the
// backend's field names.
type Registration struct {
	FullName string `json:"nombreCompleto"`
	Grade    string `json:"grado"`
	Group    string `json:"grupo"`
	Email    string `json:"correoInstitucional"`
}

// UserProfile is the cached registration plus the identifier the backend
// returned for it.
type UserProfile struct {
	UserID int `json:"userId"`
	Registration
}

// TokenGrant is the response to a registration call.
type TokenGrant struct {
	Token  string `json:"token"`
	UserID int    `json:"user_id"`
}

// AdminCredentials is the admin login request body.
type AdminCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ScoreResult is the outcome of a quiz submission: percentage score plus
// counts. Stored verbatim for the thank-you view.
type ScoreResult struct {
	Success        bool    `json:"success"`
	Score          float64 `json:"score"`
	CorrectAnswers int     `json:"correct_answers"`
	TotalQuestions int     `json:"total_questions"`
}

// ResultRow is one participant's aggregate in the admin results table.
type ResultRow struct {
	ID             int      `json:"id"`
	FullName       string   `json:"nombre_completo"`
	Grade          string   `json:"grado"`
	Group          string   `json:"grupo"`
	Email          string   `json:"correo_institucional"`
	RegisteredAt   string   `json:"fecha_registro"`
	TotalAnswers   int      `json:"total_respuestas"`
	CorrectAnswers int      `json:"respuestas_correctas"`
	Score          *float64 `json:"puntuacion"` // nil until the participant has answered
}

// TopScore is one entry of the top-scores board.
type TopScore struct {
	FullName       string  `json:"nombre_completo"`
	Email          string  `json:"correo_institucional"`
	TotalAnswers   int     `json:"total_respuestas"`
	CorrectAnswers int     `json:"respuestas_correctas"`
	Score          float64 `json:"puntuacion"`
}

// QuestionAccuracy is the per-question correctness rate used by the
// accuracy chart.
type QuestionAccuracy struct {
	QuestionID int     `json:"pregunta_id"`
	Accuracy   float64 `json:"precision"`
}

// Stats holds the aggregate dashboard numbers.
type Stats struct {
	TotalUsers       int                `json:"total_users"`
	TotalResponses   int                `json:"total_responses"`
	AverageScore     float64            `json:"average_score"`
	QuestionAccuracy []QuestionAccuracy `json:"question_accuracy"`
}

// Dashboard bundles the three admin aggregates fetched together.
type Dashboard struct {
	Results   []ResultRow
	TopScores []TopScore
	Stats     Stats
}
