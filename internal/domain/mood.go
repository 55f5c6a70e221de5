package domain

import "time"

// Mood es la etiqueta emocional predominante que produce el cuestionario.
type Mood string

const (
	MoodAnxiety   Mood = "anxiety"
	MoodSadness   Mood = "sadness"
	MoodAnger     Mood = "anger"
	MoodHappiness Mood = "happiness"
)

// Moods is the declaration order; earlier moods win ties.
var Moods = []Mood{MoodAnxiety, MoodSadness, MoodAnger, MoodHappiness}

// QuestionResponse es una respuesta del slider (0..10) a una pregunta (1..10).
type QuestionResponse struct {
	Question int     `json:"question"`
	Answer   float64 `json:"answer"`
}

// MoodScores acumula el aporte de cada respuesta por emocion.
type MoodScores struct {
	Anxiety   float64 `json:"anxiety"`
	Sadness   float64 `json:"sadness"`
	Anger     float64 `json:"anger"`
	Happiness float64 `json:"happiness"`
}

// Get devuelve el acumulador de una emocion; cero si la emocion no existe.
func (s MoodScores) Get(m Mood) float64 {
	switch m {
	case MoodAnxiety:
		return s.Anxiety
	case MoodSadness:
		return s.Sadness
	case MoodAnger:
		return s.Anger
	case MoodHappiness:
		return s.Happiness
	}
	return 0
}

// Add suma otro conjunto de acumuladores en orden fijo.
func (s MoodScores) Add(o MoodScores) MoodScores {
	s.Anxiety += o.Anxiety
	s.Sadness += o.Sadness
	s.Anger += o.Anger
	s.Happiness += o.Happiness
	return s
}

// MoodAssessment es el registro persistido de un cuestionario puntuado.
type MoodAssessment struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Mood      Mood       `json:"mood"`
	Scores    MoodScores `json:"scores"`
	Responses int        `json:"responses"`
	CreatedAt time.Time  `json:"created_at"`
}
