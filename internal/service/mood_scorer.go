package service

import (
	"fmt"
	"math"

	"mood-filter/internal/domain"
)

const (
	MinAnswer = 0
	MaxAnswer = 10
)

// MoodResult es el resultado de puntuar un cuestionario.
type MoodResult struct {
	Mood     domain.Mood       `json:"mood"`
	Scores   domain.MoodScores `json:"scores"`
	Applied  int               `json:"applied"`
	Warnings []error           `json:"-"`
}

// MoodScorer convierte respuestas del cuestionario en una emocion predominante.
// No guarda estado entre llamadas; es seguro para uso concurrente.
type MoodScorer struct {
	weights WeightTable
}

// DefaultMoodScorer usa la tabla de pesos por defecto.
var DefaultMoodScorer = NewMoodScorer(nil)

// NewMoodScorer crea un scorer; una tabla nil usa DefaultWeightTable.
func NewMoodScorer(weights WeightTable) MoodScorer {
	if weights == nil {
		weights = DefaultWeightTable()
	}
	return MoodScorer{weights: weights}
}

// ScoreMood accumulates every response in order and picks the mood with the
// strictly largest total; on ties the earlier mood in domain.Moods wins.
// Unknown questions are skipped and out-of-range answers clamped, both
// reported in Warnings.
func (s MoodScorer) ScoreMood(responses []domain.QuestionResponse) (MoodResult, error) {
	if len(responses) == 0 {
		return MoodResult{}, domain.ErrEmptyResponseSet
	}
	weights := s.weights
	if weights == nil {
		weights = DefaultWeightTable()
	}

	var result MoodResult
	for _, r := range responses {
		w, ok := weights[r.Question]
		if !ok {
			result.Warnings = append(result.Warnings, fmt.Errorf("%w: %d", domain.ErrInvalidQuestionIndex, r.Question))
			continue
		}
		answer := r.Answer
		if math.IsNaN(answer) || answer < MinAnswer || answer > MaxAnswer {
			result.Warnings = append(result.Warnings, fmt.Errorf("%w: question %d answer %v", domain.ErrOutOfRangeAnswer, r.Question, r.Answer))
			answer = clampAnswer(answer)
		}
		val := answer / 10
		result.Scores = result.Scores.Add(w.contribution(val))
		result.Applied++
	}

	if result.Applied == 0 {
		return result, fmt.Errorf("%w: all %d responses skipped", domain.ErrEmptyResponseSet, len(responses))
	}
	result.Mood = predominantMood(result.Scores)
	return result, nil
}

func clampAnswer(v float64) float64 {
	if math.IsNaN(v) || v < MinAnswer {
		return MinAnswer
	}
	if v > MaxAnswer {
		return MaxAnswer
	}
	return v
}

func predominantMood(scores domain.MoodScores) domain.Mood {
	best := domain.Moods[0]
	bestScore := scores.Get(best)
	for _, m := range domain.Moods[1:] {
		if bestScore < scores.Get(m) {
			best = m
			bestScore = scores.Get(m)
		}
	}
	return best
}
