package service

import (
	"errors"
	"testing"

	"mood-filter/internal/domain"
)

func TestScoreMood_RegressionFixture(t *testing.T) {
	responses := []domain.QuestionResponse{
		{Question: 1, Answer: 2},
		{Question: 2, Answer: 4},
		{Question: 3, Answer: 5},
		{Question: 4, Answer: 5},
	}

	for run := 0; run < 3; run++ {
		res, err := DefaultMoodScorer.ScoreMood(responses)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		want := domain.MoodScores{
			Anxiety:   1.6099999999999999,
			Sadness:   0.42000000000000004,
			Anger:     1.8599999999999999,
			Happiness: 0.6,
		}
		if res.Scores != want {
			t.Fatalf("run %d: expected scores %+v, got %+v", run, want, res.Scores)
		}
		if res.Mood != domain.MoodAnger {
			t.Fatalf("run %d: expected anger, got %q", run, res.Mood)
		}
		if res.Applied != 4 || len(res.Warnings) != 0 {
			t.Fatalf("run %d: expected 4 applied without warnings, got %d / %v", run, res.Applied, res.Warnings)
		}
	}
}

func TestScoreMood_FullQuestionnaire(t *testing.T) {
	tests := []struct {
		name   string
		answer float64
		want   domain.MoodScores
		mood   domain.Mood
	}{
		{
			name:   "all answers at max",
			answer: 10,
			want:   domain.MoodScores{Anxiety: 1.94, Sadness: 0.06000000000000011, Anger: 3.0500000000000003, Happiness: 5.9},
			mood:   domain.MoodHappiness,
		},
		{
			name:   "all answers at min",
			answer: 0,
			want:   domain.MoodScores{Anxiety: 4.4399999999999995, Sadness: 3.66, Anger: 2.65, Happiness: 0},
			mood:   domain.MoodAnxiety,
		},
		{
			name:   "all answers in the middle",
			answer: 5,
			want:   domain.MoodScores{Anxiety: 3.04, Sadness: 1.7600000000000005, Anger: 2.8499999999999996, Happiness: 2.95},
			mood:   domain.MoodAnxiety,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var responses []domain.QuestionResponse
			for q := 1; q <= 10; q++ {
				responses = append(responses, domain.QuestionResponse{Question: q, Answer: tt.answer})
			}
			res, err := DefaultMoodScorer.ScoreMood(responses)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if res.Scores != tt.want {
				t.Fatalf("expected %+v, got %+v", tt.want, res.Scores)
			}
			if res.Mood != tt.mood {
				t.Fatalf("expected %q, got %q", tt.mood, res.Mood)
			}
		})
	}
}

func TestScoreMood_OrderDoesNotChangeLabel(t *testing.T) {
	answers := []float64{3, 7, 1, 9, 4, 6, 2, 8, 5, 10}
	var forward []domain.QuestionResponse
	for i, a := range answers {
		forward = append(forward, domain.QuestionResponse{Question: i + 1, Answer: a})
	}

	base, err := DefaultMoodScorer.ScoreMood(forward)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	orders := map[string][]domain.QuestionResponse{}
	reversed := make([]domain.QuestionResponse, len(forward))
	for i := range forward {
		reversed[len(forward)-1-i] = forward[i]
	}
	orders["reversed"] = reversed
	orders["rotated"] = append(append([]domain.QuestionResponse{}, forward[4:]...), forward[:4]...)
	interleaved := make([]domain.QuestionResponse, 0, len(forward))
	for i := 0; i < len(forward); i += 2 {
		interleaved = append(interleaved, forward[i])
	}
	for i := 1; i < len(forward); i += 2 {
		interleaved = append(interleaved, forward[i])
	}
	orders["interleaved"] = interleaved

	for name, responses := range orders {
		res, err := DefaultMoodScorer.ScoreMood(responses)
		if err != nil {
			t.Fatalf("%s: expected no error, got %v", name, err)
		}
		if res.Mood != base.Mood {
			t.Fatalf("%s: expected %q, got %q", name, base.Mood, res.Mood)
		}
	}
}

func TestScoreMood_EmptyInput(t *testing.T) {
	_, err := DefaultMoodScorer.ScoreMood(nil)
	if !errors.Is(err, domain.ErrEmptyResponseSet) {
		t.Fatalf("expected ErrEmptyResponseSet, got %v", err)
	}
}

func TestScoreMood_InvalidQuestionsAreSkipped(t *testing.T) {
	res, err := DefaultMoodScorer.ScoreMood([]domain.QuestionResponse{
		{Question: 0, Answer: 5},
		{Question: 1, Answer: 2},
		{Question: 11, Answer: 5},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if res.Applied != 1 {
		t.Fatalf("expected 1 applied response, got %d", res.Applied)
	}
	if len(res.Warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %v", res.Warnings)
	}
	for _, w := range res.Warnings {
		if !errors.Is(w, domain.ErrInvalidQuestionIndex) {
			t.Fatalf("expected ErrInvalidQuestionIndex warning, got %v", w)
		}
	}
	want := domain.MoodScores{Anxiety: 0.7499999999999999, Anger: 0.96, Happiness: 0.1}
	if res.Scores != want {
		t.Fatalf("expected %+v, got %+v", want, res.Scores)
	}
	if res.Mood != domain.MoodAnger {
		t.Fatalf("expected anger, got %q", res.Mood)
	}
}

func TestScoreMood_OnlyInvalidQuestions(t *testing.T) {
	res, err := DefaultMoodScorer.ScoreMood([]domain.QuestionResponse{{Question: 42, Answer: 3}})
	if !errors.Is(err, domain.ErrEmptyResponseSet) {
		t.Fatalf("expected ErrEmptyResponseSet, got %v", err)
	}
	if len(res.Warnings) != 1 {
		t.Fatalf("expected the skipped response to be reported, got %v", res.Warnings)
	}
}

func TestScoreMood_ClampsOutOfRangeAnswers(t *testing.T) {
	tests := []struct {
		name    string
		answer  float64
		clamped float64
	}{
		{name: "above max", answer: 15, clamped: 10},
		{name: "below min", answer: -3, clamped: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DefaultMoodScorer.ScoreMood([]domain.QuestionResponse{{Question: 4, Answer: tt.answer}})
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			want, err := DefaultMoodScorer.ScoreMood([]domain.QuestionResponse{{Question: 4, Answer: tt.clamped}})
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if got.Scores != want.Scores {
				t.Fatalf("expected clamped scores %+v, got %+v", want.Scores, got.Scores)
			}
			if len(got.Warnings) != 1 || !errors.Is(got.Warnings[0], domain.ErrOutOfRangeAnswer) {
				t.Fatalf("expected one ErrOutOfRangeAnswer warning, got %v", got.Warnings)
			}
		})
	}
}

func TestScoreMood_RepeatedQuestionsAccumulate(t *testing.T) {
	res, err := DefaultMoodScorer.ScoreMood([]domain.QuestionResponse{
		{Question: 4, Answer: 10},
		{Question: 4, Answer: 10},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := domain.MoodScores{Anxiety: 3, Anger: 2, Happiness: 1}
	if res.Scores != want {
		t.Fatalf("expected %+v, got %+v", want, res.Scores)
	}
}

func TestScoreMood_TieBreakPrefersEarlierMood(t *testing.T) {
	tests := []struct {
		name    string
		weights questionWeights
		want    domain.Mood
	}{
		{name: "anxiety and sadness", weights: questionWeights{linear(1), linear(1), zero(), zero()}, want: domain.MoodAnxiety},
		{name: "sadness and anger", weights: questionWeights{zero(), linear(1), linear(1), zero()}, want: domain.MoodSadness},
		{name: "anger and happiness", weights: questionWeights{zero(), zero(), linear(1), linear(1)}, want: domain.MoodAnger},
		{name: "sadness and happiness", weights: questionWeights{zero(), linear(1), zero(), linear(1)}, want: domain.MoodSadness},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scorer := NewMoodScorer(WeightTable{1: tt.weights})
			res, err := scorer.ScoreMood([]domain.QuestionResponse{{Question: 1, Answer: 10}})
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if res.Mood != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, res.Mood)
			}
		})
	}
}

func TestScoreMood_AllZeroScoresPickFirstMood(t *testing.T) {
	res, err := DefaultMoodScorer.ScoreMood([]domain.QuestionResponse{{Question: 8, Answer: 0}})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if res.Mood != domain.MoodAnxiety {
		t.Fatalf("expected anxiety on an all-zero tie, got %q", res.Mood)
	}
}

func TestScoreMood_NegativeTotalsStillPickLargest(t *testing.T) {
	scorer := NewMoodScorer(WeightTable{1: {gap(1, 0), gap(2, 0), gap(0.5, 0), gap(3, 0)}})
	res, err := scorer.ScoreMood([]domain.QuestionResponse{{Question: 1, Answer: 10}})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if res.Mood != domain.MoodAnger {
		t.Fatalf("expected anger as least negative, got %q", res.Mood)
	}
}

func TestQuestionsMatchWeightTable(t *testing.T) {
	questions := Questions()
	if len(questions) != 10 {
		t.Fatalf("expected 10 questions, got %d", len(questions))
	}
	table := DefaultWeightTable()
	for i, q := range questions {
		if q.Index != i+1 {
			t.Fatalf("expected index %d, got %d", i+1, q.Index)
		}
		if _, ok := table[q.Index]; !ok {
			t.Fatalf("question %d has no weights", q.Index)
		}
		if q.Text == "" {
			t.Fatalf("question %d has no text", q.Index)
		}
		if q.Start != DefaultSliderValue || q.Min != MinAnswer || q.Max != MaxAnswer {
			t.Fatalf("unexpected slider bounds for question %d: %+v", q.Index, q)
		}
	}
}
