package service

// DefaultSliderValue is where the slider starts for every question.
const DefaultSliderValue = 10

// Question es una pregunta del cuestionario de animo.
type Question struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
	Min   int    `json:"min"`
	Max   int    `json:"max"`
	Start int    `json:"start"`
}

var questionTexts = []string{
	"Did you sleep well last night?",
	"How is your appetite today?",
	"Have you felt energised when trying to work?",
	"How much is going through your head?",
	"How easy did you find it to relax today?",
	"How much interest or pleasure do you find in doing things today?",
	"How sociable are you today when compared to a typical day?",
	"Do you feel hot in the upper part of your body?",
	"Are your muscles stiff and tight?",
	"Are you experiencing a headache or any other kind of pain?",
}

// Questions returns the static ten-question mood questionnaire, indexed from 1
// to match DefaultWeightTable.
func Questions() []Question {
	out := make([]Question, 0, len(questionTexts))
	for i, text := range questionTexts {
		out = append(out, Question{
			Index: i + 1,
			Text:  text,
			Min:   MinAnswer,
			Max:   MaxAnswer,
			Start: DefaultSliderValue,
		})
	}
	return out
}
