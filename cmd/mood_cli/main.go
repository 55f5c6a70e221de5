package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"mood-filter/internal/domain"
	"mood-filter/internal/service"
)

func main() {
	logger := zap.NewExample()
	defer logger.Sync()

	if err := run(os.Stdin, os.Stdout, logger); err != nil {
		logger.Error("questionnaire failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(in io.Reader, out io.Writer, logger *zap.Logger) error {
	reader := bufio.NewReader(in)
	questions := service.Questions()

	fmt.Fprintln(out, "--- MOOD CHECK (10 questions) ---")
	fmt.Fprintf(out, "Answer each from %d to %d. Empty keeps the slider at %d.\n", service.MinAnswer, service.MaxAnswer, service.DefaultSliderValue)

	responses := make([]domain.QuestionResponse, 0, len(questions))
	for _, q := range questions {
		prompt := fmt.Sprintf("\n[%d/%d] %s ", q.Index, len(questions), q.Text)
		responses = append(responses, domain.QuestionResponse{
			Question: q.Index,
			Answer:   readAnswer(reader, out, prompt, q.Start),
		})
	}

	res, err := service.DefaultMoodScorer.ScoreMood(responses)
	for _, w := range res.Warnings {
		logger.Warn("response adjusted", zap.Error(w))
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "\nTotals:")
	for _, m := range domain.Moods {
		fmt.Fprintf(out, "  %-10s %.4f\n", m, res.Scores.Get(m))
	}
	fmt.Fprintf(out, "\nPredominant mood: %s\n", res.Mood)
	return nil
}

func readAnswer(reader *bufio.Reader, out io.Writer, prompt string, def int) float64 {
	fmt.Fprint(out, prompt)
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return float64(def)
	}
	if v, err := strconv.ParseFloat(line, 64); err == nil {
		return v
	}
	return float64(def)
}
