package service

import (
	"math"

	"mood-filter/internal/domain"
)

type termShape int

const (
	shapeZero   termShape = iota
	shapeLinear           // scale * val
	shapeGap              // scale * (pivot - val)
	shapeAbsGap           // scale * |pivot - val|
)

// weightTerm es el aporte de una respuesta normalizada a un acumulador.
type weightTerm struct {
	shape termShape
	scale float64
	pivot float64
}

func zero() weightTerm { return weightTerm{shape: shapeZero} }
func linear(scale float64) weightTerm { return weightTerm{shape: shapeLinear, scale: scale} }
func gap(scale, pivot float64) weightTerm { return weightTerm{shape: shapeGap, scale: scale, pivot: pivot} }
func absGap(scale, pivot float64) weightTerm { return weightTerm{shape: shapeAbsGap, scale: scale, pivot: pivot} }

// eval rounds every product to float64 so results do not depend on FMA.
func (t weightTerm) eval(val float64) float64 {
	switch t.shape {
	case shapeLinear:
		return float64(t.scale * val)
	case shapeGap:
		return float64(t.scale * (t.pivot - val))
	case shapeAbsGap:
		return float64(t.scale * math.Abs(t.pivot-val))
	}
	return 0
}

// questionWeights holds one term per mood, in domain.Moods order.
type questionWeights [4]weightTerm

func (w questionWeights) contribution(val float64) domain.MoodScores {
	return domain.MoodScores{
		Anxiety:   w[0].eval(val),
		Sadness:   w[1].eval(val),
		Anger:     w[2].eval(val),
		Happiness: w[3].eval(val),
	}
}

// WeightTable maps a question index to its coefficients.
type WeightTable map[int]questionWeights

// physicalSymptoms is shared by the three body-tension questions.
var physicalSymptoms = questionWeights{linear(0.5), linear(0.2), linear(0.6), linear(0.2)}

// DefaultWeightTable es la tabla afinada a mano para las diez preguntas.
func DefaultWeightTable() WeightTable {
	return WeightTable{
		1:  {gap(1.5, 0.7), zero(), gap(1.2, 1), linear(0.5)},
		2:  {absGap(0.3, 0.5), absGap(0.2, 0.5), zero(), zero()},
		3:  {gap(0.8, 0.6), gap(1.0, 0.9), linear(0.8), linear(0.5)},
		4:  {linear(1.5), zero(), linear(1.0), linear(0.5)},
		5:  {gap(0.7, 0.8), gap(0.6, 0.6), gap(0.5, 1), linear(0.8)},
		6:  {gap(1.0, 0.7), gap(1.5, 0.8), gap(0.5, 0.5), linear(2.0)},
		7:  {gap(1.5, 1), gap(1.1, 1), gap(1.0, 0.7), linear(1.0)},
		8:  physicalSymptoms,
		9:  physicalSymptoms,
		10: physicalSymptoms,
	}
}
