package transition

import (
	"fmt"

	"github.com/jonathan/fairpath/internal/types"
)

// Difficulty classification boundaries.
const (
	lowOverlapPct  = 70.0
	highOverlapPct = 40.0
	lowMaxToLearn  = 5
	highMinToLearn = 15
)

// classifyDifficulty buckets a transition as Low, Medium, or High based
// on skill overlap and the number of skills to learn.
func classifyDifficulty(overlapPct float64, numToLearn int) string {
	if overlapPct >= lowOverlapPct && numToLearn <= lowMaxToLearn {
		return types.DifficultyLow
	}
	if overlapPct < highOverlapPct || numToLearn > highMinToLearn {
		return types.DifficultyHigh
	}
	return types.DifficultyMedium
}

// Transition-time model: base months by difficulty, widened per skill
// to learn and by missing overlap, capped at reasonable limits.
const (
	perSkillMonths  = 0.5
	overlapDivisor  = 20.0
	minMonthsCap    = 36
	maxMonthsCap    = 48
	transitionNote  = "Rough estimate; actual time depends on learning pace, available resources, and job market conditions."
)

// estimateTransitionTime produces a months range for completing the
// switch. Estimates are deliberately conservative.
func estimateTransitionTime(difficulty string, numToLearn int, overlapPct float64) types.TransitionTime {
	var baseMin, baseMax float64
	switch difficulty {
	case types.DifficultyLow:
		baseMin, baseMax = 3, 6
	case types.DifficultyMedium:
		baseMin, baseMax = 6, 12
	default:
		baseMin, baseMax = 12, 24
	}

	skillAdj := float64(numToLearn) * perSkillMonths
	overlapAdj := (100 - overlapPct) / overlapDivisor

	minMonths := int(baseMin + skillAdj + overlapAdj)
	maxMonths := int(baseMax + skillAdj*1.5 + overlapAdj*1.5)

	if minMonths > minMonthsCap {
		minMonths = minMonthsCap
	}
	if maxMonths > maxMonthsCap {
		maxMonths = maxMonthsCap
	}

	return types.TransitionTime{
		MinMonths: minMonths,
		MaxMonths: maxMonths,
		Range:     fmt.Sprintf("%d-%d months", minMonths, maxMonths),
		Note:      transitionNote,
	}
}
