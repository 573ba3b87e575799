package transition

import (
	"fmt"
	"sort"

	"github.com/jonathan/fairpath/internal/features"
	"github.com/jonathan/fairpath/internal/types"
)

// Transfer-map thresholds over normalized [0,1] skill weights: a skill
// transfers when both careers weight it at least transferLevel; it
// needs learning when the target demands learnLevel but the source sits
// below sourceFloor; weights in [optionalFloor, learnLevel) are optional.
// Targets below relevanceFloor are ignored entirely.
const (
	relevanceFloor = 0.1
	sourceFloor    = 0.2
	optionalFloor  = 0.2
	transferLevel  = 0.3
	learnLevel     = 0.4

	maxTransfers = 20
	maxToLearn   = 20
	maxOptional  = 15
)

// Analyzer performs career-switch analysis over a shared feature space.
type Analyzer struct {
	space *features.Space
}

// NewAnalyzer creates an analyzer for the given feature space.
func NewAnalyzer(space *features.Space) *Analyzer {
	return &Analyzer{space: space}
}

// AnalyzeSwitch compares a source and target career: name-set overlap,
// vector similarity, transfer map, difficulty, time estimate, and
// success/risk factors. Pure function of the two records.
func (a *Analyzer) AnalyzeSwitch(source, target *types.CareerRecord) *types.SwitchAnalysis {
	overlap := Overlap(source, target)

	sourceVec := a.space.SkillSub(a.space.BuildCareerVector(source))
	targetVec := a.space.SkillSub(a.space.BuildCareerVector(target))

	transferMap := a.buildTransferMap(sourceVec, targetVec)
	numToLearn := len(transferMap.NeedsLearning)

	difficulty := classifyDifficulty(overlap.OverlapPercentage, numToLearn)
	transitionTime := estimateTransitionTime(difficulty, numToLearn, overlap.OverlapPercentage)
	success, risk := assessFactors(source, target, overlap, numToLearn)

	return &types.SwitchAnalysis{
		SourceCareer:      types.CareerRef{CareerID: source.CareerID, Name: source.Name, SOCCode: source.SOCCode},
		TargetCareer:      types.CareerRef{CareerID: target.CareerID, Name: target.Name, SOCCode: target.SOCCode},
		SkillOverlap:      overlap,
		VectorSimilarity:  features.Cosine(sourceVec, targetVec),
		TransferMap:       transferMap,
		Difficulty:        difficulty,
		TransitionTime:    transitionTime,
		SuccessFactors:    success,
		RiskFactors:       risk,
		OverallAssessment: overallAssessment(len(success), len(risk)),
	}
}

// buildTransferMap buckets every relevant target skill by how it
// transfers from the source career.
func (a *Analyzer) buildTransferMap(sourceVec, targetVec []float64) types.TransferMap {
	var tm types.TransferMap

	for i, targetVal := range targetVec {
		if targetVal < relevanceFloor {
			continue
		}
		sourceVal := sourceVec[i]
		transfer := types.SkillTransfer{
			Skill:       a.space.SkillName(i),
			SourceLevel: sourceVal,
			TargetLevel: targetVal,
		}

		switch {
		case sourceVal >= transferLevel && targetVal >= transferLevel:
			tm.TransfersDirectly = append(tm.TransfersDirectly, transfer)
		case targetVal >= learnLevel && sourceVal < sourceFloor:
			transfer.Gap = targetVal - sourceVal
			tm.NeedsLearning = append(tm.NeedsLearning, transfer)
		case targetVal >= optionalFloor && targetVal < learnLevel:
			tm.OptionalSkills = append(tm.OptionalSkills, transfer)
		}
	}

	sortByTarget := func(s []types.SkillTransfer) {
		sort.Slice(s, func(i, j int) bool {
			if s[i].TargetLevel != s[j].TargetLevel {
				return s[i].TargetLevel > s[j].TargetLevel
			}
			return s[i].Skill < s[j].Skill
		})
	}
	sortByTarget(tm.TransfersDirectly)
	sortByTarget(tm.OptionalSkills)
	sort.Slice(tm.NeedsLearning, func(i, j int) bool {
		if tm.NeedsLearning[i].Gap != tm.NeedsLearning[j].Gap {
			return tm.NeedsLearning[i].Gap > tm.NeedsLearning[j].Gap
		}
		return tm.NeedsLearning[i].Skill < tm.NeedsLearning[j].Skill
	})

	tm.TransfersDirectly = capTransfers(tm.TransfersDirectly, maxTransfers)
	tm.NeedsLearning = capTransfers(tm.NeedsLearning, maxToLearn)
	tm.OptionalSkills = capTransfers(tm.OptionalSkills, maxOptional)
	return tm
}

func capTransfers(s []types.SkillTransfer, limit int) []types.SkillTransfer {
	if len(s) > limit {
		return s[:limit]
	}
	return s
}

// assessFactors derives success and risk factors from overlap, learning
// load, education requirements, and market outlook.
func assessFactors(source, target *types.CareerRecord, overlap types.SkillOverlap, numToLearn int) (success, risk []types.Factor) {
	pct := overlap.OverlapPercentage
	switch {
	case pct >= 60:
		success = append(success, types.Factor{
			Factor:      "High skill overlap",
			Description: fmt.Sprintf("About %.1f%% of your current skills transfer directly, giving you a solid foundation.", pct),
			Impact:      "positive",
		})
	case pct < 30:
		risk = append(risk, types.Factor{
			Factor:      "Low skill overlap",
			Description: fmt.Sprintf("Only %.1f%% skill overlap means many new skills to learn, which raises transition time and risk.", pct),
			Impact:      "negative",
		})
	}

	switch {
	case numToLearn <= 5:
		success = append(success, types.Factor{
			Factor:      "Manageable learning curve",
			Description: fmt.Sprintf("Only %d critical skills need to be learned, a reasonable amount to tackle.", numToLearn),
			Impact:      "positive",
		})
	case numToLearn > 15:
		risk = append(risk, types.Factor{
			Factor:      "Steep learning curve",
			Description: fmt.Sprintf("You would need to learn %d new skills, a significant time and effort investment.", numToLearn),
			Impact:      "negative",
		})
	}

	if source.EducationLevel != "" && target.EducationLevel != "" {
		sourceRank := types.EducationRank(source.EducationLevel)
		targetRank := types.EducationRank(target.EducationLevel)
		switch {
		case targetRank > sourceRank+1:
			risk = append(risk, types.Factor{
				Factor: "Education gap",
				Description: fmt.Sprintf("The target career typically requires %s education while your current role requires %s; additional education or certifications may be needed.",
					target.EducationLevel, source.EducationLevel),
				Impact: "negative",
			})
		case targetRank <= sourceRank:
			success = append(success, types.Factor{
				Factor: "Education requirements met",
				Description: fmt.Sprintf("Your current education level (%s) meets or exceeds the target requirement (%s).",
					source.EducationLevel, target.EducationLevel),
				Impact: "positive",
			})
		}
	}

	if target.Outlook != nil {
		growth := target.Outlook.GrowthRate
		switch {
		case growth > 10:
			success = append(success, types.Factor{
				Factor:      "Strong market growth",
				Description: fmt.Sprintf("The target career is growing at %.1f%% annually, meaning more openings and better job security.", growth),
				Impact:      "positive",
			})
		case growth < -5:
			risk = append(risk, types.Factor{
				Factor:      "Declining market",
				Description: fmt.Sprintf("The target career is declining at %.1f%% annually, which could mean fewer opportunities.", -growth),
				Impact:      "negative",
			})
		}
	}

	if source.Outlook != nil && target.Outlook != nil &&
		source.Outlook.MedianWage > 0 && target.Outlook.MedianWage > 0 {
		change := (target.Outlook.MedianWage - source.Outlook.MedianWage) / source.Outlook.MedianWage * 100
		switch {
		case change > 20:
			success = append(success, types.Factor{
				Factor: "Potential wage increase",
				Description: fmt.Sprintf("Median wage moves from $%.0f to $%.0f, a %.1f%% increase.",
					source.Outlook.MedianWage, target.Outlook.MedianWage, change),
				Impact: "positive",
			})
		case change < -10:
			risk = append(risk, types.Factor{
				Factor: "Potential wage decrease",
				Description: fmt.Sprintf("Median wage moves from $%.0f to $%.0f, a %.1f%% decrease.",
					source.Outlook.MedianWage, target.Outlook.MedianWage, -change),
				Impact: "negative",
			})
		}
	}

	return success, risk
}

// overallAssessment summarizes the factor balance in one sentence.
func overallAssessment(numSuccess, numRisk int) string {
	switch {
	case float64(numSuccess) > float64(numRisk)*1.5:
		return "Favorable transition with more positive factors than risks"
	case float64(numRisk) > float64(numSuccess)*1.5:
		return "Challenging transition with significant risks to consider"
	default:
		return "Moderate transition with balanced factors"
	}
}
