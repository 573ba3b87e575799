// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/fairpath/internal/ranking"
	"github.com/jonathan/fairpath/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRecommendations outputs the ranked recommendations with scores,
// confidence, and the top explanation point for each.
func (p *Printer) PrintRecommendations(set *types.RecommendationSet) {
	if set == nil || len(set.Recommendations) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Method: %s   Input quality: %s\n\n", set.Method, set.InputQuality))

	count := min(len(set.Recommendations), maxItemsToShow)
	for i := 0; i < count; i++ {
		rec := set.Recommendations[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, rec.Name))
		sb.WriteString(fmt.Sprintf("    Score: %.2f (%.2f-%.2f, %s confidence)\n",
			rec.Score, rec.ScoreRange.Min, rec.ScoreRange.Max, rec.Confidence))
		if len(rec.Explanation.WhyPoints) > 0 {
			why := rec.Explanation.WhyPoints[0]
			if len(why) > 48 {
				why = why[:45] + "..."
			}
			sb.WriteString(fmt.Sprintf("    %s\n", why))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(set.Recommendations) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more recommendations", len(set.Recommendations)-maxItemsToShow))
	}

	p.printBox("CAREER RECOMMENDATIONS", sb.String())
}

// PrintSwitchAnalysis outputs the career-switch summary: overlap,
// difficulty, time estimate, and the top skills to learn.
func (p *Printer) PrintSwitchAnalysis(analysis *types.SwitchAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\n", analysis.SourceCareer.Name))
	sb.WriteString(fmt.Sprintf("To:   %s\n\n", analysis.TargetCareer.Name))
	sb.WriteString(fmt.Sprintf("Skill overlap: %.1f%%\n", analysis.SkillOverlap.OverlapPercentage))
	sb.WriteString(fmt.Sprintf("Difficulty:    %s\n", analysis.Difficulty))
	sb.WriteString(fmt.Sprintf("Time estimate: %s\n", analysis.TransitionTime.Range))

	if toLearn := analysis.TransferMap.NeedsLearning; len(toLearn) > 0 {
		sb.WriteString("\nSkills to learn:\n")
		count := min(len(toLearn), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", toLearn[i].Skill))
		}
		if len(toLearn) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(toLearn)-maxItemsToShow))
		}
	}

	sb.WriteString(fmt.Sprintf("\n%s", analysis.OverallAssessment))

	p.printBox("CAREER SWITCH ANALYSIS", sb.String())
}

// PrintCoachPlan outputs the immediate actions and roadmap overview.
func (p *Printer) PrintCoachPlan(plan *types.CoachPlan) {
	if plan == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Target: %s\n\n", plan.Career.Name))

	if len(plan.NextActionsToday) > 0 {
		sb.WriteString("Next actions today:\n")
		for _, a := range plan.NextActionsToday {
			action := a.Action
			if len(action) > 48 {
				action = action[:45] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s (%s)\n", action, a.EstimatedTime))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Roadmap: %d weeks, %d-day starter plan",
		plan.LearningRoadmap.DurationWeeks, len(plan.SevenDayPlan)))

	p.printBox("COACHING PLAN", sb.String())
}

// PrintGuardrailViolations outputs rejected profile fields.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintGuardrailViolations(violations []error) {
	if len(violations) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ PROFILE PASSES ALL GUARDRAILS")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d violations:\n\n", len(violations)))

	for i, v := range violations {
		details := v.Error()
		if len(details) > 48 {
			details = details[:45] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s\n", details))
		if i < len(violations)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("GUARDRAIL VIOLATIONS", sb.String())
}

// PrintModelStatus outputs the scoring model state.
func (p *Printer) PrintModelStatus(status ranking.ModelStatus) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("State: %s\n", status.State))
	if status.Version != "" {
		sb.WriteString(fmt.Sprintf("Version: %s\n", status.Version))
		sb.WriteString(fmt.Sprintf("Features: %d\n", status.FeatureCount))
	}
	if status.Error != "" {
		errMsg := status.Error
		if len(errMsg) > 48 {
			errMsg = errMsg[:45] + "..."
		}
		sb.WriteString(fmt.Sprintf("Error: %s\n", errMsg))
	}
	sb.WriteString("Baseline scorer is always available")

	p.printBox("MODEL STATUS", sb.String())
}
