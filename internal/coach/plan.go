// Package coach generates deterministic coaching plans for a target
// career: next actions, a seven-day plan, and a learning roadmap built
// from fixed templates filled with catalog data and the user's skill
// gaps. No generated text beyond these templates.
package coach

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/fairpath/internal/types"
)

// Roadmap sizing bounds.
const (
	minRoadmapWeeks = 2
	maxRoadmapWeeks = 6
	maxFocusSkills  = 6
)

// Options select the optional plan sections.
type Options struct {
	IncludePortfolio bool
	IncludeInterview bool
}

// BuildPlan produces the coaching plan for a target career. The profile
// is optional; when present, its skills shrink the gap list the plan is
// built around. Identical inputs always produce the identical plan.
func BuildPlan(career *types.CareerRecord, profile *types.UserProfile, opts Options) *types.CoachPlan {
	focus := focusSkills(career)
	gaps := skillGaps(focus, profile)

	plan := &types.CoachPlan{
		Career: types.CareerRef{
			CareerID: career.CareerID,
			Name:     career.Name,
			SOCCode:  career.SOCCode,
		},
		NextActionsToday: nextActions(career, gaps),
		SevenDayPlan:     sevenDayPlan(career, gaps),
		LearningRoadmap:  roadmap(career, gaps),
	}

	if opts.IncludePortfolio {
		plan.PortfolioSteps = portfolioSteps(career, focus)
	}
	if opts.IncludeInterview {
		plan.InterviewSteps = interviewSteps(career, focus)
	}
	return plan
}

// focusSkills returns the career's most important skills, highest
// importance first, capped at maxFocusSkills.
func focusSkills(career *types.CareerRecord) []string {
	skills := make([]types.SkillRating, len(career.Skills))
	copy(skills, career.Skills)
	sort.Slice(skills, func(i, j int) bool {
		if skills[i].Importance != skills[j].Importance {
			return skills[i].Importance > skills[j].Importance
		}
		return skills[i].Name < skills[j].Name
	})

	names := make([]string, 0, maxFocusSkills)
	for _, s := range skills {
		if len(names) == maxFocusSkills {
			break
		}
		names = append(names, s.Name)
	}
	return names
}

// skillGaps filters focus skills down to those the user does not
// already claim, compared case-insensitively. Without a profile every
// focus skill is a gap.
func skillGaps(focus []string, profile *types.UserProfile) []string {
	if profile == nil || len(profile.Skills) == 0 {
		return focus
	}

	have := make(map[string]bool, len(profile.Skills))
	for _, s := range profile.Skills {
		have[strings.ToLower(strings.TrimSpace(s))] = true
	}

	var gaps []string
	for _, s := range focus {
		if !have[strings.ToLower(s)] {
			gaps = append(gaps, s)
		}
	}
	return gaps
}

func nextActions(career *types.CareerRecord, gaps []string) []types.CoachAction {
	actions := []types.CoachAction{
		{
			Action:        fmt.Sprintf("Read the day-in-the-life profile for %s", career.Name),
			Description:   fmt.Sprintf("Review the typical tasks and responsibilities of a %s to confirm the role matches your expectations.", career.Name),
			EstimatedTime: "30 minutes",
			Priority:      types.PriorityHigh,
		},
	}

	if len(gaps) > 0 {
		actions = append(actions, types.CoachAction{
			Action:        fmt.Sprintf("Start a learning resource for %s", gaps[0]),
			Description:   fmt.Sprintf("%s is the most important skill you have not listed; find an introductory course or tutorial and complete the first module.", gaps[0]),
			EstimatedTime: "1 hour",
			Priority:      types.PriorityHigh,
		})
	} else {
		actions = append(actions, types.CoachAction{
			Action:        "Audit your strongest skills against current job postings",
			Description:   fmt.Sprintf("You already cover the core skills for %s; verify how recent postings phrase them and note any tooling gaps.", career.Name),
			EstimatedTime: "1 hour",
			Priority:      types.PriorityHigh,
		})
	}

	actions = append(actions, types.CoachAction{
		Action:        "Reach out to one person working in this field",
		Description:   fmt.Sprintf("Find someone with the title %s and ask for a short conversation about how they got started.", career.Name),
		EstimatedTime: "20 minutes",
		Priority:      types.PriorityMedium,
	})

	return actions
}

func sevenDayPlan(career *types.CareerRecord, gaps []string) []types.DayPlan {
	gapAt := func(i int) string {
		if len(gaps) == 0 {
			return fmt.Sprintf("advanced %s topics", career.Name)
		}
		return gaps[i%len(gaps)]
	}

	return []types.DayPlan{
		{
			Day:   1,
			Focus: "Orientation",
			Tasks: []types.DayTask{
				{Task: fmt.Sprintf("Research what a %s does day to day", career.Name), TimeEstimate: "2 hours", Resources: []string{"O*NET occupation profile", "Job postings"}},
			},
			Milestone: "Clear picture of the role and its requirements",
		},
		{
			Day:   2,
			Focus: fmt.Sprintf("Foundations of %s", gapAt(0)),
			Tasks: []types.DayTask{
				{Task: fmt.Sprintf("Complete an introductory lesson on %s", gapAt(0)), TimeEstimate: "2 hours", Resources: []string{"Free online course"}},
			},
			Milestone: fmt.Sprintf("First practical exposure to %s", gapAt(0)),
		},
		{
			Day:   3,
			Focus: fmt.Sprintf("Practice %s", gapAt(0)),
			Tasks: []types.DayTask{
				{Task: fmt.Sprintf("Apply %s in a small self-contained exercise", gapAt(0)), TimeEstimate: "2 hours"},
			},
			Milestone: "One completed exercise you can explain",
		},
		{
			Day:   4,
			Focus: fmt.Sprintf("Foundations of %s", gapAt(1)),
			Tasks: []types.DayTask{
				{Task: fmt.Sprintf("Complete an introductory lesson on %s", gapAt(1)), TimeEstimate: "2 hours", Resources: []string{"Free online course"}},
			},
			Milestone: fmt.Sprintf("First practical exposure to %s", gapAt(1)),
		},
		{
			Day:   5,
			Focus: fmt.Sprintf("Practice %s", gapAt(1)),
			Tasks: []types.DayTask{
				{Task: fmt.Sprintf("Apply %s in a small self-contained exercise", gapAt(1)), TimeEstimate: "2 hours"},
			},
			Milestone: "A second completed exercise",
		},
		{
			Day:   6,
			Focus: "Make it visible",
			Tasks: []types.DayTask{
				{Task: "Write up both exercises as a short portfolio entry", TimeEstimate: "90 minutes"},
			},
			Milestone: "Shareable evidence of this week's learning",
		},
		{
			Day:   7,
			Focus: "Review and plan ahead",
			Tasks: []types.DayTask{
				{Task: "Review the week and pick the next two skills to tackle", TimeEstimate: "1 hour"},
			},
			Milestone: "Committed plan for the coming weeks",
		},
	}
}

func roadmap(career *types.CareerRecord, gaps []string) types.Roadmap {
	weeks := minRoadmapWeeks + len(gaps)/2
	if weeks > maxRoadmapWeeks {
		weeks = maxRoadmapWeeks
	}

	rm := types.Roadmap{
		DurationWeeks: weeks,
		Overview: fmt.Sprintf("A %d-week plan building the skills that matter most for %s, from fundamentals to applied practice.",
			weeks, career.Name),
	}

	for w := 1; w <= weeks; w++ {
		week := types.RoadmapWeek{Week: w}
		switch {
		case w == 1:
			week.Theme = "Fundamentals"
			week.Goal = fmt.Sprintf("Understand the scope of the %s role and set up your learning environment", career.Name)
		case w == weeks:
			week.Theme = "Job readiness"
			week.Goal = "Polish portfolio entries and align your materials with real postings"
		default:
			week.Theme = "Core skill building"
			week.Goal = "Hands-on progress on the highest-impact skill gaps"
		}
		// Distribute gap skills across the middle weeks round-robin.
		for i, g := range gaps {
			if i%weeks == w-1 {
				week.Skills = append(week.Skills, g)
			}
		}
		rm.Weeks = append(rm.Weeks, week)
	}

	return rm
}

func portfolioSteps(career *types.CareerRecord, focus []string) []types.CoachStep {
	primary := career.Name
	if len(focus) > 0 {
		primary = focus[0]
	}

	return []types.CoachStep{
		{
			Step:          1,
			Title:         fmt.Sprintf("Build a small project centered on %s", primary),
			Description:   fmt.Sprintf("A focused, finished project demonstrating %s carries more weight than several unfinished ones.", primary),
			EstimatedTime: "1-2 weeks",
			Tips:          []string{"Keep the scope small enough to finish", "Write a short README explaining the outcome"},
		},
		{
			Step:          2,
			Title:         "Document your process publicly",
			Description:   "Publish a write-up of what you built and what you learned; hiring managers read these.",
			EstimatedTime: "2-3 hours",
		},
		{
			Step:          3,
			Title:         "Collect everything in one place",
			Description:   "A single page linking your projects, write-ups, and contact details is enough to start.",
			EstimatedTime: "2 hours",
		},
	}
}

func interviewSteps(career *types.CareerRecord, focus []string) []types.CoachStep {
	skillList := strings.Join(focus, ", ")
	if skillList == "" {
		skillList = "the role's core skills"
	}

	return []types.CoachStep{
		{
			Step:          1,
			Title:         "Prepare stories for the core skills",
			Description:   fmt.Sprintf("For each of %s, prepare one concrete story showing how you used or learned it.", skillList),
			EstimatedTime: "3 hours",
			Tips:          []string{"Structure stories as situation, action, result"},
		},
		{
			Step:          2,
			Title:         fmt.Sprintf("Research how %s interviews are run", career.Name),
			Description:   "Formats differ by field; find out whether to expect practical exercises, panels, or portfolio reviews.",
			EstimatedTime: "1 hour",
		},
		{
			Step:          3,
			Title:         "Run one mock interview",
			Description:   "Practice out loud with a friend or record yourself; timing and phrasing improve fast with one rehearsal.",
			EstimatedTime: "1 hour",
		},
	}
}
