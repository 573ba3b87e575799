package types

// Action priorities used in coaching plans.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// CoachAction is a single actionable task for today.
type CoachAction struct {
	Action        string `json:"action"`
	Description   string `json:"description"`
	EstimatedTime string `json:"estimated_time"`
	Priority      string `json:"priority"`
}

// DayTask is one task inside a day plan.
type DayTask struct {
	Task         string   `json:"task"`
	TimeEstimate string   `json:"time_estimate"`
	Resources    []string `json:"resources,omitempty"`
}

// DayPlan is one day of the seven-day plan.
type DayPlan struct {
	Day       int       `json:"day"`
	Focus     string    `json:"focus"`
	Tasks     []DayTask `json:"tasks"`
	Milestone string    `json:"milestone"`
}

// RoadmapWeek is one week of the learning roadmap.
type RoadmapWeek struct {
	Week   int      `json:"week"`
	Theme  string   `json:"theme"`
	Skills []string `json:"skills"`
	Goal   string   `json:"goal"`
}

// Roadmap is the multi-week learning roadmap for a target career.
type Roadmap struct {
	DurationWeeks int           `json:"duration_weeks"`
	Overview      string        `json:"overview"`
	Weeks         []RoadmapWeek `json:"weeks"`
}

// CoachStep is an optional portfolio or interview preparation step.
type CoachStep struct {
	Step          int      `json:"step"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	EstimatedTime string   `json:"estimated_time"`
	Tips          []string `json:"tips,omitempty"`
}

// CoachPlan is the deterministic coaching output for a target career.
type CoachPlan struct {
	Career           CareerRef     `json:"career"`
	NextActionsToday []CoachAction `json:"next_actions_today"`
	SevenDayPlan     []DayPlan     `json:"seven_day_plan"`
	LearningRoadmap  Roadmap       `json:"learning_roadmap"`
	PortfolioSteps   []CoachStep   `json:"portfolio_steps,omitempty"`
	InterviewSteps   []CoachStep   `json:"interview_steps,omitempty"`
}
