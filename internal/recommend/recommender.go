package recommend

import (
	"context"
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/fairpath/internal/catalog"
	"github.com/jonathan/fairpath/internal/explain"
	"github.com/jonathan/fairpath/internal/features"
	"github.com/jonathan/fairpath/internal/ranking"
	"github.com/jonathan/fairpath/internal/types"
)

// Recommender ranks every catalog career for a validated profile. It is
// safe for concurrent use: the catalog, feature space, and career
// vectors are read-only after first use, and all per-request state is
// local.
type Recommender struct {
	cat      *catalog.Catalog
	space    *features.Space
	baseline *ranking.BaselineRanker
	models   *ranking.ModelLoader
	fuzzy    bool

	vecOnce    sync.Once
	careerVecs [][]float64
}

// New creates a recommender over a loaded catalog. fuzzyMatch controls
// whether user skills may resolve through punctuation-insensitive
// matching (see features.MatchSkills).
func New(cat *catalog.Catalog, space *features.Space, models *ranking.ModelLoader, fuzzyMatch bool) *Recommender {
	return &Recommender{
		cat:      cat,
		space:    space,
		baseline: ranking.NewBaselineRanker(space),
		models:   models,
		fuzzy:    fuzzyMatch,
	}
}

// ModelStatus exposes the model loader state for observability.
func (r *Recommender) ModelStatus() ranking.ModelStatus {
	return r.models.Status()
}

// WarmModel triggers the lazy model load without scoring anything, so
// status checks reflect a real load attempt.
func (r *Recommender) WarmModel() {
	_, _ = r.models.Get()
}

// careerVectors builds the per-career vectors once and caches them for
// the process lifetime.
func (r *Recommender) careerVectors() [][]float64 {
	r.vecOnce.Do(func() {
		careers := r.cat.Careers()
		r.careerVecs = make([][]float64, len(careers))
		for i := range careers {
			r.careerVecs[i] = r.space.BuildCareerVector(&careers[i])
		}
	})
	return r.careerVecs
}

// scored pairs a catalog index with its score for sorting.
type scored struct {
	index int
	score float64
}

// Recommend scores every catalog career and returns the ranked,
// explained top slice. The profile must already have passed guardrail
// validation.
func (r *Recommender) Recommend(ctx context.Context, profile *types.UserProfile, opts Options) (*types.RecommendationSet, error) {
	opts = opts.normalized()

	userVec, match := r.space.BuildUserVector(profile, r.fuzzy)

	scorer := ranking.Scorer(r.baseline)
	if opts.UseML {
		if model, ok := r.models.Get(); ok {
			scorer = model
		}
	}

	careers := r.cat.Careers()
	careerVecs := r.careerVectors()
	scores := make([]float64, len(careers))

	// Score all careers in parallel; scoring is pure CPU work, so cap
	// the group at the CPU count.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i := range careers {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			scores[i] = scorer.Score(userVec, careerVecs[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	order := make([]scored, len(careers))
	for i := range careers {
		order[i] = scored{index: i, score: scores[i]}
	}
	// Descending by score with a stable tie-break on career_id so equal
	// scores always order the same way.
	sort.Slice(order, func(i, j int) bool {
		if order[i].score != order[j].score {
			return order[i].score > order[j].score
		}
		return careers[order[i].index].CareerID < careers[order[j].index].CareerID
	})

	selected := r.selectResults(order, profile, opts)

	richness := explain.Richness(len(match.Matched), profile)
	recommendations := make([]types.Recommendation, 0, len(selected))
	for _, s := range selected {
		career := &careers[s.index]
		confidence, band := explain.Estimate(s.score, richness)
		recommendations = append(recommendations, types.Recommendation{
			CareerID:    career.CareerID,
			Name:        career.Name,
			SOCCode:     career.SOCCode,
			Score:       s.score,
			Confidence:  confidence,
			ScoreRange:  band,
			Explanation: explain.Explain(r.space, userVec, careerVecs[s.index], scorer.Method(), match.Unmatched),
		})
	}

	return &types.RecommendationSet{
		Recommendations: recommendations,
		TotalCount:      len(recommendations),
		InputQuality:    explain.InputQuality(profile),
		Method:          scorer.Method(),
	}, nil
}

// selectResults applies constraints and result-count guardrails to the
// sorted order. Constraint filtering never starves the minimum count:
// when too few careers satisfy the constraints, the best-scoring
// filtered careers are backfilled so a compliant set is always returned.
func (r *Recommender) selectResults(order []scored, profile *types.UserProfile, opts Options) []scored {
	limit := opts.TopN
	if limit > len(order) {
		limit = len(order)
	}
	minimum := MinRecommendations
	if minimum > len(order) {
		minimum = len(order)
	}

	careers := r.cat.Careers()
	selected := make([]scored, 0, limit)
	var rejected []scored
	for _, s := range order {
		if len(selected) == limit {
			break
		}
		if satisfiesConstraints(&careers[s.index], profile.Constraints) {
			selected = append(selected, s)
		} else {
			rejected = append(rejected, s)
		}
	}

	// Backfill to the guaranteed minimum from the filtered careers, in
	// score order.
	for _, s := range rejected {
		if len(selected) >= minimum {
			break
		}
		selected = append(selected, s)
	}

	// Backfill can break score ordering; restore it.
	sort.Slice(selected, func(i, j int) bool {
		if selected[i].score != selected[j].score {
			return selected[i].score > selected[j].score
		}
		return careers[selected[i].index].CareerID < careers[selected[j].index].CareerID
	})
	return selected
}

// satisfiesConstraints checks a career against the optional structured
// filters. Careers missing the data a constraint needs pass the check:
// constraints narrow, they never exclude on unknowns.
func satisfiesConstraints(career *types.CareerRecord, c *types.Constraints) bool {
	if c == nil {
		return true
	}

	if c.MinWage > 0 && career.Outlook != nil && career.Outlook.MedianWage > 0 {
		if career.Outlook.MedianWage < c.MinWage {
			return false
		}
	}

	if c.MaxEducationLevel > 0 && career.EducationLevel != "" {
		if types.EducationRank(career.EducationLevel) > float64(c.MaxEducationLevel) {
			return false
		}
	}

	return true
}
