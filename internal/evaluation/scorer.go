package evaluation

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/smarttask/typeval/internal/hierarchy"
	"github.com/smarttask/typeval/internal/pkg/errors"
	"github.com/smarttask/typeval/internal/pkg/logger"
)

// Scorer orchestrates per-question evaluation against the type hierarchy.
type Scorer struct {
	hierarchy *hierarchy.Hierarchy
	cutoffs   []int
	workers   int
	log       *logger.Logger
}

// NewScorer creates a new scorer. The hierarchy must have a positive
// maximum depth since it normalizes gain distances.
func NewScorer(h *hierarchy.Hierarchy, cutoffs []int, workers int, log *logger.Logger) (*Scorer, error) {
	if h.MaxDepth() < 1 {
		return nil, errors.ValidationError("hierarchy max depth must be positive")
	}
	if len(cutoffs) == 0 {
		return nil, errors.ValidationError("at least one NDCG cutoff is required")
	}
	if workers < 1 {
		workers = 1
	}
	if log == nil {
		log = logger.Default()
	}
	return &Scorer{
		hierarchy: h,
		cutoffs:   cutoffs,
		workers:   workers,
		log:       log,
	}, nil
}

// Evaluate scores a system's predictions against the gold records and
// aggregates the results. Questions are scored concurrently (the hierarchy
// is read-only after load) and folded in gold-ID order so aggregates are
// deterministic.
func (s *Scorer) Evaluate(ctx context.Context, gold, predictions map[string]Question) (*Summary, error) {
	ids := make([]string, 0, len(gold))
	for id := range gold {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	results := make([]*Result, len(ids))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := s.scoreQuestion(id, gold[id], predictions)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return s.Summarize(results), nil
}

func (s *Scorer) scoreQuestion(id string, gold Question, predictions map[string]Question) (*Result, error) {
	predicted, ok := predictions[id]
	if !ok {
		// An absent prediction still counts against accuracy: it scores
		// as an empty prediction, which can never match the category.
		s.log.WithError(errors.MissingPrediction(id)).Warn("no prediction made")
		predicted = Question{ID: id}
	}

	res := &Result{QuestionID: id, NDCG: make(map[int]float64, len(s.cutoffs))}
	if predicted.Category != gold.Category {
		return res, nil
	}
	res.CategoryHit = true

	var gains, idealGains []float64
	switch gold.Category {
	case CategoryLiteral:
		gains, idealGains = s.literalGains(gold, predicted)
	case CategoryResource:
		var err error
		gains, idealGains, err = s.resourceGains(id, gold, predicted)
		if err != nil {
			return nil, err
		}
		if gains == nil {
			return res, nil
		}
	default:
		// Boolean questions have no type ranking to score.
		return res, nil
	}

	for _, k := range s.cutoffs {
		score, err := NDCG(gains, idealGains, k)
		if err != nil {
			// A zero ideal DCG means inconsistent data; abort the run
			// instead of recording a fake score.
			if appErr, ok := err.(*errors.AppError); ok {
				appErr.WithDetail("question_id", id)
			}
			return nil, err
		}
		res.NDCG[k] = score
	}
	res.TypeScored = true
	return res, nil
}

// literalGains reduces a literal question to a one-element ranking: the
// single predicted type is either right or wrong.
func (s *Scorer) literalGains(gold, predicted Question) (gains, idealGains []float64) {
	hit := 0.0
	if len(gold.Types) > 0 && len(predicted.Types) > 0 && gold.Types[0] == predicted.Types[0] {
		hit = 1
	}
	return []float64{hit}, []float64{1}
}

// resourceGains computes graded gains for a ranked type prediction. A nil
// gains slice means the question has no usable gold types and is excluded
// from type ranking.
func (s *Scorer) resourceGains(id string, gold, predicted Question) (gains, idealGains []float64, err error) {
	if len(gold.Types) == 0 {
		s.log.WithQuestion(id).Warn("no gold types given")
		return nil, nil, nil
	}

	// Supertypes that co-occur with their own subtypes carry no extra
	// information and would double-count.
	goldTypes := s.hierarchy.MostSpecific(gold.Types)
	if len(goldTypes) == 0 {
		s.log.WithQuestion(id).Warn("gold types reduce to empty set")
		return nil, nil, nil
	}

	gains = TypeGains(s.hierarchy, predicted.Types, goldTypes)
	idealGains = IdealTypeGains(s.hierarchy, goldTypes)
	return gains, idealGains, nil
}

// Summarize aggregates results across questions.
func (s *Scorer) Summarize(results []*Result) *Summary {
	summary := &Summary{
		MeanNDCG: make(map[int]float64, len(s.cutoffs)),
	}

	for _, r := range results {
		if r == nil {
			continue
		}
		summary.CategoryCount++
		if r.CategoryHit {
			summary.CategoryAccuracy++
		}
		if !r.TypeScored {
			continue
		}
		summary.TypeCount++
		for k, v := range r.NDCG {
			summary.MeanNDCG[k] += v
		}
	}

	if summary.CategoryCount > 0 {
		summary.CategoryAccuracy /= float64(summary.CategoryCount)
	}
	if summary.TypeCount > 0 {
		for k := range summary.MeanNDCG {
			summary.MeanNDCG[k] /= float64(summary.TypeCount)
		}
	}
	return summary
}
