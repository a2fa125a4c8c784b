package evaluation

import (
	"sort"

	"github.com/smarttask/typeval/internal/pkg/logger"
)

// StrictResult holds the exact-match rank of a single question.
type StrictResult struct {
	QuestionID     string  `json:"question_id"`
	Rank           int     `json:"rank"`
	ReciprocalRank float64 `json:"rr"`
}

// StrictSummary aggregates exact-match ranks across the run.
type StrictSummary struct {
	MRR             float64 `json:"mrr"`
	QuestionCount   int     `json:"question_count"`
	CategoryMatches int     `json:"category_matches"`
}

// StrictScorer is the exact-match reciprocal-rank variant of the evaluation:
// no hierarchy, no graded gains. A predicted type only counts when it is
// literally present in the gold list, and the rank credited is the gold
// list position of the first such prediction.
type StrictScorer struct {
	log *logger.Logger
}

// NewStrictScorer creates a new strict scorer.
func NewStrictScorer(log *logger.Logger) *StrictScorer {
	if log == nil {
		log = logger.Default()
	}
	return &StrictScorer{log: log}
}

// Evaluate computes exact-match ranks for every gold question and aggregates
// them into a mean reciprocal rank.
func (s *StrictScorer) Evaluate(gold, predictions map[string]Question) ([]StrictResult, *StrictSummary) {
	ids := make([]string, 0, len(gold))
	for id := range gold {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	results := make([]StrictResult, 0, len(ids))
	summary := &StrictSummary{}
	for _, id := range ids {
		g := gold[id]
		predicted, ok := predictions[id]
		if !ok {
			s.log.WithQuestion(id).Warn("no prediction made")
		}

		rank := 0
		if ok && predicted.Category == g.Category {
			summary.CategoryMatches++
			rank = strictRank(g, predicted)
		}

		res := StrictResult{QuestionID: id, Rank: rank}
		if rank > 0 {
			res.ReciprocalRank = 1 / float64(rank)
		}
		results = append(results, res)
		summary.MRR += res.ReciprocalRank
		summary.QuestionCount++
	}

	if summary.QuestionCount > 0 {
		summary.MRR /= float64(summary.QuestionCount)
	}
	return results, summary
}

func strictRank(gold, predicted Question) int {
	if gold.Category == CategoryBoolean {
		// Category agreement is all a boolean question can get right.
		return 1
	}
	for _, p := range predicted.Types {
		for i, g := range gold.Types {
			if p == g {
				return i + 1
			}
		}
	}
	return 0
}
