// Package report renders evaluation summaries for the CLI.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/smarttask/typeval/internal/evaluation"
)

// Render writes an evaluation summary in the requested format ("text" or
// "json").
func Render(w io.Writer, s *evaluation.Summary, format string) error {
	if format == "json" {
		return renderJSON(w, s)
	}

	fmt.Fprintln(w, "Evaluation results:")
	fmt.Fprintln(w, "-------------------")
	fmt.Fprintf(w, "Category prediction (based on %d questions)\n", s.CategoryCount)
	fmt.Fprintf(w, "  Accuracy: %5.3f\n", s.CategoryAccuracy)
	fmt.Fprintf(w, "Type ranking (based on %d questions)\n", s.TypeCount)

	cutoffs := make([]int, 0, len(s.MeanNDCG))
	for k := range s.MeanNDCG {
		cutoffs = append(cutoffs, k)
	}
	sort.Ints(cutoffs)
	for _, k := range cutoffs {
		fmt.Fprintf(w, "  NDCG@%d: %5.3f\n", k, s.MeanNDCG[k])
	}
	return nil
}

// RenderStrict writes a strict (exact-match) evaluation summary.
func RenderStrict(w io.Writer, s *evaluation.StrictSummary, format string) error {
	if format == "json" {
		return renderJSON(w, s)
	}

	fmt.Fprintln(w, "Strict evaluation results:")
	fmt.Fprintln(w, "--------------------------")
	fmt.Fprintf(w, "Questions evaluated: %d\n", s.QuestionCount)
	fmt.Fprintf(w, "Category matches:    %d\n", s.CategoryMatches)
	fmt.Fprintf(w, "MRR: %5.3f\n", s.MRR)
	return nil
}

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
