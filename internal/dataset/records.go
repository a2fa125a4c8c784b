package dataset

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/smarttask/typeval/internal/evaluation"
	"github.com/smarttask/typeval/internal/hierarchy"
	"github.com/smarttask/typeval/internal/pkg/logger"
)

// questionID tolerates the two encodings found in the datasets: dbpedia
// question IDs are JSON strings, lc-quad2 IDs are JSON numbers.
type questionID string

func (q *questionID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*q = questionID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("question id must be a string or number: %w", err)
	}
	*q = questionID(n.String())
	return nil
}

type record struct {
	ID       questionID          `json:"id"`
	Question string              `json:"question"`
	Category evaluation.Category `json:"category"`
	Types    []string            `json:"type"`
}

// LoadGold reads the ground-truth JSON file. Records with empty question
// text are skipped, and resource-category types absent from the hierarchy
// are dropped; both are warnings, not failures.
func LoadGold(path string, h *hierarchy.Hierarchy, log *logger.Logger) (map[string]evaluation.Question, error) {
	records, err := readRecords(path)
	if err != nil {
		return nil, err
	}

	gold := make(map[string]evaluation.Question, len(records))
	for _, r := range records {
		if r.Question == "" {
			log.Warn("question text is empty", "question_id", string(r.ID))
			continue
		}

		types := make([]string, 0, len(r.Types))
		for _, t := range r.Types {
			if r.Category == evaluation.CategoryResource && !h.Contains(t) {
				log.Warn("unknown type", "question_id", string(r.ID), "type", t)
				continue
			}
			types = append(types, t)
		}

		gold[string(r.ID)] = evaluation.Question{
			ID:       string(r.ID),
			Category: r.Category,
			Types:    types,
		}
	}
	log.Info("ground truth loaded", "path", path, "questions", len(gold))
	return gold, nil
}

// LoadGoldLoose reads the ground-truth JSON file without a hierarchy:
// no type filtering happens. Used by the strict exact-match evaluation.
func LoadGoldLoose(path string, log *logger.Logger) (map[string]evaluation.Question, error) {
	records, err := readRecords(path)
	if err != nil {
		return nil, err
	}

	gold := make(map[string]evaluation.Question, len(records))
	for _, r := range records {
		if r.Question == "" {
			log.Warn("question text is empty", "question_id", string(r.ID))
			continue
		}
		gold[string(r.ID)] = evaluation.Question{
			ID:       string(r.ID),
			Category: r.Category,
			Types:    r.Types,
		}
	}
	log.Info("ground truth loaded", "path", path, "questions", len(gold))
	return gold, nil
}

// LoadPredictions reads the system output JSON file.
func LoadPredictions(path string, log *logger.Logger) (map[string]evaluation.Question, error) {
	records, err := readRecords(path)
	if err != nil {
		return nil, err
	}

	predictions := make(map[string]evaluation.Question, len(records))
	for _, r := range records {
		predictions[string(r.ID)] = evaluation.Question{
			ID:       string(r.ID),
			Category: r.Category,
			Types:    r.Types,
		}
	}
	log.Info("system predictions loaded", "path", path, "predictions", len(predictions))
	return predictions, nil
}

func readRecords(path string) ([]record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening records file: %w", err)
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return records, nil
}
