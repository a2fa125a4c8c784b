package evaluation

// Category is the answer category of a question.
type Category string

// Answer categories used by the task.
const (
	CategoryBoolean  Category = "boolean"
	CategoryLiteral  Category = "literal"
	CategoryResource Category = "resource"
)

// Question holds one record of a run: the expected answer category and the
// associated type list. For gold records the list is an unordered set; for
// system output it is a ranked list (at most 10 entries for resource
// questions).
type Question struct {
	ID       string   `json:"id"`
	Category Category `json:"category"`
	Types    []string `json:"type"`
}

// Result contains per-question scores before aggregation.
type Result struct {
	QuestionID  string          `json:"question_id"`
	CategoryHit bool            `json:"category_hit"`
	NDCG        map[int]float64 `json:"ndcg,omitempty"`
	// TypeScored is false when the question contributes to category
	// accuracy only (mismatched or boolean category, or unusable gold
	// types).
	TypeScored bool `json:"type_scored"`
}

// Summary aggregates scores across the whole run.
type Summary struct {
	// CategoryAccuracy is the share of questions whose predicted category
	// matched the gold category, over CategoryCount questions.
	CategoryAccuracy float64 `json:"category_accuracy"`
	CategoryCount    int     `json:"category_count"`

	// MeanNDCG maps each cutoff to the mean NDCG over TypeCount questions.
	MeanNDCG  map[int]float64 `json:"mean_ndcg"`
	TypeCount int             `json:"type_count"`
}
