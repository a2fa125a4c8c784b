package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/smarttask/typeval/internal/evaluation"
	"github.com/smarttask/typeval/internal/pkg/errors"
	"github.com/smarttask/typeval/internal/pkg/logger"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func quietLog() *logger.Logger {
	return logger.New("error", "text")
}

func TestLoadHierarchy(t *testing.T) {
	path := writeFile(t, "hierarchy.tsv",
		"Type\tDepth\tParent\n"+
			"Agent\t1\towl:Thing\n"+
			"Person\t2\tAgent\n"+
			"Athlete\t3\tPerson\n")

	h, err := LoadHierarchy(path, quietLog())
	if err != nil {
		t.Fatalf("LoadHierarchy() error = %v", err)
	}

	if h.Len() != 3 {
		t.Errorf("Len() = %d, want 3", h.Len())
	}
	if h.MaxDepth() != 3 {
		t.Errorf("MaxDepth() = %d, want 3", h.MaxDepth())
	}

	path3, err := h.PathOf("Athlete")
	if err != nil {
		t.Fatalf("PathOf(Athlete) error = %v", err)
	}
	if len(path3) != 3 || path3[0] != "Athlete" || path3[2] != "Agent" {
		t.Errorf("PathOf(Athlete) = %v, want [Athlete Person Agent]", path3)
	}
}

func TestLoadHierarchy_MalformedRows(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "missing field",
			content: "Type\tDepth\tParent\nAgent\t1\n",
		},
		{
			name:    "non-integer depth",
			content: "Type\tDepth\tParent\nAgent\tdeep\towl:Thing\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "hierarchy.tsv", tt.content)
			if _, err := LoadHierarchy(path, quietLog()); !errors.IsMalformedInput(err) {
				t.Errorf("LoadHierarchy() error = %v, want MALFORMED_INPUT", err)
			}
		})
	}
}

func TestLoadHierarchy_MissingFile(t *testing.T) {
	if _, err := LoadHierarchy(filepath.Join(t.TempDir(), "nope.tsv"), quietLog()); err == nil {
		t.Error("LoadHierarchy() error = nil, want error")
	}
}

func TestLoadGold(t *testing.T) {
	hPath := writeFile(t, "hierarchy.tsv",
		"Type\tDepth\tParent\nAgent\t1\towl:Thing\nPerson\t2\tAgent\n")
	h, err := LoadHierarchy(hPath, quietLog())
	if err != nil {
		t.Fatalf("LoadHierarchy() error = %v", err)
	}

	path := writeFile(t, "gold.json", `[
		{"id": "dbpedia_1", "question": "Who is it?", "category": "resource", "type": ["Person", "Droid"]},
		{"id": "dbpedia_2", "question": "", "category": "boolean", "type": ["boolean"]},
		{"id": "dbpedia_3", "question": "When?", "category": "literal", "type": ["date"]}
	]`)

	gold, err := LoadGold(path, h, quietLog())
	if err != nil {
		t.Fatalf("LoadGold() error = %v", err)
	}

	if len(gold) != 2 {
		t.Fatalf("len(gold) = %d, want 2 (empty question dropped)", len(gold))
	}

	q1 := gold["dbpedia_1"]
	if len(q1.Types) != 1 || q1.Types[0] != "Person" {
		t.Errorf("q1.Types = %v, want [Person] (unknown type dropped)", q1.Types)
	}

	q3 := gold["dbpedia_3"]
	if q3.Category != evaluation.CategoryLiteral || len(q3.Types) != 1 {
		t.Errorf("q3 = %+v, want literal with one type kept", q3)
	}
}

func TestLoadPredictions_NumericIDs(t *testing.T) {
	path := writeFile(t, "system.json", `[
		{"id": 9001, "category": "resource", "type": ["Person"]},
		{"id": "str_1", "category": "literal", "type": ["date"]}
	]`)

	predictions, err := LoadPredictions(path, quietLog())
	if err != nil {
		t.Fatalf("LoadPredictions() error = %v", err)
	}

	if _, ok := predictions["9001"]; !ok {
		t.Errorf("numeric ID not normalized to string: %v", predictions)
	}
	if _, ok := predictions["str_1"]; !ok {
		t.Errorf("string ID missing: %v", predictions)
	}
}

func TestLoadPredictions_BadJSON(t *testing.T) {
	path := writeFile(t, "system.json", `{"not": "an array"}`)
	if _, err := LoadPredictions(path, quietLog()); err == nil {
		t.Error("LoadPredictions() error = nil, want error")
	}
}

func TestLoadGoldLoose_KeepsUnknownTypes(t *testing.T) {
	path := writeFile(t, "gold.json", `[
		{"id": 1, "question": "Who?", "category": "resource", "type": ["Droid"]}
	]`)

	gold, err := LoadGoldLoose(path, quietLog())
	if err != nil {
		t.Fatalf("LoadGoldLoose() error = %v", err)
	}
	if len(gold["1"].Types) != 1 {
		t.Errorf("gold types = %v, want [Droid] kept without hierarchy filtering", gold["1"].Types)
	}
}
