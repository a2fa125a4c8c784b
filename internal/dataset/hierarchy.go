// Package dataset loads the three inputs of an evaluation run: the type
// hierarchy table, the gold records, and the system's predicted records.
package dataset

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/smarttask/typeval/internal/hierarchy"
	"github.com/smarttask/typeval/internal/pkg/errors"
	"github.com/smarttask/typeval/internal/pkg/logger"
)

// LoadHierarchy reads the type hierarchy from a TSV file with a header row
// and Type, Depth, Parent columns. Any row that does not parse into those
// three fields aborts the load.
func LoadHierarchy(path string, log *logger.Logger) (*hierarchy.Hierarchy, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening hierarchy file: %w", err)
	}
	defer f.Close()

	var rows []hierarchy.Row
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo == 1 {
			continue // header row
		}
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 3 {
			return nil, errors.MalformedInput(
				fmt.Sprintf("%s:%d: expected 3 tab-separated fields, got %d", path, lineNo, len(fields)))
		}
		depth, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, errors.MalformedInput(
				fmt.Sprintf("%s:%d: depth %q is not an integer", path, lineNo, fields[1]))
		}
		rows = append(rows, hierarchy.Row{Name: fields[0], Depth: depth, Parent: fields[2]})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading hierarchy file: %w", err)
	}

	h, err := hierarchy.Load(rows)
	if err != nil {
		return nil, err
	}
	log.Info("type hierarchy loaded", "path", path, "types", h.Len(), "max_depth", h.MaxDepth())
	return h, nil
}
