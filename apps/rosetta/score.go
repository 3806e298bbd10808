package rosetta

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
)

// TotalColumn is the field index of the total score in a score table
// row. Column 0 is the 'SCORE:' record tag.
const TotalColumn = 1

// Row is one scored structure: its total score and its identifier, which
// is always the last column of the table.
type Row struct {
	Total       float64
	Description string
}

// Table is a parsed score table.
type Table struct {
	Path string
	Rows []Row
}

// ReadScoreTable parses a whitespace-delimited score table. The first
// line is the header and is skipped; 'SEQUENCE:' preamble lines and blank
// lines are ignored. Every remaining line must carry a numeric total in
// TotalColumn and ends with the structure identifier.
func ReadScoreTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	table := &Table{Path: path}
	scanner := bufio.NewScanner(f)
	header := true
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "SEQUENCE:") {
			continue
		}
		if header {
			header = false
			continue
		}
		fields := strings.Fields(line)
		if len(fields) <= TotalColumn {
			return nil, fmt.Errorf("%s: malformed score row: %q", path, line)
		}
		total, err := strconv.ParseFloat(fields[TotalColumn], 64)
		if err != nil {
			return nil, fmt.Errorf("%s: bad total score in %q: %w", path, line, err)
		}
		table.Rows = append(table.Rows, Row{
			Total:       total,
			Description: fields[len(fields)-1],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return table, nil
}

// Top returns the n best rows, ascending by total score (lower free
// energy is better). The sort is stable: rows with equal totals keep
// their original table order, which makes the tie-break deterministic.
func (t *Table) Top(n int) []Row {
	rows := make([]Row, len(t.Rows))
	copy(rows, t.Rows)
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Total < rows[j].Total
	})
	if n > len(rows) {
		n = len(rows)
	}
	return rows[:n]
}

// Summarize prints a ranked summary of the score table at tablePath: the
// number of structures scored and the top n by total score. A missing
// table is a hard failure even when the application exited 0 — the
// toolkit is known to occasionally exit clean without producing output —
// and the error points at the log file.
func Summarize(w io.Writer, tablePath, logPath string, n int) error {
	if _, err := os.Stat(tablePath); err != nil {
		return fmt.Errorf("no score table was produced at '%s'; "+
			"inspect the log at '%s'", tablePath, logPath)
	}
	table, err := ReadScoreTable(tablePath)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%d structures scored (%s)\n", len(table.Rows), tablePath)
	tab := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tab, "rank\ttotal_score\tdescription")
	for i, row := range table.Top(n) {
		fmt.Fprintf(tab, "%d\t%.3f\t%s\n", i+1, row.Total, row.Description)
	}
	return tab.Flush()
}
