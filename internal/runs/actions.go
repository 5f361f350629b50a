package runs

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	dbpkg "github.com/dtnitsch/wordstat/pkg/db"
)

// RunsAction lists the runs stored by count --db
func RunsAction(c *cli.Context) error {
	database, err := dbpkg.Open(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	runs, err := database.ListRuns(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	writeRuns(os.Stdout, runs)
	return nil
}

func writeRuns(w io.Writer, runs []dbpkg.Run) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs found")
		return
	}

	// Print table header
	fmt.Fprintf(w, "%-6s %-20s %-8s %-8s %-8s %-8s %-10s %-20s %s\n",
		"ID", "Created", "Files", "Success", "Failed", "Workers", "Seconds", "Filter", "Top Words")
	fmt.Fprintln(w, strings.Repeat("-", 120))

	for _, r := range runs {
		fmt.Fprintf(w, "%-6d %-20s %-8d %-8d %-8d %-8d %-10.2f %-20s %s\n",
			r.RunID,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.TotalFiles,
			r.SuccessCount,
			r.FailedCount,
			r.Workers,
			r.TotalTimeSeconds,
			r.WordFilter,
			topWords(r.TopKeywords, 3),
		)
	}

	fmt.Fprintf(w, "\nTotal: %d runs\n", len(runs))
}

// topWords shortens the stored keywords to the first n for the table.
func topWords(keywords []string, n int) string {
	if len(keywords) > n {
		keywords = keywords[:n]
	}
	return strings.Join(keywords, " ")
}
