package db

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/dtnitsch/wordstat/models"
	"github.com/dtnitsch/wordstat/pkg/mapreduce"
)

// runKeywords is how many of a run's most frequent words are kept on the
// runs row.
const runKeywords = 10

// Run represents a stored counting run
type Run struct {
	RunID            int64
	CreatedAt        time.Time
	TotalFiles       int
	SuccessCount     int
	FailedCount      int
	Workers          int
	TotalTimeSeconds float64
	Lowercase        bool
	Combined         bool
	WordFilter       string
	TopKeywords      []string // "word:count"
}

// FileErrorRecord is a stored per-file failure
type FileErrorRecord struct {
	Path         string
	ErrorType    string
	ErrorMessage string
}

// SaveReport stores a whole run in one transaction and returns its run ID.
// Either everything is written or nothing is.
func (db *DB) SaveReport(report *models.Report, cfg models.Config) (int64, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	keywords := mapreduce.TopKeywords(runCounts(report), runKeywords)
	result, err := tx.Exec(`
		INSERT INTO runs (total_files, success_count, failed_count, workers,
		                  total_time_seconds, lowercase, combined, word_filter, top_keywords)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, report.Stats.TotalFiles, report.Stats.Successful, report.Stats.Failed, report.Stats.Workers,
		report.Stats.TotalTimeSeconds, cfg.Lowercase, cfg.CombineAll, cfg.WordFilter, strings.Join(keywords, ","))
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}
	runID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run ID: %w", err)
	}

	wordStmt, err := tx.Prepare("INSERT INTO word_counts (result_id, word, count) VALUES (?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("failed to prepare word insert: %w", err)
	}
	defer wordStmt.Close()

	for _, fr := range report.Files {
		f := fr.Result
		result, err := tx.Exec(`
			INSERT INTO file_results (run_id, path, total_words, distinct_words, characters,
			                          sentences, paragraphs, language, size_bytes, content_hash)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, runID, f.Path, int64(f.TotalWords), f.DistinctWords, f.Stats.Characters,
			f.Stats.Sentences, f.Stats.Paragraphs, f.Language, f.SizeBytes, f.ContentHash)
		if err != nil {
			return 0, fmt.Errorf("failed to insert file result %s: %w", f.Path, err)
		}
		resultID, err := result.LastInsertId()
		if err != nil {
			return 0, fmt.Errorf("failed to get result ID: %w", err)
		}
		for word, count := range f.Frequencies {
			if _, err := wordStmt.Exec(resultID, word, int64(count)); err != nil {
				return 0, fmt.Errorf("failed to insert word count for %s: %w", f.Path, err)
			}
		}
	}

	if report.Aggregate != nil {
		aggStmt, err := tx.Prepare("INSERT INTO aggregate_counts (run_id, word, count) VALUES (?, ?, ?)")
		if err != nil {
			return 0, fmt.Errorf("failed to prepare aggregate insert: %w", err)
		}
		defer aggStmt.Close()
		for word, count := range report.Aggregate.Result.Frequencies {
			if _, err := aggStmt.Exec(runID, word, int64(count)); err != nil {
				return 0, fmt.Errorf("failed to insert aggregate count: %w", err)
			}
		}
	}

	for _, fe := range report.Errors {
		_, err := tx.Exec(`
			INSERT INTO file_errors (run_id, path, error_type, error_message)
			VALUES (?, ?, ?, ?)
		`, runID, fe.Path, string(fe.Kind), fe.Err.Error())
		if err != nil {
			return 0, fmt.Errorf("failed to insert file error %s: %w", fe.Path, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit run: %w", err)
	}
	return runID, nil
}

// runCounts returns the combined counts of a run, merging the files when the
// report has no aggregate.
func runCounts(report *models.Report) models.FrequencyMap {
	if report.Aggregate != nil {
		return report.Aggregate.Result.Frequencies
	}
	counts := make(models.FrequencyMap)
	for _, fr := range report.Files {
		mapreduce.Merge(counts, fr.Result.Frequencies)
	}
	return counts
}

func splitKeywords(s sql.NullString) []string {
	if s.String == "" {
		return nil
	}
	return strings.Split(s.String, ",")
}

// GetRunByID retrieves a run by ID
func (db *DB) GetRunByID(runID int64) (*Run, error) {
	var r Run
	var filter, keywords sql.NullString
	err := db.QueryRow(`
		SELECT run_id, created_at, total_files, success_count, failed_count, workers,
		       total_time_seconds, lowercase, combined, word_filter, top_keywords
		FROM runs
		WHERE run_id = ?
	`, runID).Scan(&r.RunID, &r.CreatedAt, &r.TotalFiles, &r.SuccessCount, &r.FailedCount,
		&r.Workers, &r.TotalTimeSeconds, &r.Lowercase, &r.Combined, &filter, &keywords)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %d not found", runID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	r.WordFilter = filter.String
	r.TopKeywords = splitKeywords(keywords)
	return &r, nil
}

// ListRuns returns the most recent runs first
func (db *DB) ListRuns(limit int) ([]Run, error) {
	query := `
		SELECT run_id, created_at, total_files, success_count, failed_count, workers,
		       total_time_seconds, lowercase, combined, word_filter, top_keywords
		FROM runs
		ORDER BY run_id DESC
	`
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var filter, keywords sql.NullString
		if err := rows.Scan(&r.RunID, &r.CreatedAt, &r.TotalFiles, &r.SuccessCount, &r.FailedCount,
			&r.Workers, &r.TotalTimeSeconds, &r.Lowercase, &r.Combined, &filter, &keywords); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		r.WordFilter = filter.String
		r.TopKeywords = splitKeywords(keywords)
		runs = append(runs, r)
	}

	return runs, rows.Err()
}

// GetFileCounts returns the stored frequency map of one file in a run
func (db *DB) GetFileCounts(runID int64, path string) (models.FrequencyMap, error) {
	return db.queryCounts(`
		SELECT wc.word, wc.count
		FROM word_counts wc
		JOIN file_results fr ON fr.result_id = wc.result_id
		WHERE fr.run_id = ? AND fr.path = ?
	`, runID, path)
}

// GetAggregateCounts returns the combined frequency map of a run
func (db *DB) GetAggregateCounts(runID int64) (models.FrequencyMap, error) {
	return db.queryCounts("SELECT word, count FROM aggregate_counts WHERE run_id = ?", runID)
}

func (db *DB) queryCounts(query string, args ...any) (models.FrequencyMap, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query word counts: %w", err)
	}
	defer rows.Close()

	counts := make(models.FrequencyMap)
	for rows.Next() {
		var word string
		var count int64
		if err := rows.Scan(&word, &count); err != nil {
			return nil, fmt.Errorf("failed to scan word count: %w", err)
		}
		counts[word] = uint64(count)
	}
	return counts, rows.Err()
}

// GetFileErrors returns the failures recorded for a run
func (db *DB) GetFileErrors(runID int64) ([]FileErrorRecord, error) {
	rows, err := db.Query(`
		SELECT path, error_type, error_message
		FROM file_errors
		WHERE run_id = ?
		ORDER BY error_id
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get file errors: %w", err)
	}
	defer rows.Close()

	var records []FileErrorRecord
	for rows.Next() {
		var r FileErrorRecord
		var msg sql.NullString
		if err := rows.Scan(&r.Path, &r.ErrorType, &msg); err != nil {
			return nil, fmt.Errorf("failed to scan file error: %w", err)
		}
		r.ErrorMessage = msg.String
		records = append(records, r)
	}
	return records, rows.Err()
}
