package db

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Runs: one row per counting run
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    total_files INTEGER NOT NULL,
    success_count INTEGER DEFAULT 0,
    failed_count INTEGER DEFAULT 0,
    workers INTEGER,
    total_time_seconds REAL,
    lowercase BOOLEAN DEFAULT 0,
    combined BOOLEAN DEFAULT 0,
    word_filter TEXT,

    -- Most frequent words of the run: "word1:count1,word2:count2,..."
    top_keywords TEXT
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);

-- File results: per-file totals and text statistics
CREATE TABLE IF NOT EXISTS file_results (
    result_id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id INTEGER NOT NULL,
    path TEXT NOT NULL,
    total_words INTEGER NOT NULL,
    distinct_words INTEGER NOT NULL,
    characters INTEGER,
    sentences INTEGER,
    paragraphs INTEGER,
    language TEXT,
    size_bytes INTEGER,
    content_hash TEXT,
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE,
    UNIQUE(run_id, path)
);

CREATE INDEX IF NOT EXISTS idx_file_results_run ON file_results(run_id);
CREATE INDEX IF NOT EXISTS idx_file_results_hash ON file_results(content_hash);

-- Word counts: full frequency map of every file
CREATE TABLE IF NOT EXISTS word_counts (
    result_id INTEGER NOT NULL,
    word TEXT NOT NULL,
    count INTEGER NOT NULL,
    FOREIGN KEY (result_id) REFERENCES file_results(result_id) ON DELETE CASCADE,
    PRIMARY KEY (result_id, word)
);

-- Aggregate counts: combined frequency map of a run
CREATE TABLE IF NOT EXISTS aggregate_counts (
    run_id INTEGER NOT NULL,
    word TEXT NOT NULL,
    count INTEGER NOT NULL,
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE,
    PRIMARY KEY (run_id, word)
);

-- File errors: files that could not be counted
CREATE TABLE IF NOT EXISTS file_errors (
    error_id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id INTEGER NOT NULL,
    path TEXT NOT NULL,
    error_type TEXT NOT NULL,
    error_message TEXT,
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_file_errors_run ON file_errors(run_id);
`
