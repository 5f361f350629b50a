package help

const QuickstartYAML = `# wordstat Quick Start

commands:
  single_file: |
    wordstat notes.txt

  directory: |
    wordstat count --recursive --combine docs/

  all_words: |
    wordstat count --top 0 --lowercase essay.txt

  filtered: |
    wordstat count --combine --word-filter "^(cat|dog)s?$" --emojis corpus/

  html_pages: |
    wordstat count --html article --detect-language saved-pages/

  structured_output: |
    wordstat count --format yaml --outfile report.yaml corpus/

  store_runs: |
    wordstat count --combine --db runs.db corpus/
    wordstat runs --db runs.db

  emoji_lookup: |
    wordstat emoji cat pizza rocket

ranking:
  - "Top words: highest count first, equal counts in ascending word order"
  - "--top 0 lists every word"
  - "--bottom 0 lists no bottom words"
  - "Bottom words are omitted when the top list already covers every word"

errors:
  read_error: "File could not be opened or read"
  encoding_error: "File is not UTF-8 (or UTF-16 with a BOM)"
  cancelled: "Run was interrupted before the file was started"

exit_codes:
  "0": "Report written (individual files may still have failed)"
  "1": "Usage error: no paths, bad flag or invalid config"
  "2": "Fatal: memory limit exceeded or output could not be written"

config_file: |
  # wordstat.yaml, used with --config wordstat.yaml
  lowercase: true
  top_words: 20
  bottom_words: 5
  combine: true
  workers: 8
  output:
    format: json
  logging:
    level: warn
`
