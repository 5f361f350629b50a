package pipeline

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/dtnitsch/wordstat/internal/common"
	"github.com/dtnitsch/wordstat/models"
	"github.com/dtnitsch/wordstat/pkg/analytics"
	"github.com/dtnitsch/wordstat/pkg/mapreduce"
	"github.com/dtnitsch/wordstat/pkg/tokenizer"
)

// worker processes jobs until the channel closes. Each worker owns its
// scratch space, and writes only results[job.Index] for the jobs it takes,
// so no two workers touch the same slot. Jobs received after ctx is done are
// left unstarted.
func (p *Pipeline) worker(ctx context.Context, id int, jobs <-chan Job, results []Result) error {
	scratch := tokenizer.NewScratch()

	for job := range jobs {
		if ctx.Err() != nil {
			continue
		}
		p.logger.Debug("Worker started job", "worker_id", id, "path", job.Path)

		result := p.process(job.Path, scratch)
		results[job.Index] = result
		p.observe(result)

		if result.Error != nil {
			p.logger.Warn("Failed to process file", "worker_id", id, "path", job.Path, "error_type", result.ErrorType, "error", result.Error)
			continue
		}
		if err := p.checkMemory(); err != nil {
			return err
		}
		p.logger.Debug("Worker finished job", "worker_id", id, "path", job.Path, "words", result.File.TotalWords)
	}
	return nil
}

// process reads, decodes, tokenizes and counts one file. The FileResult is
// only built after the whole file went through the tokenizer.
func (p *Pipeline) process(path string, scratch *tokenizer.Scratch) Result {
	start := time.Now()
	result := Result{Path: path, done: true}
	defer func() {
		if p.metrics != nil {
			p.metrics.FileDuration.Observe(time.Since(start).Seconds())
		}
	}()

	raw, err := p.storage.ReadFile(path, scratch.Buffer())
	if err != nil {
		return failed(result, err)
	}
	size := int64(len(raw))
	hash := common.ContentHash(raw)
	if p.metrics != nil {
		p.metrics.BytesTotal.Add(float64(size))
	}

	text, err := tokenizer.Decode(raw)
	if err != nil {
		return failed(result, err)
	}
	if p.parser.Handles(path) {
		if text, err = p.parser.PlainText(path, text); err != nil {
			return failed(result, err)
		}
	}

	counts, total := mapreduce.Map(tokenizer.New(text, p.cfg.Lowercase, scratch).All())

	file := models.NewFileResult(path, counts, total)
	file.Stats = analytics.TextStats(text, counts)
	file.SizeBytes = size
	file.ContentHash = hash
	if p.detector != nil {
		file.Language = p.detector.Detect(text)
	}

	result.File = file
	return result
}

func failed(result Result, err error) Result {
	result.Error = err
	result.ErrorType = models.KindOf(err)
	return result
}

func (p *Pipeline) observe(result Result) {
	if p.metrics == nil {
		return
	}
	if result.Error != nil {
		p.metrics.FilesTotal.WithLabelValues(string(result.ErrorType)).Inc()
		return
	}
	p.metrics.FilesTotal.WithLabelValues("ok").Inc()
	p.metrics.WordsTotal.Add(float64(result.File.TotalWords))
}

// checkMemory fails with models.ErrAllocation once the heap outgrows the
// configured limit.
func (p *Pipeline) checkMemory() error {
	limit := p.cfg.MemoryLimit()
	if limit == 0 {
		return nil
	}
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	if m.HeapAlloc > limit {
		return fmt.Errorf("%w: heap %s, limit %s", models.ErrAllocation, humanize.IBytes(m.HeapAlloc), humanize.IBytes(limit))
	}
	return nil
}
