package internal

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Counter tallies word occurrences. It is not safe for concurrent use.
type Counter struct {
	counts map[string]int
	total  int
}

func NewCounter() *Counter {
	return &Counter{counts: make(map[string]int, initialCounterCap)}
}

// Record increments the count for word, inserting it with 1 if absent.
func (c *Counter) Record(word string) {
	c.counts[word]++
	c.total++
}

// Count returns the recorded count for word, or 0.
func (c *Counter) Count(word string) int {
	return c.counts[word]
}

// Len returns the number of distinct words.
func (c *Counter) Len() int { return len(c.counts) }

// Total returns the number of recorded occurrences.
func (c *Counter) Total() int { return c.total }

// Counts exposes the tally. Callers must not modify it.
func (c *Counter) Counts() map[string]int { return c.counts }

// Merge adds every count in other to c.
func (c *Counter) Merge(other *Counter) {
	for word, n := range other.counts {
		c.counts[word] += n
	}
	c.total += other.total
}

// AddLine tokenizes line and records each folded word span.
func (c *Counter) AddLine(line string, seps *SeparatorSet, folder *Folder) {
	for word := range Words(line, seps) {
		c.Record(folder.Fold(word))
	}
}

// CountLines tallies the words of every line. With workers > 1 and enough
// lines the work is split into chunks counted concurrently and merged; the
// result is identical to a sequential count.
func CountLines(ctx context.Context, lines []string, seps *SeparatorSet, workers int) (*Counter, error) {
	if workers <= 1 || len(lines) < parallelLineThreshold {
		c := NewCounter()
		folder := NewFolder()
		for _, line := range lines {
			c.AddLine(line, seps, folder)
		}
		return c, nil
	}

	chunks := chunkLines(lines, workers)
	partials := make([]*Counter, len(chunks))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, chunk := range chunks {
		g.Go(func() error {
			c := NewCounter()
			folder := NewFolder()
			for _, line := range chunk {
				if err := ctx.Err(); err != nil {
					return err
				}
				c.AddLine(line, seps, folder)
			}
			partials[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := NewCounter()
	for _, p := range partials {
		merged.Merge(p)
	}
	return merged, nil
}

func chunkLines(lines []string, workers int) [][]string {
	size := (len(lines) + workers - 1) / workers
	if size < minLinesPerChunk {
		size = minLinesPerChunk
	}
	chunks := make([][]string, 0, (len(lines)+size-1)/size)
	for start := 0; start < len(lines); start += size {
		end := min(start+size, len(lines))
		chunks = append(chunks, lines[start:end])
	}
	return chunks
}
