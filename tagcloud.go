// Package tagcloud turns plain-text documents into HTML tag clouds: pages that
// list the N most frequent words in alphabetical order, each sized by how
// often it occurs.
package tagcloud

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/cybergodev/tagcloud/internal"
	"golang.org/x/sync/errgroup"
)

// Default configuration values.
const (
	DefaultMaxInputSize    = 50 * 1024 * 1024 // 50MB
	DefaultMaxCacheEntries = 100              // 100 entries
	DefaultWorkerPoolSize  = 4                // 4 workers
	DefaultCacheTTL        = time.Hour        // 1 hour
	DefaultSeparators      = internal.DefaultSeparators
	DefaultStylesheetURL   = internal.DefaultStylesheetURL
)

// Font size class bounds.
const (
	MinFontClass = internal.MinFontClass
	MaxFontClass = internal.MaxFontClass
)

// Generator builds tag clouds. It is safe for concurrent use.
type Generator struct {
	config     *Config
	separators *internal.SeparatorSet
	logger     *slog.Logger
	cache      *internal.Cache[*Result]
	closed     atomic.Bool
	stats      struct {
		totalGenerated   atomic.Int64
		cacheHits        atomic.Int64
		cacheMisses      atomic.Int64
		errorCount       atomic.Int64
		totalProcessTime atomic.Int64
	}
}

// Config holds generator configuration.
type Config struct {
	MaxInputSize    int
	MaxCacheEntries int
	CacheTTL        time.Duration
	// WorkerPoolSize bounds batch parallelism and the number of goroutines
	// counting a single large document.
	WorkerPoolSize int
	// Separators lists every character that ends a word.
	Separators    string
	StylesheetURL string
	// InputEncoding forces the charset of files read by GenerateFromFile.
	// Empty means detect.
	InputEncoding string
	// Logger receives debug events. Nil discards them.
	Logger *slog.Logger
}

// DefaultConfig returns default configuration.
func DefaultConfig() Config {
	return Config{
		MaxInputSize:    DefaultMaxInputSize,
		MaxCacheEntries: DefaultMaxCacheEntries,
		CacheTTL:        DefaultCacheTTL,
		WorkerPoolSize:  DefaultWorkerPoolSize,
		Separators:      DefaultSeparators,
		StylesheetURL:   DefaultStylesheetURL,
	}
}

func validateConfig(c Config) error {
	switch {
	case c.MaxInputSize <= 0:
		return fmt.Errorf("%w: MaxInputSize must be positive", ErrInvalidConfig)
	case c.MaxCacheEntries < 0:
		return fmt.Errorf("%w: MaxCacheEntries cannot be negative", ErrInvalidConfig)
	case c.CacheTTL < 0:
		return fmt.Errorf("%w: CacheTTL cannot be negative", ErrInvalidConfig)
	case c.WorkerPoolSize <= 0:
		return fmt.Errorf("%w: WorkerPoolSize must be positive", ErrInvalidConfig)
	case c.Separators == "":
		return fmt.Errorf("%w: Separators cannot be empty", ErrInvalidConfig)
	case strings.TrimSpace(c.StylesheetURL) == "":
		return fmt.Errorf("%w: StylesheetURL cannot be empty", ErrInvalidConfig)
	case c.InputEncoding != "" && !internal.KnownCharset(c.InputEncoding):
		return fmt.Errorf("%w: unsupported InputEncoding %q", ErrInvalidConfig, c.InputEncoding)
	}
	return nil
}

// Entry is one word of a tag cloud.
type Entry struct {
	Word  string
	Count int
	// FontClass lies in [MinFontClass, MaxFontClass].
	FontClass int
}

// ClassName returns the stylesheet class of the entry, e.g. "f27".
func (e Entry) ClassName() string {
	return internal.FontClassName(e.FontClass)
}

// Result contains a generated tag cloud. Every call hands out its own copy,
// so callers may modify a Result without affecting cached ones.
type Result struct {
	Source string
	// Entries are in alphabetical order.
	Entries []Entry
	// MaxCount and MinCount bound the counts of Entries; both are 0 when
	// Entries is empty.
	MaxCount       int
	MinCount       int
	TotalWords     int
	DistinctWords  int
	Encoding       string
	HTML           string
	ProcessingTime time.Duration
}

// Heading returns the page heading, e.g. "Top 10 words in notes.txt".
func (r *Result) Heading() string {
	return "Top " + strconv.Itoa(len(r.Entries)) + " words in " + r.Source
}

// Degenerate reports whether every listed word has the same count, in which
// case all of them use MinFontClass.
func (r *Result) Degenerate() bool {
	return len(r.Entries) > 0 && r.MaxCount == r.MinCount
}

func (r *Result) clone() *Result {
	c := *r
	c.Entries = slices.Clone(r.Entries)
	return &c
}

// WriteTo writes the rendered page to w.
func (r *Result) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, r.HTML)
	return int64(n), err
}

// Document is a named source text for batch generation.
type Document struct {
	Source string
	Text   string
}

// Statistics contains processing metrics.
type Statistics struct {
	TotalGenerated     int64
	CacheHits          int64
	CacheMisses        int64
	ErrorCount         int64
	AverageProcessTime time.Duration
}

// New creates a Generator with the given configuration.
func New(config Config) (*Generator, error) {
	if err := validateConfig(config); err != nil {
		return nil, err
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Generator{
		config:     &config,
		separators: internal.NewSeparatorSet(config.Separators),
		logger:     logger,
		cache:      internal.NewCache[*Result](config.MaxCacheEntries, config.CacheTTL),
	}, nil
}

// NewWithDefaults creates a Generator with default configuration.
func NewWithDefaults() *Generator {
	g, _ := New(DefaultConfig())
	return g
}

// ParseCount parses the requested number of words.
func ParseCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidCount, s)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %d is negative", ErrInvalidCount, n)
	}
	return n, nil
}

// Generate builds the tag cloud of the n most frequent words in text. source
// names the document in the page heading. n may exceed the number of
// distinct words, in which case every word is listed.
func (g *Generator) Generate(text, source string, n int) (*Result, error) {
	return g.generate(text, source, n, "")
}

// GenerateFromFile reads, decodes and processes the file at path. The path as
// given becomes the source name.
func (g *Generator) GenerateFromFile(path string, n int) (*Result, error) {
	if g.closed.Load() {
		return nil, ErrGeneratorClosed
	}
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidFilePath)
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: %d is negative", ErrInvalidCount, n)
	}
	text, charset, err := g.readInput(path)
	if err != nil {
		g.stats.errorCount.Add(1)
		return nil, err
	}
	return g.generate(text, path, n, charset)
}

func (g *Generator) readInput(path string) (string, string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrInputUnreadable, err)
	}
	if info.IsDir() {
		return "", "", fmt.Errorf("%w: %s is a directory", ErrInputUnreadable, path)
	}
	if info.Size() > int64(g.config.MaxInputSize) {
		return "", "", fmt.Errorf("%w: size=%d, max=%d", ErrInputTooLarge, info.Size(), g.config.MaxInputSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrInputUnreadable, err)
	}
	text, charset, err := internal.DecodeText(data, g.config.InputEncoding)
	if err != nil {
		return "", "", fmt.Errorf("%w: %s: %w", ErrInputUnreadable, path, err)
	}
	g.logger.Debug("read input", "path", path, "bytes", len(data), "encoding", charset)
	return text, charset, nil
}

func (g *Generator) generate(text, source string, n int, charset string) (*Result, error) {
	if g.closed.Load() {
		return nil, ErrGeneratorClosed
	}
	if n < 0 {
		g.stats.errorCount.Add(1)
		return nil, fmt.Errorf("%w: %d is negative", ErrInvalidCount, n)
	}
	if len(text) > g.config.MaxInputSize {
		g.stats.errorCount.Add(1)
		return nil, fmt.Errorf("%w: size=%d, max=%d", ErrInputTooLarge, len(text), g.config.MaxInputSize)
	}

	startTime := time.Now()
	cacheKey := g.generateCacheKey(text, source, n, charset)
	if cached, ok := g.cache.Get(cacheKey); ok {
		g.stats.cacheHits.Add(1)
		g.stats.totalGenerated.Add(1)
		return cached.clone(), nil
	}
	g.stats.cacheMisses.Add(1)

	result, err := g.process(text, source, n)
	if err != nil {
		g.stats.errorCount.Add(1)
		return nil, err
	}
	result.Encoding = charset

	processingTime := time.Since(startTime)
	result.ProcessingTime = processingTime
	g.stats.totalProcessTime.Add(int64(processingTime))
	g.stats.totalGenerated.Add(1)

	g.cache.Set(cacheKey, result.clone())
	return result, nil
}

func (g *Generator) process(text, source string, n int) (*Result, error) {
	lines := internal.SplitLines(text)
	counter, err := internal.CountLines(context.Background(), lines, g.separators, g.config.WorkerPoolSize)
	if err != nil {
		return nil, err
	}

	ranked := internal.OrderAlphabetically(internal.SelectTop(counter.Counts(), n))
	scaled := internal.ScaleEntries(ranked)

	var sb strings.Builder
	sb.Grow(512 + 96*len(scaled))
	doc := internal.CloudDocument{
		Source:        source,
		StylesheetURL: g.config.StylesheetURL,
		Entries:       scaled,
	}
	if err := internal.RenderCloud(&sb, doc); err != nil {
		return nil, fmt.Errorf("render %s: %w", source, err)
	}

	entries := make([]Entry, len(scaled))
	for i, e := range scaled {
		entries[i] = Entry{Word: e.Word, Count: e.Count, FontClass: e.FontClass}
	}

	g.logger.Debug("generated tag cloud",
		"source", source,
		"lines", len(lines),
		"words", counter.Total(),
		"distinct", counter.Len(),
		"requested", n,
		"selected", len(entries),
		"degenerate", ranked.Degenerate(),
	)

	return &Result{
		Source:        source,
		Entries:       entries,
		MaxCount:      ranked.MaxCount,
		MinCount:      ranked.MinCount,
		TotalWords:    counter.Total(),
		DistinctWords: counter.Len(),
		HTML:          sb.String(),
	}, nil
}

// WriteFile writes the rendered page of result to path.
func (g *Generator) WriteFile(result *Result, path string) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", ErrInvalidFilePath)
	}
	if result == nil {
		return fmt.Errorf("%w: nil result", ErrOutputUnwritable)
	}
	if err := os.WriteFile(path, []byte(result.HTML), 0o644); err != nil {
		g.stats.errorCount.Add(1)
		return fmt.Errorf("%w: %w", ErrOutputUnwritable, err)
	}
	g.logger.Debug("wrote tag cloud", "path", path, "entries", len(result.Entries))
	return nil
}

// GenerateBatch processes several documents in parallel using a worker pool.
func (g *Generator) GenerateBatch(docs []Document, n int) ([]*Result, error) {
	if g.closed.Load() {
		return nil, ErrGeneratorClosed
	}
	if len(docs) == 0 {
		return []*Result{}, nil
	}

	results := make([]*Result, len(docs))
	errs := make([]error, len(docs))
	var eg errgroup.Group
	eg.SetLimit(g.config.WorkerPoolSize)
	for i, doc := range docs {
		eg.Go(func() error {
			results[i], errs[i] = g.Generate(doc.Text, doc.Source, n)
			return nil
		})
	}
	_ = eg.Wait()

	names := make([]string, len(docs))
	for i, doc := range docs {
		names[i] = doc.Source
	}
	return collectResults(results, errs, names)
}

// GenerateBatchFiles processes several files in parallel using a worker pool.
func (g *Generator) GenerateBatchFiles(paths []string, n int) ([]*Result, error) {
	if g.closed.Load() {
		return nil, ErrGeneratorClosed
	}
	if len(paths) == 0 {
		return []*Result{}, nil
	}

	results := make([]*Result, len(paths))
	errs := make([]error, len(paths))
	var eg errgroup.Group
	eg.SetLimit(g.config.WorkerPoolSize)
	for i, path := range paths {
		eg.Go(func() error {
			results[i], errs[i] = g.GenerateFromFile(path, n)
			return nil
		})
	}
	_ = eg.Wait()
	return collectResults(results, errs, paths)
}

func collectResults(results []*Result, errs []error, names []string) ([]*Result, error) {
	var firstErr error
	successCount := 0
	failCount := 0

	for i, err := range errs {
		if err != nil {
			failCount++
			if firstErr == nil {
				if names[i] != "" {
					firstErr = fmt.Errorf("%s: %w", names[i], err)
				} else {
					firstErr = fmt.Errorf("item %d: %w", i, err)
				}
			}
		} else {
			successCount++
		}
	}

	switch {
	case successCount == 0:
		return results, fmt.Errorf("all %d items failed: %w", len(results), firstErr)
	case failCount > 0:
		return results, fmt.Errorf("partial failure (%d/%d succeeded): %w", successCount, len(results), firstErr)
	default:
		return results, nil
	}
}

// GetStatistics returns processing statistics.
func (g *Generator) GetStatistics() Statistics {
	total := g.stats.totalGenerated.Load()
	misses := g.stats.cacheMisses.Load()
	totalTime := time.Duration(g.stats.totalProcessTime.Load())
	var avgTime time.Duration
	if misses > 0 {
		avgTime = totalTime / time.Duration(misses)
	}
	return Statistics{
		TotalGenerated:     total,
		CacheHits:          g.stats.cacheHits.Load(),
		CacheMisses:        misses,
		ErrorCount:         g.stats.errorCount.Load(),
		AverageProcessTime: avgTime,
	}
}

// ClearCache clears the cache and resets cache statistics.
func (g *Generator) ClearCache() {
	g.cache.Clear()
	g.stats.cacheHits.Store(0)
	g.stats.cacheMisses.Store(0)
}

// Close releases generator resources. It is safe to call more than once.
func (g *Generator) Close() error {
	if !g.closed.CompareAndSwap(false, true) {
		return nil
	}
	g.cache.Clear()
	return nil
}

func (g *Generator) generateCacheKey(text, source string, n int, charset string) string {
	h := sha256.New()
	var hdr [8]byte
	binary.LittleEndian.PutUint64(hdr[:], uint64(n))
	h.Write(hdr[:])
	h.Write([]byte(source))
	h.Write([]byte{0})
	h.Write([]byte(charset))
	h.Write([]byte{0})
	h.Write([]byte(text))
	var buf [sha256.Size]byte
	return hex.EncodeToString(h.Sum(buf[:0]))
}
