// Package internal provides centralized constant definitions for internal use.
package internal

const (
	// Tokenizing and counting
	initialCounterCap     = 256  // Initial capacity for a word tally
	parallelLineThreshold = 2048 // Minimum lines before counting is split across workers
	minLinesPerChunk      = 512  // Smallest chunk handed to a counting worker

	// Font scaling
	MinFontClass   = 11
	MaxFontClass   = 48
	fontClassRange = MaxFontClass - MinFontClass

	// Rendering
	cloudDivClass = "cdiv"
	cloudBoxClass = "cbox"
	spanStyle     = "cursor:default"

	// Encoding detection
	sniffSampleSize = 4096 // Leading bytes checked before the rest of the input
)

// DefaultStylesheetURL is the stylesheet every generated page links to.
const DefaultStylesheetURL = "http://web.cse.ohio-state.edu/software/2231/web-sw2/assignments/projects/tag-cloud-generator/data/tagcloud.css"
