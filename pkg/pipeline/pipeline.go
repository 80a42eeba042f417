// Package pipeline runs castcolor's parse → solve → filter → report and
// parse → reduce → write flows.
//
// The CLI and the HTTP server both go through a [Runner], so caching,
// logging and observability hooks behave the same at every entry point.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache.NewMemoryCache(), nil, logger)
//	res, err := runner.Solve(ctx, pipeline.SolveOptions{
//	    Instance:   text,
//	    LeadsApart: true,
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Report.Found)
//
// Reductions take the direction name used on the command line:
//
//	out, err := runner.Reduce(ctx, pipeline.DirectionToCasting, graphText)
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/castcolor/pkg/casting"
	cerrors "github.com/matzehuels/castcolor/pkg/errors"
	cio "github.com/matzehuels/castcolor/pkg/io"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

// Reduction directions.
const (
	DirectionToColoring = "to-coloring"
	DirectionToCasting  = "to-casting"
)

// DefaultDirection is the reduction performed when no mode is given.
const DefaultDirection = DirectionToCasting

// Output formats for solve reports.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Render formats.
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
)

// Instance kinds accepted by [Runner.Render].
const (
	InputCasting  = "casting"
	InputColoring = "coloring"
)

// DefaultCacheTTL bounds how long cached results are kept.
const DefaultCacheTTL = 10 * time.Minute

// =============================================================================
// Options and Results
// =============================================================================

// SolveOptions configures [Runner.Solve].
type SolveOptions struct {
	// Instance is the casting instance in text form.
	Instance string `json:"instance"`

	// LeadsApart keeps only solutions where actors 1 and 2 never share a scene.
	LeadsApart bool `json:"leads_apart"`

	// Duplicates keeps every accepting leaf instead of distinct solutions.
	Duplicates bool `json:"duplicates,omitempty"`

	// MaxNodes aborts the search after this many states; zero is unlimited.
	MaxNodes int `json:"max_nodes,omitempty"`

	// Refresh skips the cache lookup but still stores the result.
	Refresh bool `json:"refresh,omitempty"`

	// Logger overrides the runner's logger for this call when set.
	Logger *log.Logger `json:"-"`
}

// SolveResult contains the outputs of a solve.
type SolveResult struct {
	// RunID identifies this call in logs and API responses.
	RunID string

	// Instance is the parsed casting instance.
	Instance *casting.Instance

	// Solutions are the search results before the lead filter, 0-indexed.
	Solutions [][]int

	// Kept are the solutions left after the lead filter, 0-indexed.
	Kept [][]int

	// Search holds the state-tree counters.
	Search casting.Stats

	// Report is the serializable summary.
	Report cio.Report

	// Stats contains timing information.
	Stats Stats

	// CacheHit is true when the search result came from the cache.
	CacheHit bool
}

// ReduceResult contains the outputs of a reduction.
type ReduceResult struct {
	RunID     string
	Direction string
	Output    string // instance text in the target format
	Duration  time.Duration
	CacheHit  bool
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ParseTime  time.Duration
	SearchTime time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks a solve output format.
func ValidateFormat(format string) error {
	return cerrors.ValidateChoice(cerrors.ErrCodeInvalidFormat, "format", format, FormatText, FormatJSON)
}

// ValidateRenderFormat checks a render output format.
func ValidateRenderFormat(format string) error {
	return cerrors.ValidateChoice(cerrors.ErrCodeInvalidFormat, "format", format, FormatDOT, FormatSVG)
}

// ValidateDirection checks a reduction direction.
func ValidateDirection(direction string) error {
	return cerrors.ValidateChoice(cerrors.ErrCodeInvalidDirection, "direction", direction, DirectionToColoring, DirectionToCasting)
}

// ValidateInput checks a render input kind.
func ValidateInput(kind string) error {
	return cerrors.ValidateChoice(cerrors.ErrCodeInvalidInput, "input", kind, InputCasting, InputColoring)
}

// ValidateAndSetDefaults checks the options. It is safe to call repeatedly.
func (o *SolveOptions) ValidateAndSetDefaults() error {
	if o.MaxNodes < 0 {
		return cerrors.New(cerrors.ErrCodeInvalidInput, "max_nodes must not be negative, got %d", o.MaxNodes)
	}
	return nil
}
