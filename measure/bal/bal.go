package bal

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-spectra/spectra/core"
	"github.com/cwbudde/algo-spectra/spectra/smooth"
	"github.com/cwbudde/algo-spectra/spectra/transmission"
	"github.com/cwbudde/algo-spectra/spectra/trough"
)

// Errors returned by epoch analysis.
var (
	// ErrShapeMismatch reports flux or continuum curves whose length does
	// not match the wavelength grid. The epoch is rejected rather than
	// truncated or padded.
	ErrShapeMismatch = errors.New("bal: flux and continuum must match the grid length")
)

// Presentation rounding, applied exactly once when a Metrics record is
// assembled. Accumulation always runs at full precision.
const (
	ewDecimals         = 3
	depthDecimals      = 3
	velocityDecimals   = 0
	luminosityDecimals = 2
)

// Config holds the segmentation and velocity-transform parameters. Zero
// fields default to the engine constants in spectra/core.
type Config struct {
	// Threshold is the normalized transmission below which a sample counts
	// as absorbed.
	Threshold float64
	// MinWidth is the minimum wavelength extent (Å) a run must exceed to
	// be accepted. Runs at or below this width contribute nothing.
	MinWidth float64
	// ReferenceLine is the rest-frame wavelength (Å) used as the velocity
	// zero-point.
	ReferenceLine float64
}

func normalizeConfig(cfg Config) Config {
	if cfg.Threshold <= 0 {
		cfg.Threshold = core.AbsorptionThreshold
	}

	if cfg.MinWidth <= 0 {
		cfg.MinWidth = core.MinTroughWidth
	}

	if cfg.ReferenceLine <= 0 {
		cfg.ReferenceLine = core.ReferenceLine
	}

	return cfg
}

// Option overrides one Config parameter.
type Option func(*Config)

// WithThreshold sets the absorption threshold.
func WithThreshold(threshold float64) Option {
	return func(cfg *Config) {
		if threshold > 0 {
			cfg.Threshold = threshold
		}
	}
}

// WithMinWidth sets the minimum accepted trough width in Å.
func WithMinWidth(width float64) Option {
	return func(cfg *Config) {
		if width > 0 {
			cfg.MinWidth = width
		}
	}
}

// WithReferenceLine sets the velocity zero-point wavelength in Å.
func WithReferenceLine(lambda float64) Option {
	return func(cfg *Config) {
		if lambda > 0 {
			cfg.ReferenceLine = lambda
		}
	}
}

// Epoch is one observation of one source: a flux/continuum pair on the
// analyzer's grid plus identifying metadata. ContinuumAmplitude and
// SpectralIndex are pass-through parameters of the continuum model; the
// analyzer records them and derives a luminosity proxy but never fits them.
type Epoch struct {
	Label    string
	SourceID string
	MJD      float64

	Flux      []float64
	Continuum []float64

	ContinuumAmplitude float64
	SpectralIndex      float64
}

// Component is one accepted absorption trough.
type Component struct {
	// Start and End bound the run as a half-open grid index range.
	Start int
	End   int
	// MinIdx is the grid index of the trough bottom.
	MinIdx int

	Depth              float64 // 1 - transmission at the trough bottom
	EW                 float64 // equivalent width contribution in Å
	CentroidWavelength float64 // wavelength of the trough bottom in Å
	CentroidVelocity   float64 // km/s, positive = outflow
	VelocityWidth      float64 // velocity extent of the run in km/s
}

// Metrics is the per-epoch output record. It is immutable once produced;
// all numeric fields carry presentation rounding (EW and Depth to three
// decimals, velocities to the nearest km/s, Luminosity to two decimals).
type Metrics struct {
	Label    string
	SourceID string
	MJD      float64

	EW          float64 // total equivalent width in Å
	Depth       float64 // maximum component depth
	Velocity    float64 // centroid velocity of the deepest component, km/s
	Width       float64 // summed velocity extent, km/s
	TroughCount int

	ContinuumAmplitude float64
	SpectralIndex      float64
	Luminosity         float64

	Components []Component
}

// Analyzer extracts BAL metrics from epochs sampled on one fixed grid.
// An Analyzer is immutable after construction and safe for concurrent use.
type Analyzer struct {
	grid core.Grid
	cfg  Config
}

// NewAnalyzer creates an analyzer for the given grid. Options override the
// engine's default constants.
func NewAnalyzer(grid core.Grid, opts ...Option) *Analyzer {
	var cfg Config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return &Analyzer{grid: grid, cfg: normalizeConfig(cfg)}
}

// Config returns the analyzer's effective configuration.
func (a *Analyzer) Config() Config { return a.cfg }

// Grid returns the analyzer's wavelength grid.
func (a *Analyzer) Grid() core.Grid { return a.grid }

// AnalyzeEpoch is a one-shot analysis with default configuration.
func AnalyzeEpoch(grid core.Grid, e Epoch) (Metrics, error) {
	return NewAnalyzer(grid).AnalyzeEpoch(e)
}

// AnalyzeEpoch runs the full pipeline for one epoch: smooth, normalize,
// segment, measure, aggregate. It never mutates the epoch's curves and
// returns exactly one Metrics record on success. An epoch with no detected
// components is not an error; it yields zero-valued aggregates.
func (a *Analyzer) AnalyzeEpoch(e Epoch) (Metrics, error) {
	if len(e.Flux) != a.grid.Len() || len(e.Continuum) != a.grid.Len() {
		return Metrics{}, fmt.Errorf("%w: grid %d, flux %d, continuum %d",
			ErrShapeMismatch, a.grid.Len(), len(e.Flux), len(e.Continuum))
	}

	smoothed := smooth.Smooth(e.Flux)

	tc, err := transmission.Normalize(smoothed, e.Continuum)
	if err != nil {
		return Metrics{}, err
	}

	runs := trough.Scan(tc, a.cfg.Threshold)

	components := make([]Component, 0, len(runs))
	for _, r := range runs {
		if c, ok := a.measureRun(tc, r); ok {
			components = append(components, c)
		}
	}

	return a.aggregate(e, components), nil
}

// measureRun applies the minimum-width acceptance gate and derives the
// physical metrics of one closed run. Rejected runs contribute nothing, not
// even partial credit.
func (a *Analyzer) measureRun(tc []float64, r trough.Run) (Component, bool) {
	step := a.grid.Step()

	widthWavelength := float64(r.Len()) * step
	if widthWavelength <= a.cfg.MinWidth {
		return Component{}, false
	}

	// Left-endpoint rectangle rule with the grid step exactly, for
	// reproducibility across epochs.
	var ew float64
	for k := r.Start; k < r.End; k++ {
		ew += (1 - tc[k]) * step
	}

	centroidWavelength := a.grid.Wavelength(r.MinIdx)

	vStart := core.Velocity(a.grid.Wavelength(r.Start), a.cfg.ReferenceLine)
	vEnd := core.Velocity(a.grid.Wavelength(r.End-1), a.cfg.ReferenceLine)

	return Component{
		Start:              r.Start,
		End:                r.End,
		MinIdx:             r.MinIdx,
		Depth:              1 - r.Min,
		EW:                 ew,
		CentroidWavelength: centroidWavelength,
		CentroidVelocity:   core.Velocity(centroidWavelength, a.cfg.ReferenceLine),
		VelocityWidth:      math.Abs(vEnd - vStart),
	}, true
}

// aggregate folds the accepted components into one Metrics record and
// applies presentation rounding once, at the very end.
func (a *Analyzer) aggregate(e Epoch, components []Component) Metrics {
	var (
		totalEW    float64
		totalWidth float64
		maxDepth   float64
		velocity   float64
	)

	for _, c := range components {
		totalEW += c.EW
		totalWidth += c.VelocityWidth

		// Strict greater-than: on exact ties the component encountered
		// first in scan order keeps the slot.
		if c.Depth > maxDepth {
			maxDepth = c.Depth
			velocity = c.CentroidVelocity
		}
	}

	rounded := make([]Component, len(components))
	for i, c := range components {
		c.Depth = core.RoundTo(c.Depth, depthDecimals)
		c.EW = core.RoundTo(c.EW, ewDecimals)
		c.CentroidVelocity = core.RoundTo(c.CentroidVelocity, velocityDecimals)
		c.VelocityWidth = core.RoundTo(c.VelocityWidth, velocityDecimals)
		rounded[i] = c
	}

	return Metrics{
		Label:              e.Label,
		SourceID:           e.SourceID,
		MJD:                e.MJD,
		EW:                 core.RoundTo(totalEW, ewDecimals),
		Depth:              core.RoundTo(maxDepth, depthDecimals),
		Velocity:           core.RoundTo(velocity, velocityDecimals),
		Width:              core.RoundTo(totalWidth, velocityDecimals),
		TroughCount:        len(components),
		ContinuumAmplitude: e.ContinuumAmplitude,
		SpectralIndex:      e.SpectralIndex,
		Luminosity:         core.RoundTo(a.cfg.ReferenceLine*e.ContinuumAmplitude, luminosityDecimals),
		Components:         rounded,
	}
}
