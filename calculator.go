// File: calculator.go
// Role: the Calculator façade — AddAtom / Calc / Reset / SettingsMut —
// wiring vecmath, radii, surface, trim, scstat, and workerpool into the
// full Sc pipeline.
package shapecomp

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/surfacescore/shapecomp/radii"
	"github.com/surfacescore/shapecomp/scstat"
	"github.com/surfacescore/shapecomp/spatialindex"
	"github.com/surfacescore/shapecomp/surface"
	"github.com/surfacescore/shapecomp/trim"
	"github.com/surfacescore/shapecomp/vecmath"
	"github.com/surfacescore/shapecomp/workerpool"
)

// Calculator accumulates atoms for two molecules and runs the Sc pipeline
// over them. The zero value is not ready to use; construct with
// NewCalculator.
type Calculator struct {
	settings Settings
	logger   Logger
	radii    *radii.Table

	atoms    [2][]atomRecord
	warnings int
}

// Option configures a Calculator at construction time, following the
// lvlath core.GraphOption convention (func(*T), applied left-to-right).
type Option func(*Calculator)

// WithSettings overrides the default Settings.
func WithSettings(s Settings) Option {
	return func(c *Calculator) { c.settings = s }
}

// WithLogger injects a structured logger. Defaults to NopLogger.
func WithLogger(l Logger) Option {
	return func(c *Calculator) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithRadiiTable injects a radius lookup table. Defaults to radii.Default().
func WithRadiiTable(t *radii.Table) Option {
	return func(c *Calculator) {
		if t != nil {
			c.radii = t
		}
	}
}

// NewCalculator builds a Calculator with DefaultSettings, a NopLogger, and
// radii.Default(), then applies opts in order.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{
		settings: DefaultSettings(),
		logger:   NopLogger{},
		radii:    radii.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// SettingsMut returns a pointer to the Calculator's live Settings so
// callers can tune parameters in place before calling Calc.
func (c *Calculator) SettingsMut() *Settings {
	return &c.settings
}

// AddAtom resolves the atom's radius via the injected radii table, checks
// it is not coincident with an existing atom in the same molecule, and
// appends it. It returns the new atom's per-molecule id.
func (c *Calculator) AddAtom(molecule int, pos vecmath.Vec, atomLabel, residueLabel string) (int, error) {
	if molecule != 0 && molecule != 1 {
		return 0, fmt.Errorf("shapecomp: molecule must be 0 or 1, got %d", molecule)
	}

	radius, fellBack, err := c.radii.Lookup(residueLabel, atomLabel)
	if err != nil {
		return 0, &UnknownRadiusError{Residue: residueLabel, Atom: atomLabel}
	}

	for _, existing := range c.atoms[molecule] {
		if existing.Pos.Dist(pos) < c.settings.EpsilonGeom {
			return 0, &DuplicateCoordError{MoleculeID: molecule, AtomA: existing.ID, AtomB: len(c.atoms[molecule])}
		}
	}

	id := len(c.atoms[molecule])
	c.atoms[molecule] = append(c.atoms[molecule], atomRecord{
		ID:           id,
		Molecule:     molecule,
		Pos:          pos,
		Radius:       radius,
		AtomLabel:    atomLabel,
		ResidueLabel: residueLabel,
		FellBack:     fellBack,
	})
	if fellBack {
		c.warnings++
		c.logger.Warn("radius resolved via element fallback", Int("molecule", molecule), Int("atom_id", id), String("residue", residueLabel), String("atom", atomLabel))
	}

	return id, nil
}

// Reset clears both molecules' atoms and accumulated warnings. Settings
// and the injected collaborators (logger, radii table) are unaffected.
func (c *Calculator) Reset() {
	c.atoms[0] = nil
	c.atoms[1] = nil
	c.warnings = 0
}

// Calc runs the full pipeline (surface generation, trimming, Sc
// aggregation) over the two molecules' current atoms.
func (c *Calculator) Calc() (Results, error) {
	start := time.Now()
	runID := uuid.New().String()
	log := c.logger

	if err := c.settings.validate(); err != nil {
		return Results{}, err
	}
	if len(c.atoms[0]) == 0 || len(c.atoms[1]) == 0 {
		return Results{}, ErrInsufficientAtoms
	}

	log.Info("calc start", String("run_id", runID), Int("atoms_mol1", len(c.atoms[0])), Int("atoms_mol2", len(c.atoms[1])))

	var molAtoms [2][]surface.Atom
	for m := 0; m < 2; m++ {
		molAtoms[m] = make([]surface.Atom, len(c.atoms[m]))
		for i, a := range c.atoms[m] {
			molAtoms[m][i] = surface.Atom{ID: a.ID, Molecule: a.Molecule, Pos: a.Pos, Radius: a.Radius}
		}
	}

	surfSettings := surface.Settings{
		ProbeRadius: c.settings.ProbeRadius,
		DotDensity:  c.settings.DotDensity,
		Epsilon:     c.settings.EpsilonGeom,
	}

	var surfRes [2]surface.Result
	warnings := c.warnings
	for m := 0; m < 2; m++ {
		surfRes[m] = surface.Generate(molAtoms[m], surfSettings)
		warnings += len(surfRes[m].AtomsFullySkipped)
		for _, skipped := range surfRes[m].AtomsFullySkipped {
			log.Warn("atom fully skipped during surface generation", Int("molecule", m), Int("atom_id", skipped))
		}
	}

	var pool *workerpool.Pool
	if c.settings.EnableParallel {
		pool = workerpool.New()
	} else {
		pool = workerpool.Serial()
	}

	var oppositePoints [2][]spatialindex.Point
	var rMax [2]float64
	for m := 0; m < 2; m++ {
		oppositePoints[m] = make([]spatialindex.Point, len(molAtoms[m]))
		for i, a := range molAtoms[m] {
			oppositePoints[m][i] = spatialindex.Point{ID: a.ID, Molecule: a.Molecule, Pos: a.Pos, Radius: a.Radius}
			if a.Radius > rMax[m] {
				rMax[m] = a.Radius
			}
		}
	}

	trimOpts := trim.Options{
		ProbeRadius:    c.settings.ProbeRadius,
		PeripheralBand: c.settings.PeripheralBand,
		TrimKN:         c.settings.TrimKN,
		DotDensity:     c.settings.DotDensity,
		Epsilon:        c.settings.EpsilonGeom,
	}

	trimmed0 := trim.Trim(surfRes[0].Dots, oppositePoints[1], rMax[1], trimOpts, pool)
	trimmed1 := trim.Trim(surfRes[1].Dots, oppositePoints[0], rMax[0], trimOpts, pool)

	stat, ok := scstat.Compute(trimmed0.Dots, trimmed1.Dots, c.settings.Weight, pool)
	if !ok {
		return Results{}, ErrEmptyInterface
	}
	if math.IsNaN(stat.Sc) || math.IsInf(stat.Sc, 0) {
		return Results{}, &GeometryError{Context: "Sc statistic is not finite"}
	}

	res := Results{
		Sc:             stat.Sc,
		MedianDistance: stat.MedianDistance,
		TrimmedArea:    trimmed0.TrimmedArea + trimmed1.TrimmedArea,
		AtomsMol1:      len(c.atoms[0]),
		AtomsMol2:      len(c.atoms[1]),
		ElapsedMs:      time.Since(start).Milliseconds(),
		Warnings:       warnings,
	}

	log.Info("calc complete", String("run_id", runID), Float64("sc", res.Sc), Int("elapsed_ms", int(res.ElapsedMs)))

	return res, nil
}
