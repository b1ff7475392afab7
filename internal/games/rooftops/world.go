package rooftops

import (
	"cmp"
	"iter"
	"slices"

	"github.com/gammazero/deque"

	"github.com/vovakirdan/rooftops/internal/config"
)

// Rand is the random source used for world generation.
// *rand.Rand satisfies it; tests supply fixed sequences.
type Rand interface {
	Float64() float64
}

// World holds the rooftop and hazard sequences ahead of and around the camera.
// Both sequences are ordered left to right, grow only at the back and shrink
// only at the front.
type World struct {
	cfg       config.WorldConfig
	hazardCfg config.HazardsConfig
	rng       Rand
	platforms deque.Deque[Platform]
	hazards   deque.Deque[Hazard]
	extent    float64 // rightmost generated x
}

// NewWorld creates an empty world. Call Reset to lay out the starting segment.
func NewWorld(cfg config.WorldConfig, hazards config.HazardsConfig, rng Rand) *World {
	return &World{
		cfg:       cfg,
		hazardCfg: hazards,
		rng:       rng,
	}
}

// Reset clears both sequences, places the starting platform and generates up to
// the initial horizon.
func (w *World) Reset() {
	w.platforms.Clear()
	w.hazards.Clear()

	w.addPlatform(w.cfg.StartX, w.cfg.StartWidth, w.cfg.StartRoofY, w.cfg.StartHazards)
	// Gaps are measured from the starting platform's real right edge.
	w.extent = w.cfg.StartX + w.cfg.StartWidth

	w.ExtendTo(w.cfg.InitialHorizon)
}

// ExtendTo appends platforms until the generated extent reaches targetX.
func (w *World) ExtendTo(targetX float64) {
	for w.extent < targetX {
		width := w.between(w.cfg.MinWidth, w.cfg.MaxWidth)
		gap := w.between(w.cfg.MinGap, w.cfg.MaxGap)
		roofY := w.between(w.cfg.MinRoofY, w.cfg.MaxRoofY)

		w.addPlatform(w.extent+gap, width, roofY, true)
		w.extent += gap + width
	}
}

// Prune drops platforms and hazards whose right edge is left of cutoffX minus the
// visibility margin. Platforms never overlap, so their prefix ends at the first
// survivor. Hazards on one roof can overlap, so every hazard starting left of the
// limit is checked. It returns the number of platforms removed.
func (w *World) Prune(cutoffX float64) int {
	limit := cutoffX - w.cfg.PruneMargin

	removed := 0
	for w.platforms.Len() > 0 && w.platforms.Front().Right() < limit {
		w.platforms.PopFront()
		removed++
	}
	w.pruneHazards(limit)
	return removed
}

// pruneHazards removes every hazard whose right edge is left of limit.
// Only hazards with X < limit can qualify, and they form a prefix.
func (w *World) pruneHazards(limit float64) {
	n := 0
	for n < w.hazards.Len() && w.hazards.At(n).X < limit {
		n++
	}

	var keep []Hazard
	for range n {
		if h := w.hazards.PopFront(); h.Right() >= limit {
			keep = append(keep, h)
		}
	}
	for _, h := range slices.Backward(keep) {
		w.hazards.PushFront(h)
	}
}

// addPlatform appends a platform and, when allowed, its hazards.
func (w *World) addPlatform(x, width, roofY float64, withHazards bool) {
	p := Platform{
		X:     x,
		RoofY: roofY,
		W:     width,
		H:     w.cfg.FloorY - roofY + w.cfg.BodyOverhang,
	}
	w.platforms.PushBack(p)

	if !withHazards {
		return
	}
	// Positions are drawn independently, so order them before appending.
	placed := make([]Hazard, 0, 2)
	for range w.hazardCount() {
		placed = append(placed, w.placeHazard(p))
	}
	slices.SortFunc(placed, func(a, b Hazard) int { return cmp.Compare(a.X, b.X) })
	for _, h := range placed {
		w.hazards.PushBack(h)
	}
}

// hazardCount picks 0, 1 or 2 hazards, mostly 1.
func (w *World) hazardCount() int {
	if w.rng.Float64() < w.hazardCfg.SingleChance {
		return 1
	}
	if w.rng.Float64() < w.hazardCfg.DoubleChance {
		return 2
	}
	return 0
}

// placeHazard creates a random hazard standing on p's roof.
func (w *World) placeHazard(p Platform) Hazard {
	kind := HazardBlade
	size := w.hazardCfg.Blade
	if w.rng.Float64() >= 0.5 {
		kind = HazardCreature
		size = w.hazardCfg.Creature
	}

	// Shrink the margin rather than let the hazard hang off a narrow roof.
	margin := min(w.hazardCfg.Margin, max((p.W-size.Width)/2, 0))
	span := max(p.W-size.Width-2*margin, 0)

	return Hazard{
		X:    p.X + margin + w.rng.Float64()*span,
		Y:    p.RoofY - size.Height + w.hazardCfg.Sink,
		W:    size.Width,
		H:    size.Height,
		Kind: kind,
	}
}

// between returns a uniform value in [lo, hi).
func (w *World) between(lo, hi float64) float64 {
	return lo + w.rng.Float64()*(hi-lo)
}

// Extent returns the rightmost generated x.
func (w *World) Extent() float64 {
	return w.extent
}

// PlatformCount returns the number of live platforms.
func (w *World) PlatformCount() int {
	return w.platforms.Len()
}

// HazardCount returns the number of live hazards.
func (w *World) HazardCount() int {
	return w.hazards.Len()
}

// PlatformAt returns the i-th live platform, leftmost first.
func (w *World) PlatformAt(i int) Platform {
	return w.platforms.At(i)
}

// HazardAt returns the i-th live hazard, leftmost first.
func (w *World) HazardAt(i int) Hazard {
	return w.hazards.At(i)
}

// AllPlatforms iterates live platforms left to right.
func (w *World) AllPlatforms() iter.Seq[Platform] {
	return func(yield func(Platform) bool) {
		for i := 0; i < w.platforms.Len(); i++ {
			if !yield(w.platforms.At(i)) {
				return
			}
		}
	}
}

// AllHazards iterates live hazards left to right.
func (w *World) AllHazards() iter.Seq[Hazard] {
	return func(yield func(Hazard) bool) {
		for i := 0; i < w.hazards.Len(); i++ {
			if !yield(w.hazards.At(i)) {
				return
			}
		}
	}
}

// Platforms returns a copy of the live platforms.
func (w *World) Platforms() []Platform {
	out := make([]Platform, 0, w.platforms.Len())
	for p := range w.AllPlatforms() {
		out = append(out, p)
	}
	return out
}

// Hazards returns a copy of the live hazards.
func (w *World) Hazards() []Hazard {
	out := make([]Hazard, 0, w.hazards.Len())
	for h := range w.AllHazards() {
		out = append(out, h)
	}
	return out
}
