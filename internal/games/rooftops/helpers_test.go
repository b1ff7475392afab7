package rooftops

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/rooftops/internal/config"
	"github.com/vovakirdan/rooftops/internal/core"
)

// scriptedRand returns the given values in order, repeating the last one.
type scriptedRand struct {
	values []float64
	i      int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[min(r.i, len(r.values)-1)]
	r.i++
	return v
}

func constRand(v float64) *scriptedRand {
	return &scriptedRand{values: []float64{v}}
}

func seededRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func testConfig() config.RooftopsConfig {
	return config.DefaultRooftopsConfig()
}

const frame = time.Second / 60

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}
