package domain

import (
	"math/rand/v2"

	m "github.com/mouse-blink/mdcover/internal/model"
)

// Picker chooses one cover URL from a candidate list.
type Picker interface {
	Pick(urls []m.CoverURL) m.CoverURL
}

type randomPicker struct {
	rnd *rand.Rand
}

// NewRandomPicker returns a Picker that chooses uniformly at random.
// A non-zero seed makes the sequence of choices reproducible.
func NewRandomPicker(seed uint64) Picker {
	if seed == 0 {
		seed = rand.Uint64()
	}

	return &randomPicker{rnd: rand.New(rand.NewPCG(seed, seed))}
}

func (p *randomPicker) Pick(urls []m.CoverURL) m.CoverURL {
	if len(urls) == 0 {
		return ""
	}

	return urls[p.rnd.IntN(len(urls))]
}
