package tetris

import "math/rand/v2"

// Generator produces the sequence of piece types fed to the Engine.
// Implementations must be side-effect free with respect to board state;
// the Engine owns the lookahead buffer and calls Next once per consumed
// piece. Tests and replay tools can inject scripted implementations.
type Generator interface {
	Next() PieceType
}

// BagGenerator deals the seven piece types in shuffled bags: each bag is
// a permutation of all seven types, drawn in order and reshuffled when
// empty. Frequencies are exactly uniform over any run of whole bags, and
// the sequence is fully determined by the seed.
type BagGenerator struct {
	rng *rand.Rand
	bag []PieceType
}

// NewBagGenerator creates a bag generator seeded for replayable draws.
func NewBagGenerator(seed uint64) *BagGenerator {
	return &BagGenerator{
		rng: rand.New(rand.NewPCG(seed, seed)),
	}
}

// Next returns the next piece type, reshuffling a fresh bag when the
// current one is exhausted.
func (g *BagGenerator) Next() PieceType {
	if len(g.bag) == 0 {
		g.refill()
	}
	t := g.bag[0]
	g.bag = g.bag[1:]
	return t
}

func (g *BagGenerator) refill() {
	bag := []PieceType{I, O, T, S, Z, J, L}
	g.rng.Shuffle(len(bag), func(i, j int) {
		bag[i], bag[j] = bag[j], bag[i]
	})
	g.bag = bag
}
