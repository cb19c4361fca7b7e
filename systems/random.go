package systems

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"

	"github.com/yohamta/donburi"
)

type randomData struct {
	Rand *rand.Rand
	Seed uint64
}

var randomComponent = donburi.NewComponentType[randomData]()

// SeedRandom replaces the world's damage RNG with a deterministic one.
func SeedRandom(w donburi.World, seed uint64) {
	r := getOrCreateRandom(w)
	r.Seed = seed
	r.Rand = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RandomSeed returns the seed the world's RNG was created with.
func RandomSeed(w donburi.World) uint64 {
	return getOrCreateRandom(w).Seed
}

func getOrCreateRandom(w donburi.World) *randomData {
	entry, ok := randomComponent.First(w)
	if !ok {
		entry = w.Entry(w.Create(randomComponent))
	}
	r := randomComponent.Get(entry)
	if r.Rand == nil {
		seed := newSeed()
		r.Seed = seed
		r.Rand = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
	return r
}

func newSeed() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return rand.Uint64()
	}
	return binary.LittleEndian.Uint64(b[:])
}

// SampleDamage draws a uniform integer in [lo, hi] inclusive.
func SampleDamage(r *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.IntN(hi-lo+1)
}
