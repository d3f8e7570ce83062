package preopt

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermuteNegate_Identity(t *testing.T) {
	for _, tt := range []uint64{0x8, 0x6, 0xE8, 0x96, 0xCAFE} {
		k := 4
		assert.Equal(t, tt&ttMask(k), permuteNegate(tt, k, identityPerm(k), 0))
	}
}

func TestNPNCanonical_ClassInvariance(t *testing.T) {
	// Every member of a function's NPN class must canonicalize to the same
	// table: apply random transforms and compare.
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 200; trial++ {
		k := 2 + rng.Intn(3)
		tt := rng.Uint64() & ttMask(k)
		canon, _ := npnCanonical(tt, k)

		perm := permutations(k)[rng.Intn(len(permutations(k)))]
		negIn := uint8(rng.Intn(1 << k))
		variant := permuteNegate(tt, k, perm, negIn)
		if rng.Intn(2) == 1 {
			variant ^= ttMask(k)
		}
		got, _ := npnCanonical(variant, k)
		require.Equal(t, canon, got, "trial %d: tt=%X variant=%X", trial, tt, variant)
	}
}

func TestNPNCanonical_TransformIsFaithful(t *testing.T) {
	// The returned transform must actually map tt onto the canonical form.
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 200; trial++ {
		k := 2 + rng.Intn(3)
		tt := rng.Uint64() & ttMask(k)
		canon, tr := npnCanonical(tt, k)
		got := permuteNegate(tt, k, tr.perm, tr.negIn)
		if tr.negOut {
			got ^= ttMask(k)
		}
		require.Equal(t, canon, got)
	}
}

func TestPermutations_CountAndDistinct(t *testing.T) {
	perms := permutations(4)
	assert.Len(t, perms, 24)
	seen := map[string]bool{}
	for _, p := range perms {
		key := ""
		for _, x := range p {
			key += string(rune('0' + x))
		}
		assert.False(t, seen[key])
		seen[key] = true
	}
}
