package zindex

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterIsStrictlyIncreasing(t *testing.T) {
	a := New()

	z1 := a.Register("p1")
	z2 := a.Register("p2")
	z3 := a.Register("p3")

	assert.Less(t, z1, z2)
	assert.Less(t, z2, z3)
	assert.Equal(t, TierPopup.Base()+1, z1)
}

func TestBringToFrontOvertakesLaterRegistrations(t *testing.T) {
	a := New()
	a.Register("p1")
	a.Register("p2")
	a.Register("p3")

	a.BringToFront("p1")

	assert.Greater(t, a.ZIndex("p1"), a.ZIndex("p3"))
	assert.True(t, a.IsTopMost("p1"))
	assert.False(t, a.IsTopMost("p3"))
}

func TestBringToFrontOnTopMostStillIncreases(t *testing.T) {
	a := New()
	a.Register("p1")
	before := a.Register("p2")

	after := a.BringToFront("p2")

	assert.Greater(t, after, before)
	assert.True(t, a.IsTopMost("p2"))
}

func TestBringToFrontUnregisteredIsNoop(t *testing.T) {
	a := New()
	a.Register("p1")
	highest := a.Highest()

	assert.Equal(t, 0, a.BringToFront("ghost"))
	assert.Equal(t, highest, a.Highest())
	assert.NotContains(t, a.Registered(), "ghost")
}

func TestRegisterTwiceKeepsFirstValue(t *testing.T) {
	a := New()
	first := a.Register("p1")
	a.Register("p2")

	assert.Equal(t, first, a.Register("p1"))
	assert.Equal(t, first, a.ZIndex("p1"))
}

func TestReRegisterNeverReusesValue(t *testing.T) {
	a := New()
	issued := map[int]bool{}
	issued[a.Register("p1")] = true
	issued[a.BringToFront("p1")] = true

	a.Unregister("p1")
	z := a.Register("p1")

	assert.False(t, issued[z], "z-index %d was already issued", z)
}

func TestUnregisteredFallsBackToTierBase(t *testing.T) {
	a := New()
	a.Register("p1")

	assert.Equal(t, TierPopup.Base(), a.ZIndex("nope"))
	assert.Less(t, a.ZIndex("nope"), a.ZIndex("p1"))
	assert.False(t, a.IsTopMost("nope"))
}

func TestNewZIndexRespectsTierBase(t *testing.T) {
	a := New()
	a.Register("p1")

	assert.Equal(t, TierDropdown.Base(), a.NewZIndex(TierDropdown))
	assert.Equal(t, TierGlobalModal.Base(), a.NewZIndex(TierGlobalModal))
	assert.Equal(t, a.Highest()+1, a.NewZIndex(TierPopup))

	// Nothing is recorded.
	assert.Len(t, a.Registered(), 1)
}

func TestNewZIndexAboveCounterWhenCounterPassesBase(t *testing.T) {
	a := New()
	a.Register("p1")
	for i := 0; i < TierDropdown.Base(); i++ {
		a.BringToFront("p1")
	}

	got := a.NewZIndex(TierDropdown)
	assert.Greater(t, got, a.ZIndex("p1"))
}

func TestRandomSequencesKeepStrictOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	a := New()
	ids := make([]string, 8)
	for i := range ids {
		ids[i] = fmt.Sprintf("p%d", i)
	}

	seen := map[int]bool{}
	for step := 0; step < 500; step++ {
		id := ids[rng.Intn(len(ids))]
		var z int
		switch rng.Intn(3) {
		case 0:
			if _, ok := a.Registered()[id]; ok {
				continue
			}
			z = a.Register(id)
		case 1:
			z = a.BringToFront(id)
			if z == 0 {
				continue
			}
		default:
			a.Unregister(id)
			continue
		}
		require.False(t, seen[z], "step %d: value %d issued twice", step, z)
		seen[z] = true

		values := map[int]string{}
		for other, oz := range a.Registered() {
			if prev, dup := values[oz]; dup {
				t.Fatalf("step %d: %s and %s share z-index %d", step, prev, other, oz)
			}
			values[oz] = other
			require.LessOrEqual(t, oz, a.Highest())
		}
		require.True(t, a.IsTopMost(id))
	}
}

func TestTierString(t *testing.T) {
	tests := map[Tier]string{
		TierPopup:        "popup",
		TierDropdown:     "dropdown",
		TierModalInPopup: "modal-in-popup",
		TierGlobalModal:  "global-modal",
		Tier(42):         "unknown",
	}
	for tier, want := range tests {
		assert.Equal(t, want, tier.String())
	}
}
