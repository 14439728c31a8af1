package entity

import (
	"testing"

	"go-space-shooter/internal/component"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(w *World) []component.Kind {
	var out []component.Kind
	for _, e := range w.All() {
		out = append(out, e.Kind)
	}
	return out
}

func TestAddAssignsIDsAndKeepsParticlesBehind(t *testing.T) {
	w := NewWorld()
	enemy := w.Add(&component.Entity{Kind: component.KindEnemy})
	w.Add(&component.Entity{Kind: component.KindPlayer})
	w.Add(&component.Entity{Kind: component.KindParticle})
	w.Add(&component.Entity{Kind: component.KindProjectile})
	w.Add(&component.Entity{Kind: component.KindParticle})

	assert.Equal(t, component.EntityID(1), enemy.ID)
	assert.Equal(t, []component.Kind{
		component.KindParticle,
		component.KindParticle,
		component.KindEnemy,
		component.KindPlayer,
		component.KindProjectile,
	}, kinds(w))
}

func TestPurgeIdempotent(t *testing.T) {
	w := NewWorld()
	a := w.Add(&component.Entity{Kind: component.KindEnemy})
	b := w.Add(&component.Entity{Kind: component.KindEnemy})
	w.Add(&component.Entity{Kind: component.KindProjectile})

	component.MarkDead(a)
	component.MarkDead(b)

	require.Equal(t, 2, w.Purge())
	assert.Len(t, w.All(), 1)

	before := append([]*component.Entity(nil), w.All()...)
	assert.Equal(t, 0, w.Purge())
	assert.Equal(t, before, w.All())
}

func TestOfKindAndCountAlive(t *testing.T) {
	w := NewWorld()
	e1 := w.Add(&component.Entity{Kind: component.KindEnemy})
	w.Add(&component.Entity{Kind: component.KindEnemy})
	w.Add(&component.Entity{Kind: component.KindPlayer})

	component.MarkDead(e1)

	assert.Len(t, w.OfKind(component.KindEnemy), 2)
	assert.Equal(t, 1, w.CountAlive(component.KindEnemy))
	assert.Equal(t, 0, w.CountAlive(component.KindProjectile))
}

func TestClear(t *testing.T) {
	w := NewWorld()
	w.Add(&component.Entity{Kind: component.KindEnemy})
	w.GameTime = 12

	w.Clear()
	assert.Empty(t, w.All())
	assert.Equal(t, component.EntityID(1), w.NextID)
	assert.Zero(t, w.GameTime)
}
