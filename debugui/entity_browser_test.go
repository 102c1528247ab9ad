package debugui_test

import (
	"testing"

	"github.com/plus3/stepwise/debugui"
	"github.com/plus3/stepwise/entity"
	"github.com/plus3/stepwise/physics"
	"github.com/plus3/stepwise/render"
	"github.com/plus3/stepwise/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorld() *world.World {
	w := world.New()
	w.Spawn(entity.New().WithLocation(5, 1))
	w.Spawn(entity.New().WithLocation(1, 2).WithGravity(true).
		WithPhysicsSystem(physics.NewLinear(3, 4)).
		WithDrawSystem(render.PlayerSprite()))
	w.Spawn(entity.New().WithLocation(3, 3).WithExtrapolation(false).
		WithPhysicsSystem(physics.NewClamped(8)).
		WithDrawSystem(render.Box{W: 2, H: 2}))
	return w
}

func TestCollectEntities(t *testing.T) {
	infos := debugui.CollectEntities(newTestWorld())
	require.Len(t, infos, 3)

	assert.Equal(t, debugui.EntityInfo{
		ID: 1, X: 5, Y: 1, Extrapolation: true, Physics: "-", Draw: "-",
	}, infos[0])

	assert.Equal(t, debugui.EntityInfo{
		ID: 2, X: 1, Y: 2, VX: 3, VY: 4, Gravity: true, Extrapolation: true,
		Physics: "physics.Linear", Draw: "render.Sprite",
	}, infos[1])

	assert.Equal(t, "physics.Clamped", infos[2].Physics)
	assert.Equal(t, "render.Box", infos[2].Draw)
	assert.False(t, infos[2].Extrapolation)
}

func TestFilterEntities(t *testing.T) {
	infos := debugui.CollectEntities(newTestWorld())

	assert.Len(t, debugui.FilterEntities(infos, ""), 3)
	assert.Len(t, debugui.FilterEntities(infos, "SPRITE"), 1)
	assert.Len(t, debugui.FilterEntities(infos, "physics"), 2)

	byID := debugui.FilterEntities(infos, "3")
	require.Len(t, byID, 1)
	assert.Equal(t, world.ID(3), byID[0].ID)
}

func TestSortEntities(t *testing.T) {
	infos := debugui.CollectEntities(newTestWorld())

	debugui.SortEntities(infos, 1, true)
	assert.Equal(t, []world.ID{2, 3, 1}, []world.ID{infos[0].ID, infos[1].ID, infos[2].ID})

	debugui.SortEntities(infos, 0, false)
	assert.Equal(t, []world.ID{3, 2, 1}, []world.ID{infos[0].ID, infos[1].ID, infos[2].ID})
}

func TestSortEntitiesKeepsEqualRows(t *testing.T) {
	infos := []debugui.EntityInfo{
		{ID: 1, Physics: "physics.Linear"},
		{ID: 2, Physics: "-"},
		{ID: 3, Physics: "physics.Linear"},
		{ID: 4, Physics: "physics.Linear"},
	}

	debugui.SortEntities(infos, 3, false)

	got := []world.ID{infos[0].ID, infos[1].ID, infos[2].ID, infos[3].ID}
	assert.Equal(t, []world.ID{1, 3, 4, 2}, got)
}

func TestSystemName(t *testing.T) {
	assert.Equal(t, "-", debugui.SystemName(nil))
	assert.Equal(t, "physics.Linear", debugui.SystemName(&physics.Linear{}))
}

func TestPerformanceStatsRecord(t *testing.T) {
	ps := debugui.NewPerformanceStats(4)

	assert.InDelta(t, 4.0, ps.Record(0.016), 1e-4)
	assert.InDelta(t, 8.0, ps.Record(0.016), 1e-4)
	ps.Record(0.016)
	ps.Record(0.016)
	assert.InDelta(t, 16.0, ps.Record(0.016), 1e-4)
}
