package system

import (
	"testing"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeContext — минимальная сессия для контроллера
type fakeContext struct {
	player   *component.Entity
	outcomes []component.Outcome
	resets   int
}

func (f *fakeContext) Player() *component.Entity { return f.player }
func (f *fakeContext) IsEnded() bool { return len(f.outcomes) > 0 }
func (f *fakeContext) End(o component.Outcome) {
	if !f.IsEnded() {
		f.outcomes = append(f.outcomes, o)
	}
}
func (f *fakeContext) Reset() {
	f.resets++
	f.outcomes = nil
}

type listenerFunc func(event.Event)

func (f listenerFunc) OnEvent(e event.Event) { f(e) }

func subscribe(d *event.Dispatcher, t event.EventType, fn func(event.Event)) {
	d.Subscribe(t, listenerFunc(fn))
}

func setup(t *testing.T) (*entity.World, *event.Dispatcher, *fakeContext, *config.Settings) {
	t.Helper()
	cfg := config.Defaults()
	world := entity.NewWorld()
	d := event.NewDispatcher()
	ctx := &fakeContext{player: SpawnPlayer(world, cfg)}
	NewStateSystem(world, ctx, d, zap.NewNop())
	return world, d, ctx, cfg
}

func TestSpawnFormationLayout(t *testing.T) {
	cfg := config.Defaults()
	world := entity.NewWorld()

	enemies := SpawnFormation(world, cfg)
	require.Len(t, enemies, 25)

	startX := (cfg.Field.Width - 5*98) / 2
	assert.Equal(t, component.Position{X: startX, Y: 0}, enemies[0].Position)
	assert.Equal(t, component.Position{X: startX, Y: 240}, enemies[4].Position)
	assert.Equal(t, component.Position{X: startX + 98, Y: 0}, enemies[5].Position)
	for _, e := range enemies {
		assert.Equal(t, component.KindEnemy, e.Kind)
		assert.Equal(t, 25.0, e.Speed)
		assert.Equal(t, config.SpriteEnemy, e.Sprite)
	}
}

func TestCollisionSystemPublishesEveryHit(t *testing.T) {
	cfg := config.Defaults()
	world := entity.NewWorld()
	d := event.NewDispatcher()
	player := SpawnPlayer(world, cfg)

	hitting := SpawnEnemy(world, cfg, player.X, player.Y)
	target := SpawnEnemy(world, cfg, 0, 0)
	world.Add(&component.Entity{Kind: component.KindProjectile,
		Position: component.Position{X: 5, Y: 5}, Size: component.Size{Width: 9, Height: 33}})
	world.Add(&component.Entity{Kind: component.KindProjectile,
		Position: component.Position{X: 30, Y: 5}, Size: component.Size{Width: 9, Height: 33}})

	var playerHits []event.EnemyHit
	var pairs []event.CollisionPair
	subscribe(d, event.CollisionEnemyPlayer, func(e event.Event) {
		playerHits = append(playerHits, e.Data.(event.EnemyHit))
	})
	subscribe(d, event.CollisionEnemyProjectile, func(e event.Event) {
		pairs = append(pairs, e.Data.(event.CollisionPair))
	})

	NewCollisionSystem(world, d).Update(player)

	require.Len(t, playerHits, 1)
	assert.Same(t, hitting, playerHits[0].Enemy)
	require.Len(t, pairs, 2)
	assert.Same(t, target, pairs[0].Second)
	assert.Same(t, target, pairs[1].Second)
	// система сама ничего не помечает
	assert.False(t, target.Dead)
}

func TestStateSystemProjectileHit(t *testing.T) {
	world, d, ctx, cfg := setup(t)
	enemy := SpawnEnemy(world, cfg, 0, 0)
	SpawnEnemy(world, cfg, 200, 0)
	shot := world.Add(&component.Entity{Kind: component.KindProjectile})
	late := world.Add(&component.Entity{Kind: component.KindProjectile})

	d.Publish(event.CollisionEnemyProjectile, event.CollisionPair{First: shot, Second: enemy})
	assert.Equal(t, 100, ctx.player.Player.Score)

	// второй снаряд в уже сбитого врага: тоже гибнет и тоже приносит очки
	d.Publish(event.CollisionEnemyProjectile, event.CollisionPair{First: late, Second: enemy})

	assert.True(t, enemy.Dead)
	assert.True(t, shot.Dead)
	assert.True(t, late.Dead)
	assert.Equal(t, 200, ctx.player.Player.Score)
	assert.Empty(t, ctx.outcomes)
}

func TestStateSystemWinOnLastEnemy(t *testing.T) {
	world, d, ctx, cfg := setup(t)
	enemy := SpawnEnemy(world, cfg, 0, 0)
	shot := world.Add(&component.Entity{Kind: component.KindProjectile})

	d.Publish(event.CollisionEnemyProjectile, event.CollisionPair{First: shot, Second: enemy})

	assert.Equal(t, []component.Outcome{component.Win}, ctx.outcomes)
}

func TestStateSystemPlayerHit(t *testing.T) {
	world, d, ctx, cfg := setup(t)
	ctx.player.Player.Life = 2
	first := SpawnEnemy(world, cfg, 0, 0)
	second := SpawnEnemy(world, cfg, 0, 0)
	third := SpawnEnemy(world, cfg, 0, 0)

	d.Publish(event.CollisionEnemyPlayer, event.EnemyHit{Enemy: first})
	assert.Equal(t, 1, ctx.player.Player.Life)
	assert.Empty(t, ctx.outcomes)

	// повторное сообщение о том же враге ничего не меняет
	d.Publish(event.CollisionEnemyPlayer, event.EnemyHit{Enemy: first})
	assert.Equal(t, 1, ctx.player.Player.Life)

	d.Publish(event.CollisionEnemyPlayer, event.EnemyHit{Enemy: second})
	assert.Equal(t, 0, ctx.player.Player.Life)
	assert.True(t, ctx.player.Dead)
	assert.Equal(t, []component.Outcome{component.Loss}, ctx.outcomes)

	d.Publish(event.CollisionEnemyPlayer, event.EnemyHit{Enemy: third})
	assert.False(t, third.Dead)
}

func TestStateSystemLastEnemyKillsPlayer(t *testing.T) {
	world, d, ctx, cfg := setup(t)
	ctx.player.Player.Life = 1
	enemy := SpawnEnemy(world, cfg, 0, 0)

	d.Publish(event.CollisionEnemyPlayer, event.EnemyHit{Enemy: enemy})

	assert.Equal(t, []component.Outcome{component.Loss}, ctx.outcomes)
}

func TestStateSystemConfirmOnlyWhenEnded(t *testing.T) {
	_, d, ctx, _ := setup(t)

	d.Publish(event.KeyUpConfirm, nil)
	assert.Equal(t, 0, ctx.resets)

	d.Publish(event.GameEndLoss, nil)
	d.Publish(event.KeyUpConfirm, nil)
	assert.Equal(t, 1, ctx.resets)
}

func TestInputSystemToggles(t *testing.T) {
	d := event.NewDispatcher()
	in := NewInputSystem(d)

	d.Publish(event.KeyDownUp, nil)
	d.Publish(event.KeyDownFire, nil)
	d.Publish(event.KeyDownLeft, nil)
	assert.Equal(t, KeyboardState{Up: true, Left: true, Fire: true}, in.State)

	d.Publish(event.KeyUpUp, nil)
	d.Publish(event.KeyDownRight, nil)
	d.Publish(event.KeyDownDown, nil)
	assert.Equal(t, KeyboardState{Down: true, Left: true, Right: true, Fire: true}, in.State)

	d.Publish(event.KeyUpFire, nil)
	d.Publish(event.KeyUpLeft, nil)
	d.Publish(event.KeyUpRight, nil)
	d.Publish(event.KeyUpDown, nil)
	assert.Equal(t, KeyboardState{}, in.State)

	d.Publish(event.KeyDownFire, nil)
	in.Reset()
	assert.Equal(t, KeyboardState{}, in.State)
}

func TestParticleSystemSpawnAndFall(t *testing.T) {
	cfg := config.Defaults()
	cfg.Particles.MinSpeed = 100
	cfg.Particles.MaxSpeed = 100
	world := entity.NewWorld()
	rng := utils.NewPRNGService(12345)
	s := NewParticleSystem(world, cfg, rng)

	s.SpawnCooldown = 0
	s.Update(0)
	particles := world.OfKind(component.KindParticle)
	require.Len(t, particles, 1)
	p := particles[0]
	assert.Equal(t, -cfg.Particles.Size, p.Y)
	assert.GreaterOrEqual(t, s.SpawnCooldown, cfg.Particles.MinCooldown)

	// таймер не даёт второй частицы, пока не дойдёт до нуля
	s.Update(0.5)
	assert.Len(t, world.OfKind(component.KindParticle), 1)
	assert.InDelta(t, 48.0, p.Y, 1e-9)

	s.Cooldown(1)
	assert.Equal(t, 0.0, s.SpawnCooldown)

	p.Y = cfg.Field.Height - 1
	s.Update(0.1)
	assert.True(t, p.Dead)
	assert.Len(t, world.OfKind(component.KindParticle), 2)
}

func TestParticleSystemResetSeedsField(t *testing.T) {
	cfg := config.Defaults()
	world := entity.NewWorld()
	s := NewParticleSystem(world, cfg, nil)

	s.Reset(utils.NewPRNGService(5))

	particles := world.OfKind(component.KindParticle)
	assert.Len(t, particles, cfg.Particles.InitialCount)
	for _, p := range particles {
		assert.GreaterOrEqual(t, p.X, 0.0)
		assert.LessOrEqual(t, p.X+p.Width, cfg.Field.Width)
		assert.GreaterOrEqual(t, p.Opacity, cfg.Particles.MinOpacity)
		assert.LessOrEqual(t, p.Opacity, cfg.Particles.MaxOpacity)
	}
	assert.Greater(t, s.SpawnCooldown, 0.0)
}

func TestMovementSystemReportsBottom(t *testing.T) {
	cfg := config.Defaults()
	world := entity.NewWorld()
	s := NewMovementSystem(world, cfg)
	enemy := SpawnEnemy(world, cfg, 0, 0)

	assert.False(t, s.Update(1))
	assert.Equal(t, 25.0, enemy.Y)

	dead := SpawnEnemy(world, cfg, 100, cfg.Field.Height)
	component.MarkDead(dead)
	assert.False(t, s.Update(0))

	enemy.Y = cfg.Field.Height - enemy.Height
	assert.True(t, s.Update(0), "touching the bottom ends the round")
}

func TestPlayerSystemMayLeaveField(t *testing.T) {
	cfg := config.Defaults()
	world := entity.NewWorld()
	input := &KeyboardState{Right: true}
	s := NewPlayerSystem(world, cfg, input)
	player := SpawnPlayer(world, cfg)
	player.X = cfg.Field.Width - player.Width

	s.Move(player, 0.5)
	assert.InDelta(t, cfg.Field.Width-player.Width+50, player.X, 1e-9)

	input.Right = false
	input.Up = true
	s.Move(player, 100)
	assert.Less(t, player.Y, 0.0, "no bounds on the field")
}
