// internal/app/game.go
package app

import (
	"fmt"
	"time"

	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/system"
	"go-space-shooter/internal/utils"

	"go.uber.org/zap"
)

// Game holds the session state and runs the simulation step.
type Game struct {
	Settings         *config.Settings
	World            *entity.World
	EventDispatcher  *event.Dispatcher
	Rng              *utils.PRNGService
	InputSystem      *system.InputSystem
	ParticleSystem   *system.ParticleSystem
	CollisionSystem  *system.CollisionSystem
	MovementSystem   *system.MovementSystem
	ProjectileSystem *system.ProjectileSystem
	PlayerSystem     *system.PlayerSystem
	StateSystem      *system.StateSystem

	log      *zap.Logger
	seed     int64
	player   *component.Entity
	phase    component.Phase
	outcome  component.Outcome
	endedFor float64 // секунды с момента завершения
}

// NewGame validates the settings and builds a fresh session.
// Invalid settings are fatal: no session, no tick loop.
func NewGame(cfg *config.Settings, log *zap.Logger) (*Game, error) {
	if cfg == nil {
		return nil, fmt.Errorf("new game: nil settings")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	world := entity.NewWorld()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		Settings:         cfg,
		World:            world,
		EventDispatcher:  eventDispatcher,
		InputSystem:      system.NewInputSystem(eventDispatcher),
		ParticleSystem:   system.NewParticleSystem(world, cfg, nil),
		CollisionSystem:  system.NewCollisionSystem(world, eventDispatcher),
		MovementSystem:   system.NewMovementSystem(world, cfg),
		ProjectileSystem: system.NewProjectileSystem(world),
		log:              log,
		seed:             seed,
	}
	g.PlayerSystem = system.NewPlayerSystem(world, cfg, &g.InputSystem.State)
	g.StateSystem = system.NewStateSystem(world, g, eventDispatcher, log)

	g.build()
	log.Info("session started",
		zap.Float64("width", cfg.Field.Width),
		zap.Float64("height", cfg.Field.Height),
		zap.Int64("seed", seed))
	return g, nil
}

// build заполняет пустой мир начальными сущностями.
// PRNG создаётся здесь заново из того же сида: рестарт повторяет первую сессию.
func (g *Game) build() {
	g.Rng = utils.NewPRNGService(g.seed)
	g.ParticleSystem.Reset(g.Rng)
	system.SpawnFormation(g.World, g.Settings)
	g.player = system.SpawnPlayer(g.World, g.Settings)
	g.InputSystem.Reset()
	g.phase = component.Playing
	g.outcome = component.NoOutcome
	g.endedFor = 0
}

// Update advances the session by deltaTime seconds. While the session is
// ended only the banner timer moves.
func (g *Game) Update(deltaTime float64) {
	if deltaTime < 0 {
		deltaTime = 0
	}
	if g.phase == component.Ended {
		g.endedFor += deltaTime
		return
	}
	g.World.GameTime += deltaTime

	g.ParticleSystem.Update(deltaTime)
	g.CollisionSystem.Update(g.player)
	g.World.Purge()
	if g.IsEnded() {
		return
	}

	if g.MovementSystem.Update(deltaTime) {
		g.End(component.Loss)
		return
	}
	g.ProjectileSystem.Update(deltaTime)

	g.PlayerSystem.Move(g.player, deltaTime)
	g.PlayerSystem.Fire(g.player)

	g.PlayerSystem.Cooldown(g.player, deltaTime)
	g.ParticleSystem.Cooldown(deltaTime)
}

// End moves the session to Ended. Ending an ended session changes nothing,
// so the first outcome reached in a tick wins.
func (g *Game) End(outcome component.Outcome) {
	if g.phase == component.Ended {
		return
	}
	g.phase = component.Ended
	g.outcome = outcome
	g.endedFor = 0
	g.log.Info("game ended",
		zap.Stringer("outcome", outcome),
		zap.Int("score", g.player.Player.Score),
		zap.Int("life", g.player.Player.Life),
		zap.Float64("game_time", g.World.GameTime))
}

// Reset clears every entity and rebuilds the initial session.
func (g *Game) Reset() {
	g.World.Clear()
	g.build()
	g.log.Info("session reset")
}

func (g *Game) Player() *component.Entity { return g.player }
func (g *Game) IsEnded() bool { return g.phase == component.Ended }
func (g *Game) Phase() component.Phase { return g.phase }
func (g *Game) Outcome() component.Outcome { return g.outcome }
func (g *Game) Entities() []*component.Entity { return g.World.All() }

// Publish forwards a host input message to the bus
func (g *Game) Publish(t event.EventType) {
	g.EventDispatcher.Publish(t, nil)
}

// Banner returns the terminal message once the post-game delay has passed.
func (g *Game) Banner() (string, bool) {
	if g.phase != component.Ended || g.endedFor < g.Settings.Timing.EndMessageDelay {
		return "", false
	}
	if g.outcome == component.Win {
		return config.WinMessage, true
	}
	return config.LossMessage, true
}
