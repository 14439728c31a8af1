package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"go.uber.org/multierr"
)

// ErrInvalidField is returned when the play field cannot host a session.
var ErrInvalidField = errors.New("invalid field")

// Settings holds every tunable of a session. Anything not present in the
// TOML file keeps its value from Defaults.
type Settings struct {
	Seed       int64            `toml:"seed"` // 0 = time based
	Field      FieldConfig      `toml:"field"`
	Player     PlayerConfig     `toml:"player"`
	Enemy      EnemyConfig      `toml:"enemy"`
	Projectile ProjectileConfig `toml:"projectile"`
	Particles  ParticleConfig   `toml:"particles"`
	Timing     TimingConfig     `toml:"timing"`
	Logging    LoggingConfig    `toml:"logging"`
	Assets     AssetsConfig     `toml:"assets"`
}

type FieldConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

type PlayerConfig struct {
	Width   float64 `toml:"width"`
	Height  float64 `toml:"height"`
	SpeedX  float64 `toml:"speed_x"`
	SpeedY  float64 `toml:"speed_y"`
	Life    int     `toml:"life"`
	CenterX float64 `toml:"center_x"` // смещение влево от центра поля
}

type EnemyConfig struct {
	Width       float64 `toml:"width"`
	Height      float64 `toml:"height"`
	Speed       float64 `toml:"speed"`
	Columns     int     `toml:"columns"`
	Rows        int     `toml:"rows"`
	ColumnPitch float64 `toml:"column_pitch"`
	RowPitch    float64 `toml:"row_pitch"`
}

type ProjectileConfig struct {
	Width    float64 `toml:"width"`
	Height   float64 `toml:"height"`
	Speed    float64 `toml:"speed"`
	OffsetX  float64 `toml:"offset_x"`
	OffsetY  float64 `toml:"offset_y"`
	Cooldown float64 `toml:"cooldown"`
}

type ParticleConfig struct {
	Size         float64 `toml:"size"`
	MinSpeed     float64 `toml:"min_speed"`
	MaxSpeed     float64 `toml:"max_speed"`
	MinOpacity   float64 `toml:"min_opacity"`
	MaxOpacity   float64 `toml:"max_opacity"`
	MinCooldown  float64 `toml:"min_cooldown"`
	MaxCooldown  float64 `toml:"max_cooldown"`
	InitialCount int     `toml:"initial_count"`
}

type TimingConfig struct {
	CooldownPerSecond float64       `toml:"cooldown_per_second"`
	MaxDeltaTime      float64       `toml:"max_delta_time"`
	EndMessageDelay   float64       `toml:"end_message_delay"`
	KeyReleaseTimeout time.Duration `toml:"key_release_timeout"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type AssetsConfig struct {
	Atlas     string `toml:"atlas"`
	Sheet     string `toml:"sheet"`
	LifeImage string `toml:"life_image"`
}

// Load reads a TOML settings file on top of Defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (*Settings, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func Defaults() *Settings {
	return &Settings{
		Field: FieldConfig{
			Width:  ScreenWidth,
			Height: ScreenHeight,
		},
		Player: PlayerConfig{
			Width:   99,
			Height:  75,
			SpeedX:  100,
			SpeedY:  100,
			Life:    3,
			CenterX: 45,
		},
		Enemy: EnemyConfig{
			Width:       75,
			Height:      60,
			Speed:       25,
			Columns:     5,
			Rows:        5,
			ColumnPitch: 98,
			RowPitch:    60,
		},
		Projectile: ProjectileConfig{
			Width:    9,
			Height:   33,
			Speed:    500,
			OffsetX:  45,
			OffsetY:  10,
			Cooldown: 50,
		},
		Particles: ParticleConfig{
			Size:         2,
			MinSpeed:     40,
			MaxSpeed:     120,
			MinOpacity:   0.3,
			MaxOpacity:   1.0,
			MinCooldown:  5,
			MaxCooldown:  20,
			InitialCount: 40,
		},
		Timing: TimingConfig{
			CooldownPerSecond: CooldownPerSecond,
			MaxDeltaTime:      MaxDeltaTime,
			EndMessageDelay:   EndMessageDelay,
			KeyReleaseTimeout: KeyReleaseTimeout,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Assets: AssetsConfig{
			Atlas:     "assets/sheet.yaml",
			Sheet:     "assets/sheet.png",
			LifeImage: "assets/life.png",
		},
	}
}

// Validate reports every problem at once; any error means the session
// must not start.
func (s *Settings) Validate() error {
	var err error
	if s.Field.Width <= 0 || s.Field.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("%w: %vx%v", ErrInvalidField, s.Field.Width, s.Field.Height))
	}
	if formation := float64(s.Enemy.Columns) * s.Enemy.ColumnPitch; formation > s.Field.Width {
		err = multierr.Append(err, fmt.Errorf("%w: formation width %v exceeds field width %v", ErrInvalidField, formation, s.Field.Width))
	}
	if s.Player.Width <= 0 || s.Player.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("player size must be positive"))
	}
	if s.Player.Life <= 0 {
		err = multierr.Append(err, fmt.Errorf("player life must be positive, got %d", s.Player.Life))
	}
	if s.Enemy.Columns < 0 || s.Enemy.Rows < 0 {
		err = multierr.Append(err, fmt.Errorf("formation size must not be negative"))
	}
	if s.Enemy.Width <= 0 || s.Enemy.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("enemy size must be positive"))
	}
	if s.Projectile.Width <= 0 || s.Projectile.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("projectile size must be positive"))
	}
	if s.Particles.MinSpeed > s.Particles.MaxSpeed {
		err = multierr.Append(err, fmt.Errorf("particle speed range inverted: %v > %v", s.Particles.MinSpeed, s.Particles.MaxSpeed))
	}
	if s.Particles.MinCooldown > s.Particles.MaxCooldown {
		err = multierr.Append(err, fmt.Errorf("particle cooldown range inverted: %v > %v", s.Particles.MinCooldown, s.Particles.MaxCooldown))
	}
	if s.Particles.MinOpacity > s.Particles.MaxOpacity {
		err = multierr.Append(err, fmt.Errorf("particle opacity range inverted: %v > %v", s.Particles.MinOpacity, s.Particles.MaxOpacity))
	}
	if s.Timing.CooldownPerSecond <= 0 {
		err = multierr.Append(err, fmt.Errorf("cooldown_per_second must be positive"))
	}
	return err
}
