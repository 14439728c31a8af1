// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth  = 1024
	ScreenHeight = 768
	MaxDeltaTime = 0.06

	PointsPerEnemy    = 100
	CooldownPerSecond = 100.0 // единиц перезарядки в секунду
	EndMessageDelay   = 0.2   // секунды до показа финального сообщения

	KeyReleaseTimeout = 150 * time.Millisecond

	HUDFontOffsetX = 10
	HUDFontOffsetY = 20
	LifeIconOffset = 180
	LifeIconStep   = 45
	LifeIconY      = 37
)

// Символьные имена спрайтов в атласе
const (
	SpritePlayer   = "player"
	SpriteEnemy    = "enemy"
	SpriteLaser    = "laser"
	SpriteLife     = "life"
	SpriteParticle = "particle"
)

// SpriteNames — все имена, которые ищутся в атласе
var SpriteNames = []string{SpritePlayer, SpriteEnemy, SpriteLaser, SpriteLife, SpriteParticle}

const (
	WinMessage  = "Victory!!! Pew Pew... - Press [Enter] to start a new game."
	LossMessage = "You died !!! Press [Enter] to start a new game."
)

var (
	BackgroundColor = color.RGBA{0, 0, 0, 255}
	PointsColor     = color.RGBA{255, 0, 0, 255}
	WinColor        = color.RGBA{0, 200, 0, 255}
	LossColor       = color.RGBA{255, 0, 0, 255}
	PlayerColor     = color.RGBA{70, 130, 180, 255}
	EnemyColor      = color.RGBA{220, 60, 60, 255}
	LaserColor      = color.RGBA{255, 215, 0, 255}
	ParticleColor   = color.RGBA{240, 240, 240, 255}
	LifeColor       = color.RGBA{50, 205, 50, 255}
)
