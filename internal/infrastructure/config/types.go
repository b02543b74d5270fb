package config

// ControlConfig is the root config for control.yaml
type ControlConfig struct {
	Display     DisplayConfig     `yaml:"display"`
	Physics     PhysicsSettings   `yaml:"physics"`
	Movement    MovementConfig    `yaml:"movement"`
	Jump        JumpConfig        `yaml:"jump"`
	Kit         KitConfig         `yaml:"kit"`
	Dash        DashConfig        `yaml:"dash"`
	Collision   CollisionConfig   `yaml:"collision"`
	Combat      CombatConfig      `yaml:"combat"`
	Character   CharacterConfig   `yaml:"character"`
	Interaction InteractionConfig `yaml:"interaction"`
	Input       InputConfig       `yaml:"input"`
	Debug       DebugConfig       `yaml:"debug"`
}

type DisplayConfig struct {
	ScreenWidth  int `yaml:"screenWidth"`
	ScreenHeight int `yaml:"screenHeight"`
	Scale        int `yaml:"scale"`
	Framerate    int `yaml:"framerate"`
}

type PhysicsSettings struct {
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"maxFallSpeed"`
}

type MovementConfig struct {
	Acceleration float64 `yaml:"acceleration"`
	Deceleration float64 `yaml:"deceleration"`
	MaxSpeed     float64 `yaml:"maxSpeed"`
	AirControl   float64 `yaml:"airControl"`
}

type JumpConfig struct {
	Force float64 `yaml:"force"`
	// DropThroughTime is how long one-way platforms are ignored after dropping
	DropThroughTime float64 `yaml:"dropThroughTime"`
}

// KitConfig holds the per-character movement and defensive kit
type KitConfig struct {
	DoubleJumpPercent                float64 `yaml:"doubleJumpPercent"`
	DoubleJumpAction                 string  `yaml:"doubleJumpAction"`
	ExitingVehicleRestoresDoubleJump bool    `yaml:"exitingVehicleRestoresDoubleJump"`
	HitstunRemovesDoubleJump         bool    `yaml:"hitstunRemovesDoubleJump"`
	QuickRecoverJumpPercent          float64 `yaml:"quickRecoverJumpPercent"`
	QuickRecoverSpeedPercent         float64 `yaml:"quickRecoverSpeedPercent"`
}

type DashConfig struct {
	Speed           float64 `yaml:"speed"`
	Duration        float64 `yaml:"duration"`
	Cooldown        float64 `yaml:"cooldown"`
	IframesDuration float64 `yaml:"iframesDuration"`
}

type CollisionConfig struct {
	CornerCorrection MarginConfig `yaml:"cornerCorrection"`
	LedgeAssist      MarginConfig `yaml:"ledgeAssist"`
}

type MarginConfig struct {
	Enabled bool `yaml:"enabled"`
	Margin  int  `yaml:"margin"`
}

type CombatConfig struct {
	Iframes      float64 `yaml:"iframes"`
	StunDuration float64 `yaml:"stunDuration"`
	// Hits dealing at least this much damage knock the character into a tumble
	TumbleDamage int     `yaml:"tumbleDamage"`
	KnockUp      float64 `yaml:"knockUp"`
}

type CharacterConfig struct {
	MaxHealth int          `yaml:"maxHealth"`
	Width     int          `yaml:"width"`
	Height    int          `yaml:"height"`
	Hitbox    HitboxConfig `yaml:"hitbox"`
}

type HitboxConfig struct {
	Head Rect `yaml:"head"`
	Body Rect `yaml:"body"`
	Feet Rect `yaml:"feet"`
}

type Rect struct {
	OffsetX int `yaml:"offsetX"`
	OffsetY int `yaml:"offsetY"`
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
}

type InteractionConfig struct {
	// Radius is the half-extent of the square interaction box around the
	// character, in pixels
	Radius float64 `yaml:"radius"`
	// Lifetime of wisps in seconds
	WispLifetime float64 `yaml:"wispLifetime"`
}

type InputConfig struct {
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64 `yaml:"analogDeadzone"`
}

type DebugConfig struct {
	// SelfDestruct enables the F1 kill switch used to escape soft locks
	SelfDestruct bool `yaml:"selfDestruct"`
}
