package config

// Default returns the built-in control configuration.
// Loaded files are decoded on top of these values.
func Default() *ControlConfig {
	return &ControlConfig{
		Display: DisplayConfig{
			ScreenWidth:  320,
			ScreenHeight: 240,
			Scale:        3,
			Framerate:    60,
		},
		Physics: PhysicsSettings{
			Gravity:      900,
			MaxFallSpeed: 600,
		},
		Movement: MovementConfig{
			Acceleration: 900,
			Deceleration: 700,
			MaxSpeed:     120,
			AirControl:   0.8,
		},
		Jump: JumpConfig{
			Force:           300,
			DropThroughTime: 0.25,
		},
		Kit: KitConfig{
			DoubleJumpPercent:                0.85,
			DoubleJumpAction:                 "flip",
			ExitingVehicleRestoresDoubleJump: true,
			HitstunRemovesDoubleJump:         true,
			QuickRecoverJumpPercent:          0.15,
			QuickRecoverSpeedPercent:         0.5,
		},
		Dash: DashConfig{
			Speed:           300,
			Duration:        0.15,
			Cooldown:        0.5,
			IframesDuration: 0.15,
		},
		Collision: CollisionConfig{
			CornerCorrection: MarginConfig{Enabled: true, Margin: 4},
			LedgeAssist:      MarginConfig{Enabled: true, Margin: 6},
		},
		Combat: CombatConfig{
			Iframes:      1.0,
			StunDuration: 0.3,
			TumbleDamage: 20,
			KnockUp:      200,
		},
		Character: CharacterConfig{
			MaxHealth: 100,
			Width:     16,
			Height:    24,
			Hitbox: HitboxConfig{
				Head: Rect{OffsetX: 4, OffsetY: 0, Width: 8, Height: 6},
				Body: Rect{OffsetX: 2, OffsetY: 6, Width: 12, Height: 12},
				Feet: Rect{OffsetX: 2, OffsetY: 18, Width: 12, Height: 6},
			},
		},
		Interaction: InteractionConfig{
			Radius:       20,
			WispLifetime: 8,
		},
		Input: InputConfig{
			AnalogDeadzone: 0.25,
		},
	}
}
