// Package playing provides the sandbox scene that drives the control core.
package playing

import (
	"fmt"
	"image/color"
	"log"
	"log/slog"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/colornames"

	"github.com/younwookim/charctl/internal/application/control"
	"github.com/younwookim/charctl/internal/application/input"
	"github.com/younwookim/charctl/internal/application/replay"
	"github.com/younwookim/charctl/internal/application/scene"
	"github.com/younwookim/charctl/internal/application/state"
	"github.com/younwookim/charctl/internal/application/system"
	"github.com/younwookim/charctl/internal/domain/entity"
	"github.com/younwookim/charctl/internal/domain/event"
	"github.com/younwookim/charctl/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorWall      = color.RGBA{80, 80, 100, 255}
	colorPlatform  = color.RGBA{140, 120, 90, 255}
	colorSpike     = color.RGBA{200, 50, 50, 255}
	colorZipline   = colornames.Silver
	colorHook      = colornames.Gold
	colorPlayer    = color.RGBA{100, 200, 100, 255}
	colorTumble    = color.RGBA{220, 160, 60, 255}
	colorHead      = color.RGBA{100, 100, 200, 128}
	colorFeet      = color.RGBA{200, 200, 100, 128}
	colorBG        = color.RGBA{26, 26, 46, 255}
	colorSign      = color.RGBA{160, 110, 60, 255}
	colorCart      = color.RGBA{120, 120, 140, 255}
	colorWisp      = colornames.Lightskyblue
	colorHealthBG  = color.RGBA{60, 60, 60, 255}
	colorHealthFG  = color.RGBA{100, 200, 100, 255}
	colorDoubleJmp = color.RGBA{120, 220, 255, 255}
)

const (
	shakeIntensity = 4.0
	shakeDecay     = 0.85
	// restartDelay keeps the killing jump press from restarting at once
	restartDelay = 0.5
)

// FrameSource supplies the input of one frame. ok is false when the
// source has run out.
type FrameSource interface {
	Next() (f input.Frame, ok bool)
}

type liveSource struct {
	sys *system.InputSystem
}

func (s liveSource) Next() (input.Frame, bool) {
	return s.sys.Poll(), true
}

// Options configures a Playing scene
type Options struct {
	// RecordPath enables input recording when not empty
	RecordPath string
	// Replay plays back recorded input instead of reading devices
	Replay *replay.Replayer
	Logger *slog.Logger
}

// Playing is the sandbox scene. It owns the character, the control core
// and every collaborator the core talks to through its ports.
type Playing struct {
	cfg      *config.ControlConfig
	stageCfg *config.StageConfig
	stage    *entity.Stage
	state    state.GameState
	logger   *slog.Logger

	hub         *input.Hub
	inputSystem *system.InputSystem
	source      FrameSource
	replaying   bool

	char       *entity.Character
	actor      *system.ActorAdapter
	locomotion *system.LocomotionAdapter
	controller *control.Controller
	physics    *system.PhysicsSystem
	hazard     *system.HazardSystem
	ledge      *system.LedgeModule
	zipline    *system.ZiplineModule
	hook       *system.HookModule
	dash       *system.DashAbility
	charge     *system.ChargeAbility

	props     *system.PropWorld
	sensor    *system.ProximitySensor
	highlight *system.Highlight

	screenW   int
	screenH   int
	tileSize  int
	dt        float64
	shake     float64
	ticks     int
	deadTime  float64
	lastDeath event.Cause

	hud     hud
	pauseUI *ebitenui.UI

	// Input recording
	recorder       *Recorder
	recordFilename string
}

// New creates a new Playing scene on the given stage
func New(cfg *config.ControlConfig, stageCfg *config.StageConfig, opts Options) (*Playing, error) {
	if stageCfg == nil {
		return nil, fmt.Errorf("failed to create scene: no stage")
	}
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	framerate := cfg.Display.Framerate
	if framerate <= 0 {
		framerate = 60
	}

	p := &Playing{
		cfg:            cfg,
		stageCfg:       stageCfg,
		state:          state.StatePlaying,
		logger:         logger,
		hub:            input.NewHub(),
		inputSystem:    system.NewInputSystem(&cfg.Input, system.DefaultBindings()),
		screenW:        cfg.Display.ScreenWidth,
		screenH:        cfg.Display.ScreenHeight,
		dt:             1.0 / float64(framerate),
		recordFilename: opts.RecordPath,
	}

	p.source = liveSource{sys: p.inputSystem}
	if opts.Replay != nil {
		p.source = opts.Replay
		p.replaying = true
	}

	if err := p.build(); err != nil {
		return nil, err
	}

	// Initialize recorder if recording is enabled
	if opts.RecordPath != "" && !p.replaying {
		p.recorder = NewRecorder(stageCfg.ID)
		log.Printf("Recording enabled: %s", opts.RecordPath)
	}

	return p, nil
}

// build creates the character and everything around it from the current
// configs. An existing controller is deactivated first.
func (p *Playing) build() error {
	if p.controller != nil {
		p.controller.Deactivate()
	}

	cfg := p.cfg
	p.stage = system.LoadStage(p.stageCfg)
	p.tileSize = p.stage.TileSize
	p.char = system.NewCharacter(cfg, p.stage)
	p.actor = system.NewActorAdapter(p.char)

	p.physics = system.NewPhysicsSystem(cfg, p.stage)
	p.hazard = system.NewHazardSystem(cfg, p.physics)
	p.hazard.OnHit = func(event.Hit) { p.shake = shakeIntensity }
	p.ledge = system.NewLedgeModule(p.actor)
	p.physics.SetLedge(p.ledge)
	p.zipline = system.NewZiplineModule(cfg, p.physics, p.actor)
	p.hook = system.NewHookModule(cfg, p.physics, p.actor)
	p.locomotion = system.NewLocomotionAdapter(p.char, cfg, p.physics)

	p.dash = system.NewDashAbility(p.char, cfg)
	p.charge = system.NewChargeAbility(p.char, cfg)
	p.actor.Bind(entity.SlotPrimary, p.dash)
	p.actor.Bind(entity.SlotSecondary, p.charge)

	p.sensor = system.NewProximitySensor(p.stage.Width*p.tileSize, p.stage.Height*p.tileSize, cfg.Interaction.Radius)
	p.props = system.NewPropWorld(p.sensor, p.logger)
	if err := system.SpawnProps(p.stageCfg, p.props, cfg.Interaction.WispLifetime); err != nil {
		return err
	}
	p.highlight = system.NewHighlight()

	p.controller = control.NewController(cfg, p.hub, control.Ports{
		Actor:      p.actor,
		Locomotion: p.locomotion,
		Facing:     system.NewFacingAdapter(p.char),
		Abilities:  p.actor,
		Ledge:      p.ledge,
		Zipline:    p.zipline,
		Hook:       p.hook,
	}, p.logger)
	p.controller.Activate()

	p.char.Events.Death.Connect(p.onDeath)
	p.state = state.StatePlaying
	p.deadTime = 0
	return nil
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	if !p.replaying {
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.togglePause()
		}
		// F5: Save recording manually
		if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
			p.saveRecording()
		}
	}

	if p.state == state.StatePaused && p.pauseUI != nil {
		p.pauseUI.Update()
	}
	if !p.state.Simulates() {
		return nil, nil
	}

	f, ok := p.source.Next()
	if !ok {
		p.state = state.StateReplayDone
		p.logger.Info("replay finished", "frames", p.ticks)
		return nil, nil
	}
	p.step(f)

	return nil, nil // nil = stay on this scene
}

func (p *Playing) togglePause() {
	switch p.state {
	case state.StatePlaying:
		p.state = state.StatePaused
		if p.pauseUI == nil {
			p.pauseUI = newPauseUI(p.screenW, p.screenH, p.resume, p.restart)
		}
	case state.StatePaused:
		p.resume()
	}
}

func (p *Playing) resume() {
	if p.state == state.StatePaused {
		p.state = state.StatePlaying
	}
}

// step runs one frame. Edges reach the controller first, then the
// traversal modules answer their gates, then physics moves the character.
func (p *Playing) step(f input.Frame) {
	if p.recorder != nil {
		p.recorder.RecordFrame(f)
	}
	p.ticks++

	if p.state == state.StateDead {
		p.deadTime += p.dt
		if p.deadTime >= restartDelay && pressed(f, input.ActionJump) {
			p.restart()
			return
		}
	}

	dt := p.dt
	p.hub.SetEnabled(p.state.AcceptsInput())
	p.hub.Apply(f)
	p.controller.Update(dt)

	p.dash.Update(dt)
	p.charge.Update(dt)
	p.zipline.Update(p.char, dt)
	p.hook.Update(p.char, dt)
	p.physics.Update(p.char, dt)
	p.hazard.Update(p.char, dt)

	p.props.Update(dt)
	cx, cy := p.char.MiddlePixel()
	p.sensor.Update(cx, cy, p.controller.Approach, p.controller.Leave)
	p.highlight.Update(p.controller.Selector().Active(), dt)

	p.shake *= shakeDecay
}

func pressed(f input.Frame, id input.ActionID) bool {
	for _, got := range f.Pressed {
		if got == id {
			return true
		}
	}
	return false
}

func (p *Playing) onDeath(d event.Death) {
	p.state = state.StateDead
	p.lastDeath = d.Cause
	p.deadTime = 0
	p.logger.Info("character died", "cause", d.Cause.String())

	// Auto-save recording on death
	if p.recorder != nil {
		p.saveRecording()
	}
}

func (p *Playing) restart() {
	if err := p.build(); err != nil {
		// The stage config spawned once already, so this only fails after a bad reload
		log.Printf("Failed to restart: %v", err)
		return
	}
	p.logger.Info("restarted", "stage", p.stageCfg.ID)
}

// ApplyConfig swaps in a reloaded control config
func (p *Playing) ApplyConfig(cfg *config.ControlConfig) {
	if cfg == nil {
		return
	}
	p.cfg = cfg
	p.controller.ApplyConfig(cfg)
	p.physics.SetConfig(cfg)
	p.hazard.SetConfig(cfg)
	p.locomotion.SetConfig(cfg)
	p.zipline.SetConfig(cfg)
	p.hook.SetConfig(cfg)
	p.dash.SetConfig(cfg)
	p.charge.SetConfig(cfg)
	p.inputSystem.SetConfig(&cfg.Input)
	p.logger.Info("control config applied")
}

// ReloadStage rebuilds the scene on a reloaded stage config
func (p *Playing) ReloadStage(stageCfg *config.StageConfig) error {
	prev := p.stageCfg
	p.stageCfg = stageCfg
	if err := p.build(); err != nil {
		p.stageCfg = prev
		if rerr := p.build(); rerr != nil {
			return fmt.Errorf("failed to restore stage %s: %w", prev.ID, rerr)
		}
		return fmt.Errorf("failed to reload stage: %w", err)
	}
	p.logger.Info("stage reloaded", "stage", stageCfg.ID)
	return nil
}

// State returns the session state
func (p *Playing) State() state.GameState {
	return p.state
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// camera returns the top-left of the view, clamped to the stage
func (p *Playing) camera() (int, int) {
	camX := p.char.PixelX() - p.screenW/2 + p.char.Width/2
	camY := p.char.PixelY() - p.screenH/2 + p.char.Height/2

	maxCamX := p.stage.Width*p.tileSize - p.screenW
	maxCamY := p.stage.Height*p.tileSize - p.screenH
	camX = max(0, min(camX, maxCamX))
	camY = max(0, min(camY, maxCamY))
	return camX, camY
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	camX, camY := p.camera()
	if p.shake > 0.5 {
		jitter := int(p.shake)
		if p.ticks%2 == 0 {
			jitter = -jitter
		}
		camX += jitter
	}

	p.drawTiles(screen, camX, camY)
	p.drawProps(screen, camX, camY)
	p.drawPlayer(screen, camX, camY)
	p.drawUI(screen)

	switch p.state {
	case state.StatePaused:
		if p.pauseUI != nil {
			p.pauseUI.Draw(screen)
		}
	case state.StateDead:
		p.hud.banner(screen, color.RGBA{100, 0, 0, 120},
			fmt.Sprintf("DOWN (%s)\n\nPress Jump to restart", p.lastDeath), p.screenW, p.screenH)
	case state.StateReplayDone:
		p.hud.banner(screen, color.RGBA{0, 0, 60, 120}, "REPLAY FINISHED", p.screenW, p.screenH)
	}
}

func (p *Playing) drawTiles(screen *ebiten.Image, camX, camY int) {
	ts := p.tileSize
	startTileX := camX / ts
	startTileY := camY / ts
	endTileX := (camX+p.screenW)/ts + 1
	endTileY := (camY+p.screenH)/ts + 1

	for ty := startTileY; ty <= endTileY && ty < p.stage.Height; ty++ {
		for tx := startTileX; tx <= endTileX && tx < p.stage.Width; tx++ {
			if tx < 0 || ty < 0 {
				continue
			}
			tile := p.stage.GetTile(tx, ty)

			x := float64(tx*ts - camX)
			y := float64(ty*ts - camY)
			size := float64(ts)

			switch tile.Type {
			case entity.TileWall:
				ebitenutil.DrawRect(screen, x, y, size, size, colorWall)
			case entity.TilePlatform:
				ebitenutil.DrawRect(screen, x, y, size, 3, colorPlatform)
			case entity.TileSpike:
				ebitenutil.DrawRect(screen, x, y+size/2, size, size/2, colorSpike)
			case entity.TileZipline:
				ebitenutil.DrawLine(screen, x, y+size/2, x+size, y+size/2, colorZipline)
			case entity.TileHook:
				ebitenutil.DrawRect(screen, x+size/2-2, y+size/2-2, 4, 4, colorHook)
			}
		}
	}
}

func (p *Playing) drawProps(screen *ebiten.Image, camX, camY int) {
	active := p.highlight.Target()
	glow := p.highlight.Value()

	p.props.Each(func(a *system.PropAdapter) {
		prop := a.Prop()
		if prop.Dead {
			return
		}

		var c color.RGBA
		switch prop.Kind {
		case entity.PropSign:
			c = colorSign
		case entity.PropCart:
			c = colorCart
		case entity.PropWisp:
			c = colorWisp
		}

		x := float64(prop.X - camX)
		y := float64(prop.Y - camY)
		ebitenutil.DrawRect(screen, x, y, float64(prop.W), float64(prop.H), c)

		if control.Interactable(a) == active {
			alpha := uint8(255 * glow)
			outline := color.RGBA{alpha, alpha, alpha, alpha}
			ebitenutil.DrawRect(screen, x, y-4, float64(prop.W), 2, outline)
		}
	})
}

func (p *Playing) drawPlayer(screen *ebiten.Image, camX, camY int) {
	c := p.char
	playerScreenX := float64(c.PixelX() - camX)
	playerScreenY := float64(c.PixelY() - camY)

	playerColor := colorPlayer
	if c.Tumbling {
		playerColor = colorTumble
	}
	// Flash when invincible
	if c.IsInvincible() && int(c.IframeTimer*10)%2 == 0 {
		playerColor = color.RGBA{255, 255, 255, 200}
	}

	ebitenutil.DrawRect(screen, playerScreenX, playerScreenY, float64(c.Width), float64(c.Height), playerColor)

	// Draw hitbox debug (use pixel coordinates)
	if ebiten.IsKeyPressed(ebiten.KeyTab) {
		hx, hy, hw, hh := c.Hitbox.Head.GetWorldRect(c.PixelX(), c.PixelY(), c.FacingRight, c.Width)
		ebitenutil.DrawRect(screen, float64(hx-camX), float64(hy-camY), float64(hw), float64(hh), colorHead)

		fx, fy, fw, fh := c.Hitbox.Feet.GetWorldRect(c.PixelX(), c.PixelY(), c.FacingRight, c.Width)
		ebitenutil.DrawRect(screen, float64(fx-camX), float64(fy-camY), float64(fw), float64(fh), colorFeet)
	}
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	// Health bar
	barX := 10.0
	barY := float64(p.screenH - 20)
	barW := 100.0
	barH := 10.0

	ebitenutil.DrawRect(screen, barX, barY, barW, barH, colorHealthBG)

	healthRatio := float64(p.char.Health) / float64(p.char.MaxHealth)
	if healthRatio < 0 {
		healthRatio = 0
	}
	ebitenutil.DrawRect(screen, barX, barY, barW*healthRatio, barH, colorHealthFG)

	// Double jump pip
	if p.controller.Movement().CanDoubleJump() {
		ebitenutil.DrawRect(screen, barX+barW+6, barY+2, 6, 6, colorDoubleJmp)
	}

	status := fmt.Sprintf("jump:%s", p.controller.Movement().Phase())
	if p.char.Vehicle != "" {
		status += " vehicle:" + p.char.Vehicle
	}
	if p.char.Traversal != "" {
		status += " on:" + p.char.Traversal
	}
	if p.charge.Charging() {
		status += fmt.Sprintf(" charge:%.0f%%", p.charge.Charge()*100)
	}
	if p.replaying {
		status += " [replay]"
	}
	p.hud.status(screen, status, 10, p.screenH-35)

	if a, ok := p.controller.Selector().Active().(*system.PropAdapter); ok && a.Message != "" {
		p.hud.sign(screen, a.Message, p.screenW)
	}

	debugText := "Arrows: Move | X: Jump | C: Dash | V: Charge | Z: Use | ESC: Pause"
	ebitenutil.DebugPrint(screen, debugText)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.controller.Deactivate()
	p.saveRecording()
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}
