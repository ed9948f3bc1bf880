// Package crawl implements the endless 3D runner in its two variants.
//
// The player cube strafes between lanes while moving down -z at a speed that
// keeps increasing. Obstacles come from a fixed pool that is recycled ahead of
// the player. The classic variant advances one unit of time per frame; the
// neon variant is time-scaled and adds a hue cycle, wireframes and a
// beat-driven background.
package crawl

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/crawl/internal/audio"
	"github.com/vovakirdan/crawl/internal/config"
	"github.com/vovakirdan/crawl/internal/core"
	"github.com/vovakirdan/crawl/internal/entity"
	"github.com/vovakirdan/crawl/internal/hue"
	"github.com/vovakirdan/crawl/internal/registry"
	"github.com/vovakirdan/crawl/internal/scene"
)

// MusicFactory builds the background track for a run.
type MusicFactory func(cfg config.CrawlAudio) audio.Music

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset
var newMusic MusicFactory

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the
// config's own difficulty.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetMusicFactory sets how games obtain their music. nil means silent.
func SetMusicFactory(f MusicFactory) {
	newMusic = f
}

// Game implements one crawl variant.
type Game struct {
	variant string
	title   string
	desc    string

	runtime    core.RuntimeConfig
	cfg        config.CrawlConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	lanes      LaneSampler
	hue        *hue.Cycle
	beat       audio.BeatClock
	music      audio.Music

	phase      Phase
	paused     bool
	phaseTicks int

	player    entity.Entity
	obstacles *ObstaclePool
	camera    scene.Camera

	speed      float64
	score      float64
	topSpeed   float64
	playTime   float64 // seconds of unpaused running
	beats      int
	background core.Color
}

// New creates a game for the given variant ID.
func New(variant string) *Game {
	g := &Game{variant: variant}
	switch variant {
	case config.VariantNeon:
		g.title = "Crawl Neon"
		g.desc = "Time-scaled run with hue cycling, wireframes and a beat"
	default:
		g.title = "Crawl"
		g.desc = "Dodge the cubes; the floor keeps getting faster"
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.variant
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Description returns a one-line summary.
func (g *Game) Description() string {
	return g.desc
}

// Reset loads the variant config and starts over at the intro.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.Load(g.variant, configPath)
	if err != nil {
		cfg = config.DefaultConfig(g.variant)
	}
	config.ApplyPreset(&cfg, difficultyPreset)
	g.cfg = cfg

	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.lanes = NewLaneSampler(cfg.Obstacles.Lanes, g.rng)
	g.hue = hue.NewCycle(0, cfg.Style.HueStep)
	g.beat = audio.NewBeatClock(cfg.Audio.BPM)
	g.obstacles = NewObstaclePool(cfg.Obstacles.Max)

	if g.music == nil {
		g.music = audio.Music(audio.Nop{})
		if cfg.Audio.Enabled && newMusic != nil {
			g.music = newMusic(cfg.Audio)
		}
	}
	g.music.Pause()

	g.resetRun()
	g.obstacles.Rebuild(0, nil)
	g.setPhase(PhaseIntro)
}

// resetRun puts the player back at the origin with a fresh speed and score.
func (g *Game) resetRun() {
	g.player = entity.New(entity.Vec3{}, entity.CubeSize, core.ColorRed)
	g.speed = g.difficulty.StartSpeed(g.cfg.Physics.BaseSpeed)
	g.topSpeed = g.speed
	g.score = 0
	g.playTime = 0
	g.beats = 0
	g.background = core.ColorLightGray
	g.hue.Reset(0)
	g.followCamera()
}

// startRun resets the run and fills the pool with obstacles spaced along -z.
func (g *Game) startRun() {
	g.resetRun()

	spacing := g.cfg.Obstacles.Spacing
	g.obstacles.Rebuild(g.cfg.Obstacles.Max, func(i int) entity.Entity {
		return g.spawnObstacle(-spacing * float64(i+1))
	})

	g.setPhase(PhasePlaying)
	g.music.Play()
}

// spawnObstacle builds an obstacle at depth z in a random lane.
func (g *Game) spawnObstacle(z float64) entity.Entity {
	pos := entity.Vec3{X: g.lanes.Next(), Z: z}
	return entity.New(pos, entity.CubeSize, g.nextObstacleColor())
}

// nextObstacleColor advances the hue and returns the colour for a new
// obstacle. The hue advances in both variants so runs stay comparable.
func (g *Game) nextObstacleColor() core.Color {
	h := g.hue.Next()
	if !g.cfg.Style.HueCycle {
		return core.ColorDarkGray
	}
	return hue.Color(h, g.cfg.Style.Saturation, g.cfg.Style.Value)
}

func (g *Game) setPhase(p Phase) {
	g.phase = p
	g.phaseTicks = 0
	g.paused = false
}

// introTicks is the intro length in simulation ticks.
func (g *Game) introTicks() int {
	tickRate := g.runtime.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	return int(math.Ceil(g.cfg.Style.IntroSeconds * float64(tickRate)))
}

// dt is the simulation time one tick covers.
func (g *Game) dt() float64 {
	if g.cfg.Physics.FrameBased {
		return 1
	}
	return g.runtime.TickSeconds()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.phaseTicks++

	switch g.phase {
	case PhaseIntro:
		if g.phaseTicks >= g.introTicks() {
			g.setPhase(PhaseMenu)
		}
	case PhaseMenu, PhaseGameOver:
		if in.Has(core.ActionStart) {
			g.startRun()
		}
	case PhasePlaying:
		g.stepPlaying(in)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) stepPlaying(in core.InputFrame) {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		if g.paused {
			g.music.Pause()
		} else {
			g.music.Resume()
		}
	}
	if g.paused {
		return
	}

	dt := g.dt()

	strafe := g.speed * dt * g.cfg.Physics.StrafeFactor
	if in.IsDown(core.ActionLeft) {
		g.player.Position.X -= strafe
	}
	if in.IsDown(core.ActionRight) {
		g.player.Position.X += strafe
	}
	limit := g.cfg.Player.LaneLimit
	g.player.Position.X = core.ClampF(g.player.Position.X, -limit, limit)

	g.speed += g.difficulty.Acceleration(g.cfg.Physics.Acceleration) * dt
	if g.speed > g.topSpeed {
		g.topSpeed = g.speed
	}
	g.score += g.speed * dt
	g.player.Position.Z -= g.speed * dt

	g.followCamera()
	g.advanceBeat()

	if g.checkCollision() {
		g.music.Pause()
		g.setPhase(PhaseGameOver)
		return
	}
	g.recyclePassed()
}

// checkCollision reports whether the player touches any obstacle, scanning
// from the nearest and stopping at the first hit.
func (g *Game) checkCollision() bool {
	for i := 0; i < g.obstacles.Len(); i++ {
		if g.player.Collide(*g.obstacles.At(i)) {
			return true
		}
	}
	return false
}

// recyclePassed moves obstacles the player has left behind to the far end.
// When one tick passes several, each lands one spacing beyond the previous
// so they never share a z.
func (g *Game) recyclePassed() {
	spacing := g.cfg.Obstacles.Spacing
	far := g.player.Position.Z - float64(g.cfg.Obstacles.Max)*spacing
	for n := g.obstacles.Len(); n > 0; n-- {
		o := g.obstacles.Nearest()
		if o.Position.Z-g.player.Position.Z <= g.cfg.Obstacles.RecycleDistance {
			return
		}
		g.obstacles.RecycleNearest(g.spawnObstacle(far))
		far -= spacing
	}
}

// followCamera places the chase camera behind and above the player. It pulls
// back, swings toward the player's lane and widens its fov as speed grows.
func (g *Game) followCamera() {
	c := g.cfg.Camera
	p := g.player.Position

	follow := core.ClampF(g.speed*c.FollowRate, 0, 1)
	x := core.Lerp(0, p.X, follow)

	g.camera = scene.Camera{
		Position: entity.Vec3{X: x, Y: p.Y + c.Height, Z: p.Z + c.Distance + g.speed*c.PullbackPerSpeed},
		Target:   entity.Vec3{X: x / 2, Y: p.Y, Z: p.Z},
		Up:       entity.Vec3{Y: 1},
		Fovy:     math.Min(c.BaseFov+g.speed*c.FovPerSpeed, c.MaxFov),
	}
}

// advanceBeat moves play time forward and steps the background colour every
// BeatsPerChange beats.
func (g *Game) advanceBeat() {
	g.playTime += g.runtime.TickSeconds()
	if !g.cfg.Style.HueCycle {
		return
	}

	beats := g.beat.Beats(g.playTime)
	per := g.cfg.Audio.BeatsPerChange
	if per > 0 && beats/per > g.beats/per {
		bg := (g.hue.Value() + 180) % hue.MaxHue
		g.background = hue.Color(bg, 0.25, 0.95)
	}
	g.beats = beats
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    int(g.score),
		Distance: -g.player.Position.Z,
		TopSpeed: g.topSpeed,
		Playing:  g.phase == PhasePlaying,
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.paused,
	}
}

// Phase returns the active phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Close stops the music.
func (g *Game) Close() error {
	if g.music == nil {
		return nil
	}
	return g.music.Close()
}

// Register both variants with the registry
func init() {
	for _, id := range []string{config.VariantClassic, config.VariantNeon} {
		registry.Register(id, func() registry.Game {
			return New(id)
		})
	}
}
