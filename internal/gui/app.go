// Package gui is the graphical frontend: a raylib window with glow discs,
// motion trails, velocity vectors and drag-to-launch input.
package gui

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/sahalpk007/inertia/internal/audio"
	"github.com/sahalpk007/inertia/internal/config"
	"github.com/sahalpk007/inertia/internal/levels"
	"github.com/sahalpk007/inertia/internal/physics"
	"github.com/sahalpk007/inertia/internal/sim"
)

var (
	colBg      = rl.NewColor(8, 8, 18, 255)
	colStar    = rl.NewColor(120, 120, 160, 200)
	colText    = rl.NewColor(200, 200, 210, 255)
	colTextDim = rl.NewColor(110, 110, 130, 255)
	colAccent  = rl.NewColor(204, 93, 232, 255)
)

type App struct {
	world    *sim.World
	levelCtl *levels.Controller
	cfg      *config.Config
	player   *audio.Player

	glowTex  rl.Texture2D
	showHelp bool
}

// Run opens the window and drives the frame loop: input, advance, draw.
// It returns when the window closes; the loop stops with it, so no frame
// callback outlives the surface.
func Run(cfg *config.Config, lvls []levels.Level, seed int64) error {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.ArenaW), int32(cfg.ArenaH), "inertia")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.FrameRate))
	rl.SetExitKey(0)

	ctl := levels.NewController(lvls)
	world := sim.NewWorld(
		sim.Bounds{W: float64(cfg.ArenaW), H: float64(cfg.ArenaH)},
		physics.New(),
		sim.NewSpawner(seed),
	)
	ctl.Apply(world)

	app := &App{world: world, levelCtl: ctl, cfg: cfg}

	img := rl.GenImageGradientRadial(64, 64, 0.0, rl.White, rl.NewColor(0, 0, 0, 0))
	app.glowTex = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	defer rl.UnloadTexture(app.glowTex)

	if cfg.Audio {
		player := audio.NewPlayer()
		if err := player.Start(); err == nil {
			app.player = player
			world.AddObserver(player)
			defer player.Stop()
		}
	}

	for !rl.WindowShouldClose() {
		app.handleInput()
		app.world.Step()
		app.draw()
	}
	return nil
}

func (a *App) handleInput() {
	if rl.IsWindowResized() {
		w := min(rl.GetScreenWidth(), a.cfg.ArenaW)
		h := min(rl.GetScreenHeight(), a.cfg.ArenaH)
		a.world.Resize(sim.Bounds{W: float64(w), H: float64(h)})
	}

	mouse := rl.GetMousePosition()
	p := sim.Vec2{X: float64(mouse.X), Y: float64(mouse.Y)}
	switch {
	case rl.IsMouseButtonPressed(rl.MouseButtonLeft):
		a.world.BeginGesture(p)
	case rl.IsMouseButtonDown(rl.MouseButtonLeft):
		a.world.UpdateGesture(p)
	case rl.IsMouseButtonReleased(rl.MouseButtonLeft):
		a.world.ReleaseGesture()
	}

	switch {
	case rl.IsKeyPressed(rl.KeySpace):
		a.world.SetPlaying(!a.world.Playing())
	case rl.IsKeyPressed(rl.KeyR):
		a.world.Reset()
	case rl.IsKeyPressed(rl.KeyN):
		if a.levelCtl.Advance() {
			a.levelCtl.Apply(a.world)
		}
	case rl.IsKeyPressed(rl.KeyG):
		a.world.SetGravity(!a.world.Params().Gravity)
	case rl.IsKeyPressed(rl.KeyEqual):
		a.world.SetFriction(a.world.Params().Friction + 0.005)
	case rl.IsKeyPressed(rl.KeyMinus):
		a.world.SetFriction(a.world.Params().Friction - 0.005)
	case rl.IsKeyPressed(rl.KeyH):
		a.showHelp = !a.showHelp
	case rl.IsKeyPressed(rl.KeyOne):
		a.selectLevel(0)
	case rl.IsKeyPressed(rl.KeyTwo):
		a.selectLevel(1)
	case rl.IsKeyPressed(rl.KeyThree):
		a.selectLevel(2)
	case rl.IsKeyPressed(rl.KeyFour):
		a.selectLevel(3)
	}
}

func (a *App) selectLevel(i int) {
	if err := a.levelCtl.Select(i); err == nil {
		a.levelCtl.Apply(a.world)
	}
}

// parseHex turns a #rrggbb palette entry into a raylib color.
func parseHex(s string) rl.Color {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return rl.White
	}
	return rl.NewColor(r, g, b, 255)
}

func vec(p sim.Vec2) rl.Vector2 {
	return rl.NewVector2(float32(p.X), float32(p.Y))
}

func (a *App) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(colBg)

	a.drawStars()
	for _, o := range a.world.Objects() {
		a.drawTrail(o)
	}
	for _, o := range a.world.Objects() {
		a.drawDisc(o)
	}
	for _, o := range a.world.Objects() {
		a.drawVelocity(o)
	}
	a.drawGesture()
	a.drawHUD()

	rl.EndDrawing()
}

// drawStars places the background from a fixed formula over the star index,
// so the field never flickers between frames.
func (a *App) drawStars() {
	b := a.world.Bounds()
	const n = 140
	for i := 1; i <= n; i++ {
		fx := math.Mod(float64(i)*0.6180339887498949, 1)
		fy := math.Mod(float64(i)*0.7548776662466927, 1)
		x := float32(fx * b.W)
		y := float32(fy * b.H)
		rl.DrawPixelV(rl.NewVector2(x, y), colStar)
		if i%7 == 0 {
			rl.DrawPixelV(rl.NewVector2(x+1, y), colStar)
		}
	}
}

func (a *App) drawTrail(o *sim.Object) {
	col := parseHex(o.Color)
	for i := 1; i < len(o.Trail); i++ {
		alpha := float32(i) / float32(len(o.Trail)) * 0.5
		rl.DrawLineEx(vec(o.Trail[i-1]), vec(o.Trail[i]), 2, rl.Fade(col, alpha))
	}
}

func (a *App) drawDisc(o *sim.Object) {
	col := parseHex(o.Color)
	glowScale := float32(o.Radius*4) / 64
	glowPos := rl.NewVector2(float32(o.Pos.X)-float32(o.Radius)*2, float32(o.Pos.Y)-float32(o.Radius)*2)
	rl.DrawTextureEx(a.glowTex, glowPos, 0, glowScale, rl.Fade(col, 0.35))
	rl.DrawCircleV(vec(o.Pos), float32(o.Radius), col)
}

func (a *App) drawVelocity(o *sim.Object) {
	if o.Speed() <= sim.ArrowMinSpeed {
		return
	}
	tip := o.Pos.Add(o.Vel.Scale(6))
	rl.DrawLineEx(vec(o.Pos), vec(tip), 2, rl.White)

	angle := math.Atan2(o.Vel.Y, o.Vel.X)
	const head = 10.0
	left := sim.Vec2{
		X: tip.X + head*math.Cos(angle+math.Pi-0.4),
		Y: tip.Y + head*math.Sin(angle+math.Pi-0.4),
	}
	right := sim.Vec2{
		X: tip.X + head*math.Cos(angle+math.Pi+0.4),
		Y: tip.Y + head*math.Sin(angle+math.Pi+0.4),
	}
	rl.DrawTriangle(vec(tip), vec(left), vec(right), rl.White)
}

func (a *App) drawGesture() {
	g := a.world.Gesture()
	if g == nil {
		return
	}
	drawDashedLine(vec(g.Start), vec(g.Current), colAccent)
	label := fmt.Sprintf("power %.1f", g.Power())
	rl.DrawText(label, int32(g.Current.X)+12, int32(g.Current.Y)-8, 18, colAccent)
}

func drawDashedLine(from, to rl.Vector2, col rl.Color) {
	dx := float64(to.X - from.X)
	dy := float64(to.Y - from.Y)
	dist := math.Hypot(dx, dy)
	if dist < 1 {
		return
	}
	const dash = 8.0
	steps := int(dist / dash)
	for i := 0; i < steps; i += 2 {
		t0 := float64(i) * dash / dist
		t1 := math.Min(float64(i+1)*dash/dist, 1)
		p0 := rl.NewVector2(from.X+float32(t0*dx), from.Y+float32(t0*dy))
		p1 := rl.NewVector2(from.X+float32(t1*dx), from.Y+float32(t1*dy))
		rl.DrawLineEx(p0, p1, 2, col)
	}
}

func (a *App) drawHUD() {
	lv := a.levelCtl.Current()
	p := a.world.Params()

	title := fmt.Sprintf("Level %d/%d: %s", a.levelCtl.Index()+1, a.levelCtl.Count(), lv.Name)
	rl.DrawText(title, 16, 12, 22, colText)
	rl.DrawText(lv.Goal, 16, 38, 16, colTextDim)

	gravity := "off"
	if p.Gravity {
		gravity = "on"
	}
	status := fmt.Sprintf("friction %.3f   gravity %s   score %.0f", p.Friction, gravity, a.world.Score())
	rl.DrawText(status, 16, int32(a.world.Bounds().H)-28, 18, colText)

	if len(a.world.Objects()) == 0 && a.world.Gesture() == nil {
		msg := "drag and release to launch a disc  (H for help)"
		w := rl.MeasureText(msg, 20)
		rl.DrawText(msg, int32(a.world.Bounds().W/2)-w/2, int32(a.world.Bounds().H/2), 20, colTextDim)
	}

	if a.showHelp {
		a.drawHelp()
	}
}

func (a *App) drawHelp() {
	lines := []string{
		"space  pause / resume",
		"r      clear all discs",
		"n      advance level (clamped at the last)",
		"1-4    jump to a level",
		"g      toggle gravity",
		"- =    friction down / up",
		"h      toggle this help",
	}
	x := int32(a.world.Bounds().W) - 360
	y := int32(60)
	rl.DrawRectangle(x-12, y-12, 352, int32(len(lines))*24+24, rl.Fade(rl.Black, 0.7))
	for i, l := range lines {
		rl.DrawText(l, x, y+int32(i)*24, 18, colText)
	}
}
