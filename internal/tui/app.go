// Package tui is the terminal frontend: a 60fps bubbletea loop that advances
// the world then repaints, with mouse drag-and-release launching.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sahalpk007/inertia/internal/config"
	"github.com/sahalpk007/inertia/internal/levels"
	"github.com/sahalpk007/inertia/internal/physics"
	"github.com/sahalpk007/inertia/internal/sim"
	"github.com/sahalpk007/inertia/internal/viz"
)

const (
	statsWidth      = 40
	historyCapacity = 120
)

type TickMsg time.Time

// App is the bubbletea model. The world is only mutated here, from the
// single Update goroutine: ticks advance it, pointer events stage gestures.
type App struct {
	world    *sim.World
	levelCtl *levels.Controller
	renderer *viz.Renderer
	theme    viz.Theme
	cfg      *config.Config

	width, height int
	canvasCols    int
	canvasRows    int

	speedHistory []float64
	showHelp     bool
}

func NewApp(cfg *config.Config, lvls []levels.Level, seed int64) *App {
	ctl := levels.NewController(lvls)
	world := sim.NewWorld(
		sim.Bounds{W: float64(cfg.ArenaW), H: float64(cfg.ArenaH)},
		physics.New(),
		sim.NewSpawner(seed),
	)
	ctl.Apply(world)

	theme := viz.GetTheme(cfg.Theme)
	return &App{
		world:        world,
		levelCtl:     ctl,
		renderer:     viz.NewRenderer(40, 20, theme),
		theme:        theme,
		cfg:          cfg,
		speedHistory: make([]float64, 0, historyCapacity),
	}
}

// Run starts the program with the alt screen and full mouse tracking, so
// motion events reach the gesture preview.
func Run(cfg *config.Config, lvls []levels.Level, seed int64) error {
	app := NewApp(cfg, lvls, seed)
	_, err := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	return err
}

func (a *App) Init() tea.Cmd {
	return a.tick()
}

func (a *App) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(a.cfg.FrameRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)
	case tea.MouseMsg:
		a.handleMouse(msg)
		return a, nil
	case tea.WindowSizeMsg:
		a.layout(msg.Width, msg.Height)
		return a, nil
	case TickMsg:
		a.world.Step()
		a.recordSpeed()
		return a, a.tick()
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case " ":
		a.world.SetPlaying(!a.world.Playing())
	case "r":
		a.world.Reset()
	case "n":
		if a.levelCtl.Advance() {
			a.levelCtl.Apply(a.world)
		}
	case "1", "2", "3", "4":
		idx := int(msg.String()[0] - '1')
		if err := a.levelCtl.Select(idx); err == nil {
			a.levelCtl.Apply(a.world)
		}
	case "g":
		a.world.SetGravity(!a.world.Params().Gravity)
	case "right", "l":
		a.world.SetFriction(a.world.Params().Friction + 0.005)
	case "left", "h":
		a.world.SetFriction(a.world.Params().Friction - 0.005)
	case "t":
		a.theme = viz.NextTheme(a.theme.Name)
		a.renderer.Theme = a.theme
	case "?", "i":
		a.showHelp = !a.showHelp
	}
	return a, nil
}

// handleMouse stages the launch gesture. Events land between ticks and only
// touch gesture state; the object append happens once, on release.
func (a *App) handleMouse(msg tea.MouseMsg) {
	p, ok := a.toWorld(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && ok {
			a.world.BeginGesture(p)
		}
	case tea.MouseActionMotion:
		if ok {
			a.world.UpdateGesture(p)
		}
	case tea.MouseActionRelease:
		a.world.ReleaseGesture()
	}
}

// toWorld maps a terminal cell to arena pixels, reporting whether the cell
// lies on the canvas.
func (a *App) toWorld(cx, cy int) (sim.Vec2, bool) {
	if a.canvasCols == 0 || a.canvasRows == 0 {
		return sim.Vec2{}, false
	}
	if cx < 0 || cy < 0 || cx >= a.canvasCols || cy >= a.canvasRows {
		return sim.Vec2{}, false
	}
	b := a.world.Bounds()
	wx := (float64(cx) + 0.5) * b.W / float64(a.canvasCols)
	wy := (float64(cy) + 0.5) * b.H / float64(a.canvasRows)
	return sim.Vec2{X: wx, Y: wy}, true
}

func (a *App) layout(w, h int) {
	a.width, a.height = w, h
	a.canvasCols = w - statsWidth - 1
	a.canvasRows = h - 1
	a.renderer.Resize(a.canvasCols, a.canvasRows)
}

func (a *App) recordSpeed() {
	objs := a.world.Objects()
	total := 0.0
	for _, o := range objs {
		total += o.Speed()
	}
	mean := 0.0
	if len(objs) > 0 {
		mean = total / float64(len(objs))
	}
	a.speedHistory = append(a.speedHistory, mean)
	if len(a.speedHistory) > historyCapacity {
		a.speedHistory = a.speedHistory[1:]
	}
}

func (a *App) View() string {
	if a.width == 0 {
		return "loading..."
	}
	if a.showHelp {
		return a.helpView()
	}
	canvasView := a.renderer.Render(a.world)
	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, a.statsView())
}
