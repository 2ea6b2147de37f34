package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/sahalpk007/inertia/internal/config"
	"github.com/sahalpk007/inertia/internal/export"
	"github.com/sahalpk007/inertia/internal/gui"
	"github.com/sahalpk007/inertia/internal/levels"
	"github.com/sahalpk007/inertia/internal/metrics"
	"github.com/sahalpk007/inertia/internal/physics"
	"github.com/sahalpk007/inertia/internal/sim"
	"github.com/sahalpk007/inertia/internal/store"
	"github.com/sahalpk007/inertia/internal/tui"
)

var (
	configFile string
	dataDir    string
	themeName  string
	levelPack  string
	seed       int64

	// run flags
	levelIdx  int
	frames    int
	friction  float64
	gravity   string
	launches  []string
	noPersist bool

	// export flags
	outFile string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "inertia",
		Short: "Newton's First Law particle sandbox",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, lvls, err := loadSetup()
			if err != nil {
				return err
			}
			return tui.Run(cfg, lvls, seedOrNow())
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "data directory for run storage")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "TUI theme")
	rootCmd.PersistentFlags().StringVar(&levelPack, "levels", "", "custom level pack (yaml)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "spawner seed (0 = wall clock)")

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "interactive terminal sandbox",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, lvls, err := loadSetup()
			if err != nil {
				return err
			}
			return tui.Run(cfg, lvls, seedOrNow())
		},
	}

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "graphical sandbox window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, lvls, err := loadSetup()
			if err != nil {
				return err
			}
			return gui.Run(cfg, lvls, seedOrNow())
		},
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a scripted headless simulation",
		RunE:  runHeadless,
	}
	runCmd.Flags().IntVar(&levelIdx, "level", 0, "level preset index")
	runCmd.Flags().IntVar(&frames, "frames", 600, "frames to simulate")
	runCmd.Flags().Float64Var(&friction, "friction", -1, "override friction (0-0.1)")
	runCmd.Flags().StringVar(&gravity, "gravity", "", "override gravity (on/off)")
	runCmd.Flags().StringArrayVar(&launches, "launch", nil, "launch spec x,y,dx,dy (repeatable)")
	runCmd.Flags().BoolVar(&noPersist, "no-save", false, "skip writing the run to the data directory")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run trajectories to CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return exportRun(args[0], "csv")
		},
	}
	exportCSVCmd.Flags().StringVar(&outFile, "out", "", "output file (default stdout)")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run metadata and trajectories to JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return exportRun(args[0], "json")
		},
	}
	exportJSONCmd.Flags().StringVar(&outFile, "out", "", "output file (default stdout)")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "render run trajectories to an SVG image",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&outFile, "out", "", "output file (default stdout)")

	levelsCmd := &cobra.Command{
		Use:   "levels",
		Short: "print the level table",
		RunE:  printLevels,
	}

	rootCmd.AddCommand(playCmd, guiCmd, runCmd, listCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd, levelsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadSetup() (*config.Config, []levels.Level, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if themeName != "" {
		cfg.Theme = themeName
	}
	if levelPack != "" {
		cfg.LevelPack = levelPack
	}

	var lvls []levels.Level
	if cfg.LevelPack != "" {
		loaded, err := levels.LoadPack(cfg.LevelPack)
		if err != nil {
			return nil, nil, err
		}
		lvls = loaded
	}
	return cfg, lvls, nil
}

func seedOrNow() int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// parseLaunch reads a "x,y,dx,dy" spec: launch point plus drag vector.
func parseLaunch(spec string) (start, drag sim.Vec2, err error) {
	parts := strings.Split(spec, ",")
	if len(parts) != 4 {
		return start, drag, fmt.Errorf("launch spec %q: want x,y,dx,dy", spec)
	}
	vals := make([]float64, 4)
	for i, p := range parts {
		vals[i], err = strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return start, drag, fmt.Errorf("launch spec %q: %w", spec, err)
		}
	}
	return sim.Vec2{X: vals[0], Y: vals[1]}, sim.Vec2{X: vals[2], Y: vals[3]}, nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, lvls, err := loadSetup()
	if err != nil {
		return err
	}

	ctl := levels.NewController(lvls)
	if err := ctl.Select(levelIdx); err != nil {
		return err
	}

	world := sim.NewWorld(
		sim.Bounds{W: float64(cfg.ArenaW), H: float64(cfg.ArenaH)},
		physics.New(),
		sim.NewSpawner(seedOrNow()),
	)
	ctl.Apply(world)

	if friction >= 0 {
		world.SetFriction(friction)
	}
	switch gravity {
	case "on":
		world.SetGravity(true)
	case "off":
		world.SetGravity(false)
	case "":
	default:
		return fmt.Errorf("gravity must be on or off, got %q", gravity)
	}

	recorder := store.NewRecorder()
	ms := []metrics.Metric{metrics.NewMeanSpeed(), metrics.NewKineticEnergy(), metrics.NewBounces()}
	world.AddObserver(recorder)
	for _, m := range ms {
		world.AddObserver(m)
	}

	if len(launches) == 0 {
		launches = []string{"400,300,100,0"}
	}
	for _, spec := range launches {
		start, drag, err := parseLaunch(spec)
		if err != nil {
			return err
		}
		world.BeginGesture(start)
		world.UpdateGesture(start.Add(drag))
		world.ReleaseGesture()
	}

	for i := 0; i < frames; i++ {
		world.Step()
	}

	values := make(map[string]float64, len(ms))
	for _, m := range ms {
		values[m.Name()] = m.Value()
	}

	lv := ctl.Current()
	p := world.Params()
	meta := store.RunMetadata{
		Level:    lv.Name,
		Frames:   frames,
		Friction: p.Friction,
		Gravity:  p.Gravity,
		Seed:     seed,
		Launches: len(launches),
		Score:    world.Score(),
		Metrics:  values,
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "level\t%s\n", lv.Name)
	fmt.Fprintf(w, "frames\t%d\n", frames)
	fmt.Fprintf(w, "launches\t%d\n", len(launches))
	fmt.Fprintf(w, "score\t%.1f\n", world.Score())
	for _, m := range ms {
		fmt.Fprintf(w, "%s\t%.3f\n", m.Name(), m.Value())
	}
	w.Flush()

	if noPersist {
		return nil
	}
	st := store.New(cfg.DataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(meta, recorder.Recording())
	if err != nil {
		return err
	}
	fmt.Printf("saved run %s\n", runID)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadSetup()
	if err != nil {
		return err
	}
	runs, err := store.New(cfg.DataDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no stored runs")
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tLEVEL\tFRAMES\tLAUNCHES\tSCORE\tWHEN")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.1f\t%s\n",
			r.ID, r.Level, r.Frames, r.Launches, r.Score, r.Timestamp.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

func exportRun(runID, format string) error {
	cfg, _, err := loadSetup()
	if err != nil {
		return err
	}
	st := store.New(cfg.DataDir)

	out := os.Stdout
	if outFile != "" {
		f, err := os.Create(outFile)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	if format == "json" {
		return st.ExportJSON(runID, out)
	}
	return st.ExportCSV(runID, out)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadSetup()
	if err != nil {
		return err
	}
	st := store.New(cfg.DataDir)
	rec, err := st.LoadTrajectories(args[0])
	if err != nil {
		return err
	}
	svg := export.RunToSVG(rec, cfg.ArenaW, cfg.ArenaH)
	if outFile == "" {
		_, err = fmt.Print(svg)
		return err
	}
	return os.WriteFile(outFile, []byte(svg), 0644)
}

func printLevels(cmd *cobra.Command, args []string) error {
	_, lvls, err := loadSetup()
	if err != nil {
		return err
	}
	if len(lvls) == 0 {
		lvls = levels.BuiltIn()
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "IDX\tNAME\tFRICTION\tGRAVITY\tGOAL")
	for i, lv := range lvls {
		fmt.Fprintf(w, "%d\t%s\t%.3f\t%v\t%s\n", i, lv.Name, lv.Friction, lv.Gravity, lv.Goal)
	}
	return w.Flush()
}
