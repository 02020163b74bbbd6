package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/pushoff/internal/config"
)

var (
	dataDir    string
	configFile string
	verbose    bool
	seed       int64
	p1Kind     string
	p2Kind     string
	sound      bool
	fps        int
	maxTicks   int
	rounds     int
	workers    int
	noSave     bool
	outPath    string
	svgPath    string
	writePath  string
	topN       int
)

// main registers the commands and runs the terminal game when no subcommand
// is given. It exits with status 1 if the command returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "pushoff [preset]",
		Short: "two-player sumo push-off arena",
		Args:  cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
		RunE: playTerminal,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	addPlayerFlags(rootCmd)

	playCmd := &cobra.Command{
		Use:   "play [preset]",
		Short: "play in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  playTerminal,
	}
	addPlayerFlags(playCmd)

	guiCmd := &cobra.Command{
		Use:   "gui [preset]",
		Short: "play in a window",
		Args:  cobra.MaximumNArgs(1),
		RunE:  playWindow,
	}
	addPlayerFlags(guiCmd)
	guiCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")

	simCmd := &cobra.Command{
		Use:   "sim [preset]",
		Short: "play one headless round between bots and record it",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSimulation,
	}
	addBotFlags(simCmd)
	simCmd.Flags().IntVar(&maxTicks, "ticks", 0, "tick limit before a draw (default 2 minutes)")
	simCmd.Flags().BoolVar(&noSave, "no-save", false, "do not record the run")

	benchCmd := &cobra.Command{
		Use:   "bench [preset]",
		Short: "play many headless rounds in parallel and tally winners",
		Args:  cobra.MaximumNArgs(1),
		RunE:  benchRounds,
	}
	addBotFlags(benchCmd)
	benchCmd.Flags().IntVar(&rounds, "rounds", 100, "number of rounds")
	benchCmd.Flags().IntVar(&workers, "workers", 0, "parallel rounds (default GOMAXPROCS)")
	benchCmd.Flags().IntVar(&maxTicks, "ticks", 0, "tick limit before a draw (default 2 minutes)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a recorded run as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	exportCmd.Flags().StringVar(&svgPath, "svg", "", "also draw the players' trails to an svg file")

	tuneCmd := &cobra.Command{
		Use:   "tune [preset]",
		Short: "grid search the bot's steering gains against the default bot",
		Args:  cobra.MaximumNArgs(1),
		RunE:  tuneBot,
	}
	addBotFlags(tuneCmd)
	tuneCmd.Flags().IntVar(&rounds, "rounds", 40, "rounds per gain setting")
	tuneCmd.Flags().IntVar(&workers, "workers", 0, "parallel rounds (default GOMAXPROCS)")
	tuneCmd.Flags().IntVar(&maxTicks, "ticks", 0, "tick limit before a draw (default 2 minutes)")
	tuneCmd.Flags().IntVar(&topN, "top", 5, "number of settings to show")

	scoresCmd := &cobra.Command{
		Use:   "scores [board]",
		Short: "show win counts and best collect scores",
		Args:  cobra.MaximumNArgs(1),
		RunE:  showScores,
	}
	scoresCmd.Flags().IntVar(&topN, "top", 5, "number of best scores to show")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets",
		RunE:  listPresets,
	}
	presetsCmd.Flags().StringVar(&writePath, "write", "", "write the named preset (--preset) to a yaml file")
	presetsCmd.Flags().String("preset", "classic", "preset to write")

	rootCmd.AddCommand(playCmd, guiCmd, simCmd, benchCmd, tuneCmd, listCmd, plotCmd, exportCmd, scoresCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func addPlayerFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p1Kind, "p1", config.PlayerKeys, "player one: keys, bot, charge-bot or none")
	cmd.Flags().StringVar(&p2Kind, "p2", config.PlayerKeys, "player two: keys, bot, charge-bot or none")
	cmd.Flags().BoolVar(&sound, "sound", false, "play sound effects")
}

func addBotFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p1Kind, "p1", config.PlayerBot, "player one: bot, charge-bot or none")
	cmd.Flags().StringVar(&p2Kind, "p2", config.PlayerChargeBot, "player two: bot, charge-bot or none")
}

func setupLogging() {
	log.SetPrefix("pushoff")
	log.SetReportTimestamp(true)
	log.SetTimeFormat(time.Kitchen)
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}

// loadConfig resolves the configuration: a preset argument wins over the
// config file, which wins over the defaults. Flags override all three when
// set explicitly.
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	switch {
	case len(args) > 0:
		cfg, err = config.GetPreset(args[0])
	case configFile != "":
		cfg, err = config.Load(configFile)
	default:
		cfg = config.DefaultConfig()
	}
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") || cfg.Seed == 0 {
		cfg.Seed = seed
	}
	if flags.Changed("data") {
		cfg.DataDir = dataDir
	}
	if flags.Lookup("p1") != nil && flags.Changed("p1") {
		cfg.Players.P1 = p1Kind
	}
	if flags.Lookup("p2") != nil && flags.Changed("p2") {
		cfg.Players.P2 = p2Kind
	}
	if flags.Lookup("sound") != nil && flags.Changed("sound") {
		cfg.Sound = sound
	}
	if flags.Lookup("fps") != nil && flags.Changed("fps") {
		cfg.FPS = fps
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log.Debug("config loaded", "preset", cfg.Preset, "mode", cfg.Mode, "seed", cfg.Seed, "features", fmt.Sprintf("%+v", cfg.Features))
	return cfg, nil
}
