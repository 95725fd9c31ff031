package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/llamademo/internal/clipboard"
	"github.com/san-kum/llamademo/internal/config"
	"github.com/san-kum/llamademo/internal/logs"
	"github.com/san-kum/llamademo/internal/report"
	"github.com/san-kum/llamademo/internal/rotator"
	"github.com/san-kum/llamademo/internal/sched"
	"github.com/san-kum/llamademo/internal/scramble"
	"github.com/san-kum/llamademo/internal/transcript"
	"github.com/san-kum/llamademo/internal/ui"
)

var (
	configFile      string
	theme           string
	logFile         string
	logLevel        string
	transcriptsFile string

	words     []string
	alphabet  string
	duration  time.Duration
	tick      time.Duration
	period    time.Duration
	seed      uint64
	preset    string
	plain     bool
	rotations int

	format   string
	copyOut  bool
	all      bool
	plotW    int
	plotH    int
	showRows bool
	allWords bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "llamademo",
		Short:        "llamaware landing page in the terminal",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd, true, true)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "color theme ("+strings.Join(ui.ThemeNames(), ", ")+")")
	pf.StringVar(&logFile, "log-file", "", "append logs to this file")
	pf.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	pf.StringVar(&transcriptsFile, "transcripts", "", "transcript sessions file (yaml)")

	heroCmd := &cobra.Command{
		Use:   "hero",
		Short: "show the rotating scramble banner",
		RunE:  runHero,
	}
	addHeroFlags(heroCmd)
	heroCmd.Flags().BoolVar(&plain, "plain", false, "print frames to stdout instead of the full-screen view")
	heroCmd.Flags().IntVar(&rotations, "rotations", 0, "exit after this many words have settled (plain mode, 0 = forever)")

	terminalCmd := &cobra.Command{
		Use:   "terminal",
		Short: "browse the transcript sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd, false, true)
		},
	}

	sessionsCmd := &cobra.Command{
		Use:   "sessions",
		Short: "list transcript sessions",
		RunE:  listSessions,
	}

	exportCmd := &cobra.Command{
		Use:   "export [title]",
		Short: "export a transcript session",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportSession,
	}
	exportCmd.Flags().StringVar(&format, "format", "text", "output format (text, json)")
	exportCmd.Flags().BoolVar(&copyOut, "copy", false, "copy to the clipboard via OSC 52 instead of printing")
	exportCmd.Flags().BoolVar(&all, "all", false, "export every session")

	traceCmd := &cobra.Command{
		Use:   "trace [word]",
		Short: "plot how one scramble run settles",
		Args:  cobra.MaximumNArgs(1),
		RunE:  traceRun,
	}
	addHeroFlags(traceCmd)
	traceCmd.Flags().IntVar(&plotW, "width", 60, "plot width")
	traceCmd.Flags().IntVar(&plotH, "height", 10, "plot height")
	traceCmd.Flags().BoolVar(&showRows, "table", false, "print every frame")
	traceCmd.Flags().BoolVar(&allWords, "all-words", false, "overlay every configured word")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available hero presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("presets:")
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage the config file",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default config",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "llamademo.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(heroCmd, terminalCmd, sessionsCmd, exportCmd, traceCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addHeroFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&words, "words", config.DefaultWords, "words to rotate through")
	cmd.Flags().StringVar(&alphabet, "alphabet", scramble.DefaultAlphabet, "scramble alphabet")
	cmd.Flags().DurationVar(&duration, "duration", config.DefaultDuration, "scramble duration")
	cmd.Flags().DurationVar(&tick, "tick", config.DefaultTickInterval, "scramble tick interval")
	cmd.Flags().DurationVar(&period, "period", config.DefaultRotationPeriod, "rotation period")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (0 = random)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// loadConfig layers defaults, preset, config file, environment and any flags
// set on the command line, in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Resolve(preset, configFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("log-file") {
		cfg.Log.File = logFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if flags.Changed("transcripts") {
		cfg.Transcripts = transcriptsFile
	}
	if flags.Changed("words") {
		cfg.Hero.Words = words
	}
	if flags.Changed("alphabet") {
		cfg.Hero.Alphabet = alphabet
	}
	if flags.Changed("duration") {
		cfg.Hero.Duration = duration
	}
	if flags.Changed("tick") {
		cfg.Hero.TickInterval = tick
	}
	if flags.Changed("period") {
		cfg.Hero.RotationPeriod = period
	}
	if flags.Changed("seed") {
		cfg.Hero.Seed = seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openLogger returns the configured logger and a close func. console is
// used for commands that do not take over the screen.
func openLogger(cfg *config.Config, console io.Writer) (*slog.Logger, func(), error) {
	level, err := logs.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	opts := logs.Options{Console: console, Level: level}
	closeFn := func() {}
	if cfg.Log.File != "" {
		f, err := logs.OpenFile(cfg.Log.File)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		opts.File = f
		closeFn = func() { f.Close() }
	}
	return logs.New(opts), closeFn, nil
}

func loadSessions(cfg *config.Config) (transcript.Collection, error) {
	if cfg.Transcripts == "" {
		return transcript.Builtin(), nil
	}
	c, err := config.LoadTranscriptsFile(cfg.Transcripts)
	if err != nil {
		return transcript.Collection{}, fmt.Errorf("load transcripts: %w", err)
	}
	return c, nil
}

func newRand(s uint64) *rand.Rand {
	if s == 0 {
		s = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}

func newClipboard(cfg *config.Config) *clipboard.OSC52 {
	cb := clipboard.NewOSC52(os.Stderr)
	cb.Passthrough = clipboard.Passthrough(cfg.Clipboard.Passthrough)
	cb.Limit = cfg.Clipboard.Limit
	return cb
}

func runApp(cmd *cobra.Command, withHero, withTerminal bool) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, closeLog, err := openLogger(cfg, nil)
	if err != nil {
		return err
	}
	defer closeLog()

	styles := ui.NewStyles(ui.GetTheme(cfg.Theme))
	s := sched.NewTea()

	var hero *ui.Hero
	if withHero {
		hero, err = ui.NewHero(s, styles, ui.HeroOptions{
			Words:  cfg.Hero.Words,
			Period: cfg.Hero.RotationPeriod,
			Target: cfg.Target(),
			Rand:   newRand(cfg.Hero.Seed),
			Logger: log,
			Title:  cfg.Terminal.Title,
		})
		if err != nil {
			return err
		}
	}

	var term *ui.Terminal
	if withTerminal {
		sessions, err := loadSessions(cfg)
		if err != nil {
			return err
		}
		t := ui.NewTerminal(sessions, newClipboard(cfg), styles, log)
		t.Resize(cfg.Terminal.Width, 24)
		term = &t
	}

	log.Info("starting", "hero", withHero, "terminal", withTerminal, "theme", cfg.Theme)
	return ui.Run(ui.NewApp(s, styles, hero, term, log), tea.WithAltScreen())
}

func runHero(cmd *cobra.Command, args []string) error {
	if !plain {
		return runApp(cmd, true, false)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, closeLog, err := openLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	clock := sched.NewManual()
	settled := 0
	anim := scramble.New(clock, scramble.WithRand(newRand(cfg.Hero.Seed)))
	anim.AddObserver(&plainPrinter{out: os.Stdout, onDone: func(c scramble.Completion) {
		if c.Cancelled {
			return
		}
		settled++
		if rotations > 0 && settled >= rotations {
			cancel()
		}
	}})

	rot, err := rotator.New(clock, anim, cfg.Hero.Words, cfg.Hero.RotationPeriod, cfg.Target(),
		rotator.WithLogger(log),
		rotator.WithOnRotate(func(i int, w string) {
			log.Debug("rotate", "index", i, "word", w)
		}))
	if err != nil {
		return err
	}
	defer rot.Teardown()

	fmt.Fprintf(os.Stdout, "%s", rot.Current())
	rot.StartRotating()

	err = sched.Drive(ctx, clock, cfg.Hero.TickInterval)
	fmt.Fprintln(os.Stdout)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// plainPrinter redraws the current line on every frame.
type plainPrinter struct {
	out    io.Writer
	width  int
	onDone func(scramble.Completion)
}

func (p *plainPrinter) OnFrame(s scramble.State) {
	n := len([]rune(s.Display))
	pad := ""
	if p.width > n {
		pad = strings.Repeat(" ", p.width-n)
	}
	p.width = n
	fmt.Fprintf(p.out, "\r%s%s", s.Display, pad)
}

func (p *plainPrinter) OnComplete(c scramble.Completion) {
	if p.onDone != nil {
		p.onDone(c)
	}
}

func listSessions(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sessions, err := loadSessions(cfg)
	if err != nil {
		return err
	}
	if sessions.Len() == 0 {
		fmt.Println("no sessions")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tTITLE\tCOMMANDS")
	for i, s := range sessions.Sessions() {
		fmt.Fprintf(w, "%d\t%s\t%d\n", i+1, s.Title, len(s.Commands))
	}
	return w.Flush()
}

func exportSession(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, closeLog, err := openLogger(cfg, nil)
	if err != nil {
		return err
	}
	defer closeLog()

	sessions, err := loadSessions(cfg)
	if err != nil {
		return err
	}

	var selected []transcript.Session
	switch {
	case all:
		selected = sessions.Sessions()
	case len(args) == 1:
		s, ok := sessions.Find(args[0])
		if !ok {
			return fmt.Errorf("unknown session: %s (available: %v)", args[0], sessions.Titles())
		}
		selected = []transcript.Session{s}
	default:
		s, ok := sessions.At(0)
		if !ok {
			return errors.New("no sessions to export")
		}
		selected = []transcript.Session{s}
	}
	if len(selected) == 0 {
		return errors.New("no sessions to export")
	}

	if copyOut {
		if format != "text" {
			return fmt.Errorf("--copy only supports text format")
		}
		title := selected[0].Title
		if len(selected) > 1 {
			title = fmt.Sprintf("%d sessions", len(selected))
		}
		if err := transcript.CopyAll(newClipboard(cfg), title, selected...); err != nil {
			return err
		}
		log.Info("copied", "title", title)
		fmt.Fprintf(os.Stderr, "copied %s\n", title)
		return nil
	}

	switch format {
	case "text":
		return (clipboard.Writer{Out: os.Stdout}).Write(transcript.ExportAll(selected...) + "\n")
	case "json":
		for _, s := range selected {
			if err := transcript.ExportJSON(os.Stdout, s); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown format: %s (available: text, json)", format)
	}
}

func traceRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	s := cfg.Hero.Seed
	if s == 0 {
		s = uint64(time.Now().UnixNano())
	}

	if allWords {
		traces, err := report.RunAll(cfg.Target(), cfg.Hero.Words, s)
		if err != nil {
			return err
		}
		fmt.Printf("%d words: %d ticks of %v, seed %d\n\n", len(traces), cfg.Target().TotalIterations(), cfg.Hero.TickInterval, s)
		fmt.Println(report.PlotAll(traces, plotW, plotH))
		return nil
	}

	word := cfg.Hero.Words[0]
	if len(args) == 1 {
		word = args[0]
	}

	tr, err := report.Run(cfg.Target().WithText(word), s)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d ticks of %v, seed %d\n\n", word, cfg.Target().TotalIterations(), cfg.Hero.TickInterval, s)
	fmt.Println(tr.Plot(plotW, plotH))
	if showRows {
		fmt.Println()
		fmt.Print(tr.Table())
	}
	return nil
}
