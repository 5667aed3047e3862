package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/logrusorgru/aurora"
	"go.uber.org/zap"

	"github.com/tonalab/tonal/internal/pkg/config"
	"github.com/tonalab/tonal/internal/pkg/logger"
	"github.com/tonalab/tonal/internal/pkg/song"
	"github.com/tonalab/tonal/notation"
	"github.com/tonalab/tonal/pitch"
)

var (
	configPath = flag.String("config", "tonal.ini", "configuration file")
	interval   = flag.String("interval", "", "interval for the song command, e.g. M3 or -P5")
	watch      = flag.Bool("watch", false, "keep watching the song file, reprint on change")
	sharps     = flag.Bool("sharps", false, "prefer sharps when naming midi numbers")
	nocolor    = flag.Bool("nocolor", false, "disable color")
	debug      = flag.Bool("debug", false, "verbose logging")
)

const usage = `usage: tonal [flags] <command> [args]

commands:
  parse <pitch>...            show what the text means
  transpose <note> <interval> move a note or pitch class by an interval
  distance <from> <to>        interval between two pitches of the same kind
  midi <note|number>          midi number of a note
  freq <note|number>          frequency in Hz
  name <number>...            note names for midi numbers
  sort <pitch>...             order pitches ascending by height
  song <file>                 print a song, transposed with -interval
  smf <file>                  note names of a standard midi file
`

type app struct {
	au  aurora.Aurora
	log *zap.Logger
	cfg config.Config
}

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	log := logger.New(*debug)
	defer log.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("loading config failed", zap.Error(err))
		os.Exit(1)
	}
	if *sharps {
		cfg.Tuning.PreferSharps = true
	}
	notation.SetDefaultCacheSize(cfg.Parser.CacheSize)
	log.Debug("config loaded",
		zap.Float64("reference_hz", cfg.Tuning.ReferenceHz),
		zap.Bool("prefer_sharps", cfg.Tuning.PreferSharps),
		zap.Int("cache_size", cfg.Parser.CacheSize),
	)

	a := app{au: aurora.NewAurora(!*nocolor), log: log, cfg: cfg}

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	switch cmd, rest := args[0], args[1:]; cmd {
	case "parse":
		err = a.parse(rest)
	case "transpose":
		err = a.transpose(rest)
	case "distance":
		err = a.distance(rest)
	case "midi":
		err = a.midi(rest)
	case "freq":
		err = a.freq(rest)
	case "name":
		err = a.name(rest)
	case "sort":
		err = a.sort(rest)
	case "song":
		err = a.song(rest)
	case "smf":
		err = a.smf(rest)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Error("command failed", zap.String("command", args[0]), zap.Error(err))
		os.Exit(1)
	}
}

// colorize mirrors keyboard coloring: C gets its own color, the other
// naturals count as white keys, accidentals as black ones.
func (a app) colorize(name string) aurora.Value {
	if strings.ContainsAny(name, "#b") {
		return a.au.Yellow(name)
	}
	if strings.HasPrefix(name, "C") {
		return a.au.Green(name)
	}
	return a.au.White(name)
}

func (a app) parse(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("parse needs at least one argument")
	}
	for _, text := range args {
		p, err := notation.Any(text)
		if err != nil {
			fmt.Printf("%s: %v\n", text, a.au.Red(err))
			continue
		}
		canonical, err := notation.Format(p)
		if err != nil {
			return err
		}
		line := fmt.Sprintf("%s: %s %s, height %d", text, p.Kind(), a.colorize(canonical), p.Height())
		if m, ok := pitch.Midi(p); ok {
			hz, _ := pitch.Freq(a.cfg.Tuning.ReferenceHz)(p)
			line += fmt.Sprintf(", midi %d, %.2f Hz", m, hz)
		}
		fmt.Println(line)
	}
	return nil
}

func (a app) transpose(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("transpose needs a note and an interval")
	}
	res, err := notation.Transpose(args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Println(a.colorize(res))
	return nil
}

func (a app) distance(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("distance needs two pitches")
	}
	res, err := notation.Distance(args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Println(res)
	return nil
}

func (a app) midi(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("midi needs one note")
	}
	m, err := notation.Midi(args[0])
	if err != nil {
		return err
	}
	fmt.Println(m)
	return nil
}

func (a app) freq(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("freq needs one note")
	}
	hz, err := notation.Freq(args[0], a.cfg.Tuning.ReferenceHz)
	if err != nil {
		return err
	}
	fmt.Printf("%.2f\n", hz)
	return nil
}

func (a app) name(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("name needs at least one midi number")
	}
	chromatic := pitch.ChromaticName(a.cfg.Tuning.PreferSharps)
	for _, arg := range args {
		m, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("not a midi number: %q", arg)
		}
		n := chromatic(m)
		if n == "" {
			return fmt.Errorf("midi number outside of 0-127 range: %d", m)
		}
		fmt.Println(a.colorize(n))
	}
	return nil
}

func (a app) sort(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("sort needs at least one pitch")
	}
	fmt.Println(strings.Join(notation.Sorted(args), " "))
	return nil
}

func (a app) song(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("song needs one file")
	}
	path := args[0]

	if err := a.printSong(path); err != nil {
		return err
	}
	if !*watch {
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		cancel()
	}()

	changes, err := song.Watch(ctx, path)
	if err != nil {
		return err
	}
	a.log.Info("watching song file", zap.String("path", path))
	for range changes {
		if err := a.printSong(path); err != nil {
			a.log.Warn("reloading song failed", zap.Error(err))
		}
	}
	return nil
}

func (a app) printSong(path string) error {
	s, err := song.Load(path)
	if err != nil {
		return err
	}
	if *interval != "" {
		if s, err = s.Transposed(*interval); err != nil {
			return err
		}
	}
	if s.Name != "" {
		fmt.Printf("%s: ", s.Name)
	}
	for i, note := range s.Notes {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Print(a.colorize(note))
	}
	fmt.Println()
	return nil
}

func (a app) smf(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("smf needs one file")
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading midi file failed: %w", err)
	}
	s, err := song.FromSMF(data, a.cfg.Tuning.PreferSharps)
	if err != nil {
		return err
	}
	for i, note := range s.Notes {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Print(a.colorize(note))
	}
	fmt.Println()
	return nil
}
