package ui

import (
	"context"
	"dragchess/src"
	"dragchess/src/logic/coords"
	"dragchess/src/logx"
	clic "dragchess/ui/cli"
	"dragchess/ui/gui"
	"dragchess/ui/gui/gbase/gconf"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

const logfile string = "dragchess.log"

func GetLogger(file *os.File, c *cli.Command, cfg *gconf.Config) *logx.Logx {
	level := cfg.LogLevel
	if c.IsSet("level") {
		level = c.String("level")
	}
	l := logx.NewLogx(
		logx.GetLoggerLevelByString(level),
		c.Bool("debug") || cfg.Debug,
		c.Bool("console"),
	)
	l.InitLogger(file)
	return l
}

// prepare loads the config, opens the log file and builds a session holding
// the starting position. The returned func closes the log.
func prepare(c *cli.Command) (*src.Session, *gconf.Config, *logx.Logx, func(), error) {
	cfg, err := gconf.NewGUIConfig(c.String("config"))
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("error read config: %w", err)
	}
	if c.Bool("debug") {
		cfg.Debug = true
	}

	file, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("error open logfile: %w", err)
	}
	l := GetLogger(file, c, cfg)
	closer := func() {
		_ = l.Sync()
		file.Close()
	}

	l.Infof("start dragchess, config %s, log level %s", cfg.Path(), l.Level())

	s := src.NewSession(l.Named("session"), coords.NewLayout(float64(cfg.SquareSize)))
	fen := cfg.StartFEN
	if c.IsSet("fen") {
		fen = c.String("fen")
	}
	if err := s.CreateFromFEN(fen); err != nil {
		closer()
		return nil, nil, nil, nil, err
	}
	return s, cfg, l, closer, nil
}

func RunGUI(c *cli.Command) error {
	s, cfg, l, closer, err := prepare(c)
	if err != nil {
		fmt.Printf("%v\n", err)
		return nil
	}
	defer closer()

	g, err := gui.NewGUI(s, cfg, l.Named("gui"))
	if err != nil {
		return err
	}
	return g.Run()
}

func RunDragChess() error {
	ff := &cli.StringFlag{
		Name:  "fen",
		Usage: "piece placement in FEN format",
	}
	cfgf := &cli.StringFlag{
		Name:  "config",
		Value: gconf.DefaultFile,
		Usage: "path to JSON config",
	}
	df := &cli.BoolFlag{
		Name:    "debug",
		Aliases: []string{"d"},
		Usage:   "enable debug mod",
	}
	lf := &cli.StringFlag{
		Name:    "level",
		Aliases: []string{"l"},
		Usage:   "logger level (debug, info, warn, error)",
	}
	cf := &cli.BoolFlag{
		Name:    "console",
		Aliases: []string{"c"},
		Usage:   "console logger encoding",
	}
	// root flags are inherited by every subcommand
	allFlags := []cli.Flag{ff, cfgf, df, lf, cf}

	return (&cli.Command{
		Name:  "dragchess",
		Usage: "chessboard with drag and drop pieces",
		Flags: allFlags,
		Commands: []*cli.Command{
			{
				Name:  "cli",
				Usage: "terminal board, moves as `a2 a4`",
				Action: func(ctx context.Context, c *cli.Command) error {
					s, _, _, closer, err := prepare(c)
					if err != nil {
						fmt.Printf("%v\n", err)
						return nil
					}
					defer closer()

					clic.EnableANSI()
					cl := clic.NewCLI(s)
					if err := cl.RunLineMode(); err != nil {
						fmt.Printf("error dragchess: %v\n", err)
					}
					return nil
				},
			},
			{
				Name:  "dump",
				Usage: "print piece locations of the position and exit",
				Action: func(ctx context.Context, c *cli.Command) error {
					s, _, _, closer, err := prepare(c)
					if err != nil {
						fmt.Printf("%v\n", err)
						return nil
					}
					defer closer()
					fmt.Print(s.Dump())
					return nil
				},
			},
			{
				Name:  "gui",
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := RunGUI(c); err != nil {
						fmt.Printf("error GUI: %v\n", err)
					}
					return nil
				},
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := RunGUI(c); err != nil {
				fmt.Printf("error GUI: %v\n", err)
			}
			return nil
		},
	}).Run(context.Background(), os.Args)
}
