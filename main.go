package main

import (
	"io"
	"os"

	"lightsout/controller"
	"lightsout/engine"
	"lightsout/tui"
	"lightsout/ui"

	"gioui.org/app"
	"gioui.org/op"
	"gioui.org/unit"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

var log = logrus.New()

func main() {
	cliApp := cli.NewApp()
	cliApp.Name = "lightsout"
	cliApp.Usage = "play Lights Out: turn every light off"
	cliApp.Flags = []cli.Flag{
		cli.IntFlag{Name: "rows", Value: engine.DefaultRows, Usage: "grid height"},
		cli.IntFlag{Name: "cols", Value: engine.DefaultCols, Usage: "grid width"},
		cli.Float64Flag{Name: "chance", Value: engine.DefaultChanceLightStartsOn, Usage: "chance each light starts on, in [0, 1]"},
		cli.Uint64Flag{Name: "seed", Usage: "seed for the initial board (0 picks one at random)"},
		cli.BoolFlag{Name: "terminal, t", Usage: "play in the terminal instead of a window"},
		cli.Float64Flag{Name: "cell-size", Value: float64(ui.DefaultCellSize), Usage: "cell size in dp (window only)"},
		cli.StringFlag{Name: "log-level", Value: "info", Usage: "panic, fatal, error, warn, info, debug or trace"},
		cli.StringFlag{Name: "log-file", Usage: "write logs to this file instead of stderr"},
	}
	cliApp.Action = run

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	if err := setupLogging(c.String("log-level"), c.String("log-file"), c.Bool("terminal")); err != nil {
		return err
	}

	cfg := engine.Config{
		Rows:                c.Int("rows"),
		Cols:                c.Int("cols"),
		ChanceLightStartsOn: c.Float64("chance"),
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"rows":   cfg.Rows,
		"cols":   cfg.Cols,
		"chance": cfg.ChanceLightStartsOn,
		"seed":   c.Uint64("seed"),
	}).Info("new game")

	e := engine.New(cfg, engine.NewSource(c.Uint64("seed")), log)
	ctrl := controller.New(e, log)

	if c.Bool("terminal") {
		return tui.Run(ctrl)
	}

	runWindow(ctrl, cfg, unit.Dp(c.Float64("cell-size")))
	return nil
}

func setupLogging(level, file string, terminal bool) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	log.SetLevel(lvl)

	switch {
	case file != "":
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		log.SetOutput(f)
	case terminal:
		// stderr shares the screen with the board
		log.SetOutput(io.Discard)
	}

	return nil
}

func runWindow(ctrl *controller.Controller, cfg engine.Config, cellSize unit.Dp) {
	if cellSize <= 0 {
		cellSize = ui.DefaultCellSize
	}
	board := ui.NewBoard(ctrl, cellSize)

	go func() {
		window := new(app.Window)

		width, height := ui.WindowSize(cfg, cellSize)
		window.Option(
			app.Title("Lights Out"),
			app.Size(width, height),
		)

		board.Watch(window.Invalidate)

		if err := draw(window, board); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func draw(window *app.Window, board *ui.Board) error {
	var ops op.Ops

	for {
		switch e := window.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			board.Layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}
