package main

import (
	"flag"
	"log"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"spinglobe/internal/capture"
	"spinglobe/internal/globe"
	"spinglobe/internal/tui"
)

func main() {
	cfg := globe.DefaultConfig()
	flag.StringVar(&cfg.MapPath, "map", cfg.MapPath, "ASCII world map (created if missing)")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "raster width in pixels")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "raster height in pixels")
	flag.IntVar(&cfg.FPS, "fps", cfg.FPS, "frames per second")
	flag.Float64Var(&cfg.Step, "step", cfg.Step, "rotation per frame in radians")
	flag.Float64Var(&cfg.FontSize, "font-size", cfg.FontSize, "glyph size in pixels")
	var (
		mode    = flag.String("mode", "halfblock", "terminal rendering: halfblock or braille")
		scaler  = flag.String("scale", "nearest", "raster scaling: nearest, approx, bilinear or catmullrom")
		out     = flag.String("out", "", "write frames to a .gif or .png instead of running the viewer")
		frames  = flag.Int("frames", 126, "frames to record with -out")
		logPath = flag.String("log", "", "append logs to this file")
		debug   = flag.Bool("debug", false, "log at debug level")
	)
	flag.Parse()

	if *logPath != "" {
		f, err := tea.LogToFile(*logPath, "spinglobe")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		level := slog.LevelInfo
		if *debug {
			level = slog.LevelDebug
		}
		globe.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})))
	}

	g, err := globe.New(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if *out != "" {
		if err := capture.Record(*out, g, *frames, cfg.FPS); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %d frames to %s (%s)", *frames, *out, g.State())
		return
	}

	md, err := tui.ParseMode(*mode)
	if err != nil {
		log.Fatal(err)
	}
	sc, err := tui.ParseScaler(*scaler)
	if err != nil {
		log.Fatal(err)
	}
	m := tui.New(g, tui.Options{Mode: md, Scaler: sc})
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}
}
