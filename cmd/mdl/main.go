// Command mdl renders a scene script to an image or an animated GIF.
//
// Usage:
//
//	mdl [flags] script.json
//
// A still scene is rendered once and written by its save commands. A scene
// that declares frames is rendered once per frame; the frames are written
// to -dir and assembled into basename.gif.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gogpu/mdl"
	"github.com/gogpu/mdl/anim"
	"github.com/gogpu/mdl/internal/viewer"
	"github.com/gogpu/mdl/render"
)

func main() {
	var (
		width   = flag.Int("width", 500, "canvas width")
		height  = flag.Int("height", 500, "canvas height")
		dir     = flag.String("dir", mdl.DefaultOutputDir, "directory for animation frames")
		workers = flag.Int("workers", 1, "frames rendered concurrently")
		delay   = flag.Int("delay", anim.DefaultDelay, "animation frame delay in 100ths of a second")
		output  = flag.String("gif", "", "animation output file (default basename.gif)")
		display = flag.Bool("display", false, "open a window with the shown canvases")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] script.json\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	mdl.SetLogger(logger)

	script, err := mdl.LoadScriptFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "parsing failed:", err)
		os.Exit(1)
	}

	cfg := render.DefaultConfig()
	cfg.Width, cfg.Height = *width, *height
	v := viewer.New()
	if *display {
		cfg.Show = v.Show
	}

	asmOpts := []anim.Option{anim.WithDelay(*delay), anim.WithLogger(logger)}
	if *output != "" {
		asmOpts = append(asmOpts, anim.WithOutput(*output))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := mdl.Run(ctx, script,
		mdl.WithBackendName("software", cfg),
		mdl.WithAssembler(anim.New(asmOpts...)),
		mdl.WithOutputDir(*dir),
		mdl.WithWorkers(*workers),
	)
	if err != nil {
		stop()
		log.Fatalf("mdl: %v", err)
	}
	if res.Animation != "" {
		log.Printf("%d frames assembled into %s", len(res.Files), res.Animation)
	}

	if v.Len() > 0 {
		if err := v.Run("mdl - " + flag.Arg(0)); err != nil {
			log.Fatalf("mdl: viewer: %v", err)
		}
	}
}
