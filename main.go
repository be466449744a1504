package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rubi-browser/icongen/internal/app"
	"github.com/rubi-browser/icongen/internal/render"
)

func main() {
	// Flags
	debug := flag.Bool("debug", false, "enable debug logging to ./icongen-debug.log")
	stdioLog := flag.String("stdio-log", "", "redirect stdout+stderr (including panics) to this file")
	flag.Parse()

	// Best-effort: redirect all stdout/stderr output (including panic stack
	// traces) to a file so crashes are diagnosable in headless CI runs.
	if *stdioLog != "" {
		if err := redirectStdIO(*stdioLog); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	// Local file logger when debug enabled
	var logger app.Logger = app.NoopLogger{}
	if *debug {
		f, err := os.OpenFile("./icongen-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			logger = app.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	// Verify the rendering stack before touching the filesystem.
	if err := app.CheckRenderCapability(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	renderer := render.NewIconRenderer()
	renderer.Logger = logger

	a := app.New(renderer)
	a.Logger = logger

	if err := a.Run(context.Background()); err != nil {
		fmt.Println("icon generation error:", err)
		os.Exit(1)
	}
}
