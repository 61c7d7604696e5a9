package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/plus3/vaultworn/game"
)

func main() {
	cfg := game.DefaultConfig()
	flag.BoolVar(&cfg.Headless, "headless", cfg.Headless, "Run the simulation without a window.")
	flag.IntVar(&cfg.Hz, "hz", cfg.Hz, "Headless update rate in frames per second.")
	flag.IntVar(&cfg.Ticks, "ticks", cfg.Ticks, "Stop a headless run after this many frames (0 runs until interrupted).")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Show the Dear ImGui debug overlay.")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "Window width in pixels.")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "Window height in pixels.")
	flag.Parse()

	log.SetPrefix("vaultworn: ")

	if err := run(cfg); err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}
}

func run(cfg game.Config) error {
	if !cfg.Headless {
		return game.RunWindow(cfg)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Printf("running headless at %d Hz", cfg.Hz)
	return game.RunHeadless(ctx, cfg, os.Stdout)
}
