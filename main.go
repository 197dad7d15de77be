// Package main is the desktop entry point of cinescroll, a scroll-driven
// landing page hero rendered with Ebitengine.
//
// Usage:
//
//	go run . [flags]
//
// Flags:
//
//	--verbose          Enable verbose logging
//	--debug            Show progress / camera overlay
//	--config <path>    Load scene config from file instead of the embedded data/scene.yaml
//	--seed <n>         Seed for the background particle network (0 = time based)
//	--no-network       Disable the background particle network for this run
//
// Controls:
//
//	Wheel / Arrow keys / PageUp / PageDown / Space / Home / End - Scroll
//	F11 - Toggle fullscreen
//	N - Toggle the background particle network (saved)
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/cinescroll/pkg/app"
	"github.com/gonewx/cinescroll/pkg/config"
	"github.com/gonewx/cinescroll/pkg/embedded"
)

var (
	verboseFlag   = flag.Bool("verbose", false, "Enable verbose logging")
	debugFlag     = flag.Bool("debug", false, "Show debug overlay")
	configFlag    = flag.String("config", "", "Scene config file (default: embedded data/scene.yaml)")
	seedFlag      = flag.Int64("seed", 0, "Particle network random seed (0 = time based)")
	noNetworkFlag = flag.Bool("no-network", false, "Disable the background particle network")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verboseFlag,
		Debug:      *debugFlag,
		ConfigPath: *configFlag,
		Seed:       *seedFlag,
		NoNetwork:  *noNetworkFlag,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}
	defer gameApp.Close()

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Building Digital Realities")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TicksPerSecond)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
