// Package main provides a scene preview tool for tuning the landing hero.
//
// Unlike the main program, the preview can pin or auto-play the scroll
// position, which makes it easy to inspect a single cue or to record the
// whole timeline.
//
// Usage:
//
//	go run ./cmd/preview_scene [flags]
//
// Flags:
//
//	--config <path>     Scene config file (default: data/scene.yaml)
//	--progress <p>      Start at this raw scroll progress (default: 0)
//	--autoplay <sec>    Scroll through the whole hero in this many seconds (0 = off)
//	--no-network        Disable the background particle network
//	--verbose           Enable verbose logging
//
// Controls:
//
//	Wheel / Arrow keys  - Scroll (stops autoplay)
//	P                   - Pause / resume autoplay
//	R                   - Restart from the top
//	Q                   - Quit
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/cinescroll/pkg/config"
	"github.com/gonewx/cinescroll/pkg/scenes"
	"github.com/gonewx/cinescroll/pkg/utils"
)

var (
	configFlag    = flag.String("config", "data/scene.yaml", "Scene config file")
	progressFlag  = flag.Float64("progress", 0, "Initial raw scroll progress")
	autoplayFlag  = flag.Float64("autoplay", 0, "Seconds to scroll through the hero (0 = off)")
	noNetworkFlag = flag.Bool("no-network", false, "Disable the background particle network")
	verboseFlag   = flag.Bool("verbose", false, "Enable verbose logging")
)

var errQuit = errors.New("quit")

// PreviewGame implements ebiten.Game for the scene preview
type PreviewGame struct {
	scene    *scenes.LandingScene
	autoplay bool
	speed    float64 // 像素/帧

	width, height int
}

func (g *PreviewGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return errQuit
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.scene.ApplyScroll(utils.ScrollIntent{ToTop: true})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) && g.speed > 0 {
		g.autoplay = !g.autoplay
	}

	if g.autoplay {
		g.scene.ApplyScroll(utils.ScrollIntent{Delta: g.speed})
		g.scene.Step(config.FrameDelta)
		return nil
	}

	g.scene.Update(config.FrameDelta)
	return nil
}

func (g *PreviewGame) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *PreviewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.scene.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func main() {
	flag.Parse()
	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.LoadSceneConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ 配置加载失败: %v\n", err)
		os.Exit(1)
	}

	scene, err := scenes.NewLandingScene(cfg, scenes.LandingOptions{
		Width:          config.WindowWidth,
		Height:         config.WindowHeight,
		NetworkEnabled: !*noNetworkFlag,
		Debug:          true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ 场景创建失败: %v\n", err)
		os.Exit(1)
	}
	defer scene.Close()

	viewport := scene.Viewport()
	heroHeight := cfg.Scroll.HeroViewports * viewport.Height()
	viewport.ScrollTo(utils.Clamp01(*progressFlag) * heroHeight)

	g := &PreviewGame{scene: scene}
	if *autoplayFlag > 0 {
		g.autoplay = true
		g.speed = heroHeight / (*autoplayFlag * config.TicksPerSecond)
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("cinescroll - scene preview")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, errQuit) {
		log.Fatal(err)
	}
}
