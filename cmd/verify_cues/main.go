// Package main provides a cue timeline verification tool.
//
// It loads the scene config, validates it, and prints the state of every cue
// sampled over the scroll progress range, so timing changes in data/scene.yaml
// can be checked without opening a window.
//
// Usage:
//
//	go run ./cmd/verify_cues [flags]
//
// Flags:
//
//	--config <path>   Scene config file (default: data/scene.yaml)
//	--step <p>        Progress sampling step (default: 0.05)
//	--cue <text>      Only print the cue with this text
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/gonewx/cinescroll/pkg/config"
	"github.com/gonewx/cinescroll/pkg/systems"
)

var (
	configFlag = flag.String("config", "data/scene.yaml", "Scene config file")
	stepFlag   = flag.Float64("step", 0.05, "Progress sampling step")
	cueFlag    = flag.String("cue", "", "Only print the cue with this text")
)

func main() {
	flag.Parse()

	cfg, err := config.LoadSceneConfig(*configFlag)
	if err != nil {
		fmt.Printf("❌ 配置加载失败: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ 配置有效: %s\n", *configFlag)
	fmt.Printf("✅ cue 数量: %d\n\n", len(cfg.Cues))

	if *stepFlag <= 0 || *stepFlag > 1 {
		fmt.Printf("❌ --step 必须在 (0, 1] 范围内\n")
		os.Exit(1)
	}

	printed := 0
	for _, cue := range cfg.Cues {
		if *cueFlag != "" && cue.Text != *cueFlag {
			continue
		}
		printCue(cue, *stepFlag)
		printed++
	}

	if printed == 0 {
		fmt.Printf("❌ 没有匹配的 cue: %q\n", *cueFlag)
		os.Exit(1)
	}
}

func printCue(cue config.Cue, step float64) {
	flags := ""
	if cue.IsStatic {
		flags += " static"
	}
	if cue.PersistEnd {
		flags += " persist"
	}
	fmt.Printf("== %s [%.2f, %.2f]%s\n", cue.Text, cue.ScrollStart, cue.ScrollEnd, flags)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "progress\tlocal\teased\tx\ty\tz\trotX\topacity\t")

	// 整数计数避免浮点累加误差
	n := int(1/step + 0.5)
	for i := 0; i <= n; i++ {
		p := float64(i) / float64(n)
		s := systems.EvaluateCue(cue, p)
		fmt.Fprintf(w, "%.3f\t%.3f\t%.3f\t%.2f\t%.2f\t%.2f\t%.3f\t%.3f\t\n",
			p, s.LocalProgress, s.EasedProgress,
			s.Position.X, s.Position.Y, s.Position.Z, s.RotationX, s.Opacity)
	}
	w.Flush()
	fmt.Println()
}
