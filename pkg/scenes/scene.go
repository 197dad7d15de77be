package scenes

import (
	"github.com/gonewx/cinescroll/pkg/game"
)

// Scene is a type alias for game.Scene.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

// LandingSceneName 着陆页场景在 SceneFactory 中的名称
const LandingSceneName = "landing"
