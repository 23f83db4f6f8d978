package main

import (
	"os"

	"github.com/pkg/profile"

	"rocket/internal/game"
)

func main() {
	// ROCKET_PROFILE=1 writes a CPU profile next to the binary on exit.
	if os.Getenv("ROCKET_PROFILE") != "" {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}
	game.RunDesktop()
}
