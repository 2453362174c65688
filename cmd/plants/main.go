//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"evo-plants/internal/app"
	"evo-plants/internal/board"
	"evo-plants/internal/lightmap"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	size := board.NewSize(cfg.Width, cfg.Height)
	multipliers := board.NewMultipliers(uint32(cfg.Light))

	build := func(seed int64) board.Board {
		var light []float32
		switch cfg.Map {
		case "noise":
			light = lightmap.Noise(size, seed)
		case "gradient":
			light = lightmap.Gradient(size)
		default:
			log.Fatalf("unknown light map %q", cfg.Map)
		}
		fields, err := board.NewFields(size, light)
		if err != nil {
			log.Fatal(err)
		}
		return board.New(multipliers, fields)
	}

	b := build(cfg.Seed)
	game := app.New(b, build, cfg.Scale, cfg.Seed)
	w, h := size.Dimensions()

	ebiten.SetWindowTitle("evo-plants — " + cfg.Map)
	ebiten.SetWindowSize(w*cfg.Scale, h*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
