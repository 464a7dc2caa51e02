package main

import (
	"flag"
	"log"
	"time"

	"chosenoffset.com/raybounce/internal/game"
	ebitenrender "chosenoffset.com/raybounce/internal/render/ebiten"
	"chosenoffset.com/raybounce/internal/simulation"
)

func main() {
	flag.Parse()

	cfg, err := simulation.LoadConfig(*configFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *densityFlag > 0 {
		cfg.Density.Default = *densityFlag
		if err := cfg.Validate(); err != nil {
			log.Fatalf("Invalid -density: %v", err)
		}
	}

	seed := cfg.Scene.Seed
	if *seedFlag != 0 {
		seed = *seedFlag
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("Scene seed: %d", seed)

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	g, err := game.New(cfg, renderer, inputMgr, seed)
	if err != nil {
		log.Fatalf("Failed to set up scene: %v", err)
	}

	// Set up the window
	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(cfg.Window.Resizable)

	log.Println("Starting simulation...")
	if err := engine.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
