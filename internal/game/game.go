package game

import (
	"fmt"
	"log"
	"time"

	"chosenoffset.com/raybounce/internal/core/geometry"
	"chosenoffset.com/raybounce/internal/render"
	"chosenoffset.com/raybounce/internal/render/lighting"
	"chosenoffset.com/raybounce/internal/simulation"
)

// tick is the fixed update interval (60 TPS)
const tick = time.Second / 60

// Game wires input to the simulation driver and its result to the renderer.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	Config       *simulation.Config
	Renderer     render.Renderer
	InputMgr     render.InputManager
	Palette      lighting.Palette

	Scene  *simulation.Scene
	Driver *simulation.Driver
	Ramp   *simulation.Ramp
	Result *simulation.Result

	Pointer  Pointer
	Messages []Message
	ShowHUD  bool
}

// New creates a game from config, seeding the scene from the configured boundaries
// or, when there are none, with random ones.
func New(cfg *simulation.Config, r render.Renderer, input render.InputManager, seed int64) (*Game, error) {
	palette := lighting.DefaultPalette()
	if err := palette.Apply(cfg.Colors); err != nil {
		return nil, fmt.Errorf("failed to apply colors: %w", err)
	}

	g := &Game{
		ScreenWidth:  cfg.Window.Width,
		ScreenHeight: cfg.Window.Height,
		Config:       cfg,
		Renderer:     r,
		InputMgr:     input,
		Palette:      palette,
		Scene:        simulation.NewScene(cfg.Scene.BoundaryThickness, seed),
		Driver: simulation.NewDriver(cfg.Density.Default,
			float64(cfg.Window.Width), float64(cfg.Window.Height), cfg.Propagation.MaxBounces),
		Ramp:    simulation.NewRamp(cfg.Density),
		ShowHUD: true,
	}

	for i, b := range cfg.Scene.Boundaries {
		start := geometry.Point{X: b.X1, Y: b.Y1}
		end := geometry.Point{X: b.X2, Y: b.Y2}
		if err := g.Scene.Add(start, end); err != nil {
			return nil, fmt.Errorf("configured boundary %d: %w", i, err)
		}
	}
	if g.Scene.Len() == 0 {
		if err := g.Regenerate(); err != nil {
			return nil, err
		}
	} else if err := g.Driver.ReplaceBoundaries(g.Scene.Boundaries()); err != nil {
		return nil, err
	}

	return g, nil
}

// Update handles input and recomputes the scene when anything changed.
func (g *Game) Update() error {
	dt := tick.Seconds()
	g.updateMessages(dt)

	if g.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		return render.ErrQuit
	}

	// Pointer moves the light source
	cx, cy := g.InputMgr.GetCursorPosition()
	g.Pointer.Pos = geometry.Point{X: float64(cx), Y: float64(cy)}
	g.Driver.SetOrigin(g.Pointer.Pos)

	// Holding the left button packs rays tighter, releasing spreads them back out
	pressed := g.InputMgr.IsMouseButtonPressed(render.MouseButtonLeft)
	if pressed && !g.Pointer.Pressed {
		g.Ramp.StartDecrease()
	} else if !pressed && g.Pointer.Pressed {
		g.Ramp.StartIncrease()
	}
	g.Pointer.Pressed = pressed

	if g.Ramp.Advance(tick) {
		if err := g.Driver.SetDensity(g.Ramp.Density()); err != nil {
			log.Printf("Density ramp produced an invalid step: %v", err)
			g.Ramp.Stop()
		}
	}

	if g.InputMgr.IsKeyJustPressed(render.KeySpace) {
		if err := g.Regenerate(); err != nil {
			log.Printf("Failed to regenerate boundaries: %v", err)
		}
	}

	if g.InputMgr.IsKeyJustPressed(render.KeyH) {
		g.ShowHUD = !g.ShowHUD
	}

	res, err := g.Driver.Flush()
	if err != nil {
		log.Printf("Recompute failed: %v", err)
		return nil
	}
	g.Result = res

	return nil
}

// Layout tracks the window size; the viewport follows it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 &&
		(outsideWidth != g.ScreenWidth || outsideHeight != g.ScreenHeight) {
		if err := g.Driver.SetViewport(float64(outsideWidth), float64(outsideHeight)); err != nil {
			log.Printf("Ignoring resize: %v", err)
			return g.ScreenWidth, g.ScreenHeight
		}
		g.ScreenWidth = outsideWidth
		g.ScreenHeight = outsideHeight
	}
	return g.ScreenWidth, g.ScreenHeight
}

// Regenerate replaces the boundaries with random ones inside the current viewport.
func (g *Game) Regenerate() error {
	n := g.Config.Scene.RandomBoundaries
	if err := g.Scene.Regenerate(n, float64(g.ScreenWidth), float64(g.ScreenHeight)); err != nil {
		return err
	}
	if err := g.Driver.ReplaceBoundaries(g.Scene.Boundaries()); err != nil {
		return err
	}
	g.ShowMessage(fmt.Sprintf("Generated %d boundaries", n))
	return nil
}

func (g *Game) updateMessages(dt float64) {
	var active []Message
	for _, msg := range g.Messages {
		msg.TimeLeft -= dt
		if msg.TimeLeft > 0 {
			active = append(active, msg)
		}
	}
	g.Messages = active
}

// ShowMessage adds a new message to be displayed on screen.
func (g *Game) ShowMessage(text string) {
	g.Messages = append(g.Messages, Message{
		Text:     text,
		TimeLeft: 3.0,
	})

	log.Printf("Message: %s", text)
}
