package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/OpticalFlyer/cleangui/geom"
	"github.com/OpticalFlyer/cleangui/render"
	"github.com/OpticalFlyer/cleangui/ui"
)

const maxChildren = 8

var (
	colText  = color.RGBA{240, 240, 240, 255}
	colPanel = color.RGBA{40, 60, 90, 255}
	colAlt   = color.RGBA{90, 50, 50, 255}
)

// CleanGUI implements ebiten.Game interface.
type CleanGUI struct {
	screen    *render.Screen
	renderer  *render.Renderer
	ui        *ui.Controller
	tracker   *ui.TouchTracker
	debugMode bool
	logger    *slog.Logger

	touches []ebiten.TouchID
	clicks  int
}

func (g *CleanGUI) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debugMode = !g.debugMode
		g.renderer.DebugBounds = g.debugMode
	}
	g.pollPointer()
	return nil
}

func (g *CleanGUI) Draw(screen *ebiten.Image) {
	if page := g.ui.ActivePage(); page != nil {
		g.renderer.Draw(screen, page)
	}

	if g.debugMode {
		size := g.screen.ScreenSize()
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("FPS: %.2f\nScreen: %s\nClicks: %d", ebiten.ActualFPS(), size, g.clicks),
			4, int(size.Y)-52)
	}
}

func (g *CleanGUI) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.screen.SetSize(outsideWidth, outsideHeight) {
		g.ui.UpdateWindowSize()
	}
	return outsideWidth, outsideHeight
}

// buildPage creates a page with a full-screen panel holding a touch group
// with two buttons. The second button switches to target.
func (g *CleanGUI) buildPage(name, target string, bg color.RGBA) (*ui.Root, *ui.TouchGroup, error) {
	root := ui.NewRoot(name, g.screen, 1, ui.WithLogger(g.logger))

	panel := render.NewPanel(ui.Props{
		Name:        name + "-panel",
		Pos:         geom.V(50, 50),
		PosType:     geom.Promillage,
		Size:        geom.V(900, 900),
		SizeType:    geom.Promillage,
		MaxChildren: 1,
	}, 12, colText, bg)
	if err := root.AttachChild(panel); err != nil {
		return nil, nil, err
	}

	group := ui.NewTouchGroup(ui.Props{Name: name + "-buttons", MaxChildren: maxChildren}, 0, colText, bg)
	if err := panel.AttachChild(group); err != nil {
		return nil, nil, err
	}

	count := render.NewButton(ui.Props{
		Name:     name + "-count",
		Pos:      geom.V(100, 200),
		PosType:  geom.Promillage,
		Size:     geom.V(800, 250),
		SizeType: geom.Promillage,
	}, "Count", func() {
		g.clicks++
		g.logger.Info("button clicked", "page", name, "clicks", g.clicks)
	})
	next := render.NewButton(ui.Props{
		Name:     name + "-next",
		Pos:      geom.V(100, 550),
		PosType:  geom.Promillage,
		Size:     geom.V(800, 250),
		SizeType: geom.Promillage,
	}, "Go to "+target, func() {
		if err := g.ui.ShowPage(target); err != nil {
			g.logger.Error("switching page", "error", err)
		}
	})
	for _, b := range []*render.Button{count, next} {
		if err := group.AddTouchWidget(b); err != nil {
			return nil, nil, err
		}
	}
	return root, group, nil
}

func main() {
	flag.Parse()

	logger, err := InitLogger(*logLevel)
	if err != nil {
		log.Fatal(err)
	}

	app := &CleanGUI{
		screen:   render.NewScreen(*windowWidth, *windowHeight),
		renderer: render.NewRenderer(),
		ui:       ui.NewController(logger),
		logger:   logger,
	}
	app.tracker = ui.NewTouchTracker(app.ui)

	for _, p := range []struct {
		name, target string
		bg           color.RGBA
	}{
		{"home", "settings", colPanel},
		{"settings", "home", colAlt},
	} {
		root, group, err := app.buildPage(p.name, p.target, p.bg)
		if err != nil {
			log.Fatal(err)
		}
		app.ui.AddPage(root, group)
	}
	if err := app.ui.ShowPage("home"); err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(*windowWidth, *windowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle(*windowTitle)
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
