package main

import (
	"fmt"
	"image/color"
	"log"

	"alsflags/internal/config"
	"alsflags/internal/inspect"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	ebitext "github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	marginX     = 12
	headerLines = 3
	footerRows  = 10
)

var (
	colorBackground = color.RGBA{24, 24, 32, 255}
	colorHeader     = color.RGBA{230, 200, 120, 255}
	colorSelected   = color.RGBA{0, 100, 200, 128}
	colorFlagOn     = color.RGBA{60, 160, 60, 200}
	colorTextOn     = color.RGBA{255, 255, 255, 255}
	colorTextOff    = color.RGBA{140, 140, 150, 255}
)

var presetKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

type inspectorGame struct {
	cfg       *config.Config
	inspector *inspect.Inspector
	presets   []config.Preset
	face      font.Face
}

func main() {
	// Load configuration
	cfg := config.MustLoadConfig("config.yaml")

	var presets []config.Preset
	if cfg.Inspector.PresetsFile != "" {
		if _, err := config.LoadPresetConfig(cfg.Inspector.PresetsFile); err != nil {
			log.Printf("Warning: Failed to load presets: %v", err)
		}
		presets = config.GetPresets()
	}

	character, err := cfg.InitialCharacter()
	if err != nil {
		log.Fatal(err)
	}

	g := &inspectorGame{
		cfg:       cfg,
		inspector: inspect.New(character, cfg.GetHistorySize()),
		presets:   presets,
		face:      basicfont.Face7x13,
	}

	ebiten.SetWindowSize(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	ebiten.SetWindowTitle(cfg.GetWindowTitle())
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

func (g *inspectorGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyUp) || inpututil.IsKeyJustPressed(ebiten.KeyW) {
		g.inspector.MoveCursor(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) || inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.inspector.MoveCursor(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) || inpututil.IsKeyJustPressed(ebiten.KeyD) {
		if ch, moved := g.inspector.Step(1); moved {
			log.Printf("%s", ch)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA) {
		if ch, moved := g.inspector.Step(-1); moved {
			log.Printf("%s", ch)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		for _, ch := range g.inspector.Reset() {
			log.Printf("reset %s", ch)
		}
	}

	for i, key := range presetKeys {
		if i >= len(g.presets) || !inpututil.IsKeyJustPressed(key) {
			continue
		}
		g.applyPreset(g.presets[i])
	}
	return nil
}

func (g *inspectorGame) applyPreset(p config.Preset) {
	changes, err := p.Apply(g.inspector.Character())
	g.inspector.Record(changes...)
	if err != nil {
		log.Printf("Warning: %v", err)
		return
	}
	for _, ch := range changes {
		log.Printf("preset %s: %s", p.Key, ch)
	}
}

func (g *inspectorGame) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	ebitenutil.DebugPrintAt(screen, "Up/Down (W/S) select domain, Left/Right (A/D) change value", marginX, 4)
	ebitenutil.DebugPrintAt(screen, "R reset, 1-9 presets, Esc quit", marginX, 20)

	rowH := g.cfg.GetRowHeight()
	colW := g.cfg.GetColumnWidth()
	top := headerLines * rowH
	bottom := g.cfg.GetScreenHeight() - footerRows*rowH

	x, y := marginX, top
	for _, s := range g.inspector.Sections() {
		height := (len(s.Flags) + 2) * rowH
		if y+height > bottom && y > top {
			x += colW
			y = top
		}
		g.drawSection(screen, s, x, y, colW, rowH)
		y += height
	}

	g.drawHistory(screen, bottom, rowH)
}

func (g *inspectorGame) drawSection(screen *ebiten.Image, s inspect.Section, x, y, w, rowH int) {
	if s.Selected {
		vector.DrawFilledRect(screen, float32(x-4), float32(y), float32(w-8), float32(rowH), colorSelected, false)
	}
	g.drawText(screen, s.Header(), x, y, colorHeader)

	for i, f := range s.Flags {
		rowY := y + (i+1)*rowH
		c := colorTextOff
		if f.Set {
			vector.DrawFilledRect(screen, float32(x+4), float32(rowY+3), float32(rowH-6), float32(rowH-6), colorFlagOn, false)
			c = colorTextOn
		}
		g.drawText(screen, fmt.Sprintf("%s: %v", f.Name, f.Set), x+rowH+2, rowY, c)
	}
}

func (g *inspectorGame) drawHistory(screen *ebiten.Image, y, rowH int) {
	g.drawText(screen, "Recent changes:", marginX, y, colorHeader)
	for i, ch := range g.inspector.History() {
		g.drawText(screen, ch.String(), marginX, y+(i+1)*rowH, colorTextOn)
	}
}

func (g *inspectorGame) drawText(screen *ebiten.Image, s string, x, y int, c color.Color) {
	ebitext.Draw(screen, s, g.face, x, y+g.face.Metrics().Ascent.Round(), c)
}

func (g *inspectorGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.GetScreenWidth(), g.cfg.GetScreenHeight()
}
