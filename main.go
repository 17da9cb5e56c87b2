package main

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"
	"github.com/spf13/cobra"

	"github.com/chuwy79936/ghost-pet/audio"
	"github.com/chuwy79936/ghost-pet/config"
	"github.com/chuwy79936/ghost-pet/ghost"
	"github.com/chuwy79936/ghost-pet/internal/display"
	"github.com/chuwy79936/ghost-pet/menu"
	"github.com/chuwy79936/ghost-pet/render"
	"github.com/chuwy79936/ghost-pet/settings"
)

const version = "1.0.0"

type mode int

const (
	modeOverlay mode = iota
	modeMenu
	modeSettings
)

// windows wires scare raise/lower to the real window. While raised the
// window also goes click-through so the pop-up cannot steal a click.
type windows struct{}

func (windows) RaiseToFront() {
	ebiten.SetWindowFloating(true)
	ebiten.SetWindowMousePassthrough(true)
}

func (windows) LowerToBack() {
	ebiten.SetWindowMousePassthrough(false)
	ebiten.SetWindowFloating(false)
}

type app struct {
	cfg     *config.Config
	cfgPath string
	engine  *ghost.Engine
	player  *audio.Player

	mode    mode
	ctxMenu *menu.Menu
	form    *settings.Form

	last time.Time
}

func (a *app) scale() float64 {
	return a.cfg.GhostScale
}

func (a *app) Update() error {
	now := time.Now()
	dt := now.Sub(a.last)
	a.last = now
	if dt > 250*time.Millisecond {
		dt = 250 * time.Millisecond
	}

	a.engine.Advance(dt)

	switch a.mode {
	case modeOverlay:
		a.followGhost()
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
			mx, my := ebiten.CursorPosition()
			w, h := a.windowSize()
			a.ctxMenu = menu.Open(mx, my, w, h)
			a.mode = modeMenu
		}

	case modeMenu:
		switch a.ctxMenu.Update() {
		case menu.ActionSettings:
			a.openSettings()
		case menu.ActionScare:
			a.engine.ScareNow()
			a.closeMenu()
		case menu.ActionQuit:
			return ebiten.Termination
		case menu.ActionDismiss:
			a.closeMenu()
		}

	case modeSettings:
		switch a.form.Update() {
		case settings.EventApplied:
			a.saveConfig()
			a.engine.ApplyConfig()
		case settings.EventClosed:
			a.closeSettings()
		}
	}

	return nil
}

func (a *app) Draw(screen *ebiten.Image) {
	if a.mode == modeSettings {
		a.form.Draw(screen)
		return
	}

	screen.Fill(color.RGBA{})
	render.Draw(screen, a.engine.State(), a.scale())
	if a.mode == modeMenu {
		a.ctxMenu.Draw(screen)
	}
}

func (a *app) Layout(outsideWidth, outsideHeight int) (int, int) {
	if a.mode == modeSettings {
		return settings.FormWidth, settings.FormHeight
	}
	return a.windowSize()
}

func (a *app) windowSize() (int, int) {
	s := a.scale()
	return int(float64(ghost.BaseWidth) * s), int(float64(ghost.BaseHeight) * s)
}

// followGhost moves the OS window to wherever the engine wandered.
func (a *app) followGhost() {
	x, y := a.engine.WindowPosition(a.scale())
	ebiten.SetWindowPosition(x, y)
}

func (a *app) closeMenu() {
	a.ctxMenu = nil
	a.mode = modeOverlay
}

func (a *app) openSettings() {
	a.ctxMenu = nil
	a.form = settings.NewForm(a.cfg)
	a.mode = modeSettings
	ebiten.SetWindowSize(settings.FormWidth, settings.FormHeight)

	// Park the form near the middle of the monitor so it is reachable.
	b := a.engine.Bounds()
	ebiten.SetWindowPosition((b.Dx()-settings.FormWidth)/2, (b.Dy()-settings.FormHeight)/2)
}

func (a *app) closeSettings() {
	a.form = nil
	a.mode = modeOverlay
	w, h := a.windowSize()
	ebiten.SetWindowSize(w, h)
	a.followGhost()
}

// saveConfig persists the config and also reacts to toggles that need
// side effects, like opening the audio device.
func (a *app) saveConfig() {
	if a.cfg.SoundEnabled {
		if err := a.player.Initialize(); err != nil {
			log.Printf("audio unavailable: %v", err)
		}
	}
	if err := a.cfg.Save(a.cfgPath); err != nil {
		log.Printf("saving config: %v", err)
		_ = zenity.Notify(fmt.Sprintf("Could not save settings: %v", err),
			zenity.Title("Ghost Pet"), zenity.WarningIcon)
	}
}

func run(monitorFilter, configPath string) error {
	if configPath == "" {
		p, err := config.DefaultPath()
		if err != nil {
			log.Printf("no config directory, using working directory: %v", err)
			p = "ghost-pet.json"
		}
		configPath = p
	}
	cfg := config.Load(configPath)

	mon, err := display.Select(monitorFilter)
	if err != nil {
		_ = zenity.Error(fmt.Sprintf("Ghost Pet cannot start: %v", err),
			zenity.Title("Ghost Pet"), zenity.ErrorIcon)
		return err
	}
	ebiten.SetMonitor(mon)
	bounds := display.Bounds(mon)

	player := audio.NewPlayer()
	if cfg.SoundEnabled {
		if err := player.Initialize(); err != nil {
			log.Printf("audio unavailable: %v", err)
		}
	}
	defer player.Cleanup()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	engine := ghost.New(cfg, bounds, rng, windows{}, player)
	engine.Start()

	a := &app{
		cfg:     cfg,
		cfgPath: configPath,
		engine:  engine,
		player:  player,
		last:    time.Now(),
	}

	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowTitle("Ghost Pet")
	w, h := a.windowSize()
	ebiten.SetWindowSize(w, h)
	a.followGhost()

	opts := &ebiten.RunGameOptions{
		ScreenTransparent: true,
		SkipTaskbar:       true,
		InitUnfocused:     true,
	}
	if err := ebiten.RunGameWithOptions(a, opts); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}

func main() {
	var (
		monitorFilter string
		configPath    string
		listMonitors  bool
	)

	root := &cobra.Command{
		Use:     "ghost-pet",
		Short:   "A translucent ghost that floats around your desktop",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			if listMonitors {
				for i, name := range display.Names() {
					fmt.Printf("%d: %s\n", i, name)
				}
				return nil
			}
			return run(monitorFilter, configPath)
		},
	}
	root.Flags().StringVar(&monitorFilter, "monitor", "", "substring of the monitor name to haunt")
	root.Flags().StringVar(&configPath, "config", "", "path to the config file")
	root.Flags().BoolVar(&listMonitors, "monitors", false, "list attached monitors and exit")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
