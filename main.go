package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/OpticalFlyer/btnmatrix/btnmatrix"
	"github.com/OpticalFlyer/btnmatrix/config"
	"github.com/OpticalFlyer/btnmatrix/ui"
)

// keypadMap is the second map the demo switches to.
var keypadMap = btnmatrix.Rows(
	[]string{"7", "8", "9"},
	[]string{"4", "5", "6"},
	[]string{"1", "2", "3"},
	[]string{"0", "."},
)

// App implements ebiten.Game interface.
type App struct {
	ui    *ui.Controller
	panel *ui.Panel

	// Touch state for pinch resizing
	lastTouchX map[ebiten.TouchID]float64
	lastTouchY map[ebiten.TouchID]float64
}

func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		a.ui.SetDebug(!a.ui.Debug())
	}

	// Update UI first so pinch resizing sees the settled layout
	if err := a.ui.Update(); err != nil {
		return err
	}

	if !a.ui.IsInteractingWithUI() {
		a.handleTouchEvents()
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	a.ui.Draw(screen)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.ui.UpdateWindowSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func main() {
	configPath := flag.String("config", "btnmatrix.yaml", "path to the YAML config file")
	flag.Parse()

	cfg, err := config.LoadOptional(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	r, err := cfg.Resolve()
	if err != nil {
		log.Fatalf("invalid config %s: %v", *configPath, err)
	}

	input := ui.NewInput(r.LongPress, r.Repeat)
	uiController := ui.NewController(input)
	damage := uiController.Damage()
	theme := ui.NewTheme(r.Style)

	bm := ui.NewButtonMatrix(theme, damage)
	m := bm.Matrix()
	m.SetPadding(r.Padding)
	m.SetGap(r.RowGap, r.ColumnGap)
	m.SetDirection(r.Direction)
	m.SetRecolor(r.Recolor)
	m.SetOneChecked(r.OneChecked)
	m.SetMap(r.Map)
	m.SetCtrlMap(r.Ctrl)

	status := ui.NewLabel("Press a button", damage)
	m.OnValueChanged(func(btn int) {
		txt, _ := m.ButtonText(btn)
		txt = btnmatrix.StripRecolor(txt)
		status.SetText(fmt.Sprintf("Button %d: %s", btn, txt))
		log.Printf("button %d %q triggered", btn, txt)
	})

	// Create the matrix panel and the settings panel beside it
	matrixPanel := ui.NewPanel(10, 10, 400, 260, "Button Matrix", ui.FillLayout{})
	matrixPanel.AddChild(bm)

	maps := []btnmatrix.Map{r.Map, keypadMap}
	mapIndex := 0
	var dirButton, checkButton *ui.Button
	dirButton = ui.NewButton("Direction: "+m.Geometry().Direction.String(), theme, damage, func() {
		d := btnmatrix.RightToLeft
		if m.Geometry().Direction == btnmatrix.RightToLeft {
			d = btnmatrix.LeftToRight
		}
		m.SetDirection(d)
		dirButton.SetText("Direction: " + d.String())
	})
	checkButton = ui.NewButton(oneCheckedLabel(m.OneChecked()), theme, damage, func() {
		m.SetOneChecked(!m.OneChecked())
		m.SetButtonFlagAll(btnmatrix.FlagCheckable)
		checkButton.SetText(oneCheckedLabel(m.OneChecked()))
	})
	mapButton := ui.NewButton("Next map", theme, damage, func() {
		mapIndex = (mapIndex + 1) % len(maps)
		m.SetMap(maps[mapIndex])
		if mapIndex == 0 {
			m.SetCtrlMap(r.Ctrl)
		}
		status.SetText(fmt.Sprintf("%d buttons", m.ButtonCount()))
	})

	settingsPanel := ui.NewPanel(420, 10, 200, 200, "Settings", ui.StackLayout{RowHeight: 30, Spacing: 6})
	settingsPanel.AddChild(dirButton)
	settingsPanel.AddChild(checkButton)
	settingsPanel.AddChild(mapButton)
	settingsPanel.AddChild(status)

	uiController.AddPanel(matrixPanel)
	uiController.AddPanel(settingsPanel)

	app := &App{
		ui:    uiController,
		panel: matrixPanel,
	}

	ebiten.SetWindowSize(r.WindowWidth, r.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle(r.Title)
	ebiten.SetVsyncEnabled(true)
	ebiten.SetScreenClearedEveryFrame(false)

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}

func oneCheckedLabel(on bool) string {
	if on {
		return "One checked: on"
	}
	return "One checked: off"
}
