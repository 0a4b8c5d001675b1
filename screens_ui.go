package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/graveyardshift/assets"
	"github.com/milk9111/graveyardshift/common"
	"github.com/milk9111/graveyardshift/ecs/component"
	"github.com/milk9111/graveyardshift/prefabs"
)

var (
	overlayColor = color.RGBA{A: 140}
	whiteText    = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	dimText      = color.NRGBA{R: 0xb0, G: 0xb0, B: 0xb0, A: 0xff}
)

type button struct {
	label  string
	action component.ScreenAction
}

// ScreensUI holds one ebitenui tree per menu mode. Buttons only emit screen
// requests; the screen system owns the transitions.
type ScreensUI struct {
	push    func(component.ScreenAction)
	uis     map[component.ScreenMode]*ebitenui.UI
	current *ebitenui.UI
}

func NewScreensUI(push func(component.ScreenAction)) (*ScreensUI, error) {
	controls, err := prefabs.LoadControlsSpec()
	if err != nil {
		return nil, fmt.Errorf("screens: %w", err)
	}

	bindings := make([]string, 0, len(controls.Bindings))
	for _, b := range controls.Bindings {
		bindings = append(bindings, fmt.Sprintf("%-18s %s", b.Action, b.Keys))
	}

	s := &ScreensUI{push: push}
	s.uis = map[component.ScreenMode]*ebitenui.UI{
		component.ScreenMainMenu: s.newPanel("The Graveyard Shift", nil, []button{
			{"Start", component.ScreenActionStart},
			{"About", component.ScreenActionAbout},
			{"Quit", component.ScreenActionQuit},
		}),
		component.ScreenAbout: s.newPanel("About", controls.About, []button{
			{"Back", component.ScreenActionBack},
		}),
		component.ScreenPaused: s.newPanel("Paused", nil, []button{
			{"Resume", component.ScreenActionResume},
			{"Controls", component.ScreenActionControls},
			{"Restart", component.ScreenActionRestart},
			{"Main Menu", component.ScreenActionMainMenu},
			{"Quit", component.ScreenActionQuit},
		}),
		component.ScreenControls: s.newPanel("Controls", bindings, []button{
			{"Back", component.ScreenActionBack},
		}),
		component.ScreenGameOver: s.newPanel("You Died", nil, []button{
			{"Restart", component.ScreenActionRestart},
			{"Main Map", component.ScreenActionMainMap},
			{"Main Menu", component.ScreenActionMainMenu},
			{"Quit", component.ScreenActionQuit},
		}),
	}
	return s, nil
}

func (s *ScreensUI) Update(screens *component.Screens) {
	s.current = nil
	if screens == nil {
		return
	}
	s.current = s.uis[screens.Mode]
	if s.current != nil {
		s.current.Update()
	}
}

func (s *ScreensUI) Draw(screen *ebiten.Image) {
	if s.current == nil {
		return
	}
	vector.FillRect(screen, 0, 0, common.BaseWidth, common.BaseHeight, overlayColor, false)
	s.current.Draw(screen)
}

// newPanel builds a centered panel with a title, optional body lines and a
// column of buttons.
func (s *ScreensUI) newPanel(title string, lines []string, buttons []button) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{A: 200})
	btnIdle := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnHover := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x22, B: 0x22, A: 255})

	var face ebtext.Face = assets.UIFace()
	btnTextColor := &widget.ButtonTextColor{Idle: whiteText}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/3, common.BaseHeight/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)

	panel.AddChild(widget.NewText(
		widget.TextOpts.Text(title, &face, whiteText),
		widget.TextOpts.WidgetOpts(center),
	))
	for _, line := range lines {
		panel.AddChild(widget.NewText(
			widget.TextOpts.Text(line, &face, dimText),
			widget.TextOpts.WidgetOpts(center),
		))
	}
	for _, b := range buttons {
		action := b.action
		panel.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnIdle, Hover: btnHover, Pressed: btnHover}),
			widget.ButtonOpts.Text(b.label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(center),
			widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) {
				s.push(action)
			}),
		))
	}

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}
