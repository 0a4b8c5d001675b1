package component

type ScreenMode int

const (
	ScreenPlaying ScreenMode = iota
	ScreenPaused
	ScreenControls
	ScreenGameOver
	ScreenMainMenu
	ScreenAbout
)

func (m ScreenMode) String() string {
	switch m {
	case ScreenPlaying:
		return "playing"
	case ScreenPaused:
		return "paused"
	case ScreenControls:
		return "controls"
	case ScreenGameOver:
		return "game_over"
	case ScreenMainMenu:
		return "main_menu"
	case ScreenAbout:
		return "about"
	}
	return "unknown"
}

// Screens is the menu sub-state. Defeated disables the pause toggle for the
// rest of the session.
type Screens struct {
	Mode        ScreenMode
	Defeated    bool
	CursorFree  bool
	QuitRequest bool
}

var ScreensComponent = NewComponent[Screens]()

type ScreenAction int

const (
	ScreenActionResume ScreenAction = iota + 1
	ScreenActionControls
	ScreenActionBack
	ScreenActionRestart
	ScreenActionMainMap
	ScreenActionMainMenu
	ScreenActionStart
	ScreenActionAbout
	ScreenActionQuit
)

// ScreenRequest is a one-shot button press from the menu UI.
type ScreenRequest struct {
	Action ScreenAction
}

var ScreenRequestComponent = NewComponent[ScreenRequest]()
