package crawl

// Phase is the active screen of the game. Each phase has its own step and
// render function; paused is only meaningful while Playing.
type Phase int

const (
	PhaseIntro Phase = iota
	PhaseMenu
	PhasePlaying
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "Intro"
	case PhaseMenu:
		return "Menu"
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}
