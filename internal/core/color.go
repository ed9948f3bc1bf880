package core

// Color is a cell color in "#rrggbb" form.
// The empty string means the terminal's default color.
type Color string

// Palette used by the game screens. Values follow the classic raylib colors
// so the terminal rendition keeps the look of the windowed original.
const (
	ColorDefault   Color = ""
	ColorRayWhite  Color = "#f5f5f5"
	ColorLightGray Color = "#c8c8c8"
	ColorGray      Color = "#828282"
	ColorDarkGray  Color = "#505050"
	ColorBlack     Color = "#000000"
	ColorRed       Color = "#e62937"
	ColorBlue      Color = "#0079f1"
	ColorViolet    Color = "#873cbe"
	ColorGold      Color = "#ffcb00"
	ColorLime      Color = "#00e430"
)

// IsDefault reports whether the color defers to the terminal default.
func (c Color) IsDefault() bool {
	return c == ColorDefault
}
