package core

// Color represents a foreground color for a rendered entity or screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Tag identifies what kind of object an entity is, so the host can pick a
// visual for it.
type Tag uint8

const (
	TagNone Tag = iota
	TagHead
	TagBody
	TagFood
)

// String returns a human-readable name for the tag.
func (t Tag) String() string {
	switch t {
	case TagHead:
		return "head"
	case TagBody:
		return "body"
	case TagFood:
		return "food"
	default:
		return "none"
	}
}

// DefaultColor is the color an entity of this tag is created with.
func (t Tag) DefaultColor() Color {
	switch t {
	case TagHead:
		return ColorBrightGreen
	case TagBody:
		return ColorGreen
	case TagFood:
		return ColorBrightYellow
	default:
		return ColorDefault
	}
}
