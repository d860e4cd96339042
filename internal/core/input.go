package core

// Input is the directional request the host reports once per frame.
// Physical keys are mapped to these by the platform layer.
type Input int

const (
	InputNone Input = iota
	InputUp
	InputDown
	InputLeft
	InputRight
)

// String returns a human-readable name for the input.
func (i Input) String() string {
	switch i {
	case InputNone:
		return "None"
	case InputUp:
		return "Up"
	case InputDown:
		return "Down"
	case InputLeft:
		return "Left"
	case InputRight:
		return "Right"
	default:
		return "Unknown"
	}
}
