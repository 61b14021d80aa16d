package core

// Color is the role of a screen cell. The platform layer decides how each
// role looks, so the field renderer never deals in terminal color codes.
type Color uint8

// Cell roles used by the field renderer and the score bar.
const (
	ColorDefault Color = iota
	ColorSea           // Wave line
	ColorWhale
	ColorStunned
	ColorKrill
	ColorBoat
	ColorHarpoon
	ColorGood // Trend arrow when krill keep up with hits
	ColorBad
	ColorFrame // Message box titles
)
