package entity

import "strings"

// DefaultNoteColour is the colour a note is created with.
const DefaultNoteColour = "rgb(255,255,255)"

// noteColours is the closed set of colour names a note may be given,
// mapped to the RGB value that gets stored. Membership is checked
// case-insensitively; anything outside this set is rejected.
var noteColours = map[string]string{
	"green":  "rgb(0,255,0)",
	"red":    "rgb(255,0,0)",
	"blue":   "rgb(0,0,255)",
	"yellow": "rgb(255,255,0)",
	"grey":   "rgb(128,128,128)",
	"purple": "rgb(128,0,128)",
	"brown":  "rgb(165,42,42)",
	"orange": "rgb(255,165,0)",
	"pink":   "rgb(255,192,203)",
	"black":  "rgb(0,0,0)",
	"silver": "rgb(192,192,192)",
	"teal":   "rgb(0,128,128)",
	"white":  "rgb(255,255,255)",
}

// ResolveColour maps a colour name to its stored RGB value.
// The second return value reports whether the name is in the palette.
func ResolveColour(name string) (string, bool) {
	rgb, ok := noteColours[strings.ToLower(name)]
	return rgb, ok
}
