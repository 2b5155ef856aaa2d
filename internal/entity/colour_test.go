package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveColour(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantRGB string
		wantOK  bool
	}{
		{name: "lowercase name", input: "green", wantRGB: "rgb(0,255,0)", wantOK: true},
		{name: "capitalised name", input: "Purple", wantRGB: "rgb(128,0,128)", wantOK: true},
		{name: "uppercase name", input: "TEAL", wantRGB: "rgb(0,128,128)", wantOK: true},
		{name: "brown", input: "brown", wantRGB: "rgb(165,42,42)", wantOK: true},
		{name: "silver", input: "silver", wantRGB: "rgb(192,192,192)", wantOK: true},
		{name: "white matches the default", input: "white", wantRGB: DefaultNoteColour, wantOK: true},
		{name: "outside the palette", input: "neon", wantOK: false},
		{name: "rgb value is not a name", input: "rgb(0,255,0)", wantOK: false},
		{name: "empty string", input: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rgb, ok := ResolveColour(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantRGB, rgb)
			}
		})
	}
}
