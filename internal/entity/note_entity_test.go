package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoteFlagTransitions(t *testing.T) {
	tests := []struct {
		name         string
		start        Note
		transition   func(*Note) bool
		wantChanged  bool
		wantPinned   bool
		wantArchived bool
	}{
		{
			name:        "pin a plain note",
			start:       Note{},
			transition:  (*Note).Pin,
			wantChanged: true,
			wantPinned:  true,
		},
		{
			name:        "pin an archived note clears the archive flag",
			start:       Note{Archived: true},
			transition:  (*Note).Pin,
			wantChanged: true,
			wantPinned:  true,
		},
		{
			name:        "pin an already pinned note is a no-op",
			start:       Note{Pinned: true},
			transition:  (*Note).Pin,
			wantChanged: false,
			wantPinned:  true,
		},
		{
			name:        "unpin a pinned note",
			start:       Note{Pinned: true},
			transition:  (*Note).Unpin,
			wantChanged: true,
		},
		{
			name:        "unpin an unpinned note is a no-op",
			start:       Note{},
			transition:  (*Note).Unpin,
			wantChanged: false,
		},
		{
			name:         "archive a plain note",
			start:        Note{},
			transition:   (*Note).Archive,
			wantChanged:  true,
			wantArchived: true,
		},
		{
			name:         "archive a pinned note clears the pin flag",
			start:        Note{Pinned: true},
			transition:   (*Note).Archive,
			wantChanged:  true,
			wantArchived: true,
		},
		{
			name:         "archive an archived note is a no-op",
			start:        Note{Archived: true},
			transition:   (*Note).Archive,
			wantChanged:  false,
			wantArchived: true,
		},
		{
			name:        "unarchive an archived note",
			start:       Note{Archived: true},
			transition:  (*Note).Unarchive,
			wantChanged: true,
		},
		{
			name:        "unarchive a plain note is a no-op",
			start:       Note{},
			transition:  (*Note).Unarchive,
			wantChanged: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			note := tt.start
			changed := tt.transition(&note)

			assert.Equal(t, tt.wantChanged, changed)
			assert.Equal(t, tt.wantPinned, note.Pinned)
			assert.Equal(t, tt.wantArchived, note.Archived)
		})
	}
}

func TestNoteFlagsNeverBothSet(t *testing.T) {
	note := Note{}

	note.Pin()
	note.Archive()
	assert.False(t, note.Pinned)
	assert.True(t, note.Archived)

	note.Pin()
	assert.True(t, note.Pinned)
	assert.False(t, note.Archived)
}
