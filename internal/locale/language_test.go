package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharactersFor(t *testing.T) {
	tests := []struct {
		language  Language
		wantLen   int
		wantFirst string
	}{
		{language: None, wantLen: 0},
		{language: English, wantLen: 0},
		{language: Japanese, wantLen: 0},
		{language: French, wantLen: 16, wantFirst: "à"},
		{language: Spanish, wantLen: 16, wantFirst: "á"},
		{language: German, wantLen: 7, wantFirst: "ä"},
		{language: Vietnamese, wantLen: 29, wantFirst: "à"},
		{language: Language("klingon"), wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.language), func(t *testing.T) {
			got := CharactersFor(tt.language)
			require.Len(t, got, tt.wantLen)
			if tt.wantLen > 0 {
				assert.Equal(t, tt.wantFirst, got[0])
			}
		})
	}
}

func TestCharactersFor_ReturnsCopy(t *testing.T) {
	chars := CharactersFor(German)
	chars[0] = "x"
	assert.Equal(t, "ä", CharactersFor(German)[0])
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		cursor     int
		char       string
		want       string
		wantCursor int
	}{
		{name: "at end", text: "gar", cursor: 3, char: "ç", want: "garç", wantCursor: 4},
		{name: "in the middle", text: "Strae", cursor: 4, char: "ß", want: "Straße", wantCursor: 5},
		{name: "after multibyte runes", text: "éte", cursor: 1, char: "ê", want: "éête", wantCursor: 2},
		{name: "cursor past end is clamped", text: "a", cursor: 10, char: "ñ", want: "añ", wantCursor: 2},
		{name: "negative cursor is clamped", text: "a", cursor: -3, char: "¿", want: "¿a", wantCursor: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, cursor := Insert(tt.text, tt.cursor, tt.char)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantCursor, cursor)
		})
	}
}

func TestExpandPlaceholders(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		language Language
		want     string
		wantErr  bool
	}{
		{name: "no placeholders", text: "hello", language: French, want: "hello"},
		{name: "single placeholder", text: "gar{5}on", language: French, want: "garçon"},
		{name: "several placeholders", text: "{8}Qu{2} tal?", language: Spanish, want: "¿Qué tal?"},
		{name: "out of range", text: "a{99}", language: German, want: "a{99}", wantErr: true},
		{name: "language without characters", text: "{1}", language: English, want: "{1}", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandPlaceholders(tt.text, tt.language)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLanguage_IsValid(t *testing.T) {
	for _, l := range Languages {
		assert.True(t, l.IsValid(), l)
	}
	assert.True(t, Language("").IsValid())
	assert.False(t, Language("latin").IsValid())
}
