package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/flashgrid/internal/testutil"
)

func setupTranslationServers(t *testing.T) {
	t.Helper()
	translate := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("tl") == "en" {
			_, _ = w.Write([]byte(`[[["dog","chien",null]],null,"fr"]`))
			return
		}
		_, _ = w.Write([]byte(`[[["Un animal.","An animal.",null]],null,"en"]`))
	}))
	t.Cleanup(translate.Close)
	dictionary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"word":"dog","meanings":[{"definitions":[{"definition":"An animal."}]}]}]`))
	}))
	t.Cleanup(dictionary.Close)

	setConfigFile(t, testutil.SetupTestConfigWithTranslation(t, t.TempDir(), translate.URL, dictionary.URL))
}

func TestSuggestCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr string
	}{
		{
			name: "french word",
			args: []string{"chien", "--question-language", "french"},
			want: "1. dog\n2. An animal.\n3. Un animal.\n",
		},
		{
			name: "no question language",
			args: []string{"chien"},
			want: "1. dog\n2. An animal.\n",
		},
		{
			name: "answers not in english",
			args: []string{"chien", "-q", "french", "-a", "spanish"},
			want: "Suggestions are only available for English answers.\n",
		},
		{
			name:    "unknown language",
			args:    []string{"chien", "-q", "klingon"},
			wantErr: `unknown language "klingon"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTranslationServers(t)

			got, err := execute(t, newSuggestCommand(), tt.args...)

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
