// Package preference stores per-set study preferences in a YAML file.
package preference

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/at-ishikawa/flashgrid/internal/yamlfile"
)

type SetPreference struct {
	AskInQuestionLanguage *bool `yaml:"ask_in_question_language,omitempty"`
}

type document struct {
	Sets map[string]SetPreference `yaml:"sets"`
}

// YAMLStore keeps preferences for every set in a single file. The file is
// read on every lookup so edits made by hand are picked up.
type YAMLStore struct {
	mu   sync.Mutex
	path string
}

func NewYAMLStore(path string) *YAMLStore {
	return &YAMLStore{path: path}
}

func (s *YAMLStore) AskInQuestionLanguage(setID string) (bool, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return false, false, err
	}
	pref, ok := doc.Sets[setID]
	if !ok || pref.AskInQuestionLanguage == nil {
		return false, false, nil
	}
	return *pref.AskInQuestionLanguage, true, nil
}

func (s *YAMLStore) SetAskInQuestionLanguage(setID string, ask bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}
	pref := doc.Sets[setID]
	pref.AskInQuestionLanguage = &ask
	doc.Sets[setID] = pref

	if err := yamlfile.Write(s.path, doc); err != nil {
		return fmt.Errorf("yamlfile.Write(%s) > %w", s.path, err)
	}
	return nil
}

func (s *YAMLStore) read() (document, error) {
	doc, err := yamlfile.Read[document](s.path)
	if errors.Is(err, os.ErrNotExist) {
		return document{Sets: map[string]SetPreference{}}, nil
	}
	if err != nil {
		return document{}, fmt.Errorf("yamlfile.Read(%s) > %w", s.path, err)
	}
	if doc.Sets == nil {
		doc.Sets = map[string]SetPreference{}
	}
	return doc, nil
}
