package deck

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileDeck is the on-disk YAML shape of a deck.
type fileDeck struct {
	Messages     []string `yaml:"messages"`
	Emojis       []string `yaml:"emojis,omitempty"`
	Finale       string   `yaml:"finale,omitempty"`
	RestartLabel string   `yaml:"restart_label,omitempty"`
}

// Load reads a YAML deck file. Omitted emojis, finale and restart label fall
// back to the built-in deck.
func Load(path string) (Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Deck{}, fmt.Errorf("load deck %s: %w", path, err)
	}
	d, err := Parse(data)
	if err != nil {
		return Deck{}, fmt.Errorf("load deck %s: %w", path, err)
	}
	return d, nil
}

// Parse decodes a YAML deck document.
func Parse(data []byte) (Deck, error) {
	var raw fileDeck
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Deck{}, fmt.Errorf("parse deck: %w", err)
	}
	emojis := raw.Emojis
	if len(emojis) == 0 {
		emojis = defaultEmojis
	}
	d, err := New(raw.Messages, emojis)
	if err != nil {
		return Deck{}, err
	}
	if raw.Finale != "" {
		d.Finale = raw.Finale
	}
	if raw.RestartLabel != "" {
		d.RestartLabel = raw.RestartLabel
	}
	return d, nil
}

// MarshalYAML renders the deck in the same shape Load accepts.
func (d Deck) MarshalYAML() (interface{}, error) {
	return fileDeck{
		Messages:     d.Messages(),
		Emojis:       d.Emojis(),
		Finale:       d.Finale,
		RestartLabel: d.RestartLabel,
	}, nil
}
