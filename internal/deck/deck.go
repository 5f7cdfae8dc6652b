package deck

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoMessages is returned when a deck carries no messages to present.
	ErrNoMessages = errors.New("deck has no messages")
	// ErrNoEmojis is returned when a deck carries no emojis to cycle through.
	ErrNoEmojis = errors.New("deck has no emojis")
	// ErrBlankEntry is returned when a message or emoji is empty after trimming.
	ErrBlankEntry = errors.New("deck entry is blank")
)

// Deck is the immutable content of one presentation: the ordered messages,
// the emoji cycle paired with them, and the final card.
type Deck struct {
	messages     []string
	emojis       []string
	Finale       string
	RestartLabel string
}

// New validates and returns a deck with the default finale and restart label.
func New(messages, emojis []string) (Deck, error) {
	d := Deck{
		messages:     append([]string(nil), messages...),
		emojis:       append([]string(nil), emojis...),
		Finale:       defaultFinale,
		RestartLabel: defaultRestartLabel,
	}
	if err := d.Validate(); err != nil {
		return Deck{}, err
	}
	return d, nil
}

// Validate reports whether the deck can back a presentation.
func (d Deck) Validate() error {
	if len(d.messages) == 0 {
		return ErrNoMessages
	}
	if len(d.emojis) == 0 {
		return ErrNoEmojis
	}
	for i, message := range d.messages {
		if strings.TrimSpace(message) == "" {
			return fmt.Errorf("message %d: %w", i, ErrBlankEntry)
		}
	}
	for i, emoji := range d.emojis {
		if strings.TrimSpace(emoji) == "" {
			return fmt.Errorf("emoji %d: %w", i, ErrBlankEntry)
		}
	}
	return nil
}

// Len returns the number of messages.
func (d Deck) Len() int {
	return len(d.messages)
}

// Message returns the message at index i. The caller keeps i in range.
func (d Deck) Message(i int) string {
	return d.messages[i]
}

// Emoji returns the emoji paired with message index i, cycling through the
// emoji list.
func (d Deck) Emoji(i int) string {
	if len(d.emojis) == 0 || i < 0 {
		return ""
	}
	return d.emojis[i%len(d.emojis)]
}

// Messages returns a copy of the message list.
func (d Deck) Messages() []string {
	return append([]string(nil), d.messages...)
}

// Emojis returns a copy of the emoji cycle.
func (d Deck) Emojis() []string {
	return append([]string(nil), d.emojis...)
}
