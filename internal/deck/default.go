package deck

const (
	defaultFinale       = "💖 I lou u sooooooo much Shivuuuuuuuuuuuuuuuuuuuuuuu 💖"
	defaultRestartLabel = "🔄 Start Over"
)

var defaultMessages = []string{
	"Kuttymaaaaaaaaaaaaaaa, This is something I've been longing to tell you!",
	"Every moment with you feels like magic, like a dream I never want to wake up from.",
	"You bring a joy to my life that I didn't even know I was missing. For Real!",
	"My once ordinary days have transformed into thoughts of you, filling every corner of my mind.",
	"Your smile lights up my world, and your laughter is the sweetest melody I've ever heard.",
	"You inspire me to grow, to dream bigger, and to see the beauty in the little things.",
	"I want to be there for you - in your happiest moments and your challenging ones too.",
	"You make every single moment worthwhile! Your kindness and beautiful soul touch me deeply.",
	"I want to be your safe haven in this crazy world.",
	"Thank you for being the amazing person you are and brightening my world.",
	"And now, for the grand finale...",
}

var defaultEmojis = []string{"💖", "😍", "🥰", "💕", "💓", "💗", "💘", "💝"}

// Default returns the built-in deck shown when no deck file is configured.
func Default() Deck {
	return Deck{
		messages:     append([]string(nil), defaultMessages...),
		emojis:       append([]string(nil), defaultEmojis...),
		Finale:       defaultFinale,
		RestartLabel: defaultRestartLabel,
	}
}
