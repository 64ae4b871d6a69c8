// Package study contains the card drawing and answer checking shared by the study modes.
package study

import (
	"math/rand/v2"

	"github.com/at-ishikawa/flashgrid/internal/flashcard"
)

// Deck deals the cards of a set in random order. Once every card of a
// shuffle has been dealt, the full set is shuffled again.
type Deck struct {
	rnd      *rand.Rand
	cards    []flashcard.Flashcard
	current  *flashcard.Flashcard
	pending  []flashcard.Flashcard
	shuffles int
}

func NewDeck(rnd *rand.Rand) *Deck {
	return &Deck{rnd: rnd}
}

// Start shuffles the cards and deals the first one. The slice is copied.
func (d *Deck) Start(cards []flashcard.Flashcard) *flashcard.Flashcard {
	d.cards = make([]flashcard.Flashcard, len(cards))
	copy(d.cards, cards)
	d.shuffles = 0
	d.current = nil
	d.pending = nil
	return d.Next()
}

// Next deals the next card, reshuffling every card of the set when the current
// shuffle is used up. It returns nil only for an empty set.
func (d *Deck) Next() *flashcard.Flashcard {
	if len(d.cards) == 0 {
		return nil
	}
	if len(d.pending) == 0 {
		d.pending = Shuffle(d.rnd, d.cards)
		d.shuffles++
	}
	card := d.pending[0]
	d.pending = d.pending[1:]
	d.current = &card
	return d.current
}

// Current returns the card dealt last, or nil before Start or for an empty set.
func (d *Deck) Current() *flashcard.Flashcard {
	return d.current
}

// Remaining returns how many cards are left before the next reshuffle.
func (d *Deck) Remaining() int {
	return len(d.pending)
}

// Shuffles returns how many times the set has been shuffled since Start.
func (d *Deck) Shuffles() int {
	return d.shuffles
}

// Shuffle returns a uniformly random permutation of items without modifying them.
func Shuffle[T any](rnd *rand.Rand, items []T) []T {
	shuffled := make([]T, len(items))
	copy(shuffled, items)
	rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}

// Permutation returns the indexes 0..n-1 in random order.
func Permutation(rnd *rand.Rand, n int) []int {
	return rnd.Perm(n)
}
