package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"
	"fmt"

	"cardroom/internal/rng"
)

// ErrEmptyDeck is an error when a deal is attempted and no cards remain
var ErrEmptyDeck = errors.New("all cards have been dealt")

// ErrNotFullDeck is an error when Shuffle() is attempted on a deck with cards missing
var ErrNotFullDeck = errors.New("only full decks can be shuffled")

// Size is the number of cards in a full deck
const Size = 52

// Deck represents a playing deck
// A deck starts full and only ever shrinks; dealt cards belong to the caller.
type Deck struct {
	Cards []*Card `json:"cards"`
	rng   rng.Generator
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	cards := make([]*Card, 0, Size)
	for _, suit := range Suits {
		for rank := 2; rank <= Ace; rank++ {
			cards = append(cards, &Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	return &Deck{
		Cards: cards,
		rng:   rng.Crypto{},
	}
}

// SetSeed swaps the crypto-backed generator for a deterministic one
// This should only be used by tests
func (d *Deck) SetSeed(seed int64) {
	d.rng = rng.NewSeeded(seed)
}

// Count returns the number of cards remaining in the deck
func (d *Deck) Count() int {
	return len(d.Cards)
}

// CanDeal returns true if there are {want} cards left in the deck
func (d *Deck) CanDeal(want int) bool {
	return len(d.Cards) >= want
}

func (d *Deck) String() string {
	return fmt.Sprintf("Deck of %d cards", d.Count())
}

// Shuffle will shuffle the deck of cards in place using a uniform Fisher-Yates pass.
// Only a full deck may be shuffled; ErrNotFullDeck is returned once any card has been dealt.
func (d *Deck) Shuffle() error {
	if d.Count() < Size {
		return ErrNotFullDeck
	}

	for j := len(d.Cards) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}

	return nil
}

// deal removes up to n cards from the top of the deck (the end of the
// remaining sequence) and returns them top-first. Fewer than n cards are
// returned when fewer remain. The empty check happens before any removal,
// no matter how many cards were requested.
func (d *Deck) deal(n int) (Hand, error) {
	if d.Count() == 0 {
		return nil, ErrEmptyDeck
	}

	if n > d.Count() {
		n = d.Count()
	}

	hand := make(Hand, 0, n)
	for i := 0; i < n; i++ {
		top := len(d.Cards) - 1
		hand = append(hand, d.Cards[top])
		d.Cards = d.Cards[:top]
	}

	return hand, nil
}

// DealCard deals a single card from the top of the deck
// If no cards remain, an ErrEmptyDeck is returned along with a nil card.
func (d *Deck) DealCard() (*Card, error) {
	hand, err := d.deal(1)
	if err != nil {
		return nil, err
	}

	return hand.FirstCard(), nil
}

// DealHand deals up to n cards from the top of the deck
// If no cards remain, an ErrEmptyDeck is returned along with a nil hand.
func (d *Deck) DealHand(n int) (Hand, error) {
	return d.deal(n)
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}
