package deck

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestNew(t *testing.T) {
	a := assert.New(t)
	deck := New()

	a.Equal(52, deck.Count())
	a.Equal("Deck of 52 cards", deck.String())

	a.Equal(Card{Rank: 2, Suit: Clubs}, *deck.Cards[0])
	a.Equal(Card{Rank: 14, Suit: Spades}, *deck.Cards[51])

	// exactly the 13x4 cross product, each pair once
	seen := make(map[Card]int)
	for _, card := range deck.Cards {
		seen[*card]++
	}

	a.Equal(52, len(seen))
	for _, suit := range Suits {
		for rank := 2; rank <= 14; rank++ {
			a.Equal(1, seen[Card{Rank: rank, Suit: suit}])
		}
	}
}

func TestDeck_Shuffle(t *testing.T) {
	a := assert.New(t)

	deck := New()
	deck.SetSeed(1)
	before := deck.HashCode()

	a.NoError(deck.Shuffle())
	a.Equal(52, deck.Count())
	a.NotEqual(before, deck.HashCode())

	// same multiset of cards, just reordered
	seen := make(map[Card]int)
	for _, card := range deck.Cards {
		seen[*card]++
	}
	a.Equal(52, len(seen))

	card, err := deck.DealCard()
	a.NotNil(card)
	a.NoError(err)

	err = deck.Shuffle()
	a.Equal(ErrNotFullDeck, err)
	a.Equal(51, deck.Count())
}

func TestDeck_DealCard(t *testing.T) {
	a := assert.New(t)

	deck := New()
	deck.SetSeed(2)
	a.NoError(deck.Shuffle())

	seen := make(map[Card]bool)
	for i := 0; i < 52; i++ {
		card, err := deck.DealCard()
		a.NoError(err)
		a.NotNil(card)
		a.False(seen[*card])
		seen[*card] = true
	}

	a.Equal(52, len(seen))
	a.Equal(0, deck.Count())

	card, err := deck.DealCard()
	a.Nil(card)
	a.Equal(ErrEmptyDeck, err)
}

func TestDeck_DealCardOrder(t *testing.T) {
	a := assert.New(t)

	// an unshuffled deck deals from the top (the ace of spades)
	deck := New()
	card, err := deck.DealCard()
	a.NoError(err)
	a.Equal("A of Spades", card.String())
	a.Equal(51, deck.Count())
}

func TestDeck_DealHand(t *testing.T) {
	a := assert.New(t)

	deck := New()
	hand, err := deck.DealHand(5)
	a.NoError(err)
	a.Equal(5, len(hand))
	a.Equal(47, deck.Count())

	// a short deck deals what it can
	deck = New()
	hand, err = deck.DealHand(100)
	a.NoError(err)
	a.Equal(52, len(hand))
	a.Equal(0, deck.Count())

	// the empty check happens before the size is considered
	for _, n := range []int{0, 1, 5, 100} {
		hand, err = deck.DealHand(n)
		a.Nil(hand)
		a.Equal(ErrEmptyDeck, err)
	}
}

func TestDeck_DealHandOrder(t *testing.T) {
	deck := New()
	hand, err := deck.DealHand(3)

	assert.NoError(t, err)
	assert.Equal(t, "14s,13s,12s", hand.String())
	assert.Equal(t, "Deck of 49 cards", deck.String())
}

func TestDeck_CanDeal(t *testing.T) {
	deck := New()

	if !deck.CanDeal(52) {
		t.Errorf("expected CanDeal(52) to be true")
	}

	if deck.CanDeal(53) {
		t.Errorf("expected CanDeal(53) to be false")
	}

	if _, err := deck.DealHand(52); err != nil {
		t.Errorf("expected err to be nil, got %v", err)
	}

	if deck.CanDeal(1) {
		t.Errorf("expected CanDeal(1) to be false")
	}
}

func TestDeck_Scenario(t *testing.T) {
	a := assert.New(t)

	deck := New()
	a.Equal(52, deck.Count())

	a.NoError(deck.Shuffle())

	card, err := deck.DealCard()
	a.NoError(err)
	a.NotNil(card)
	a.Equal(51, deck.Count())

	hand, err := deck.DealHand(5)
	a.NoError(err)
	a.Equal(5, len(hand))
	a.Equal(46, deck.Count())
	a.False(hand.HasCard(card))
}
