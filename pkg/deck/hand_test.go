package deck

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHand_HasCard(t *testing.T) {
	hand := Hand(CardsFromString("2c,3c,4d"))
	assert.True(t, hand.HasCard(CardFromString("3c")))
	assert.False(t, hand.HasCard(CardFromString("3s")))
}

func TestHand_Discard(t *testing.T) {
	hand := Hand(CardsFromString("2c,3c,3c,4d"))
	assert.Equal(t, 2, hand.Discard(CardFromString("3c")))
	assert.Equal(t, "2c,4d", CardsToString(hand))
	assert.Equal(t, 0, hand.Discard(CardFromString("3c")))
}

func TestHand_AddCard(t *testing.T) {
	h := make(Hand, 0)
	h.AddCard(CardFromString("14s"))
	h.AddCard(CardFromString("3c"))
	assert.Equal(t, "14s,3c", CardsToString(h))
}

func TestHand_FirstAndLastCard(t *testing.T) {
	a := assert.New(t)

	var hand Hand
	a.Nil(hand.FirstCard())
	a.Nil(hand.LastCard())

	hand = Hand(CardsFromString("2c,3c,4d"))
	a.Equal("2c", CardToString(hand.FirstCard()))
	a.Equal("4d", CardToString(hand.LastCard()))
}

func TestHand_Sort(t *testing.T) {
	hand := Hand(CardsFromString("14s,2d,3c,2c"))
	sort.Sort(hand)
	assert.Equal(t, "2c,3c,2d,14s", hand.String())
}

func TestHand_Clone(t *testing.T) {
	a := assert.New(t)

	hand := Hand(CardsFromString("2c,3c"))
	clone := hand.Clone()
	a.Equal(hand.String(), clone.String())

	clone.AddCard(CardFromString("4d"))
	a.Equal(2, hand.Len())
	a.Equal(3, clone.Len())
}
