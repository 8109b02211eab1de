package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cardroom/internal/config"
	"cardroom/internal/util"
	"cardroom/pkg/deck"
)

var (
	handSize int
	players  int
)

var shuffleCmd = &cobra.Command{
	Use:   "shuffle",
	Short: "Shuffle a fresh deck and print it",
	RunE: func(cmd *cobra.Command, args []string) error {
		d := newDeck()
		if err := d.Shuffle(); err != nil {
			return err
		}

		for _, card := range d.Cards {
			fmt.Println(renderCard(card))
		}

		return nil
	},
}

var dealCmd = &cobra.Command{
	Use:   "deal",
	Short: "Shuffle a fresh deck and deal a hand to each player at the table",
	RunE: func(cmd *cobra.Command, args []string) error {
		if handSize <= 0 {
			handSize = config.Instance().Dealer.HandSize
		}
		if players <= 0 {
			players = config.Instance().Dealer.Players
		}

		d := newDeck()
		if err := d.Shuffle(); err != nil {
			return err
		}

		logrus.WithFields(logrus.Fields{
			"players":  players,
			"handSize": handSize,
		}).Debug("dealing")

		for i := 0; i < players; i++ {
			hand, err := d.DealHand(handSize)
			if err != nil {
				return err
			}

			fmt.Printf("%s: %s\n", util.GetRandomName(), renderHand(hand))
		}

		fmt.Println(d)
		return nil
	},
}

func init() {
	dealCmd.Flags().IntVar(&handSize, "hand-size", 0, "cards per hand (defaults from config)")
	dealCmd.Flags().IntVar(&players, "hands", 0, "number of hands to deal (defaults from config)")
}

func newDeck() *deck.Deck {
	d := deck.New()
	if seed != 0 {
		logrus.WithField("seed", seed).Debug("using seeded shuffle")
		d.SetSeed(seed)
	}

	return d
}

var redSuit = color.New(color.FgRed)

func renderCard(card *deck.Card) string {
	if card.Suit == deck.Hearts || card.Suit == deck.Diamonds {
		return redSuit.Sprint(card.String())
	}

	return card.String()
}

func renderHand(hand deck.Hand) string {
	out := make([]string, len(hand))
	for i, card := range hand {
		out[i] = renderCard(card)
	}

	return strings.Join(out, ", ")
}
