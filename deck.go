package main

import (
	"math/rand"
)

// shuffleCards returns a freshly shuffled copy of pool.
func shuffleCards(pool []string) []string {
	deck := make([]string, len(pool))
	copy(deck, pool)

	rand.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	return deck
}

// deal pops n cards off the end of deck, reshuffling a fresh copy of
// pool into the deck whenever it runs dry mid-deal. A deal always
// yields exactly n cards as long as the pool is non-empty; exhaustion
// is handled by refill, never surfaced to the caller.
func deal(deck []string, n int, pool []string) ([]string, []string) {
	cards := make([]string, 0, n)

	for len(cards) < n {
		if len(deck) == 0 {
			if len(pool) == 0 {
				break
			}
			deck = shuffleCards(pool)
		}
		cards = append(cards, deck[len(deck)-1])
		deck = deck[:len(deck)-1]
	}

	return cards, deck
}
