package bot

import "bigtwo/internal/domain"

var playSizes = []int{1, 2, 3, 5}

// LegalMoves enumerates every legal play for the seat in the current game
// state, weakest candidates first. When the seat is leading a fresh trick
// all legal shapes are produced; when responding, only plays matching the
// table's length that beat it.
func LegalMoves(game *domain.Game, seat string) [][]domain.Card {
	hand := append([]domain.Card{}, game.Hands[seat]...)
	domain.SortForRest(hand)

	leading := game.Status == domain.StatusFirstTurn ||
		game.LastPlayer == seat ||
		len(game.LastPlayed) == 0

	var last []domain.Card
	sizes := playSizes
	if !leading {
		last = game.LastPlayed
		sizes = []int{len(last)}
	}

	var moves [][]domain.Card
	for _, size := range sizes {
		forEachSubset(hand, size, func(play []domain.Card) {
			if domain.ValidPlay(last, play) {
				moves = append(moves, append([]domain.Card{}, play...))
			}
		})
	}
	return moves
}

// forEachSubset visits every size-k subset of the hand in lexicographic
// order of the sorted hand.
func forEachSubset(hand []domain.Card, k int, visit func([]domain.Card)) {
	if k > len(hand) {
		return
	}
	idx := make([]int, k)
	play := make([]domain.Card, k)
	var recurse func(pos, start int)
	recurse = func(pos, start int) {
		if pos == k {
			for i, j := range idx {
				play[i] = hand[j]
			}
			visit(play)
			return
		}
		for i := start; i <= len(hand)-(k-pos); i++ {
			idx[pos] = i
			recurse(pos+1, i+1)
		}
	}
	recurse(0, 0)
}
