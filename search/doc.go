// Package search recommends moves for a Triple Triad match.
//
// A recommendation is computed in two phases:
//
//  1. A depth-limited negamax search with alpha-beta pruning collects every
//     move that reaches the best score. The search applies and undoes moves in
//     place on a private copy of the match.
//  2. When more than one move ties, each candidate is scored by random
//     playouts. Candidates are evaluated concurrently, each on its own copy of
//     the match with its own random source, and the highest win ratio wins.
//
// # Scoring
//
// A playout won by the searching player counts 1, a tie counts 0.3 and a loss
// counts 0. The win ratio is the average over all playouts.
package search
