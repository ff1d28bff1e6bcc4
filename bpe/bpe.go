// Package bpe implements a greedy pairwise-merge text codec. Text is
// treated as a sequence of symbols, initially single characters;
// each round merges every occurrence of the most frequent adjacent
// pair into one symbol and records the merged text. The ordered merge
// history is all that is needed to invert the process.
package bpe

import "strings"

// Compress reduces text by up to maxMerges merge rounds and returns
// the resulting bundle. Each round counts every adjacent symbol pair,
// picks the most frequent one and replaces its non-overlapping
// occurrences left-to-right with a single merged symbol. On equal
// counts the pair encountered first in the left-to-right scan wins,
// making the output deterministic for a fixed input. Rounds stop
// early once no adjacent pair remains.
func Compress(text string, maxMerges int) *Bundle {
	tokens := make([]string, 0, len(text))
	for _, r := range text {
		tokens = append(tokens, string(r))
	}

	bundle := new(Bundle)
	for n := 0; n < maxMerges; n++ {
		a, b, ok := bestPair(tokens)
		if !ok {
			break
		}
		bundle.Merges = append(bundle.Merges, a+b)
		tokens = mergePair(tokens, a, b)
	}
	bundle.Compressed = strings.Join(tokens, " ")
	return bundle
}

// Decompress reconstructs text from a compressed symbol string and its
// merge history. Symbols are split on spaces, then the merges are
// replayed newest-first: every symbol whose text equals the current
// merge token is split back into its constituent characters. Matching
// is by literal equality, not provenance, so an original symbol that
// happens to spell a merge token is split as well; inputs produced by
// Compress on texts without such collisions round-trip exactly.
func Decompress(compressed string, merges []string) string {
	tokens := strings.Split(compressed, " ")
	for n := len(merges) - 1; n >= 0; n-- {
		next := make([]string, 0, len(tokens))
		for _, tok := range tokens {
			if tok == merges[n] {
				for _, r := range tok {
					next = append(next, string(r))
				}
			} else {
				next = append(next, tok)
			}
		}
		tokens = next
	}
	return strings.Join(tokens, "")
}

type pair struct{ a, b string }

// bestPair returns the most frequent adjacent pair. Pairs seen
// earlier in the scan win ties.
func bestPair(tokens []string) (a, b string, ok bool) {
	counts := make(map[pair]int, len(tokens))
	order := make([]pair, 0, len(tokens))

	for i := 0; i+1 < len(tokens); i++ {
		p := pair{tokens[i], tokens[i+1]}
		if counts[p] == 0 {
			order = append(order, p)
		}
		counts[p]++
	}
	if len(order) == 0 {
		return "", "", false
	}

	var best pair
	max := 0
	for _, p := range order {
		if counts[p] > max {
			best, max = p, counts[p]
		}
	}
	return best.a, best.b, true
}

// mergePair rewrites tokens, replacing every non-overlapping
// left-to-right occurrence of (a, b) with the concatenated symbol.
func mergePair(tokens []string, a, b string) []string {
	out := make([]string, 0, len(tokens))
	for i := 0; i < len(tokens); {
		if i+1 < len(tokens) && tokens[i] == a && tokens[i+1] == b {
			out = append(out, a+b)
			i += 2
		} else {
			out = append(out, tokens[i])
			i++
		}
	}
	return out
}
