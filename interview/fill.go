// Package interview generates scripted interview question sequences: AI-backed
// generation with deterministic structure repair, cyclic gap filling, and a
// static question bank as the no-AI last resort.
package interview

import "github.com/Chiru-Abhiram/mock-interview-ai/types"

// CyclicFill pads a non-empty source pool to exactly target entries by cloning
// source questions in order, wrapping around as needed. Entries produced from a
// wrap-around carry the given suffix appended to their context so consumers can
// tell genuine content from padding. Clones are independent copies; the output
// is fully determined by the source and target.
func CyclicFill(src []types.Question, target int, suffix string) []types.Question {
	if len(src) == 0 || target <= 0 {
		return []types.Question{}
	}

	out := make([]types.Question, 0, target)
	for i := 0; i < target; i++ {
		q := src[i%len(src)].Clone()
		if i >= len(src) {
			q.Context += suffix
		}
		out = append(out, q)
	}
	return out
}
