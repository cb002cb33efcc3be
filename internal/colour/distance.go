package colour

import "math"

// WorstPair scans the palette for the two most similar colours, skipping the
// transparent sentinel at index 0. It returns the indices of the closest
// pair and their Euclidean distance in RGB space (the square root is applied
// once, at the end); on a tie the first pair encountered in index order wins.
//
// The metric is raw RGB distance with no gamma or perceptual weighting: it
// is a cheap distinguishability proxy for an offline quality check, not a
// perceptual difference. The scan is O(n^2) over at most a few hundred
// entries, which is fine for a one-shot diagnostic.
func WorstPair(p Palette) (indexA, indexB int, distance float64) {
	indexA, indexB = -1, -1
	best := math.Inf(1)

	for i := 1; i < len(p); i++ {
		for j := i + 1; j < len(p); j++ {
			dr := p[i].Colour.Red() - p[j].Colour.Red()
			dg := p[i].Colour.Green() - p[j].Colour.Green()
			db := p[i].Colour.Blue() - p[j].Colour.Blue()

			d := dr*dr + dg*dg + db*db
			if d < best {
				best = d
				indexA, indexB = i, j
			}
		}
	}

	if indexA < 0 {
		return -1, -1, 0
	}
	return indexA, indexB, math.Sqrt(best)
}
