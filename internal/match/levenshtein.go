package match

// Levenshtein returns the minimum number of single-byte insertions,
// deletions and substitutions turning a into b.
//
// It keeps two rows of the distance matrix, sized by the shorter input.
func Levenshtein(a, b string) int {
	switch {
	case a == b:
		return 0
	case a == "":
		return len(b)
	case b == "":
		return len(a)
	}

	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			substitution := prev[i-1]
			if a[i-1] != b[j-1] {
				substitution++
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, substitution)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// Similarity maps the edit distance of a and b to [0, 1], where 1 means the
// strings are equal: 1 - distance / max(len(a), len(b)).
func Similarity(a, b string) float64 {
	if a == "" && b == "" {
		return 1.0
	}

	return 1.0 - float64(Levenshtein(a, b))/float64(max(len(a), len(b)))
}
