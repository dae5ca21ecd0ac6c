package textutil

// SequenceSimilarity returns the ratio of matching character runs between a
// and b, in [0,1]. The ratio is 2*M/T where M is the total length of the
// matching blocks (longest common run first, then recursing into the
// unmatched prefixes and suffixes) and T is the combined length of both
// strings. Deterministic for identical inputs; two empty strings yield 1.
func SequenceSimilarity(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 1
	}
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}
	matched := matchingRunLength(ra, rb)
	return 2 * float64(matched) / float64(total)
}

func matchingRunLength(a, b []rune) int {
	ai, bi, n := longestCommonRun(a, b)
	if n == 0 {
		return 0
	}
	matched := n
	matched += matchingRunLength(a[:ai], b[:bi])
	matched += matchingRunLength(a[ai+n:], b[bi+n:])
	return matched
}

// longestCommonRun locates the longest common substring of a and b, breaking
// ties toward the earliest position in a, then in b.
func longestCommonRun(a, b []rune) (aStart, bStart, length int) {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for i := 0; i < len(a); i++ {
		for j := 0; j < len(b); j++ {
			if a[i] != b[j] {
				cur[j+1] = 0
				continue
			}
			cur[j+1] = prev[j] + 1
			if cur[j+1] > length {
				length = cur[j+1]
				aStart = i - length + 1
				bStart = j - length + 1
			}
		}
		prev, cur = cur, prev
		for k := range cur {
			cur[k] = 0
		}
	}
	return aStart, bStart, length
}
