package bus

// matchTopic reports whether pattern matches topic under the runtime's glob
// dialect: '?' matches exactly one byte, '*' matches zero or more bytes, no
// other metacharacters, case-sensitive, anchored to the full string (a
// pattern matches only if it accounts for every byte of topic).
//
// This generalizes the teacher's matchesTopic (modules/eventbus/memory.go),
// which only supported a trailing "prefix*" suffix-wildcard, to full '?'/'*'
// glob matching using the classic two-pointer wildcard algorithm.
func matchTopic(pattern, topic string) bool {
	p, t := 0, 0
	starIdx, matchIdx := -1, 0

	for t < len(topic) {
		switch {
		case p < len(pattern) && (pattern[p] == '?' || pattern[p] == topic[t]):
			p++
			t++
		case p < len(pattern) && pattern[p] == '*':
			starIdx = p
			matchIdx = t
			p++
		case starIdx != -1:
			p = starIdx + 1
			matchIdx++
			t = matchIdx
		default:
			return false
		}
	}

	for p < len(pattern) && pattern[p] == '*' {
		p++
	}
	return p == len(pattern)
}
