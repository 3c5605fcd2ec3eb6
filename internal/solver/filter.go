package solver

// Filter returns the candidates allowed by c that are not in tried,
// preserving input order. The input slice is not modified.
func Filter(candidates []string, c *Constraints, tried []string) []string {
	seen := make(map[string]struct{}, len(tried))
	for _, w := range tried {
		seen[w] = struct{}{}
	}
	out := make([]string, 0, len(candidates))
	for _, w := range candidates {
		if _, ok := seen[w]; ok {
			continue
		}
		if c.Allows(w) {
			out = append(out, w)
		}
	}
	return out
}
