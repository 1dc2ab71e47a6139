package world

// Blueprint is a crafting rule combining two items into a third. Matching is
// symmetric: (A, B) and (B, A) both satisfy the rule. Uniqueness of pairs is
// not enforced; when several blueprints share a pair, the first registered
// one wins.
type Blueprint struct {
	First  string `json:"first"`
	Second string `json:"second"`
	Result string `json:"result"`
}

// Matches reports whether the unordered pair (a, b) satisfies the blueprint.
func (b Blueprint) Matches(a, c string) bool {
	return (a == b.First && c == b.Second) || (a == b.Second && c == b.First)
}
