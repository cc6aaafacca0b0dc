package graph

// AttributeKeys are the compared fields, in scoring order.
var AttributeKeys = []string{"ATK", "DEF", "Attribute", "Type", "Level"}

// Score counts the attribute keys on which a and b hold equal values.
// Exact equality, unweighted: the result is always in [0, 5].
func Score(a, b Attributes) int {
	score := 0
	for _, eq := range matches(a, b) {
		if eq {
			score++
		}
	}
	return score
}

// Bridges reports whether a bridges to b: exactly one shared attribute.
func Bridges(a, b Attributes) bool {
	return Score(a, b) == 1
}

// SharedKeys returns the names of the attribute keys a and b agree on.
func SharedKeys(a, b Attributes) []string {
	var keys []string
	for i, eq := range matches(a, b) {
		if eq {
			keys = append(keys, AttributeKeys[i])
		}
	}
	return keys
}

func matches(a, b Attributes) [5]bool {
	return [5]bool{
		a.ATK == b.ATK,
		a.DEF == b.DEF,
		a.Attribute == b.Attribute,
		a.Type == b.Type,
		a.Level == b.Level,
	}
}
