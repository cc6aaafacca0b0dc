package graph

// UnknownValue is the default for string attributes the catalog omits.
// Numeric attributes default to 0.
const UnknownValue = "Unknown"

// Attributes is the stat line Small World compares. Exactly these five
// fields take part in scoring.
type Attributes struct {
	ATK       int    `json:"atk"`
	DEF       int    `json:"def"`
	Attribute string `json:"attribute"`
	Type      string `json:"type"`
	Level     int    `json:"level"`
}

// Card is a resolved monster: its deck id, display name and attributes.
type Card struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Attributes Attributes `json:"attributes"`
}

// Label is the name used in output lines, falling back to the id.
func (c Card) Label() string {
	if c.Name != "" {
		return c.Name
	}
	return c.ID
}

// Graph holds cards with their precomputed bridge adjacency.
type Graph struct {
	Order []string            // card ids in input order
	Cards map[string]Card     // id -> card
	Adj   map[string][]string // directed: id -> bridge partners, in input order
}

// Build computes the bridge adjacency for cards. Every card becomes a key
// in Adj, even without partners. Cards with a duplicate id after the first
// are ignored.
func Build(cards []Card) *Graph {
	g := &Graph{
		Order: make([]string, 0, len(cards)),
		Cards: make(map[string]Card, len(cards)),
		Adj:   make(map[string][]string, len(cards)),
	}
	for _, c := range cards {
		if _, dup := g.Cards[c.ID]; dup {
			continue
		}
		g.Order = append(g.Order, c.ID)
		g.Cards[c.ID] = c
	}

	for _, id := range g.Order {
		partners := []string{}
		for _, other := range g.Order {
			if id == other {
				continue
			}
			if Bridges(g.Cards[id].Attributes, g.Cards[other].Attributes) {
				partners = append(partners, other)
			}
		}
		g.Adj[id] = partners
	}
	return g
}

// Len returns the number of cards
func (g *Graph) Len() int {
	return len(g.Order)
}

// EdgeCount returns the number of directed bridge edges
func (g *Graph) EdgeCount() int {
	n := 0
	for _, partners := range g.Adj {
		n += len(partners)
	}
	return n
}
