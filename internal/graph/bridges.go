package graph

import "fmt"

// Bridge is a directed edge between two cards sharing exactly one attribute
type Bridge struct {
	SourceID  string `json:"source_id"`
	TargetID  string `json:"target_id"`
	SharedKey string `json:"shared_key"`
}

// Chain is a Small World line: banish X from hand, reveal Y from the deck,
// add Z to the hand.
type Chain struct {
	Banish Card `json:"banish"`
	Reveal Card `json:"reveal"`
	Add    Card `json:"add"`
}

// String renders the chain in the output file format
func (c Chain) String() string {
	return fmt.Sprintf("Banish %s ---> Reveal %s ---> Add %s",
		c.Banish.Label(), c.Reveal.Label(), c.Add.Label())
}

// Bridges lists every directed bridge edge in adjacency order.
func (g *Graph) Bridges() []Bridge {
	var out []Bridge
	for _, id := range g.Order {
		for _, partner := range g.Adj[id] {
			shared := SharedKeys(g.Cards[id].Attributes, g.Cards[partner].Attributes)
			key := ""
			if len(shared) == 1 {
				key = shared[0]
			}
			out = append(out, Bridge{SourceID: id, TargetID: partner, SharedKey: key})
		}
	}
	return out
}

// Chains enumerates every length-2 path X -> Y -> Z through the bridge
// relation, in card order then partner order. Z may equal X: bridges are
// symmetric, so every edge yields a chain back to its own source. No
// deduplication is done.
func (g *Graph) Chains() []Chain {
	var chains []Chain
	for _, x := range g.Order {
		for _, y := range g.Adj[x] {
			for _, z := range g.Adj[y] {
				chains = append(chains, Chain{
					Banish: g.Cards[x],
					Reveal: g.Cards[y],
					Add:    g.Cards[z],
				})
			}
		}
	}
	return chains
}

// Lines renders chains in output file format
func Lines(chains []Chain) []string {
	lines := make([]string, len(chains))
	for i, c := range chains {
		lines[i] = c.String()
	}
	return lines
}
