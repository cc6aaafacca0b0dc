package graph

import "sort"

// HubCard is a card with many bridge partners
type HubCard struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Partners int    `json:"partners"`
	Chains   int    `json:"chains"` // chains that start by banishing this card
}

// DegreeBucket is one bucket in the partner-count histogram
type DegreeBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// TopologyReport summarizes the bridge graph of a deck
type TopologyReport struct {
	TotalCards       int            `json:"total_cards"`
	TotalBridges     int            `json:"total_bridges"`
	TotalChains      int            `json:"total_chains"`
	NumComponents    int            `json:"num_components"`
	LargestComponent int            `json:"largest_component"`
	IsolatedCount    int            `json:"isolated_count"`
	IsolatedIDs      []string       `json:"isolated_ids"`
	DegreeHistogram  []DegreeBucket `json:"degree_histogram"`
	Hubs             []HubCard      `json:"hubs"`
}

// ComputeTopology analyzes the bridge graph: components, isolated cards,
// partner distribution and the topN best connected cards.
func ComputeTopology(g *Graph, topN int) *TopologyReport {
	if g.Len() == 0 {
		return &TopologyReport{DegreeHistogram: defaultHistogram()}
	}

	uf := NewUnionFind(g.Order)
	for _, id := range g.Order {
		for _, partner := range g.Adj[id] {
			uf.Union(id, partner)
		}
	}
	components := uf.Components()
	largest := 0
	for _, c := range components {
		if len(c) > largest {
			largest = len(c)
		}
	}

	// Isolated: no partners, so never usable with Small World
	var isolated []string
	histogram := defaultHistogram()
	hubs := make([]HubCard, 0, g.Len())
	totalChains := 0
	for _, id := range g.Order {
		degree := len(g.Adj[id])
		if degree == 0 {
			isolated = append(isolated, id)
		}
		histogram[degreeBucket(degree)].Count++

		chains := 0
		for _, partner := range g.Adj[id] {
			chains += len(g.Adj[partner])
		}
		totalChains += chains
		if degree > 0 {
			hubs = append(hubs, HubCard{
				ID:       id,
				Name:     g.Cards[id].Name,
				Partners: degree,
				Chains:   chains,
			})
		}
	}

	isolatedCount := len(isolated)
	if len(isolated) > topN {
		isolated = isolated[:topN]
	}

	sort.SliceStable(hubs, func(i, j int) bool { return hubs[i].Partners > hubs[j].Partners })
	if len(hubs) > topN {
		hubs = hubs[:topN]
	}

	return &TopologyReport{
		TotalCards:       g.Len(),
		TotalBridges:     g.EdgeCount(),
		TotalChains:      totalChains,
		NumComponents:    len(components),
		LargestComponent: largest,
		IsolatedCount:    isolatedCount,
		IsolatedIDs:      isolated,
		DegreeHistogram:  histogram,
		Hubs:             hubs,
	}
}

func defaultHistogram() []DegreeBucket {
	return []DegreeBucket{
		{Label: "0"}, {Label: "1"}, {Label: "2-3"},
		{Label: "4-7"}, {Label: "8-15"}, {Label: "16+"},
	}
}

func degreeBucket(degree int) int {
	switch {
	case degree == 0:
		return 0
	case degree == 1:
		return 1
	case degree <= 3:
		return 2
	case degree <= 7:
		return 3
	case degree <= 15:
		return 4
	default:
		return 5
	}
}
