package graph

// UnionFind implements union-find with path compression and union by size.
// Components come back in the order their first member was added.
type UnionFind struct {
	parent map[string]string
	size   map[string]int
	order  []string
}

// NewUnionFind creates a new UnionFind where each id is its own component
func NewUnionFind(ids []string) *UnionFind {
	uf := &UnionFind{
		parent: make(map[string]string, len(ids)),
		size:   make(map[string]int, len(ids)),
	}
	for _, id := range ids {
		if _, ok := uf.parent[id]; ok {
			continue
		}
		uf.parent[id] = id
		uf.size[id] = 1
		uf.order = append(uf.order, id)
	}
	return uf
}

// Find returns the root of the component containing id
func (uf *UnionFind) Find(id string) string {
	parent, ok := uf.parent[id]
	if !ok || parent == id {
		return id
	}
	root := uf.Find(parent)
	uf.parent[id] = root
	return root
}

// Union merges the components containing a and b. Returns true if they were separate.
func (uf *UnionFind) Union(a, b string) bool {
	rootA := uf.Find(a)
	rootB := uf.Find(b)
	if rootA == rootB {
		return false
	}
	if uf.size[rootA] < uf.size[rootB] {
		rootA, rootB = rootB, rootA
	}
	uf.parent[rootB] = rootA
	uf.size[rootA] += uf.size[rootB]
	return true
}

// Components returns all connected components as slices of ids
func (uf *UnionFind) Components() [][]string {
	index := make(map[string]int)
	var result [][]string
	for _, id := range uf.order {
		root := uf.Find(id)
		i, ok := index[root]
		if !ok {
			i = len(result)
			index[root] = i
			result = append(result, nil)
		}
		result[i] = append(result[i], id)
	}
	return result
}
