package minecsp

// unionFind is a disjoint-set structure over the dense universe
// 0..n-1, with iterative path compression on find and union by rank.
// It is a transient tool of the component-building pass and is not part
// of the public problem model.
type unionFind struct {
	parent []int
	rank   []uint8
}

func newUnionFind(n int) *unionFind {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &unionFind{
		parent: parent,
		rank:   make([]uint8, n),
	}
}

// find returns the root of x's set. Path compression is two-pass and
// iterative, so stack depth stays constant no matter the board size.
func (u *unionFind) find(x int) int {
	root := x
	for u.parent[root] != root {
		root = u.parent[root]
	}
	for u.parent[x] != root {
		u.parent[x], x = root, u.parent[x]
	}
	return root
}

// union merges the sets containing a and b, attaching the lower-rank
// root under the higher-rank one.
func (u *unionFind) union(a, b int) {
	rootA, rootB := u.find(a), u.find(b)
	if rootA == rootB {
		return
	}
	if u.rank[rootA] < u.rank[rootB] {
		rootA, rootB = rootB, rootA
	}
	u.parent[rootB] = rootA
	if u.rank[rootA] == u.rank[rootB] {
		u.rank[rootA]++
	}
}
