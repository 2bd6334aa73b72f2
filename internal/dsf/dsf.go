// source: https://git.tartarus.org/simon/puzzles.git/dsf.c

// Package dsf implements a disjoint-set forest over integer indices,
// used to answer "are these two cells already connected" in
// near-constant time.
package dsf

type DSF struct {
	Parent []int
	Sizes  []int
}

func New(n int) *DSF {
	d := &DSF{
		Parent: make([]int, n),
		Sizes:  make([]int, n),
	}
	d.Reset()
	return d
}

// Reset returns every element to its own singleton set.
func (d *DSF) Reset() {
	for i := range d.Parent {
		d.Parent[i] = i
		d.Sizes[i] = 1
	}
}

// Canonify returns the representative element of i's set, compressing
// the path as it goes.
func (d *DSF) Canonify(i int) int {
	root := i
	for d.Parent[root] != root {
		root = d.Parent[root]
	}
	for d.Parent[i] != root {
		d.Parent[i], i = root, d.Parent[i]
	}
	return root
}

// Size returns the number of elements in i's set.
func (d *DSF) Size(i int) int {
	return d.Sizes[d.Canonify(i)]
}

func (d *DSF) Merge(i, j int) {
	ri, rj := d.Canonify(i), d.Canonify(j)
	if ri == rj {
		return
	}
	if d.Sizes[ri] < d.Sizes[rj] {
		ri, rj = rj, ri
	}
	d.Parent[rj] = ri
	d.Sizes[ri] += d.Sizes[rj]
}

func (d *DSF) Connected(i, j int) bool {
	return d.Canonify(i) == d.Canonify(j)
}

// Clone is a deep copy; mutating the copy never affects the original.
func (d *DSF) Clone() *DSF {
	c := &DSF{
		Parent: make([]int, len(d.Parent)),
		Sizes:  make([]int, len(d.Sizes)),
	}
	copy(c.Parent, d.Parent)
	copy(c.Sizes, d.Sizes)
	return c
}
