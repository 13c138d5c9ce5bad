package emv

import "github.com/arborist-go/steinertree/core"

// backPointer is b[X][v] = (u, X') (spec.md §3, glossary). u == -1 marks an
// unset cell.
type backPointer struct {
	u int32
	x uint32
}

// table holds f[X][v] and, when tracking is enabled, b[X][v], both laid out
// subset-major (X*n + v) per spec.md §3.
type table struct {
	n, k      int
	f         []int64
	b         []backPointer // nil when solution tracking is off
	trackSoln bool
}

func newTable(n, k int, trackSoln bool) *table {
	size := (1 << uint(k)) * n
	f := make([]int64, size)
	for i := range f {
		f[i] = core.Inf
	}
	var b []backPointer
	if trackSoln {
		b = make([]backPointer, size)
		for i := range b {
			b[i].u = -1
		}
	}
	return &table{n: n, k: k, f: f, b: b, trackSoln: trackSoln}
}

func (t *table) index(x uint32, v int) int { return int(x)*t.n + v }

func (t *table) F(x uint32, v int) int64 { return t.f[t.index(x, v)] }

func (t *table) setF(x uint32, v int, val int64) { t.f[t.index(x, v)] = val }

// B returns the back-pointer at (x, v); ok is false if tracking is off or
// the cell was never written.
func (t *table) B(x uint32, v int) (u int, xp uint32, ok bool) {
	if !t.trackSoln {
		return 0, 0, false
	}
	bp := t.b[t.index(x, v)]
	if bp.u < 0 {
		return 0, 0, false
	}
	return int(bp.u), bp.x, true
}

func (t *table) setB(x uint32, v, u int, xp uint32) {
	if t.trackSoln {
		t.b[t.index(x, v)] = backPointer{u: int32(u), x: xp}
	}
}
