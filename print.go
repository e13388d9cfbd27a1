package avltree

import (
	"fmt"
	"io"
	"strings"

	"github.com/ajwerner/avltree/internal/arena"
)

// String returns a string description of the tree. The format is
// similar to the https://en.wikipedia.org/wiki/Newick_format.
func (m *Map[K, V]) String() string {
	if m.Len() == 0 {
		return ";"
	}
	var b strings.Builder
	m.writeString(&b, m.t.Root())
	return b.String()
}

func (m *Map[K, V]) writeString(b *strings.Builder, h arena.Handle) {
	lt, gt := m.a.Less(h), m.a.Greater(h)
	if lt != arena.Null || gt != arena.Null {
		b.WriteString("(")
		if lt != arena.Null {
			m.writeString(b, lt)
		}
		b.WriteString(")")
	}
	fmt.Fprintf(b, "%v", m.a.Key(h))
	if lt != arena.Null || gt != arena.Null {
		b.WriteString("(")
		if gt != arena.Null {
			m.writeString(b, gt)
		}
		b.WriteString(")")
	}
}

// to control the print routine
type branch int

const (
	root branch = iota
	less
	greater
)

// Print writes an ASCII drawing of the tree to w, greatest key at the top.
// Each node shows its key, value and balance factor.
func (m *Map[K, V]) Print(w io.Writer) error {
	p := printer[K, V]{m: m, w: w}
	p.node(m.t.Root(), "", root)
	return p.err
}

type printer[K, V any] struct {
	m   *Map[K, V]
	w   io.Writer
	err error
}

func (p *printer[K, V]) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer[K, V]) node(h arena.Handle, prefix string, br branch) {
	if h == arena.Null {
		return
	}
	a := &p.m.a
	if g := a.Greater(h); g != arena.Null {
		t := "       "
		if br == less {
			t = "|      "
		}
		p.node(g, prefix+t, greater)
	}
	switch br {
	case root:
		p.printf("%s|------+ ", prefix)
	case less:
		p.printf("%s\\------+ ", prefix)
	case greater:
		p.printf("%s/------+ ", prefix)
	}
	p.printf("%v → %v %+d\n", a.Key(h), a.Value(h), a.BalanceFactor(h))
	if l := a.Less(h); l != arena.Null {
		t := "       "
		if br == greater {
			t = "|      "
		}
		p.node(l, prefix+t, less)
	}
}
