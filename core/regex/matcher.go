package regex

import (
	"github.com/emirpasic/gods/sets/hashset"
)

// Matcher is a built, immutable regex matcher: an NFA plus its eagerly
// computed epsilon-closure cache. Once New returns, a Matcher has no
// further mutable state and is safe to share across goroutines without
// synchronization.
type Matcher struct {
	nfa      *NFA
	closures [][]int
}

// New builds a Matcher from a pattern string. The epsilon-closure cache
// is populated before New returns, so a *Matcher can be handed to
// multiple goroutines the moment it's constructed.
func New(pattern string) (*Matcher, error) {
	atoms, err := Build(pattern)
	if err != nil {
		return nil, err
	}
	nfa, err := buildNFA(atoms)
	if err != nil {
		return nil, invalid(pattern, err.Error())
	}
	m := &Matcher{nfa: nfa}
	m.closures = make([][]int, len(nfa.States))
	for i := range nfa.States {
		m.closures[i] = m.closureOf(i)
	}
	return m, nil
}

// closureOf computes the epsilon closure of state i by following Split
// branches only; the visited set guards against cycles from Star/Plus
// back-edges.
func (m *Matcher) closureOf(i int) []int {
	seen := hashset.New()
	var out []int
	var walk func(idx int)
	walk = func(idx int) {
		if seen.Contains(idx) {
			return
		}
		seen.Add(idx)
		out = append(out, idx)
		st := m.nfa.States[idx]
		if st.Kind != StateSplit {
			return
		}
		if st.Left != nil {
			walk(*st.Left)
		}
		if st.Right != nil {
			walk(*st.Right)
		}
	}
	walk(i)
	return out
}

// Matches reports whether the entire input is consumed by a walk ending
// in at least one Accept state. Matching never fails: on malformed input
// it simply reports false.
func (m *Matcher) Matches(input string) bool {
	active := hashset.New()
	for _, s := range m.closures[m.nfa.Start] {
		active.Add(s)
	}
	for _, r := range input {
		next := hashset.New()
		for _, v := range active.Values() {
			s := v.(int)
			st := m.nfa.States[s]
			if st.Kind != StateTransition || st.Output == nil {
				continue
			}
			if !st.Cond.accepts(r) {
				continue
			}
			for _, o := range m.closures[*st.Output] {
				next.Add(o)
			}
		}
		active = next
		if active.Empty() {
			return false
		}
	}
	for _, v := range active.Values() {
		if m.nfa.States[v.(int)].Kind == StateAccept {
			return true
		}
	}
	return false
}

// Match is the predicate surface callers outside this package depend on.
type Match interface {
	Matches(s string) bool
}

var _ Match = (*Matcher)(nil)
