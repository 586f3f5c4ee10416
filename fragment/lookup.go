package fragment

// Match selects how names are compared.
type Match int

const (
	// MatchExact compares namespace and local name.
	MatchExact Match = iota
	// MatchLocal compares the local name only.
	MatchLocal
)

func (m Match) String() string {
	switch m {
	case MatchExact:
		return "exact"
	case MatchLocal:
		return "local"
	default:
		return "unknown"
	}
}

func (n Name) Matches(o Name, m Match) bool {
	if n.Local != o.Local {
		return false
	}
	return m == MatchLocal || n.Space == o.Space
}

// Find returns the first child matching n, or nil.
func (f *Fragment) Find(n Name, m Match) *Fragment {
	for _, c := range f.Children {
		if c.Name.Matches(n, m) {
			return c
		}
	}
	return nil
}

// FindAll returns every child matching n in document order.
func (f *Fragment) FindAll(n Name, m Match) []*Fragment {
	var res []*Fragment
	for _, c := range f.Children {
		if c.Name.Matches(n, m) {
			res = append(res, c)
		}
	}
	return res
}

// Indexes returns the positions of the children matching n.
func (f *Fragment) Indexes(n Name, m Match) []int {
	var res []int
	for i, c := range f.Children {
		if c.Name.Matches(n, m) {
			res = append(res, i)
		}
	}
	return res
}

// Walk visits f and its descendants depth first, stopping when fn returns false.
func (f *Fragment) Walk(fn func(*Fragment) bool) bool {
	if !fn(f) {
		return false
	}
	for _, c := range f.Children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}
