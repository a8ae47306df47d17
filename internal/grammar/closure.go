package grammar

// Closure returns every symbol reachable from name through satisfies edges,
// excluding name itself, in breadth-first declaration order. Each symbol
// appears once. Self edges and cycles terminate.
func (r *Registry) Closure(name string) ([]string, error) {
	i, ok := r.index[name]
	if !ok {
		return nil, UnknownSymbolError{Name: name}
	}

	var out []string
	seen := map[string]bool{name: true}
	queue := append([]string(nil), r.symbols[i].Satisfies...)
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if seen[next] {
			continue
		}
		seen[next] = true
		out = append(out, next)
		queue = append(queue, r.symbols[r.index[next]].Satisfies...)
	}
	return out, nil
}

// Satisfies reports whether a value of symbol from can stand in for symbol to.
// Every symbol satisfies itself.
func (r *Registry) Satisfies(from, to string) (bool, error) {
	if !r.Contains(to) {
		return false, UnknownSymbolError{Name: to}
	}
	if from == to {
		return r.Contains(from), nil
	}
	closure, err := r.Closure(from)
	if err != nil {
		return false, err
	}
	for _, name := range closure {
		if name == to {
			return true, nil
		}
	}
	return false, nil
}

// CheckCycles reports a CycleError when name can reach itself through at
// least one other symbol. A direct self edge is permitted. The reported path
// begins and ends with name.
func (r *Registry) CheckCycles(name string) error {
	if !r.Contains(name) {
		return UnknownSymbolError{Name: name}
	}

	visited := make(map[string]bool)
	path := []string{name}

	var walk func(string) bool
	walk = func(cur string) bool {
		for _, next := range r.symbols[r.index[cur]].Satisfies {
			switch {
			case next == cur:
				continue
			case next == name:
				path = append(path, next)
				return true
			case visited[next]:
				continue
			}
			visited[next] = true
			path = append(path, next)
			if walk(next) {
				return true
			}
			path = path[:len(path)-1]
		}
		return false
	}

	if walk(name) {
		return CycleError{Path: path}
	}
	return nil
}

// CheckAll runs CheckCycles for every symbol in declaration order and returns
// the first failure.
func (r *Registry) CheckAll() error {
	for _, sym := range r.symbols {
		if err := r.CheckCycles(sym.Name); err != nil {
			return err
		}
	}
	return nil
}
