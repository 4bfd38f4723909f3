package resolve

func (r *resolver) pushScope() {
	r.names = append(r.names, make(map[string]*Local))
}

func (r *resolver) popScope() {
	r.names = r.names[:len(r.names)-1]
}

// lookup finds the innermost local binding of name.
func (r *resolver) lookup(name string) (*Local, bool) {
	for i := len(r.names) - 1; i >= 0; i-- {
		val, ok := r.names[i][name]
		if ok {
			return val, true
		}
	}

	return nil, false
}

func (r *resolver) top() map[string]*Local {
	return r.names[len(r.names)-1]
}
