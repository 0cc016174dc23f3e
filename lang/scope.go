package lang

// scope maps a variable name to its bound value. A nil value means the
// variable is declared but not yet assigned.
type scope map[string]*string

// scopeStack is an ordered sequence of scopes: bottom is the global scope,
// top is the innermost active block. The global scope is never popped.
type scopeStack []scope

func newScopeStack() scopeStack {
	return scopeStack{scope{}}
}

func (s *scopeStack) push() {
	*s = append(*s, scope{})
}

func (s *scopeStack) pop() {
	if len(*s) > 1 {
		*s = (*s)[:len(*s)-1]
	}
}

// current returns the innermost scope.
func (s scopeStack) current() scope {
	return s[len(s)-1]
}

// lookup searches the stack from innermost to outermost. found reports
// whether the name is declared anywhere; value is nil for a declared but
// unassigned variable.
func (s scopeStack) lookup(name string) (value *string, found bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if v, ok := s[i][name]; ok {
			return v, true
		}
	}

	return nil, false
}

// assign binds value to the nearest declaration of name, searching from
// innermost to outermost. It reports whether a declaration was found.
func (s scopeStack) assign(name, value string) bool {
	for i := len(s) - 1; i >= 0; i-- {
		if _, ok := s[i][name]; ok {
			s[i][name] = &value

			return true
		}
	}

	return false
}
