package fix // want `2 functions can be instrumented`

// Stack is a stack of integers.
//
//calltrace:trace
type Stack struct {
	items []int
}

func (s *Stack) Push(v int) {
	s.items = append(s.items, v)
}

func (s *Stack) Pop() (int, bool) {
	if len(s.items) == 0 {
		return 0, false
	}

	v := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]

	return v, true
}

//calltrace:trace(ignore)
func (s *Stack) Len() int {
	return len(s.items)
}

func unmarked() {}
