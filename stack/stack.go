package stack

import (
	"strconv"
	"strings"
)

// Stack is a LIFO sequence of integers. The top is the end of the slice.
type Stack struct {
	values []int32
}

func New(values ...int32) *Stack {
	s := &Stack{}
	for _, v := range values {
		s.Push(v)
	}
	return s
}

func (s *Stack) Push(v int32) {
	s.values = append(s.values, v)
}

// Pop removes the top value. ok is false when the stack is empty.
func (s *Stack) Pop() (v int32, ok bool) {
	if len(s.values) == 0 {
		return 0, false
	}
	v = s.values[len(s.values)-1]
	s.values = s.values[:len(s.values)-1]
	return v, true
}

// PopBottom removes up to n values from the bottom, oldest first, and
// returns them in removal order.
func (s *Stack) PopBottom(n int) []int32 {
	if n > len(s.values) {
		n = len(s.values)
	}
	if n <= 0 {
		return []int32{}
	}
	out := make([]int32, n)
	copy(out, s.values[:n])
	s.values = append(s.values[:0], s.values[n:]...)
	return out
}

func (s *Stack) Len() int {
	return len(s.values)
}

// Values returns a copy of the contents, bottom first.
func (s *Stack) Values() []int32 {
	out := make([]int32, len(s.values))
	copy(out, s.values)
	return out
}

func (s *Stack) String() string {
	return FormatValues(s.values)
}

// FormatValues renders values as "[1, 2, 3]".
func FormatValues(values []int32) string {
	var b strings.Builder
	b.WriteString("[")
	for i, v := range values {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.FormatInt(int64(v), 10))
	}
	b.WriteString("]")
	return b.String()
}
