// Package query implements geometric traversals over a *tree.Tree using
// only its public structural accessors — the external-collaborator layer
// kept outside the tree core.
package query

// Adapted from CommonB2GrowableStack.go's B2GrowableStack, generalized
// with a type parameter so traversals don't have to type-assert every
// Pop.
type stack[T any] struct {
	top  *stackElement[T]
	size int
}

type stackElement[T any] struct {
	value T
	next  *stackElement[T]
}

func (s *stack[T]) push(v T) {
	s.top = &stackElement[T]{value: v, next: s.top}
	s.size++
}

func (s *stack[T]) pop() T {
	v := s.top.value
	s.top = s.top.next
	s.size--
	return v
}

func (s *stack[T]) empty() bool {
	return s.size == 0
}
