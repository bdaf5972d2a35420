package term

// ConsCell is the two-word (head, tail) payload a CONS term's handle
// refers to. The struct lives here since it is part of the term shape;
// allocating and dereferencing one needs a heap.Heap, so that capability
// lives in package list instead.
type ConsCell struct {
	Head, Tail LTerm
}
