package testutil

import (
	"fmt"
	"sync/atomic"
)

// SeqIDs is a deterministic IDSource: prefix-1, prefix-2, ...
type SeqIDs struct {
	prefix string
	n      atomic.Int64
}

func NewSeqIDs(prefix string) *SeqIDs {
	return &SeqIDs{prefix: prefix}
}

func (s *SeqIDs) NewID() string {
	return fmt.Sprintf("%s-%d", s.prefix, s.n.Add(1))
}

// Issued returns how many IDs have been handed out.
func (s *SeqIDs) Issued() int {
	return int(s.n.Load())
}
