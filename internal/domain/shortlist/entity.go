// Package shortlist models the wishlist and compare collections: ordered
// sets of product references with idempotent add/remove.
package shortlist

import "errors"

var ErrEmptyProductID = errors.New("product id cannot be empty")

type ProductRef struct {
	ProductID string `json:"productId"`
	Handle    string `json:"handle,omitempty"`
	Title     string `json:"title,omitempty"`
}

type List struct {
	refs []ProductRef
}

func New() *List {
	return &List{}
}

func Restore(refs []ProductRef) *List {
	l := &List{refs: make([]ProductRef, len(refs))}
	copy(l.refs, refs)
	return l
}

// Add appends the reference; adding an already-present product is a no-op.
func (l *List) Add(ref ProductRef) error {
	if ref.ProductID == "" {
		return ErrEmptyProductID
	}

	for _, existing := range l.refs {
		if existing.ProductID == ref.ProductID {
			return nil
		}
	}

	l.refs = append(l.refs, ref)
	return nil
}

// Remove drops the reference; removing an absent product is a no-op.
func (l *List) Remove(productID string) bool {
	for i, ref := range l.refs {
		if ref.ProductID == productID {
			l.refs = append(l.refs[:i], l.refs[i+1:]...)
			return true
		}
	}
	return false
}

func (l *List) Contains(productID string) bool {
	for _, ref := range l.refs {
		if ref.ProductID == productID {
			return true
		}
	}
	return false
}

func (l *List) Refs() []ProductRef {
	snapshot := make([]ProductRef, len(l.refs))
	copy(snapshot, l.refs)
	return snapshot
}

func (l *List) Len() int {
	return len(l.refs)
}
