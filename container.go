package ggpipe

import "iter"

// Storage describes how a container keeps its processors, and therefore
// what its iteration order means.
type Storage uint8

const (
	// StorageSequence containers are ordered by position; iteration order
	// is insertion order, which is also application order.
	StorageSequence Storage = iota + 1

	// StorageMapping containers are keyed by band label; iteration order
	// is the canonical band order of the container.
	StorageMapping
)

// String returns the storage name.
func (s Storage) String() string {
	switch s {
	case StorageSequence:
		return "Sequence"
	case StorageMapping:
		return "Mapping"
	default:
		return "Unknown"
	}
}

// Container is a read-only collection of processors that is itself a
// processor. K is the key type: int positions for pipelines, string band
// labels for forks.
//
// Len, Contains and At agree with the order All yields. Optional operations
// (Index, Last) return an error wrapping ErrUnsupported when a container
// does not implement them.
type Container[K comparable] interface {
	Processor

	// All yields key/processor pairs in canonical order. Each call starts a
	// fresh sequence.
	All() iter.Seq2[K, Processor]

	// Len returns the number of stored processors.
	Len() int

	// Contains reports whether p itself (not a key) is stored.
	Contains(p Processor) bool

	// At returns the processor stored under k. Keyed containers with a
	// default factory create and store one on a miss.
	At(k K) (Processor, error)

	// Get returns the processor stored under k, or def. It never fails and
	// never stores anything.
	Get(k K, def Processor) Processor

	// Index returns the key of the first occurrence of p.
	Index(p Processor) (K, error)

	// Last returns the processor at the end of the canonical order.
	Last() (Processor, error)

	// Storage reports the canonical storage shape.
	Storage() Storage
}

// MutableContainer is a Container that can be changed in place.
//
// Set and Delete are always implemented. Append, Extend and Update are
// optional and return an error wrapping ErrUnsupported when they do not
// apply. Setting a nil processor stores a fresh NoOp.
type MutableContainer[K comparable] interface {
	Container[K]

	Set(k K, p Processor) error
	Delete(k K) error

	Append(ps ...Processor) error
	Extend(ps iter.Seq[Processor]) error
	Update(entries map[K]Processor) error
}
