// Package picker implements the multi-select collection picker: an ordered,
// duplicate-free sequence of item uids that lazily resolves to live items
// through the collection registered for the item type.
//
// Storing uids instead of item pointers keeps a picker stable across
// renames and project reloads. An uid whose item no longer resolves is
// skipped, never an error.
//
// Pickers are not safe for concurrent use; everything here expects the
// single editor thread.
package picker

import (
	"github.com/google/uuid"

	"github.com/mogaika/collection_picker/asset"
)

type Picker[T asset.Item] struct {
	reg  *asset.Registry
	uids []uuid.UUID

	// cache is valid while cacheGen == gen; every mutation bumps gen
	gen      uint64
	cacheGen uint64
	cache    []T

	bound     asset.Collection
	boundOnce bool

	added   []func(T)
	removed []func(T)
	changed []func()
}

func New[T asset.Item](reg *asset.Registry) *Picker[T] {
	return &Picker[T]{reg: reg, gen: 1}
}

func FromItems[T asset.Item](reg *asset.Registry, items ...T) *Picker[T] {
	p := New[T](reg)
	for _, it := range items {
		p.Add(it)
	}
	return p
}

// collection memoizes the registry lookup for the picker's lifetime.
// If the registry's association changes later, call Rebind.
func (p *Picker[T]) collection() asset.Collection {
	if !p.boundOnce {
		p.bound, _ = asset.CollectionFor[T](p.reg)
		p.boundOnce = true
	}
	return p.bound
}

// Rebind drops the memoized collection so the next resolution goes back
// through the registry.
func (p *Picker[T]) Rebind() {
	p.bound = nil
	p.boundOnce = false
	p.invalidate()
}

func (p *Picker[T]) invalidate() { p.gen++ }

func (p *Picker[T]) Count() int { return len(p.uids) }

// Uids returns the stored uid sequence. This is the picker's persisted
// representation.
func (p *Picker[T]) Uids() []uuid.UUID {
	out := make([]uuid.UUID, len(p.uids))
	copy(out, p.uids)
	return out
}

func (p *Picker[T]) indexOfUid(uid uuid.UUID) int {
	for i, u := range p.uids {
		if u == uid {
			return i
		}
	}
	return -1
}

func (p *Picker[T]) Contains(item T) bool { return p.indexOfUid(item.Uid()) >= 0 }

func (p *Picker[T]) IndexOf(item T) int { return p.indexOfUid(item.Uid()) }

// Add appends the item's uid. Adding an item that is already picked is a
// no-op, so duplicates cannot appear through this path.
func (p *Picker[T]) Add(item T) {
	if p.indexOfUid(item.Uid()) >= 0 {
		return
	}
	p.uids = append(p.uids, item.Uid())
	p.invalidate()
	p.emitAdded(item)
	p.emitChanged()
}

// Remove reports whether the item's uid was present and removed.
func (p *Picker[T]) Remove(item T) bool {
	idx := p.indexOfUid(item.Uid())
	if idx < 0 {
		return false
	}
	p.removeIndex(idx)
	p.invalidate()
	p.emitChanged()
	p.emitRemoved(item)
	return true
}

// RemoveAt removes the uid at index. Out-of-range indices are ignored.
// The item is resolved before removal so it can be passed to removed
// listeners; when resolution misses, the uid is still removed but no
// removed event fires.
func (p *Picker[T]) RemoveAt(index int) {
	if index < 0 || index >= len(p.uids) {
		return
	}
	item, resolved := p.resolveUid(p.uids[index])
	p.removeIndex(index)
	p.invalidate()
	p.emitChanged()
	if resolved {
		p.emitRemoved(item)
	}
}

func (p *Picker[T]) removeIndex(index int) {
	p.uids = append(p.uids[:index], p.uids[index+1:]...)
}

// Insert places the item's uid at index without a uniqueness check;
// callers that need Add semantics must dedupe first. Out-of-range indices
// are ignored. No events fire.
func (p *Picker[T]) Insert(index int, item T) {
	if index < 0 || index > len(p.uids) {
		return
	}
	p.uids = append(p.uids, uuid.Nil)
	copy(p.uids[index+1:], p.uids[index:])
	p.uids[index] = item.Uid()
	p.invalidate()
}

// At resolves the uid at index through the bound collection.
func (p *Picker[T]) At(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(p.uids) {
		return zero, false
	}
	return p.resolveUid(p.uids[index])
}

// SetAt replaces the uid at index without a uniqueness check. No events
// fire.
func (p *Picker[T]) SetAt(index int, item T) {
	if index < 0 || index >= len(p.uids) {
		return
	}
	p.uids[index] = item.Uid()
	p.invalidate()
}

// Clear drops all uids. Fires a single changed event, no per-item removed
// events.
func (p *Picker[T]) Clear() {
	p.uids = p.uids[:0]
	p.invalidate()
	p.emitChanged()
}

func (p *Picker[T]) HasAny(items ...T) bool {
	for _, it := range items {
		if p.Contains(it) {
			return true
		}
	}
	return false
}

func (p *Picker[T]) HasAll(items ...T) bool {
	for _, it := range items {
		if !p.Contains(it) {
			return false
		}
	}
	return true
}

func (p *Picker[T]) HasNone(items ...T) bool { return !p.HasAny(items...) }

func (p *Picker[T]) resolveUid(uid uuid.UUID) (T, bool) {
	var zero T
	col := p.collection()
	if col == nil {
		return zero, false
	}
	it, ok := col.ResolveByUid(uid)
	if !ok {
		return zero, false
	}
	typed, ok := it.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// Items returns the picked items in the COLLECTION's order, not the
// picker's stored order. The result is cached until the next mutation.
func (p *Picker[T]) Items() []T {
	if p.cacheGen != p.gen {
		p.cache = p.rebuildCache()
		p.cacheGen = p.gen
	}
	return p.cache
}

func (p *Picker[T]) rebuildCache() []T {
	col := p.collection()
	if col == nil {
		return nil
	}
	out := make([]T, 0, len(p.uids))
	for _, it := range col.Items() {
		if p.indexOfUid(it.Uid()) < 0 {
			continue
		}
		if typed, ok := it.(T); ok {
			out = append(out, typed)
		}
	}
	return out
}

// Union returns a new picker with all uids of p followed by uids of other
// not already present. Neither operand is modified.
func (p *Picker[T]) Union(other *Picker[T]) *Picker[T] {
	out := New[T](p.reg)
	out.uids = append(out.uids, p.uids...)
	for _, uid := range other.uids {
		if out.indexOfUid(uid) < 0 {
			out.uids = append(out.uids, uid)
		}
	}
	return out
}

// Difference returns a new picker with uids of p that are not in other.
func (p *Picker[T]) Difference(other *Picker[T]) *Picker[T] {
	out := New[T](p.reg)
	for _, uid := range p.uids {
		if other.indexOfUid(uid) < 0 {
			out.uids = append(out.uids, uid)
		}
	}
	return out
}

// UnionInPlace adds a single item and returns the receiver. Unlike the
// binary Union, this mutates p.
func (p *Picker[T]) UnionInPlace(item T) *Picker[T] {
	p.Add(item)
	return p
}

// DifferenceInPlace removes a single item and returns the receiver.
// Unlike the binary Difference, this mutates p.
func (p *Picker[T]) DifferenceInPlace(item T) *Picker[T] {
	p.Remove(item)
	return p
}
