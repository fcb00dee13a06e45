package asset

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Item is anything that can live in a Collection. The uid is assigned once
// at creation and survives renames, so references stored outside the
// collection stay valid.
type Item interface {
	Uid() uuid.UUID
	Name() string
	RegenerateUid()
}

// Cloner is implemented by items that support duplication.
type Cloner interface {
	Item
	Clone() Item
}

type ItemBase struct {
	uid  uuid.UUID
	name string
}

func NewItemBase(name string) ItemBase {
	uid, err := uuid.NewRandom()
	if err != nil {
		panic(err)
	}
	return ItemBase{uid: uid, name: name}
}

// RestoreItemBase is used when loading items from a project file, where
// the uid is already known.
func RestoreItemBase(uid uuid.UUID, name string) ItemBase {
	return ItemBase{uid: uid, name: name}
}

func (b *ItemBase) Uid() uuid.UUID { return b.uid }

func (b *ItemBase) Name() string { return b.name }

func (b *ItemBase) Rename(name string) { b.name = name }

func (b *ItemBase) RegenerateUid() {
	uid, err := uuid.NewRandom()
	if err != nil {
		panic(err)
	}
	b.uid = uid
}

// Collection is the authoritative ordered container of items of one kind.
// Items() order is the collection's own and defines display order for
// everything derived from it.
type Collection interface {
	Items() []Item
	ResolveByUid(uid uuid.UUID) (Item, bool)
}

// Library is the in-memory Collection used by the editor tooling.
type Library struct {
	items []Item
	byUid map[uuid.UUID]Item
}

func NewLibrary() *Library {
	return &Library{
		byUid: make(map[uuid.UUID]Item),
	}
}

func (l *Library) Add(it Item) error {
	if _, exists := l.byUid[it.Uid()]; exists {
		return errors.Errorf("Duplicate item uid %v (%q)", it.Uid(), it.Name())
	}
	l.items = append(l.items, it)
	l.byUid[it.Uid()] = it
	return nil
}

func (l *Library) Remove(uid uuid.UUID) bool {
	if _, exists := l.byUid[uid]; !exists {
		return false
	}
	delete(l.byUid, uid)
	for i, it := range l.items {
		if it.Uid() == uid {
			l.items = append(l.items[:i], l.items[i+1:]...)
			break
		}
	}
	return true
}

func (l *Library) Len() int { return len(l.items) }

func (l *Library) Items() []Item { return l.items }

func (l *Library) ResolveByUid(uid uuid.UUID) (Item, bool) {
	it, ok := l.byUid[uid]
	return it, ok
}

// Duplicate clones the item with the given uid and adds the clone to the
// library under a fresh uid. This is the only operation here that can fail
// hard: refusing is better than silently sharing an identifier.
func (l *Library) Duplicate(uid uuid.UUID) (Item, error) {
	it, ok := l.byUid[uid]
	if !ok {
		return nil, errors.Errorf("No item with uid %v", uid)
	}
	cloner, ok := it.(Cloner)
	if !ok {
		return nil, errors.Errorf("Item %q does not support duplication", it.Name())
	}
	clone := cloner.Clone()
	clone.RegenerateUid()
	if err := l.Add(clone); err != nil {
		return nil, errors.Wrapf(err, "Failed to add duplicate of %q", it.Name())
	}
	return clone, nil
}

func (l *Library) SortByName() {
	sort.Slice(l.items, func(i, j int) bool {
		cmp := strings.Compare(l.items[i].Name(), l.items[j].Name())
		if cmp != 0 {
			return cmp < 0
		}
		return strings.Compare(l.items[i].Uid().String(), l.items[j].Uid().String()) < 0
	})
}
