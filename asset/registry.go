package asset

import (
	"reflect"

	"github.com/pkg/errors"
)

// Registry maps an item type to the collection that owns items of that
// type. There is one registry per editor process.
type Registry struct {
	collections map[reflect.Type]Collection
}

func NewRegistry() *Registry {
	return &Registry{
		collections: make(map[reflect.Type]Collection),
	}
}

func (r *Registry) RegisterCollection(t reflect.Type, c Collection) error {
	if _, exists := r.collections[t]; exists {
		return errors.Errorf("Collection already registered for type %v", t)
	}
	r.collections[t] = c
	return nil
}

func (r *Registry) CollectionForType(t reflect.Type) (Collection, bool) {
	c, ok := r.collections[t]
	return c, ok
}

func TypeOf[T Item]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func Register[T Item](r *Registry, c Collection) error {
	return r.RegisterCollection(TypeOf[T](), c)
}

func CollectionFor[T Item](r *Registry) (Collection, bool) {
	return r.CollectionForType(TypeOf[T]())
}
