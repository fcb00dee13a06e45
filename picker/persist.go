package picker

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/mogaika/collection_picker/asset"
)

// View is the type-erased read side of a picker, for inspection tooling
// that does not know the item type.
type View interface {
	Count() int
	Uids() []uuid.UUID
	ResolvedItems() []asset.Item
}

func (p *Picker[T]) ResolvedItems() []asset.Item {
	items := p.Items()
	out := make([]asset.Item, len(items))
	for i, it := range items {
		out[i] = it
	}
	return out
}

// SetUids replaces the stored sequence, used when restoring a picker from
// a project file. Fires a single changed event.
func (p *Picker[T]) SetUids(uids []uuid.UUID) {
	p.uids = append(p.uids[:0], uids...)
	p.invalidate()
	p.emitChanged()
}

// Only the uid sequence is persisted; resolved items are rebuilt on load.
func (p *Picker[T]) MarshalYAML() (interface{}, error) {
	ids := make([]string, len(p.uids))
	for i, uid := range p.uids {
		ids[i] = uid.String()
	}
	return ids, nil
}

func (p *Picker[T]) UnmarshalYAML(value *yaml.Node) error {
	var ids []string
	if err := value.Decode(&ids); err != nil {
		return err
	}
	uids := make([]uuid.UUID, 0, len(ids))
	for _, s := range ids {
		uid, err := uuid.Parse(s)
		if err != nil {
			return errors.Wrapf(err, "Failed to parse uid %q", s)
		}
		uids = append(uids, uid)
	}
	p.uids = uids
	p.invalidate()
	return nil
}
