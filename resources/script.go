package resources

import (
	"github.com/mogaika/collection_picker/asset"
	"github.com/mogaika/collection_picker/project"
)

const KIND_SCRIPT = "script"

type Script struct {
	asset.ItemBase

	EntryPoint string
	Source     string
}

func NewScript(name string, entryPoint string) *Script {
	return &Script{
		ItemBase:   asset.NewItemBase(name),
		EntryPoint: entryPoint,
	}
}

func (s *Script) Kind() string { return KIND_SCRIPT }

func (s *Script) Clone() asset.Item {
	clone := *s
	return &clone
}

func (s *Script) Props() map[string]string {
	return map[string]string{
		"entrypoint": s.EntryPoint,
		"source":     s.Source,
	}
}

func init() {
	project.RegisterKind(KIND_SCRIPT, func(base asset.ItemBase, props map[string]string) (asset.Item, error) {
		return &Script{
			ItemBase:   base,
			EntryPoint: props["entrypoint"],
			Source:     props["source"],
		}, nil
	})
}
