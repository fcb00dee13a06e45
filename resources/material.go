package resources

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/mogaika/collection_picker/asset"
	"github.com/mogaika/collection_picker/project"
)

const KIND_MATERIAL = "material"

type Material struct {
	asset.ItemBase

	Shader   string
	TwoSided bool
}

func NewMaterial(name string, shader string) *Material {
	return &Material{
		ItemBase: asset.NewItemBase(name),
		Shader:   shader,
	}
}

func (m *Material) Kind() string { return KIND_MATERIAL }

func (m *Material) Clone() asset.Item {
	clone := *m
	return &clone
}

func (m *Material) Props() map[string]string {
	return map[string]string{
		"shader":   m.Shader,
		"twosided": strconv.FormatBool(m.TwoSided),
	}
}

func init() {
	project.RegisterKind(KIND_MATERIAL, func(base asset.ItemBase, props map[string]string) (asset.Item, error) {
		twoSided, err := strconv.ParseBool(props["twosided"])
		if err != nil {
			return nil, errors.Wrapf(err, "Bad twosided %q", props["twosided"])
		}
		return &Material{
			ItemBase: base,
			Shader:   props["shader"],
			TwoSided: twoSided,
		}, nil
	})
}
