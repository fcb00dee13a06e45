package resources

import (
	"strconv"

	"github.com/pkg/errors"

	"github.com/mogaika/collection_picker/asset"
	"github.com/mogaika/collection_picker/project"
)

const KIND_TEXTURE = "texture"

type Texture struct {
	asset.ItemBase

	Width  int
	Height int
	Flags  uint32
}

func NewTexture(name string, width, height int) *Texture {
	return &Texture{
		ItemBase: asset.NewItemBase(name),
		Width:    width,
		Height:   height,
	}
}

func (t *Texture) Kind() string { return KIND_TEXTURE }

func (t *Texture) Clone() asset.Item {
	clone := *t
	return &clone
}

func (t *Texture) Props() map[string]string {
	return map[string]string{
		"width":  strconv.Itoa(t.Width),
		"height": strconv.Itoa(t.Height),
		"flags":  strconv.FormatUint(uint64(t.Flags), 16),
	}
}

func restoreTexture(base asset.ItemBase, props map[string]string) (asset.Item, error) {
	t := &Texture{ItemBase: base}

	var err error
	if t.Width, err = strconv.Atoi(props["width"]); err != nil {
		return nil, errors.Wrapf(err, "Bad width %q", props["width"])
	}
	if t.Height, err = strconv.Atoi(props["height"]); err != nil {
		return nil, errors.Wrapf(err, "Bad height %q", props["height"])
	}
	flags, err := strconv.ParseUint(props["flags"], 16, 32)
	if err != nil {
		return nil, errors.Wrapf(err, "Bad flags %q", props["flags"])
	}
	t.Flags = uint32(flags)

	return t, nil
}

func init() {
	project.RegisterKind(KIND_TEXTURE, restoreTexture)
}
