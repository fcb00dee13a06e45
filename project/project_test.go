package project_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/mogaika/collection_picker/asset"
	"github.com/mogaika/collection_picker/config"
	"github.com/mogaika/collection_picker/project"
	"github.com/mogaika/collection_picker/resources"
)

func buildProject(t *testing.T) (*project.Project, *resources.Texture, *resources.Texture) {
	lib := asset.NewLibrary()
	grass := resources.NewTexture("grass", 256, 256)
	grass.Flags = 0x5d0000
	rock := resources.NewTexture("rock", 128, 128)
	for _, it := range []*resources.Texture{grass, rock} {
		if err := lib.Add(it); err != nil {
			t.Fatal(err)
		}
	}

	p := project.New()
	p.Collections["textures"] = lib
	p.Kinds["textures"] = resources.KIND_TEXTURE
	p.Pickers["level"] = project.PickerState{
		Collection: "textures",
		Uids:       []uuid.UUID{rock.Uid(), grass.Uid()},
	}
	return p, grass, rock
}

func TestMarshalParseRoundTrip(t *testing.T) {
	p, grass, rock := buildProject(t)

	data, err := p.Marshal()
	if err != nil {
		t.Fatal(err)
	}

	loaded, err := project.Parse(data)
	if err != nil {
		t.Fatal(err)
	}

	lib, ok := loaded.Collections["textures"]
	if !ok {
		t.Fatal("textures collection missing after round trip")
	}
	if loaded.Kinds["textures"] != resources.KIND_TEXTURE {
		t.Errorf("kind %q; expected %q", loaded.Kinds["textures"], resources.KIND_TEXTURE)
	}
	if lib.Len() != 2 {
		t.Fatalf("Len()=%d; expected 2", lib.Len())
	}

	it, ok := lib.ResolveByUid(grass.Uid())
	if !ok {
		t.Fatal("grass uid did not survive round trip")
	}
	tex, ok := it.(*resources.Texture)
	if !ok {
		t.Fatalf("restored item has type %T", it)
	}
	if tex.Name() != "grass" || tex.Width != 256 || tex.Flags != 0x5d0000 {
		t.Errorf("restored texture %q %dx%d flags 0x%x", tex.Name(), tex.Width, tex.Height, tex.Flags)
	}

	state, ok := loaded.Pickers["level"]
	if !ok {
		t.Fatal("level picker missing after round trip")
	}
	if state.Collection != "textures" {
		t.Errorf("picker collection %q; expected textures", state.Collection)
	}
	if len(state.Uids) != 2 || state.Uids[0] != rock.Uid() || state.Uids[1] != grass.Uid() {
		t.Errorf("picker uids %v; expected [rock grass]", state.Uids)
	}
}

func TestParseRejectsWrongVersion(t *testing.T) {
	if _, err := project.Parse([]byte("version: 9000\n")); err == nil {
		t.Error("expected error for unsupported version")
	}
}

func TestParseSkipsUnknownKind(t *testing.T) {
	data := []byte(`
version: 1
collections:
  - name: sounds
    kind: nosuchkind
    items: []
`)

	loaded, err := project.Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded.Collections) != 0 {
		t.Errorf("collections %v; expected unknown kind to be skipped", loaded.Collections)
	}

	config.SetStrictLoading(true)
	defer config.SetStrictLoading(false)

	if _, err := project.Parse(data); err == nil || !strings.Contains(err.Error(), "nosuchkind") {
		t.Errorf("strict parse error %v; expected unknown kind failure", err)
	}
}

func TestParseSkipsBadUids(t *testing.T) {
	data := []byte(`
version: 1
pickers:
  - name: level
    collection: textures
    uids: ["not-an-uid"]
`)

	loaded, err := project.Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded.Pickers["level"].Uids) != 0 {
		t.Errorf("uids %v; expected bad uid to be skipped", loaded.Pickers["level"].Uids)
	}

	config.SetStrictLoading(true)
	defer config.SetStrictLoading(false)

	if _, err := project.Parse(data); err == nil {
		t.Error("expected strict parse to fail on bad uid")
	}
}
