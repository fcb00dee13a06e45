// Package project reads and writes the editor's yaml project file. Only
// item metadata and picker uid sequences are stored; live object wiring is
// rebuilt on load.
package project

import (
	"io/ioutil"
	"log"
	"os"
	"sort"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/mogaika/collection_picker/asset"
	"github.com/mogaika/collection_picker/config"
)

// Persistable is implemented by items that can be stored in a project
// file. Props carries kind-specific fields as strings.
type Persistable interface {
	asset.Item
	Kind() string
	Props() map[string]string
}

// RestoreFunc rebuilds an item of one kind from its persisted form.
type RestoreFunc func(base asset.ItemBase, props map[string]string) (asset.Item, error)

var kindHandlers = make(map[string]RestoreFunc)

func RegisterKind(kind string, fn RestoreFunc) {
	if _, exists := kindHandlers[kind]; exists {
		panic("duplicate kind handler " + kind)
	}
	kindHandlers[kind] = fn
}

type itemRecord struct {
	Uid   string            `yaml:"uid"`
	Name  string            `yaml:"name"`
	Props map[string]string `yaml:"props,omitempty"`
}

type collectionRecord struct {
	Name  string       `yaml:"name"`
	Kind  string       `yaml:"kind"`
	Items []itemRecord `yaml:"items"`
}

type pickerRecord struct {
	Name       string   `yaml:"name"`
	Collection string   `yaml:"collection"`
	Uids       []string `yaml:"uids"`
}

type fileRecord struct {
	Version     int                `yaml:"version"`
	Collections []collectionRecord `yaml:"collections"`
	Pickers     []pickerRecord     `yaml:"pickers"`
}

// PickerState is a loaded picker before it is bound to a typed
// picker.Picker by the caller.
type PickerState struct {
	Collection string
	Uids       []uuid.UUID
}

type Project struct {
	Collections map[string]*asset.Library
	Kinds       map[string]string // collection name -> item kind
	Pickers     map[string]PickerState
}

func New() *Project {
	return &Project{
		Collections: make(map[string]*asset.Library),
		Kinds:       make(map[string]string),
		Pickers:     make(map[string]PickerState),
	}
}

func Load(path string) (*Project, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to read project file %q", path)
	}
	return Parse(data)
}

func Parse(data []byte) (*Project, error) {
	var f fileRecord
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrapf(err, "Failed to unmarshal project file")
	}
	if f.Version != config.FormatVersion {
		return nil, errors.Errorf("Unsupported project version %v (want %v)", f.Version, config.FormatVersion)
	}

	p := New()
	for _, cr := range f.Collections {
		restore, ok := kindHandlers[cr.Kind]
		if !ok {
			if config.StrictLoading() {
				return nil, errors.Errorf("Unknown item kind %q in collection %q", cr.Kind, cr.Name)
			}
			log.Printf("[project] Skipping collection %q of unknown kind %q", cr.Name, cr.Kind)
			continue
		}

		lib := asset.NewLibrary()
		for _, ir := range cr.Items {
			uid, err := uuid.Parse(ir.Uid)
			if err != nil {
				if config.StrictLoading() {
					return nil, errors.Wrapf(err, "Bad uid %q in collection %q", ir.Uid, cr.Name)
				}
				log.Printf("[project] Skipping item %q with bad uid %q", ir.Name, ir.Uid)
				continue
			}
			it, err := restore(asset.RestoreItemBase(uid, ir.Name), ir.Props)
			if err != nil {
				if config.StrictLoading() {
					return nil, errors.Wrapf(err, "Failed to restore item %q", ir.Name)
				}
				log.Printf("[project] Skipping item %q: %v", ir.Name, err)
				continue
			}
			if err := lib.Add(it); err != nil {
				return nil, errors.Wrapf(err, "Collection %q", cr.Name)
			}
		}
		p.Collections[cr.Name] = lib
		p.Kinds[cr.Name] = cr.Kind
	}

	for _, pr := range f.Pickers {
		state := PickerState{Collection: pr.Collection}
		for _, s := range pr.Uids {
			uid, err := uuid.Parse(s)
			if err != nil {
				if config.StrictLoading() {
					return nil, errors.Wrapf(err, "Bad uid %q in picker %q", s, pr.Name)
				}
				log.Printf("[project] Skipping bad uid %q in picker %q", s, pr.Name)
				continue
			}
			state.Uids = append(state.Uids, uid)
		}
		p.Pickers[pr.Name] = state
	}

	return p, nil
}

func (p *Project) Save(path string) error {
	data, err := p.Marshal()
	if err != nil {
		return err
	}
	return ioutil.WriteFile(path, data, os.FileMode(0644))
}

func (p *Project) Marshal() ([]byte, error) {
	f := fileRecord{Version: config.FormatVersion}

	for _, name := range sortedKeys(p.Collections) {
		lib := p.Collections[name]
		cr := collectionRecord{Name: name, Kind: p.Kinds[name]}
		for _, it := range lib.Items() {
			pit, ok := it.(Persistable)
			if !ok {
				return nil, errors.Errorf("Item %q in collection %q is not persistable", it.Name(), name)
			}
			cr.Items = append(cr.Items, itemRecord{
				Uid:   it.Uid().String(),
				Name:  it.Name(),
				Props: pit.Props(),
			})
		}
		f.Collections = append(f.Collections, cr)
	}

	pickerNames := make([]string, 0, len(p.Pickers))
	for name := range p.Pickers {
		pickerNames = append(pickerNames, name)
	}
	sort.Strings(pickerNames)
	for _, name := range pickerNames {
		state := p.Pickers[name]
		pr := pickerRecord{Name: name, Collection: state.Collection}
		for _, uid := range state.Uids {
			pr.Uids = append(pr.Uids, uid.String())
		}
		f.Pickers = append(f.Pickers, pr)
	}

	data, err := yaml.Marshal(&f)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to marshal project")
	}
	return data, nil
}

func sortedKeys(m map[string]*asset.Library) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
