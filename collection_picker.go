package main

import (
	"flag"
	"log"

	"github.com/google/uuid"

	"github.com/mogaika/collection_picker/asset"
	"github.com/mogaika/collection_picker/config"
	"github.com/mogaika/collection_picker/picker"
	"github.com/mogaika/collection_picker/project"
	"github.com/mogaika/collection_picker/resources"
	"github.com/mogaika/collection_picker/utils"
	"github.com/mogaika/collection_picker/web"
)

func main() {
	var addr, projectPath string
	var strict bool
	flag.StringVar(&addr, "i", ":8000", "Address of server")
	flag.StringVar(&projectPath, "project", "", "Path to project yaml file")
	flag.BoolVar(&strict, "strict", false, "Fail on project entries that cannot be restored")
	flag.Parse()

	config.SetStrictLoading(strict)

	var ws *web.Workspace
	if projectPath != "" {
		p, err := project.Load(projectPath)
		if err != nil {
			log.Fatal(err)
		}
		if ws, err = workspaceFromProject(p); err != nil {
			log.Fatal(err)
		}
	} else {
		ws = demoWorkspace()
	}

	if err := web.StartServer(addr, ws); err != nil {
		log.Fatal(err)
	}
}

func workspaceFromProject(p *project.Project) (*web.Workspace, error) {
	ws := &web.Workspace{
		Registry:    asset.NewRegistry(),
		Collections: make(map[string]asset.Collection),
		Pickers:     make(map[string]picker.View),
	}

	for name, lib := range p.Collections {
		ws.Collections[name] = lib

		var err error
		switch kind := p.Kinds[name]; kind {
		case resources.KIND_TEXTURE:
			err = asset.Register[*resources.Texture](ws.Registry, lib)
		case resources.KIND_SCRIPT:
			err = asset.Register[*resources.Script](ws.Registry, lib)
		case resources.KIND_MATERIAL:
			err = asset.Register[*resources.Material](ws.Registry, lib)
		default:
			log.Printf("Collection %q of kind %q is not pickable", name, kind)
		}
		if err != nil {
			return nil, err
		}
	}

	for name, state := range p.Pickers {
		switch kind := p.Kinds[state.Collection]; kind {
		case resources.KIND_TEXTURE:
			ws.Pickers[name] = restorePicker[*resources.Texture](ws.Registry, state.Uids)
		case resources.KIND_SCRIPT:
			ws.Pickers[name] = restorePicker[*resources.Script](ws.Registry, state.Uids)
		case resources.KIND_MATERIAL:
			ws.Pickers[name] = restorePicker[*resources.Material](ws.Registry, state.Uids)
		default:
			log.Printf("Skipping picker %q over kind %q", name, kind)
		}
	}

	return ws, nil
}

func restorePicker[T asset.Item](reg *asset.Registry, uids []uuid.UUID) *picker.Picker[T] {
	p := picker.New[T](reg)
	p.SetUids(uids)
	return p
}

// demoWorkspace seeds collections with silly-named assets so the server
// has something to show without a project file.
func demoWorkspace() *web.Workspace {
	var rng utils.RandomNameGenerator

	reg := asset.NewRegistry()
	textures := asset.NewLibrary()
	scripts := asset.NewLibrary()

	for i := 0; i < 8; i++ {
		if err := textures.Add(resources.NewTexture(rng.RandomName(), 256, 256)); err != nil {
			log.Fatal(err)
		}
	}
	for i := 0; i < 4; i++ {
		if err := scripts.Add(resources.NewScript(rng.RandomName(), "main")); err != nil {
			log.Fatal(err)
		}
	}

	if err := asset.Register[*resources.Texture](reg, textures); err != nil {
		log.Fatal(err)
	}
	if err := asset.Register[*resources.Script](reg, scripts); err != nil {
		log.Fatal(err)
	}

	level := picker.New[*resources.Texture](reg)
	for i, it := range textures.Items() {
		if i%2 == 0 {
			level.Add(it.(*resources.Texture))
		}
	}

	return &web.Workspace{
		Registry: reg,
		Collections: map[string]asset.Collection{
			"textures": textures,
			"scripts":  scripts,
		},
		Pickers: map[string]picker.View{
			"level_textures": level,
		},
	}
}
