package web

import (
	"log"
	"net/http"
	"os"
	"sort"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/mogaika/collection_picker/asset"
	"github.com/mogaika/collection_picker/picker"
)

// Workspace is everything the inspection server exposes: the registry,
// the named collections and the named pickers of the loaded project.
type Workspace struct {
	Registry    *asset.Registry
	Collections map[string]asset.Collection
	Pickers     map[string]picker.View
}

func (ws *Workspace) CollectionNames() []string {
	names := make([]string, 0, len(ws.Collections))
	for name := range ws.Collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (ws *Workspace) PickerNames() []string {
	names := make([]string, 0, len(ws.Pickers))
	for name := range ws.Pickers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var serverWorkspace *Workspace

func StartServer(addr string, ws *Workspace) error {
	serverWorkspace = ws

	r := mux.NewRouter()
	r.HandleFunc("/json/collections", HandlerAjaxCollections)
	r.HandleFunc("/json/collection/{name}", HandlerAjaxCollection)
	r.HandleFunc("/json/pickers", HandlerAjaxPickers)
	r.HandleFunc("/json/picker/{name}", HandlerAjaxPicker)
	r.HandleFunc("/dump/collection/{name}", HandlerDumpCollection)

	h := handlers.RecoveryHandler()(r)
	h = handlers.LoggingHandler(os.Stdout, h)

	log.Printf("[web] Starting server %v", addr)

	return http.ListenAndServe(addr, h)
}
