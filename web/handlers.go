package web

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"

	"github.com/mogaika/collection_picker/asset"
	"github.com/mogaika/collection_picker/utils"
	"github.com/mogaika/collection_picker/webutils"
)

type jItem struct {
	Uid  string `json:"uid"`
	Name string `json:"name"`
}

func jItems(items []asset.Item) []jItem {
	out := make([]jItem, 0, len(items))
	for _, it := range items {
		out = append(out, jItem{Uid: it.Uid().String(), Name: it.Name()})
	}
	return out
}

func HandlerAjaxCollections(w http.ResponseWriter, r *http.Request) {
	webutils.WriteJson(w, serverWorkspace.CollectionNames())
}

func HandlerAjaxCollection(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	col, ok := serverWorkspace.Collections[name]
	if !ok {
		webutils.WriteError(w, errors.Errorf("Unknown collection %q", name))
		return
	}
	webutils.WriteJson(w, jItems(col.Items()))
}

func HandlerAjaxPickers(w http.ResponseWriter, r *http.Request) {
	webutils.WriteJson(w, serverWorkspace.PickerNames())
}

func HandlerAjaxPicker(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	p, ok := serverWorkspace.Pickers[name]
	if !ok {
		webutils.WriteError(w, errors.Errorf("Unknown picker %q", name))
		return
	}

	uids := p.Uids()
	jUids := make([]string, len(uids))
	for i, uid := range uids {
		jUids[i] = uid.String()
	}

	// stored order and resolved (collection) order differ on purpose
	webutils.WriteJson(w, struct {
		Count    int      `json:"count"`
		Uids     []string `json:"uids"`
		Resolved []jItem  `json:"resolved"`
	}{
		Count:    p.Count(),
		Uids:     jUids,
		Resolved: jItems(p.ResolvedItems()),
	})
}

func HandlerDumpCollection(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	col, ok := serverWorkspace.Collections[name]
	if !ok {
		webutils.WriteError(w, errors.Errorf("Unknown collection %q", name))
		return
	}
	webutils.WriteTextFile(w, utils.SDump(col.Items()), name)
}
