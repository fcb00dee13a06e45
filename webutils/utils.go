package webutils

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
)

func WriteFileHeaders(w http.ResponseWriter, name string) {
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", "attachment; filename=\""+name+"\"")
}

func WriteFile(w http.ResponseWriter, in io.Reader, name string) {
	WriteFileHeaders(w, name)
	io.Copy(w, in)
}

func WriteTextFile(w http.ResponseWriter, text string, name string) {
	WriteFile(w, bytes.NewBufferString(text), name+".txt")
}

func WriteJson(w http.ResponseWriter, data interface{}) {
	res, err := json.Marshal(data)
	if err != nil {
		WriteError(w, err)
	} else {
		w.Header().Set("Content-Type", "application/json")
		WriteResult(w, res)
	}
}

func WriteResult(w http.ResponseWriter, data []byte) {
	_, err := w.Write(data)
	if err != nil {
		log.Printf("Error when writing response: %v", err)
	}
}

func WriteError(w http.ResponseWriter, herr error) {
	type jError struct {
		Error string `json:"error"`
	}
	w.WriteHeader(http.StatusBadRequest)
	data, err := json.Marshal(&jError{Error: herr.Error()})
	if err == nil {
		WriteResult(w, data)
	} else {
		log.Printf("Error marshaling error '%v': %v", herr, err)
	}
}
