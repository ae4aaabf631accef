package main

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/damedic/fhir-model-go/internal/generate/model"
)

// definitionFiles are the bundles of a FHIR definitions archive the generator reads.
var definitionFiles = []string{"profiles-types.json", "profiles-resources.json"}

// readDefinitions reads the definition bundles either from a definitions zip archive
// as published with each FHIR release, or from a directory holding the extracted files.
// The entries of all bundles are merged into one.
func readDefinitions(path string) (*model.Bundle, error) {
	var fsys fs.FS
	if strings.HasSuffix(path, ".zip") {
		r, err := zip.OpenReader(path)
		if err != nil {
			return nil, fmt.Errorf("open zip archive: %w", err)
		}
		defer r.Close()
		fsys = &r.Reader
	} else {
		fsys = os.DirFS(path)
	}

	merged := &model.Bundle{}
	for _, name := range definitionFiles {
		bundle, err := readAndParseJSON(fsys, name)
		if err != nil {
			return nil, err
		}
		merged.Entry = append(merged.Entry, bundle.Entry...)
	}
	return merged, nil
}

func readAndParseJSON(fsys fs.FS, name string) (*model.Bundle, error) {
	file, err := fsys.Open(name)
	if err != nil {
		file, err = fsys.Open("definitions.json/" + name)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer file.Close()

	b, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	var bundle model.Bundle
	if err := json.Unmarshal(b, &bundle); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", name, err)
	}
	return &bundle, nil
}
