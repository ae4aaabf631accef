// Package generate emits the Go code of FHIR resources and data types from the intermediate representation.
//
// Each concern is handled by its own Generator, so that the output for a type is
// assembled from several independent passes over the same ir.ResourceOrType.
package generate

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/damedic/fhir-model-go/internal/generate/ir"
	. "github.com/dave/jennifer/jen"
)

const moduleName = "github.com/damedic/fhir-model-go"

const (
	modelPkg = moduleName + "/model"
	ptrPkg   = moduleName + "/utils/ptr"
	apdPkg   = "github.com/cockroachdb/apd/v3"
)

// Generator adds code to the files of a release.
type Generator interface {
	// GenerateType adds code for a resource or type to its file.
	// It returns false if nothing was generated.
	GenerateType(f *File, rt ir.ResourceOrType) bool
	// GenerateAdditional adds code not specific to a single type.
	GenerateAdditional(f func(fileName string, pkgName string) *File, release string, rt []ir.ResourceOrType)
}

// NoOpGenerator can be embedded to only implement one of the methods of Generator.
type NoOpGenerator struct{}

func (g NoOpGenerator) GenerateType(f *File, rt ir.ResourceOrType) bool {
	return false
}

func (g NoOpGenerator) GenerateAdditional(f func(fileName string, pkgName string) *File, release string, rt []ir.ResourceOrType) {
}

// Generators returns the generators that produce a complete model package.
func Generators() []Generator {
	return []Generator{
		ModelPkgDocGenerator{},
		TypesGenerator{},
		BuilderGenerator{},
		AccessorsGenerator{},
		ImplElementGenerator{},
		ImplResourceGenerator{},
		VisitorGenerator{},
		EqualGenerator{},
		PrimitiveGenerator{},
		ReferenceGenerator{},
	}
}

// Files holds the files generated for a single package.
type Files struct {
	pkgName string
	files   map[string]*File
}

// NewFiles returns an empty set of files for the package.
func NewFiles(pkgName string) *Files {
	return &Files{pkgName: pkgName, files: map[string]*File{}}
}

// Get returns the file with the given name, creating it if necessary.
func (fs *Files) Get(fileName string, pkgName string) *File {
	if pkgName == "" {
		pkgName = fs.pkgName
	}
	key := filepath.Join(pkgName, fileName)
	f, ok := fs.files[key]
	if !ok {
		f = NewFile(pkgName)
		f.HeaderComment(fmt.Sprintf("Code generated by %s/internal/cmd/generate. DO NOT EDIT.", moduleName))
		f.ImportName(modelPkg, "model")
		f.ImportName(ptrPkg, "ptr")
		f.ImportName(apdPkg, "apd")
		fs.files[key] = f
	}
	return f
}

// Names returns the paths of all files relative to the output directory, sorted.
func (fs *Files) Names() []string {
	names := make([]string, 0, len(fs.files))
	for name := range fs.files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render returns the formatted source of a single file.
func (fs *Files) Render(name string) (string, error) {
	f, ok := fs.files[name]
	if !ok {
		return "", fmt.Errorf("no file %s", name)
	}
	return fmt.Sprintf("%#v", f), nil
}

// Save writes all files below dir.
func (fs *Files) Save(dir string) error {
	for _, name := range fs.Names() {
		path := filepath.Join(dir, name+".go")
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := fs.files[name].Save(path); err != nil {
			return fmt.Errorf("save %s: %w", path, err)
		}
	}
	return nil
}

// Generate runs all generators over the resources and types of a release.
func Generate(release string, pkgName string, rt []ir.ResourceOrType, generators ...Generator) *Files {
	files := NewFiles(pkgName)

	for _, t := range rt {
		for _, g := range generators {
			g.GenerateType(files.Get(t.FileName, pkgName), t)
		}
	}
	for _, g := range generators {
		g.GenerateAdditional(files.Get, release, rt)
	}

	return files
}
