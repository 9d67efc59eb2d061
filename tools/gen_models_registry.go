//go:build ignore

package main

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"
)

// Writes models_registry.go for every struct in the models directory that
// declares a TableName method.
func main() {
	_ = godotenv.Load()

	var modelsDir string
	if len(os.Args) >= 2 {
		modelsDir = os.Args[1]
	} else {
		modelsDir = os.Getenv("MODELS_PATH")
		if modelsDir == "" {
			fmt.Println("Usage: go run gen_models_registry.go <models_dir> OR set MODELS_PATH environment variable")
			os.Exit(1)
		}
	}
	outputFile := filepath.Join(modelsDir, "models_registry.go")

	structs := map[string]bool{}
	tables := map[string]bool{}

	files, err := os.ReadDir(modelsDir)
	if err != nil {
		panic(err)
	}

	for _, file := range files {
		name := file.Name()
		if !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") || name == "models_registry.go" {
			continue
		}
		path := filepath.Join(modelsDir, name)
		fset := token.NewFileSet()
		node, err := parser.ParseFile(fset, path, nil, 0)
		if err != nil {
			panic(err)
		}
		for _, decl := range node.Decls {
			switch d := decl.(type) {
			case *ast.GenDecl:
				if d.Tok != token.TYPE {
					continue
				}
				for _, spec := range d.Specs {
					typeSpec, ok := spec.(*ast.TypeSpec)
					if !ok {
						continue
					}
					if _, ok := typeSpec.Type.(*ast.StructType); ok {
						structs[typeSpec.Name.Name] = true
					}
				}
			case *ast.FuncDecl:
				if d.Recv == nil || d.Name.Name != "TableName" || len(d.Recv.List) != 1 {
					continue
				}
				if ident, ok := d.Recv.List[0].Type.(*ast.Ident); ok {
					tables[ident.Name] = true
				}
			}
		}
	}

	names := make([]string, 0, len(tables))
	for name := range tables {
		if structs[name] {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	width := 0
	for _, name := range names {
		if len(name) > width {
			width = len(name)
		}
	}

	var b strings.Builder
	b.WriteString("// Code generated by tools/gen_models_registry.go; DO NOT EDIT.\n\n")
	b.WriteString("package models\n\n")
	b.WriteString("var ModelTypeRegistry = map[string]interface{}{\n")
	for _, name := range names {
		key := fmt.Sprintf("%q:", name)
		b.WriteString(fmt.Sprintf("\t%-*s %s{},\n", width+3, key, name))
	}
	b.WriteString("}\n")

	err = os.WriteFile(outputFile, []byte(b.String()), 0644)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Generated %s with %d models.\n", outputFile, len(names))
}
