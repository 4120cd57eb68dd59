package course

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed package_schema.json
var packageSchemaJSON []byte

var compilePackageSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	var def any
	if err := json.Unmarshal(packageSchemaJSON, &def); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}
	c := jsonschema.NewCompiler()
	const schemaURL = "schema://course-package.json"
	if err := c.AddResource(schemaURL, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return compiled, nil
})

// ParsePackage validates raw JSON against the package schema and decodes it.
// Schema failures surface before any field-level validation so malformed
// exports are rejected with a structural message rather than a zero-valued
// Package.
func ParsePackage(raw []byte) (*Package, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compilePackageSchema()
	if err != nil {
		return nil, fmt.Errorf("package schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("package schema validation: %w", err)
	}

	var pkg Package
	if err := json.Unmarshal(raw, &pkg); err != nil {
		return nil, fmt.Errorf("decode package: %w", err)
	}
	return &pkg, nil
}

// LoadPackage reads and parses a package export file.
func LoadPackage(path string) (*Package, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read package: %w", err)
	}
	pkg, err := ParsePackage(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return pkg, nil
}

// EncodePackage serializes a package in the export file format.
func EncodePackage(pkg *Package) ([]byte, error) {
	out, err := json.MarshalIndent(pkg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode package: %w", err)
	}
	return append(out, '\n'), nil
}

// SavePackage writes a package export file.
func SavePackage(path string, pkg *Package) error {
	out, err := EncodePackage(pkg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write package: %w", err)
	}
	return nil
}
