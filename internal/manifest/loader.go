package manifest

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a manifest from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	mf, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	mf.Source = path

	return mf, nil
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var mf File

	err := yaml.Unmarshal(data, &mf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse manifest YAML: %w", err)
	}

	applyDefaults(&mf)

	if err := mf.Validate(); err != nil {
		return nil, err
	}

	return &mf, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(mf *File) {
	if mf.Version == "" {
		mf.Version = "1"
	}

	for i := range mf.Types {
		if mf.Types[i].Role == "" {
			mf.Types[i].Role = "input"
		}
	}
}

// Validate checks names and roles. Type expressions are checked by Apply.
func (mf *File) Validate() error {
	var errs []error

	if mf.Version != "1" {
		errs = append(errs, fmt.Errorf("unsupported manifest version %q", mf.Version))
	}

	if mf.Package == "" {
		errs = append(errs, errors.New("package is required"))
	}

	seen := make(map[string]bool, len(mf.Types))

	for i, ts := range mf.Types {
		where := fmt.Sprintf("types[%d]", i)

		switch {
		case ts.Name == "":
			errs = append(errs, fmt.Errorf("%s: name is required", where))
		case seen[ts.Name]:
			errs = append(errs, fmt.Errorf("%s: duplicate type %q", where, ts.Name))
		}
		seen[ts.Name] = true

		if ts.Role != "input" && ts.Role != "object" {
			errs = append(errs, fmt.Errorf("%s: unknown role %q", where, ts.Role))
		}

		for j, m := range ts.Methods {
			if m.Name == "" {
				errs = append(errs, fmt.Errorf("%s.methods[%d]: name is required", where, j))
			}

			for k, p := range m.Params {
				if p.Name == "" {
					errs = append(errs, fmt.Errorf("%s.methods[%d].params[%d]: name is required", where, j, k))
				}
			}
		}

		for j, f := range ts.Fields {
			if f.Name == "" || f.Type == "" {
				errs = append(errs, fmt.Errorf("%s.fields[%d]: name and type are required", where, j))
			}
		}
	}

	return errors.Join(errs...)
}
