// Package config loads anvil.yaml project files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/anvil/internal/core/domain"
	"go.trai.ch/anvil/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// implicitTargetName names the target holding the setup elements. It is never added to the target map.
const implicitTargetName = "setup"

// Loader implements ports.ProjectLoader using YAML files.
type Loader struct {
	Logger ports.Logger
}

var _ ports.ProjectLoader = (*Loader)(nil)

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Discover walks up from cwd and returns the path of the nearest anvil.yaml.
func (l *Loader) Discover(cwd string) (string, error) {
	dir, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.Wrap(err, "failed to resolve working directory")
	}

	for {
		candidate := filepath.Join(dir, domain.ProjectFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "failed to discover project"), "cwd", cwd)
}

// Load reads the project file at path and every project it references.
func (l *Loader) Load(path string) (*domain.Project, error) {
	return l.load(path, make(map[string]*domain.Project))
}

func (l *Loader) load(path string, seen map[string]*domain.Project) (*domain.Project, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve project file path")
	}
	if p, ok := seen[abs]; ok {
		return p, nil
	}

	file, err := readProjectfile(abs)
	if err != nil {
		return nil, err
	}

	name := file.Project
	if name == "" {
		name = filepath.Base(filepath.Dir(abs))
		l.Logger.Warn(fmt.Sprintf("'project' missing in %s, using %q", abs, name))
	}

	project := domain.NewProject(name, resolveBaseDir(abs, file.BaseDir))
	project.SetDefaultTargetName(file.Default)
	// Registered before references are followed so mutual references resolve to the same project.
	seen[abs] = project

	if err := addLibraries(project, file.Libraries, abs); err != nil {
		return nil, err
	}
	if err := l.addReferences(project, file.References, abs, seen); err != nil {
		return nil, err
	}
	if err := addSetup(project, file.Setup, abs); err != nil {
		return nil, err
	}
	if err := addTargets(project, &file.Targets, abs); err != nil {
		return nil, err
	}
	return project, nil
}

func readProjectfile(path string) (*Projectfile, error) {
	//nolint:gosec // path is provided by user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrConfigReadFailed, err), "path", path)
	}

	var file Projectfile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrConfigParseFailed, err), "path", path)
	}
	return &file, nil
}

func resolveBaseDir(configPath, configured string) string {
	configDir := filepath.Dir(configPath)
	if configured == "" {
		return filepath.Clean(configDir)
	}
	if filepath.IsAbs(configured) {
		return filepath.Clean(configured)
	}
	return filepath.Clean(filepath.Join(configDir, configured))
}

func addLibraries(project *domain.Project, libs []LibraryDTO, path string) error {
	for i, lib := range libs {
		if lib.Location == "" {
			return zerr.With(zerr.With(zerr.Wrap(domain.ErrMissingAttribute, "library needs a location"),
				"file", path), "library", i)
		}
		policy, err := domain.ParseFailurePolicy(lib.Policy)
		if err != nil {
			return zerr.With(err, "file", path)
		}
		project.AddLibrary(domain.LibraryRef{
			Location: lib.Location,
			Role:     lib.Role,
			Name:     lib.Name,
			Aliases:  lib.Aliases,
			Policy:   policy,
		})
	}
	return nil
}

func (l *Loader) addReferences(project *domain.Project, refs map[string]string, path string, seen map[string]*domain.Project) error {
	for _, name := range slices.Sorted(maps.Keys(refs)) {
		ref := refs[name]
		if !filepath.IsAbs(ref) {
			ref = filepath.Join(filepath.Dir(path), ref)
		}
		if info, err := os.Stat(ref); err == nil && info.IsDir() {
			ref = filepath.Join(ref, domain.ProjectFileName)
		}

		other, err := l.load(ref, seen)
		if err != nil {
			return zerr.With(err, "reference", name)
		}
		if err := project.AddReference(name, other); err != nil {
			return err
		}
	}
	return nil
}

func addSetup(project *domain.Project, nodes []yaml.Node, path string) error {
	if len(nodes) == 0 {
		return nil
	}
	implicit, err := domain.NewTarget(implicitTargetName, nil, "", "")
	if err != nil {
		return err
	}
	for i := range nodes {
		el, err := decodeElement(path, &nodes[i])
		if err != nil {
			return err
		}
		implicit.AddElement(el)
	}
	project.SetImplicitTarget(implicit)
	return nil
}

func addTargets(project *domain.Project, node *yaml.Node, path string) error {
	if node.Kind == 0 || node.Tag == "!!null" {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return zerr.With(zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, "targets must be a mapping"),
			"file", path), "line", node.Line)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]

		var dto TargetDTO
		if err := value.Decode(&dto); err != nil {
			return zerr.With(zerr.With(fmt.Errorf("%w: %w", domain.ErrConfigParseFailed, err),
				"file", path), "target", key.Value)
		}

		target, err := domain.NewTarget(key.Value, dto.Depends, dto.If, dto.Unless)
		if err != nil {
			return zerr.With(zerr.With(err, "file", path), "line", key.Line)
		}
		target.SetDescription(dto.Description)

		for j := range dto.Tasks {
			el, err := decodeElement(path, &dto.Tasks[j])
			if err != nil {
				return zerr.With(err, "target", key.Value)
			}
			target.AddElement(el)
		}

		if err := project.AddTarget(target); err != nil {
			return zerr.With(err, "file", path)
		}
	}
	return nil
}
