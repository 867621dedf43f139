// Package decl reads argument declarations from YAML, TOML and usage-line files.
//
// YAML documents list arguments and groups either as a mapping from name to settings or as a
// sequence of single-key mappings, which keeps declaration order explicit:
//
//	args:
//	  - verbose:
//	      short: v
//	      multiple: true
//	  - config:
//	      long: config
//	      takes_value: true
//	groups:
//	  - mode:
//	      args: [fast, safe]
//	      required: true
//
// TOML documents use arrays of tables with a name key:
//
//	[[args]]
//	name = "verbose"
//	short = "v"
//
// Usage-line files hold one usage string per line; blank lines and lines starting with '#'
// are skipped.
package decl

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/napalu/argspec"
	"github.com/napalu/argspec/errs"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Document is the result of loading a declaration file
type Document struct {
	Args   []*argspec.Argument
	Groups []*argspec.Group
}

// Registry adds the document to a new registry and compiles it
func (d *Document) Registry(configs ...argspec.ConfigureRegistryFunc) (*argspec.Registry, error) {
	reg := argspec.NewRegistry(configs...)
	if err := reg.AddArgs(d.Args...); err != nil {
		return nil, err
	}
	for _, g := range d.Groups {
		if err := reg.AddGroup(g); err != nil {
			return nil, err
		}
	}
	if err := reg.Compile(); err != nil {
		return nil, err
	}

	return reg, nil
}

type yamlDoc struct {
	Args   yaml.Node `yaml:"args"`
	Groups yaml.Node `yaml:"groups"`
}

// LoadYAML reads a YAML declaration document
func LoadYAML(data []byte) (*Document, error) {
	var raw yamlDoc
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errs.NewDeclaration("yaml", err)
	}

	args, err := yamlEntries(&raw.Args)
	if err != nil {
		return nil, err
	}
	groups, err := yamlEntries(&raw.Groups)
	if err != nil {
		return nil, err
	}

	return build(args, groups)
}

type entry struct {
	name     string
	settings map[string]any
}

func yamlEntries(node *yaml.Node) ([]entry, error) {
	var out []entry
	switch node.Kind {
	case 0:
		return nil, nil
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			e, err := yamlEntry(node.Content[i], node.Content[i+1])
			if err != nil {
				return nil, err
			}
			out = append(out, e)
		}
	case yaml.SequenceNode:
		for _, item := range node.Content {
			if item.Kind == yaml.MappingNode && len(item.Content) == 2 && isSettings(item.Content[1]) {
				e, err := yamlEntry(item.Content[0], item.Content[1])
				if err != nil {
					return nil, err
				}
				out = append(out, e)
				continue
			}
			var settings map[string]any
			if err := item.Decode(&settings); err != nil {
				return nil, errs.NewDeclaration("yaml", err)
			}
			e, err := namedEntry(settings)
			if err != nil {
				return nil, err
			}
			out = append(out, e)
		}
	default:
		return nil, errs.NewDeclaration("yaml", fmt.Errorf("line %d: expected a mapping or a sequence", node.Line))
	}

	return out, nil
}

func isSettings(node *yaml.Node) bool {
	return node.Kind == yaml.MappingNode || isNull(node)
}

func isNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.Tag == "!!null"
}

func yamlEntry(key, value *yaml.Node) (entry, error) {
	settings := map[string]any{}
	if !isNull(value) {
		if err := value.Decode(&settings); err != nil {
			return entry{}, errs.NewDeclaration("yaml", err)
		}
	}

	return entry{name: key.Value, settings: settings}, nil
}

type tomlDoc struct {
	Args   []map[string]any `toml:"args"`
	Groups []map[string]any `toml:"groups"`
}

// LoadTOML reads a TOML declaration document
func LoadTOML(data []byte) (*Document, error) {
	var raw tomlDoc
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, errs.NewDeclaration("toml", err)
	}

	args := make([]entry, 0, len(raw.Args))
	for _, settings := range raw.Args {
		e, err := namedEntry(settings)
		if err != nil {
			return nil, err
		}
		args = append(args, e)
	}
	groups := make([]entry, 0, len(raw.Groups))
	for _, settings := range raw.Groups {
		e, err := namedEntry(settings)
		if err != nil {
			return nil, err
		}
		groups = append(groups, e)
	}

	return build(args, groups)
}

// namedEntry takes the name from the "name" key of settings
func namedEntry(settings map[string]any) (entry, error) {
	name, _ := settings["name"].(string)
	if name == "" {
		return entry{}, errs.NewEmptyName()
	}
	rest := make(map[string]any, len(settings)-1)
	for k, v := range settings {
		if k != "name" {
			rest[k] = v
		}
	}

	return entry{name: name, settings: rest}, nil
}

func build(args, groups []entry) (*Document, error) {
	doc := &Document{}
	for _, e := range args {
		a, err := FromMap(e.name, e.settings)
		if err != nil {
			return nil, err
		}
		doc.Args = append(doc.Args, a)
	}
	for _, e := range groups {
		g, err := GroupFromMap(e.name, e.settings)
		if err != nil {
			return nil, err
		}
		doc.Groups = append(doc.Groups, g)
	}

	return doc, nil
}

// LoadUsage reads one usage string per line
func LoadUsage(data []byte) (*Document, error) {
	doc := &Document{}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		a, err := argspec.ParseUsage(line)
		if err != nil {
			return nil, err
		}
		doc.Args = append(doc.Args, a)
	}
	if err := scanner.Err(); err != nil {
		return nil, errs.NewDeclaration("usage", err)
	}

	return doc, nil
}

// LoadFile reads path, choosing the format from its extension: .yaml, .yml, .toml, .usage or .txt
func LoadFile(path string) (*Document, error) {
	var load func([]byte) (*Document, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		load = LoadYAML
	case ".toml":
		load = LoadTOML
	case ".usage", ".txt":
		load = LoadUsage
	default:
		return nil, errs.NewUnsupportedFormat(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.NewDeclaration(path, err)
	}

	return load(data)
}

// MustLoadYAML is LoadYAML for embedded declarations. It panics on error.
func MustLoadYAML(data []byte) *Document {
	return must(LoadYAML(data))
}

// MustLoadTOML is LoadTOML for embedded declarations. It panics on error.
func MustLoadTOML(data []byte) *Document {
	return must(LoadTOML(data))
}

// MustLoadFile is LoadFile that panics on error
func MustLoadFile(path string) *Document {
	return must(LoadFile(path))
}

func must(doc *Document, err error) *Document {
	if err != nil {
		panic(err)
	}

	return doc
}
