// Package yamlconfig provides the YAML implementation of the config.Loader
// interface. It reads the same document shape as the HCL loader:
//
//	graph:
//	  rankdir: LR
//	styles:
//	  root:
//	    shape: circle
//	objects:
//	  - name: Rig
//	    kind: armature
//	    bones:
//	      - name: Arm.L
//	        deform: true
//
// Style keys keep their file order.
package yamlconfig

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vk/riggraph/internal/config"
	"github.com/vk/riggraph/internal/ctxlog"
	"github.com/vk/riggraph/internal/fsutil"
	"gopkg.in/yaml.v3"
)

// Extensions are the file extensions the loader picks up.
var Extensions = []string{".yaml", ".yml"}

type fileRoot struct {
	Objects []objectDoc `yaml:"objects"`
	Styles  yaml.Node   `yaml:"styles"`
	Graph   *graphDoc   `yaml:"graph"`
}

type objectDoc struct {
	Name          string          `yaml:"name"`
	Kind          string          `yaml:"kind"`
	Parent        string          `yaml:"parent"`
	ParentBone    string          `yaml:"parent_bone"`
	VisibleLayers []int           `yaml:"visible_layers"`
	Constraints   []constraintDoc `yaml:"constraints"`
	Bones         []boneDoc       `yaml:"bones"`
	VertexGroups  []string        `yaml:"vertex_groups"`
}

type boneDoc struct {
	Name        string          `yaml:"name"`
	Parent      string          `yaml:"parent"`
	Deform      bool            `yaml:"deform"`
	Hidden      bool            `yaml:"hidden"`
	Layers      []int           `yaml:"layers"`
	Constraints []constraintDoc `yaml:"constraints"`
}

type constraintDoc struct {
	Name      string `yaml:"name"`
	Type      string `yaml:"type"`
	Target    string `yaml:"target"`
	Subtarget string `yaml:"subtarget"`
}

type graphDoc struct {
	RankDir  string `yaml:"rankdir"`
	FontName string `yaml:"fontname"`
	Title    string `yaml:"title"`
}

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads every YAML file under paths and merges them into one validated
// model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path_count", len(paths))

	files, err := fsutil.FindFiles(paths, Extensions...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered YAML files.", "count", len(files))

	model := &config.Model{}
	for _, file := range files {
		part, err := loadFile(file)
		if err != nil {
			return nil, err
		}
		model.Merge(part)
	}

	if err := config.Validate(model); err != nil {
		return nil, fmt.Errorf("invalid YAML configuration: %w", err)
	}
	logger.Debug("YAML loading complete.", "objects", len(model.Objects), "styles", len(model.Styles))
	return model, nil
}

func loadFile(path string) (*config.Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open YAML file %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var root fileRoot
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return &config.Model{}, nil
		}
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", path, err)
	}

	m, err := translate(&root)
	if err != nil {
		return nil, fmt.Errorf("failed to translate YAML file %s: %w", path, err)
	}
	return m, nil
}

func translate(root *fileRoot) (*config.Model, error) {
	m := &config.Model{}
	for _, od := range root.Objects {
		def := &config.ObjectDef{
			Name:          od.Name,
			Kind:          od.Kind,
			Parent:        od.Parent,
			ParentBone:    od.ParentBone,
			VisibleLayers: od.VisibleLayers,
			Constraints:   translateConstraints(od.Constraints),
			VertexGroups:  od.VertexGroups,
		}
		for _, bd := range od.Bones {
			def.Bones = append(def.Bones, &config.BoneDef{
				Name:        bd.Name,
				Parent:      bd.Parent,
				Deform:      bd.Deform,
				Hidden:      bd.Hidden,
				Layers:      bd.Layers,
				Constraints: translateConstraints(bd.Constraints),
			})
		}
		m.Objects = append(m.Objects, def)
	}

	styles, err := translateStyles(&root.Styles)
	if err != nil {
		return nil, err
	}
	m.Styles = styles

	if root.Graph != nil {
		m.Graph = config.GraphDef{
			RankDir:  root.Graph.RankDir,
			FontName: root.Graph.FontName,
			Title:    root.Graph.Title,
		}
	}
	return m, nil
}

func translateConstraints(docs []constraintDoc) []*config.ConstraintDef {
	var out []*config.ConstraintDef
	for _, cd := range docs {
		out = append(out, &config.ConstraintDef{
			Name:      cd.Name,
			Type:      cd.Type,
			Target:    cd.Target,
			Subtarget: cd.Subtarget,
		})
	}
	return out
}

// translateStyles walks the styles mapping node so that both categories and
// their keys keep file order.
func translateStyles(node *yaml.Node) ([]*config.StyleDef, error) {
	if node.Kind == 0 {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: styles must be a mapping", node.Line)
	}

	var out []*config.StyleDef
	for i := 0; i+1 < len(node.Content); i += 2 {
		category, body := node.Content[i], node.Content[i+1]
		if body.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("line %d: style %q must be a mapping", body.Line, category.Value)
		}
		def := &config.StyleDef{Category: category.Value}
		for j := 0; j+1 < len(body.Content); j += 2 {
			key, val := body.Content[j], body.Content[j+1]
			if val.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: style %q attribute %q must be a scalar", val.Line, category.Value, key.Value)
			}
			def.Attrs = append(def.Attrs, config.Attr{Key: key.Value, Value: val.Value})
		}
		out = append(out, def)
	}
	return out, nil
}
