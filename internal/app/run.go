package app

import (
	"context"
	"fmt"
	"io"

	"github.com/vk/riggraph/internal/classifier"
	"github.com/vk/riggraph/internal/dot"
	"github.com/vk/riggraph/internal/filter"
	"github.com/vk/riggraph/internal/graphbuilder"
	"github.com/vk/riggraph/internal/graphmodel"
	"github.com/vk/riggraph/internal/scene"
)

const timeFormat = "2006-01-02 15:04 UTC"

// Run executes the main application logic based on the configuration.
func (a *App) Run(ctx context.Context) error {
	ctx = a.context(ctx)
	a.logger.Debug("App.Run method started.", "mode", a.config.Mode)

	style := dot.DefaultStyle()
	if a.config.Mode == ModeLegend {
		style.RankDir = "LR"
		a.applyOverrides(&style)
		return a.write(graphbuilder.BuildLegend(), style)
	}

	cfgModel, err := a.loader.Load(ctx, a.config.ScenePaths...)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	sc, err := scene.FromModel(cfgModel)
	if err != nil {
		return fmt.Errorf("failed to resolve scene: %w", err)
	}
	a.logger.Debug("Scene resolved.", "objects", len(sc.Objects()))

	roots, err := a.roots(sc)
	if err != nil {
		return err
	}
	exclude, err := a.exclude(ctx, roots)
	if err != nil {
		return err
	}

	model := graphbuilder.Build(ctx, roots, exclude)
	a.logger.Info("Graph built.", "nodes", model.NodeCount(), "edges", len(model.Edges()))

	style = style.WithModel(cfgModel)
	if style.Title == "" {
		style.Title = a.caption(roots)
	}
	a.applyOverrides(&style)
	return a.write(model, style)
}

func (a *App) roots(sc *scene.Scene) ([]*scene.Object, error) {
	if len(a.config.Objects) == 0 {
		objs := sc.Objects()
		if len(objs) == 0 {
			return nil, fmt.Errorf("no objects found in %v", a.config.ScenePaths)
		}
		return objs, nil
	}
	roots := make([]*scene.Object, 0, len(a.config.Objects))
	for _, name := range a.config.Objects {
		obj, ok := sc.Object(name)
		if !ok {
			return nil, fmt.Errorf("object %q: %w", name, scene.ErrUnknownObject)
		}
		roots = append(roots, obj)
	}
	return roots, nil
}

func (a *App) exclude(ctx context.Context, roots []*scene.Object) (graphbuilder.ExcludeFunc, error) {
	var base graphbuilder.ExcludeFunc
	switch a.config.Mode {
	case ModeVisible:
		base = filter.Invisible()
	case ModeSelected:
		owner := roots[0]
		if owner.Kind != scene.KindArmature {
			return nil, fmt.Errorf("selected mode needs an armature, %q is %s", owner.Name, owner.Kind)
		}
		base = filter.Selected(owner, a.config.Bones)
	default:
		base = filter.None()
	}

	if a.config.Exclude == "" {
		return base, nil
	}
	expr, err := filter.ParseExpression(a.config.Exclude)
	if err != nil {
		return nil, err
	}
	return filter.Any(base, expr.Exclude(ctx)), nil
}

// caption stamps the graph with the time and what it shows.
func (a *App) caption(roots []*scene.Object) string {
	stamp := a.now().UTC().Format(timeFormat)
	objectCount := len(roots)
	switch a.config.Mode {
	case ModeSelected:
		selected := classifier.NormalizeToLeft(roots[0], a.config.Bones)
		return fmt.Sprintf("%s • %d Selected Bones Only", stamp, len(selected))
	case ModeVisible:
		return fmt.Sprintf("%s • %d %s with Visible Bones", stamp, objectCount, pluralizeObject(objectCount))
	default:
		return fmt.Sprintf("%s • %d %s with All Bones", stamp, objectCount, pluralizeObject(objectCount))
	}
}

func pluralizeObject(n int) string {
	if n == 1 {
		return "Object"
	}
	return "Objects"
}

func (a *App) applyOverrides(style *dot.Style) {
	if a.config.Title != "" {
		style.Title = a.config.Title
	}
	if a.config.FontName != "" {
		style.FontName = a.config.FontName
	}
	if a.config.RankDir != "" {
		style.RankDir = a.config.RankDir
	}
}

func (a *App) write(model *graphmodel.Model, style dot.Style) error {
	if _, err := io.WriteString(a.outW, dot.Render(model, style)); err != nil {
		return fmt.Errorf("failed to write graph: %w", err)
	}
	a.logger.Debug("App.Run method finished.")
	return nil
}
