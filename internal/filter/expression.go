package filter

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/vk/riggraph/internal/classifier"
	"github.com/vk/riggraph/internal/ctxlog"
	"github.com/vk/riggraph/internal/graphbuilder"
	"github.com/vk/riggraph/internal/scene"
	"github.com/vk/riggraph/internal/symmetry"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Expression is a compiled HCL boolean expression over the variables `bone`
// and `object`. For example:
//
//	!bone.deform && hasprefix(bone.name, "MCH-")
type Expression struct {
	src  string
	expr hcl.Expression
}

var functions = map[string]function.Function{
	"lower":     stdlib.LowerFunc,
	"upper":     stdlib.UpperFunc,
	"strlen":    stdlib.StrlenFunc,
	"contains":  stdlib.ContainsFunc,
	"hasprefix": stringPredicate(strings.HasPrefix),
	"hassuffix": stringPredicate(strings.HasSuffix),
	"matches":   matchesFunc,
}

var variables = map[string]bool{"bone": true, "object": true}

func stringPredicate(fn func(s, affix string) bool) function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "str", Type: cty.String},
			{Name: "affix", Type: cty.String},
		},
		Type: function.StaticReturnType(cty.Bool),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			return cty.BoolVal(fn(args[0].AsString(), args[1].AsString())), nil
		},
	})
}

var matchesFunc = function.New(&function.Spec{
	Params: []function.Parameter{
		{Name: "str", Type: cty.String},
		{Name: "pattern", Type: cty.String},
	},
	Type: function.StaticReturnType(cty.Bool),
	Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
		re, err := regexp.Compile(args[1].AsString())
		if err != nil {
			return cty.NilVal, function.NewArgError(1, err)
		}
		return cty.BoolVal(re.MatchString(args[0].AsString())), nil
	},
})

// ParseExpression compiles src and checks that it only references known
// variables and functions.
func ParseExpression(src string) (*Expression, error) {
	expr, diags := hclsyntax.ParseExpression([]byte(src), "exclude", hcl.InitialPos)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse exclude expression: %w", diags)
	}

	for _, traversal := range expr.Variables() {
		if root := traversal.RootName(); !variables[root] {
			return nil, fmt.Errorf("exclude expression: unknown variable %q", root)
		}
	}
	for _, name := range functionCalls(expr) {
		if _, ok := functions[name]; !ok {
			return nil, fmt.Errorf("exclude expression: unknown function %q", name)
		}
	}
	return &Expression{src: src, expr: expr}, nil
}

// functionCalls lists the distinct function names called in expr, sorted.
func functionCalls(expr hclsyntax.Expression) []string {
	seen := make(map[string]struct{})
	hclsyntax.VisitAll(expr, func(n hclsyntax.Node) hcl.Diagnostics {
		if call, ok := n.(*hclsyntax.FunctionCallExpr); ok {
			seen[call.Name] = struct{}{}
		}
		return nil
	})
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String returns the source text.
func (e *Expression) String() string {
	return e.src
}

// Eval evaluates the expression for one bone.
func (e *Expression) Eval(bone *scene.Bone, owner *scene.Object) (bool, error) {
	evalCtx, err := evalContext(bone, owner)
	if err != nil {
		return false, err
	}
	val, diags := e.expr.Value(evalCtx)
	if diags.HasErrors() {
		return false, fmt.Errorf("failed to evaluate exclude expression: %w", diags)
	}
	if !val.IsWhollyKnown() || val.IsNull() {
		return false, fmt.Errorf("exclude expression %q returned no value", e.src)
	}
	val, err = convert.Convert(val, cty.Bool)
	if err != nil {
		return false, fmt.Errorf("exclude expression %q must be a bool: %w", e.src, err)
	}
	var out bool
	if err := gocty.FromCtyValue(val, &out); err != nil {
		return false, err
	}
	return out, nil
}

// Exclude adapts the expression to the builder. A bone whose evaluation fails
// is kept and the failure is logged.
func (e *Expression) Exclude(ctx context.Context) graphbuilder.ExcludeFunc {
	logger := ctxlog.FromContext(ctx)
	return func(bone *scene.Bone, owner *scene.Object) bool {
		excluded, err := e.Eval(bone, owner)
		if err != nil {
			logger.Warn("Exclude expression failed, keeping bone.", "bone", bone.Name, "object", owner.Name, "error", err)
			return false
		}
		return excluded
	}
}

func evalContext(bone *scene.Bone, owner *scene.Object) (*hcl.EvalContext, error) {
	layerList := bone.Layers
	if layerList == nil {
		layerList = []int{}
	}
	layers, err := gocty.ToCtyValue(layerList, cty.List(cty.Number))
	if err != nil {
		return nil, fmt.Errorf("bone %q layers: %w", bone.Name, err)
	}
	side := symmetry.Side(0)
	if sided, ok := symmetry.ParseSidedName(bone.Name); ok {
		side = sided.Side
	}
	parent := ""
	if bone.Parent != nil {
		parent = bone.Parent.Name
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"bone": cty.ObjectVal(map[string]cty.Value{
				"name":   cty.StringVal(bone.Name),
				"parent": cty.StringVal(parent),
				"deform": cty.BoolVal(bone.Deform),
				"hidden": cty.BoolVal(bone.Hidden),
				"layers": layers,
				"side":   cty.StringVal(side.String()),
				"class":  cty.StringVal(string(classifier.Classify(bone, owner).Class)),
			}),
			"object": cty.ObjectVal(map[string]cty.Value{
				"name": cty.StringVal(owner.Name),
				"kind": cty.StringVal(string(owner.Kind)),
			}),
		},
		Functions: functions,
	}, nil
}
