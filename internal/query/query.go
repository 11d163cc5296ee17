// Package query evaluates CEL expressions against a site configuration.
// The configuration, in its generic JSON form, is bound to the variable "_".
package query

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types/ref"
	celext "github.com/google/cel-go/ext"
	"google.golang.org/protobuf/types/known/structpb"
)

// RootVar is the name the configuration is bound to in expressions.
const RootVar = "_"

// Evaluator compiles and evaluates CEL expressions.
type Evaluator struct {
	env *cel.Env
}

// NewEvaluator creates an evaluator with the strings, lists, math and
// encoders extensions enabled.
func NewEvaluator() (*Evaluator, error) {
	env, err := cel.NewEnv(
		cel.Variable(RootVar, cel.DynType),
		celext.Strings(),
		celext.Encoders(),
		celext.Lists(),
		celext.Math(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}
	return &Evaluator{env: env}, nil
}

// Evaluate runs expr against data and returns the result as plain Go values
// in the JSON data model (maps, slices, strings, float64, bool, nil).
// Example: `_.themeConfig.nav.map(n, n.text)`.
func (e *Evaluator) Evaluate(expr string, data interface{}) (interface{}, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, fmt.Errorf("empty expression")
	}
	ast, issues := e.env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compilation error: %w", issues.Err())
	}
	prg, err := e.env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program error: %w", err)
	}
	out, _, err := prg.Eval(map[string]interface{}{RootVar: data})
	if err != nil {
		return nil, fmt.Errorf("eval error: %w", err)
	}
	return ToGo(out)
}

var structValueType = reflect.TypeOf(&structpb.Value{})

// ToGo converts a CEL value into the JSON data model.
func ToGo(val ref.Val) (interface{}, error) {
	if val == nil {
		return nil, nil
	}
	native, err := val.ConvertToNative(structValueType)
	if err != nil {
		return nil, fmt.Errorf("convert %s result: %w", val.Type().TypeName(), err)
	}
	pv, ok := native.(*structpb.Value)
	if !ok {
		return nil, fmt.Errorf("convert %s result: unexpected %T", val.Type().TypeName(), native)
	}
	return pv.AsInterface(), nil
}

// Functions lists the function and macro names callable in expressions,
// without operators.
func (e *Evaluator) Functions() []string {
	seen := make(map[string]bool)
	for name := range e.env.Functions() {
		if !isOperator(name) {
			seen[name] = true
		}
	}
	for _, m := range e.env.Macros() {
		if !isOperator(m.Function()) {
			seen[m.Function()] = true
		}
	}
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func isOperator(name string) bool {
	return strings.HasPrefix(name, "@") ||
		strings.HasPrefix(name, "!") ||
		strings.HasPrefix(name, "-") ||
		strings.HasPrefix(name, "_")
}
