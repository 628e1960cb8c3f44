package search

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/getmockd/magemock/pkg/magento"
)

// env is what a condition expression sees: the document's field value and
// the filter's value, each in the forms the conditions compare.
type env struct {
	Value   any      `expr:"value"`
	Text    string   `expr:"text"`
	Number  float64  `expr:"number"`
	Target  string   `expr:"target"`
	Want    float64  `expr:"want"`
	Numeric bool     `expr:"numeric"`
	Targets []string `expr:"targets"`
	Set     []string `expr:"set"`
	Pattern string   `expr:"pattern"`
}

const defaultCondition = "eq"

var conditionSource = map[string]string{
	"eq":      `text == target`,
	"neq":     `text != target`,
	"like":    `value != nil && text matches pattern`,
	"nlike":   `value != nil && not (text matches pattern)`,
	"in":      `text in targets`,
	"nin":     `text not in targets`,
	"gt":      `numeric ? number > want : text > target`,
	"gteq":    `numeric ? number >= want : text >= target`,
	"lt":      `numeric ? number < want : text < target`,
	"lteq":    `numeric ? number <= want : text <= target`,
	"from":    `numeric ? number >= want : text >= target`,
	"to":      `numeric ? number <= want : text <= target`,
	"null":    `value == nil`,
	"notnull": `value != nil`,
	"finset":  `target in set`,
}

var programs = compileConditions()

func compileConditions() map[string]*vm.Program {
	out := make(map[string]*vm.Program, len(conditionSource))
	for name, src := range conditionSource {
		program, err := expr.Compile(src, expr.Env(env{}), expr.AsBool())
		if err != nil {
			panic(fmt.Sprintf("search: compile condition %q: %v", name, err))
		}
		out[name] = program
	}
	return out
}

// matchFilter evaluates f against the resolved field value.
func matchFilter(f Filter, value any) (bool, error) {
	cond := strings.ToLower(f.ConditionType)
	if cond == "" {
		cond = defaultCondition
	}
	program, ok := programs[cond]
	if !ok {
		return false, &magento.ValidationError{
			Message: fmt.Sprintf("Invalid value of %q provided for the condition_type field.", f.ConditionType),
			Field:   "condition_type",
		}
	}

	text := textOf(value)
	number, isNumber := numberOf(value)
	want, wantNumber := numberOf(f.Value)
	e := env{
		Value:   value,
		Text:    text,
		Number:  number,
		Target:  f.Value,
		Want:    want,
		Numeric: isNumber && wantNumber,
		Targets: splitList(f.Value),
		Set:     splitList(text),
		Pattern: likePattern(f.Value),
	}

	out, err := expr.Run(program, e)
	if err != nil {
		return false, fmt.Errorf("eval condition %q: %w", cond, err)
	}
	return out.(bool), nil
}

// textOf renders a field value the way it compares against query strings.
func textOf(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		if t {
			return "1"
		}
		return "0"
	case map[string]any, []any:
		data, _ := json.Marshal(t)
		return string(data)
	}
	return fmt.Sprint(v)
}

func numberOf(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return n, err == nil
	}
	return 0, false
}

func splitList(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// likePattern converts an SQL LIKE pattern into a case-insensitive regular
// expression.
func likePattern(like string) string {
	var b strings.Builder
	b.WriteString("(?is)^")
	for _, r := range like {
		switch r {
		case '%':
			b.WriteString(".*")
		case '_':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString("$")
	return b.String()
}
