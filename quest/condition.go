package quest

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
)

// ConditionVars are the values a trigger condition may read.
type ConditionVars struct {
	Kills          int
	InitialEnemies int
	Health         float64
	MaxHealth      float64
	Charge         float64
	HasKey         bool
	Scene          string
}

// Condition is a compiled tengo expression gating a trigger volume.
type Condition struct {
	src      string
	compiled *tengo.Compiled
}

const conditionResult = "__result"

var conditionVarNames = []string{"kills", "initial_enemies", "health", "max_health", "charge", "has_key", "scene"}

// CompileCondition compiles expr once. An empty expression yields a nil
// condition, which always passes.
func CompileCondition(expr string) (*Condition, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, nil
	}

	script := tengo.NewScript([]byte(conditionResult + " := (" + expr + ")"))
	_ = script.Add("kills", 0)
	_ = script.Add("initial_enemies", 0)
	_ = script.Add("health", 0.0)
	_ = script.Add("max_health", 0.0)
	_ = script.Add("charge", 0.0)
	_ = script.Add("has_key", false)
	_ = script.Add("scene", "")

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("quest: compile condition %q: %w", expr, err)
	}
	return &Condition{src: expr, compiled: compiled}, nil
}

func (c *Condition) String() string {
	if c == nil {
		return ""
	}
	return c.src
}

// Eval runs the expression against vars. A nil condition is true.
func (c *Condition) Eval(vars ConditionVars) (bool, error) {
	if c == nil || c.compiled == nil {
		return true, nil
	}

	values := []any{vars.Kills, vars.InitialEnemies, vars.Health, vars.MaxHealth, vars.Charge, vars.HasKey, vars.Scene}
	for i, name := range conditionVarNames {
		if err := c.compiled.Set(name, values[i]); err != nil {
			return false, fmt.Errorf("quest: condition %q set %s: %w", c.src, name, err)
		}
	}
	if err := c.compiled.Run(); err != nil {
		return false, fmt.Errorf("quest: condition %q: %w", c.src, err)
	}
	return c.compiled.Get(conditionResult).Bool(), nil
}
