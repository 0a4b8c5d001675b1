package quest

import "log"

// Outcome reports what a handled event did.
type Outcome struct {
	Fired               bool
	Flag                Flag
	Consumed            bool
	ObjectivesCompleted int
	Dialogue            bool
	Scene               string
}

// Machine owns the story flags of one level session.
type Machine struct {
	flags Flags
	table []Transition
	byTag map[Tag][]int
}

func NewMachine(table []Transition) *Machine {
	m := &Machine{
		table: append([]Transition(nil), table...),
		byTag: make(map[Tag][]int),
	}
	for i, row := range m.table {
		m.byTag[row.Tag] = append(m.byTag[row.Tag], i)
	}
	return m
}

func (m *Machine) Flags() Flags {
	if m == nil {
		return 0
	}
	return m.flags
}

func (m *Machine) Has(f Flag) bool {
	return m.Flags().Has(f)
}

// Handle fires the first eligible row for tag. Rows whose flag is already
// set, or whose precondition fails, are skipped without side effects.
func (m *Machine) Handle(tag Tag, env *Env) Outcome {
	var out Outcome
	if m == nil {
		return out
	}
	if env == nil {
		env = &Env{}
	}
	for _, i := range m.byTag[tag] {
		row := m.table[i]
		if row.Once != FlagNone && m.flags.Has(row.Once) {
			continue
		}
		if row.Require != nil && !row.Require(m.flags, env) {
			continue
		}

		flagsBefore := m.flags
		if m.flags.Set(row.Once) {
			out.Flag = row.Once
			log.Printf("quest: %s set by %s", row.Once, tag)
		}
		for _, eff := range row.Effects {
			if eff.When != nil && !eff.When(flagsBefore, env) {
				continue
			}
			if eff.Do != nil {
				eff.Do(env, &out)
			}
		}
		out.Fired = true
		return out
	}
	return out
}
