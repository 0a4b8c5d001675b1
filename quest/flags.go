package quest

import "strings"

// Flag is one story beat. Flags only ever go from false to true.
type Flag uint8

const (
	FlagNone Flag = iota
	FlagJumpTutorial
	FlagFireTutorial
	FlagKeyInTheCity
	FlagFindKey
	FlagHasKey
	FlagChurchEntered
	FlagForestEntered
	FlagCemeteryEntered
	FlagGateUnlocked
	FlagGateOpened
	FlagReloadTip
	flagCount
)

var flagNames = [...]string{
	FlagNone:            "none",
	FlagJumpTutorial:    "jump_tutorial",
	FlagFireTutorial:    "fire_tutorial",
	FlagKeyInTheCity:    "key_in_the_city",
	FlagFindKey:         "find_key",
	FlagHasKey:          "has_key",
	FlagChurchEntered:   "church_entered",
	FlagForestEntered:   "forest_entered",
	FlagCemeteryEntered: "cemetery_entered",
	FlagGateUnlocked:    "gate_unlocked",
	FlagGateOpened:      "gate_opened",
	FlagReloadTip:       "reload_tip",
}

func (f Flag) String() string {
	if f < flagCount {
		return flagNames[f]
	}
	return "unknown"
}

// Flags is a monotonic set of story beats.
type Flags uint32

func (s Flags) Has(f Flag) bool {
	if f == FlagNone || f >= flagCount {
		return false
	}
	return s&(1<<f) != 0
}

// Set marks f and reports whether it was newly set.
func (s *Flags) Set(f Flag) bool {
	if f == FlagNone || f >= flagCount || s.Has(f) {
		return false
	}
	*s |= 1 << f
	return true
}

func (s Flags) String() string {
	var names []string
	for f := FlagNone + 1; f < flagCount; f++ {
		if s.Has(f) {
			names = append(names, f.String())
		}
	}
	return "[" + strings.Join(names, " ") + "]"
}
