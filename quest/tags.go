package quest

import "fmt"

// Tag is the quest event vocabulary carried by trigger volumes.
type Tag string

const (
	TagMedkit        Tag = "Medkit"
	TagAmmo          Tag = "Ammo"
	TagBattery       Tag = "Battery"
	TagSecret        Tag = "Secret"
	TagJumpLog       Tag = "JumpLog"
	TagFireTutorial  Tag = "FireTutorial"
	TagKeyInTheCity  Tag = "keyInTheCity"
	TagKey           Tag = "Key"
	TagEnterChurch   Tag = "EnterChurch"
	TagFindKey       Tag = "FindKey"
	TagEnterForest   Tag = "EnterForest"
	TagEnterCemetery Tag = "EnterCemetery"
	TagGate          Tag = "Gate"

	// TagOutOfAmmo is raised by the weapon system, never by a volume.
	TagOutOfAmmo Tag = "OutOfAmmo"
)

var volumeTags = map[Tag]struct{}{
	TagMedkit:        {},
	TagAmmo:          {},
	TagBattery:       {},
	TagSecret:        {},
	TagJumpLog:       {},
	TagFireTutorial:  {},
	TagKeyInTheCity:  {},
	TagKey:           {},
	TagEnterChurch:   {},
	TagFindKey:       {},
	TagEnterForest:   {},
	TagEnterCemetery: {},
	TagGate:          {},
}

// ParseTag validates a trigger volume tag authored in a level file.
func ParseTag(s string) (Tag, error) {
	t := Tag(s)
	if _, ok := volumeTags[t]; !ok {
		return "", fmt.Errorf("quest: unknown trigger tag %q", s)
	}
	return t, nil
}

// Pickup reports whether volumes with this tag are collectible items.
func (t Tag) Pickup() bool {
	switch t {
	case TagMedkit, TagAmmo, TagBattery, TagSecret, TagKey:
		return true
	}
	return false
}
