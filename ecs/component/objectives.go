package component

// Objectives is the level's ordered objective list.
type Objectives struct {
	Items     []string
	Completed int
}

// Current returns the text of the next incomplete objective.
func (o *Objectives) Current() string {
	if o == nil || o.Completed >= len(o.Items) {
		return ""
	}
	return o.Items[o.Completed]
}

var ObjectivesComponent = NewComponent[Objectives]()
