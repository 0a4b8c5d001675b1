package component

// AudioCues collects one-shot sound names raised during a tick. The host
// drains and plays them.
type AudioCues struct {
	Names []string
}

func (a *AudioCues) Push(name string) {
	if a == nil || name == "" {
		return
	}
	a.Names = append(a.Names, name)
}

var AudioCuesComponent = NewComponent[AudioCues]()
