package menu

// State is the menu selection.
type State struct {
	SelectedIndex int
}

// Initial returns the starting state with the first entry selected.
func Initial() State {
	return State{}
}

// Action is a state transition request.
type Action interface {
	isAction()
}

// SetIndex replaces the selected index. The value is accepted as given.
type SetIndex struct {
	Index int
}

func (SetIndex) isAction() {}

// Reduce returns the state that results from applying a to s. Actions it does
// not recognise leave s unchanged.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case SetIndex:
		s.SelectedIndex = a.Index
	case *SetIndex:
		if a != nil {
			s.SelectedIndex = a.Index
		}
	}
	return s
}
