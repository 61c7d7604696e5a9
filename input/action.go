package input

//go:generate go run golang.org/x/tools/cmd/stringer -type=Action

// Action is a logical control, decoupled from the physical key bound to it.
type Action int

const (
	MoveForward Action = iota
	MoveBackward
	MoveLeft
	MoveRight

	actionCount
)

// Actions lists every action in declaration order.
func Actions() []Action {
	actions := make([]Action, 0, actionCount)
	for a := range actionCount {
		actions = append(actions, a)
	}
	return actions
}
