package core

// Command is an abstract player intent, decoupled from physical keys.
// The platform translates key presses into commands; the game decides
// which commands are meaningful in its current state.
type Command int

const (
	CmdNone    Command = iota
	CmdUp              // steer up
	CmdDown            // steer down
	CmdLeft            // steer left
	CmdRight           // steer right
	CmdConfirm         // start a game from the menu
	CmdCancel          // leave the menu (terminates the game)
	CmdPause           // toggle pause
	CmdRestart         // start a new round after game over
	CmdMenu            // return to the menu after game over
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CmdNone:
		return "None"
	case CmdUp:
		return "Up"
	case CmdDown:
		return "Down"
	case CmdLeft:
		return "Left"
	case CmdRight:
		return "Right"
	case CmdConfirm:
		return "Confirm"
	case CmdCancel:
		return "Cancel"
	case CmdPause:
		return "Pause"
	case CmdRestart:
		return "Restart"
	case CmdMenu:
		return "Menu"
	default:
		return "Unknown"
	}
}

// Direction returns the steering direction for a directional command.
func (c Command) Direction() (Direction, bool) {
	switch c {
	case CmdUp:
		return DirUp, true
	case CmdDown:
		return DirDown, true
	case CmdLeft:
		return DirLeft, true
	case CmdRight:
		return DirRight, true
	default:
		return 0, false
	}
}
