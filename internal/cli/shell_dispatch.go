package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// shellCommand is a typed action the list view can perform. Key events are
// mapped to commands once, here, so the model never branches on raw strings.
type shellCommand int

const (
	cmdNone shellCommand = iota
	cmdQuit
	cmdReload
	cmdNewActivity
	cmdEditSelected
	cmdDeleteSelected
	cmdCopyLink
	cmdCursorUp
	cmdCursorDown
)

// shellKeyMap binds keys to shell commands.
type shellKeyMap struct {
	Quit   key.Binding
	Reload key.Binding
	New    key.Binding
	Edit   key.Binding
	Delete key.Binding
	Copy   key.Binding
	Up     key.Binding
	Down   key.Binding
}

var shellKeys = shellKeyMap{
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c")),
	Reload: key.NewBinding(key.WithKeys("r")),
	New:    key.NewBinding(key.WithKeys("a", "n")),
	Edit:   key.NewBinding(key.WithKeys("e", "enter")),
	Delete: key.NewBinding(key.WithKeys("d", "x")),
	Copy:   key.NewBinding(key.WithKeys("c")),
	Up:     key.NewBinding(key.WithKeys("up", "k")),
	Down:   key.NewBinding(key.WithKeys("down", "j")),
}

// confirmKeyMap binds keys inside the delete confirmation prompt.
type confirmKeyMap struct {
	Accept  key.Binding
	Decline key.Binding
}

var confirmKeys = confirmKeyMap{
	Accept:  key.NewBinding(key.WithKeys("o", "y", "enter")),
	Decline: key.NewBinding(key.WithKeys("n", "esc", "q")),
}

// commandForKey maps a key event to a shell command.
func commandForKey(msg tea.KeyMsg) shellCommand {
	switch {
	case key.Matches(msg, shellKeys.Quit):
		return cmdQuit
	case key.Matches(msg, shellKeys.Reload):
		return cmdReload
	case key.Matches(msg, shellKeys.New):
		return cmdNewActivity
	case key.Matches(msg, shellKeys.Edit):
		return cmdEditSelected
	case key.Matches(msg, shellKeys.Delete):
		return cmdDeleteSelected
	case key.Matches(msg, shellKeys.Copy):
		return cmdCopyLink
	case key.Matches(msg, shellKeys.Up):
		return cmdCursorUp
	case key.Matches(msg, shellKeys.Down):
		return cmdCursorDown
	}
	return cmdNone
}
