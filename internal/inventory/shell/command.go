package shell

import (
	"fmt"
	"strings"

	perrors "github.com/abgdnv/inventory/internal/inventory/errors"
)

// Command is a menu action selected by the operator.
type Command int

const (
	CmdViewAll Command = iota
	CmdViewByCategory
	CmdAdd
	CmdUpdate
	CmdDelete
	CmdExit
)

// Commands lists every command in menu order.
var Commands = []Command{CmdViewAll, CmdViewByCategory, CmdAdd, CmdUpdate, CmdDelete, CmdExit}

type commandInfo struct {
	token       string
	alias       string
	description string
}

var commandTable = map[Command]commandInfo{
	CmdViewAll:        {token: "vap", alias: "view-all", description: "view all products"},
	CmdViewByCategory: {token: "vp", alias: "view-by-category", description: "view products by category"},
	CmdAdd:            {token: "ap", alias: "add", description: "add a product"},
	CmdUpdate:         {token: "up", alias: "update", description: "update products by name"},
	CmdDelete:         {token: "dp", alias: "delete", description: "delete products by name"},
	CmdExit:           {token: "ex", alias: "exit", description: "exit"},
}

// String returns the short menu token of the command.
func (c Command) String() string {
	if info, ok := commandTable[c]; ok {
		return info.token
	}
	return "unknown"
}

// ParseCommand maps a menu token, or its long alias, to a Command. Matching ignores case
// and surrounding whitespace. Unknown tokens return ErrUnrecognizedCommand.
func ParseCommand(token string) (Command, error) {
	token = strings.ToLower(strings.TrimSpace(token))
	for _, c := range Commands {
		info := commandTable[c]
		if token == info.token || token == info.alias {
			return c, nil
		}
	}
	return 0, perrors.ErrUnrecognizedCommand
}

// menu renders the list of actions shown before every prompt.
func menu() string {
	var b strings.Builder
	b.WriteString("\nChoose an action:\n")
	for _, c := range Commands {
		info := commandTable[c]
		fmt.Fprintf(&b, "  %-4s %-17s - %s\n", info.token, info.alias, info.description)
	}
	return b.String()
}
