package domain

import "strings"

// Command is a verb accepted on the command line.
type Command int

const (
	// CommandNone is selected when no recognized verb is given.
	CommandNone Command = iota
	CommandHelp
	CommandMakeAll
	CommandMakeX86
	CommandMakeX64
	CommandRelease
	CommandCreate
	CommandRemove
)

var commandNames = map[Command]string{
	CommandNone:    "",
	CommandHelp:    "help",
	CommandMakeAll: "make-all",
	CommandMakeX86: "make-x86",
	CommandMakeX64: "make-x64",
	CommandRelease: "release",
	CommandCreate:  "create",
	CommandRemove:  "remove",
}

// Commands lists every recognized verb.
var Commands = []Command{
	CommandHelp,
	CommandMakeAll,
	CommandMakeX86,
	CommandMakeX64,
	CommandRelease,
	CommandCreate,
	CommandRemove,
}

// String returns the verb as typed on the command line.
// CommandNone is the empty string.
func (c Command) String() string {
	return commandNames[c]
}

// ParseCommand resolves the verb from the arguments that follow the program name.
// The first argument is matched case-insensitively. When it is a recognized verb
// the remaining arguments are returned unchanged as the pass-through list;
// otherwise CommandNone and an empty list are returned.
func ParseCommand(args []string) (Command, []string) {
	if len(args) == 0 {
		return CommandNone, nil
	}
	verb := strings.ToLower(args[0])
	for _, c := range Commands {
		if c.String() == verb {
			rest := make([]string, len(args)-1)
			copy(rest, args[1:])
			return c, rest
		}
	}
	return CommandNone, nil
}

// Target returns the single target built by a make-x86 or make-x64 command.
func (c Command) Target() (Target, bool) {
	switch c {
	case CommandMakeX86:
		return TargetX86, true
	case CommandMakeX64:
		return TargetX64, true
	default:
		return 0, false
	}
}
