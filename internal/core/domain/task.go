package domain

// Task is the context of one invocation. It is created once at startup and
// read by every handler.
type Task struct {
	// Program is the base name the tool was invoked as.
	Program string
	// Argv holds the raw arguments following the program name.
	Argv []string
	// Layout resolves every project path.
	Layout Layout
	// Config holds the settings loaded for this invocation.
	Config Config
	// Command is the resolved verb.
	Command Command
	// Args are passed through to the build tool.
	Args []string
}

// NewTask resolves the command of argv and bundles it with the invocation's
// layout and config.
func NewTask(program string, argv []string, layout Layout, cfg Config) *Task {
	cmd, args := ParseCommand(argv)
	return &Task{
		Program: program,
		Argv:    argv,
		Layout:  layout,
		Config:  cfg,
		Command: cmd,
		Args:    args,
	}
}

// Invocation describes one child process.
type Invocation struct {
	// Name is the program to run. A bare name is looked up in PATH.
	Name string
	// Args are the program's arguments.
	Args []string
	// Dir is the working directory of the process.
	Dir string
}

// String renders the invocation the way a shell user would type it.
func (i Invocation) String() string {
	s := i.Name
	for _, a := range i.Args {
		s += " " + a
	}
	return s
}
