package shell

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss/tree"

	"github.com/vvka-141/vfsh/pkg/vfsh"
)

// Messages printed for user-facing errors.
const (
	MsgDirectoryNotFound = "Directory does not exist"
	MsgInvalidFormat     = "invalid format"
	MsgInvalidSize       = "invalid size"
)

// anyArgs marks a command that ignores its arguments.
const anyArgs = -1

type command struct {
	name        string
	usage       string
	description string
	args        int
	quit        bool
	run         func(i *Interpreter, args []string)
}

func (c command) accepts(n int) bool {
	return c.args == anyArgs || c.args == n
}

// defaultCommands returns the command table in help order.
func defaultCommands() []command {
	return []command{
		{name: "cd", usage: "cd [file/folder/..]", description: "Change directory location", args: anyArgs, run: runCd},
		{name: "ls", usage: "ls", description: "List all files/folders in current directory", args: anyArgs, run: runLs},
		{name: "size", usage: "size", description: "Return total size of current directory", args: anyArgs, run: runSize},
		{name: "createfile", usage: "createfile [name] [size]", description: "Creates file of name with size in current directory", args: 2, run: runCreateFile},
		{name: "createfolder", usage: "createfolder [name]", description: "Creates folder of name in current directory", args: 1, run: runCreateFolder},
		{name: "delete", usage: "delete [f/d] [name]", description: "Deletes file(f) or folder(d) of name in current directory", args: 2, run: runDelete},
		{name: "pwd", usage: "pwd", description: "Print path of current directory", args: anyArgs, run: runPwd},
		{name: "tree", usage: "tree", description: "Display current directory as a tree", args: anyArgs, run: runTree},
		{name: "help", usage: "help", description: "Displays available commands", args: anyArgs, run: runHelp},
		{name: "exit", usage: "exit", description: "Closes application", args: anyArgs, quit: true},
	}
}

// runCd with anything but one argument looks for a folder literally named
// "cd", so a bare cd reports a missing directory unless such a folder exists.
func runCd(i *Interpreter, args []string) {
	target := "cd"
	if len(args) == 1 {
		target = args[0]
	}
	if err := i.session.ChangeDirectory(target); err != nil {
		if errors.Is(err, vfsh.ErrDirectoryNotFound) {
			i.printError(MsgDirectoryNotFound)
			return
		}
		i.logger.Error("cd: %v", err)
	}
}

func runLs(i *Interpreter, _ []string) {
	listing := i.session.List()
	for _, f := range listing.Files {
		i.println(f.Name)
	}
	for _, d := range listing.Dirs {
		i.println(i.styles.dir(d.Name + vfsh.DirSuffix))
	}
}

func runSize(i *Interpreter, _ []string) {
	i.println("Size: " + i.styles.size(strconv.FormatInt(i.session.TotalSize(), 10)))
}

func runCreateFile(i *Interpreter, args []string) {
	size, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		i.logger.Verbose("createfile %s: %q: %v", args[0], args[1], err)
		i.printError(MsgInvalidFormat)
		return
	}
	if err := i.session.CreateFile(args[0], size); err != nil {
		if errors.Is(err, vfsh.ErrNegativeSize) {
			i.printError(MsgInvalidSize)
			return
		}
		i.logger.Error("createfile: %v", err)
	}
}

func runCreateFolder(i *Interpreter, args []string) {
	if err := i.session.CreateFolder(args[0]); err != nil {
		i.logger.Error("createfolder: %v", err)
	}
}

func runDelete(i *Interpreter, args []string) {
	switch args[0] {
	case "f":
		i.session.DeleteFile(args[1])
	case "d":
		i.session.DeleteFolder(args[1])
	default:
		i.logger.Verbose("delete: unknown kind %q ignored", args[0])
	}
}

func runPwd(i *Interpreter, _ []string) {
	i.println(i.session.Path())
}

func runTree(i *Interpreter, _ []string) {
	i.println(renderTree(i.session.Snapshot(), i.styles).String())
}

func renderTree(node vfsh.Node, styles Styles) *tree.Tree {
	t := tree.Root(styles.dir(node.Name + vfsh.DirSuffix))
	for _, d := range node.Dirs {
		t.Child(renderTree(d, styles))
	}
	for _, f := range node.Files {
		t.Child(fmt.Sprintf("%s (%s)", f.Name, styles.size(strconv.FormatInt(f.Size, 10))))
	}
	return t
}

func runHelp(i *Interpreter, _ []string) {
	i.printHelp()
}
