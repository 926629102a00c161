// Package shell implements the line-oriented command interpreter that
// drives a vfsh.Session.
//
// One command is read per line and split on whitespace. The first token
// selects a command from a fixed table; commands with the wrong number
// of arguments, and unknown commands, are ignored without output. The
// interpreter prints a blank line before every read and writes results
// and user-facing errors to its output stream. Diagnostics go to the
// vfsh.Logger instead.
//
// # Usage
//
//	sess := session.New(session.Options{})
//	interp := shell.New(sess, os.Stdin, os.Stdout)
//	if err := interp.Run(ctx); err != nil {
//	    return err
//	}
package shell
