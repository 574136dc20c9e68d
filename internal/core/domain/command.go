package domain

import "strings"

// Command is an external process invocation.
type Command struct {
	Args []string
	Dir  string
	// Env holds the overlays applied on top of the process environment.
	Env *BuildContext
}

// String renders the argument vector for logs.
func (c Command) String() string {
	return strings.Join(c.Args, " ")
}

// CommandResult is the captured outcome of a finished process.
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Success reports whether the process exited with status zero.
func (r CommandResult) Success() bool {
	return r.ExitCode == 0
}

// Transcript joins stdout and stderr for diagnostics.
func (r CommandResult) Transcript() string {
	switch {
	case r.Stderr == "":
		return r.Stdout
	case r.Stdout == "":
		return r.Stderr
	default:
		return r.Stdout + "\n" + r.Stderr
	}
}

// Script is a bash session that sources a setup file before running its lines.
type Script struct {
	// Source is read with ". <Source>" before the lines run.
	Source string
	// Eval is a command whose output is evaluated with "eval $(<Eval>)" before the lines run.
	Eval  string
	Lines []string
	Dir   string
	Env   *BuildContext
}

// Render produces the script text.
func (s Script) Render() string {
	var b strings.Builder
	b.WriteString("#!/bin/bash\n")
	b.WriteString("set -e\n")
	if s.Source != "" {
		b.WriteString(". " + ShellQuote(s.Source) + "\n")
	}
	if s.Eval != "" {
		b.WriteString("eval $(" + ShellQuote(s.Eval) + ")\n")
	}
	for _, line := range s.Lines {
		b.WriteString(line + "\n")
	}
	return b.String()
}

// ShellQuote returns word as a single bash word. Words made only of characters the shell
// leaves alone are returned unchanged.
func ShellQuote(word string) string {
	if word == "" {
		return "''"
	}
	if strings.IndexFunc(word, needsQuoting) < 0 {
		return word
	}
	return "'" + strings.ReplaceAll(word, "'", `'"'"'`) + "'"
}

func needsQuoting(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return false
	case strings.ContainsRune("@%+=:,./-_", r):
		return false
	default:
		return true
	}
}
