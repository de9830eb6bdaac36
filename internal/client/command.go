// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
	"strings"
)

// Command names understood by [Runner].
const (
	CmdGet        = "get"
	CmdGetAsync   = "get-async"
	CmdPost       = "post"
	CmdPostToken  = "post-token"
	CmdInvalidate = "invalidate"
	CmdToken      = "token"
	CmdCopy       = "copy"
	CmdHelp       = "help"
	CmdExit       = "exit"
	CmdQuit       = "quit"
)

const (
	defaultPath          = "/"
	defaultAuthenticated = "/authenticated"
)

// Default bodies of the post commands.
var (
	defaultPostBody = map[string]any{
		"content": map[string]any{"company": "Lab900", "age": 30},
	}
	defaultPostTokenBody = map[string]any{"company": "Lab900", "age": 30}
)

// commandHelp lists the commands in the order help prints them.
var commandHelp = []struct{ usage, desc string }{
	{CmdGet + " [path]", "unauthenticated GET, default " + defaultPath},
	{CmdGetAsync + " [path]", "same as get, the result is printed when it arrives"},
	{CmdPost + " [path] [json]", "unauthenticated POST with a JSON body"},
	{CmdPostToken + " [path] [json]", "authenticated POST with token refresh and retries, default " + defaultAuthenticated},
	{CmdInvalidate, "drop the cached token"},
	{CmdToken, "show whether a token is cached"},
	{CmdCopy, "copy the last response body to the clipboard"},
	{CmdHelp, "show this help"},
	{CmdExit + ", " + CmdQuit, "leave the shell"},
}

// Command is a parsed command line.
type Command struct {
	Name   string
	Method string
	Path   string
	Body   map[string]any
}

// Async reports whether the command's result may arrive after the prompt
// has been handed back.
func (c Command) Async() bool {
	return c.Name == CmdGetAsync
}

// Quit reports whether the command ends the session.
func (c Command) Quit() bool {
	return c.Name == CmdExit || c.Name == CmdQuit
}

// ParseCommand parses "name [path] [json]". The path must start with "/";
// everything after it is read as a JSON object.
func ParseCommand(line string) (Command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Command{}, ErrEmptyCommand
	}

	name, rest, _ := strings.Cut(line, " ")
	cmd := Command{Name: strings.ToLower(name)}
	rest = strings.TrimSpace(rest)

	switch cmd.Name {
	case CmdGet, CmdGetAsync:
		cmd.Method = http.MethodGet
		cmd.Path, _ = splitPath(rest, defaultPath)
	case CmdPost, CmdPostToken:
		cmd.Method = http.MethodPost

		fallbackPath, fallbackBody := defaultPath, defaultPostBody
		if cmd.Name == CmdPostToken {
			fallbackPath, fallbackBody = defaultAuthenticated, defaultPostTokenBody
		}

		var rawBody string
		cmd.Path, rawBody = splitPath(rest, fallbackPath)

		if rawBody == "" {
			cmd.Body = maps.Clone(fallbackBody)
			break
		}
		if err := json.Unmarshal([]byte(rawBody), &cmd.Body); err != nil || cmd.Body == nil {
			return Command{}, fmt.Errorf("%w: %s", ErrInvalidBody, rawBody)
		}
	case CmdInvalidate, CmdToken, CmdCopy, CmdHelp, CmdExit, CmdQuit:
	default:
		return Command{}, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	return cmd, nil
}

// splitPath takes a leading "/..." token off rest.
func splitPath(rest, fallback string) (path, remainder string) {
	if !strings.HasPrefix(rest, "/") {
		return fallback, rest
	}
	path, remainder, _ = strings.Cut(rest, " ")
	return path, strings.TrimSpace(remainder)
}

func helpText() string {
	var b strings.Builder
	b.WriteString("Available commands:\n")
	for _, h := range commandHelp {
		fmt.Fprintf(&b, "  %-28s %s\n", h.usage, h.desc)
	}
	return strings.TrimRight(b.String(), "\n")
}
