// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Command
	}{
		{
			name: "get default path",
			line: "get",
			want: Command{Name: CmdGet, Method: http.MethodGet, Path: "/"},
		},
		{
			name: "get with path",
			line: "  GET /status ",
			want: Command{Name: CmdGet, Method: http.MethodGet, Path: "/status"},
		},
		{
			name: "get-async",
			line: "get-async /slow",
			want: Command{Name: CmdGetAsync, Method: http.MethodGet, Path: "/slow"},
		},
		{
			name: "post defaults",
			line: "post",
			want: Command{
				Name:   CmdPost,
				Method: http.MethodPost,
				Path:   "/",
				Body:   map[string]any{"content": map[string]any{"company": "Lab900", "age": 30}},
			},
		},
		{
			name: "post-token defaults",
			line: "post-token",
			want: Command{
				Name:   CmdPostToken,
				Method: http.MethodPost,
				Path:   "/authenticated",
				Body:   map[string]any{"company": "Lab900", "age": 30},
			},
		},
		{
			name: "post-token with path and body",
			line: `post-token /orders {"id": 7, "note": "two words"}`,
			want: Command{
				Name:   CmdPostToken,
				Method: http.MethodPost,
				Path:   "/orders",
				Body:   map[string]any{"id": float64(7), "note": "two words"},
			},
		},
		{
			name: "post with body only",
			line: `post {"a":true}`,
			want: Command{Name: CmdPost, Method: http.MethodPost, Path: "/", Body: map[string]any{"a": true}},
		},
		{name: "invalidate", line: "invalidate", want: Command{Name: CmdInvalidate}},
		{name: "token", line: "token", want: Command{Name: CmdToken}},
		{name: "copy", line: "copy", want: Command{Name: CmdCopy}},
		{name: "help", line: "help", want: Command{Name: CmdHelp}},
		{name: "quit", line: "quit", want: Command{Name: CmdQuit}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCommand(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCommand_Errors(t *testing.T) {
	tests := []struct {
		line    string
		wantErr error
	}{
		{line: "", wantErr: ErrEmptyCommand},
		{line: "   ", wantErr: ErrEmptyCommand},
		{line: "delete /x", wantErr: ErrUnknownCommand},
		{line: "post /x {broken", wantErr: ErrInvalidBody},
		{line: "post /x [1,2]", wantErr: ErrInvalidBody},
		{line: "post-token /x null", wantErr: ErrInvalidBody},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := ParseCommand(tt.line)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseCommand_DefaultBodiesAreCopies(t *testing.T) {
	first, err := ParseCommand("post-token")
	require.NoError(t, err)
	first.Body["company"] = "changed"

	second, err := ParseCommand("post-token")
	require.NoError(t, err)
	assert.Equal(t, "Lab900", second.Body["company"])
}

func TestCommand_Flags(t *testing.T) {
	assert.True(t, Command{Name: CmdGetAsync}.Async())
	assert.False(t, Command{Name: CmdGet}.Async())
	assert.True(t, Command{Name: CmdExit}.Quit())
	assert.True(t, Command{Name: CmdQuit}.Quit())
	assert.False(t, Command{Name: CmdHelp}.Quit())
}

func TestHelpTextListsEveryCommand(t *testing.T) {
	text := helpText()
	for _, name := range []string{CmdGet, CmdGetAsync, CmdPost, CmdPostToken, CmdInvalidate, CmdToken, CmdCopy, CmdHelp, CmdExit, CmdQuit} {
		assert.Contains(t, text, name)
	}
}
