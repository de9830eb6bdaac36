// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/go-token-client/models"
)

func (m shellModel) View() string {
	var b strings.Builder

	b.WriteString(renderHeader(m.buildInfo))
	b.WriteString("\n\n")

	for _, line := range m.lines {
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.quitting {
		return b.String()
	}

	if m.inFlight > 0 {
		b.WriteString(m.spinner.View())
		b.WriteString(" waiting for ")
		b.WriteString(pluralRequests(m.inFlight))
		b.WriteString("\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: run  up/down: history  ctrl+c: quit"))

	return b.String()
}

func renderHeader(info models.AppBuildInfo) string {
	return titleStyle.Render("go-token-client "+info.BuildVersion()) + "\n" +
		helpStyle.Render("type help to list the commands")
}

func pluralRequests(n int) string {
	if n == 1 {
		return "1 request"
	}
	return strconv.Itoa(n) + " requests"
}
