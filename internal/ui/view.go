package ui

import (
	"fmt"
	"strings"

	"sizelabel/internal/util/format"
)

func (m Model) viewHeader() string {
	name := m.repo
	if name == "" {
		name = "(unnamed)"
	}
	title := m.styles.Title.Render("Repository quotas: " + name)
	sub := m.styles.Subtitle.Render("Sizes accept 1536, 1.5k, 2GB; 0 or empty means unlimited")
	return title + "\n" + sub
}

func (m Model) viewField(i int) string {
	fs := m.fields[i]
	titleStyle := m.styles.FieldTitle
	if i == m.focus {
		titleStyle = m.styles.Focused
	}

	labelStyle := m.styles.Label
	switch {
	case fs.err != nil:
		labelStyle = m.styles.Error
	case fs.label == format.UnlimitedLabel:
		labelStyle = m.styles.Unlimited
	}

	line := fmt.Sprintf("%s %s  %s", titleStyle.Render(fs.field.Title()), fs.input.View(), labelStyle.Render(fs.label))
	if fs.err != nil && i == m.focus {
		line += "\n" + m.styles.Error.Render("  "+fs.err.Error())
	}
	return m.styles.Box.Render(line)
}

func (m Model) View() string {
	if m.submitted || m.canceled {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n\n")
	for i := range m.fields {
		b.WriteString(m.viewField(i))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Faint.Render(m.help.View(m.keys)))
	return b.String()
}
