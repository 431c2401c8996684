package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	wizardTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("205")).
				MarginBottom(1)
	wizardLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241"))
	wizardFocusStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205"))
	wizardHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1)
)

const (
	wizardFieldTitle = iota
	wizardFieldAuthor
	wizardFieldTags
	wizardFieldCount
)

// wizardModel collects post metadata through focused text inputs
type wizardModel struct {
	inputs   []textinput.Model
	focused  int
	done     bool
	quitting bool
}

func newWizardModel(scaffold postScaffold) wizardModel {
	titleInput := textinput.New()
	titleInput.Placeholder = "My First Post"
	titleInput.CharLimit = 120
	titleInput.Width = 40
	titleInput.Focus()
	if scaffold.Title != "" {
		titleInput.SetValue(scaffold.Title)
	} else if scaffold.Slug != "" {
		titleInput.SetValue(titleize(scaffold.Slug))
	}

	authorInput := textinput.New()
	authorInput.Placeholder = "author slug from folio.yml"
	authorInput.CharLimit = 50
	authorInput.Width = 40
	authorInput.SetValue(scaffold.Author)

	tagsInput := textinput.New()
	tagsInput.Placeholder = "go, testing"
	tagsInput.CharLimit = 120
	tagsInput.Width = 40
	tagsInput.SetValue(strings.Join(scaffold.Tags, ", "))

	return wizardModel{
		inputs: []textinput.Model{titleInput, authorInput, tagsInput},
	}
}

func (m wizardModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m wizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			if m.focused == wizardFieldCount-1 {
				m.done = true
				return m, tea.Quit
			}
			m.nextField()
			return m, nil

		case "tab", "down":
			m.nextField()
			return m, nil

		case "shift+tab", "up":
			m.focused = (m.focused + wizardFieldCount - 1) % wizardFieldCount
			m.syncFocus()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m *wizardModel) nextField() {
	m.focused = (m.focused + 1) % wizardFieldCount
	m.syncFocus()
}

func (m *wizardModel) syncFocus() {
	for i := range m.inputs {
		if i == m.focused {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

func (m wizardModel) View() string {
	if m.done || m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(wizardTitleStyle.Render("📝 New post"))
	sb.WriteString("\n")

	labels := []string{"Title", "Author", "Tags"}
	for i, input := range m.inputs {
		label := wizardLabelStyle.Render(labels[i])
		if i == m.focused {
			label = wizardFocusStyle.Render(labels[i])
		}
		sb.WriteString(fmt.Sprintf("%s\n%s\n\n", label, input.View()))
	}

	sb.WriteString(wizardHelpStyle.Render("enter: next • tab: switch • esc: cancel"))
	return sb.String()
}

// runNewWizard collects post metadata interactively.
func runNewWizard(scaffold postScaffold) (postScaffold, error) {
	p := tea.NewProgram(newWizardModel(scaffold))

	finalModel, err := p.Run()
	if err != nil {
		return scaffold, fmt.Errorf("wizard error: %w", err)
	}

	m := finalModel.(wizardModel)
	if !m.done {
		return scaffold, fmt.Errorf("post creation cancelled")
	}

	scaffold.Title = strings.TrimSpace(m.inputs[wizardFieldTitle].Value())
	scaffold.Author = strings.TrimSpace(m.inputs[wizardFieldAuthor].Value())

	scaffold.Tags = nil
	for _, tag := range strings.Split(m.inputs[wizardFieldTags].Value(), ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			scaffold.Tags = append(scaffold.Tags, tag)
		}
	}

	if scaffold.Slug == "" {
		scaffold.Slug = slugify(scaffold.Title)
	}
	return scaffold, nil
}
