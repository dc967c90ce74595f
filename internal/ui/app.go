package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// AppModel is the root model. It hosts the search screen and forwards
// every message to it.
type AppModel struct {
	Search *SearchView
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Search.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	v, cmd := a.Search.Update(msg)
	if s, ok := v.(*SearchView); ok {
		a.Search = s
	}
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	return a.Search.View()
}

// NewAppModel creates the root application model around search.
func NewAppModel(search *SearchView) *AppModel {
	return &AppModel{Search: search}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}
