package ui

import (
	"context"
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"sizelabel/internal/model"
)

// ErrCanceled is returned by Run when the user leaves the form without submitting.
var ErrCanceled = errors.New("quota form canceled")

// Run shows the quota form prefilled with form and returns the submitted values.
func Run(ctx context.Context, form model.QuotaForm, in io.Reader, out io.Writer) (model.QuotaForm, error) {
	m := NewModel(form)
	prog := tea.NewProgram(m, tea.WithContext(ctx), tea.WithInput(in), tea.WithOutput(out))
	final, err := prog.Run()
	if err != nil {
		return model.QuotaForm{}, err
	}
	fm, ok := final.(Model)
	if !ok {
		return model.QuotaForm{}, errors.New("unexpected model type")
	}
	res, submitted := fm.Result()
	if !submitted {
		return model.QuotaForm{}, ErrCanceled
	}
	return res, nil
}
