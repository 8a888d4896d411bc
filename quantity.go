package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	minQuantity = 1
	maxQuantity = 9999
)

var errQuantityRange = fmt.Errorf("quantity must be between %d and %d", minQuantity, maxQuantity)

func parseQuantity(raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, errors.New("enter a quantity")
	}
	value, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, errors.New("quantity must be a whole number")
	}
	if value < minQuantity || value > maxQuantity {
		return 0, errQuantityRange
	}
	return value, nil
}

// quantityControl owns quantity entry and validation. It reports every valid
// edit through onChange and leaving the field through onBlur.
type quantityControl struct {
	input    textinput.Model
	value    int
	onChange func(int)
	onBlur   func()
}

func newQuantityControl(value int, onChange func(int), onBlur func()) *quantityControl {
	in := textinput.New()
	in.Prompt = ""
	in.CharLimit = len(strconv.Itoa(maxQuantity))
	in.Width = 6
	in.Placeholder = strconv.Itoa(minQuantity)
	in.Validate = func(s string) error {
		if strings.TrimSpace(s) == "" {
			return nil
		}
		_, err := parseQuantity(s)
		return err
	}
	q := &quantityControl{input: in, onChange: onChange, onBlur: onBlur}
	q.SetValue(value)
	return q
}

// SetValue syncs the displayed value without reporting a change.
func (q *quantityControl) SetValue(value int) {
	if value < minQuantity {
		value = minQuantity
	}
	q.value = value
	if !q.input.Focused() {
		q.input.SetValue(strconv.Itoa(value))
	}
}

func (q *quantityControl) Value() int {
	return q.value
}

func (q *quantityControl) Focused() bool {
	return q.input.Focused()
}

func (q *quantityControl) Focus() tea.Cmd {
	return q.input.Focus()
}

// Blur leaves the field. Unparseable text snaps back to the last valid value.
func (q *quantityControl) Blur() {
	if !q.input.Focused() {
		return
	}
	q.input.Blur()
	if _, err := parseQuantity(q.input.Value()); err != nil {
		q.input.SetValue(strconv.Itoa(q.value))
		q.input.Err = nil
	}
	if q.onBlur != nil {
		q.onBlur()
	}
}

func (q *quantityControl) Step(delta int) {
	next := q.value + delta
	if next < minQuantity {
		next = minQuantity
	}
	if next > maxQuantity {
		next = maxQuantity
	}
	if next == q.value {
		return
	}
	q.value = next
	q.input.SetValue(strconv.Itoa(next))
	q.input.Err = nil
	if q.onChange != nil {
		q.onChange(next)
	}
}

func (q *quantityControl) Update(msg tea.Msg) tea.Cmd {
	before := q.input.Value()
	var cmd tea.Cmd
	q.input, cmd = q.input.Update(msg)
	if q.input.Value() == before {
		return cmd
	}
	value, err := parseQuantity(q.input.Value())
	if err != nil || value == q.value {
		return cmd
	}
	q.value = value
	if q.onChange != nil {
		q.onChange(value)
	}
	return cmd
}

func (q *quantityControl) Err() error {
	if _, err := parseQuantity(q.input.Value()); err != nil && q.input.Focused() {
		return err
	}
	return nil
}

func (q *quantityControl) InputView() string {
	return q.input.View()
}
