package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "1", want: 1},
		{in: " 250 ", want: 250},
		{in: "9999", want: 9999},
		{in: "0", wantErr: true},
		{in: "10000", wantErr: true},
		{in: "-3", wantErr: true},
		{in: "2.5", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseQuantity(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuantityControl(t *testing.T) {
	var changes []int
	blurs := 0
	q := newQuantityControl(3, func(v int) { changes = append(changes, v) }, func() { blurs++ })

	q.Step(-1)
	q.Step(-1)
	q.Step(-1)
	assert.Equal(t, []int{2, 1}, changes)
	assert.Equal(t, 1, q.Value())

	q.Focus()
	q.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("0")})
	assert.Equal(t, []int{2, 1, 10}, changes)

	q.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Error(t, q.Err())
	assert.Len(t, changes, 3)

	q.Blur()
	assert.Equal(t, 1, blurs)
	assert.NoError(t, q.Err())
	assert.Equal(t, "10", q.input.Value())

	// blurring an unfocused field reports nothing
	q.Blur()
	assert.Equal(t, 1, blurs)
}

func TestQuantityControlSetValueIsSilent(t *testing.T) {
	calls := 0
	q := newQuantityControl(1, func(int) { calls++ }, nil)
	q.SetValue(40)
	assert.Equal(t, 40, q.Value())
	assert.Equal(t, "40", q.input.Value())
	assert.Zero(t, calls)

	q.Step(maxQuantity)
	assert.Equal(t, maxQuantity, q.Value())
	q.Step(1)
	assert.Equal(t, 1, calls)
}
