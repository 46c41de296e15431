package presentable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/settingsdeck/internal/domain/presentable"
)

func TestText(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "nil", in: nil, want: "None"},
		{name: "string", in: "stdout", want: "stdout"},
		{name: "bool", in: true, want: "true"},
		{name: "strings", in: []string{"settings", "sample"}, want: "settings, sample"},
		{name: "values", in: []any{true, false}, want: "true, false"},
		{name: "cli", in: presentable.CliParameters{Long: "--mode", Short: "-m"}, want: "--mode, -m"},
		{name: "empty values", in: []any{}, want: ""},
		{name: "nested map", in: map[string]any{"app": map[string]any{"mode": "<------"}}, want: "app:\n  mode: <------"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, presentable.Text(tt.in))
		})
	}
}

func TestEntry_GetText(t *testing.T) {
	e := presentable.Entry{Subcommands: []string{"settings"}, Default: true}

	got, err := e.GetText("subcommands")
	require.NoError(t, err)
	assert.Equal(t, "settings", got)

	got, err = e.GetText("default")
	require.NoError(t, err)
	assert.Equal(t, "true", got)

	_, err = e.GetText("bogus")
	require.ErrorIs(t, err, presentable.ErrUnknownField)
}
