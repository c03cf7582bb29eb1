package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestProbe_Kinds(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"default string", []string{"probe"}, "message: gus\nok: true\n"},
		{"bytes", []string{"probe", "--kind", "bytes"}, "message: gus\nok: true\n"},
		{"int", []string{"probe", "--kind", "int", "--value", "1"}, "message: Box<dyn Any>\nok: false\n"},
		{"error", []string{"probe", "-k", "error"}, "message: Box<dyn Any>\nok: false\n"},
		{"nil", []string{"probe", "-k", "nil"}, "message: Box<dyn Any>\nok: false\n"},
		{"boxed twice", []string{"probe", "-k", "boxed"}, "message: Box<dyn Any>\nok: false\n"},
		{"nil dereference", []string{"probe", "-k", "nilderef"}, "message: Box<dyn Any>\nok: false\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestProbe_Verbose(t *testing.T) {
	out, err := execute(t, "probe", "--verbose", "--value", "hello")
	require.NoError(t, err)
	assert.Contains(t, out, "message: hello\nok: true\n")
	assert.Contains(t, out, `msg="hello" id=`)
	assert.Contains(t, out, "\nstack:")
}

func TestProbe_Errors(t *testing.T) {
	_, err := execute(t, "probe", "--kind", "float")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown kind "float"`)

	_, err = execute(t, "probe", "--kind", "int", "--value", "gus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be an integer")
}

func TestTriggerKinds_Sorted(t *testing.T) {
	assert.Equal(t,
		[]string{"boxed", "bytes", "error", "int", "nil", "nilderef", "string"},
		triggerKinds())
}
