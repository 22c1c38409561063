package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("BANK_NAME", "Test Bank")

	var out, logs bytes.Buffer
	in := strings.NewReader("NU\nAna\n123\n\n\nNC\n123\nD\n123\n100\nQ\n")
	require.NoError(t, run(in, &out, &logs))

	assert.Contains(t, out.String(), "WELCOME TO TEST BANK")
	assert.Contains(t, out.String(), "Deposit of R$ 100.00 completed")
	assert.Contains(t, logs.String(), "Starting session")
}

func TestRunInvalidConfig(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("BANK_AGENCY", "not-a-number")

	err := run(strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load application configuration")
}
