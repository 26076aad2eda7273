package main

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

// TestDemoCommand runs the full walkthrough and spot-checks the printed
// lifecycle milestones.
func TestDemoCommand(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"demo", "--size", "12", "--seed", "3"})
	require.NoError(t, rootCmd.Execute())

	out := buf.String()
	require.Contains(t, out, "---- Slices:")
	require.Contains(t, out, "---- Exclusive handles:")
	require.Contains(t, out, "---- Shared handles:")
	require.Contains(t, out, "source handle empty after move: true")
	require.Contains(t, out, "a and b alias one value, use count 2")
	require.Contains(t, out, "down the hierarchy: I am a loud value")
	require.Contains(t, out, "downcast to the wrong variant was rejected")
	require.Contains(t, out, "how many handles reference the loud value? 2")
	require.Contains(t, out, "no values left to print")
	require.Contains(t, out, "loud value disposed")
	require.Contains(t, out, "plain value disposed")
}

// TestDemoCommand_BadFlags surfaces option violations from seq.
func TestDemoCommand_BadFlags(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"demo", "--size", "0"})
	require.Error(t, rootCmd.Execute())
}
