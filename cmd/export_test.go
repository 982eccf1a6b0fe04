package cmd

import (
	"bytes"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// createTestRootCmd creates a fresh root carrying the shared flag set with
// the given subcommand attached. Re-registering the flags resets their
// package-level values between tests.
func createTestRootCmd(cmd *cobra.Command) *cobra.Command {
	testRootCmd := &cobra.Command{Use: "gitgraph"}
	registerGlobalFlags(testRootCmd)
	testRootCmd.AddCommand(cmd)
	// Cobra caches inherited flag instances on the shared subcommand, so
	// a Changed marker set by one test's Execute would leak into the next.
	cmd.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
	return testRootCmd
}

// captureStdout returns command stdout output as string.
func captureStdout(cmd *cobra.Command) *bytes.Buffer {
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	return &stdout
}

// captureStderr returns command stderr output as string.
func captureStderr(cmd *cobra.Command) *bytes.Buffer {
	var stderr bytes.Buffer
	cmd.SetErr(&stderr)
	return &stderr
}
