// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the twitchy CLI. Running twitchy with
// no arguments searches live Twitch channels and prints those whose title
// mentions Rust.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pdiddy/twitchy/internal/helix"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the twitchy CLI.
var rootCmd = &cobra.Command{
	Use:   "twitchy",
	Short: "List live science & technology streams about Rust",
	Long: `twitchy pages through the Twitch Helix channel search for live channels in
"science & technology" and prints every channel whose title mentions Rust.

Credentials are read from TWITCHY_CLIENT_ID and TWITCHY_TOKEN. A .env file in
the working directory (or the file named by TWITCHY_ENV_FILE) is loaded first;
variables already set in the environment take precedence.`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runSearch,
}

// exitCode reports err on stderr and maps it to the process exit status.
// A response without data ends the search normally.
func exitCode(err error, stderr io.Writer) int {
	if err == nil || errors.Is(err, helix.ErrNoData) {
		return 0
	}
	fmt.Fprintln(stderr, err)
	return 1
}

func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	// cobra falls back to os.Args when args is nil.
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return exitCode(rootCmd.ExecuteContext(ctx), stderr)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
