package main

import (
	"os"

	"github.com/maloquacious/fixturedb/internal/fixture"
	"github.com/maloquacious/fixturedb/internal/logger"
	"github.com/maloquacious/fixturedb/internal/store"
	"github.com/maloquacious/semver"
	"github.com/spf13/cobra"
)

var (
	version = semver.Version{Minor: 1, PreRelease: "alpha", Build: semver.Commit()}
)

var (
	dbPath string
	key    string
	format string
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "fixturedb",
		Short:   "Generate and inspect the encrypted SQLite test fixture",
		Long:    "fixturedb produces a deterministic, encrypted SQLite database\nfixture for the WASM-hosted reader, and can verify or dump a\npreviously generated fixture.",
		Version: version.String(),
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", store.DefaultDBFile, "path of the fixture database file")
	rootCmd.PersistentFlags().StringVar(&key, "key", fixture.DefaultKey, "encryption key for the fixture")

	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "Destroy and regenerate the fixture from the seed data",
		RunE:  runBuild,
	}

	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Open an existing fixture read-only and check its contents",
		RunE:  runVerify,
	}

	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the full contents of both fixture tables",
		RunE:  runDump,
	}
	dumpCmd.Flags().StringVar(&format, "format", "text", "output format: text or json")

	rootCmd.AddCommand(buildCmd, verifyCmd, dumpCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newBuilder() *fixture.Builder {
	return fixture.New(dbPath, key, logger.Default, os.Stdout)
}

func runBuild(cmd *cobra.Command, args []string) error {
	return newBuilder().Build(cmd.Context())
}

func runVerify(cmd *cobra.Command, args []string) error {
	return newBuilder().Verify(cmd.Context())
}

func runDump(cmd *cobra.Command, args []string) error {
	return newBuilder().Dump(cmd.Context(), format)
}
