package commands

import (
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/shiv50084/fantasyname/errors"
	"github.com/shiv50084/fantasyname/logger"
	"github.com/shiv50084/fantasyname/namegen"
	"github.com/shiv50084/fantasyname/namegen/pattern"
	"github.com/shiv50084/fantasyname/namegen/symbols"
)

// ForgeCmd represents the forge command
var ForgeCmd = &cobra.Command{
	Use:   "forge [pattern]",
	Short: "Generate names from a pattern",
	Long: `Generate random names from a pattern.

The pattern compiles once and renders repeatedly, so large batches cost
little more than small ones. Without a pattern argument the configured
default pattern is used.

Examples:
  namegen forge                               # Default pattern from config
  namegen forge "!BVC"                        # Capitalized one-syllable name
  namegen forge "<s|B>Vm" --count 20          # Twenty names
  namegen forge "!sV" --seed 42               # Reproducible batch
  namegen forge "!ss" --separator ", "        # One comma-separated line
  namegen forge --table elvish.toml --watch   # Re-render on table edits`,
	Args: cobra.MaximumNArgs(1),
	RunE: runForge,
}

func init() {
	ForgeCmd.Flags().IntP("count", "n", 0, "Number of names to generate (default from config)")
	ForgeCmd.Flags().Uint64("seed", 0, "Seed the random source for reproducible output")
	ForgeCmd.Flags().String("separator", "", "Separator between names (default from config)")
	ForgeCmd.Flags().String("table", "", "TOML symbol table layered over the built-in table")
	ForgeCmd.Flags().Bool("watch", false, "Re-render the batch whenever the table file changes")
}

func runForge(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	pat := patternFromArgs(args, cfg)

	count, _ := cmd.Flags().GetInt("count")
	if !cmd.Flags().Changed("count") {
		count = cfg.Count
	}
	if count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", count)
	}

	separator, _ := cmd.Flags().GetString("separator")
	if !cmd.Flags().Changed("separator") {
		separator = cfg.Separator
	}

	// An unset seed leaves rng nil, so Render falls back to the shared
	// process-wide source.
	var rng namegen.Source
	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetUint64("seed")
		rng = rand.New(rand.NewPCG(seed, seed))
	}

	tablePath := tablePathFromFlag(cmd, cfg)

	if watch, _ := cmd.Flags().GetBool("watch"); watch {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		return runForgeWatch(pat, tablePath, count, separator, rng, verbosity)
	}

	table, err := effectiveTable(tablePath)
	if err != nil {
		return err
	}

	gen, err := pattern.Compile(pat, table)
	if err != nil {
		return err
	}

	logger.Debugw("compiled pattern",
		logger.FieldPattern, pat,
		logger.FieldCount, gen.Count(),
	)

	fmt.Println(renderBatch(gen, count, separator, rng))
	return nil
}

// renderBatch renders count names joined by separator.
func renderBatch(gen namegen.Generator, count int, separator string, rng namegen.Source) string {
	names := make([]string, count)
	for i := range names {
		names[i] = gen.Render(rng)
	}
	return strings.Join(names, separator)
}

// runForgeWatch renders a batch, then re-renders it every time the table file
// changes on disk. Runs until interrupted.
func runForgeWatch(pat, tablePath string, count int, separator string, rng namegen.Source, verbosity int) error {
	if tablePath == "" {
		return errors.WithHint(
			errors.New("watch mode needs a symbol table file to watch"),
			"pass --table FILE or set the table key in namegen.toml")
	}

	printStartupBanner(verbosity, pat, tablePath)

	table, err := effectiveTable(tablePath)
	if err != nil {
		return err
	}

	gen, err := pattern.Compile(pat, table)
	if err != nil {
		return err
	}
	fmt.Println(renderBatch(gen, count, separator, rng))

	watcher, err := symbols.NewWatcher(tablePath)
	if err != nil {
		return err
	}
	defer watcher.Stop()

	watcher.OnReload(func(loaded symbols.Table) error {
		gen, err := pattern.Compile(pat, symbols.Default().Merge(loaded))
		if err != nil {
			pterm.Error.Printf("Pattern no longer compiles against the edited table:\n%v\n", err)
			return err
		}
		pterm.Println()
		fmt.Println(renderBatch(gen, count, separator, rng))
		return nil
	})

	watcher.Start()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	fmt.Println()
	logger.Infow("stopping table watch",
		logger.FieldFile, tablePath)
	return nil
}
