package commands

import (
	"fmt"

	"github.com/shiv50084/fantasyname/logger"
	"github.com/shiv50084/fantasyname/version"
)

// printStartupBanner prints the user-friendly watch-mode startup message
func printStartupBanner(verbosity int, pat string, tablePath string) {
	// ANSI escape codes
	cyan := "\033[36m"
	green := "\033[32m"
	yellow := "\033[33m"
	blue := "\033[34m"
	bold := "\033[1m"
	reset := "\033[0m"

	versionInfo := version.Get()

	fmt.Printf("\n%s%s", cyan, bold)
	fmt.Printf("   ╔═══════════════════════════════════════════════╗\n")
	fmt.Printf("   ║                                               ║\n")
	fmt.Printf("   ║              ███   ██   ██████                ║\n")
	fmt.Printf("   ║              ████  ██  ██                     ║\n")
	fmt.Printf("   ║              ██ ██ ██  ██  ████               ║\n")
	fmt.Printf("   ║              ██  ████  ██    ██               ║\n")
	fmt.Printf("   ║              ██   ███   ██████                ║\n")
	fmt.Printf("   ║                                               ║\n")
	fmt.Printf("   ║              n  a  m  e  g  e  n              ║\n")
	fmt.Printf("   ║                                               ║\n")
	fmt.Printf("   ╚═══════════════════════════════════════════════╝%s\n\n", reset)

	fmt.Printf("%s%s┌─ namegen Info ─────────────────────────────────┐%s\n", green, bold, reset)
	fmt.Printf("%s│%s Version:   %s (commit %s)\n", green, reset, versionInfo.Version, versionInfo.Short())
	fmt.Printf("%s│%s Built:     %s\n", green, reset, versionInfo.BuildTime)
	fmt.Printf("%s│%s Verbosity: %s\n", green, reset, logger.LevelName(verbosity))
	fmt.Printf("%s│%s Pattern:   %s\n", green, reset, pat)
	if tablePath != "" {
		fmt.Printf("%s│%s Table:     %s\n", green, reset, tablePath)
	}
	fmt.Printf("%s└────────────────────────────────────────────────┘%s\n", green, reset)

	fmt.Printf("\n%s%s✨ Edit the table file and save to re-render the batch%s\n", yellow, bold, reset)
	fmt.Printf("%s💡 Press Ctrl+C to stop%s\n\n", blue, reset)
}
