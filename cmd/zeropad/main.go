package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Nomadcxx/zeropad/internal/config"
	"github.com/Nomadcxx/zeropad/internal/plan"
	"github.com/Nomadcxx/zeropad/internal/rename"
	"github.com/Nomadcxx/zeropad/internal/reporter"
	"github.com/Nomadcxx/zeropad/internal/scan"
	"github.com/Nomadcxx/zeropad/internal/ui"
)

var (
	cfgFile   string
	assumeYes bool
	dryRun    bool

	// Version information (set via -ldflags during build)
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

const exampleConfig = `[rename]
assume_yes = false    # skip the confirmation prompt
write_history = true  # log applied renames to ~/.local/share/zeropad/history.log

[ui]
no_color = false
`

var rootCmd = &cobra.Command{
	Use:   "zeropad",
	Short: "Zero-pad numbered filenames so alphabetical order matches numeric order",
	Long: "zeropad renames sibling files whose names carry an ascending index in\n" +
		"parentheses, like \"paris (1).jpg\" ... \"paris (734).jpg\", padding the\n" +
		"index with zeros so that sorting the directory alphabetically also sorts\n" +
		"it numerically.",
}

var planCmd = &cobra.Command{
	Use:   "plan [directory]",
	Short: "Show what rename would do, without touching any file",
	Args:  cobra.MaximumNArgs(1),
	Run:   runPlan,
}

var renameCmd = &cobra.Command{
	Use:   "rename [directory]",
	Short: "Zero-pad the numbered files in a directory",
	Args:  cobra.MaximumNArgs(1),
	Run:   runRename,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration file location and contents",
	Run:   runConfig,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("zeropad %s\n", version)
		fmt.Printf("  Commit:     %s\n", commit)
		fmt.Printf("  Built:      %s\n", buildTime)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/zeropad/config.toml)")
	renameCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "apply without asking for confirmation")
	renameCmd.Flags().BoolVar(&dryRun, "dry-run", false, "show what would be renamed without renaming")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(renameCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runPlan(cmd *cobra.Command, args []string) {
	dir := targetDir(args)

	report, err := buildReport(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Print(report.Summary())

	if report.Empty() {
		fmt.Println(statusInfo("No numbered files found, nothing to do."))
		return
	}

	if err := plan.Validate(report.Plan, dir); err != nil {
		fmt.Println(statusWarn(fmt.Sprintf("Plan cannot be applied: %v", err)))
		os.Exit(1)
	}
	fmt.Println(statusOK("Plan is valid and can be applied."))
}

func runRename(cmd *cobra.Command, args []string) {
	dir := targetDir(args)

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	noColor = cfg.UI.NoColor

	report, err := buildReport(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if report.Empty() {
		fmt.Println(statusInfo(fmt.Sprintf("No numbered files found in %s, nothing to do.", dir)))
		return
	}

	// Validate before showing the prompt so the user never confirms a
	// plan that cannot run.
	if err := plan.Validate(report.Plan, dir); err != nil {
		fmt.Fprintln(os.Stderr, statusFail(fmt.Sprintf("Cannot rename: %v", err)))
		os.Exit(1)
	}

	if len(report.Plan.Renames()) == 0 {
		fmt.Print(report.Summary())
		fmt.Println(statusOK("All files are already padded correctly."))
		return
	}

	if dryRun {
		fmt.Print(report.Summary())
		fmt.Println(statusInfo("Dry run, no files were renamed."))
		return
	}

	confirmed := assumeYes || cfg.Rename.AssumeYes
	if !confirmed {
		confirmed, err = ui.Confirm(report)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	} else {
		fmt.Print(report.Summary())
	}

	if !confirmed {
		fmt.Println(statusInfo("Rename cancelled."))
		return
	}

	result, err := rename.Apply(report.Plan, dir, false)
	if err != nil {
		fmt.Fprintln(os.Stderr, statusFail(err.Error()))
		os.Exit(1)
	}

	fmt.Println(statusOK(fmt.Sprintf("Renamed %d files (%d already correct).",
		result.Renamed, result.Unchanged)))

	if cfg.Rename.WriteHistory {
		writeHistory(dir, result)
	}
}

func runConfig(cmd *cobra.Command, args []string) {
	configPath, err := config.ConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Configuration file: %s\n\n", configPath)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Println("Config file does not exist. It is created on the first rename,")
		fmt.Println("or create it yourself:")
		fmt.Printf("\n  mkdir -p %s\n", filepath.Dir(configPath))
		fmt.Printf("  cat > %s <<EOF\n", configPath)
		fmt.Print(exampleConfig)
		fmt.Println("EOF")
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Current configuration:")
	fmt.Printf("\nRename:\n")
	fmt.Printf("  Assume yes:    %v\n", cfg.Rename.AssumeYes)
	fmt.Printf("  Write history: %v\n", cfg.Rename.WriteHistory)
	fmt.Printf("\nUI:\n")
	fmt.Printf("  No color: %v\n", cfg.UI.NoColor)
}

// targetDir resolves the positional directory argument, defaulting to the
// working directory.
func targetDir(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot determine working directory: %v\n", err)
		os.Exit(1)
	}
	return wd
}

// buildReport scans dir and builds the rename plan report.
func buildReport(dir string) (reporter.Report, error) {
	result, err := scan.Directory(dir)
	if err != nil {
		return reporter.Report{}, err
	}
	return reporter.New(dir, plan.Build(result.Files), result.Skipped), nil
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.LoadFile(cfgFile)
	}
	return config.Load()
}

func writeHistory(dir string, result rename.Result) {
	historyPath, err := config.HistoryPath()
	if err != nil {
		fmt.Fprintln(os.Stderr, statusWarn(fmt.Sprintf("Could not locate history file: %v", err)))
		return
	}
	if err := reporter.AppendHistory(historyPath, dir, result.Entries); err != nil {
		fmt.Fprintln(os.Stderr, statusWarn(fmt.Sprintf("Could not write history: %v", err)))
	}
}

// noColor disables the lipgloss status markers; plain markers keep the
// output grep-able when styling is off.
var noColor bool

func statusOK(msg string) string {
	if noColor {
		return "[OK] " + msg
	}
	return ui.FormatStatusOK(msg)
}

func statusInfo(msg string) string {
	if noColor {
		return "[INFO] " + msg
	}
	return ui.FormatStatusInfo(msg)
}

func statusWarn(msg string) string {
	if noColor {
		return "[WARN] " + msg
	}
	return ui.FormatStatusWarn(msg)
}

func statusFail(msg string) string {
	if noColor {
		return "[FAIL] " + msg
	}
	return ui.FormatStatusFail(msg)
}
