package main

import (
	"fmt"
	"io"
	"os"

	"github.com/IvanShishkin/burrow/internal/config"
	"github.com/IvanShishkin/burrow/internal/core"
	"github.com/IvanShishkin/burrow/internal/filesystem"
	"github.com/IvanShishkin/burrow/internal/report"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var version = "0.1.0"

// app carries the state shared by all commands of one invocation
type app struct {
	stdout     io.Writer
	stderr     io.Writer
	verbose    bool
	configFile string

	errStyle  lipgloss.Style
	warnStyle lipgloss.Style
	dimStyle  lipgloss.Style
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	r := lipgloss.NewRenderer(stderr)
	a := &app{
		stdout:    stdout,
		stderr:    stderr,
		errStyle:  r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		warnStyle: r.NewStyle().Foreground(lipgloss.Color("208")),
		dimStyle:  r.NewStyle().Foreground(lipgloss.Color("245")),
	}

	rootCmd := a.rootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(stderr, a.errStyle.Render("Error: "+err.Error()))
		return core.ExitCode(err)
	}
	return core.ExitOK
}

func (a *app) rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "burrow",
		Short: "Burrow - filesystem explorer",
		Long: `Enumerate files, directories and symbolic links below a root directory,
filter and sort them, and render the result as a table, tree, JSON, YAML or Markdown.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", "Config file (default: ~/.config/burrow/burrow.yaml or ./burrow.yaml)")

	rootCmd.AddCommand(a.scanCmd())
	rootCmd.AddCommand(a.versionCmd())

	return rootCmd
}

// newLogger builds the logger for the verbosity level
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	// Silent logger - only errors
	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapcore.ErrorLevel),
		Encoding:         "json",
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig:    zap.NewProductionEncoderConfig(),
	}
	return cfg.Build()
}

// scanCmd creates the scan command
func (a *app) scanCmd() *cobra.Command {
	var (
		path            string
		recursive       bool
		depth           int
		hidden          bool
		maxEntries      int
		ext             string
		minSize         string
		name            string
		caseInsensitive bool
		gitignore       bool
		sortKey         string
		sortDirs        bool
		format          string
		color           string
		human           bool
		outputFile      string
	)

	cmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "List the entries below a directory",
		Long: `Scan a directory and list its entries. Only the immediate children are
listed unless --recursive is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(a.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer logger.Sync()

			// Load configuration
			cfg, err := config.LoadConfig(a.configFile)
			if err != nil {
				logger.Error("Failed to load config", zap.Error(err))
				return err
			}

			// Override config with CLI flags
			flags := cmd.Flags()
			if flags.Changed("path") {
				cfg.Path = path
			}
			if len(args) > 0 {
				cfg.Path = args[0]
			}
			if flags.Changed("recursive") {
				cfg.Recursive = recursive
			}
			if flags.Changed("depth") {
				cfg.MaxDepth = depth
			}
			if flags.Changed("hidden") {
				cfg.ShowHidden = hidden
			}
			if flags.Changed("max") {
				cfg.MaxEntries = maxEntries
			}
			if flags.Changed("ext") {
				cfg.Extension = ext
			}
			if flags.Changed("min-size") {
				cfg.MinSize = minSize
			}
			if flags.Changed("name") {
				cfg.Keyword = name
			}
			if flags.Changed("ignore-case") {
				cfg.CaseInsensitive = caseInsensitive
			}
			if flags.Changed("gitignore") {
				cfg.RespectGitignore = gitignore
			}
			if flags.Changed("sort") {
				cfg.Sort = sortKey
			}
			if flags.Changed("sort-dirs") {
				cfg.SortDirs = sortDirs
			}
			if flags.Changed("format") {
				cfg.Format = format
			}
			if flags.Changed("color") {
				cfg.Color = color
			}
			if flags.Changed("human") {
				cfg.HumanSizes = human
			}
			if flags.Changed("output") {
				cfg.OutputFile = outputFile
			}

			// A depth limit only makes sense for a recursive scan
			if flags.Changed("depth") && !cfg.Recursive {
				fmt.Fprintln(a.stderr, a.warnStyle.Render("⚠ --depth has no effect without --recursive"))
			}

			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid parameter: %w", err)
			}

			req, err := cfg.Request()
			if err != nil {
				return fmt.Errorf("invalid parameter: %w", err)
			}

			generator, err := report.NewGenerator(report.Options{
				Format:     cfg.Format,
				OutputFile: cfg.OutputFile,
				Color:      cfg.Color,
				HumanSizes: cfg.HumanSizes,
			}, logger)
			if err != nil {
				return err
			}
			generator.SetOutput(a.stdout)

			scanner := core.NewScanner(filesystem.OSFS(), logger)
			if a.verbose {
				scanner.SetProgressCallback(func(phase string, count int) {
					fmt.Fprintln(a.stderr, a.dimStyle.Render(fmt.Sprintf("  %-9s %d", phase, count)))
				})
			}

			// Run scan
			result, err := scanner.Scan(req)
			if err != nil {
				logger.Error("Scan failed", zap.Error(err))
				return err
			}

			reportPath, err := generator.Generate(result)
			if err != nil {
				return err
			}
			if reportPath != "" {
				fmt.Fprintf(a.stderr, "%s %s\n", a.dimStyle.Render("Report:"), reportPath)
			}

			if result.Truncated {
				fmt.Fprintln(a.stderr, a.warnStyle.Render(fmt.Sprintf(
					"⚠ Scan stopped at the limit of %d entries; results are incomplete (raise it with --max)",
					req.EntryCap())))
			}
			if result.Summary.Skipped > 0 {
				fmt.Fprintln(a.stderr, a.warnStyle.Render(fmt.Sprintf(
					"⚠ %d entries could not be read and were skipped", result.Summary.Skipped)))
			}

			return nil
		},
	}

	// Traversal flags
	cmd.Flags().StringVar(&path, "path", ".", "Directory to scan")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Descend into subdirectories")
	cmd.Flags().IntVar(&depth, "depth", 0, "Maximum depth for recursive scans (0 = unlimited)")
	cmd.Flags().BoolVar(&hidden, "hidden", false, "Include hidden entries")
	cmd.Flags().IntVar(&maxEntries, "max", 5000, "Stop after this many entries (must be positive)")

	// Filter flags
	cmd.Flags().StringVar(&ext, "ext", "", "Only files with this extension, e.g. .txt")
	cmd.Flags().StringVar(&minSize, "min-size", "", "Only files at least this large, e.g. 100, 10K, 1M")
	cmd.Flags().StringVar(&name, "name", "", "Only files whose name contains this text")
	cmd.Flags().BoolVarP(&caseInsensitive, "ignore-case", "i", false, "Case-insensitive --ext and --name")
	cmd.Flags().BoolVar(&gitignore, "gitignore", false, "Skip files ignored by the root .gitignore")

	// Sort flags
	cmd.Flags().StringVar(&sortKey, "sort", "", "Sort files by: name, size, modified")
	cmd.Flags().BoolVar(&sortDirs, "sort-dirs", false, "Sort directories together with files")

	// Output flags
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table, tree, json, yaml, md")
	cmd.Flags().StringVar(&color, "color", "auto", "Colorize output: auto, always, never")
	cmd.Flags().BoolVarP(&human, "human", "H", false, "Human-readable sizes")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write the report to a file instead of stdout")

	return cmd
}

// versionCmd prints the version
func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(a.stdout, "burrow %s\n", version)
		},
	}
}
