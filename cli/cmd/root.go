package cmd

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/x0k/mk"
)

var (
	rootCmd = &cobra.Command{
		Use:               "mk [targets...] [-- args...]",
		Short:             "mk",
		Long:              `Task runner over mkfiles: resolves named script segments and their dependencies into a single shell script, then prints or executes it.`,
		SilenceUsage:      true,
		RunE:              run,
		ValidArgsFunction: completeTargets,
	}

	input       string
	printer     Printer
	completions string
	verbose     bool

	log = logrus.New()
)

// Execute executes the root command.
func Execute() error {
	rootCmd.Flags().StringVarP(&input, "input", "I", mk.DefaultInput, "input files glob pattern")
	rootCmd.Flags().VarP(&printer, "printer", "P", "output mode: stdout, executor, targets or desugar-debug")
	rootCmd.Flags().StringVar(&completions, "generate-completions", "", "print a completion script for the given shell (bash, zsh, fish, powershell)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	return rootCmd.Execute()
}

func run(cmd *cobra.Command, args []string) error {
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	if completions != "" {
		return generateCompletions(cmd, completions)
	}

	targets := args
	var scriptArgs []string
	if at := cmd.ArgsLenAtDash(); at >= 0 {
		targets = args[:at]
		scriptArgs = args[at:]
	}

	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("input") && cfg.Input != "" {
		input = cfg.Input
	}

	rb, err := loadRunbook(input)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"files":    rb.Files,
		"segments": len(rb.Segments()),
	}).Debug("input assembled")

	p := printer
	switch {
	case cmd.Flags().Changed("printer"):
	case cfg.Printer != "":
		if err := p.Set(cfg.Printer); err != nil {
			return err
		}
	case rb.WantsExecutor():
		p = ExecutorPrinter
	case stdoutIsTerminal():
		p = ExecutorPrinter
	default:
		p = StdoutPrinter
	}

	return p.Print(rb, targets, scriptArgs)
}

// loadRunbook reads the document from stdin when something is piped in,
// and from the input glob otherwise.
func loadRunbook(pattern string) (*mk.Runbook, error) {
	fd := os.Stdin.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return mk.FromReader(os.Stdin)
	}
	return mk.Load(pattern)
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
