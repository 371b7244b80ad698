package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/pflag"

	"github.com/x0k/mk"
)

// Printer selects what to do with a resolved document.
type Printer int

const (
	StdoutPrinter Printer = iota
	ExecutorPrinter
	TargetsPrinter
	DesugarDebugPrinter
)

var _ pflag.Value = (*Printer)(nil)

var printerNames = []string{
	StdoutPrinter:       "stdout",
	ExecutorPrinter:     "executor",
	TargetsPrinter:      "targets",
	DesugarDebugPrinter: "desugar-debug",
}

func (p Printer) String() string {
	return printerNames[p]
}

func (p *Printer) Set(s string) error {
	for v, name := range printerNames {
		if name == s {
			*p = Printer(v)
			return nil
		}
	}
	return fmt.Errorf("unknown printer: %s (expected one of %s)", s, strings.Join(printerNames, ", "))
}

func (p *Printer) Type() string {
	return "printer"
}

func (p Printer) Print(rb *mk.Runbook, targets, scriptArgs []string) error {
	switch p {
	case DesugarDebugPrinter:
		fmt.Println(rb.Content)
		return nil
	case TargetsPrinter:
		return printTargets(rb, targets)
	}
	content, err := rb.Resolve(targets)
	if err != nil {
		return err
	}
	if p == ExecutorPrinter {
		return execute(content, scriptArgs)
	}
	fmt.Println(content)
	return nil
}

var targetName = color.New(color.FgCyan, color.Bold)

// printTargets lists the reachable segments with their description lines,
// the '#'-prefixed lines at the top of a segment body.
func printTargets(rb *mk.Runbook, targets []string) error {
	segments, err := rb.Targets(targets)
	if err != nil {
		return err
	}
	for _, s := range segments {
		if _, err := targetName.Println(s.Name); err != nil {
			return err
		}
		for _, line := range s.Description() {
			fmt.Printf("  %s\n", strings.TrimSpace(line))
		}
	}
	return nil
}
