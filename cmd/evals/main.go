// Command evals inspects the MCP tool selection evaluation suites.
//
// Usage:
//
//	go run ./cmd/evals -dir ./evals -suite all
//
// It loads the JSON suites and reports their coverage: how many cases exist
// per tool and category, and which argument conventions a selector is held
// to. Actual LLM evaluation plugs an evals.ToolSelector implementation into
// the evals package.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/olgasafonova/wikimedia-mcp-server/evals"
)

func main() {
	dir := flag.String("dir", "./evals", "Directory containing eval JSON files")
	suite := flag.String("suite", "all", "Suite to load: tool_selection, confusion_pairs, arguments, or all")
	verbose := flag.Bool("verbose", false, "Show detailed test information")
	flag.Parse()

	fmt.Println("Wikimedia MCP Server - Evaluation Framework")
	fmt.Println("============================================")
	fmt.Println()

	reports := map[string]func(string, bool){
		"tool_selection":  reportToolSelection,
		"confusion_pairs": reportConfusionPairs,
		"arguments":       reportArguments,
		"all":             reportAll,
	}

	report, ok := reports[*suite]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown suite: %s\n", *suite)
		os.Exit(1)
	}
	report(*dir, *verbose)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}

// printSuiteHeader prints the block every suite report starts with.
func printSuiteHeader(kind, name, version, description string, testCount int) {
	fmt.Printf("%s Suite: %s\n", kind, name)
	fmt.Printf("Version: %s\n", version)
	fmt.Printf("Description: %s\n", description)
	fmt.Printf("Total Tests: %d\n", testCount)
	fmt.Println()
}

// printCounts prints a sorted "label: count" block.
func printCounts(heading string, counts map[string]int) {
	fmt.Printf("%s:\n", heading)
	for _, key := range sortedKeys(counts) {
		fmt.Printf("  %-20s: %d\n", key, counts[key])
	}
	fmt.Println()
}

func reportToolSelection(dir string, verbose bool) {
	suite, err := evals.LoadToolSelectionSuite(filepath.Join(dir, "tool_selection.json"))
	if err != nil {
		fatalf("Error loading tool selection suite: %v\n", err)
	}

	printSuiteHeader("Tool Selection", suite.Name, suite.Version, suite.Description, len(suite.Tests))

	categories := make(map[string]int)
	tools := make(map[string]int)
	for _, test := range suite.Tests {
		categories[test.Category]++
		tools[test.ExpectedTool]++
	}
	printCounts("Tests by Category", categories)
	printCounts("Tests by Tool", tools)

	if verbose {
		fmt.Println("Test Cases:")
		for _, test := range suite.Tests {
			fmt.Printf("  [%s] %s\n", test.ID, test.Input)
			fmt.Printf("    → %s\n", test.ExpectedTool)
			if len(test.NotTools) > 0 {
				fmt.Printf("    ✗ %v\n", test.NotTools)
			}
		}
	}
}

func reportConfusionPairs(dir string, verbose bool) {
	suite, err := evals.LoadConfusionPairSuite(filepath.Join(dir, "confusion_pairs.json"))
	if err != nil {
		fatalf("Error loading confusion pairs suite: %v\n", err)
	}

	fmt.Printf("Confusion Pairs Suite: %s\n", suite.Name)
	fmt.Printf("Version: %s\n", suite.Version)
	fmt.Printf("Description: %s\n", suite.Description)
	fmt.Printf("Total Pairs: %d\n", len(suite.Pairs))
	fmt.Printf("Total Tests: %d\n", countPairTests(suite))
	fmt.Println()

	fmt.Println("Confusion Pairs:")
	for _, pair := range suite.Pairs {
		fmt.Printf("\n  %s:\n", pair.ID)
		fmt.Printf("    Tools: %v\n", pair.Tools)
		fmt.Printf("    Rule: %s\n", pair.Disambiguation)
		fmt.Printf("    Tests: %d\n", len(pair.Tests))

		if verbose {
			for _, test := range pair.Tests {
				fmt.Printf("      %q\n", test.Input)
				fmt.Printf("        → %s (%s)\n", test.Expected, test.Reason)
			}
		}
	}
	fmt.Println()
}

func reportArguments(dir string, verbose bool) {
	suite, err := evals.LoadArgumentSuite(filepath.Join(dir, "argument_correctness.json"))
	if err != nil {
		fatalf("Error loading argument suite: %v\n", err)
	}

	printSuiteHeader("Argument", suite.Name, suite.Version, suite.Description, len(suite.Tests))

	tools := make(map[string]int)
	for _, test := range suite.Tests {
		tools[test.Tool]++
	}
	printCounts("Tests by Tool", tools)

	rules := suite.ValidationRules
	fmt.Println("Validation Rules:")
	fmt.Printf("  Title Format: %s\n", rules.TitleFormat)
	fmt.Printf("  Date Format: %s\n", rules.DateFormat)
	fmt.Printf("  Language Format: %s\n", rules.LanguageFormat)
	fmt.Printf("  Limit Handling: %s\n", rules.LimitHandling)
	fmt.Printf("  Project Default: %s\n", rules.ProjectDefault)
	fmt.Println()

	if verbose {
		fmt.Println("Test Cases:")
		for _, test := range suite.Tests {
			fmt.Printf("  [%s] %s\n", test.ID, test.Input)
			fmt.Printf("    Tool: %s\n", test.Tool)
			fmt.Printf("    Required: %v\n", test.RequiredArgs)
			fmt.Printf("    Expected: %v\n", test.ExpectedArgs)
			if len(test.ForbiddenArgs) > 0 {
				fmt.Printf("    Forbidden: %v\n", test.ForbiddenArgs)
			}
			if test.ArgNotes != "" {
				fmt.Printf("    Notes: %s\n", test.ArgNotes)
			}
		}
	}
}

func reportAll(dir string, verbose bool) {
	toolSelection, confusionPairs, arguments, err := evals.LoadAllEvals(dir)
	if err != nil {
		fatalf("Error loading evals: %v\n", err)
	}

	confusionTests := countPairTests(confusionPairs)
	total := len(toolSelection.Tests) + confusionTests + len(arguments.Tests)

	fmt.Printf("Loaded all evaluation suites from: %s\n\n", dir)

	fmt.Println("Summary:")
	fmt.Println("--------")
	fmt.Printf("Tool Selection Tests:   %d\n", len(toolSelection.Tests))
	fmt.Printf("Confusion Pair Tests:   %d (across %d pairs)\n", confusionTests, len(confusionPairs.Pairs))
	fmt.Printf("Argument Tests:         %d\n", len(arguments.Tests))
	fmt.Printf("──────────────────────────\n")
	fmt.Printf("Total Evaluation Tests: %d\n", total)
	fmt.Println()

	covered := make(map[string]bool)
	for _, test := range toolSelection.Tests {
		covered[test.ExpectedTool] = true
	}
	for _, pair := range confusionPairs.Pairs {
		for _, tool := range pair.Tools {
			covered[tool] = true
		}
	}
	for _, test := range arguments.Tests {
		covered[test.Tool] = true
	}

	fmt.Printf("Tool Coverage: %d unique tools tested\n", len(covered))

	if verbose {
		fmt.Println("\nCovered Tools:")
		for _, tool := range sortedKeys(covered) {
			fmt.Printf("  ✓ %s\n", tool)
		}
	}

	fmt.Println()
	fmt.Println("To run with LLM integration, implement the evals.ToolSelector interface")
	fmt.Println("and use EvaluateToolSelection(), EvaluateConfusionPairs(), EvaluateArguments()")
}

func countPairTests(suite *evals.ConfusionPairSuite) int {
	n := 0
	for _, pair := range suite.Pairs {
		n += len(pair.Tests)
	}
	return n
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
