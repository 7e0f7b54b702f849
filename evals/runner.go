// Package evals provides an evaluation framework for testing MCP tool
// selection accuracy. It validates that LLMs route natural language questions
// to the correct Wikimedia tool and extract proper arguments, such as page
// titles, language codes and feed dates.
package evals

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
)

// ToolSelectionTest represents a single tool selection evaluation case
type ToolSelectionTest struct {
	ID           string                 `json:"id"`
	Category     string                 `json:"category"`
	Input        string                 `json:"input"`
	ExpectedTool string                 `json:"expected_tool"`
	ExpectedArgs map[string]interface{} `json:"expected_args"`
	NotTools     []string               `json:"not_tools"`
}

// ToolSelectionSuite contains all tool selection tests
type ToolSelectionSuite struct {
	Name        string              `json:"name"`
	Version     string              `json:"version"`
	Description string              `json:"description"`
	Tests       []ToolSelectionTest `json:"tests"`
}

// ConfusionPairTest represents a single disambiguation test
type ConfusionPairTest struct {
	Input    string `json:"input"`
	Expected string `json:"expected"`
	Reason   string `json:"reason"`
}

// ConfusionPair represents a pair of tools that are commonly confused
type ConfusionPair struct {
	ID             string              `json:"id"`
	Tools          []string            `json:"tools"`
	Disambiguation string              `json:"disambiguation"`
	Tests          []ConfusionPairTest `json:"tests"`
}

// ConfusionPairSuite contains all confusion pair tests
type ConfusionPairSuite struct {
	Name        string          `json:"name"`
	Version     string          `json:"version"`
	Description string          `json:"description"`
	Pairs       []ConfusionPair `json:"pairs"`
}

// ArgumentTest represents a single argument correctness test
type ArgumentTest struct {
	ID            string                 `json:"id"`
	Tool          string                 `json:"tool"`
	Input         string                 `json:"input"`
	RequiredArgs  []string               `json:"required_args"`
	ExpectedArgs  map[string]interface{} `json:"expected_args"`
	ForbiddenArgs []string               `json:"forbidden_args"`
	ArgNotes      string                 `json:"arg_notes,omitempty"`
}

// ValidationRules documents the argument conventions a selector is expected
// to follow across the suite
type ValidationRules struct {
	TitleFormat    string `json:"title_format"`
	DateFormat     string `json:"date_format"`
	LanguageFormat string `json:"language_format"`
	LimitHandling  string `json:"limit_handling"`
	ProjectDefault string `json:"project_default"`
}

// ArgumentSuite contains all argument correctness tests
type ArgumentSuite struct {
	Name            string          `json:"name"`
	Version         string          `json:"version"`
	Description     string          `json:"description"`
	Tests           []ArgumentTest  `json:"tests"`
	ValidationRules ValidationRules `json:"validation_rules"`
}

// ToolSelectionResult represents the result of a single tool selection evaluation
type ToolSelectionResult struct {
	TestID       string
	Input        string
	ExpectedTool string
	ActualTool   string
	Passed       bool
	Errors       []string
}

// ConfusionPairResult represents the result of a confusion pair evaluation
type ConfusionPairResult struct {
	PairID       string
	TestInput    string
	ExpectedTool string
	ActualTool   string
	Reason       string
	Passed       bool
}

// ArgumentResult represents the result of an argument correctness evaluation
type ArgumentResult struct {
	TestID       string
	Tool         string
	Input        string
	Passed       bool
	MissingArgs  []string
	WrongArgs    map[string]string // arg -> "expected X, got Y"
	ForbiddenHit []string          // forbidden args that were used
	Errors       []string          // selector or tool routing failures
}

// EvalMetrics contains aggregate metrics for an evaluation run
type EvalMetrics struct {
	TotalTests    int
	PassedTests   int
	FailedTests   int
	Accuracy      float64 // PassedTests / TotalTests
	ByCategory    map[string]*CategoryMetrics
	ByTool        map[string]*ToolMetrics
	FailedDetails []string
}

// CategoryMetrics contains metrics per category
type CategoryMetrics struct {
	Total  int
	Passed int
	Failed int
}

// ToolMetrics contains metrics per tool
type ToolMetrics struct {
	ExpectedCount  int // times tool was expected
	SelectedCount  int // times tool was actually selected
	CorrectCount   int // times tool was correctly selected
	FalsePositives int // times this tool was selected instead of another
	FalseNegatives int // times this tool should have been selected but wasn't
}

func newEvalMetrics() *EvalMetrics {
	return &EvalMetrics{
		ByCategory: make(map[string]*CategoryMetrics),
		ByTool:     make(map[string]*ToolMetrics),
	}
}

// category returns the bucket for a category name, creating it on first use.
func (m *EvalMetrics) category(name string) *CategoryMetrics {
	c, ok := m.ByCategory[name]
	if !ok {
		c = &CategoryMetrics{}
		m.ByCategory[name] = c
	}
	return c
}

// tool returns the bucket for a tool name, creating it on first use.
func (m *EvalMetrics) tool(name string) *ToolMetrics {
	t, ok := m.ByTool[name]
	if !ok {
		t = &ToolMetrics{}
		m.ByTool[name] = t
	}
	return t
}

// settle records a test outcome under its category and, on failure, appends
// a "[id] input: errors" line to the failure details.
func (m *EvalMetrics) settle(category, id, input string, passed bool, errs []string) {
	if passed {
		m.PassedTests++
		m.category(category).Passed++
		return
	}
	m.FailedTests++
	m.category(category).Failed++
	m.FailedDetails = append(m.FailedDetails,
		fmt.Sprintf("[%s] %s: %s", id, input, strings.Join(errs, "; ")))
}

// finish computes the aggregate accuracy.
func (m *EvalMetrics) finish() {
	if m.TotalTests > 0 {
		m.Accuracy = float64(m.PassedTests) / float64(m.TotalTests)
	}
}

// loadSuite reads and decodes one JSON suite file.
func loadSuite[T any](path string) (*T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	var suite T
	if err := json.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}
	return &suite, nil
}

// LoadToolSelectionSuite loads tool selection tests from a JSON file
func LoadToolSelectionSuite(path string) (*ToolSelectionSuite, error) {
	return loadSuite[ToolSelectionSuite](path)
}

// LoadConfusionPairSuite loads confusion pair tests from a JSON file
func LoadConfusionPairSuite(path string) (*ConfusionPairSuite, error) {
	return loadSuite[ConfusionPairSuite](path)
}

// LoadArgumentSuite loads argument correctness tests from a JSON file
func LoadArgumentSuite(path string) (*ArgumentSuite, error) {
	return loadSuite[ArgumentSuite](path)
}

// ToolSelector is an interface that an LLM or mock can implement for testing
type ToolSelector interface {
	// SelectTool returns the tool name and arguments for a given natural language input
	SelectTool(input string) (toolName string, args map[string]interface{}, err error)
}

// EvaluateToolSelection runs tool selection tests against a selector
func EvaluateToolSelection(suite *ToolSelectionSuite, selector ToolSelector) (*EvalMetrics, []ToolSelectionResult) {
	metrics := newEvalMetrics()
	var results []ToolSelectionResult

	for _, test := range suite.Tests {
		metrics.TotalTests++
		metrics.category(test.Category).Total++
		metrics.tool(test.ExpectedTool).ExpectedCount++

		actualTool, actualArgs, err := selector.SelectTool(test.Input)

		result := ToolSelectionResult{
			TestID:       test.ID,
			Input:        test.Input,
			ExpectedTool: test.ExpectedTool,
			ActualTool:   actualTool,
			Passed:       true,
		}

		if err != nil {
			result.Passed = false
			result.Errors = append(result.Errors, fmt.Sprintf("selector error: %v", err))
		}

		if actualTool == test.ExpectedTool {
			metrics.tool(test.ExpectedTool).CorrectCount++
		} else {
			result.Passed = false
			result.Errors = append(result.Errors,
				fmt.Sprintf("wrong tool: expected %s, got %s", test.ExpectedTool, actualTool))
			metrics.tool(test.ExpectedTool).FalseNegatives++
			metrics.tool(actualTool).FalsePositives++
		}
		metrics.tool(actualTool).SelectedCount++

		for _, forbidden := range test.NotTools {
			if actualTool == forbidden {
				result.Passed = false
				result.Errors = append(result.Errors,
					fmt.Sprintf("selected forbidden tool: %s", forbidden))
			}
		}

		result.Errors = append(result.Errors, diffArgs(test.ExpectedArgs, actualArgs)...)
		if len(result.Errors) > 0 {
			result.Passed = false
		}

		metrics.settle(test.Category, test.ID, test.Input, result.Passed, result.Errors)
		results = append(results, result)
	}

	metrics.finish()
	return metrics, results
}

// diffArgs reports expected arguments that are missing or hold the wrong
// value.
func diffArgs(expected, actual map[string]interface{}) []string {
	var errs []string
	for key, want := range expected {
		got, exists := actual[key]
		if !exists {
			errs = append(errs, fmt.Sprintf("missing arg %s (expected %v)", key, want))
		} else if !compareValues(want, got) {
			errs = append(errs, fmt.Sprintf("wrong arg %s: expected %v, got %v", key, want, got))
		}
	}
	return errs
}

// EvaluateConfusionPairs runs confusion pair tests against a selector
func EvaluateConfusionPairs(suite *ConfusionPairSuite, selector ToolSelector) (*EvalMetrics, []ConfusionPairResult) {
	metrics := newEvalMetrics()
	var results []ConfusionPairResult

	for _, pair := range suite.Pairs {
		for _, test := range pair.Tests {
			metrics.TotalTests++
			// Pair ID doubles as the category
			metrics.category(pair.ID).Total++
			metrics.tool(test.Expected).ExpectedCount++

			actualTool, _, err := selector.SelectTool(test.Input)
			metrics.tool(actualTool).SelectedCount++

			result := ConfusionPairResult{
				PairID:       pair.ID,
				TestInput:    test.Input,
				ExpectedTool: test.Expected,
				ActualTool:   actualTool,
				Reason:       test.Reason,
				Passed:       err == nil && actualTool == test.Expected,
			}

			if result.Passed {
				metrics.PassedTests++
				metrics.category(pair.ID).Passed++
				metrics.tool(test.Expected).CorrectCount++
			} else {
				metrics.FailedTests++
				metrics.category(pair.ID).Failed++
				metrics.tool(test.Expected).FalseNegatives++
				metrics.tool(actualTool).FalsePositives++
				metrics.FailedDetails = append(metrics.FailedDetails,
					fmt.Sprintf("[%s] %s: expected %s, got %s (%s)",
						pair.ID, test.Input, test.Expected, actualTool, test.Reason))
			}

			results = append(results, result)
		}
	}

	metrics.finish()
	return metrics, results
}

// EvaluateArguments runs argument correctness tests against a selector
func EvaluateArguments(suite *ArgumentSuite, selector ToolSelector) (*EvalMetrics, []ArgumentResult) {
	metrics := newEvalMetrics()
	var results []ArgumentResult

	for _, test := range suite.Tests {
		metrics.TotalTests++
		// Tool name doubles as the category
		metrics.category(test.Tool).Total++

		actualTool, actualArgs, err := selector.SelectTool(test.Input)

		result := ArgumentResult{
			TestID:    test.ID,
			Tool:      test.Tool,
			Input:     test.Input,
			Passed:    true,
			WrongArgs: make(map[string]string),
		}

		switch {
		case err != nil:
			result.Passed = false
			result.Errors = append(result.Errors, fmt.Sprintf("selector error: %v", err))
		case actualTool != test.Tool:
			// Argument checks are meaningless against the wrong tool's args
			result.Passed = false
			result.Errors = append(result.Errors,
				fmt.Sprintf("wrong tool: expected %s, got %s", test.Tool, actualTool))
		default:
			checkArguments(test, actualArgs, &result)
		}

		metrics.settle(test.Tool, test.ID, test.Input, result.Passed, result.details())
		results = append(results, result)
	}

	metrics.finish()
	return metrics, results
}

// checkArguments fills in the missing/wrong/forbidden findings for one test.
func checkArguments(test ArgumentTest, args map[string]interface{}, result *ArgumentResult) {
	for _, reqArg := range test.RequiredArgs {
		if _, exists := args[reqArg]; !exists {
			result.Passed = false
			result.MissingArgs = append(result.MissingArgs, reqArg)
		}
	}

	for key, want := range test.ExpectedArgs {
		got, exists := args[key]
		if !exists {
			result.Passed = false
			result.MissingArgs = append(result.MissingArgs, key)
		} else if !compareValues(want, got) {
			result.Passed = false
			result.WrongArgs[key] = fmt.Sprintf("expected %v, got %v", want, got)
		}
	}

	for _, forbidden := range test.ForbiddenArgs {
		if _, exists := args[forbidden]; exists {
			result.Passed = false
			result.ForbiddenHit = append(result.ForbiddenHit, forbidden)
		}
	}
}

// details flattens every finding of an argument result into failure lines.
func (r *ArgumentResult) details() []string {
	out := append([]string{}, r.Errors...)
	if len(r.MissingArgs) > 0 {
		out = append(out, fmt.Sprintf("missing: %v", r.MissingArgs))
	}
	for k, v := range r.WrongArgs {
		out = append(out, fmt.Sprintf("%s: %s", k, v))
	}
	if len(r.ForbiddenHit) > 0 {
		out = append(out, fmt.Sprintf("forbidden: %v", r.ForbiddenHit))
	}
	return out
}

// compareValues compares expected and actual values, handling type differences
func compareValues(expected, actual interface{}) bool {
	if expected == nil && actual == nil {
		return true
	}
	if expected == nil || actual == nil {
		return false
	}

	ev := reflect.ValueOf(expected)
	av := reflect.ValueOf(actual)

	// JSON unmarshals every number to float64
	switch ev.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if av.Kind() == reflect.Float64 {
			return float64(ev.Int()) == av.Float()
		}
	case reflect.Float32, reflect.Float64:
		if av.Kind() == reflect.Float64 {
			return ev.Float() == av.Float()
		}
	}

	if ev.Kind() == reflect.Slice && av.Kind() == reflect.Slice {
		if ev.Len() != av.Len() {
			return false
		}
		for i := 0; i < ev.Len(); i++ {
			if !compareValues(ev.Index(i).Interface(), av.Index(i).Interface()) {
				return false
			}
		}
		return true
	}

	return reflect.DeepEqual(expected, actual)
}

// maxFailedShown bounds the failure listing in FormatMetrics.
const maxFailedShown = 10

// FormatMetrics returns a human-readable summary of evaluation metrics
func FormatMetrics(metrics *EvalMetrics, suiteName string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\n=== %s ===\n", suiteName)
	fmt.Fprintf(&b, "Total: %d tests\n", metrics.TotalTests)
	fmt.Fprintf(&b, "Passed: %d (%.1f%%)\n", metrics.PassedTests, metrics.Accuracy*100)
	fmt.Fprintf(&b, "Failed: %d\n", metrics.FailedTests)

	if len(metrics.ByCategory) > 0 {
		b.WriteString("\nBy Category:\n")
		for _, cat := range sortedKeys(metrics.ByCategory) {
			m := metrics.ByCategory[cat]
			if m.Total > 0 {
				acc := float64(m.Passed) / float64(m.Total) * 100
				fmt.Fprintf(&b, "  %-25s: %d/%d (%.0f%%)\n", cat, m.Passed, m.Total, acc)
			}
		}
	}

	if len(metrics.ByTool) > 0 {
		b.WriteString("\nBy Tool:\n")
		for _, tool := range sortedKeys(metrics.ByTool) {
			m := metrics.ByTool[tool]
			if m.ExpectedCount == 0 && m.FalsePositives == 0 {
				continue
			}
			fmt.Fprintf(&b, "  %-25s: %d/%d correct", tool, m.CorrectCount, m.ExpectedCount)
			if m.FalsePositives > 0 {
				fmt.Fprintf(&b, ", %d false positives", m.FalsePositives)
			}
			b.WriteString("\n")
		}
	}

	if n := len(metrics.FailedDetails); n > 0 {
		if n <= maxFailedShown {
			b.WriteString("\nFailed Tests:\n")
		} else {
			fmt.Fprintf(&b, "\nFailed Tests (showing first %d of %d):\n", maxFailedShown, n)
		}
		for i, detail := range metrics.FailedDetails {
			if i == maxFailedShown {
				break
			}
			fmt.Fprintf(&b, "  - %s\n", detail)
		}
	}

	return b.String()
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// LoadAllEvals loads all evaluation suites from a directory
func LoadAllEvals(dir string) (*ToolSelectionSuite, *ConfusionPairSuite, *ArgumentSuite, error) {
	toolSelection, err := LoadToolSelectionSuite(filepath.Join(dir, "tool_selection.json"))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading tool selection: %w", err)
	}

	confusionPairs, err := LoadConfusionPairSuite(filepath.Join(dir, "confusion_pairs.json"))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading confusion pairs: %w", err)
	}

	arguments, err := LoadArgumentSuite(filepath.Join(dir, "argument_correctness.json"))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading arguments: %w", err)
	}

	return toolSelection, confusionPairs, arguments, nil
}
