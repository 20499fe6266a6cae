package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/leapstack-labs/reactlint/internal/cli/output"
	"github.com/leapstack-labs/reactlint/pkg/core"
	"github.com/leapstack-labs/reactlint/pkg/lint"
	_ "github.com/leapstack-labs/reactlint/pkg/lint/rules" // register rules
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Group   string // Filter by group
	Verbose bool   // Show full documentation
	Format  string // Output format
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [rule-id]",
		Short: "List available lint rules",
		Long: `List all available lint rules with their documentation.

Rules are organized by group (e.g., functionality).
Use --verbose to see rationale and option examples.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # List all rules
  reactlint rules

  # Show details for a specific rule
  reactlint rules jsx-imports-react

  # List rules in the functionality group
  reactlint rules --group functionality

  # Output as JSON
  reactlint rules --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showRule(cmd, args[0], opts)
			}
			return listRules(cmd, opts)
		},
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			ids := make([]string, 0, lint.Count())
			for _, info := range lint.AllRules() {
				ids = append(ids, info.ID+"\t"+info.Description)
			}
			return ids, cobra.ShellCompDirectiveNoFileComp
		},
	}

	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "Filter by group")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "V", false, "Show full documentation")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json, markdown")

	return cmd
}

func listRules(cmd *cobra.Command, opts *RulesOptions) error {
	r, err := rendererFor(cmd, NewCommandContextWithoutEngine(cmd).Renderer, opts.Format)
	if err != nil {
		return err
	}

	rules := filterRulesByGroup(lint.AllRules(), opts.Group)

	// Sort by group, then ID
	sort.Slice(rules, func(i, j int) bool {
		if rules[i].Group != rules[j].Group {
			return rules[i].Group < rules[j].Group
		}
		return rules[i].ID < rules[j].ID
	})

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return listRulesJSON(r, rules)
	case output.ModeMarkdown:
		return listRulesMarkdown(r, rules, opts.Verbose)
	default:
		return listRulesText(r, rules, opts.Verbose)
	}
}

func filterRulesByGroup(rules []core.RuleInfo, group string) []core.RuleInfo {
	if group == "" {
		return rules
	}

	var filtered []core.RuleInfo
	for _, r := range rules {
		if strings.EqualFold(r.Group, group) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func showRule(cmd *cobra.Command, ruleID string, opts *RulesOptions) error {
	r, err := rendererFor(cmd, NewCommandContextWithoutEngine(cmd).Renderer, opts.Format)
	if err != nil {
		return err
	}

	rule, ok := lint.GetByID(ruleID)
	if !ok {
		return fmt.Errorf("rule %q not found", ruleID)
	}
	info := lint.GetRuleInfo(rule)

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(info)
	case output.ModeMarkdown:
		return showRuleMarkdown(r, &info)
	default:
		return showRuleText(r, &info)
	}
}

// groupTitle turns a group name into a heading.
func groupTitle(group string) string {
	return cases.Title(language.English).String(group)
}

// listRulesText outputs rules as a table per group.
func listRulesText(r *output.Renderer, rules []core.RuleInfo, verbose bool) error {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render(fmt.Sprintf("Lint Rules (%d)", len(rules))))
	r.Println("")

	for _, group := range groupRules(rules) {
		r.Println(styles.Header2.Render(groupTitle(group[0].Group)))

		header := []string{"ID", "Severity", "Description"}
		if verbose {
			header = append(header, "Rationale")
		}
		rows := make([][]string, 0, len(group))
		for _, rule := range group {
			row := []string{
				rule.ID,
				getSeverityStyle(styles, rule.DefaultSeverity).Render(rule.DefaultSeverity.String()),
				rule.Description,
			}
			if verbose {
				row = append(row, rule.Rationale)
			}
			rows = append(rows, row)
		}
		r.Table(header, rows)
		r.Println("")
	}

	r.Println(styles.Muted.Render("Use 'reactlint rules <rule-id>' for detailed documentation"))
	r.Println("")

	return nil
}

// listRulesMarkdown outputs rules in markdown format.
func listRulesMarkdown(r *output.Renderer, rules []core.RuleInfo, verbose bool) error {
	r.Header(1, "Lint Rules")

	for _, group := range groupRules(rules) {
		r.Header(2, groupTitle(group[0].Group))

		for _, rule := range group {
			r.Printf("- **%s** - %s (`%s`)\n", rule.ID, rule.Description, rule.DefaultSeverity.String())
			if verbose && rule.Rationale != "" {
				r.Println("  > " + rule.Rationale)
			}
		}
		r.Println("")
	}

	return nil
}

// groupRules splits rules sorted by group into one slice per group.
func groupRules(rules []core.RuleInfo) [][]core.RuleInfo {
	var groups [][]core.RuleInfo
	for i, rule := range rules {
		if i == 0 || rule.Group != rules[i-1].Group {
			groups = append(groups, nil)
		}
		groups[len(groups)-1] = append(groups[len(groups)-1], rule)
	}
	return groups
}

// RulesJSONOutput is the JSON output structure for rules listing.
type RulesJSONOutput struct {
	Rules  []core.RuleInfo `json:"rules"`
	Groups map[string]int  `json:"groups"`
	Total  int             `json:"total"`
}

// listRulesJSON outputs rules in JSON format.
func listRulesJSON(r *output.Renderer, rules []core.RuleInfo) error {
	jsonOutput := RulesJSONOutput{
		Rules:  rules,
		Groups: make(map[string]int),
		Total:  len(rules),
	}
	if jsonOutput.Rules == nil {
		jsonOutput.Rules = []core.RuleInfo{}
	}
	for _, rule := range rules {
		jsonOutput.Groups[rule.Group]++
	}
	return r.JSON(jsonOutput)
}

// showRuleText displays detailed rule info in text format.
func showRuleText(r *output.Renderer, rule *core.RuleInfo) error {
	styles := r.Styles()

	r.Println("")
	r.Println(styles.Header1.Render(rule.ID))
	r.Println("")

	r.Printf("  %s: %s\n", styles.Bold.Render("Group"), rule.Group)
	r.Printf("  %s: %s\n", styles.Bold.Render("Severity"), getSeverityStyle(styles, rule.DefaultSeverity).Render(rule.DefaultSeverity.String()))
	r.Printf("  %s: %s\n", styles.Bold.Render("Fixable"), yesNo(rule.HasFix))
	r.Printf("  %s: %s\n", styles.Bold.Render("TypeScript only"), yesNo(rule.TypeScriptOnly))
	r.Println("")

	r.Println(styles.Bold.Render("Description"))
	r.Println("  " + rule.Description)
	r.Println("")

	if rule.Rationale != "" {
		r.Println(styles.Bold.Render("Why This Matters"))
		r.Println("  " + rule.Rationale)
		r.Println("")
	}

	if rule.BadExample != "" {
		r.Println(styles.Bold.Render("Bad Example"))
		for _, line := range strings.Split(rule.BadExample, "\n") {
			r.Println(styles.Muted.Render("  " + line))
		}
		r.Println("")
	}

	if rule.GoodExample != "" {
		r.Println(styles.Bold.Render("Good Example"))
		for _, line := range strings.Split(rule.GoodExample, "\n") {
			r.Println(styles.Success.Render("  " + line))
		}
		r.Println("")
	}

	if rule.Fix != "" {
		r.Println(styles.Bold.Render("How to Fix"))
		r.Println("  " + rule.Fix)
		r.Println("")
	}

	if rule.OptionsDescription != "" || len(rule.OptionExamples) > 0 {
		r.Println(styles.Bold.Render("Configuration"))
		if rule.OptionsDescription != "" {
			r.Println("  " + rule.OptionsDescription)
		}
		if len(rule.OptionExamples) > 0 {
			r.Printf("  Examples: %s\n", strings.Join(rule.OptionExamples, ", "))
		}
		r.Println("")
	}

	if url := lint.BuildDocURL(rule.ID); url != "" {
		r.Printf("  %s: %s\n", styles.Bold.Render("Docs"), url)
	}

	return nil
}

// showRuleMarkdown displays detailed rule info in markdown format.
func showRuleMarkdown(r *output.Renderer, rule *core.RuleInfo) error {
	r.Printf("# %s\n\n", rule.ID)
	r.Printf("**Group:** %s | **Severity:** `%s` | **Fixable:** %s\n\n",
		rule.Group, rule.DefaultSeverity.String(), yesNo(rule.HasFix))
	r.Println(rule.Description)
	r.Println("")

	if rule.Rationale != "" {
		r.Println("## Why This Matters")
		r.Println("")
		r.Println(rule.Rationale)
		r.Println("")
	}

	if rule.BadExample != "" {
		r.Println("## Bad Example")
		r.Println("")
		r.Println("```tsx")
		r.Println(rule.BadExample)
		r.Println("```")
		r.Println("")
	}

	if rule.GoodExample != "" {
		r.Println("## Good Example")
		r.Println("")
		r.Println("```tsx")
		r.Println(rule.GoodExample)
		r.Println("```")
		r.Println("")
	}

	if rule.Fix != "" {
		r.Println("## How to Fix")
		r.Println("")
		r.Println(rule.Fix)
		r.Println("")
	}

	if len(rule.OptionExamples) > 0 {
		r.Println("## Configuration")
		r.Println("")
		if rule.OptionsDescription != "" {
			r.Println(rule.OptionsDescription)
			r.Println("")
		}
		r.Printf("Examples: `%s`\n", strings.Join(rule.OptionExamples, "`, `"))
		r.Println("")
	}

	return nil
}

func getSeverityStyle(styles *output.Styles, sev core.Severity) lipgloss.Style {
	switch sev {
	case core.SeverityError:
		return styles.Error
	case core.SeverityWarning:
		return styles.Warning
	case core.SeverityInfo:
		return styles.Info
	default:
		return styles.Muted
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
