package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eric-downes/nosey-pytest/internal/domain/rules"
	m "github.com/eric-downes/nosey-pytest/internal/model"
)

// rulesCmd represents the rules command.
var rulesCmd = newRulesCmd()

func newRulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the registered transformation rules",
		Long:  rulesLongDescription,
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Rules(context.Background())
		},
	}

	cmd.AddCommand(newRulesAddCmd())

	return cmd
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}

func newRulesAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add",
		Short: "Interactively add a rule to the rules file",
		Long: `Prompt for a new textual rule and append it to the configured rules file.
The file is created when it does not exist yet.`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := viper.GetString(rulesFileConfigKey)
			if strings.TrimSpace(path) == "" {
				return errors.New("no rules file configured, pass --rules-file or set rules.file")
			}

			spec, err := promptForRule()
			if err != nil {
				return err
			}

			if err := appendRuleToFile(path, spec); err != nil {
				return err
			}

			cmd.Println("Added rule", spec.ID, "to", path)

			return nil
		},
	}
}

func appendRuleToFile(path string, spec rules.UserRuleSpec) error {
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading rules file: %w", err)
	}

	updated, err := rules.AppendUserRule(data, spec)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, updated, 0o600); err != nil {
		return fmt.Errorf("writing rules file: %w", err)
	}

	return nil
}

func promptForRule() (rules.UserRuleSpec, error) {
	spec := rules.UserRuleSpec{}

	id, err := runPrompt(promptui.Prompt{
		Label: "Rule ID",
		Validate: func(input string) error {
			trimmed := strings.TrimSpace(input)
			if trimmed == "" {
				return errors.New("id is required")
			}
			if _, exists := registry.Lookup(m.RuleID(trimmed)); exists {
				return fmt.Errorf("rule %q already exists", trimmed)
			}

			return nil
		},
	})
	if err != nil {
		return spec, err
	}
	spec.ID = strings.TrimSpace(id)

	spec.Pattern, err = runPrompt(promptui.Prompt{
		Label: "Pattern (Go regular expression)",
		Validate: func(input string) error {
			if input == "" {
				return errors.New("pattern is required")
			}
			_, err := regexp.Compile(input)

			return err
		},
	})
	if err != nil {
		return spec, err
	}

	spec.Replacement, err = runPrompt(promptui.Prompt{Label: `Replacement (use \1..\9 for groups)`})
	if err != nil {
		return spec, err
	}

	spec.Description, err = runPrompt(promptui.Prompt{Label: "Description"})
	if err != nil {
		return spec, err
	}

	priority, err := runPrompt(promptui.Prompt{
		Label:   "Priority",
		Default: "50",
		Validate: func(input string) error {
			_, err := strconv.Atoi(strings.TrimSpace(input))

			return err
		},
	})
	if err != nil {
		return spec, err
	}
	spec.Priority, _ = strconv.Atoi(strings.TrimSpace(priority))

	return spec, nil
}

func runPrompt(prompt promptui.Prompt) (string, error) {
	value, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("rule prompt: %w", err)
	}

	return value, nil
}
