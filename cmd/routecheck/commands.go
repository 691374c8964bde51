package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"concierge-router/internal/classifier"
	"concierge-router/internal/lexicon"
	"concierge-router/internal/mode"
	"concierge-router/internal/model"
	"concierge-router/internal/router"
	"concierge-router/internal/subintent"
)

type options struct {
	lexiconPath string
	modeID      string
	historyPath string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "routecheck",
		Short:         "Inspect routing decisions for chat messages",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.lexiconPath, "lexicon", "", "lexicon YAML file (default: built-in aviation lexicon)")

	root.AddCommand(
		&cobra.Command{
			Use:   "classify <message>",
			Short: "Score a message against the domain lexicon",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := opts.classifier()
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), c.Classify(strings.Join(args, " ")))
			},
		},
		&cobra.Command{
			Use:   "subintent <message>",
			Short: "Detect the structured-data request type of a message",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return printJSON(cmd.OutOrStdout(), subintent.Default().Classify(strings.Join(args, " ")))
			},
		},
		newRouteCmd(opts),
		&cobra.Command{
			Use:   "recommend <message>",
			Short: "Print the advisory strategy recommendation",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				engine, err := opts.engine()
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), engine.Recommend(strings.Join(args, " ")))
			},
		},
	)
	return root
}

func newRouteCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "route <message>",
		Short: "Print the full routing decision",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := opts.engine()
			if err != nil {
				return err
			}
			history, err := readHistory(opts.historyPath)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), engine.Route(strings.Join(args, " "), opts.modeID, history))
		},
	}
	cmd.Flags().StringVar(&opts.modeID, "mode", mode.IDConcierge, "operating mode id")
	cmd.Flags().StringVar(&opts.historyPath, "history", "", "YAML or JSON file with a list of {role, content} turns")
	return cmd
}

func (o *options) classifier() (*classifier.Classifier, error) {
	if o.lexiconPath == "" {
		return classifier.New(nil), nil
	}
	lex, err := lexicon.LoadFile(o.lexiconPath)
	if err != nil {
		return nil, err
	}
	return classifier.New(lex), nil
}

func (o *options) engine() (*router.Engine, error) {
	c, err := o.classifier()
	if err != nil {
		return nil, err
	}
	return router.New(c, nil, mode.NewRegistry(nil)), nil
}

func readHistory(path string) ([]model.Turn, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}

	var raw []struct {
		Role    string `yaml:"role"`
		Content string `yaml:"content"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}

	turns := make([]model.Turn, 0, len(raw))
	for i, t := range raw {
		if t.Role != model.RoleUser && t.Role != model.RoleAssistant {
			return nil, fmt.Errorf("history turn %d: unknown role %q", i, t.Role)
		}
		turns = append(turns, model.Turn{Role: t.Role, Content: t.Content})
	}
	return turns, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
