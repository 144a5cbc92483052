package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	htmlwriter "github.com/wongyip/php-html-writer"
)

func tagCmd() *cobra.Command {
	var (
		content  string
		hasBody  bool
		attrs    []string
		encoding string
	)

	cmd := &cobra.Command{
		Use:   "tag <selector>",
		Short: "Render a complete element",
		Long: `Render a complete element for the selector expression.

Without --content the element body follows the renderer's policy: void
elements self-close, everything else gets an empty body.

Examples:
  htmlwriter tag 'div#main.card' --content 'Hello'
  htmlwriter tag 'a.button' --attr href=/x --content 'Go'
  htmlwriter tag 'input[type=text]' --attr required`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := newWriter(encoding)
			if err != nil {
				return err
			}
			m, err := parseAttrFlags(attrs)
			if err != nil {
				return err
			}
			var out string
			if hasBody {
				out, err = w.Tag(args[0], m, content)
			} else {
				out, err = w.Tag(args[0], m)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&content, "content", "c", "", "Element text content")
	cmd.Flags().StringArrayVarP(&attrs, "attr", "a", nil, "Attribute as key=value (repeatable; bare key for boolean)")
	cmd.Flags().StringVarP(&encoding, "encoding", "e", "", "Output text encoding (default UTF-8)")
	cmd.PreRun = func(cmd *cobra.Command, args []string) {
		hasBody = cmd.Flags().Changed("content")
	}

	return cmd
}

func openCmd() *cobra.Command {
	var (
		attrs    []string
		encoding string
	)

	cmd := &cobra.Command{
		Use:   "open <selector>",
		Short: "Render only the opening tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := newWriter(encoding)
			if err != nil {
				return err
			}
			m, err := parseAttrFlags(attrs)
			if err != nil {
				return err
			}
			out, err := w.Open(args[0], m)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&attrs, "attr", "a", nil, "Attribute as key=value (repeatable; bare key for boolean)")
	cmd.Flags().StringVarP(&encoding, "encoding", "e", "", "Output text encoding (default UTF-8)")

	return cmd
}

func closeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "close <selector>",
		Short: "Render only the closing tag",
		Long: `Render only the closing tag for the selector expression.

Any #id, .class or [key=value] fragments are discarded, so
'htmlwriter close div#main.card' prints the same as 'htmlwriter close div'.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := htmlwriter.Close(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	return cmd
}

// newWriter builds a Writer for the optional --encoding flag.
func newWriter(encoding string) (*htmlwriter.Writer, error) {
	if encoding == "" {
		return htmlwriter.Default, nil
	}
	return htmlwriter.New(htmlwriter.WithEncoding(encoding))
}

// parseAttrFlags turns repeated --attr key=value flags into an attribute
// map. A bare key (no "=") becomes a boolean-present attribute.
func parseAttrFlags(flags []string) (map[string]any, error) {
	if len(flags) == 0 {
		return nil, nil
	}
	m := make(map[string]any, len(flags))
	for _, flag := range flags {
		key, value, found := strings.Cut(flag, "=")
		if key == "" {
			return nil, fmt.Errorf("invalid --attr %q", flag)
		}
		if found {
			m[key] = value
		} else {
			m[key] = true
		}
	}
	return m, nil
}
