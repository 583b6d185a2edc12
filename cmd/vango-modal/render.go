package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/modal/pkg/modal"
	"github.com/vango-dev/modal/pkg/render"
)

func renderCmd() *cobra.Command {
	var (
		size     string
		position string
		content  string
		closed   bool
		pretty   bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the modal's HTML",
		Long: `Render the modal once and print its HTML to stdout.

Examples:
  vango-modal render
  vango-modal render --size lg --position bottom --content "Hello"
  vango-modal render --closed`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, ok := modal.ParseSize(size)
			if !ok {
				return fmt.Errorf("unknown size %q (want one of %v)", size, modal.Sizes())
			}
			p, ok := modal.ParsePosition(position)
			if !ok {
				return fmt.Errorf("unknown position %q (want one of %v)", position, modal.Positions())
			}

			node := modal.Render(!closed, s, p, content, nil)
			html, err := render.NewRenderer(render.RendererConfig{Pretty: pretty}).RenderToString(node)
			if err != nil {
				return fmt.Errorf("render: %w", err)
			}
			if html == "" {
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), html)
			return nil
		},
	}

	cmd.Flags().StringVar(&size, "size", "", "Modal size (small, large, extra-large, sm, lg, xl)")
	cmd.Flags().StringVar(&position, "position", "", "Modal position (top, center, bottom)")
	cmd.Flags().StringVar(&content, "content", "", "Text placed in the modal body")
	cmd.Flags().BoolVar(&closed, "closed", false, "Render the closed state (prints nothing)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the output")

	return cmd
}
