package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/tagkit/pkg/render"
)

func renderCmd() *cobra.Command {
	var (
		input   string
		tag     string
		content string
		encode  bool
		attrs   map[string]string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render tags to stdout",
		Long: `Render one element from flags, or render requests read as JSON.

A request is {"tag", "content", "attributes", "encode"}. The input may be a
single request or an array; array results are joined with newlines.

Examples:
  tagkit render --tag div --content Hello --attr class=box
  echo '[{"tag":"br"},{"tag":"p","content":"x"}]' | tagkit render
  tagkit render -f page.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var reqs []render.Request
			if tag != "" {
				req := render.Request{Tag: tag, Content: content, Encode: encode}
				if len(attrs) > 0 {
					req.Attributes = make(map[string]any, len(attrs))
					for k, v := range attrs {
						req.Attributes[k] = v
					}
				}
				reqs = []render.Request{req}
			} else {
				data, err := readInput(cmd, input)
				if err != nil {
					return err
				}
				if reqs, err = decodeRequests(data); err != nil {
					return err
				}
			}

			out, err := render.Default().RenderAll(reqs)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "file", "f", "", "JSON request file (default: stdin)")
	cmd.Flags().StringVarP(&tag, "tag", "t", "", "Render a single tag instead of reading JSON")
	cmd.Flags().StringVarP(&content, "content", "c", "", "Content for --tag")
	cmd.Flags().BoolVarP(&encode, "encode", "e", false, "Escape --content")
	cmd.Flags().StringToStringVarP(&attrs, "attr", "a", nil, "Attribute for --tag (key=value, repeatable)")

	return cmd
}
