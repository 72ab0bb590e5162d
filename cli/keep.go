package cli

import (
	"path/filepath"

	"pdf_util/pdf"

	"github.com/spf13/cobra"
)

func newKeepCmd(root *rootOptions) *cobra.Command {
	var (
		output string
		pages  string
	)

	cmd := &cobra.Command{
		Use:   "keep FILE",
		Short: "Keep only specific pages from a PDF, removing the rest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := pdf.NewProcessor(root.logger(cmd)).Keep(args[0], output, pages)
			if err != nil {
				return err
			}

			success(cmd, "Successfully kept %d of %d page(s) from %s", summary.OutputPages, summary.InputPages, filepath.Base(args[0]))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output PDF file path")
	cmd.Flags().StringVarP(&pages, "pages", "p", "", `pages to keep, e.g. "1", "1-3", "1,3,5"`)
	_ = cmd.MarkFlagRequired("output")
	_ = cmd.MarkFlagRequired("pages")
	return cmd
}
