package cli

import (
	"path/filepath"

	"pdf_util/pdf"

	"github.com/spf13/cobra"
)

func newRotateCmd(root *rootOptions) *cobra.Command {
	var (
		output string
		angle  int
		pages  string
	)

	cmd := &cobra.Command{
		Use:   "rotate FILE",
		Short: "Rotate pages in a PDF file",
		Long: `Rotate turns the selected pages clockwise by 90, 180 or 270 degrees.
All pages, rotated or not, are written to the output in their original order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("pages") {
				pages = pdf.AllPages
			}
			summary, err := pdf.NewProcessor(root.logger(cmd)).Rotate(args[0], output, angle, pages)
			if err != nil {
				return err
			}

			success(cmd, "Successfully rotated %d page(s) by %d degrees in %s", len(summary.Pages), angle, filepath.Base(args[0]))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output PDF file path")
	cmd.Flags().IntVarP(&angle, "angle", "a", pdf.DefaultAngle, "rotation angle (90, 180, or 270 degrees clockwise)")
	cmd.Flags().StringVarP(&pages, "pages", "p", "", `pages to rotate, e.g. "1", "1-3", "1,3,5" or "all" (default all)`)
	_ = cmd.MarkFlagRequired("output")
	return cmd
}
