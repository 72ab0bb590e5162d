package cli

import (
	"pdf_util/pdf"

	"github.com/spf13/cobra"
)

func newMergeCmd(root *rootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "merge FILE...",
		Short: "Merge multiple PDF files into one",
		Long:  "Merge appends every page of the given files, in argument order, into a new PDF.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := root.logger(cmd)
			log.Infof("Merging %d PDF file(s)", len(args))

			summary, err := pdf.NewProcessor(log).Merge(args, output)
			if err != nil {
				return err
			}

			success(cmd, "Successfully merged %d file(s) (%d pages) into %s", len(args), summary.OutputPages, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output PDF file path")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}
