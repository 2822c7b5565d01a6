package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dd0wney/ramsey-tabu/pkg/persist"
	"github.com/dd0wney/ramsey-tabu/pkg/ramsey"
)

func newScoreCmd(stdout io.Writer) *cobra.Command {
	var (
		structure string
		sizes     []int
	)
	cmd := &cobra.Command{
		Use:   "score FILE",
		Short: "Print the number of forbidden monochromatic structures in a saved coloring",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := ramsey.ParseKind(structure)
			if err != nil {
				return err
			}
			m, err := persist.Load(args[0])
			if err != nil {
				return err
			}
			g, err := ramsey.New(m, sizes, kind)
			if err != nil {
				return err
			}
			fmt.Fprintf(stdout, "%s %v on %d vertices: score %d\n", kind, sizes, g.NumVertices(), g.Score())
			return nil
		},
	}
	cmd.Flags().StringVarP(&structure, "structure", "b", "", `forbidden structure: "books" or "wheels"`)
	cmd.Flags().IntSliceVarP(&sizes, "sizes", "k", nil, "forbidden size in vertices for each color")
	cmd.MarkFlagRequired("structure")
	cmd.MarkFlagRequired("sizes")
	return cmd
}
