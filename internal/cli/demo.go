package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/robalobadob/hangman/internal/demo"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Show the optional and result value demos",
		RunE: func(cmd *cobra.Command, args []string) error {
			runDemo(cmd.OutOrStdout())
			return nil
		},
	}
}

func runDemo(w io.Writer) {
	fmt.Fprintln(w, "Optional values:")
	for _, x := range []float64{16, 2, -4} {
		if r, ok := demo.Root(x); ok {
			fmt.Fprintf(w, "  root(%g) = %g\n", x, r)
		} else {
			fmt.Fprintf(w, "  root(%g) = nothing\n", x)
		}
	}
	for _, p := range [][2]float64{{10, 4}, {1, 0}} {
		if q, ok := demo.Divide(p[0], p[1]); ok {
			fmt.Fprintf(w, "  divide(%g, %g) = %g\n", p[0], p[1], q)
		} else {
			fmt.Fprintf(w, "  divide(%g, %g) = nothing\n", p[0], p[1])
		}
	}

	fmt.Fprintln(w, "Result values:")
	users := demo.SampleUsers()
	for _, q := range [][2]string{{"id", "1"}, {"last", "Doe"}, {"first", "Nobody"}} {
		u, err := demo.FindUser(users, q[0], q[1])
		if err != nil {
			fmt.Fprintf(w, "  get(%s=%s) failed: %v\n", q[0], q[1], err)
			continue
		}
		fmt.Fprintf(w, "  get(%s=%s) = %s %s (id %s)\n", q[0], q[1], u.First, u.Last, u.ID)
	}
}
