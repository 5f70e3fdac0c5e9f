// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/db47h/dilo"
	"github.com/db47h/dilo/boolexpr"
	"github.com/db47h/dilo/hwlib"
	"github.com/db47h/dilo/hwtest"
	"github.com/db47h/dilo/truth"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func bit(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

func writeRow(w io.Writer, cells []string) {
	fmt.Fprintln(w, strings.Join(cells, "\t"))
}

func (a *app) truthCmd() *cobra.Command {
	var vars []string
	cmd := &cobra.Command{
		Use:   "truth EXPR",
		Short: "Print the truth table of a boolean expression",
		Long: `Print the truth table of a boolean expression using ' for NOT, ` +
			`* for AND and + for OR. Variables are single letters.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := boolexpr.Parse(args[0])
			if err != nil {
				return err
			}
			names := vars
			if len(names) == 0 {
				names = e.Vars()
			}
			rows, err := truth.Combinations(names)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 1, ' ', 0)
			writeRow(tw, append(append([]string(nil), names...), "out"))
			for _, r := range rows {
				v, err := e.Eval(r.Map())
				if err != nil {
					return err
				}
				cells := make([]string, 0, len(names)+1)
				for _, b := range r.Values {
					cells = append(cells, bit(b))
				}
				writeRow(tw, append(cells, bit(v)))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringSliceVar(&vars, "vars", nil, "ordered variable list, most significant first (default: sorted expression variables)")
	return cmd
}

func (a *app) part(name string) (*dilo.Circuit, error) {
	fn, ok := hwlib.Lookup(strings.ToLower(name))
	if !ok {
		return nil, errors.Errorf("unknown part %q", name)
	}
	return fn(a.options()...), nil
}

func (a *app) partsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parts",
		Short: "List library circuits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			writeRow(tw, []string{"NAME", "INPUTS", "OUTPUTS"})
			for _, n := range hwlib.Names() {
				c, err := a.part(n)
				if err != nil {
					return err
				}
				writeRow(tw, []string{n, strings.Join(c.Inputs(), ","), strings.Join(c.Outputs(), ",")})
			}
			return tw.Flush()
		},
	}
}

func (a *app) tableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table PART",
		Short: "Print the truth table of a library circuit",
		Long: `Print the truth table of a library circuit. Inputs are applied in ` +
			`binary counter order; for sequential circuits each row depends on ` +
			`the previous ones.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.part(args[0])
			if err != nil {
				return err
			}
			ins, outs := c.Inputs(), c.Outputs()
			rows, err := truth.Combinations(ins)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 1, ' ', 0)
			writeRow(tw, append(append([]string(nil), ins...), outs...))
			for _, r := range rows {
				if err = dilo.Apply(c, r.Signals()...); err != nil {
					return err
				}
				cells := make([]string, 0, len(ins)+len(outs))
				for _, b := range r.Values {
					cells = append(cells, bit(b))
				}
				for _, o := range outs {
					v, err := c.Output(o)
					if err != nil {
						return err
					}
					cells = append(cells, bit(v))
				}
				writeRow(tw, cells)
			}
			return tw.Flush()
		},
	}
}

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check PART OUTPUT EXPR",
		Short: "Check a library circuit output against a boolean expression",
		Long: `Check a library circuit output against a boolean expression over ` +
			`all input combinations. Expression variables are the circuit's inputs.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.part(args[0])
			if err != nil {
				return err
			}
			e, err := boolexpr.Parse(args[2])
			if err != nil {
				return err
			}
			ms, err := hwtest.Expr(c, args[1], e)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, m := range ms {
				fmt.Fprintln(w, m)
			}
			if len(ms) > 0 {
				return errors.Errorf("%s.%s: %d mismatches", args[0], args[1], len(ms))
			}
			a.log.Info("check passed", "part", args[0], "output", args[1], "expr", e.String())
			fmt.Fprintf(w, "%s.%s = %s: ok\n", args[0], args[1], e.Source())
			return nil
		},
	}
}
