// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/katalvlaran/montecarlo/die"
	"github.com/katalvlaran/montecarlo/game"
)

// RenderTable writes a recent play as aligned text. Wide tables get one row
// per roll and one column per die; narrow tables get the Roll/Die/Outcome
// columns.
func RenderTable[F die.Face](w io.Writer, t game.Table[F]) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	switch tt := t.(type) {
	case game.WideTable[F]:
		fmt.Fprint(tw, "ROLL")
		for j := 0; j < tt.NumDice(); j++ {
			fmt.Fprintf(tw, "\tDIE %d", j)
		}
		fmt.Fprintln(tw)
		for i, row := range tt.Rolls {
			fmt.Fprint(tw, i)
			for _, f := range row {
				fmt.Fprintf(tw, "\t%v", f)
			}
			fmt.Fprintln(tw)
		}
	case game.NarrowTable[F]:
		fmt.Fprintln(tw, "ROLL\tDIE\tOUTCOME")
		for _, r := range tt.Records {
			fmt.Fprintf(tw, "%d\t%d\t%v\n", r.Roll, r.Die, r.Outcome)
		}
	default:
		return fmt.Errorf("RenderTable: %T: %w", t, game.ErrInvalidShape)
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("RenderTable: %w", err)
	}
	return nil
}
