// SPDX-License-Identifier: MIT

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/montecarlo/analyzer"
	"github.com/katalvlaran/montecarlo/die"
)

// Report is the serialized form of one summary.
type Report[F die.Face] struct {
	RunID        string         `json:"run_id"`
	Title        string         `json:"title,omitempty"`
	Rolls        int            `json:"rolls"`
	Dice         int            `json:"dice"`
	Jackpots     int            `json:"jackpots"`
	JackpotRate  float64        `json:"jackpot_rate"`
	FaceTotals   []FaceTotal[F] `json:"face_totals"`
	Combos       []GroupRow[F]  `json:"combos"`
	Permutations []GroupRow[F]  `json:"permutations"`
}

// FaceTotal is how often one face came up over the whole play.
type FaceTotal[F die.Face] struct {
	Face  F   `json:"face"`
	Count int `json:"count"`
}

// GroupRow is one combination or permutation with its count.
type GroupRow[F die.Face] struct {
	Faces []F `json:"faces"`
	Count int `json:"count"`
}

// New converts s into a Report. Face totals are sorted by face; groups keep
// the analyzer's lexicographic order.
func New[F die.Face](s analyzer.Summary[F], opts ...Option) Report[F] {
	o := newOptions(opts...)

	faces := make([]F, 0, len(s.FaceTotals))
	for f := range s.FaceTotals {
		faces = append(faces, f)
	}
	slices.Sort(faces)
	totals := make([]FaceTotal[F], len(faces))
	for i, f := range faces {
		totals[i] = FaceTotal[F]{Face: f, Count: s.FaceTotals[f]}
	}

	return Report[F]{
		RunID:        o.runID.String(),
		Title:        o.title,
		Rolls:        s.Rolls,
		Dice:         s.Dice,
		Jackpots:     s.Jackpots,
		JackpotRate:  s.JackpotRate(),
		FaceTotals:   totals,
		Combos:       groupRows(s.Combos),
		Permutations: groupRows(s.Permutations),
	}
}

// Render writes s to w in the given format.
//
// Errors:
//   - ErrUnknownFormat for any format other than FormatText or FormatJSON.
//   - Write errors from w.
func Render[F die.Face](w io.Writer, s analyzer.Summary[F], format Format, opts ...Option) error {
	r := New(s, opts...)

	switch format {
	case FormatText:
		return r.writeText(w)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("Render: %w", err)
		}
		return nil
	}

	return fmt.Errorf("Render: %q: %w", string(format), ErrUnknownFormat)
}

func (r Report[F]) writeText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "run\t%s\n", r.RunID)
	if r.Title != "" {
		fmt.Fprintf(tw, "scenario\t%s\n", r.Title)
	}
	fmt.Fprintf(tw, "rolls\t%d\n", r.Rolls)
	fmt.Fprintf(tw, "dice\t%d\n", r.Dice)
	fmt.Fprintf(tw, "jackpots\t%d (%.2f%%)\n", r.Jackpots, 100*r.JackpotRate)

	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "FACE\tCOUNT")
	for _, ft := range r.FaceTotals {
		fmt.Fprintf(tw, "%v\t%d\n", ft.Face, ft.Count)
	}

	writeGroups(tw, "COMBINATION", r.Combos)
	writeGroups(tw, "PERMUTATION", r.Permutations)

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("Render: %w", err)
	}
	return nil
}

func writeGroups[F die.Face](tw *tabwriter.Writer, header string, rows []GroupRow[F]) {
	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "%s\tCOUNT\n", header)
	for _, g := range rows {
		fmt.Fprintf(tw, "%s\t%d\n", joinFaces(g.Faces), g.Count)
	}
}

func groupRows[F die.Face](gc analyzer.GroupCounts[F]) []GroupRow[F] {
	rows := make([]GroupRow[F], len(gc.Groups))
	for i, g := range gc.Groups {
		rows[i] = GroupRow[F]{Faces: g.Faces, Count: g.Count}
	}
	return rows
}

func joinFaces[F die.Face](faces []F) string {
	parts := make([]string, len(faces))
	for i, f := range faces {
		parts[i] = fmt.Sprint(f)
	}
	return strings.Join(parts, " ")
}
