package roster

import (
	"io"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/message"
)

// HeadRows is the number of leading records echoed in a summary.
const HeadRows = 5

// Summary holds the console summaries of a roster.
type Summary struct {
	Head    Table
	Classes Frequency
	Races   Frequency
	// Popularity is nil when the column is absent or entirely null.
	Popularity *GroupedFrequency
}

// Summarize computes the class and race frequencies and, when a Popularity
// column carries values, popularity counts within each class.
func Summarize(t Table) (Summary, error) {
	classes, err := Frequencies(t, ColumnClass)
	if err != nil {
		return Summary{}, err
	}
	races, err := Frequencies(t, ColumnRace)
	if err != nil {
		return Summary{}, err
	}
	s := Summary{
		Head:    t.Head(HeadRows),
		Classes: classes,
		Races:   races,
	}
	if t.HasColumn(ColumnPopularity) {
		popularity, err := GroupedFrequencies(t, ColumnClass, ColumnPopularity)
		if err != nil {
			return Summary{}, err
		}
		if !popularity.Empty() {
			s.Popularity = &popularity
		}
	}
	return s, nil
}

// Write prints every section of the summary. Counts are formatted by p.
func (s Summary) Write(w io.Writer, p *message.Printer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	p.Fprintf(tw, "\n== Head ==\n")
	p.Fprintf(tw, "%s\n", strings.Join(s.Head.Header, "\t"))
	for _, row := range s.Head.Rows {
		p.Fprintf(tw, "%s\n", strings.Join(row, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	writeFrequency(tw, p, "Classes", s.Classes)
	if err := tw.Flush(); err != nil {
		return err
	}
	writeFrequency(tw, p, "Races", s.Races)
	if err := tw.Flush(); err != nil {
		return err
	}

	if s.Popularity != nil {
		p.Fprintf(tw, "\n== %s by %s ==\n", s.Popularity.Inner, s.Popularity.Outer)
		p.Fprintf(tw, "%s\t%s\tcount\n", s.Popularity.Outer, s.Popularity.Inner)
		for _, group := range s.Popularity.Groups {
			for i, c := range group.Counts {
				key := group.Key
				if i > 0 {
					key = ""
				}
				p.Fprintf(tw, "%s\t%s\t%d\n", key, c.Value, c.N)
			}
		}
	}
	return tw.Flush()
}

func writeFrequency(w io.Writer, p *message.Printer, title string, f Frequency) {
	p.Fprintf(w, "\n== %s ==\n", title)
	p.Fprintf(w, "%s\tcount\n", f.Column)
	for _, c := range f.Counts {
		p.Fprintf(w, "%s\t%d\n", c.Value, c.N)
	}
}

// WriteText prints the matrix as an aligned table with counts formatted by p.
func (m CountMatrix) WriteText(w io.Writer, p *message.Printer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	p.Fprintf(tw, "%s\t", m.RowLabel)
	for _, col := range m.Columns {
		p.Fprintf(tw, "%s\t", col)
	}
	p.Fprintf(tw, "\n")
	for i, label := range m.Rows {
		p.Fprintf(tw, "%s\t", label)
		for _, n := range m.Cells[i] {
			p.Fprintf(tw, "%d\t", n)
		}
		p.Fprintf(tw, "\n")
	}
	return tw.Flush()
}
