package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
)

// CSVLine formats a summary as "accuracy%,avg_guesses,seconds".
func CSVLine(s Summary) string {
	return fmt.Sprintf("%.2f%%,%.4f,%.2f", s.Accuracy()*100, s.AvgGuesses(), s.Elapsed.Seconds())
}

var csvHeader = []string{"label", "beta_bigram", "beta_trigram", "rounds", "wins", "exhausted", "accuracy", "avg_guesses", "seconds"}

// WriteCSV writes one row per summary, with a header.
func WriteCSV(w io.Writer, sums []Summary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, s := range sums {
		row := []string{
			s.Label,
			ftoa(s.Config.BetaBigram),
			ftoa(s.Config.BetaTrigram),
			strconv.Itoa(s.Rounds),
			strconv.Itoa(s.Wins),
			strconv.Itoa(s.Exhausted),
			strconv.FormatFloat(s.Accuracy(), 'f', 4, 64),
			strconv.FormatFloat(s.AvgGuesses(), 'f', 4, 64),
			strconv.FormatFloat(s.Elapsed.Seconds(), 'f', 2, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTable prints summaries as an aligned table.
func WriteTable(w io.Writer, sums []Summary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CONFIG\tACCURACY\tAVG GUESSES\tEXHAUSTED\tTIME")
	for _, s := range sums {
		fmt.Fprintf(tw, "%s\t%.2f%%\t%.3f\t%d\t%.2fs\n",
			s.Label, s.Accuracy()*100, s.AvgGuesses(), s.Exhausted, s.Elapsed.Seconds())
	}
	return tw.Flush()
}

func ftoa(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
