package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-solver/internal/feedback"
	"github.com/robalobadob/wordle-solver/internal/solver"
)

func newAssistCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "assist",
		Short: "Suggest guesses for a game played elsewhere",
		Long: `Suggests a guess, then reads the feedback you got for it and suggests the next.

Feedback is five characters, one per tile:
  the letter itself   right letter, right spot
  -                   letter is in the word, elsewhere
  +                   letter is not in the word

Example: guessing CRANE against TRACE gives "-ra+e".
An empty line or "quit" ends the session.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := solver.New(a.model, a.cfg.Solver(), solver.WithLogger(a.log))
			if err != nil {
				return err
			}
			return assist(cmd.InOrStdin(), cmd.OutOrStdout(), s)
		},
	}
}

// assist drives s from feedback lines read from in.
func assist(in io.Reader, out io.Writer, s *solver.Solver) error {
	guess, err := s.NextGuess("")
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Try %s\n", strings.ToUpper(guess))

	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "feedback> ")
		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}
		line := strings.ToLower(strings.TrimSpace(sc.Text()))
		if line == "" || line == "quit" {
			return nil
		}
		if p, err := feedback.Parse(line); err == nil && p.Solved() && p.Validate(guess) == nil {
			fmt.Fprintf(out, "Solved in %d.\n", len(s.Tried()))
			return nil
		}

		next, err := s.NextGuess(line)
		switch {
		case errors.Is(err, solver.ErrMalformedFeedback):
			fmt.Fprintf(out, "Can't use %q for %s: %s\n", line, strings.ToUpper(guess), feedbackProblem(err))
			continue
		case errors.Is(err, solver.ErrNoCandidates):
			fmt.Fprintln(out, "No word in the list fits that feedback.")
			return nil
		case err != nil:
			return err
		}
		guess = next
		fmt.Fprintf(out, "Try %s (%d left)\n", strings.ToUpper(guess), len(s.Candidates()))
	}
}

func feedbackProblem(err error) string {
	switch {
	case errors.Is(err, feedback.ErrLength):
		return "need exactly 5 symbols"
	case errors.Is(err, feedback.ErrSymbol):
		return "use letters, '-' or '+'"
	case errors.Is(err, feedback.ErrMismatch):
		return "a letter must match the guess at its position"
	}
	return err.Error()
}
