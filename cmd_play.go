package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-solver/internal/bench"
	"github.com/robalobadob/wordle-solver/internal/daily"
	"github.com/robalobadob/wordle-solver/internal/feedback"
	"github.com/robalobadob/wordle-solver/internal/game"
	"github.com/robalobadob/wordle-solver/internal/solver"
	"github.com/robalobadob/wordle-solver/internal/words"
)

func newPlayCmd(a *app) *cobra.Command {
	var (
		human    bool
		useDaily bool
		answer   string
	)
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play one round against a hidden word",
		Long: `Plays one round of Wordle against a hidden word.

By default the solver plays and every guess is shown as colored tiles.
With --human you type the guesses yourself.

The hidden word is the word of the day with --daily, the given word with
--answer, a word drawn with --seed when that flag is set, and a random word
otherwise.

Examples:
  wordle play
  wordle play --answer zebra
  wordle play --human --daily`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.picker(cmd, useDaily, answer)
			if err != nil {
				return err
			}
			g := game.New(a.model.Corpus(), p)
			if human {
				return playHuman(cmd.InOrStdin(), cmd.OutOrStdout(), g)
			}
			s, err := solver.New(a.model, a.cfg.Solver(), solver.WithLogger(a.log))
			if err != nil {
				return err
			}
			return playSolver(cmd.OutOrStdout(), s, g)
		},
	}
	cmd.Flags().BoolVar(&human, "human", false, "type the guesses yourself")
	cmd.Flags().BoolVar(&useDaily, "daily", false, "play the word of the day")
	cmd.Flags().StringVar(&answer, "answer", "", "play against this word")
	cmd.MarkFlagsMutuallyExclusive("daily", "answer")
	return cmd
}

func (a *app) picker(cmd *cobra.Command, useDaily bool, answer string) (game.Picker, error) {
	switch {
	case answer != "":
		answer = strings.ToLower(strings.TrimSpace(answer))
		if !words.Valid(answer) {
			return nil, fmt.Errorf("--answer %q: need %d letters a-z", answer, words.Length)
		}
		return game.Fixed(answer), nil
	case useDaily:
		return daily.Picker{Salt: a.cfg.DailySalt}, nil
	case cmd.Flags().Changed("seed"):
		return game.NewSeededPicker(a.cfg.Seed), nil
	}
	return game.NewSeededPicker(uint64(time.Now().UnixNano())), nil
}

// playSolver lets the solver play the current round of g and prints each guess.
func playSolver(out io.Writer, s *solver.Solver, g *game.Game) error {
	r, err := bench.PlayRound(s, g, nil)
	if err != nil {
		return err
	}
	for _, guess := range r.Sequence {
		fmt.Fprintln(out, feedback.Render(guess, feedback.Compute(guess, r.Target)))
	}
	switch {
	case r.Won:
		fmt.Fprintf(out, "Solved %s in %d/%d.\n", strings.ToUpper(r.Target), r.Guesses, game.MaxAttempts)
	case r.Exhausted:
		fmt.Fprintf(out, "No word in the list fits the feedback; the answer was %s.\n", strings.ToUpper(r.Target))
	default:
		fmt.Fprintf(out, "Out of guesses; the answer was %s.\n", strings.ToUpper(r.Target))
	}
	return nil
}

// playHuman reads guesses from in until the round is over or input ends.
func playHuman(in io.Reader, out io.Writer, g *game.Game) error {
	fmt.Fprintf(out, "Guess the %d-letter word in %d tries.\n", words.Length, game.MaxAttempts)
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprintf(out, "%d/%d> ", len(g.Guesses())+1, game.MaxAttempts)
		if !sc.Scan() {
			fmt.Fprintf(out, "\nThe answer was %s.\n", strings.ToUpper(g.Answer()))
			return sc.Err()
		}
		guess := strings.ToLower(strings.TrimSpace(sc.Text()))
		res, err := g.CheckGuess(guess)
		if err != nil {
			fmt.Fprintln(out, guessProblem(err))
			continue
		}
		fmt.Fprintln(out, feedback.Render(guess, res.Pattern))
		if res.Over {
			if res.Won {
				fmt.Fprintf(out, "You got it in %d/%d.\n", len(g.Guesses()), game.MaxAttempts)
			} else {
				fmt.Fprintf(out, "Out of guesses; the answer was %s.\n", strings.ToUpper(g.Answer()))
			}
			return nil
		}
	}
}

func guessProblem(err error) string {
	switch {
	case errors.Is(err, game.ErrNotAlpha):
		return "Letters a-z only."
	case errors.Is(err, game.ErrLength):
		return fmt.Sprintf("Guesses have %d letters.", words.Length)
	case errors.Is(err, game.ErrAlreadyTried):
		return "Already tried that one."
	}
	return err.Error()
}
