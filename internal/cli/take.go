package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"biologia-quiz-client/internal/app"
	"biologia-quiz-client/internal/domain"
	"github.com/spf13/cobra"
)

// NewTakeCmd builds the subcommand that runs the full quiz flow: register,
// answer every question in order, submit, show the score.
func NewTakeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "take",
		Short: "Register and take the quiz",
		RunE: func(cmd *cobra.Command, args []string) error {
			appCtx, err := newApp(*configPath)
			if err != nil {
				return err
			}
			return runTake(cmd, appCtx)
		},
	}
}

func runTake(cmd *cobra.Command, appCtx *appContext) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	in := bufio.NewReader(os.Stdin)

	if !appCtx.session.HasToken() {
		reg, err := promptRegistration(out, in)
		if err != nil {
			return err
		}
		for {
			profile, err := appCtx.flow.Register(ctx, reg)
			if err == nil {
				fmt.Fprintf(out, "\nWelcome, %s (participant #%d).\n\n", profile.FullName, profile.UserID)
				break
			}
			var ve *domain.ValidationError
			if errors.As(err, &ve) {
				fmt.Fprintf(out, "%s\n", ve.Reason)
				reg, err = promptRegistration(out, in)
				if err != nil {
					return err
				}
				continue
			}
			return fmt.Errorf("registration failed: %w", err)
		}
	} else if profile, ok := appCtx.session.UserData(); ok {
		fmt.Fprintf(out, "Resuming as %s.\n\n", profile.FullName)
	}

	nav, err := appCtx.flow.StartQuiz(QuestionBank())
	if err != nil {
		return err
	}

	for {
		if err := askQuestion(out, in, nav); err != nil {
			return err
		}
		if nav.IsLastQuestion() {
			break
		}
		nav.Advance()
	}

	result, err := appCtx.flow.Submit(ctx, nav)
	if err != nil {
		if domain.IsAuth(err) {
			return fmt.Errorf("your session expired; run `take` again to re-register")
		}
		return fmt.Errorf("could not submit answers, your selections are kept — try again: %w", err)
	}

	printScore(out, result)
	appCtx.flow.FinishAndGoHome()
	return nil
}

func promptRegistration(out io.Writer, in *bufio.Reader) (domain.Registration, error) {
	fmt.Fprintln(out, "Registration")
	var reg domain.Registration
	var err error
	if reg.FullName, err = promptField(out, in, "Full name"); err != nil {
		return domain.Registration{}, err
	}
	if reg.Grade, err = promptField(out, in, "Grade"); err != nil {
		return domain.Registration{}, err
	}
	if reg.Group, err = promptField(out, in, "Group"); err != nil {
		return domain.Registration{}, err
	}
	if reg.Email, err = promptField(out, in, "Institutional email"); err != nil {
		return domain.Registration{}, err
	}
	return reg, nil
}

func promptField(out io.Writer, in *bufio.Reader, label string) (string, error) {
	fmt.Fprintf(out, "  %s: ", label)
	line, err := in.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func askQuestion(out io.Writer, in *bufio.Reader, nav *app.Navigator) error {
	q := nav.CurrentQuestion()
	fmt.Fprintf(out, "Question %d/%d (%.0f%%)\n%s\n",
		nav.QuestionNumber(), nav.TotalQuestions(), nav.ProgressFraction()*100, q.Text)
	for i, opt := range q.Options {
		fmt.Fprintf(out, "  %d) %s\n", i+1, opt)
	}

	for {
		fmt.Fprint(out, "Your answer: ")
		line, err := in.ReadString('\n')
		if err != nil {
			return err
		}
		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || choice < 1 || choice > len(q.Options) {
			fmt.Fprintf(out, "Enter a number between 1 and %d.\n", len(q.Options))
			continue
		}
		if err := nav.SelectAnswer(q.ID, q.Options[choice-1]); err != nil {
			fmt.Fprintf(out, "Could not record answer: %v\n", err)
			continue
		}
		fmt.Fprintln(out)
		return nil
	}
}

func printScore(out io.Writer, result domain.ScoreResult) {
	fmt.Fprintf(out, "Score: %.2f%% (%d of %d correct)\n",
		result.Score, result.CorrectAnswers, result.TotalQuestions)
	switch {
	case result.Score >= 90:
		fmt.Fprintln(out, "Excellent work!")
	case result.Score >= 80:
		fmt.Fprintln(out, "Very good!")
	case result.Score >= 60:
		fmt.Fprintln(out, "Good attempt.")
	default:
		fmt.Fprintln(out, "Keep practicing.")
	}
}
