package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"biologia-quiz-client/internal/domain"
	"github.com/spf13/cobra"
)

// NewAdminCmd builds the subcommand that logs in as administrator and prints
// the dashboard: results table, top scores and aggregate stats.
func NewAdminCmd(configPath *string) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Log in as administrator and show the results dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			appCtx, err := newApp(*configPath)
			if err != nil {
				return err
			}
			return runAdmin(cmd, appCtx, username, password)
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "admin username (prompted when omitted)")
	cmd.Flags().StringVar(&password, "password", "", "admin password (prompted when omitted)")
	return cmd
}

func runAdmin(cmd *cobra.Command, appCtx *appContext, username, password string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	in := bufio.NewReader(os.Stdin)

	if !appCtx.session.HasAdminToken() {
		var err error
		if username == "" {
			if username, err = promptField(out, in, "Username"); err != nil {
				return err
			}
		}
		if password == "" {
			if password, err = promptField(out, in, "Password"); err != nil {
				return err
			}
		}
		creds := domain.AdminCredentials{Username: username, Password: password}
		if err := appCtx.flow.AdminLogin(ctx, creds); err != nil {
			return fmt.Errorf("admin login failed: %w", err)
		}
	}

	board, err := appCtx.flow.LoadDashboard(ctx)
	if err != nil {
		if domain.IsAuth(err) {
			return fmt.Errorf("admin session expired; run `admin` again to log in")
		}
		return err
	}

	printDashboard(out, board)
	return nil
}

func printDashboard(out io.Writer, board domain.Dashboard) {
	fmt.Fprintf(out, "Participants: %d  Responses: %d  Average score: %.2f%%\n\n",
		board.Stats.TotalUsers, board.Stats.TotalResponses, board.Stats.AverageScore)

	if len(board.TopScores) > 0 {
		fmt.Fprintln(out, "Top scores")
		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tEMAIL\tCORRECT\tSCORE")
		for _, top := range board.TopScores {
			fmt.Fprintf(w, "%s\t%s\t%d/%d\t%.2f%%\n",
				top.FullName, top.Email, top.CorrectAnswers, top.TotalAnswers, top.Score)
		}
		w.Flush()
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, "All results")
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tGRADE\tGROUP\tEMAIL\tANSWERED\tCORRECT\tSCORE")
	for _, row := range board.Results {
		score := "-"
		if row.Score != nil {
			score = fmt.Sprintf("%.2f%%", *row.Score)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%s\n",
			row.FullName, row.Grade, row.Group, row.Email, row.TotalAnswers, row.CorrectAnswers, score)
	}
	w.Flush()

	if len(board.Stats.QuestionAccuracy) > 0 {
		fmt.Fprintln(out, "\nAccuracy per question")
		for _, qa := range board.Stats.QuestionAccuracy {
			fmt.Fprintf(out, "  Q%d: %.1f%%\n", qa.QuestionID, qa.Accuracy)
		}
	}
}
