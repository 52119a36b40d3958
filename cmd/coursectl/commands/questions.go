package commands

import (
	"errors"

	"github.com/spf13/cobra"
)

func (c *cli) questionsCmd() *cobra.Command {
	var courseID, limit int
	var category string
	var userID int64

	cmd := &cobra.Command{
		Use:   "questions",
		Short: "Draw quiz questions for a course or a category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case category != "":
				return c.printResult(c.api.QuestionsByCategory(cmd.Context(), category, userID, limit))
			case courseID > 0:
				return c.printResult(c.api.Questions(cmd.Context(), courseID, limit))
			default:
				return errors.New("either --course or --category is required")
			}
		},
	}
	cmd.Flags().IntVar(&courseID, "course", 0, "course id")
	cmd.Flags().StringVar(&category, "category", "", "question category")
	cmd.Flags().Int64Var(&userID, "user", 0, "user id (with --category)")
	cmd.Flags().IntVar(&limit, "limit", 0, "number of questions (default 5 per course, 10 per category)")
	cmd.MarkFlagsMutuallyExclusive("course", "category")
	return cmd
}
