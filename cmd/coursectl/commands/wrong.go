package commands

import (
	"github.com/spf13/cobra"

	"coursehub/internal/model"
)

func (c *cli) wrongCmd() *cobra.Command {
	var userID int64

	cmd := &cobra.Command{
		Use:   "wrong",
		Short: "Manage the wrong-question notebook",
	}
	cmd.PersistentFlags().Int64Var(&userID, "user", 0, "owner user id")
	_ = cmd.MarkPersistentFlagRequired("user")

	var keyword, category string
	var courseID int64
	var page, size int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List notebook entries",
		Long:  "Without --page the whole notebook is listed; with --page one page is fetched.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if page > 0 {
				return c.printResult(c.api.WrongQuestionsPaged(cmd.Context(), userID, category, keyword, page, size))
			}
			return c.printResult(c.api.WrongQuestions(cmd.Context(), userID, keyword, courseID))
		},
	}
	listCmd.Flags().StringVar(&keyword, "keyword", "", "search keyword")
	listCmd.Flags().Int64Var(&courseID, "course", 0, "course id (unpaged)")
	listCmd.Flags().StringVar(&category, "category", "all", "category (paged)")
	listCmd.Flags().IntVar(&page, "page", 0, "page number, starting at 1")
	listCmd.Flags().IntVar(&size, "size", 5, "page size")

	var req model.WrongQuestionRequest
	var questionID int64
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Record a wrong answer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req.UserID = userID
			if cmd.Flags().Changed("question") {
				req.QuestionID = &questionID
			}
			return c.printResult(c.api.CreateWrongQuestion(cmd.Context(), req))
		},
	}
	addCmd.Flags().Int64Var(&questionID, "question", 0, "question bank id")
	addCmd.Flags().StringVar(&req.QuestionText, "text", "", "question text")
	addCmd.Flags().StringVar(&req.CourseName, "course-name", "", "course name")
	addCmd.Flags().StringVar(&req.YourAnswer, "answer", "", "the wrong answer given")
	addCmd.Flags().StringVar(&req.CorrectAnswer, "correct", "", "the correct answer")
	_ = addCmd.MarkFlagRequired("text")

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a notebook entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return c.printResult(c.api.DeleteWrongQuestion(cmd.Context(), id, userID))
		},
	}

	var countQuestionID int64
	var countText string
	countCmd := &cobra.Command{
		Use:   "count",
		Short: "How often a question was answered wrong",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.printResult(c.api.WrongQuestionCount(cmd.Context(), userID, countQuestionID, countText))
		},
	}
	countCmd.Flags().Int64Var(&countQuestionID, "question", 0, "question bank id")
	countCmd.Flags().StringVar(&countText, "text", "", "question text, for questions outside the bank")
	countCmd.MarkFlagsOneRequired("question", "text")

	var byCategory string
	var limit int
	byCategoryCmd := &cobra.Command{
		Use:   "by-category",
		Short: "Notebook entries of one category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.printResult(c.api.WrongQuestionsByCategory(cmd.Context(), byCategory, userID, limit))
		},
	}
	byCategoryCmd.Flags().StringVar(&byCategory, "category", "", "category")
	byCategoryCmd.Flags().IntVar(&limit, "limit", 10, "maximum number of entries")
	_ = byCategoryCmd.MarkFlagRequired("category")

	cmd.AddCommand(listCmd, addCmd, deleteCmd, countCmd, byCategoryCmd)
	return cmd
}
