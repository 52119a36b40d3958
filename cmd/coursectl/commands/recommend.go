package commands

import (
	"github.com/spf13/cobra"
)

func (c *cli) recommendCmd() *cobra.Command {
	var userID int64
	var topN int

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommended courses for a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.printResult(c.api.Recommendations(cmd.Context(), userID, topN))
		},
	}
	cmd.Flags().Int64Var(&userID, "user", 0, "user id")
	cmd.Flags().IntVar(&topN, "top", 10, "number of recommendations")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func (c *cli) clickCmd() *cobra.Command {
	var userID int64
	var course int

	cmd := &cobra.Command{
		Use:   "click",
		Short: "Record that a user opened a course",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.printResult(c.api.RecordCourseClick(cmd.Context(), userID, course))
		},
	}
	cmd.Flags().Int64Var(&userID, "user", 0, "user id")
	cmd.Flags().IntVar(&course, "course", 0, "course index")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("course")
	return cmd
}

func (c *cli) evaluateCmd() *cobra.Command {
	var topK, maxUsers int

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Run the offline recommender evaluation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.printResult(c.api.Evaluation(cmd.Context(), topK, maxUsers))
		},
	}
	cmd.Flags().IntVar(&topK, "top-k", 10, "cut-off for Precision@K, Recall@K and NDCG@K")
	cmd.Flags().IntVar(&maxUsers, "max-users", 1000, "maximum number of users to evaluate")
	return cmd
}
