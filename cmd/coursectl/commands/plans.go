package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"coursehub/internal/model"
)

func (c *cli) plansCmd() *cobra.Command {
	var userID int64

	cmd := &cobra.Command{
		Use:   "plans",
		Short: "Manage study plans",
	}
	cmd.PersistentFlags().Int64Var(&userID, "user", 0, "owner user id")
	_ = cmd.MarkPersistentFlagRequired("user")

	var status, sort string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List study plans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.printResult(c.api.Plans(cmd.Context(), userID, status, sort))
		},
	}
	listCmd.Flags().StringVar(&status, "status", "", "status filter")
	listCmd.Flags().StringVar(&sort, "sort", "desc", "target date order: asc or desc")

	var plan model.PlanRequest
	planFlags := func(cmd *cobra.Command) {
		cmd.Flags().StringVar(&plan.Title, "title", "", "title")
		cmd.Flags().StringVar(&plan.Description, "description", "", "description")
		cmd.Flags().StringVar(&plan.TargetDate, "target-date", "", "target date, YYYY-MM-DD")
		cmd.Flags().StringVar(&plan.Status, "status", "", "status")
		_ = cmd.MarkFlagRequired("title")
	}

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a study plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan.UserID = userID
			return c.printResult(c.api.CreatePlan(cmd.Context(), plan))
		},
	}
	planFlags(createCmd)

	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace a study plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return c.printResult(c.api.UpdatePlan(cmd.Context(), id, userID, plan))
		},
	}
	planFlags(updateCmd)

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a study plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return c.printResult(c.api.DeletePlan(cmd.Context(), id, userID))
		},
	}

	cmd.AddCommand(listCmd, createCmd, updateCmd, deleteCmd)
	return cmd
}

func parseID(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}
