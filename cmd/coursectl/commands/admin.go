package commands

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"
)

func (c *cli) adminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administration endpoints",
	}

	var username, password string
	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate an administrator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.printResult(c.api.AdminLogin(cmd.Context(), username, password))
		},
	}
	loginCmd.Flags().StringVar(&username, "username", "", "username")
	loginCmd.Flags().StringVar(&password, "password", "", "password")
	_ = loginCmd.MarkFlagRequired("username")
	_ = loginCmd.MarkFlagRequired("password")

	setURLCmd := &cobra.Command{
		Use:   "set-course-url <course-index> <url>",
		Short: "Set the external link of a course",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			return c.printResult(c.api.AdminUpdateCourseURL(cmd.Context(), idx, args[1]))
		},
	}

	deleteUserCmd := &cobra.Command{
		Use:   "delete-user <id>",
		Short: "Delete a user account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return c.printResult(c.api.AdminDeleteUser(cmd.Context(), id))
		},
	}

	cmd.AddCommand(
		loginCmd,
		c.adminListCmd("users", "List user accounts", func(ctx context.Context, page, size int, keyword string) (any, error) {
			return c.api.AdminListUsers(ctx, page, size, keyword)
		}),
		c.adminListCmd("questions", "List the question bank", func(ctx context.Context, page, size int, keyword string) (any, error) {
			return c.api.AdminListQuestions(ctx, page, size, keyword)
		}),
		c.adminListCmd("wrong-questions", "List every user's wrong questions", func(ctx context.Context, page, size int, keyword string) (any, error) {
			return c.api.AdminListWrongQuestions(ctx, page, size, keyword)
		}),
		c.adminListCmd("plans", "List every user's study plans", func(ctx context.Context, page, size int, keyword string) (any, error) {
			return c.api.AdminListPlans(ctx, page, size, keyword)
		}),
		c.adminListCmd("courses", "List courses with their links", func(ctx context.Context, page, size int, keyword string) (any, error) {
			return c.api.AdminListCourses(ctx, page, size, keyword)
		}),
		setURLCmd,
		deleteUserCmd,
	)
	return cmd
}

type adminLister func(ctx context.Context, page, size int, keyword string) (any, error)

func (c *cli) adminListCmd(use, short string, list adminLister) *cobra.Command {
	var page, size int
	var keyword string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.printResult(list(cmd.Context(), page, size, keyword))
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "page number, starting at 1")
	cmd.Flags().IntVar(&size, "size", 20, "page size")
	cmd.Flags().StringVar(&keyword, "keyword", "", "search keyword")
	return cmd
}
