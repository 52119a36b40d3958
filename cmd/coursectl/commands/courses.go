package commands

import (
	"github.com/spf13/cobra"
)

func (c *cli) coursesCmd() *cobra.Command {
	var limit, page, size int
	var keyword, mode string

	cmd := &cobra.Command{
		Use:   "courses",
		Short: "List the course catalogue",
		Long:  "Without --page the first --limit courses are listed; with --page one page is fetched.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if page > 0 {
				return c.printResult(c.api.CoursesPaged(cmd.Context(), page, size, keyword, mode))
			}
			return c.printResult(c.api.Courses(cmd.Context(), limit))
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 50, "number of courses (unpaged)")
	cmd.Flags().IntVar(&page, "page", 0, "page number, starting at 1")
	cmd.Flags().IntVar(&size, "size", 10, "page size")
	cmd.Flags().StringVar(&keyword, "keyword", "", "search keyword")
	cmd.Flags().StringVar(&mode, "mode", "name", "what the keyword matches against")
	return cmd
}

func (c *cli) courseTypesCmd() *cobra.Command {
	var exclude string

	cmd := &cobra.Command{
		Use:   "course-types",
		Short: "List course categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.printResult(c.api.CourseTypes(cmd.Context(), exclude))
		},
	}
	cmd.Flags().StringVar(&exclude, "exclude", "", "category filter interpreted by the backend")
	return cmd
}
