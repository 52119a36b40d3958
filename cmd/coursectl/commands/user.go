package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func (c *cli) registerCmd() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.printResult(c.api.Register(cmd.Context(), username, password))
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "username")
	cmd.Flags().StringVar(&password, "password", "", "password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func (c *cli) loginCmd() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate a user",
		Long:  "Prints the login result. A rejected login is printed too, then exits non-zero.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.api.Login(cmd.Context(), username, password)
			if err != nil {
				return err
			}
			if err := c.print(res); err != nil {
				return err
			}
			if !res.OK() {
				return fmt.Errorf("login rejected: HTTP %d %s", res.Status, res.Error)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "username")
	cmd.Flags().StringVar(&password, "password", "", "password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func (c *cli) profileCmd() *cobra.Command {
	var userID int64

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Change a user's profile",
	}
	cmd.PersistentFlags().Int64Var(&userID, "user", 0, "user id")
	_ = cmd.MarkPersistentFlagRequired("user")

	var major int
	majorCmd := &cobra.Command{
		Use:   "major",
		Short: "Set the major category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.printResult(c.api.UpdateMajor(cmd.Context(), userID, major))
		},
	}
	majorCmd.Flags().IntVar(&major, "major", 0, "major category id")
	_ = majorCmd.MarkFlagRequired("major")

	var username string
	var updateMajor int
	updateCmd := &cobra.Command{
		Use:   "update",
		Short: "Change the username and optionally the major",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var m *int
			if cmd.Flags().Changed("major") {
				m = &updateMajor
			}
			return c.printResult(c.api.UpdateProfile(cmd.Context(), userID, username, m))
		},
	}
	updateCmd.Flags().StringVar(&username, "username", "", "new username")
	updateCmd.Flags().IntVar(&updateMajor, "major", 0, "major category id")
	_ = updateCmd.MarkFlagRequired("username")

	var oldPassword, newPassword string
	passwordCmd := &cobra.Command{
		Use:   "password",
		Short: "Change the password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.printResult(c.api.ChangePassword(cmd.Context(), userID, oldPassword, newPassword))
		},
	}
	passwordCmd.Flags().StringVar(&oldPassword, "old", "", "current password")
	passwordCmd.Flags().StringVar(&newPassword, "new", "", "new password")
	_ = passwordCmd.MarkFlagRequired("old")
	_ = passwordCmd.MarkFlagRequired("new")

	avatarCmd := &cobra.Command{
		Use:   "avatar <image>",
		Short: "Upload an avatar image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			return c.printResult(c.api.UploadAvatar(cmd.Context(), userID, filepath.Base(args[0]), f))
		},
	}

	cmd.AddCommand(majorCmd, updateCmd, passwordCmd, avatarCmd)
	return cmd
}
