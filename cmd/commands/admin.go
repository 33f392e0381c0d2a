package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"parth-agrotech/cmd/config"
	"parth-agrotech/domain"
	"parth-agrotech/internal/utils"
	"parth-agrotech/pkg/jwt"
	"parth-agrotech/pkg/user"
)

var (
	// Admin flags
	username string
	password string
	fromName string
	toName   string
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage admin users",
}

var adminSetupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create the first admin user",
	Long: `Create the first admin user. Refused once any admin exists.

Examples:
  parthagro admin setup --username parthagro --password 's3cret'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeFn, err := newUserService(cmd.Context())
		if err != nil {
			return err
		}
		defer closeFn()

		req := domain.SetupRequest{Username: username, Password: password}
		if err := utils.ValidateStruct(utils.NewValidator(), &req); err != nil {
			return err
		}
		admin, err := svc.Setup(cmd.Context(), req)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created admin %q (%s)\n", admin.Username, admin.ID)
		return nil
	},
}

var adminRenameCmd = &cobra.Command{
	Use:   "rename",
	Short: "Change the username of a user",
	Long: `Change the username of a user. Open sessions of the user are ended.

Examples:
  parthagro admin rename --from admin --to parthagro`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeFn, err := newUserService(cmd.Context())
		if err != nil {
			return err
		}
		defer closeFn()

		renamed, err := svc.RenameUser(cmd.Context(), fromName, toName)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "renamed %q to %q\n", fromName, renamed.Username)
		return nil
	},
}

func init() {
	adminSetupCmd.Flags().StringVarP(&username, "username", "u", "", "Admin username")
	adminSetupCmd.Flags().StringVarP(&password, "password", "p", "", "Admin password")
	_ = adminSetupCmd.MarkFlagRequired("username")
	_ = adminSetupCmd.MarkFlagRequired("password")

	adminRenameCmd.Flags().StringVar(&fromName, "from", "", "Current username")
	adminRenameCmd.Flags().StringVar(&toName, "to", "", "New username")
	_ = adminRenameCmd.MarkFlagRequired("from")
	_ = adminRenameCmd.MarkFlagRequired("to")

	adminCmd.AddCommand(adminSetupCmd)
	adminCmd.AddCommand(adminRenameCmd)
}

func newUserService(ctx context.Context) (user.UserService, func(), error) {
	db, err := config.ConnectDB(cfg)
	if err != nil {
		return nil, nil, err
	}
	sessions, redisClient, err := openSessionStore(ctx)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if redisClient != nil {
			_ = redisClient.Close()
		}
	}
	svc := user.NewUserService(user.NewUserRepository(db), sessions, jwt.NewJWTService(cfg.SessionSecret), cfg.SessionTTL())
	return svc, closeFn, nil
}
