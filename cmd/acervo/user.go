package main

import (
	"fmt"

	"github.com/RigelNana/acervo/dto"
	"github.com/RigelNana/acervo/repository"
	"github.com/RigelNana/acervo/service"

	"github.com/spf13/cobra"
)

type createUserOptions struct {
	login    string
	email    string
	password string
}

func newCreateUserCmd() *cobra.Command {
	var opts createUserOptions
	cmd := &cobra.Command{
		Use:   "create-user",
		Short: "Register a user directly in the database",
		Long: `Register a user without going through the API. The same login and email
rules apply as for POST /v1/users/register.

Examples:
  acervo create-user --login ana --email ana@example.com --password s3cret`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, db, err := bootstrap()
			if err != nil {
				return err
			}
			defer closeDB(db)

			users := service.NewUserService(repository.NewUserRepository(db))
			res, err := createUser(cmd, users, opts)
			if err != nil {
				return err
			}
			logger.WithField("user_id", res.ID).Info("user registered")
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.login, "login", "", "login of the new user")
	cmd.Flags().StringVar(&opts.email, "email", "", "email of the new user")
	cmd.Flags().StringVar(&opts.password, "password", "", "plain password, stored as a bcrypt hash")
	_ = cmd.MarkFlagRequired("login")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func createUser(cmd *cobra.Command, users service.UserService, opts createUserOptions) (dto.UserDTO, error) {
	res, err := users.Create(cmd.Context(), dto.UserDTO{
		Login:    &opts.login,
		Email:    &opts.email,
		Password: &opts.password,
	})
	if err != nil {
		return dto.UserDTO{}, err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "created user %s (id %d)\n", opts.login, res.ID)
	return res, nil
}
