package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"go-todo/internal/domain/model"
	"go-todo/pkg/msg"
)

var (
	loginUsername string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate against the backend and store the session token",
	RunE:  runLogin,
}

var (
	registerFullName string
	registerUsername string
	registerEmail    string
	registerPassword string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account on the backend",
	RunE:  runRegister,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the stored session token",
	RunE:  runLogout,
}

func init() {
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "account username")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "account password")

	registerCmd.Flags().StringVar(&registerFullName, "full-name", "", "full name")
	registerCmd.Flags().StringVarP(&registerUsername, "username", "u", "", "account username")
	registerCmd.Flags().StringVarP(&registerEmail, "email", "e", "", "account email")
	registerCmd.Flags().StringVarP(&registerPassword, "password", "p", "", "account password")
}

func runLogin(cmd *cobra.Command, args []string) error {
	useCase := newAuthUseCase()

	err := useCase.Login(model.LoginDTO{
		Username: loginUsername,
		Password: loginPassword,
	})
	if err != nil {
		return err
	}

	fmt.Println(msg.GetMessage("auth.login.success", loginUsername))
	return nil
}

func runRegister(cmd *cobra.Command, args []string) error {
	useCase := newAuthUseCase()

	err := useCase.Register(model.RegisterDTO{
		FullName: registerFullName,
		Username: registerUsername,
		Email:    registerEmail,
		Password: registerPassword,
	})
	if err != nil {
		return err
	}

	fmt.Printf("account %s registered, you can now login\n", registerUsername)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	if err := newAuthUseCase().Logout(); err != nil {
		return err
	}
	fmt.Println(msg.GetMessage("auth.logout.success"))
	return nil
}
