package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dkarpov/picshare/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in
// tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getMultiline = GetMultiline

// Register prompts for a username, email and password and creates a new
// account. No session is established: the backend requires the email to be
// verified before the first login.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	msg, err := a.auth.Register(ctx, username, email, string(password))
	if err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return err
	}

	fmt.Println(msg)
	return nil
}

// Login prompts for credentials and authenticates. On success the rotated
// token is already persisted by the service; the account details are
// fetched so the prompt and ownership checks know who we are.
func (a *App) Login(ctx context.Context) error {
	prompt := "Enter email"
	if last := a.auth.LastUsername(ctx); last != "" {
		prompt = fmt.Sprintf("Enter email [%s]", last)
	}

	email, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return err
	}
	if email == "" {
		email = a.auth.LastUsername(ctx)
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Login(ctx, email, string(password)); err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	user, err := a.auth.RetrieveUser(ctx)
	if err != nil {
		log.Printf("Logged in, but could not load account details: %s", err.Error())
		return nil
	}

	a.user = user
	log.Printf("Login successful")
	return nil
}

// Whoami prints the current account details.
func (a *App) Whoami(ctx context.Context) error {
	if a.user == nil {
		fmt.Println("Not logged in")
		return nil
	}
	fmt.Printf("%s <%s> (%s)\n", a.user.Username, a.user.Email, a.user.UUID)
	return nil
}

// Logout drops the stored session. Never fails outward.
func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout(ctx)
	a.user = nil
	fmt.Println("Logged out")
	return nil
}

// DeleteAccount removes the account after an explicit confirmation.
func (a *App) DeleteAccount(ctx context.Context) error {
	answer, err := getSimpleText(a.reader, "This permanently deletes your account and all your photos. Type 'yes' to continue", os.Stdout)
	if err != nil {
		return err
	}
	if answer != "yes" {
		fmt.Println("Cancelled")
		return nil
	}

	if err := a.auth.DeleteAccount(ctx); err != nil {
		log.Printf("Could not delete account: %s", err.Error())
		return err
	}

	a.user = nil
	fmt.Println("Account deleted")
	return nil
}
