package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/ordertrack/internal/client/api"
	"github.com/dmitrijs2005/ordertrack/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts the user for a username and password and attempts to
// create a new account.
//
// On success it prints "Success!" and returns nil. The password byte slice
// is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.client.Register(ctx, userName, password); err != nil {
		if errors.Is(err, api.ErrAlreadyExists) {
			fmt.Println("Username is already taken")
			return err
		}
		log.Printf("Registration unsuccessful: %s", err.Error())
		return err
	}

	fmt.Println("Success! You can now log in.")
	return nil
}

// Login prompts the user for credentials and tries to authenticate.
// On success the client keeps the issued token and the App remembers
// the username for the prompt. The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.client.Login(ctx, userName, password); err != nil {
		if errors.Is(err, api.ErrUnavailable) {
			log.Printf("Server unavailable")
			a.setMode(ModeOffline)
		} else {
			log.Printf("Login unsuccessful: %s", err.Error())
		}
		return err
	}

	log.Printf("Login successful")
	a.userName = userName
	a.setMode(ModeOnline)
	return nil
}

// Logout drops the in-memory access token.
func (a *App) Logout(ctx context.Context) error {
	a.client.Logout()
	a.userName = ""
	return nil
}
