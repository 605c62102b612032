package cli

import (
	"context"
	"os"
)

func (a *App) Register(ctx context.Context) error {

	username, err := GetSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	user, err := a.client.Signup(ctx, username, string(password), email)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn("Registered as", user.Username)
	return nil
}

func (a *App) Login(ctx context.Context) error {

	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	user, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn("Logged in as", user.Username)
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {

	user, err := a.client.Me(ctx)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn(user.Username, "<"+user.Email+">")
	return nil
}
