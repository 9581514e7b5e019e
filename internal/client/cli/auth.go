package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/portfolio/internal/common"
)

// Login prompts for credentials and authenticates. On success the admin
// area is entered and the dashboard shown.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if _, err := a.authService.Login(ctx, userName, password); err != nil {
		a.logger.Warn(ctx, "login failed", "error", err)
		fmt.Fprintln(a.out, "Login failed. Please check your credentials.")
		return err
	}

	fmt.Fprintln(a.out, "Login successful")
	a.adminArea = true
	return a.Dashboard(ctx)
}

// Logout forgets the stored token and leaves the admin area.
func (a *App) Logout(ctx context.Context) error {
	a.adminArea = false
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
