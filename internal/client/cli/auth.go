package cli

import (
	"context"
	"fmt"

	"github.com/akarpovs/sportactive/internal/client/models"
)

func (a *App) Register(ctx context.Context) {
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}

	res := a.store.Register(ctx, models.NewUser{
		Username: username,
		Email:    email,
		Password: string(password),
	})
	if !res.Success {
		fmt.Fprintln(a.out, "Registration failed:", res.Message)
		return
	}
	fmt.Fprintln(a.out, "Registered! You can login now.")
}

func (a *App) Login(ctx context.Context) {
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}

	res := a.store.Login(ctx, models.Credentials{Username: username, Password: string(password)})
	if !res.Success {
		fmt.Fprintln(a.out, "Login failed:", res.Message)
		return
	}
	fmt.Fprintf(a.out, "Welcome, %s!\n", res.User.Username)
}

func (a *App) Logout(ctx context.Context) {
	if err := a.store.Logout(ctx); err != nil {
		a.logger.Warn(ctx, "logout purge failed", "error", err)
	}
	fmt.Fprintln(a.out, "Logged out")
}

func (a *App) Profile(ctx context.Context) {
	if !a.requireLogin() {
		return
	}
	u := a.store.State().User
	rec, err := a.api.GetUser(ctx, u.ID)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	fmt.Fprintf(a.out, "Username:  %s\n", rec.Username)
	fmt.Fprintf(a.out, "Email:     %s\n", rec.Email)
	fmt.Fprintf(a.out, "Phone:     %s\n", rec.Phone)
	fmt.Fprintf(a.out, "Real name: %s\n", rec.RealName)
}

func (a *App) UpdateProfile(ctx context.Context) {
	if !a.requireLogin() {
		return
	}
	u := a.store.State().User

	email, err := GetSimpleText(a.reader, "New email (empty to keep)", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	phone, err := GetSimpleText(a.reader, "New phone (empty to keep)", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	realName, err := GetSimpleText(a.reader, "New real name (empty to keep)", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}

	res := a.store.UpdateUser(ctx, u.ID, models.UserPatch{Email: email, Phone: phone, RealName: realName})
	if !res.Success {
		fmt.Fprintln(a.out, "Update failed:", res.Message)
		return
	}
	fmt.Fprintln(a.out, "Profile updated")
}
