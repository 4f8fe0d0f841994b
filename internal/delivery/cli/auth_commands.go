package cli

import (
	"context"
	"fmt"
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"
)

func (a *App) runLogin(ctx context.Context, args []string) error {
	fs := a.flagSet("login")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if _, err := a.parse(fs, args, 0); err != nil {
		return err
	}

	user, err := a.auth.Login(ctx, usecase.LoginInput{Email: *email, Password: *password})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "Signed in as %s (%s)\n", user.Name, user.Role)

	return nil
}

func (a *App) runRegister(ctx context.Context, args []string) error {
	fs := a.flagSet("register")
	name := fs.String("name", "", "full name")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	phone := fs.String("phone", "", "phone number")
	role := fs.String("role", string(entity.RoleClient), "CLIENT or SHOPPER")
	if _, err := a.parse(fs, args, 0); err != nil {
		return err
	}

	user, err := a.auth.Register(ctx, usecase.RegisterInput{
		FullName: *name,
		Email:    *email,
		Password: *password,
		Phone:    *phone,
		Role:     entity.Role(strings.ToUpper(*role)),
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "Account created for %s. Run 'storefront login' to sign in.\n", user.Email)

	return nil
}

func (a *App) runWhoAmI(_ context.Context, args []string) error {
	fs := a.flagSet("whoami")
	if _, err := a.parse(fs, args, 0); err != nil {
		return err
	}

	a.printUser(a.auth.CurrentSession().User)

	return nil
}

func (a *App) runProfile(ctx context.Context, args []string) error {
	fs := a.flagSet("profile")
	name := fs.String("name", "", "full name")
	phone := fs.String("phone", "", "phone number")
	avatar := fs.String("avatar", "", "avatar image file")
	if _, err := a.parse(fs, args, 0); err != nil {
		return err
	}

	given := visited(fs)
	input := usecase.UpdateProfileInput{Avatar: entity.FileRef(*avatar)}
	if given["name"] {
		input.FullName = name
	}
	if given["phone"] {
		input.Phone = phone
	}

	user, err := a.auth.UpdateProfile(ctx, input)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.stdout, "Profile updated.")
	a.printUser(user)

	return nil
}

func (a *App) runLogout(ctx context.Context, args []string) error {
	fs := a.flagSet("logout")
	if _, err := a.parse(fs, args, 0); err != nil {
		return err
	}

	a.auth.Logout(ctx)
	fmt.Fprintln(a.stdout, "Signed out.")

	return nil
}

func (a *App) printUser(user *entity.User) {
	if user == nil {
		fmt.Fprintln(a.stdout, "Not signed in.")

		return
	}

	w := a.table()
	fmt.Fprintf(w, "ID\t%s\n", user.ID)
	fmt.Fprintf(w, "Name\t%s\n", user.Name)
	fmt.Fprintf(w, "Email\t%s\n", user.Email)
	fmt.Fprintf(w, "Role\t%s\n", user.Role)
	if user.Phone != "" {
		fmt.Fprintf(w, "Phone\t%s\n", user.Phone)
	}
	if user.AvatarURL != "" {
		fmt.Fprintf(w, "Avatar\t%s\n", a.mediaURL(user.AvatarURL))
	}
	_ = w.Flush()
}
