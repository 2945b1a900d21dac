package cli

import (
	"context"
	"errors"
	"fmt"

	"tripadmin/internal/client/models"
	"tripadmin/internal/client/validation"
)

func (a *App) listUsers(ctx context.Context) {
	if a.users.Cache().Len() == 0 {
		if err := a.users.FetchAll(ctx); err != nil {
			return
		}
	}
	for _, u := range a.users.Cache().All() {
		fmt.Fprintf(a.out, "%s  %s  <%s>  %s\n", u.ID, u.Name, u.Email, u.Role)
	}
}

func (a *App) addUser(ctx context.Context) {
	a.users.Dialog().OpenForCreate()
	a.runUserDialog(ctx)
}

func (a *App) editUser(ctx context.Context, id string) {
	rec, ok := a.users.Cache().Get(id)
	if !ok {
		fmt.Fprintln(a.out, "No such user:", id)
		return
	}
	a.users.Dialog().OpenForEdit(rec)
	a.runUserDialog(ctx)
}

// runUserDialog prompts for the account fields and submits. When the gate
// rejects, the inline messages are printed and the dialog stays open with the
// draft intact so the user can fix the fields and retry.
func (a *App) runUserDialog(ctx context.Context) {
	for {
		if err := a.promptAccount(); err != nil {
			a.users.Dialog().Close()
			return
		}

		err := a.users.Submit(ctx)
		if err == nil {
			return
		}

		var verr *validation.Error
		if errors.As(err, &verr) {
			for _, f := range verr.Fields {
				fmt.Fprintln(a.out, f.Message)
			}
			continue
		}
		// Remote failures already raised a toast; the dialog stays open.
		return
	}
}

func (a *App) promptAccount() error {
	draft := a.users.Dialog().Draft()
	cur := draft.Value()

	name, err := GetSimpleText(a.reader, "Name", cur.Name, a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Email", cur.Email, a.out)
	if err != nil {
		return err
	}
	role, err := GetSimpleText(a.reader, "Role (admin/user)", string(cur.Role), a.out)
	if err != nil {
		return err
	}

	passPrompt := "Password"
	if !cur.IsNew() {
		passPrompt = "Password (leave empty to keep)"
	}
	password, err := GetPassword(passPrompt, a.out)
	if err != nil {
		return err
	}
	var confirm string
	if password != "" || cur.IsNew() {
		confirm, err = GetPassword("Confirm password", a.out)
		if err != nil {
			return err
		}
	}

	draft.Mutate(func(acc *models.Account) {
		acc.Name = name
		acc.Email = email
		acc.Role = models.Role(role)
		acc.Password = password
		acc.PasswordConfirm = confirm
	})
	return nil
}

func (a *App) deleteUser(ctx context.Context, id string) {
	rec, ok := a.users.Cache().Get(id)
	if !ok {
		fmt.Fprintln(a.out, "No such user:", id)
		return
	}
	a.users.Dialog().OpenDeleteConfirm(rec)

	ans, err := GetSimpleText(a.reader, fmt.Sprintf("Delete user %q? (y/n)", rec.Label()), "", a.out)
	if err != nil || ans != "y" {
		a.users.Dialog().Close()
		return
	}
	_ = a.users.Delete(ctx)
}
