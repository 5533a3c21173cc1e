package cli

import (
	"context"
	"fmt"
)

// Login prompts for credentials, exchanges them for a bearer token and
// caches it for later commands.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	token, err := a.api.Login(ctx, email, string(password))
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	if err := a.saveToken(token.Value); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged in.")
	return nil
}

// Whoami prints the user the cached token belongs to.
func (a *App) Whoami(ctx context.Context) error {
	token, err := a.loadToken()
	if err != nil {
		return err
	}

	user, err := a.api.Whoami(ctx, token)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s <%s>\n", user.FullName, user.Email)
	if user.IsSuperuser {
		fmt.Fprintln(a.out, "superuser")
	}
	return nil
}

// ListItems prints the caller's items, one per line.
func (a *App) ListItems(ctx context.Context) error {
	token, err := a.loadToken()
	if err != nil {
		return err
	}

	items, err := a.api.ListItems(ctx, token)
	if err != nil {
		return err
	}

	if len(items) == 0 {
		fmt.Fprintln(a.out, "No items.")
		return nil
	}
	for _, item := range items {
		desc := ""
		if item.Description != nil {
			desc = *item.Description
		}
		fmt.Fprintf(a.out, "%s\t%s\t%s\n", item.ID, item.Title, desc)
	}
	return nil
}

// AddItem prompts for title/description and creates the item.
func (a *App) AddItem(ctx context.Context) error {
	token, err := a.loadToken()
	if err != nil {
		return err
	}

	title, err := GetSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	description, err := GetSimpleText(a.reader, "Description (optional)", a.out)
	if err != nil {
		return err
	}

	var descPtr *string
	if description != "" {
		descPtr = &description
	}

	item, err := a.api.CreateItem(ctx, token, title, descPtr)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Created item %s\n", item.ID)
	return nil
}

// RemoveItem deletes an item by id.
func (a *App) RemoveItem(ctx context.Context, id string) error {
	token, err := a.loadToken()
	if err != nil {
		return err
	}

	if err := a.api.DeleteItem(ctx, token, id); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Deleted.")
	return nil
}
