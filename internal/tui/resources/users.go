// ABOUTME: User account adapter, list and delete only
// ABOUTME: Accounts register through the public site, never from the console

package resources

import (
	"context"
	"strconv"

	"github.com/tourbase/tourbase-admin/internal/api"
	"github.com/tourbase/tourbase-admin/internal/tui/crud"
)

// Users manages platform accounts. Create and edit are deliberately absent.
type Users struct {
	client *api.Client
}

func NewUsers(client *api.Client) *Users {
	return &Users{client: client}
}

type userRecord struct {
	api.User
}

func (r userRecord) RecordID() int { return r.ID }

func (u *Users) Title() string    { return "Users" }
func (u *Users) Singular() string { return "User" }

func (u *Users) Columns() []crud.Column {
	return []crud.Column{
		{Title: "ID", Width: 5},
		{Title: "Full name", Width: 26},
		{Title: "Email", Width: 30},
		{Title: "Role", Width: 8},
	}
}

func (u *Users) Row(rec crud.Record) []string {
	r := rec.(userRecord)
	return []string{
		strconv.Itoa(r.ID),
		r.FullName,
		r.Email,
		r.Role,
	}
}

func (u *Users) Fields() []crud.Field { return nil }

func (u *Users) List(ctx context.Context, _ string) ([]crud.Record, error) {
	items, err := u.client.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]crud.Record, 0, len(items))
	for _, item := range items {
		records = append(records, userRecord{item})
	}
	return records, nil
}

func (u *Users) Delete(ctx context.Context, id int) error {
	return u.client.DeleteUser(ctx, id)
}
