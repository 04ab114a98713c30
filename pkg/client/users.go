package client

import (
	"context"
	"fmt"
)

// Users returns every registered user.
func (c *Client) Users(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.get(ctx, "/api/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// User returns one user by id.
func (c *Client) User(ctx context.Context, id int64) (*User, error) {
	var user User
	if err := c.get(ctx, fmt.Sprintf("/api/users/%d", id), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UsersByType returns every user of one role ("aluno" or "professor").
func (c *Client) UsersByType(ctx context.Context, userType string) ([]User, error) {
	var users []User
	if err := c.get(ctx, "/api/users/type/"+userType, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUser merges fields over one user's record. The server silently
// drops email, password and id; password changes go through the
// newPassword field.
func (c *Client) UpdateUser(ctx context.Context, id int64, fields map[string]interface{}) (*User, error) {
	var user User
	if err := c.put(ctx, fmt.Sprintf("/api/users/update/%d", id), fields, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes a user.
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/api/users/%d", id))
}
