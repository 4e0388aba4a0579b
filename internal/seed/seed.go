package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Dataset is the demo data: memberships join users (by email) to groups
// (by name).
type Dataset struct {
	Users       []User
	Groups      []Group
	Memberships map[string][]string // email -> group names
}

func Demo() Dataset {
	return Dataset{
		Users: []User{
			{Name: "Ada Lovelace", Email: "ada@example.com"},
			{Name: "Grace Hopper", Email: "grace@example.com"},
			{Name: "Linus Torvalds", Email: "linus@example.com"},
		},
		Groups: []Group{
			{Name: "admins", Description: "full access"},
			{Name: "developers", Description: "build and ship"},
			{Name: "reviewers", Description: "approve changes"},
		},
		Memberships: map[string][]string{
			"ada@example.com":   {"admins", "developers"},
			"grace@example.com": {"developers", "reviewers"},
			"linus@example.com": {"reviewers"},
		},
	}
}

// Result counts what Run created; existing entities are reused.
type Result struct {
	Users       int
	Groups      int
	Memberships int
}

// Run loads ds through c. It is safe to run repeatedly against the same
// server: users are matched by email, groups by name and memberships by
// (user, group).
func Run(ctx context.Context, c *Client, ds Dataset, logger *logrus.Logger) (Result, error) {
	var res Result

	users := make(map[string]string, len(ds.Users)) // email -> id
	for _, u := range ds.Users {
		found, err := c.FindUserByEmail(ctx, u.Email)
		if errors.Is(err, ErrNotFound) {
			found, err = c.CreateUser(ctx, u.Name, u.Email)
			if err == nil {
				res.Users++
			}
		}
		if err != nil {
			return res, fmt.Errorf("seed user %s: %w", u.Email, err)
		}
		users[u.Email] = found.ID
	}

	groups := make(map[string]string, len(ds.Groups)) // name -> id
	for _, g := range ds.Groups {
		found, err := c.FindGroupByName(ctx, g.Name)
		if errors.Is(err, ErrNotFound) {
			found, err = c.CreateGroup(ctx, g.Name, g.Description)
			if err == nil {
				res.Groups++
			}
		}
		if err != nil {
			return res, fmt.Errorf("seed group %s: %w", g.Name, err)
		}
		groups[g.Name] = found.ID
	}

	for email, names := range ds.Memberships {
		userID, ok := users[email]
		if !ok {
			return res, fmt.Errorf("seed membership: unknown user %s", email)
		}
		existing, err := c.UserMemberships(ctx, userID)
		if err != nil {
			return res, fmt.Errorf("seed memberships of %s: %w", email, err)
		}
		have := make(map[string]bool, len(existing))
		for _, m := range existing {
			have[m.GroupID] = true
		}
		for _, name := range names {
			groupID, ok := groups[name]
			if !ok {
				return res, fmt.Errorf("seed membership: unknown group %s", name)
			}
			if have[groupID] {
				continue
			}
			if _, err := c.AddMembership(ctx, userID, groupID); err != nil {
				return res, fmt.Errorf("seed membership %s in %s: %w", email, name, err)
			}
			res.Memberships++
		}
	}

	if logger != nil {
		logger.WithFields(logrus.Fields{
			"users":       res.Users,
			"groups":      res.Groups,
			"memberships": res.Memberships,
		}).Info("seed complete")
	}
	return res, nil
}
