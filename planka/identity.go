package planka

import "context"

// AdminUserID resolves the admin/human account used to auto-grant board
// access. Resolution order: configured ID, then lookup by email, then by
// username. It is resolved at most once per Client; when every strategy
// fails it returns "" without an error, and callers treat the missing
// admin as a soft failure.
func (c *Client) AdminUserID(ctx context.Context) string {
	c.adminMu.Lock()
	defer c.adminMu.Unlock()

	if c.adminResolved {
		return c.cachedAdminID
	}

	c.cachedAdminID = c.resolveAdminID(ctx)
	c.adminResolved = true
	return c.cachedAdminID
}

func (c *Client) resolveAdminID(ctx context.Context) string {
	if c.adminID != "" {
		return c.adminID
	}

	if c.adminEmail == "" && c.adminUsername == "" {
		c.logger.Warn("no admin identity configured; boards will be created without an admin member")
		return ""
	}

	users, err := c.Users(ctx)
	if err != nil {
		c.logger.Warn("admin lookup failed", "error", err)
		return ""
	}

	if c.adminEmail != "" {
		for _, u := range users {
			if u.Email == c.adminEmail {
				return u.ID
			}
		}
	}
	if c.adminUsername != "" {
		for _, u := range users {
			if u.Username == c.adminUsername {
				return u.ID
			}
		}
	}

	c.logger.Warn("admin user not found",
		"email", c.adminEmail,
		"username", c.adminUsername)
	return ""
}
