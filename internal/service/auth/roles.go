package auth

import "BookShelf/internal/models"

// RoleAllowed is a pure membership check. An empty allowed set means any
// authenticated caller passes.
func RoleAllowed(role models.Role, allowed ...models.Role) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}
