package dnd5e

// UserRole distinguishes players from dungeon masters. Only a dm may own
// campaigns or list users.
type UserRole string

// User roles
const (
	RolePlayer UserRole = "player"
	RoleDM     UserRole = "dm"
)

// UserRoles lists the valid roles
var UserRoles = []string{string(RolePlayer), string(RoleDM)}

// User represents a registered account
type User struct {
	ID       int      `json:"id"`
	Email    string   `json:"email"`
	Username string   `json:"username"`
	Role     UserRole `json:"role"`
}

// UserCreate is the registration payload
type UserCreate struct {
	Email    string   `json:"email"`
	Username string   `json:"username"`
	Password string   `json:"password"`
	Role     UserRole `json:"role"`
}

// UserLogin is the login payload
type UserLogin struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is returned by the login endpoint
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// PasswordResetRequest asks the backend to mail a reset token
type PasswordResetRequest struct {
	Email string `json:"email"`
}

// PasswordResetConfirm exchanges a reset token for a new password
type PasswordResetConfirm struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}
