package repository

// CreateUserOptions holds parameters for inserting a new User.
type CreateUserOptions struct {
	ID       string
	Username string
	Key      string
	AIName   string
	DevName  string
}

// GetOneUserOptions holds filter parameters for fetching a single User.
// All non-empty fields are applied as AND conditions.
type GetOneUserOptions struct {
	ID       string
	Username string
	Key      string
}

// ListUsersOptions holds pagination parameters for listing Users.
type ListUsersOptions struct {
	Limit   int
	Offset  int
	OrderBy string
}
