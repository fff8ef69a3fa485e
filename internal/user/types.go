package user

import "time"

const (
	DefaultAIName  = "CentralGPT"
	DefaultDevName = "XdpzQ"
)

// --- User Domain Model ---

// User is an account that signs in with an access key.
type User struct {
	ID        string
	Username  string
	Key       string
	AIName    string
	DevName   string
	CreatedAt time.Time
}

// --- UseCase Inputs ---

type CreateUserInput struct {
	Username string
	AIName   string
	DevName  string
}

type ListUsersInput struct {
	Limit  int
	Offset int
}

// --- UseCase Outputs ---

type CreateUserOutput struct {
	User User
}

type ListUsersOutput struct {
	Users  []User
	Total  int
	Limit  int
	Offset int
}
