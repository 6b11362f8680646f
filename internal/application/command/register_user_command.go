package command

import "book-api/internal/application/common"

type RegisterUserCommand struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterUserCommandResult struct {
	User *common.UserResult `json:"user"`

	// Token is the plaintext bearer token, returned exactly once.
	Token string `json:"token"`
}
