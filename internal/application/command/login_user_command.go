package command

type LoginUserCommand struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginUserCommandResult struct {
	Token string `json:"token"`
}
