package core

type SignupMessage struct {
	Username string
	Email    string
	Password string
}
