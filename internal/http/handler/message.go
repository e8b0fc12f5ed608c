package handler

const (
	signupOK    = "Signup successful!"
	internalErr = "Internal Server Error"
	notFoundErr = "Not Found"
)
