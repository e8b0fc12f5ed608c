package payload

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrMissingField error = errors.New("missing form field")

var signupFields = []string{"username", "email", "password"}

// DecodeSignupForm reads the url-encoded signup form from the request body.
// Every field must be present; an explicitly empty value is kept as "".
func DecodeSignupForm(r *http.Request) (req SignupRequest, err error) {
	defer func() {
		errClose := r.Body.Close()
		if err == nil {
			err = errClose
		}
	}()

	if err = r.ParseForm(); err != nil {
		return SignupRequest{}, fmt.Errorf("decoding form payload: %w", err)
	}

	for _, field := range signupFields {
		if !r.PostForm.Has(field) {
			return SignupRequest{}, fmt.Errorf("%w: %q", ErrMissingField, field)
		}
	}

	return SignupRequest{
		Username: r.PostForm.Get("username"),
		Email:    r.PostForm.Get("email"),
		Password: r.PostForm.Get("password"),
	}, nil
}
