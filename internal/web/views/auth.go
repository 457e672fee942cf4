package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// LoginForm holds the sticky values of the Login page.
type LoginForm struct {
	Email string
}

// SignupForm holds the sticky values of the Signup page.
type SignupForm struct {
	Name  string
	Email string
}

func input(h *htmlWriter, label, name, kind, value string) {
	h.raw(`<label>`)
	h.text(label)
	h.raw(`<input type="`, attr(kind), `" name="`, attr(name), `"`)
	if value != "" {
		h.raw(` value="`, attr(value), `"`)
	}
	h.raw(`></label>`)
}

// LoginPage renders the Login form.
func LoginPage(form LoginForm) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<h1>Login Page</h1><form method="post" action="/login">`)
		input(h, "Email", "email", "email", form.Email)
		input(h, "Password", "password", "password", "")
		h.raw(`<button type="submit">Login</button></form>`)
		return h.err
	})
}

// SignupPage renders the Signup form.
func SignupPage(form SignupForm) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<h1>Signup Page</h1><form method="post" action="/signup">`)
		input(h, "Full Name", "name", "text", form.Name)
		input(h, "Email", "email", "email", form.Email)
		input(h, "Password", "password", "password", "")
		input(h, "Confirm Password", "confirm_password", "password", "")
		h.raw(`<button type="submit">Create Account</button></form>`)
		return h.err
	})
}
