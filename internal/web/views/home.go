package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// HomePage is the welcome screen after login.
func HomePage(userName string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<h1>Welcome to `)
		h.text(AppName)
		h.raw(`</h1>`)
		if userName != "" {
			h.raw(`<p>Hello, `)
			h.text(userName)
			h.raw(`!</p>`)
		}
		h.raw(`<p>This application uses machine learning to predict the likelihood of the following diseases:</p>`,
			`<ul><li>Diabetes</li><li>Heart Disease</li><li>Parkinson's Disease</li></ul>`,
			`<p>Select a disease prediction option from the sidebar to get started.</p>`)
		return h.err
	})
}

// NotFoundPage renders a missing page.
func NotFoundPage(message string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<h1>Not found</h1><p>`)
		h.text(message)
		h.raw(`</p>`)
		return h.err
	})
}
