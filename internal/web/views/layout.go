// Package views renders the application's HTML with templ components.
package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// AppName is shown in the sidebar and page titles.
const AppName = "Predictive Disease Detection App"

// FlashKind styles a banner.
type FlashKind string

const (
	FlashSuccess FlashKind = "success"
	FlashError   FlashKind = "error"
	FlashInfo    FlashKind = "info"
)

// Flash is a one-shot banner above the page body.
type Flash struct {
	Kind    FlashKind
	Message string
}

// MenuItem is one sidebar entry.
type MenuItem struct {
	Title  string
	Path   string
	Active bool
}

// Chrome is the data shared by every page.
type Chrome struct {
	Title    string
	UserName string
	Menu     []MenuItem
	Flashes  []Flash
}

type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(parts ...string) {
	for _, p := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, p)
	}
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) render(ctx context.Context, c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

func attr(s string) string {
	return templ.EscapeString(s)
}

// Layout is the document shell and sidebar. The page body is taken from the
// children set with templ.WithChildren.
func Layout(chrome Chrome) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		body := templ.GetChildren(ctx)
		ctx = templ.ClearChildren(ctx)
		h := &htmlWriter{w: w}
		title := AppName
		if chrome.Title != "" && chrome.Title != AppName {
			title = chrome.Title + " | " + AppName
		}
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`,
			`<meta name="viewport" content="width=device-width, initial-scale=1">`,
			`<title>`)
		h.text(title)
		h.raw(`</title><style>`, stylesheet, `</style></head><body><aside class="sidebar"><h2>`)
		h.text(AppName)
		h.raw(`</h2>`)
		if chrome.UserName != "" {
			h.raw(`<p class="user">Signed in as `)
			h.text(chrome.UserName)
			h.raw(`</p>`)
		}
		h.raw(`<nav><ul>`)
		for _, item := range chrome.Menu {
			class := ""
			if item.Active {
				class = ` class="active"`
			}
			h.raw(`<li`, class, `><a href="`, attr(item.Path), `">`)
			h.text(item.Title)
			h.raw(`</a></li>`)
		}
		h.raw(`</ul></nav></aside><main>`)
		for _, f := range chrome.Flashes {
			h.raw(`<div class="flash flash-`, attr(string(f.Kind)), `" role="alert">`)
			h.text(f.Message)
			h.raw(`</div>`)
		}
		h.render(ctx, body)
		h.raw(`</main></body></html>`)
		return h.err
	})
}

const stylesheet = `
body{margin:0;display:flex;font-family:system-ui,sans-serif;min-height:100vh}
.sidebar{width:260px;background:#f0f2f6;padding:1rem}
.sidebar ul{list-style:none;padding:0}
.sidebar li a{display:block;padding:.5rem;border-radius:.4rem;color:#262730;text-decoration:none}
.sidebar li.active a{background:#ff4b4b;color:#fff}
main{flex:1;padding:2rem;max-width:960px}
.flash{padding:.75rem 1rem;border-radius:.4rem;margin-bottom:1rem}
.flash-success{background:#dff5e3}.flash-error{background:#fde2e2}.flash-info{background:#e2ecfd}
form .grid{display:grid;grid-template-columns:repeat(3,1fr);gap:.75rem}
label{display:block;font-size:.9rem}
input,textarea,select{width:100%;box-sizing:border-box;padding:.4rem}
button{margin-top:1rem;padding:.5rem 1rem}
table{border-collapse:collapse;width:100%;margin-top:1rem}
th,td{border:1px solid #ddd;padding:.4rem;text-align:left}
`
