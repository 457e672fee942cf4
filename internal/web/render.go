package web

import (
	"bytes"
	"errors"
	"net/http"
	"net/url"

	"github.com/a-h/templ"

	"predictive-disease-detection/internal/apperrors"
	"predictive-disease-detection/internal/session"
	"predictive-disease-detection/internal/web/views"
)

// Notices shown after a redirect, keyed by the notice query parameter.
const (
	noticeSignedUp  = "signed-up"
	noticeLoggedIn  = "logged-in"
	noticeLoggedOut = "logged-out"
	noticeFeedback  = "feedback-sent"
	noticeLoginNeed = "login-required"
)

func noticeFlash(r *http.Request, sess *session.Session) []views.Flash {
	switch r.URL.Query().Get("notice") {
	case noticeSignedUp:
		return []views.Flash{{Kind: views.FlashSuccess, Message: "Account created successfully for " + sess.UserName + "!"}}
	case noticeLoggedIn:
		return []views.Flash{{Kind: views.FlashSuccess, Message: "Login successful!"}}
	case noticeLoggedOut:
		return []views.Flash{{Kind: views.FlashSuccess, Message: "You have been logged out."}}
	case noticeFeedback:
		return []views.Flash{{Kind: views.FlashSuccess, Message: "Thank you for your feedback!"}}
	case noticeLoginNeed:
		return []views.Flash{{Kind: views.FlashInfo, Message: session.ErrNotAuthenticated.Message}}
	default:
		return nil
	}
}

func redirectWithNotice(w http.ResponseWriter, r *http.Request, path, notice string) {
	if notice != "" {
		path += "?" + url.Values{"notice": {notice}}.Encode()
	}
	http.Redirect(w, r, path, http.StatusSeeOther)
}

func errorFlash(err error) []views.Flash {
	return []views.Flash{{Kind: views.FlashError, Message: apperrors.UserMessage(err)}}
}

func chrome(sess *session.Session, flashes []views.Flash) views.Chrome {
	current := sess.Current()
	menu := session.Menu(sess.Authenticated)
	items := make([]views.MenuItem, 0, len(menu))
	for _, p := range menu {
		items = append(items, views.MenuItem{Title: p.Title(), Path: p.Path(), Active: p == current})
	}
	return views.Chrome{
		Title:    current.Title(),
		UserName: sess.UserName,
		Menu:     items,
		Flashes:  flashes,
	}
}

// render writes body inside the layout. The page is buffered so a render
// failure can still produce a clean 500.
func render(w http.ResponseWriter, r *http.Request, sess *session.Session, status int, flashes []views.Flash, body templ.Component) {
	var buf bytes.Buffer
	ctx := templ.WithChildren(r.Context(), body)
	if err := views.Layout(chrome(sess, flashes)).Render(ctx, &buf); err != nil {
		logError(r, "render page", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// statusFor maps a visitor-facing error to its response status, logging
// anything that is not a recognised domain error.
func statusFor(r *http.Request, err error) int {
	code := apperrors.CodeOf(err)
	if code == apperrors.CodeUnknown || code == apperrors.CodePredictionFailure {
		logError(r, "request failed", err)
	}
	return code.HTTPStatus()
}

// guard redirects when a navigation was refused and reports whether it did.
func guard(w http.ResponseWriter, r *http.Request, err error) bool {
	switch {
	case err == nil:
		return false
	case apperrors.IsCode(err, apperrors.CodeNotAuthenticated):
		redirectWithNotice(w, r, session.Login.Path(), noticeLoginNeed)
	case errors.Is(err, session.ErrAlreadyAuthenticated):
		http.Redirect(w, r, session.Home.Path(), http.StatusSeeOther)
	default:
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
	return true
}

func (s *Server) renderNotFound(w http.ResponseWriter, r *http.Request, sess *session.Session, err error) {
	render(w, r, sess, http.StatusNotFound, nil, views.NotFoundPage(apperrors.UserMessage(err)))
}

func formValues(r *http.Request) map[string]string {
	values := make(map[string]string, len(r.PostForm))
	for key, vs := range r.PostForm {
		if len(vs) > 0 {
			values[key] = vs[0]
		}
	}
	return values
}
