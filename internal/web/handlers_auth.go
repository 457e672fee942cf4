package web

import (
	"net/http"

	"predictive-disease-detection/internal/portal"
	"predictive-disease-detection/internal/session"
	"predictive-disease-detection/internal/web/views"
)

func (s *Server) loginPage(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	if guard(w, r, s.portal.Navigate(sess, session.Login)) {
		return
	}
	render(w, r, sess, http.StatusOK, noticeFlash(r, sess), views.LoginPage(views.LoginForm{}))
}

func (s *Server) login(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	if guard(w, r, s.portal.Navigate(sess, session.Login)) {
		return
	}
	req := portal.LoginRequest{
		Email:    r.PostForm.Get("email"),
		Password: r.PostForm.Get("password"),
	}
	if err := s.portal.Login(r.Context(), sess, req); err != nil {
		render(w, r, sess, statusFor(r, err), errorFlash(err), views.LoginPage(views.LoginForm{Email: req.Email}))
		return
	}
	redirectWithNotice(w, r, session.Home.Path(), noticeLoggedIn)
}

func (s *Server) signupPage(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	if guard(w, r, s.portal.Navigate(sess, session.Signup)) {
		return
	}
	render(w, r, sess, http.StatusOK, nil, views.SignupPage(views.SignupForm{}))
}

func (s *Server) signup(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	if guard(w, r, s.portal.Navigate(sess, session.Signup)) {
		return
	}
	req := portal.SignupRequest{
		Name:            r.PostForm.Get("name"),
		Email:           r.PostForm.Get("email"),
		Password:        r.PostForm.Get("password"),
		ConfirmPassword: r.PostForm.Get("confirm_password"),
	}
	if err := s.portal.Signup(r.Context(), sess, req); err != nil {
		render(w, r, sess, statusFor(r, err), errorFlash(err), views.SignupPage(views.SignupForm{Name: req.Name, Email: req.Email}))
		return
	}
	redirectWithNotice(w, r, session.Home.Path(), noticeSignedUp)
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	s.portal.Logout(sess)
	fresh, err := s.sessions.Renew(w, sess)
	if err != nil {
		logError(r, "renew session", err)
		http.Error(w, "Session unavailable", http.StatusInternalServerError)
		return
	}
	*sess = *fresh
	redirectWithNotice(w, r, session.Login.Path(), noticeLoggedOut)
}

func (s *Server) home(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	if guard(w, r, s.portal.Navigate(sess, session.Home)) {
		return
	}
	render(w, r, sess, http.StatusOK, noticeFlash(r, sess), views.HomePage(sess.UserName))
}
