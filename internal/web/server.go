// Package web serves the browser-facing pages: the sidebar, the login and
// signup forms, the three disease forms with their reports, and the feedback
// page.
package web

import (
	"net/http"

	"github.com/gorilla/mux"

	"predictive-disease-detection/internal/portal"
	"predictive-disease-detection/internal/session"
)

// Server owns route wiring for one portal.
type Server struct {
	portal   *portal.Portal
	sessions *session.Manager
}

// NewServer creates a Server.
func NewServer(p *portal.Portal, sessions *session.Manager) *Server {
	return &Server{portal: p, sessions: sessions}
}

// RegisterRoutes builds the router.
func (s *Server) RegisterRoutes() *mux.Router {
	r := mux.NewRouter()
	r.Use(accessLog, recoverPanics)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	r.HandleFunc("/", s.withSession(s.root)).Methods(http.MethodGet)

	r.HandleFunc("/login", s.withSession(s.loginPage)).Methods(http.MethodGet)
	r.HandleFunc("/login", s.withSession(s.login)).Methods(http.MethodPost)
	r.HandleFunc("/signup", s.withSession(s.signupPage)).Methods(http.MethodGet)
	r.HandleFunc("/signup", s.withSession(s.signup)).Methods(http.MethodPost)
	r.HandleFunc("/logout", s.withSession(s.logout)).Methods(http.MethodGet, http.MethodPost)

	r.HandleFunc("/home", s.withSession(s.home)).Methods(http.MethodGet)
	r.HandleFunc("/predict/{kind}", s.withSession(s.predictionPage)).Methods(http.MethodGet)
	r.HandleFunc("/predict/{kind}", s.withSession(s.predict)).Methods(http.MethodPost)
	r.HandleFunc("/predict/{kind}/report", s.withSession(s.toggleReport)).Methods(http.MethodPost)
	r.HandleFunc("/feedback", s.withSession(s.feedbackPage)).Methods(http.MethodGet)
	r.HandleFunc("/feedback", s.withSession(s.submitFeedback)).Methods(http.MethodPost)

	r.NotFoundHandler = accessLog(recoverPanics(s.withSession(s.notFound)))
	return r
}

type sessionHandler func(w http.ResponseWriter, r *http.Request, sess *session.Session)

// withSession loads the visitor's session before h and stores it afterwards.
func (s *Server) withSession(h sessionHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, err := s.sessions.Load(w, r)
		if err != nil {
			logError(r, "load session", err)
			http.Error(w, "Session unavailable", http.StatusInternalServerError)
			return
		}
		h(w, r, sess)
		s.sessions.Save(sess)
	}
}

func (s *Server) root(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	http.Redirect(w, r, sess.Current().Path(), http.StatusSeeOther)
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	s.renderNotFound(w, r, sess, session.ErrUnknownPage)
}
