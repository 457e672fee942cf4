package web

import (
	"net/http"
	"strconv"
	"strings"

	"predictive-disease-detection/internal/portal"
	"predictive-disease-detection/internal/session"
	"predictive-disease-detection/internal/web/views"
)

func (s *Server) feedbackPage(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	if guard(w, r, s.portal.Navigate(sess, session.FeedbackAndContact)) {
		return
	}
	entries, err := s.portal.Feedback(r.Context(), sess)
	if err != nil {
		logError(r, "list feedback", err)
	}
	render(w, r, sess, http.StatusOK, noticeFlash(r, sess), views.FeedbackPage(views.FeedbackView{Entries: entries}))
}

func (s *Server) submitFeedback(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	if guard(w, r, s.portal.Navigate(sess, session.FeedbackAndContact)) {
		return
	}
	req := portal.FeedbackRequest{Message: r.PostForm.Get("message")}
	if raw := strings.TrimSpace(r.PostForm.Get("rating")); raw != "" {
		rating, err := strconv.Atoi(raw)
		if err != nil {
			rating = -1
		}
		req.Rating = rating
	}
	if err := s.portal.SubmitFeedback(r.Context(), sess, req); err != nil {
		entries, _ := s.portal.Feedback(r.Context(), sess)
		view := views.FeedbackView{Message: req.Message, Rating: req.Rating, Entries: entries}
		render(w, r, sess, statusFor(r, err), errorFlash(err), views.FeedbackPage(view))
		return
	}
	redirectWithNotice(w, r, session.FeedbackAndContact.Path(), noticeFeedback)
}
