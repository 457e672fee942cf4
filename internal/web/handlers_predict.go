package web

import (
	"net/http"

	"github.com/gorilla/mux"

	"predictive-disease-detection/internal/predict"
	"predictive-disease-detection/internal/session"
	"predictive-disease-detection/internal/web/views"
)

// kindPage resolves {kind} and selects its page, writing the redirect or 404
// itself when that fails.
func (s *Server) kindPage(w http.ResponseWriter, r *http.Request, sess *session.Session) (predict.Kind, bool) {
	kind, err := predict.ParseKind(mux.Vars(r)["kind"])
	if err != nil {
		s.renderNotFound(w, r, sess, err)
		return 0, false
	}
	if guard(w, r, s.portal.Navigate(sess, session.PageFor(kind))) {
		return 0, false
	}
	return kind, true
}

func (s *Server) predictionPage(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	kind, ok := s.kindPage(w, r, sess)
	if !ok {
		return
	}
	render(w, r, sess, http.StatusOK, nil, views.PredictionPage(predictionView(kind, sess, nil)))
}

func (s *Server) predict(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	kind, ok := s.kindPage(w, r, sess)
	if !ok {
		return
	}
	values := formValues(r)
	if _, err := s.portal.Predict(r.Context(), sess, kind, values); err != nil {
		render(w, r, sess, statusFor(r, err), errorFlash(err), views.PredictionPage(predictionView(kind, sess, values)))
		return
	}
	render(w, r, sess, http.StatusOK, nil, views.PredictionPage(predictionView(kind, sess, values)))
}

func (s *Server) toggleReport(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	kind, ok := s.kindPage(w, r, sess)
	if !ok {
		return
	}
	s.portal.ToggleReport(sess)
	http.Redirect(w, r, session.PageFor(kind).Path(), http.StatusSeeOther)
}

// predictionView builds the page state. Submitted values win; otherwise the
// form is refilled from the shown result.
func predictionView(kind predict.Kind, sess *session.Session, submitted map[string]string) views.PredictionView {
	v := views.PredictionView{Kind: kind, Values: submitted}
	res := sess.Prediction
	if res == nil || res.Kind != kind {
		return v
	}
	if v.Values == nil {
		v.Values = resultValues(*res)
	}
	v.Banner = res.Banner()
	v.Positive = res.Positive
	v.CanReport = sess.ReportVisible
	v.ShowReport = sess.ReportShown
	if v.ShowReport {
		v.Report = predict.Report(*res)
	}
	return v
}

func resultValues(res predict.Result) map[string]string {
	values := map[string]string{predict.PatientNameKey: res.PatientName}
	for i, f := range predict.Schema(res.Kind) {
		if i < len(res.Features) {
			values[f.Key] = predict.FormatValue(f, res.Features[i])
		}
	}
	return values
}
