package session

import (
	"predictive-disease-detection/internal/apperrors"
	"predictive-disease-detection/internal/predict"
)

var (
	// ErrNotAuthenticated is returned when a guest selects a protected page.
	ErrNotAuthenticated = apperrors.New(apperrors.CodeNotAuthenticated, "Please log in to continue.")
	// ErrAlreadyAuthenticated is returned when a signed-in visitor selects Login or Signup.
	ErrAlreadyAuthenticated = apperrors.New(apperrors.CodeValidation, "You are already logged in.")
)

// Session is one visitor's state. Fields are read freely; mutate only through
// the transition methods.
type Session struct {
	ID            string
	Authenticated bool
	UserEmail     string
	UserName      string
	ActivePage    Page
	ReportVisible bool
	// ReportShown is set while the report table is expanded.
	ReportShown bool
	// Prediction is the last result shown on ActivePage, if any.
	Prediction *predict.Result
}

// New returns the initial, signed-out state.
func New(id string) *Session {
	return &Session{ID: id, ActivePage: Home}
}

// Current is the page actually shown. Guests always land on Login.
func (s *Session) Current() Page {
	if !s.Authenticated && s.ActivePage.Protected() {
		return Login
	}
	return s.ActivePage
}

// SignIn records a successful login or signup.
func (s *Session) SignIn(email, name string) {
	s.Authenticated = true
	s.UserEmail = email
	s.UserName = name
	s.ActivePage = Home
	s.clearPrediction()
}

// Select moves to p. Selecting Logout resets the session.
func (s *Session) Select(p Page) error {
	if p == 0 || p.Slug() == "" {
		return ErrUnknownPage
	}
	if p == Logout {
		s.Reset()
		return nil
	}
	if p.Protected() && !s.Authenticated {
		return ErrNotAuthenticated
	}
	if !p.Protected() && s.Authenticated {
		return ErrAlreadyAuthenticated
	}
	if p != s.ActivePage {
		s.clearPrediction()
	}
	s.ActivePage = p
	return nil
}

// Reset returns to the initial state, keeping the ID.
func (s *Session) Reset() {
	*s = *New(s.ID)
}

// RecordPrediction stores a result and makes its report available.
func (s *Session) RecordPrediction(res predict.Result) {
	s.Prediction = &res
	s.ReportVisible = true
	s.ReportShown = false
}

// ClearPrediction drops any shown result after a failed prediction.
func (s *Session) ClearPrediction() {
	s.clearPrediction()
}

// ToggleReport expands or collapses the report table and reports whether it
// is now shown. It is a no-op unless a prediction made the report visible.
func (s *Session) ToggleReport() bool {
	if !s.ReportVisible || s.Prediction == nil {
		return false
	}
	s.ReportShown = !s.ReportShown
	return s.ReportShown
}

func (s *Session) clearPrediction() {
	s.Prediction = nil
	s.ReportVisible = false
	s.ReportShown = false
}
