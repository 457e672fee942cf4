// Package session tracks one visitor's authentication and navigation state.
//
// Pages form a closed set; the only way to move between them is through the
// transition methods on Session, which refuse protected pages until the
// visitor has signed in.
package session

import (
	"predictive-disease-detection/internal/apperrors"
	"predictive-disease-detection/internal/predict"
)

// Page is a sidebar destination.
type Page uint8

const (
	Home Page = iota + 1
	DiabetesPrediction
	HeartDiseasePrediction
	ParkinsonsPrediction
	FeedbackAndContact
	Login
	Signup
	Logout
)

// ErrUnknownPage is returned for slugs outside the page set.
var ErrUnknownPage = apperrors.New(apperrors.CodeNotFound, "Page not found.")

var (
	guestMenu  = []Page{Login, Signup}
	memberMenu = []Page{Home, DiabetesPrediction, HeartDiseasePrediction, ParkinsonsPrediction, FeedbackAndContact, Logout}
	allPages   = []Page{Home, DiabetesPrediction, HeartDiseasePrediction, ParkinsonsPrediction, FeedbackAndContact, Login, Signup, Logout}
)

// Menu returns the sidebar items for the given auth state, default first.
func Menu(authenticated bool) []Page {
	if authenticated {
		return memberMenu
	}
	return guestMenu
}

// ParsePage resolves a slug produced by Page.Slug.
func ParsePage(slug string) (Page, error) {
	for _, p := range allPages {
		if p.Slug() == slug {
			return p, nil
		}
	}
	return 0, ErrUnknownPage
}

// PageFor returns the prediction page of a classifier kind.
func PageFor(k predict.Kind) Page {
	switch k {
	case predict.Diabetes:
		return DiabetesPrediction
	case predict.HeartDisease:
		return HeartDiseasePrediction
	case predict.Parkinsons:
		return ParkinsonsPrediction
	default:
		return 0
	}
}

// Kind returns the classifier behind a prediction page.
func (p Page) Kind() (predict.Kind, bool) {
	switch p {
	case DiabetesPrediction:
		return predict.Diabetes, true
	case HeartDiseasePrediction:
		return predict.HeartDisease, true
	case ParkinsonsPrediction:
		return predict.Parkinsons, true
	default:
		return 0, false
	}
}

// Protected reports whether the page requires a signed-in visitor.
func (p Page) Protected() bool {
	return p != Login && p != Signup
}

func (p Page) Slug() string {
	switch p {
	case Home:
		return "home"
	case DiabetesPrediction:
		return "diabetes"
	case HeartDiseasePrediction:
		return "heart"
	case ParkinsonsPrediction:
		return "parkinsons"
	case FeedbackAndContact:
		return "feedback"
	case Login:
		return "login"
	case Signup:
		return "signup"
	case Logout:
		return "logout"
	default:
		return ""
	}
}

// Path is the URL serving the page.
func (p Page) Path() string {
	if k, ok := p.Kind(); ok {
		return "/predict/" + k.Slug()
	}
	return "/" + p.Slug()
}

// Title is the sidebar label.
func (p Page) Title() string {
	switch p {
	case Home:
		return "Home"
	case DiabetesPrediction:
		return "Diabetes Prediction"
	case HeartDiseasePrediction:
		return "Heart Disease Prediction"
	case ParkinsonsPrediction:
		return "Parkinson's Prediction"
	case FeedbackAndContact:
		return "Feedback & Contact"
	case Login:
		return "Login"
	case Signup:
		return "Signup"
	case Logout:
		return "Logout"
	default:
		return ""
	}
}

func (p Page) String() string {
	return p.Title()
}
