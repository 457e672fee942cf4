// Package predict collects patient measurements, runs them through a trained
// binary classifier, and renders the result and its reference report.
package predict

import (
	"predictive-disease-detection/internal/apperrors"
)

// Kind identifies which classifier a form feeds.
type Kind uint8

const (
	Diabetes Kind = iota + 1
	HeartDisease
	Parkinsons
)

// Kinds lists every supported kind in menu order.
var Kinds = []Kind{Diabetes, HeartDisease, Parkinsons}

// ErrUnknownKind is returned when a slug names no classifier.
var ErrUnknownKind = apperrors.New(apperrors.CodeNotFound, "Unknown prediction page.")

// ParseKind resolves a URL slug.
func ParseKind(slug string) (Kind, error) {
	for _, k := range Kinds {
		if k.Slug() == slug {
			return k, nil
		}
	}
	return 0, ErrUnknownKind
}

// Slug is the URL segment for the kind.
func (k Kind) Slug() string {
	switch k {
	case Diabetes:
		return "diabetes"
	case HeartDisease:
		return "heart"
	case Parkinsons:
		return "parkinsons"
	default:
		return ""
	}
}

// Title is the page heading for the kind.
func (k Kind) Title() string {
	switch k {
	case Diabetes:
		return "Diabetes Prediction using ML"
	case HeartDisease:
		return "Heart Disease Prediction using ML"
	case Parkinsons:
		return "Parkinson's Disease Prediction using ML"
	default:
		return ""
	}
}

// SubmitLabel is the text of the form's submit button.
func (k Kind) SubmitLabel() string {
	switch k {
	case Diabetes:
		return "Diabetes Test Result"
	case HeartDisease:
		return "Heart Disease Test Result"
	case Parkinsons:
		return "Parkinson's Test Result"
	default:
		return ""
	}
}

// Label maps a classifier output to the human diagnosis.
func (k Kind) Label(positive bool) string {
	switch k {
	case Diabetes:
		if positive {
			return "The person is diabetic"
		}
		return "The person is not diabetic"
	case HeartDisease:
		if positive {
			return "The person has heart disease"
		}
		return "The person does not have heart disease"
	case Parkinsons:
		if positive {
			return "The person has Parkinson's disease"
		}
		return "The person does not have Parkinson's disease"
	default:
		return ""
	}
}

func (k Kind) String() string {
	return k.Slug()
}
