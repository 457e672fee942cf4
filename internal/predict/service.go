package predict

import (
	"context"
	"fmt"
	"log"

	"predictive-disease-detection/internal/apperrors"
)

// ErrPredictionFailed is the only detail a visitor sees when a model fails.
var ErrPredictionFailed = apperrors.New(apperrors.CodePredictionFailure, "Prediction failed. Please try again later.")

// Result is one classifier verdict and the inputs that produced it.
type Result struct {
	Kind        Kind
	PatientName string
	Features    []float64
	Positive    bool
	Label       string
}

// Banner is the one-line summary shown after a prediction.
func (r Result) Banner() string {
	if r.Kind == Diabetes {
		// Age is the last diabetes feature.
		age := FormatValue(diabetesFields[len(diabetesFields)-1], r.Features[len(r.Features)-1])
		return fmt.Sprintf("Patient: %s, Age: %s, Result: %s", r.PatientName, age, r.Label)
	}
	return fmt.Sprintf("Patient: %s, Result: %s", r.PatientName, r.Label)
}

// Service dispatches inputs to the classifier registered for their kind.
type Service struct {
	models map[Kind]Model
}

// NewService wires one model per kind.
func NewService(models map[Kind]Model) *Service {
	return &Service{models: models}
}

// Run calls the kind's model once and maps output[0] to a label. Any model
// error, panic, or output other than 0/1 becomes ErrPredictionFailed.
func (s *Service) Run(ctx context.Context, in Input) (res Result, err error) {
	model, ok := s.models[in.Kind]
	if !ok {
		return Result{}, apperrors.Wrap(apperrors.CodePredictionFailure, ErrPredictionFailed.Message,
			fmt.Errorf("no model registered for %s", in.Kind))
	}
	if want := FeatureCount(in.Kind); len(in.Features) != want {
		return Result{}, apperrors.New(apperrors.CodeValidation,
			fmt.Sprintf("Expected %d values, got %d.", want, len(in.Features)))
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("%s model panicked: %v", in.Kind, r)
			res = Result{}
			err = apperrors.Wrap(apperrors.CodePredictionFailure, ErrPredictionFailed.Message, fmt.Errorf("panic: %v", r))
		}
	}()

	features := append([]float64(nil), in.Features...)
	output, err := model.Predict(ctx, features)
	if err != nil {
		log.Printf("%s model failed: %v", in.Kind, err)
		return Result{}, apperrors.Wrap(apperrors.CodePredictionFailure, ErrPredictionFailed.Message, err)
	}
	if len(output) == 0 || (output[0] != 0 && output[0] != 1) {
		log.Printf("%s model returned malformed output %v", in.Kind, output)
		return Result{}, apperrors.Wrap(apperrors.CodePredictionFailure, ErrPredictionFailed.Message,
			fmt.Errorf("malformed output %v", output))
	}

	positive := output[0] == 1
	return Result{
		Kind:        in.Kind,
		PatientName: in.PatientName,
		Features:    append([]float64(nil), in.Features...),
		Positive:    positive,
		Label:       in.Kind.Label(positive),
	}, nil
}
