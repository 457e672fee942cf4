package predict

import (
	"math"
	"strconv"
	"strings"

	"predictive-disease-detection/internal/apperrors"
)

// PatientNameKey is the form key of the free-text patient name.
const PatientNameKey = "patient_name"

// Input is a validated, ordered feature vector for one kind.
type Input struct {
	Kind        Kind
	PatientName string
	Features    []float64
}

// InputError lists the fields that kept a form from reaching the model.
type InputError struct {
	Missing []string
	Invalid []string
}

func (e *InputError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "Please fill in all required fields: "+strings.Join(e.Missing, ", ")+".")
	}
	if len(e.Invalid) > 0 {
		parts = append(parts, "Please enter valid numbers for: "+strings.Join(e.Invalid, ", ")+".")
	}
	return strings.Join(parts, " ")
}

// Unwrap exposes the error as a validation failure.
func (e *InputError) Unwrap() error {
	return apperrors.New(apperrors.CodeValidation, e.Error())
}

// ParseInput reads the patient name and every schema field from values. All
// fields are required; nothing is defaulted.
func ParseInput(k Kind, values map[string]string) (Input, error) {
	fields := Schema(k)
	if fields == nil {
		return Input{}, ErrUnknownKind
	}

	var inputErr InputError
	name := strings.TrimSpace(values[PatientNameKey])
	if name == "" {
		inputErr.Missing = append(inputErr.Missing, "Patient Name")
	}

	features := make([]float64, 0, len(fields))
	for _, f := range fields {
		raw := strings.TrimSpace(values[f.Key])
		if raw == "" {
			inputErr.Missing = append(inputErr.Missing, f.Label)
			continue
		}
		v, ok := parseValue(f, raw)
		if !ok {
			inputErr.Invalid = append(inputErr.Invalid, f.Label)
			continue
		}
		features = append(features, v)
	}

	if len(inputErr.Missing) > 0 || len(inputErr.Invalid) > 0 {
		return Input{}, &inputErr
	}
	return Input{Kind: k, PatientName: name, Features: features}, nil
}

// maxExactInteger is the largest magnitude at which every whole float64 is exact.
const maxExactInteger = 1 << 53

func parseValue(f Field, raw string) (float64, bool) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	if f.NonNegative && v < 0 {
		return 0, false
	}
	if f.Integer && (v != math.Trunc(v) || math.Abs(v) > maxExactInteger) {
		return 0, false
	}
	return v, true
}

// FormatValue renders v the way the field is entered.
func FormatValue(f Field, v float64) string {
	if f.Integer {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
