package predict

import (
	"errors"
	"testing"

	"predictive-disease-detection/internal/apperrors"
)

func TestSchemaFeatureCounts(t *testing.T) {
	want := map[Kind]int{Diabetes: 8, HeartDisease: 13, Parkinsons: 22}
	for k, n := range want {
		if got := FeatureCount(k); got != n {
			t.Fatalf("FeatureCount(%s) = %d, want %d", k, got, n)
		}
		seen := map[string]bool{}
		for _, f := range Schema(k) {
			if seen[f.Key] {
				t.Fatalf("%s: duplicate key %q", k, f.Key)
			}
			seen[f.Key] = true
		}
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		got, err := ParseKind(k.Slug())
		if err != nil || got != k {
			t.Fatalf("ParseKind(%q) = %v, %v", k.Slug(), got, err)
		}
	}
	if _, err := ParseKind("cancer"); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("ParseKind(unknown) = %v, want ErrUnknownKind", err)
	}
}

func TestParseInputKeepsOrder(t *testing.T) {
	in, err := ParseInput(HeartDisease, completeValues(HeartDisease))
	if err != nil {
		t.Fatalf("ParseInput: %v", err)
	}
	if in.PatientName != "Jane" {
		t.Fatalf("patient name = %q", in.PatientName)
	}
	for i, v := range in.Features {
		if v != float64(i+1) {
			t.Fatalf("feature %d = %v, want %d", i, v, i+1)
		}
	}
}

func TestParseInputMissingField(t *testing.T) {
	values := completeValues(Diabetes)
	values["Glucose"] = "  "

	_, err := ParseInput(Diabetes, values)
	var inputErr *InputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("expected InputError, got %v", err)
	}
	if len(inputErr.Missing) != 1 || inputErr.Missing[0] != "Glucose Level" {
		t.Fatalf("missing = %v", inputErr.Missing)
	}
	if !apperrors.IsCode(err, apperrors.CodeValidation) {
		t.Fatalf("expected validation code, got %q", apperrors.CodeOf(err))
	}
}

func TestParseInputRejectsBadNumbers(t *testing.T) {
	tests := []struct {
		name  string
		kind  Kind
		key   string
		value string
	}{
		{name: "not a number", kind: Parkinsons, key: "fo", value: "abc"},
		{name: "nan", kind: Parkinsons, key: "hnr", value: "NaN"},
		{name: "infinite", kind: Parkinsons, key: "hnr", value: "+Inf"},
		{name: "negative count", kind: Diabetes, key: "Pregnancies", value: "-1"},
		{name: "fractional integer", kind: Diabetes, key: "Age", value: "40.5"},
		{name: "integer too large", kind: Diabetes, key: "Pregnancies", value: "1e30"},
		{name: "age too large", kind: Diabetes, key: "Age", value: "1e30"},
		{name: "out of float range", kind: Parkinsons, key: "fo", value: "1e400"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := completeValues(tt.kind)
			values[tt.key] = tt.value
			_, err := ParseInput(tt.kind, values)
			var inputErr *InputError
			if !errors.As(err, &inputErr) || len(inputErr.Invalid) != 1 {
				t.Fatalf("expected one invalid field, got %v", err)
			}
		})
	}
}

func TestParseInputAllowsNegativeParkinsonsSpread(t *testing.T) {
	values := completeValues(Parkinsons)
	values["spread1"] = "-5.68"
	if _, err := ParseInput(Parkinsons, values); err != nil {
		t.Fatalf("ParseInput: %v", err)
	}
}

func TestParseInputRequiresPatientName(t *testing.T) {
	values := completeValues(Parkinsons)
	delete(values, PatientNameKey)
	_, err := ParseInput(Parkinsons, values)
	var inputErr *InputError
	if !errors.As(err, &inputErr) || inputErr.Missing[0] != "Patient Name" {
		t.Fatalf("expected missing patient name, got %v", err)
	}
}

func TestParseInputLargestExactInteger(t *testing.T) {
	values := completeValues(Diabetes)
	values["Age"] = "9007199254740992"
	in, err := ParseInput(Diabetes, values)
	if err != nil {
		t.Fatalf("ParseInput: %v", err)
	}
	age := Schema(Diabetes)[7]
	if got := FormatValue(age, in.Features[7]); got != "9007199254740992" {
		t.Fatalf("FormatValue = %q", got)
	}
}

func TestFormatValue(t *testing.T) {
	integer := Field{Integer: true}
	tests := []struct {
		field Field
		value float64
		want  string
	}{
		{field: integer, value: 148, want: "148"},
		{field: integer, value: 0, want: "0"},
		{field: integer, value: 1e20, want: "100000000000000000000"},
		{field: Field{}, value: 0.627, want: "0.627"},
		{field: Field{}, value: -5.68, want: "-5.68"},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.field, tt.value); got != tt.want {
			t.Errorf("FormatValue(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}
