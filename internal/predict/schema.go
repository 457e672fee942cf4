package predict

// Field describes one entry of a feature vector. NormalRange and Unit are
// reference text for the report only; inputs are never checked against them.
type Field struct {
	Key         string
	Label       string
	NormalRange string
	Unit        string
	// Integer fields render and parse as whole numbers.
	Integer bool
	// NonNegative fields reject values below zero.
	NonNegative bool
}

// Schema returns the ordered fields of the kind's feature vector. The order
// is the column order the classifier was trained on.
func Schema(k Kind) []Field {
	switch k {
	case Diabetes:
		return diabetesFields
	case HeartDisease:
		return heartFields
	case Parkinsons:
		return parkinsonsFields
	default:
		return nil
	}
}

// FeatureCount is len(Schema(k)).
func FeatureCount(k Kind) int {
	return len(Schema(k))
}

var diabetesFields = []Field{
	{Key: "Pregnancies", Label: "Number of Pregnancies", NormalRange: "0 - 17", Unit: "count", Integer: true, NonNegative: true},
	{Key: "Glucose", Label: "Glucose Level", NormalRange: "70 - 140", Unit: "mg/dL", Integer: true, NonNegative: true},
	{Key: "BloodPressure", Label: "Blood Pressure value", NormalRange: "60 - 80", Unit: "mm Hg", Integer: true, NonNegative: true},
	{Key: "SkinThickness", Label: "Skin Thickness value", NormalRange: "10 - 50", Unit: "mm", Integer: true, NonNegative: true},
	{Key: "Insulin", Label: "Insulin Level", NormalRange: "16 - 166", Unit: "µU/mL", Integer: true, NonNegative: true},
	{Key: "BMI", Label: "BMI value", NormalRange: "18.5 - 24.9", Unit: "kg/m²", NonNegative: true},
	{Key: "DiabetesPedigreeFunction", Label: "Diabetes Pedigree Function value", NormalRange: "0.08 - 2.42", Unit: "score", NonNegative: true},
	{Key: "Age", Label: "Age of the Person", NormalRange: "21 - 81", Unit: "years", Integer: true, NonNegative: true},
}

var heartFields = []Field{
	{Key: "age", Label: "Age", NormalRange: "29 - 77", Unit: "years", Integer: true, NonNegative: true},
	{Key: "sex", Label: "Sex", NormalRange: "0 = female, 1 = male", Unit: "category", Integer: true, NonNegative: true},
	{Key: "cp", Label: "Chest Pain types", NormalRange: "0 - 3", Unit: "type", Integer: true, NonNegative: true},
	{Key: "trestbps", Label: "Resting Blood Pressure", NormalRange: "90 - 120", Unit: "mm Hg", Integer: true, NonNegative: true},
	{Key: "chol", Label: "Serum Cholestoral in mg/dl", NormalRange: "125 - 200", Unit: "mg/dL", Integer: true, NonNegative: true},
	{Key: "fbs", Label: "Fasting Blood Sugar > 120 mg/dl", NormalRange: "0 = false, 1 = true", Unit: "flag", Integer: true, NonNegative: true},
	{Key: "restecg", Label: "Resting Electrocardiographic results", NormalRange: "0 - 2", Unit: "category", Integer: true, NonNegative: true},
	{Key: "thalach", Label: "Maximum Heart Rate achieved", NormalRange: "60 - 202", Unit: "bpm", Integer: true, NonNegative: true},
	{Key: "exang", Label: "Exercise Induced Angina", NormalRange: "0 = no, 1 = yes", Unit: "flag", Integer: true, NonNegative: true},
	{Key: "oldpeak", Label: "ST depression induced by exercise", NormalRange: "0 - 6.2", Unit: "mm", NonNegative: true},
	{Key: "slope", Label: "Slope of the peak exercise ST segment", NormalRange: "0 - 2", Unit: "category", Integer: true, NonNegative: true},
	{Key: "ca", Label: "Major vessels colored by flourosopy", NormalRange: "0 - 3", Unit: "vessels", Integer: true, NonNegative: true},
	{Key: "thal", Label: "thal: 0 = normal; 1 = fixed defect; 2 = reversable defect", NormalRange: "0 - 2", Unit: "category", Integer: true, NonNegative: true},
}

var parkinsonsFields = []Field{
	{Key: "fo", Label: "MDVP:Fo(Hz)", NormalRange: "88 - 260", Unit: "Hz"},
	{Key: "fhi", Label: "MDVP:Fhi(Hz)", NormalRange: "102 - 592", Unit: "Hz"},
	{Key: "flo", Label: "MDVP:Flo(Hz)", NormalRange: "65 - 239", Unit: "Hz"},
	{Key: "jitter_percent", Label: "MDVP:Jitter(%)", NormalRange: "0.0017 - 0.0332", Unit: "%"},
	{Key: "jitter_abs", Label: "MDVP:Jitter(Abs)", NormalRange: "0.000007 - 0.00026", Unit: "s"},
	{Key: "rap", Label: "MDVP:RAP", NormalRange: "0.0007 - 0.0214", Unit: "ratio"},
	{Key: "ppq", Label: "MDVP:PPQ", NormalRange: "0.0009 - 0.0196", Unit: "ratio"},
	{Key: "ddp", Label: "Jitter:DDP", NormalRange: "0.0020 - 0.0643", Unit: "ratio"},
	{Key: "shimmer", Label: "MDVP:Shimmer", NormalRange: "0.0095 - 0.1191", Unit: "ratio"},
	{Key: "shimmer_db", Label: "MDVP:Shimmer(dB)", NormalRange: "0.085 - 1.302", Unit: "dB"},
	{Key: "apq3", Label: "Shimmer:APQ3", NormalRange: "0.0046 - 0.0565", Unit: "ratio"},
	{Key: "apq5", Label: "Shimmer:APQ5", NormalRange: "0.0057 - 0.0794", Unit: "ratio"},
	{Key: "apq", Label: "MDVP:APQ", NormalRange: "0.0072 - 0.1378", Unit: "ratio"},
	{Key: "dda", Label: "Shimmer:DDA", NormalRange: "0.0136 - 0.1694", Unit: "ratio"},
	{Key: "nhr", Label: "NHR", NormalRange: "0.0007 - 0.3148", Unit: "ratio"},
	{Key: "hnr", Label: "HNR", NormalRange: "8.44 - 33.05", Unit: "dB"},
	{Key: "rpde", Label: "RPDE", NormalRange: "0.257 - 0.685", Unit: "index"},
	{Key: "dfa", Label: "DFA", NormalRange: "0.574 - 0.825", Unit: "index"},
	{Key: "spread1", Label: "spread1", NormalRange: "-7.96 - -2.43", Unit: "index"},
	{Key: "spread2", Label: "spread2", NormalRange: "0.006 - 0.450", Unit: "index"},
	{Key: "d2", Label: "D2", NormalRange: "1.42 - 3.67", Unit: "index"},
	{Key: "ppe", Label: "PPE", NormalRange: "0.045 - 0.527", Unit: "index"},
}
