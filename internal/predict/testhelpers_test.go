package predict

import "strconv"

// completeValues fills every field of k with distinct valid values.
func completeValues(k Kind) map[string]string {
	values := map[string]string{PatientNameKey: "Jane"}
	for i, f := range Schema(k) {
		values[f.Key] = strconv.Itoa(i + 1)
	}
	return values
}
