package feature

// Data represents a feature type with its associated observed values
type Data struct {
	F    Feature
	Data []float64
}
