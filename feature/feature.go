package feature

type FeatureType int

const (
	FeatureTypeCalendar FeatureType = iota
	FeatureTypeSeasonality
	FeatureTypeLag
)

type Feature interface {
	String() string
	Get(string) (string, bool)
	Type() FeatureType
}
