package feature

import (
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Lag labels a historical lag or moving aggregate feature. The column name is
// built deterministically from the prefix and the base offset e.g.
// "moving_average_lag_9".
type Lag struct {
	Prefix string `json:"prefix"`
	Offset int    `json:"offset"`
}

func NewLag(prefix string, offset int) *Lag {
	return &Lag{prefix, offset}
}

func (l Lag) String() string {
	return l.Prefix + strconv.Itoa(l.Offset)
}

func (l Lag) Get(label string) (string, bool) {
	switch strings.ToLower(label) {
	case "prefix":
		return l.Prefix, true
	case "offset":
		return strconv.Itoa(l.Offset), true
	}
	return "", false
}

func (l Lag) Type() FeatureType {
	return FeatureTypeLag
}

func (l Lag) Decode() map[string]string {
	res := make(map[string]string)
	res["prefix"] = l.Prefix
	res["offset"] = strconv.Itoa(l.Offset)
	return res
}

func (l *Lag) UnmarshalJSON(data []byte) error {
	var labelStr struct {
		Prefix string `json:"prefix"`
		Offset string `json:"offset"`
	}
	err := json.Unmarshal(data, &labelStr)
	if err != nil {
		return err
	}
	l.Prefix = labelStr.Prefix
	l.Offset, err = strconv.Atoi(labelStr.Offset)
	if err != nil {
		return err
	}
	return nil
}
