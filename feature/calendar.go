package feature

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// Calendar labels a feature derived directly from the calendar position of
// each time point e.g. hour of day, day type, or time of year.
type Calendar struct {
	Name string `json:"name"`
}

func NewCalendar(name string) *Calendar {
	return &Calendar{name}
}

func (c Calendar) String() string {
	return fmt.Sprintf("cal_%s", c.Name)
}

func (c Calendar) Get(label string) (string, bool) {
	switch strings.ToLower(label) {
	case "name":
		return c.Name, true
	}
	return "", false
}

func (c Calendar) Type() FeatureType {
	return FeatureTypeCalendar
}

func (c Calendar) Decode() map[string]string {
	res := make(map[string]string)
	res["name"] = c.Name
	return res
}

func (c *Calendar) UnmarshalJSON(data []byte) error {
	var labelStr struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &labelStr); err != nil {
		return err
	}
	c.Name = labelStr.Name
	return nil
}
