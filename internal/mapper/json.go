package mapper

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// toJSON encodes v for a JSON column. Mapped values are plain structs, maps
// and slices, so a marshal failure only leaves the column null.
func toJSON(v interface{}) datatypes.JSON {
	b, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON("null")
	}
	return datatypes.JSON(b)
}

func fromJSON(data datatypes.JSON, v interface{}) {
	if len(data) == 0 {
		return
	}
	_ = json.Unmarshal(data, v)
}
