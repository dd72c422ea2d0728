package mapper

import (
	"encoding/json"

	"gorm.io/datatypes"
)

func stringsToJSON(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return datatypes.JSON([]byte("[]"))
	}
	return datatypes.JSON(raw)
}

func jsonToStrings(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var values []string
	if err := json.Unmarshal(raw, &values); err != nil {
		return []string{}
	}
	return values
}

func structToJSON(value any) datatypes.JSON {
	raw, err := json.Marshal(value)
	if err != nil {
		return datatypes.JSON([]byte("[]"))
	}
	return datatypes.JSON(raw)
}

func jsonToStruct[T any](raw datatypes.JSON) []T {
	if len(raw) == 0 {
		return []T{}
	}
	var values []T
	if err := json.Unmarshal(raw, &values); err != nil {
		return []T{}
	}
	return values
}
