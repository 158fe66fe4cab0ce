package attr

import (
	"encoding/json"
	"errors"
)

//*******************************************
// enums
//*******************************************

type RoadType int8

const (
	PATH        RoadType = 1
	RESIDENTIAL RoadType = 2
	MAIN_ROAD   RoadType = 3
)

func (self RoadType) String() string {
	switch self {
	case PATH:
		return "path"
	case RESIDENTIAL:
		return "residential"
	case MAIN_ROAD:
		return "main_road"
	}
	return ""
}

func RoadTypeFromString(typ string) RoadType {
	switch typ {
	case "path":
		return PATH
	case "residential":
		return RESIDENTIAL
	case "main_road":
		return MAIN_ROAD
	}
	return 0
}

func (self RoadType) MarshalJSON() ([]byte, error) {
	return json.Marshal(self.String())
}
func (self *RoadType) UnmarshalJSON(data []byte) error {
	var typ string
	if err := json.Unmarshal(data, &typ); err != nil {
		return err
	}
	road_typ := RoadTypeFromString(typ)
	if road_typ == 0 {
		return errors.New("invalid road type")
	}
	*self = road_typ
	return nil
}
