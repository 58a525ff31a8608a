package domain

// Direction of a boat or baggage departure.
type Direction string

const (
	DirectionOutbound Direction = "heen"
	DirectionReturn   Direction = "terug"
	DirectionOther    Direction = "overig"
)

func (d Direction) Valid() bool {
	switch d {
	case DirectionOutbound, DirectionReturn, DirectionOther:
		return true
	}
	return false
}

// BoatService is the ferry tier of a boat time.
type BoatService string

const (
	BoatServiceRegular BoatService = "gewoon"
	BoatServiceExpress BoatService = "sneldienst"
)

func (s BoatService) Valid() bool {
	return s == BoatServiceRegular || s == BoatServiceExpress
}

type BoatTime struct {
	ID          int64       `json:"id"`
	Time        string      `json:"time"`
	Type        Direction   `json:"type"`
	ServiceType BoatService `json:"service_type"`
	Active      bool        `json:"active"`
}

type BaggageTime struct {
	ID     int64     `json:"id"`
	Time   string    `json:"time"`
	Type   Direction `json:"type"`
	Active bool      `json:"active"`
}
