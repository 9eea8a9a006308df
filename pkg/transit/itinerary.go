package transit

type TransportMode string

const (
	TransportModeWalk   TransportMode = "WALK"
	TransportModeSubway               = "SUBWAY"
	TransportModeBus                  = "BUS"
)

type Itinerary struct {
	RouteID string `groups:"basic"`

	PathType int    `groups:"basic"`
	Route    string `groups:"basic"`

	TotalTime         string `groups:"basic"`
	TotalDistance     string `groups:"basic"`
	TotalFare         string `groups:"basic"`
	TotalWalkTime     string `groups:"basic"`
	TotalWalkDistance string `groups:"basic"`
	TransferCount     int    `groups:"basic"`

	Legs []*Leg `groups:"basic"`
}

type Leg struct {
	Mode       TransportMode `groups:"basic"`
	RouteLabel string        `groups:"basic"`

	// Provider line code, needed for accessibility lookups on subway legs
	LineType string `groups:"basic"`

	SectionDuration string `groups:"basic"`
	Distance        string `groups:"basic"`

	Start Place `groups:"basic"`
	End   Place `groups:"basic"`

	Steps []Step `groups:"basic"`

	TransferInfo []MovementRecord `groups:"detailed" bson:"transferinfo,omitempty"`
	InternalInfo []MovementRecord `groups:"detailed" bson:"internalinfo,omitempty"`
}

type Step struct {
	StreetName  string `groups:"basic"`
	Distance    string `groups:"basic"`
	Description string `groups:"basic"`
}
