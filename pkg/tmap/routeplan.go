package tmap

// Raw provider representation of one itinerary candidate. Only the fields the
// normaliser consumes are decoded.
type RawItinerary struct {
	PathType int    `json:"pathType"`
	Route    string `json:"route"`

	TotalTime         int `json:"totalTime"`
	TotalDistance     int `json:"totalDistance"`
	TotalWalkTime     int `json:"totalWalkTime"`
	TotalWalkDistance int `json:"totalWalkDistance"`
	TransferCount     int `json:"transferCount"`

	Fare struct {
		Regular struct {
			TotalFare int `json:"totalFare"`
		} `json:"regular"`
	} `json:"fare"`

	Legs []RawLeg `json:"legs"`
}

type RawLeg struct {
	Mode  string `json:"mode"`
	Route string `json:"route"`

	// Line code of the service, only meaningful on rail legs
	Type int `json:"type"`

	SectionTime int `json:"sectionTime"`
	Distance    int `json:"distance"`

	Start *RawPlace `json:"start"`
	End   *RawPlace `json:"end"`

	Steps []RawStep `json:"steps"`
}

type RawPlace struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

type RawStep struct {
	StreetName  string `json:"streetName"`
	Distance    int    `json:"distance"`
	Description string `json:"description"`
}
