package transit

// StationRecord is the canonical identity of a physical rail station, as
// imported into the stations collection. Read-only reference data.
type StationRecord struct {
	RailOperatorCode string `groups:"basic" csv:"railOperatorCode"`
	RailOperatorName string `groups:"basic" csv:"railOperatorName"`
	LineCode         string `groups:"basic" csv:"lineCode"`
	LineName         string `groups:"basic" csv:"lineName"`
	StationCode      string `groups:"basic" csv:"stationCode"`
	StationName      string `groups:"basic" csv:"stationName"`
}
