package transit

import "fmt"

type DescriptionKind string

const (
	DescriptionKindGeneral  DescriptionKind = "GENERAL"
	DescriptionKindTransfer                 = "TRANSFER"
	DescriptionKindInternal                 = "INTERNAL"
)

// DescriptionEntry is one unit of the narration sequence for a navigated
// route. AudioFile is only set once the narration assembler has synthesized
// the entry.
type DescriptionEntry struct {
	Kind DescriptionKind `groups:"basic"`
	Text string          `groups:"basic"`

	AudioFile string `groups:"basic" bson:"-"`
}

// GeneralDescription renders the unconditional per-leg description sentence.
func (leg *Leg) GeneralDescription() string {
	switch leg.Mode {
	case TransportModeSubway:
		return fmt.Sprintf("%s 에서 %s 역까지 지하철(%s) 이동", leg.Start.Name, leg.End.Name, leg.RouteLabel)
	case TransportModeWalk:
		return fmt.Sprintf("%s에서 %s까지 도보 이동 (%s)", leg.Start.Name, leg.End.Name, leg.Distance)
	case TransportModeBus:
		return fmt.Sprintf("%s에서 %s까지 버스(%s) 이동", leg.Start.Name, leg.End.Name, leg.RouteLabel)
	default:
		return fmt.Sprintf("%s에서 %s까지 %s(%s) 이동", leg.Start.Name, leg.End.Name, leg.Mode, leg.RouteLabel)
	}
}
