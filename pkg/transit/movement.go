package transit

// MovementRecord is one accessibility movement instruction returned by the
// accessibility data provider. Records are grouped into paths by
// PathGroupNumber; group 1 is the provider's canonical path.
type MovementRecord struct {
	PathGroupNumber int    `json:"pathGrpNo" groups:"detailed"`
	Detail          string `json:"mvContDtl" groups:"detailed"`
}

const CanonicalPathGroup = 1

// FilterCanonicalMovements keeps only the records belonging to the canonical
// path group, preserving provider order.
func FilterCanonicalMovements(records []MovementRecord) []MovementRecord {
	var filtered []MovementRecord

	for _, record := range records {
		if record.PathGroupNumber == CanonicalPathGroup {
			filtered = append(filtered, record)
		}
	}

	return filtered
}
