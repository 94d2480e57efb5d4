package domain

// StationStatus indicates whether a gas station participates in operations
// and scheduled jobs such as monthly closing.
type StationStatus string

const (
	StationActive   StationStatus = "ACTIVE"
	StationInactive StationStatus = "INACTIVE"
)

// GasStation represents one owned SPBU.
type GasStation struct {
	GasStationID string        `json:"gasStationID"` // Primary key (UUID)
	Name         string        `json:"name"`
	Code         string        `json:"code"` // SPBU registration number, e.g. 34.12345.67
	Address      string        `json:"address"`
	Status       StationStatus `json:"status"`
	AuditFields
}
