package domain

// Tank is a fuel storage tank at a gas station. CurrentStock is a derived
// cache: sum of approved unload volumes minus the externally tracked sales
// volume, clamped to [0, capacity]. Recomputation is the source of truth.
type Tank struct {
	TankID       string `json:"tankID"`       // Primary key (UUID)
	GasStationID string `json:"gasStationID"` // FK -> gas_stations.gas_station_id
	ProductID    string `json:"productID"`
	Name         string `json:"name"`
	Capacity     int64  `json:"capacity"`     // Liters
	CurrentStock int64  `json:"currentStock"` // Liters, derived cache
	SalesVolume  int64  `json:"salesVolume"`  // Liters, maintained by the sales system
	AuditFields
}

// ClampStock applies the tank invariants to a raw stock value. The boolean
// reports whether clamping happened, which indicates drift upstream.
func (t Tank) ClampStock(raw int64) (int64, bool) {
	if raw < 0 {
		return 0, true
	}
	if raw > t.Capacity {
		return t.Capacity, true
	}
	return raw, false
}
