package sim

// EventKind names something that happened during a tick.
type EventKind string

const (
	EventBlocked           EventKind = "blocked"
	EventUnblocked         EventKind = "unblocked"
	EventSpawned           EventKind = "spawned"
	EventDespawned         EventKind = "despawned"
	EventPickup            EventKind = "pickup"
	EventDispensed         EventKind = "dispensed"
	EventEmpowered         EventKind = "empowered"
	EventEmpowerExpired    EventKind = "empower_expired"
	EventTransformed       EventKind = "transformed"
	EventRecovered         EventKind = "recovered"
	EventStructureDisabled EventKind = "structure_disabled"
	EventGameOver          EventKind = "game_over"
)

// Event is an informational record of a tick. Identity carries the stable
// identity or kind involved; Value carries points or a count.
type Event struct {
	Kind     EventKind
	Identity string
	Value    int
}

// StepResult is returned by every Tick.
type StepResult struct {
	Phase   Phase
	Outcome Outcome
	Score   int
	Events  []Event
}
