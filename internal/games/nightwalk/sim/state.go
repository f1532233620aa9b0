package sim

import "github.com/vovakirdan/nightwalk/internal/config"

// Phase is the avatar's lifecycle state.
type Phase uint8

const (
	PhaseNormal Phase = iota
	PhaseEmpowered
	PhaseTransformed
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseNormal:
		return "normal"
	case PhaseEmpowered:
		return "empowered"
	case PhaseTransformed:
		return "transformed"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Outcome says how a session ended.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeDefeat
	OutcomeVictory
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeDefeat:
		return "defeat"
	case OutcomeVictory:
		return "victory"
	default:
		return "none"
	}
}

// Machine is the transformation state machine. GameOver is absorbing.
type Machine struct {
	cfg             config.StateConfig
	phase           Phase
	outcome         Outcome
	empowerLeft     float64
	transformations int
}

// NewMachine starts in Normal.
func NewMachine(cfg config.StateConfig) Machine {
	return Machine{cfg: cfg}
}

// Phase returns the current phase.
func (m Machine) Phase() Phase {
	return m.phase
}

// Outcome returns the terminal outcome, or OutcomeNone while running.
func (m Machine) Outcome() Outcome {
	return m.outcome
}

// Transformations returns how many times the avatar transformed.
func (m Machine) Transformations() int {
	return m.transformations
}

// EmpowerLeft returns the remaining Empowered time in ms.
func (m Machine) EmpowerLeft() float64 {
	return m.empowerLeft
}

// Immune reports whether hazard accumulation is suppressed.
func (m Machine) Immune() bool {
	return m.phase == PhaseEmpowered
}

// Evaluate advances timers and applies meter thresholds. It returns the
// events produced and any score bonus. At most one phase change happens per
// call, except a terminal transformation which goes straight to GameOver.
func (m *Machine) Evaluate(dtMs float64, meters *Meters, catalogDone bool) ([]Event, int) {
	if m.phase == PhaseGameOver {
		return nil, 0
	}

	if catalogDone {
		m.end(OutcomeVictory)
		return []Event{{Kind: EventGameOver, Identity: OutcomeVictory.String()}}, 0
	}

	switch m.phase {
	case PhaseEmpowered:
		m.empowerLeft -= dtMs
		if m.empowerLeft <= 0 {
			m.empowerLeft = 0
			m.phase = PhaseNormal
			return []Event{{Kind: EventEmpowerExpired}}, 0
		}
		return nil, 0

	case PhaseNormal, PhaseTransformed:
		if meters.Hazard.Full() {
			return m.transform(meters), 0
		}
	}

	switch m.phase {
	case PhaseTransformed:
		if meters.Recovery.Full() {
			meters.resetAll()
			m.phase = PhaseNormal
			return []Event{{Kind: EventRecovered, Value: m.cfg.RecoveryBonus}}, m.cfg.RecoveryBonus
		}
	case PhaseNormal:
		if meters.Benefit.Full() {
			meters.Benefit.Reset()
			m.phase = PhaseEmpowered
			m.empowerLeft = m.cfg.EmpowerMs
			return []Event{{Kind: EventEmpowered, Value: int(m.cfg.EmpowerMs)}}, 0
		}
	}
	return nil, 0
}

// transform handles a full hazard meter. The counter, not the phase,
// decides whether the session ends.
func (m *Machine) transform(meters *Meters) []Event {
	meters.Hazard.Reset()
	meters.Benefit.Reset()
	meters.Recovery.Reset()
	m.transformations++

	events := []Event{{Kind: EventTransformed, Value: m.transformations}}
	if m.transformations >= m.cfg.MaxTransformations {
		m.end(OutcomeDefeat)
		return append(events, Event{Kind: EventGameOver, Identity: OutcomeDefeat.String()})
	}
	m.phase = PhaseTransformed
	return events
}

func (m *Machine) end(o Outcome) {
	m.phase = PhaseGameOver
	m.outcome = o
	m.empowerLeft = 0
}
