package metrics

import (
	"time"

	"stratego/game"

	"github.com/google/uuid"
)

// Reasons a game stops.
const (
	ReasonFlagCaptured = "flag_captured"
	ReasonNoMoves      = "no_moves"
	ReasonTurnLimit    = "turn_limit"
)

type GameMetric struct {
	GameID       uuid.UUID
	Seed         uint64
	StartingSide game.Side
	Winner       game.Side // Neutral when the game was cut off
	Reason       string
	Turns        int
	Outcomes     map[game.OutcomeKind]int
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
}

type Collector interface {
	Start(gameID uuid.UUID, startingSide game.Side)
	AddOutcome(outcome game.Outcome)
	Complete(winner game.Side, reason string) GameMetric
}

type collector struct {
	gameID       uuid.UUID
	startingSide game.Side
	startTime    time.Time
	turns        int
	outcomes     map[game.OutcomeKind]int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(gameID uuid.UUID, startingSide game.Side) {
	m.gameID = gameID
	m.startingSide = startingSide
	m.startTime = time.Now()
	m.turns = 0
	m.outcomes = make(map[game.OutcomeKind]int)
}

func (m *collector) AddOutcome(outcome game.Outcome) {
	m.turns++
	m.outcomes[outcome.Kind]++
}

func (m *collector) Complete(winner game.Side, reason string) GameMetric {
	end := time.Now()
	return GameMetric{
		GameID:       m.gameID,
		StartingSide: m.startingSide,
		Winner:       winner,
		Reason:       reason,
		Turns:        m.turns,
		Outcomes:     m.outcomes,
		StartTime:    m.startTime,
		EndTime:      end,
		Duration:     end.Sub(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(gameID uuid.UUID, startingSide game.Side) {}
func (m *dummyCollector) AddOutcome(outcome game.Outcome)                {}
func (m *dummyCollector) Complete(winner game.Side, reason string) GameMetric {
	return GameMetric{}
}
