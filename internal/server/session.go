package server

import (
	"encoding/json"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"bridgetutor/internal/bots"
	"bridgetutor/internal/engine"
)

func generateSessionID() string {
	return time.Now().Format("20060102150405")
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Session is the single-connection game session. All state transitions,
// including the advisor loop for automated seats, happen under one lock so
// the client only ever observes "your turn" or a finished auction.
type Session struct {
	mu        sync.Mutex
	id        string
	state     engine.GameState
	started   bool
	human     engine.Seat
	preset    engine.Preset
	presetMet bool
	rng       *rand.Rand
	advisor   *bots.Advisor
	total     int
	actionIds map[string]bool
	conn      *websocket.Conn
}

var (
	sessionOnce sync.Once
	sessionInst *Session
)

func GetSession() *Session {
	sessionOnce.Do(func() {
		sessionInst = newSession(time.Now().UnixNano())
	})
	return sessionInst
}

func newSession(seed int64) *Session {
	return &Session{
		id:        generateSessionID(),
		human:     engine.SeatSouth,
		rng:       rand.New(rand.NewSource(seed)),
		advisor:   bots.New(),
		state:     engine.NewGame(),
		actionIds: map[string]bool{},
	}
}

func (s *Session) HandleConnection(conn *websocket.Conn) {
	s.mu.Lock()
	s.conn = conn
	s.mu.Unlock()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s.sendError("bad_request", "invalid json")
			continue
		}
		s.handleMessage(msg)
	}
}

type ClientMessage struct {
	Type          string  `json:"type"`
	ActionId      string  `json:"actionId,omitempty"`
	Bid           *BidDTO `json:"bid,omitempty"`
	Preset        string  `json:"preset,omitempty"`
	Vulnerability string  `json:"vulnerability,omitempty"`
	Tricks        int     `json:"tricks,omitempty"`
}

type ServerMessage struct {
	Type   string     `json:"type"`
	State  *GameView  `json:"state,omitempty"`
	Events []Event    `json:"events,omitempty"`
	Error  *ErrorView `json:"error,omitempty"`
}

type ErrorView struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

func (s *Session) handleMessage(msg ClientMessage) {
	switch msg.Type {
	case "join_session":
		s.sendState(nil)
	case "new_deal":
		s.dealNewHand(msg.Preset, msg.Vulnerability)
	case "request_state":
		s.sendState(nil)
	case "submit_bid":
		s.applyBid(msg.ActionId, msg.Bid)
	case "score_hand":
		s.scoreHand(msg.Tricks)
	default:
		s.sendError("unknown_type", "unknown message type")
	}
}

func (s *Session) dealNewHand(presetName, vuln string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	preset, ok := engine.ParsePreset(presetName)
	if !ok {
		s.sendError("bad_preset", "unknown practice preset")
		return
	}
	v, err := parseVulnerability(vuln)
	if err != nil {
		s.sendError("bad_vulnerability", err.Error())
		return
	}

	s.preset = preset
	s.presetMet = engine.DealRound(&s.state, s.rng, s.human, preset)
	s.state.Vuln = v
	s.started = true
	s.actionIds = map[string]bool{}
	if !s.presetMet {
		log.Printf("preset %s unsatisfied after retry ceiling, dealt unconstrained", preset)
	}

	events := []Event{dealEvent(preset, s.presetMet)}
	events = append(events, s.autoAdvanceLocked()...)
	s.sendStateLocked(events)
}

func (s *Session) applyBid(actionId string, dto *BidDTO) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		s.sendError("not_started", "no hand dealt")
		return
	}
	if actionId == "" {
		s.sendError("missing_action_id", "actionId required")
		return
	}
	if s.actionIds[actionId] {
		s.sendStateLocked(nil)
		return
	}

	bid, err := dto.ToEngine()
	if err != nil {
		s.sendError("bad_bid", err.Error())
		return
	}
	prev := s.state
	if err := engine.SubmitBid(&s.state, s.human, bid); err != nil {
		s.sendError(errorCode(err), err.Error())
		return
	}
	s.actionIds[actionId] = true

	events := []Event{bidEvent(s.human, bid)}
	events = append(events, terminalEvents(prev, s.state)...)
	events = append(events, s.autoAdvanceLocked()...)
	s.sendStateLocked(events)
}

func errorCode(err error) string {
	switch err {
	case engine.ErrOutOfTurn:
		return "out_of_turn"
	case engine.ErrIllegalBid:
		return "illegal_bid"
	case engine.ErrAuctionOver:
		return "auction_over"
	default:
		return "apply_failed"
	}
}

// autoAdvanceLocked runs the advisor for the automated seats until the human
// is on turn or the auction ends. A suggestion that fails the legality check
// is replaced with a pass, so the loop always advances.
func (s *Session) autoAdvanceLocked() []Event {
	events := []Event{}
	for s.state.Phase == engine.PhaseBidding && s.state.Turn != s.human {
		seat := s.state.Turn
		bid := s.advisor.Suggest(s.state.Hands[seat], seat, s.state.History)
		if !engine.IsLegal(bid, s.state.History, seat) {
			bid = engine.Pass()
		}
		prev := s.state
		if err := engine.SubmitBid(&s.state, seat, bid); err != nil {
			log.Printf("advisor bid rejected: %v", err)
			return events
		}
		events = append(events, bidEvent(seat, bid))
		events = append(events, terminalEvents(prev, s.state)...)
	}
	return events
}

func (s *Session) scoreHand(tricks int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Phase != engine.PhaseComplete || s.state.Contract == nil {
		s.sendError("no_contract", "auction has no contract to score")
		return
	}
	if tricks < 0 || tricks > 13 {
		s.sendError("bad_tricks", "tricks taken must be 0..13")
		return
	}
	points := engine.Score(*s.state.Contract, tricks, s.state.Vuln)
	s.total += points
	s.sendStateLocked([]Event{scoreEvent(tricks, points, s.total)})
}

func (s *Session) sendState(events []Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sendStateLocked(events)
}

func (s *Session) sendStateLocked(events []Event) {
	if s.conn == nil {
		return
	}
	msg := ServerMessage{
		Type:   "state",
		State:  BuildGameView(s.state, s.human, s.preset, s.advisor),
		Events: events,
	}
	_ = s.conn.WriteJSON(msg)
}

func (s *Session) sendError(code, message string) {
	if s.conn == nil {
		return
	}
	msg := ServerMessage{
		Type:  "error",
		Error: &ErrorView{Code: code, Message: message},
	}
	_ = s.conn.WriteJSON(msg)
}
