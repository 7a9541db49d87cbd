package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"hotel-frontdesk/metrics"
	"hotel-frontdesk/models"
)

// Fixed replies used instead of surfacing advisory failures.
const (
	FallbackUnconfigured = "请在环境中配置 API_KEY 以使用 AI 助手。"
	FallbackEmptyAnswer  = "抱歉，我暂时无法获取回答。"
	FallbackUnavailable  = "AI 服务暂时不可用。"
)

var (
	ErrEmptyQuestion = errors.New("question is empty")
	ErrAdvisoryBusy  = errors.New("previous question for this session is still pending")
)

// RoomLister is the read side the assistant needs for its snapshot.
type RoomLister interface {
	ListRooms(ctx context.Context, f RoomFilter) ([]models.Room, error)
}

// AdvisoryReply is what the chat widget shows.
type AdvisoryReply struct {
	Text     string `json:"reply"`
	Fallback bool   `json:"fallback"`
	Cached   bool   `json:"cached"`
}

type AdvisoryService struct {
	rooms     RoomLister
	completer Completer
	cache     AnswerCache
	hotelName string
	timeout   time.Duration
	log       zerolog.Logger

	mu       sync.Mutex
	inflight map[string]bool
}

// NewAdvisoryService wires the assistant. A nil completer means no API key
// is configured; a nil cache disables caching.
func NewAdvisoryService(rooms RoomLister, completer Completer, cache AnswerCache, hotelName string, timeout time.Duration, log zerolog.Logger) *AdvisoryService {
	if cache == nil {
		cache = noopCache{}
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &AdvisoryService{
		rooms:     rooms,
		completer: completer,
		cache:     cache,
		hotelName: hotelName,
		timeout:   timeout,
		log:       log.With().Str("component", "advisory").Logger(),
		inflight:  make(map[string]bool),
	}
}

// RoomSnapshot renders one line per room for the model's context.
func RoomSnapshot(rooms []models.Room) string {
	lines := make([]string, 0, len(rooms))
	for _, r := range rooms {
		line := fmt.Sprintf("房号 %s (%s): %s", r.Number, r.Type.Label(), r.Status)
		if r.Guest != nil {
			line += " - 客人: " + r.Guest.Name
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (s *AdvisoryService) systemInstruction(snapshot, question string) string {
	return fmt.Sprintf(`You are an intelligent hotel management assistant for '%s'.

Current Hotel Status (Snapshot):
%s

Your capabilities:
1. Answer questions about room availability, specific guest details, or occupancy rates.
2. Suggest room upgrades or operational priorities (e.g., "Which rooms need cleaning?").
3. Respond in a professional, helpful tone suitable for hotel staff.
4. Always answer in Chinese unless asked otherwise.

User request: %s`, s.hotelName, snapshot, question)
}

func cacheKey(question, snapshot string) string {
	sum := sha256.Sum256([]byte(question + "\x00" + snapshot))
	return hex.EncodeToString(sum[:])
}

func (s *AdvisoryService) acquire(session string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inflight[session] {
		return false
	}
	s.inflight[session] = true
	return true
}

func (s *AdvisoryService) release(session string) {
	s.mu.Lock()
	delete(s.inflight, session)
	s.mu.Unlock()
}

// Ask answers an operator question. Upstream failures never return an
// error: they degrade to one of the Fallback texts. Only an empty question
// or a second concurrent question on the same session is refused.
func (s *AdvisoryService) Ask(ctx context.Context, session, question string) (AdvisoryReply, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return AdvisoryReply{}, ErrEmptyQuestion
	}
	if s.completer == nil {
		metrics.AdvisoryRequests.WithLabelValues("unconfigured").Inc()
		return AdvisoryReply{Text: FallbackUnconfigured, Fallback: true}, nil
	}
	if session == "" {
		session = "default"
	}
	if !s.acquire(session) {
		metrics.AdvisoryRequests.WithLabelValues("busy").Inc()
		return AdvisoryReply{}, ErrAdvisoryBusy
	}
	defer s.release(session)

	rooms, err := s.rooms.ListRooms(ctx, RoomFilter{})
	if err != nil {
		s.log.Error().Err(err).Msg("snapshot failed")
		metrics.AdvisoryRequests.WithLabelValues("failed").Inc()
		return AdvisoryReply{Text: FallbackUnavailable, Fallback: true}, nil
	}
	snapshot := RoomSnapshot(rooms)
	key := cacheKey(question, snapshot)

	if text, ok, err := s.cache.Get(ctx, key); err != nil {
		s.log.Warn().Err(err).Msg("advisory cache read failed")
	} else if ok {
		metrics.AdvisoryRequests.WithLabelValues("cached").Inc()
		return AdvisoryReply{Text: text, Cached: true}, nil
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	text, err := s.completer.Complete(callCtx, s.systemInstruction(snapshot, question), question)
	metrics.AdvisoryLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		s.log.Error().Err(err).Str("session", session).Msg("AI Error")
		metrics.AdvisoryRequests.WithLabelValues("failed").Inc()
		return AdvisoryReply{Text: FallbackUnavailable, Fallback: true}, nil
	}
	if text == "" {
		metrics.AdvisoryRequests.WithLabelValues("empty").Inc()
		return AdvisoryReply{Text: FallbackEmptyAnswer, Fallback: true}, nil
	}

	if err := s.cache.Set(ctx, key, text); err != nil {
		s.log.Warn().Err(err).Msg("advisory cache write failed")
	}
	metrics.AdvisoryRequests.WithLabelValues("answered").Inc()
	return AdvisoryReply{Text: text}, nil
}
