/************************************************************************************
 *
 * goda (Golang Optimized Discord API), A Lightweight Go library for Discord API
 *
 * SPDX-License-Identifier: BSD-3-Clause
 *
 * Copyright 2025 Marouane Souiri
 *
 * Licensed under the BSD 3-Clause License.
 * See the LICENSE file for details.
 *
 ************************************************************************************/

package goda

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
)

const (
	gatewayVersion     = "10"
	gatewayURL         = "wss://gateway.discord.gg"
	defaultLargeThreshold = 50
)

// shardState enumerates a shard's position in the gateway connection state
// machine described by this package's design notes:
//
//	Disconnected -> Connecting -> Identifying|Resuming -> Active -> {FatallyClosed, Reconnecting}
type shardState int32

const (
	shardStateDisconnected shardState = iota
	shardStateConnecting
	shardStateIdentifying
	shardStateResuming
	shardStateActive
	shardStateReconnecting
	shardStateFatallyClosed
)

func (s shardState) String() string {
	switch s {
	case shardStateDisconnected:
		return "disconnected"
	case shardStateConnecting:
		return "connecting"
	case shardStateIdentifying:
		return "identifying"
	case shardStateResuming:
		return "resuming"
	case shardStateActive:
		return "active"
	case shardStateReconnecting:
		return "reconnecting"
	case shardStateFatallyClosed:
		return "fatally_closed"
	default:
		return "unknown"
	}
}

// Shard manages a single WebSocket connection to the Discord Gateway,
// including session state, heartbeating, resuming, compression, and
// reconnection.
type Shard struct {
	id             ShardId
	token          string
	intents        GatewayIntent
	largeThreshold int
	presence       map[string]any

	logger        Logger
	dispatcher    *dispatcher
	identifyQueue IdentifyQueue
	compression   CompressionMode

	latency *Latency

	writeMu sync.Mutex
	conn    net.Conn

	mu              sync.Mutex
	state           shardState
	inflater        Inflater
	session         *Session
	resumeURL       string
	commandLim      *CommandRatelimiter
	missedAcks      int
	heartbeatCancel context.CancelFunc

	closeOnce sync.Once
	closed    chan struct{}
}

// newShard constructs a new Shard. identifyQueue paces Identify requests
// across every shard of the bot; a single instance must be shared by all of
// a bot's shards.
func newShard(
	id ShardId, token string, intents GatewayIntent, largeThreshold int,
	logger Logger, dispatcher *dispatcher, identifyQueue IdentifyQueue, compression CompressionMode,
) *Shard {
	if largeThreshold <= 0 {
		largeThreshold = defaultLargeThreshold
	}
	return &Shard{
		id:             id,
		token:          token,
		intents:        intents,
		largeThreshold: largeThreshold,
		logger:         logger,
		dispatcher:     dispatcher,
		identifyQueue:  identifyQueue,
		compression:    compression,
		latency:        NewLatency(),
		closed:         make(chan struct{}),
	}
}

// State returns the shard's current position in the connection state
// machine.
func (s *Shard) State() shardState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Shard) setState(st shardState) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}

// Latency returns the shard's heartbeat latency tracker.
func (s *Shard) Latency() *Latency {
	return s.latency
}

// Session returns the shard's current session (the live value, not a copy:
// its sequence keeps advancing as dispatches arrive), or nil if it
// has none (never identified, or dropped on a non-resumable close).
func (s *Shard) Session() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// connectURL builds the gateway URL for a fresh connection or a resume,
// including the compress query parameter when compression is enabled.
func (s *Shard) connectURL() string {
	s.mu.Lock()
	resume := s.resumeURL
	s.mu.Unlock()

	base := resume
	if base == "" {
		base = gatewayURL
	}

	url := base + "/?v=" + gatewayVersion + "&encoding=json"
	if param := s.compression.queryParam(); param != "" {
		url += "&compress=" + param
	}
	return url
}

// Connect opens (or reopens) the shard's WebSocket connection and starts
// its receive loop. It does not block waiting for Ready/Resumed; those
// transitions happen asynchronously as frames arrive.
func (s *Shard) Connect(ctx context.Context) error {
	s.setState(shardStateConnecting)

	dialer := ws.Dialer{}
	conn, _, _, err := dialer.Dial(ctx, s.connectURL())
	if err != nil {
		return fmt.Errorf("goda: shard %s dial: %w", s.id, err)
	}

	s.mu.Lock()
	s.conn = conn
	s.inflater = NewInflater(s.compression)
	s.mu.Unlock()

	s.logger.WithField("shard", s.id.String()).Info("shard connected")

	go s.readLoop(conn)
	return nil
}

// readLoop owns the socket's read side for the life of one connection. It
// exits (and triggers a reconnect or fatal stop) when the connection
// closes.
func (s *Shard) readLoop(conn net.Conn) {
	for {
		data, op, err := wsutil.ReadServerData(conn)
		if err != nil {
			s.handleClose(err)
			return
		}

		var payloads [][]byte
		if s.compression == CompressionOff {
			payloads = [][]byte{data}
		} else {
			s.mu.Lock()
			inflater := s.inflater
			s.mu.Unlock()

			if err := inflater.Extend(data); err != nil {
				s.logger.WithField("shard", s.id.String()).WithField("err", err).Error("decompression failed")
				continue
			}
			for {
				msg, ok, err := inflater.TryTakeMessage()
				if err != nil {
					s.logger.WithField("shard", s.id.String()).WithField("err", err).Error("decompression failed")
					break
				}
				if !ok {
					break
				}
				payloads = append(payloads, msg)
			}
		}

		_ = op
		for _, raw := range payloads {
			s.handlePayload(raw)
		}
	}
}

// handlePayload decodes and dispatches one gateway payload. This is the
// single decode point for every opcode the shard understands.
func (s *Shard) handlePayload(raw []byte) {
	defer ReleaseBytes(&raw)

	var payload gatewayPayload
	if err := sonic.Unmarshal(raw, &payload); err != nil {
		s.logger.WithField("shard", s.id.String()).WithField("err", err).Error("payload unmarshal failed")
		return
	}

	switch payload.Op {
	case gatewayOpcodeDispatch:
		s.handleDispatch(payload)

	case gatewayOpcodeReconnect:
		s.logger.WithField("shard", s.id.String()).Info("reconnect requested by gateway")
		s.reconnect(true)

	case gatewayOpcodeInvalidSession:
		var resumable bool
		_ = sonic.Unmarshal(payload.D, &resumable)
		time.Sleep(time.Duration(1000+rand.Intn(4000)) * time.Millisecond)
		if resumable {
			s.logger.WithField("shard", s.id.String()).Info("session invalid, resumable")
			s.reconnect(true)
		} else {
			s.logger.WithField("shard", s.id.String()).Info("session invalid, re-identifying")
			s.mu.Lock()
			s.session = nil
			s.mu.Unlock()
			s.reconnect(false)
		}

	case gatewayOpcodeHello:
		var hello struct {
			HeartbeatInterval float64 `json:"heartbeat_interval"`
		}
		_ = sonic.Unmarshal(payload.D, &hello)
		interval := time.Duration(hello.HeartbeatInterval) * time.Millisecond

		s.mu.Lock()
		s.commandLim = NewCommandRatelimiter(interval)
		hasSession := s.session != nil
		s.mu.Unlock()

		hbCtx, cancel := context.WithCancel(context.Background())
		s.mu.Lock()
		s.heartbeatCancel = cancel
		s.mu.Unlock()
		go s.startHeartbeat(hbCtx, interval)

		if hasSession {
			s.setState(shardStateResuming)
			s.dispatcher.dispatchReconnecting(s.id.Number(), true)
			s.sendResume()
		} else {
			s.setState(shardStateIdentifying)
			s.dispatcher.dispatchReconnecting(s.id.Number(), false)
			go s.identifyWhenPermitted(hbCtx)
		}

	case gatewayOpcodeHeartbeatACK:
		s.latency.TrackReceived(s.logger)
		s.mu.Lock()
		s.missedAcks = 0
		s.mu.Unlock()

	case gatewayOpcodeHeartbeat:
		s.sendHeartbeatNow()
	}
}

// handleDispatch processes a Dispatch payload: updates the stored session
// sequence, special-cases Ready/Resumed to advance the state machine, and
// forwards every dispatch to the event dispatcher.
func (s *Shard) handleDispatch(payload gatewayPayload) {
	s.mu.Lock()
	if s.session != nil {
		s.session.UpdateSequence(uint64(payload.S))
	}
	s.mu.Unlock()

	switch payload.T {
	case "READY":
		var ready struct {
			SessionID string `json:"session_id"`
			ResumeURL string `json:"resume_gateway_url"`
		}
		_ = sonic.Unmarshal(payload.D, &ready)
		s.mu.Lock()
		s.session = NewSession(ready.SessionID, uint64(payload.S))
		s.resumeURL = ready.ResumeURL
		s.mu.Unlock()
		s.setState(shardStateActive)
		s.logger.WithField("shard", s.id.String()).Info("session established")

	case "RESUMED":
		s.setState(shardStateActive)
		s.logger.WithField("shard", s.id.String()).Info("session resumed")
	}

	s.dispatcher.dispatch(s.id.Number(), payload.T, payload.D)
}

// identifyWhenPermitted requests a permit from the identify queue and, once
// granted, sends Identify. Resumes bypass this path entirely (they are not
// session-start-rate-limited).
func (s *Shard) identifyWhenPermitted(ctx context.Context) {
	if err := s.identifyQueue.Request(ctx, s.id.Number()); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, ErrCanceled) {
			return
		}
		s.logger.WithField("shard", s.id.String()).WithField("err", err).Error("identify queue request failed")
		return
	}
	s.sendIdentify()
}

// sendIdentify sends an Identify payload. Identify bypasses the Command
// Ratelimiter (it is paced by the Identify Queue instead).
func (s *Shard) sendIdentify() error {
	d := map[string]any{
		"token": s.token,
		"properties": map[string]string{
			"os":      "linux",
			"browser": LIB_NAME,
			"device":  LIB_NAME,
		},
		"shards":          [2]int{s.id.Number(), s.id.Total()},
		"intents":         s.intents,
		"large_threshold": s.largeThreshold,
	}
	if s.presence != nil {
		d["presence"] = s.presence
	}
	return s.sendRaw(gatewayOpcodeIdentify, d)
}

// sendResume sends a Resume payload directly, bypassing both the Identify
// Queue and the Command Ratelimiter.
func (s *Shard) sendResume() error {
	s.mu.Lock()
	session := s.session
	s.mu.Unlock()
	if session == nil {
		return ErrSessionInactive
	}
	return s.sendRaw(gatewayOpcodeResume, map[string]any{
		"token":      s.token,
		"session_id": session.ID(),
		"seq":        session.Sequence(),
	})
}

// sendHeartbeatNow sends an immediate Heartbeat, bypassing the Command
// Ratelimiter (heartbeats are never subject to it).
func (s *Shard) sendHeartbeatNow() error {
	s.mu.Lock()
	var seq uint64
	if s.session != nil {
		seq = s.session.Sequence()
	}
	s.mu.Unlock()

	s.latency.TrackSent()
	return s.sendRaw(gatewayOpcodeHeartbeat, seq)
}

// Send encodes and sends a gateway command, waiting for a Command
// Ratelimiter permit first. Use this for every outbound command besides
// Identify, Resume, and Heartbeat, which have their own dedicated send
// paths.
func (s *Shard) Send(ctx context.Context, op gatewayOpcode, d any) error {
	s.mu.Lock()
	limiter := s.commandLim
	s.mu.Unlock()
	if limiter != nil {
		if err := limiter.Acquire(ctx); err != nil {
			return err
		}
	}
	return s.sendRaw(op, d)
}

// sendRaw serializes and writes a payload to the socket directly, without
// consulting the Command Ratelimiter.
func (s *Shard) sendRaw(op gatewayOpcode, d any) error {
	payload, err := sonic.Marshal(map[string]any{"op": op, "d": d})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSerializing, err)
	}

	s.writeMu.Lock()
	conn := s.conn
	s.writeMu.Unlock()
	if conn == nil {
		return ErrSessionInactive
	}

	s.writeMu.Lock()
	err = wsutil.WriteClientMessage(conn, ws.OpText, payload)
	s.writeMu.Unlock()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSending, err)
	}
	return nil
}

// startHeartbeat runs the shard's heartbeater for one connection's
// lifetime. A single missed ack is tolerated (the ack may simply not have
// arrived yet); two misses in a row trigger a (non-fatal) reconnect.
func (s *Shard) startHeartbeat(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.mu.Lock()
			s.missedAcks++
			missed := s.missedAcks
			s.mu.Unlock()

			if missed > 2 {
				s.logger.WithField("shard", s.id.String()).Error("heartbeat not acked twice in a row, reconnecting")
				s.reconnect(true)
				return
			}

			if err := s.sendHeartbeatNow(); err != nil {
				s.logger.WithField("shard", s.id.String()).WithField("err", err).Error("heartbeat send failed")
				s.reconnect(true)
				return
			}
		}
	}
}

// handleClose reacts to the read loop observing the socket close, routing
// to a fatal stop or a reconnect depending on the close code.
func (s *Shard) handleClose(err error) {
	select {
	case <-s.closed:
		return
	default:
	}

	code, ok := closeCodeFromError(err)
	if ok && GatewayCloseEventCode(code).IsFatal() {
		s.logger.WithField("shard", s.id.String()).WithField("code", code).Error("fatal close code, shard stopped permanently")
		s.setState(shardStateFatallyClosed)
		return
	}

	preserveSession := !ok || GatewayCloseEventCode(code).IsResumable()
	s.logger.WithField("shard", s.id.String()).WithField("err", err).Warn("connection closed, reconnecting")
	s.reconnect(preserveSession)
}

// reconnect tears down the current connection and dials a new one,
// preserving the session (for a resume) only if preserveSession is true.
func (s *Shard) reconnect(preserveSession bool) {
	s.setState(shardStateReconnecting)

	s.mu.Lock()
	if s.heartbeatCancel != nil {
		s.heartbeatCancel()
		s.heartbeatCancel = nil
	}
	if !preserveSession {
		s.session = nil
		s.resumeURL = ""
	}
	s.missedAcks = 0
	s.mu.Unlock()

	s.writeMu.Lock()
	if s.conn != nil {
		s.conn.Close()
		s.conn = nil
	}
	s.writeMu.Unlock()

	backoff := time.Second
	const maxBackoff = time.Minute
	for {
		select {
		case <-s.closed:
			return
		default:
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err := s.Connect(ctx)
		cancel()
		if err == nil {
			return
		}

		s.logger.WithField("shard", s.id.String()).WithField("err", err).Error("reconnect attempt failed, retrying")
		time.Sleep(backoff)
		if backoff < maxBackoff {
			backoff *= 2
			if backoff > maxBackoff {
				backoff = maxBackoff
			}
		}
	}
}

// closeCodeFromError extracts a gateway close code from a websocket close
// error, if the error carries one.
func closeCodeFromError(err error) (int, bool) {
	var closeErr wsutil.ClosedError
	if errors.As(err, &closeErr) {
		return int(closeErr.Code), true
	}
	return 0, false
}

// Shutdown permanently closes the shard: it stops the heartbeater, closes
// the socket, and marks the shard disconnected. The shard cannot be
// reused after Shutdown.
func (s *Shard) Shutdown() error {
	s.closeOnce.Do(func() {
		close(s.closed)
	})

	s.mu.Lock()
	if s.heartbeatCancel != nil {
		s.heartbeatCancel()
		s.heartbeatCancel = nil
	}
	s.state = shardStateDisconnected
	s.mu.Unlock()

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if s.conn != nil {
		err := s.conn.Close()
		s.conn = nil
		return err
	}
	return nil
}
