package session

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-session-keeper/internal/logger"
	"github.com/MKhiriev/go-session-keeper/models"
)

// attempt is the state of one connection attempt.
type attempt struct {
	gate  *LoginGate
	drops chan struct{}

	// exchanges tracks credential exchanges started by the connected
	// handler. Add is only called from the dispatch goroutine.
	exchanges sync.WaitGroup

	exchangeStarted bool
	usedStoredToken atomic.Bool
}

func newAttempt() *attempt {
	return &attempt{
		gate:  NewLoginGate(),
		drops: make(chan struct{}, 1),
	}
}

func (a *attempt) signalDrop() {
	select {
	case a.drops <- struct{}{}:
	default:
	}
}

// handlers reacts to transport events for one attempt.
type handlers struct {
	session *Session
	attempt *attempt
	state   *Lifecycle
	logger  *logger.Logger
}

func newHandlers(s *Session, a *attempt, state *Lifecycle, log *logger.Logger) *handlers {
	return &handlers{session: s, attempt: a, state: state, logger: log}
}

func (h *handlers) handle(ctx context.Context, ev models.Event) error {
	switch ev.Kind {
	case models.EventConnected:
		h.onConnected(ctx)
	case models.EventDisconnected:
		if h.onDisconnected() == OutcomeRetry {
			h.attempt.signalDrop()
		}
	case models.EventLoggedOn:
		h.onLoggedOn(ctx, ev)
	case models.EventLoggedOff:
		h.onLoggedOff(ev)
	case models.EventAccountInfo:
		h.onAccountInfo(ctx)
	default:
		return fmt.Errorf("%w: %s", errUnknownEvent, ev.Kind)
	}
	return nil
}

// onConnected starts the credential exchange on its own goroutine so the
// dispatch loop keeps draining events while the exchange polls.
func (h *handlers) onConnected(ctx context.Context) {
	if h.attempt.exchangeStarted {
		h.logger.Debug().Msg("already logging on, ignoring duplicate connected event")
		return
	}
	h.attempt.exchangeStarted = true

	h.logger.Info().Msg("connected, logging on")
	h.session.setPhase(models.PhaseAuthenticating, nil)

	h.attempt.exchanges.Add(1)
	go func() {
		defer h.attempt.exchanges.Done()
		if err := h.logOn(ctx); err != nil {
			if ctx.Err() == nil {
				h.logger.Error().Err(err).Msg("authentication failed")
			}
			h.attempt.gate.Fail(fmt.Errorf("%w: %w", ErrAuthentication, err))
		}
	}()
}

func (h *handlers) logOn(ctx context.Context) error {
	tok, err := h.session.credentials.resolve(ctx)
	if err != nil {
		return err
	}
	h.attempt.usedStoredToken.Store(tok.stored)

	msg := models.NewLogOnMessage(models.LogOnDetails{
		Username:               tok.accountName,
		AccessToken:            tok.token,
		ShouldRememberPassword: true,
	})
	if err = h.session.transport.Send(ctx, msg); err != nil {
		return fmt.Errorf("send logon: %w", err)
	}
	return nil
}

func (h *handlers) onDisconnected() DisconnectOutcome {
	if !h.state.Running() {
		h.logger.Info().Msg("disconnected")
		return OutcomeClean
	}

	if h.attempt.gate.Fail(ErrDisconnectedDuringLogin) {
		h.logger.Warn().Msg("disconnected during login")
	} else {
		h.logger.Warn().Msg("connection lost")
	}
	return OutcomeRetry
}

func (h *handlers) onLoggedOn(ctx context.Context, ev models.Event) {
	if h.attempt.gate.Resolved() {
		h.logger.Debug().Stringer("result", ev.Result).Msg("late logon result ignored")
		return
	}

	if ev.Result != models.ResultOK {
		h.logger.Error().
			Stringer("result", ev.Result).
			Stringer("extended_result", ev.ExtendedResult).
			Msg("login failed")
		if h.attempt.usedStoredToken.Load() {
			h.session.credentials.forget(ctx)
		}
		h.attempt.gate.Fail(&LogOnError{Result: ev.Result, ExtendedResult: ev.ExtendedResult})
		return
	}

	if !h.attempt.gate.Succeed() {
		h.logger.Debug().Msg("late logon result ignored")
		return
	}
	h.logger.Info().Msg("successfully logged on")
	h.session.setPhase(models.PhaseLoggedOn, nil)
}

func (h *handlers) onLoggedOff(ev models.Event) {
	h.logger.Info().Stringer("result", ev.Result).Msg("logged off")
}

// onAccountInfo announces presence and games. Send failures are logged only;
// they never fail the attempt.
func (h *handlers) onAccountInfo(ctx context.Context) {
	if !h.attempt.gate.Succeeded() {
		h.logger.Debug().Msg("account info before logon, ignoring")
		return
	}

	account := h.session.account
	state := models.PersonaOffline
	if account.WantsOnline() {
		state = models.PersonaOnline
	}
	if err := h.session.transport.Send(ctx, models.NewPresenceMessage(state)); err != nil {
		h.logger.Warn().Err(err).Msg("could not set presence")
	} else {
		h.logger.Info().Stringer("presence", state).Msg("presence set")
	}

	games := account.GameIDs()
	if err := h.session.transport.Send(ctx, models.NewGamesPlayedMessage(games)); err != nil {
		h.logger.Warn().Err(err).Msg("could not update games played")
	} else if len(games) == 0 {
		h.logger.Info().Msg("cleared games played")
	} else {
		h.logger.Info().Any("games", games).Msg("now playing")
	}

	h.session.setPhase(models.PhaseActive, nil)
}
