package access

import (
	"atelier/internal/core/domain/model/kernel"
)

// Session is the access state of one device.
type Session struct {
	id     kernel.UUID
	actor  Actor
	screen Screen
}

// NewSession opens a session in client mode on the home screen.
func NewSession(id kernel.UUID) (*Session, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return &Session{id: id, actor: Client(), screen: ScreenHome}, nil
}

func (s *Session) ID() kernel.UUID {
	return s.id
}

func (s *Session) Actor() Actor {
	return s.actor
}

func (s *Session) Mode() Mode {
	return s.actor.Mode()
}

func (s *Session) Screen() Screen {
	return s.screen
}

// EnterManager switches to manager mode. The caller has already checked the manager code.
func (s *Session) EnterManager(subscriptionActive bool) {
	s.actor = Manager()
	s.Reconcile(subscriptionActive)
}

// EnterWorkstation switches to workstation mode bound to the workstation.
func (s *Session) EnterWorkstation(workstationID kernel.UUID) error {
	actor, err := AtWorkstation(workstationID)
	if err != nil {
		return err
	}
	s.actor = actor
	s.Reconcile(false)
	return nil
}

// Exit always returns to client mode.
func (s *Session) Exit() {
	s.actor = Client()
	s.Reconcile(false)
}

// Navigate moves to the screen if the mode allows it, otherwise to the
// mode's default. It returns the resulting screen.
func (s *Session) Navigate(screen Screen, subscriptionActive bool) Screen {
	s.screen = Resolve(s.Mode(), subscriptionActive, screen)
	return s.screen
}

// Reconcile re-applies the consistency rule after a mode or subscription change.
func (s *Session) Reconcile(subscriptionActive bool) Screen {
	return s.Navigate(s.screen, subscriptionActive)
}

func (s *Session) Clone() *Session {
	c := *s
	return &c
}
