package commands

//go:generate mockgen -source=session.go -destination=../../../tests/mock/commands/session.go -package=commandsmock

import (
	"log/slog"

	"storefront-engine/internal/usecase/shared"
)

type SessionCommands interface {
	SignIn(token string) (shared.Session, error)
	SignOut()
	Current() shared.Session
}

type sessionUseCaseImpl struct {
	store  shared.CredentialStore
	logger *slog.Logger
}

func NewSessionUseCase(store shared.CredentialStore, logger *slog.Logger) SessionCommands {
	return &sessionUseCaseImpl{store: store, logger: logger}
}

func (uc *sessionUseCaseImpl) SignIn(token string) (shared.Session, error) {
	if err := uc.store.Set(token); err != nil {
		uc.logger.Warn("Credential rejected", "error", err.Error())
		return shared.Session{}, err
	}
	s := uc.store.Session()
	uc.logger.Info("Credential stored", "subject", s.Subject)
	return s, nil
}

func (uc *sessionUseCaseImpl) SignOut() {
	uc.store.Clear()
	uc.logger.Info("Credential cleared")
}

func (uc *sessionUseCaseImpl) Current() shared.Session {
	return uc.store.Session()
}
