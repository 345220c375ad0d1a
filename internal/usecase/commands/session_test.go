//go:build unit

package commands_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"storefront-engine/internal/usecase/commands"
	"storefront-engine/internal/usecase/shared"
	sharedmock "storefront-engine/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSession(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("サインインでセッションを返す", func(t *testing.T) {
		store := sharedmock.NewMockCredentialStore(gomock.NewController(t))
		want := shared.Session{Authenticated: true, Subject: "user-1"}
		gomock.InOrder(
			store.EXPECT().Set("token").Return(nil),
			store.EXPECT().Session().Return(want),
		)

		got, err := commands.NewSessionUseCase(store, logger).SignIn("token")
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("拒否されたトークンはエラー", func(t *testing.T) {
		store := sharedmock.NewMockCredentialStore(gomock.NewController(t))
		rejected := errors.New("token expired")
		store.EXPECT().Set("expired").Return(rejected)

		got, err := commands.NewSessionUseCase(store, logger).SignIn("expired")
		assert.ErrorIs(t, err, rejected)
		assert.False(t, got.Authenticated)
	})

	t.Run("サインアウトと現在のセッション", func(t *testing.T) {
		store := sharedmock.NewMockCredentialStore(gomock.NewController(t))
		store.EXPECT().Clear()
		store.EXPECT().Session().Return(shared.Session{})

		uc := commands.NewSessionUseCase(store, logger)
		uc.SignOut()
		assert.False(t, uc.Current().Authenticated)
	})
}
