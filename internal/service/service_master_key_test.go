// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-key-keeper/internal/app"
	"github.com/MKhiriev/go-key-keeper/internal/crypto"
	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/mock"
	"github.com/MKhiriev/go-key-keeper/internal/secretstore"
)

const (
	testService = "com.multichat.app"
	testUser    = "master-key"
	validKey    = "00112233445566778899aabbccddeeff00112233445566778899aabbccddeeff"
)

var hexKeyPattern = regexp.MustCompile(`^[0-9a-f]{64}$`)

// newTestMasterKeyManager is a helper building a manager over mocks
func newTestMasterKeyManager(t *testing.T, ctrl *gomock.Controller, kind secretstore.Kind) (
	MasterKeyManager,
	*mock.MockSecretStore,
	*mock.MockSecurityAdvisory,
) {
	t.Helper()
	secrets := mock.NewMockSecretStore(ctrl)
	secrets.EXPECT().Kind().Return(kind).AnyTimes()
	advisory := mock.NewMockSecurityAdvisory(ctrl)

	return NewMasterKeyManager(secrets, testService, testUser, advisory, logger.Nop()), secrets, advisory
}

// ── Generate ─────────────────────────────────────────────────────────────────

func TestMasterKeyManager_Generate(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _, _ := newTestMasterKeyManager(t, ctrl, secretstore.KindNative)

	a, err := m.Generate()
	require.NoError(t, err)
	b, err := m.Generate()
	require.NoError(t, err)

	assert.Regexp(t, hexKeyPattern, a)
	assert.NotEqual(t, a, b)
}

// ── Exists ───────────────────────────────────────────────────────────────────

func TestMasterKeyManager_Exists(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		found  bool
		err    error
		want   bool
	}{
		{name: "present", secret: validKey, found: true, want: true},
		{name: "absent", want: false},
		{name: "empty value", secret: "", found: true, want: false},
		{name: "store error", err: errors.New("locked keychain"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m, secrets, _ := newTestMasterKeyManager(t, ctrl, secretstore.KindNative)
			secrets.EXPECT().GetPassword(gomock.Any(), testService, testUser).Return(tt.secret, tt.found, tt.err)

			assert.Equal(t, tt.want, m.Exists(context.Background()))
		})
	}
}

// ── Get ──────────────────────────────────────────────────────────────────────

func TestMasterKeyManager_Get(t *testing.T) {
	cause := errors.New("secret service not running")

	tests := []struct {
		name     string
		kind     secretstore.Kind
		secret   string
		found    bool
		err      error
		want     string
		wantErr  error
		wantMsg  string
		wantNoOp bool
	}{
		{name: "present", kind: secretstore.KindNative, secret: validKey, found: true, want: validKey},
		{name: "absent", kind: secretstore.KindNative, want: ""},
		{name: "native failure", kind: secretstore.KindNative, err: cause, wantErr: ErrStoreUnavailable, wantMsg: app.MsgNativeReadFailed},
		{name: "derived failure", kind: secretstore.KindDerived, err: cause, wantErr: ErrStoreUnavailable, wantMsg: app.MsgDerivedReadFailed},
		{name: "malformed stored key", kind: secretstore.KindNative, secret: "not-a-key", found: true, wantErr: crypto.ErrInvalidKeyFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m, secrets, _ := newTestMasterKeyManager(t, ctrl, tt.kind)
			secrets.EXPECT().GetPassword(gomock.Any(), testService, testUser).Return(tt.secret, tt.found, tt.err)

			got, err := m.Get(context.Background())

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
				if tt.wantMsg != "" {
					assert.Equal(t, tt.wantMsg, err.Error())
					assert.Equal(t, tt.wantMsg, app.UserMessage(err))
					assert.ErrorIs(t, err, cause, "cause must stay reachable")
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── Store ────────────────────────────────────────────────────────────────────

func TestMasterKeyManager_Store_InvalidKeyNeverWrites(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _, _ := newTestMasterKeyManager(t, ctrl, secretstore.KindNative)

	// no SetPassword expectation: any call fails the test
	err := m.Store(context.Background(), "abc")
	assert.ErrorIs(t, err, crypto.ErrInvalidKeyFormat)
}

func TestMasterKeyManager_Store_Canonicalizes(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, secrets, _ := newTestMasterKeyManager(t, ctrl, secretstore.KindNative)
	secrets.EXPECT().SetPassword(gomock.Any(), testService, testUser, validKey).Return(nil)

	require.NoError(t, m.Store(context.Background(), strings.ToUpper(validKey)))
}

func TestMasterKeyManager_Store_Failure(t *testing.T) {
	tests := []struct {
		kind    secretstore.Kind
		wantMsg string
	}{
		{kind: secretstore.KindNative, wantMsg: app.MsgNativeWriteFailed},
		{kind: secretstore.KindDerived, wantMsg: app.MsgDerivedWriteFailed},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m, secrets, _ := newTestMasterKeyManager(t, ctrl, tt.kind)
			cause := errors.New("write refused")
			secrets.EXPECT().SetPassword(gomock.Any(), testService, testUser, validKey).Return(cause)

			err := m.Store(context.Background(), validKey)

			assert.ErrorIs(t, err, ErrStoreUnavailable)
			assert.ErrorIs(t, err, cause)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

// ── Initialize ───────────────────────────────────────────────────────────────

func TestMasterKeyManager_Initialize_ReturnsExisting(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, secrets, _ := newTestMasterKeyManager(t, ctrl, secretstore.KindDerived)
	secrets.EXPECT().GetPassword(gomock.Any(), testService, testUser).Return(validKey, true, nil)

	got, err := m.Initialize(context.Background())

	require.NoError(t, err)
	assert.Equal(t, validKey, got)
}

func TestMasterKeyManager_Initialize_TwiceWritesOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, secrets, advisory := newTestMasterKeyManager(t, ctrl, secretstore.KindNative)
	ctx := context.Background()

	var stored string
	gomock.InOrder(
		secrets.EXPECT().GetPassword(gomock.Any(), testService, testUser).Return("", false, nil),
		secrets.EXPECT().SetPassword(gomock.Any(), testService, testUser, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _, secret string) error {
				stored = secret
				return nil
			}).Times(1),
		secrets.EXPECT().GetPassword(gomock.Any(), testService, testUser).
			DoAndReturn(func(context.Context, string, string) (string, bool, error) {
				return stored, true, nil
			}),
	)
	advisory.EXPECT().Raise(gomock.Any()).Times(0)

	first, err := m.Initialize(ctx)
	require.NoError(t, err)
	second, err := m.Initialize(ctx)
	require.NoError(t, err)

	assert.Regexp(t, hexKeyPattern, first)
	assert.Equal(t, first, second)
	assert.Equal(t, first, stored)
}

func TestMasterKeyManager_Initialize_DerivedRaisesAdvisory(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, secrets, advisory := newTestMasterKeyManager(t, ctrl, secretstore.KindDerived)

	secrets.EXPECT().GetPassword(gomock.Any(), testService, testUser).Return("", false, nil)
	secrets.EXPECT().SetPassword(gomock.Any(), testService, testUser, gomock.Any()).Return(nil)
	advisory.EXPECT().Raise(gomock.Any()).Times(1)

	_, err := m.Initialize(context.Background())
	require.NoError(t, err)
}

func TestMasterKeyManager_Initialize_NeverOverwritesOnReadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, secrets, _ := newTestMasterKeyManager(t, ctrl, secretstore.KindNative)
	secrets.EXPECT().GetPassword(gomock.Any(), testService, testUser).Return("", false, errors.New("locked"))

	_, err := m.Initialize(context.Background())
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestMasterKeyManager_Initialize_NeverOverwritesMalformedKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, secrets, _ := newTestMasterKeyManager(t, ctrl, secretstore.KindNative)
	secrets.EXPECT().GetPassword(gomock.Any(), testService, testUser).Return("zz", true, nil)

	_, err := m.Initialize(context.Background())
	assert.ErrorIs(t, err, crypto.ErrInvalidKeyFormat)
}

func TestMasterKeyManager_Initialize_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, secrets, _ := newTestMasterKeyManager(t, ctrl, secretstore.KindDerived)
	secrets.EXPECT().GetPassword(gomock.Any(), testService, testUser).Return("", false, nil)
	secrets.EXPECT().SetPassword(gomock.Any(), testService, testUser, gomock.Any()).Return(errors.New("disk full"))

	got, err := m.Initialize(context.Background())

	assert.Empty(t, got)
	assert.Equal(t, app.MsgDerivedWriteFailed, err.Error())
}

// countingStore counts writes of the wrapped memory store.
type countingStore struct {
	*secretstore.MemoryStore
	writes atomic.Int32
}

func (s *countingStore) SetPassword(ctx context.Context, service, user, secret string) error {
	s.writes.Add(1)
	return s.MemoryStore.SetPassword(ctx, service, user, secret)
}

func TestMasterKeyManager_Initialize_Concurrent(t *testing.T) {
	secrets := &countingStore{MemoryStore: secretstore.NewMemoryStore()}
	m := NewMasterKeyManager(secrets, testService, testUser, nil, logger.Nop())

	const n = 16
	keys := make([]string, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			key, err := m.Initialize(context.Background())
			assert.NoError(t, err)
			keys[i] = key
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), secrets.writes.Load())
	for _, k := range keys {
		assert.Equal(t, keys[0], k)
	}
}

// ── Export ───────────────────────────────────────────────────────────────────

func TestMasterKeyManager_Export(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m, secrets, _ := newTestMasterKeyManager(t, ctrl, secretstore.KindNative)
		secrets.EXPECT().GetPassword(gomock.Any(), testService, testUser).Return(validKey, true, nil)

		got, err := m.Export(context.Background())
		require.NoError(t, err)
		assert.Equal(t, validKey, got)
	})

	t.Run("absent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m, secrets, _ := newTestMasterKeyManager(t, ctrl, secretstore.KindNative)
		secrets.EXPECT().GetPassword(gomock.Any(), testService, testUser).Return("", false, nil)

		_, err := m.Export(context.Background())
		assert.ErrorIs(t, err, ErrMasterKeyNotFound)
		assert.Equal(t, app.MsgMasterKeyNotFound, app.UserMessage(err))
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m, secrets, _ := newTestMasterKeyManager(t, ctrl, secretstore.KindNative)
		secrets.EXPECT().GetPassword(gomock.Any(), testService, testUser).Return("", false, errors.New("denied"))

		_, err := m.Export(context.Background())
		assert.ErrorIs(t, err, ErrStoreUnavailable)
	})
}

func TestMasterKeyManager_Backend(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _, _ := newTestMasterKeyManager(t, ctrl, secretstore.KindDerived)
	assert.Equal(t, secretstore.KindDerived, m.Backend())
}
