// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-key-keeper/internal/app"
	"github.com/MKhiriev/go-key-keeper/internal/crypto"
	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/models"
)

// SensitiveField tells the codec where the sensitive value of T lives.
// Set returns a modified copy; records are never mutated in place.
type SensitiveField[T any] struct {
	Get func(T) string
	Set func(T, string) T
	// Label names a record in errors and logs. Optional.
	Label func(T) string
}

// Loaded is one record returned by [CredentialBatchCodec.Load]. Err is set
// when the sensitive field could not be decrypted; the field is "" then.
type Loaded[T any] struct {
	Record T
	Err    error
}

// CredentialBatchCodec encrypts and decrypts the sensitive field of a
// collection of records under the master key, one goroutine per record.
type CredentialBatchCodec[T any] struct {
	keys   MasterKeyProvider
	cipher crypto.FieldCipher
	field  SensitiveField[T]
	logger *logger.Logger
	limit  int
}

// NewCredentialBatchCodec creates a codec for records of type T.
func NewCredentialBatchCodec[T any](keys MasterKeyProvider, cipher crypto.FieldCipher, field SensitiveField[T], log *logger.Logger) *CredentialBatchCodec[T] {
	if log == nil {
		log = logger.Nop()
	}
	return &CredentialBatchCodec[T]{
		keys:   keys,
		cipher: cipher,
		field:  field,
		logger: log,
		limit:  runtime.GOMAXPROCS(0) * 4,
	}
}

// Save returns copies of records with every non-empty, not yet encrypted
// sensitive field encrypted. It fails with [ErrMasterKeyMissing] when no
// master key exists, and fails as a whole when any record fails.
func (c *CredentialBatchCodec[T]) Save(ctx context.Context, records []T) ([]T, error) {
	key, err := c.keys.Get(ctx)
	if err != nil {
		return nil, err
	}
	if key == "" {
		return nil, ErrMasterKeyMissing
	}

	out := make([]T, len(records))
	copy(out, records)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.limit)
	for i := range out {
		field := models.ParseSensitiveField(c.field.Get(out[i]))
		if field.IsEmpty() || field.IsEncrypted() {
			continue
		}
		value := field.String()

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			encrypted, err := c.cipher.Encrypt(value, key)
			if err != nil {
				c.logger.Err(err).Str("func", "CredentialBatchCodec.Save").Str("record", c.label(out[i], i)).Msg("error encrypting sensitive field")
				return fmt.Errorf("cannot encrypt sensitive field of %s: %w", c.label(out[i], i), err)
			}
			out[i] = c.field.Set(out[i], encrypted)
			return nil
		})
	}

	if err = g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// Load returns every record with its sensitive field decrypted. Failures
// stay per record: a record whose field cannot be decrypted gets "" and
// the error, the others are unaffected. Plaintext values pass unchanged.
// Without a master key (or when it cannot be read) every encrypted field
// becomes "" with [ErrMasterKeyMissing].
func (c *CredentialBatchCodec[T]) Load(ctx context.Context, records []T) []Loaded[T] {
	out := make([]Loaded[T], len(records))
	for i, r := range records {
		out[i].Record = r
	}
	if len(records) == 0 {
		return out
	}

	key, err := c.keys.Get(ctx)
	if err != nil {
		c.logger.Err(err).Str("func", "CredentialBatchCodec.Load").Msg("error reading the master key, treating it as missing")
		key = ""
	}
	if key == "" {
		c.logger.Warn().Str("func", "CredentialBatchCodec.Load").Int("count", len(records)).Msg(app.MsgMasterKeyMissingOnLoad)
		for i := range out {
			if models.ParseSensitiveField(c.field.Get(out[i].Record)).IsEncrypted() {
				out[i].Record = c.field.Set(out[i].Record, "")
				out[i].Err = ErrMasterKeyMissing
			}
		}
		return out
	}

	var g errgroup.Group
	g.SetLimit(c.limit)
	for i := range out {
		field := models.ParseSensitiveField(c.field.Get(out[i].Record))
		if field.Kind() != models.FieldEncrypted {
			continue
		}
		value := field.String()

		g.Go(func() error {
			plain, err := c.cipher.Decrypt(value, key)
			if err != nil {
				c.logger.Err(err).Str("func", "CredentialBatchCodec.Load").Str("record", c.label(out[i].Record, i)).Msg("error decrypting sensitive field")
				out[i].Record = c.field.Set(out[i].Record, "")
				out[i].Err = err
				return nil
			}
			out[i].Record = c.field.Set(out[i].Record, plain)
			return nil
		})
	}
	_ = g.Wait()

	return out
}

func (c *CredentialBatchCodec[T]) label(record T, index int) string {
	if c.field.Label != nil {
		if l := c.field.Label(record); l != "" {
			return l
		}
	}
	return fmt.Sprintf("record #%d", index)
}
