package tuxobj

import (
	"io"

	"github.com/google/uuid"
)

// UUID is 16 raw bytes with no length prefix.
type UUID uuid.UUID

// NewUUID returns a random (version 4) UUID.
func NewUUID() UUID { return UUID(uuid.New()) }

func (u UUID) String() string { return uuid.UUID(u).String() }

func (u UUID) WriteTo(w io.Writer) (int64, error) {
	return writeBytes(w, u[:])
}

func (UUID) Decode(r io.Reader) (UUID, error) {
	var u UUID
	if err := readFull(r, u[:]); err != nil {
		return UUID{}, err
	}
	return u, nil
}
