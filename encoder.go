package lumen

import (
	"errors"

	"github.com/lumen-ui/lumen/lib/encoding"
)

// EncodeState serializes the component's property bag into a transportable
// snapshot using the registry's state encoder. Sensitive types produce
// encrypted snapshots; others are signed.
func (e *Element) EncodeState() (string, error) {
	enc := e.typ.reg.encoder
	if enc == nil {
		return "", ErrNoStateKey
	}
	return enc.EncodeState(e.Properties(), e.typ.sensitive)
}

// DecodeState restores properties from a snapshot produced by EncodeState.
// Restored properties go through SetProperty, so a decode schedules an
// update like any other property change.
func (e *Element) DecodeState(snapshot string) error {
	enc := e.typ.reg.encoder
	if enc == nil {
		return ErrNoStateKey
	}
	state, err := enc.DecodeState(snapshot, e.typ.sensitive)
	if err != nil {
		return wrapEncodingError(err)
	}
	for name, value := range state {
		e.SetProperty(name, value)
	}
	return nil
}

// wrapEncodingError translates encoding package errors to lumen sentinels.
func wrapEncodingError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, encoding.ErrInvalidFormat) {
		return ErrInvalidSnapshot
	}
	if errors.Is(err, encoding.ErrSignatureInvalid) {
		return ErrSignatureInvalid
	}
	if errors.Is(err, encoding.ErrDecryptFailed) {
		return ErrDecryptFailed
	}
	return err
}
