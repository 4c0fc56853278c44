package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSignaturePreservesDeclaredOrder(t *testing.T) {
	sig := NewSignature(30, 10, 20)

	assert.Equal(t, 3, sig.Len())
	assert.Equal(t, Entity(30), sig.At(0))
	assert.Equal(t, Entity(10), sig.At(1))
	assert.Equal(t, Entity(20), sig.At(2))
}

func TestNewSignatureNAndSet(t *testing.T) {
	sig := NewSignatureN(2)
	sig.Set(0, 7)
	sig.Set(1, 9)

	assert.Equal(t, Entity(7), sig.At(0))
	assert.Equal(t, Entity(9), sig.At(1))
}

func TestSignatureSetOutOfRangePanics(t *testing.T) {
	sig := NewSignatureN(1)
	assert.Panics(t, func() {
		sig.Set(5, 1)
	})
}

func TestSignatureAsTypeSortsAndDedupes(t *testing.T) {
	sig := NewSignature(30, 10, 10, 20)

	ty := sig.AsType()

	assert.Equal(t, 3, ty.Len())
	assert.Equal(t, Entity(10), ty.At(0))
	assert.Equal(t, Entity(20), ty.At(1))
	assert.Equal(t, Entity(30), ty.At(2))
}
