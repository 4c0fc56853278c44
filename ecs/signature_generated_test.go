package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeneratedSignaturesMatchNewSignature(t *testing.T) {
	assert.Equal(t, NewSignature(1, 2), Sig2(1, 2))
	assert.Equal(t, NewSignature(1, 2, 3), Sig3(1, 2, 3))
	assert.Equal(t, NewSignature(1, 2, 3, 4), Sig4(1, 2, 3, 4))
	assert.Equal(t, NewSignature(1, 2, 3, 4, 5), Sig5(1, 2, 3, 4, 5))
	assert.Equal(t, NewSignature(1, 2, 3, 4, 5, 6), Sig6(1, 2, 3, 4, 5, 6))
	assert.Equal(t, NewSignature(1, 2, 3, 4, 5, 6, 7), Sig7(1, 2, 3, 4, 5, 6, 7))
	assert.Equal(t, NewSignature(1, 2, 3, 4, 5, 6, 7, 8), Sig8(1, 2, 3, 4, 5, 6, 7, 8))
}
