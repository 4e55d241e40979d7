package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Só os caminhos que falham antes de qualquer consulta de DNS; resolução
// real não entra em teste de unidade.
func TestIsEmailDomainValidMalformed(t *testing.T) {
	ctx := context.Background()

	assert.False(t, IsEmailDomainValid(ctx, ""))
	assert.False(t, IsEmailDomainValid(ctx, "sem-arroba"))
	assert.False(t, IsEmailDomainValid(ctx, "@dominio.com"))
	assert.False(t, IsEmailDomainValid(ctx, "user@"))
	assert.False(t, IsEmailDomainValid(ctx, "user@dom inio.com"))
	assert.False(t, IsEmailDomainValid(ctx, "user@semponto"))
}
