package store

import "errors"

// Sentinelas devolvidas pela camada de persistência. As regras de negócio
// traduzem para o erro de domínio adequado em cada operação.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)
