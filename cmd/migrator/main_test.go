package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceDSN(t *testing.T) {
	tests := map[string]string{
		"postgres://u:p@db:5432/shop":   "pgx5://u:p@db:5432/shop",
		"postgresql://u:p@db:5432/shop": "pgx5://u:p@db:5432/shop",
		"u:p@db:5432/shop":              "pgx5://u:p@db:5432/shop",
	}
	for in, want := range tests {
		assert.Equal(t, want, sourceDSN(in), in)
	}
}
