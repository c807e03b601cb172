package services

import (
	"context"
	"strings"
	"testing"

	"github.com/mayaramilanesi/url-shortener-api/internal/models"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCodeChecker проверяльщик занятости кодов для тестов.
type fakeCodeChecker struct {
	takenAttempts int // первые takenAttempts проверок отвечают "занято"
	alwaysTaken   bool
	calls         int
}

func (f *fakeCodeChecker) ExistsByCodeUnscoped(_ context.Context, _ string) (bool, error) {
	f.calls++
	if f.alwaysTaken {
		return true, nil
	}
	return f.calls <= f.takenAttempts, nil
}

func TestCodeGenerator_Generate(t *testing.T) {
	gen := NewCodeGenerator(&fakeCodeChecker{})

	seen := make(map[string]struct{})
	for range 100 {
		code, err := gen.Generate(context.Background())
		require.NoError(t, err)

		assert.Len(t, code, models.CodeLength)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(models.CodeAlphabet, r), "unexpected char %q in code %s", r, code)
		}
		seen[code] = struct{}{}
	}
	// При пространстве 62^6 сто кодов подряд не должны совпасть.
	assert.Len(t, seen, 100)
}

func TestCodeGenerator_Generate_RetriesOnCollision(t *testing.T) {
	checker := &fakeCodeChecker{takenAttempts: 3}
	gen := NewCodeGenerator(checker)

	code, err := gen.Generate(context.Background())
	require.NoError(t, err)
	assert.Len(t, code, models.CodeLength)
	assert.Equal(t, 4, checker.calls)
}

func TestCodeGenerator_Generate_Exhausted(t *testing.T) {
	checker := &fakeCodeChecker{alwaysTaken: true}
	gen := NewCodeGenerator(checker)

	_, err := gen.Generate(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCodeExhausted))
	assert.Equal(t, defaultMaxAttempts, checker.calls)
}

func TestCodeGenerator_Generate_CustomOptions(t *testing.T) {
	gen := NewCodeGenerator(&fakeCodeChecker{}, func(o *CodeGeneratorOptions) {
		o.Alphabet = "ab"
		o.Length = 12
	})

	code, err := gen.Generate(context.Background())
	require.NoError(t, err)
	assert.Len(t, code, 12)
	for _, r := range code {
		assert.Contains(t, []rune{'a', 'b'}, r)
	}
}
