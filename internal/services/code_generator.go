package services

import (
	"context"
	"crypto/rand"
	"math/big"

	"github.com/mayaramilanesi/url-shortener-api/internal/models"
	"github.com/pkg/errors"
)

// defaultMaxAttempts лимит попыток генерации. При пространстве кодов 62^6
// коллизии единичны, лимит нужен только чтобы не зависнуть на патологически
// заполненном хранилище.
const defaultMaxAttempts = 10

// CodeChecker проверяет занятость кода в хранилище.
type CodeChecker interface {
	ExistsByCodeUnscoped(ctx context.Context, code string) (bool, error)
}

// CodeGeneratorOptions настройки генератора кодов.
type CodeGeneratorOptions struct {
	Alphabet    string // Алфавит кода
	Length      int    // Длина кода
	MaxAttempts int    // Лимит попыток генерации
}

// CodeGenerator генерирует короткие коды и гарантирует их уникальность
// в хранилище на момент генерации. Проверка занятости идет по всем записям,
// включая мягко удаленные - код однажды выданной ссылки не выдается повторно.
type CodeGenerator struct {
	checker     CodeChecker
	alphabet    string
	length      int
	maxAttempts int
}

// NewCodeGenerator создает генератор кодов.
//
// Параметры:
//   - checker: проверка занятости кода в хранилище
//   - opts: функции для настройки генератора
//
// Возвращает:
//   - *CodeGenerator: настроенный генератор
func NewCodeGenerator(checker CodeChecker, opts ...func(*CodeGeneratorOptions)) *CodeGenerator {
	options := CodeGeneratorOptions{
		Alphabet:    models.CodeAlphabet,
		Length:      models.CodeLength,
		MaxAttempts: defaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(&options)
	}
	return &CodeGenerator{
		checker:     checker,
		alphabet:    options.Alphabet,
		length:      options.Length,
		maxAttempts: options.MaxAttempts,
	}
}

// Generate возвращает код, свободный на момент проверки. Гонка двух
// одновременных генераций разрешается уникальным индексом хранилища при
// вставке, см. ShortURLService.Create.
func (g *CodeGenerator) Generate(ctx context.Context) (string, error) {
	for range g.maxAttempts {
		code, err := g.randomCode()
		if err != nil {
			return "", err
		}
		exists, checkErr := g.checker.ExistsByCodeUnscoped(ctx, code)
		if checkErr != nil {
			return "", errors.Wrap(checkErr, "check code uniqueness")
		}
		if !exists {
			return code, nil
		}
	}
	return "", errors.Wrapf(ErrCodeExhausted, "after %d attempts", g.maxAttempts)
}

func (g *CodeGenerator) randomCode() (string, error) {
	max := big.NewInt(int64(len(g.alphabet)))
	buf := make([]byte, g.length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", errors.Wrap(err, "read random source")
		}
		buf[i] = g.alphabet[n.Int64()]
	}
	return string(buf), nil
}
