package config

import (
	"errors"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultTitle   = "Sample Book"
	defaultContent = "This is some sample content."
	defaultSteps   = "display:reverse,serialize:xml"
)

// ErrEmptySteps: BOOK_STEPS задана, но не содержит ни одного шага.
var ErrEmptySteps = errors.New("переменная BOOK_STEPS пустая")

// Config хранит настройки демо-запуска.
type Config struct {
	Title   string
	Content string
	Steps   string
	Debug   bool
	Verify  bool
}

// Load считывает .env (если есть) и заполняет Config из окружения.
func Load(files ...string) (*Config, error) {
	// Файла может и не быть: тогда берем переменные окружения OS и значения по умолчанию
	if err := godotenv.Load(files...); err != nil {
		log.Println("Инфо: файл .env не найден, ищем переменные в окружении OS")
	}

	steps, stepsSet := os.LookupEnv("BOOK_STEPS")
	if !stepsSet {
		steps = defaultSteps
	}
	if stepsSet && strings.Trim(steps, " ,") == "" {
		return nil, ErrEmptySteps
	}

	return &Config{
		Title:   withDefault(os.Getenv("BOOK_TITLE"), defaultTitle),
		Content: withDefault(os.Getenv("BOOK_CONTENT"), defaultContent),
		Steps:   steps,
		Debug:   isSet("BOOK_DEBUG"),
		Verify:  isSet("BOOK_VERIFY"),
	}, nil
}

func withDefault(value string, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func isSet(key string) bool {
	return strings.TrimSpace(os.Getenv(key)) == "1"
}
