package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"book_strategy/internal/config"
	"book_strategy/internal/models"
	"book_strategy/internal/runner"
	"book_strategy/internal/service"
)

func main() {
	// 1. Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Ошибка конфигурации: %v", err)
	}

	// 2. Логи шагов только в debug-режиме, чтобы не мешать выводу стратегий
	logger := log.New(io.Discard, "", 0)
	if cfg.Debug {
		logger = log.New(os.Stderr, "[book] ", log.LstdFlags)
	}

	if err := run(cfg, os.Stdout, logger); err != nil {
		log.Fatalf("Ошибка выполнения: %v", err)
	}
}

// run собирает книгу и сервис, прогоняет шаги и печатает в out результат последней команды.
func run(cfg *config.Config, out io.Writer, logger *log.Logger) error {
	steps, err := runner.ParseSteps(cfg.Steps)
	if err != nil {
		return err
	}

	// 3. Книга и сервис со стандартными таблицами стратегий
	book := models.Book{Title: cfg.Title, Content: cfg.Content}
	svc := service.New(book, service.WithOutput(out), service.WithLogger(logger))

	// 4. Прогон команд
	result, err := runner.New(svc, logger).Run(steps)
	if err != nil {
		if errors.Is(err, service.ErrUnknownCommand) || errors.Is(err, service.ErrUnknownVariant) {
			return fmt.Errorf("%w\n%s", err, usage(svc))
		}
		return err
	}

	// 5. BOOK_VERIFY=1: читаем результат serialize обратно и сверяем с книгой
	if cfg.Verify && len(steps) > 0 {
		if last := steps[len(steps)-1]; last.Command == service.CommandSerialize {
			if err := svc.Verify(last.Variant, result); err != nil {
				return err
			}
			logger.Printf("проверка %s пройдена", last.Variant)
		}
	}

	if result != "" {
		if _, err := fmt.Fprintln(out, result); err != nil {
			return fmt.Errorf("ошибка вывода результата: %w", err)
		}
	}
	return nil
}

// usage перечисляет доступные варианты для каждой команды.
func usage(svc *service.BookService) string {
	var sb strings.Builder
	sb.WriteString("Доступные команды:")
	for _, command := range []string{service.CommandDisplay, service.CommandPrint, service.CommandSerialize} {
		variants, err := svc.Variants(command)
		if err != nil {
			continue
		}
		fmt.Fprintf(&sb, "\n  %s: %s", command, strings.Join(variants, ", "))
	}
	return sb.String()
}
