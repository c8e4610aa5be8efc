package runner

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/google/uuid"
)

// ErrInvalidStep возвращается ParseSteps для неверно записанной пары команда:вариант.
var ErrInvalidStep = errors.New("invalid step")

// Step описывает один вызов Execute.
type Step struct {
	Command string
	Variant string
}

func (s Step) String() string {
	return s.Command + ":" + s.Variant
}

// Executor выполняет одну команду. Реализуется service.BookService.
type Executor interface {
	Execute(command, variant string) (string, error)
}

// Runner прогоняет последовательность шагов через Executor.
type Runner struct {
	exec   Executor
	logger *log.Logger
}

// New создает Runner; nil logger означает "без логов".
func New(exec Executor, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Runner{exec: exec, logger: logger}
}

// Run выполняет шаги по порядку и возвращает результат последнего вызова
// (пустая строка, если последней была команда display или print).
// Первая ошибка прерывает последовательность; в тексте ошибки есть id запуска,
// тот же, что в строках лога.
func Run(exec Executor, steps []Step) (string, error) {
	return New(exec, nil).Run(steps)
}

func (r *Runner) Run(steps []Step) (string, error) {
	runID := uuid.New()
	r.logger.Printf("[%s] запуск: %d шагов", runID, len(steps))

	var result string
	for i, step := range steps {
		out, err := r.exec.Execute(step.Command, step.Variant)
		if err != nil {
			r.logger.Printf("[%s] шаг %d (%s) упал: %v", runID, i+1, step, err)
			return "", fmt.Errorf("запуск %s, шаг %d (%s): %w", runID, i+1, step, err)
		}
		r.logger.Printf("[%s] шаг %d (%s) выполнен", runID, i+1, step)
		result = out
	}

	return result, nil
}

// ParseSteps разбирает строку вида "display:reverse,serialize:xml".
// Пробелы вокруг элементов игнорируются, пустые элементы пропускаются.
func ParseSteps(raw string) ([]Step, error) {
	var steps []Step
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		command, variant, ok := strings.Cut(item, ":")
		command = strings.TrimSpace(command)
		variant = strings.TrimSpace(variant)
		if !ok || command == "" || variant == "" {
			return nil, fmt.Errorf("%w: %q (ожидается команда:вариант)", ErrInvalidStep, item)
		}

		steps = append(steps, Step{Command: command, Variant: variant})
	}
	return steps, nil
}
