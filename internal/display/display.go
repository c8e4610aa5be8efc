package display

import (
	"fmt"
	"io"
	"os"

	"book_strategy/internal/models"
	"book_strategy/internal/textutil"
)

// Strategy выводит содержимое книги.
type Strategy interface {
	Display(book models.Book) error
}

// Console печатает текст книги как есть.
type Console struct {
	out io.Writer
}

// NewConsole создает стратегию; nil означает os.Stdout.
func NewConsole(out io.Writer) *Console {
	return &Console{out: writerOrStdout(out)}
}

// Display печатает Content и перевод строки.
func (c *Console) Display(book models.Book) error {
	if _, err := fmt.Fprintln(c.out, book.Content); err != nil {
		return fmt.Errorf("ошибка вывода: %w", err)
	}
	return nil
}

// Reverse печатает текст книги задом наперед.
type Reverse struct {
	out io.Writer
}

// NewReverse создает стратегию; nil означает os.Stdout.
func NewReverse(out io.Writer) *Reverse {
	return &Reverse{out: writerOrStdout(out)}
}

// Display печатает перевернутый Content и перевод строки.
func (r *Reverse) Display(book models.Book) error {
	if _, err := fmt.Fprintln(r.out, textutil.Reverse(book.Content)); err != nil {
		return fmt.Errorf("ошибка вывода: %w", err)
	}
	return nil
}

// Defaults возвращает стандартную таблицу стратегий отображения.
func Defaults(out io.Writer) map[string]Strategy {
	return map[string]Strategy{
		"console": NewConsole(out),
		"reverse": NewReverse(out),
	}
}

func writerOrStdout(out io.Writer) io.Writer {
	if out == nil {
		return os.Stdout
	}
	return out
}
