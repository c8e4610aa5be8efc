package printer

import (
	"fmt"
	"io"
	"os"

	"book_strategy/internal/models"
	"book_strategy/internal/textutil"
)

// Strategy "печатает" книгу: строка-заголовок и затем текст.
type Strategy interface {
	PrintBook(book models.Book) error
}

// Console печатает заголовок и текст без изменений.
type Console struct {
	out io.Writer
}

// NewConsole создает стратегию; nil означает os.Stdout.
func NewConsole(out io.Writer) *Console {
	if out == nil {
		out = os.Stdout
	}
	return &Console{out: out}
}

// PrintBook пишет строку "Printing the book: {title}..." и затем текст.
func (c *Console) PrintBook(book models.Book) error {
	return writeLines(c.out, fmt.Sprintf("Printing the book: %s...", book.Title), book.Content)
}

// Reverse печатает заголовок и перевернутый текст.
type Reverse struct {
	out io.Writer
}

// NewReverse создает стратегию; nil означает os.Stdout.
func NewReverse(out io.Writer) *Reverse {
	if out == nil {
		out = os.Stdout
	}
	return &Reverse{out: out}
}

// PrintBook пишет строку "Printing the book in reverse: {title}..." и затем перевернутый текст.
func (r *Reverse) PrintBook(book models.Book) error {
	return writeLines(r.out, fmt.Sprintf("Printing the book in reverse: %s...", book.Title), textutil.Reverse(book.Content))
}

// Defaults возвращает стандартную таблицу стратегий печати.
func Defaults(out io.Writer) map[string]Strategy {
	return map[string]Strategy{
		"console": NewConsole(out),
		"reverse": NewReverse(out),
	}
}

func writeLines(w io.Writer, lines ...string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("ошибка печати: %w", err)
		}
	}
	return nil
}
