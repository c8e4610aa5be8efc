package models

import "fmt"

// Book хранит заголовок и текст книги.
// Поля не валидируются и не изменяются после создания.
type Book struct {
	Title   string
	Content string
}

// String возвращает короткое описание книги для логов.
func (b Book) String() string {
	return fmt.Sprintf("📚 %s (%d символов)", b.Title, len([]rune(b.Content)))
}
