package serializer

import (
	"encoding/xml"

	"book_strategy/internal/models"
)

// Serializer превращает книгу в текст. Реализации не имеют побочных эффектов.
type Serializer interface {
	Serialize(book models.Book) (string, error)
}

// Decoder восстанавливает книгу из текста, полученного от соответствующего Serializer.
type Decoder interface {
	Deserialize(text string) (models.Book, error)
}

// Codec объединяет обе стороны формата.
type Codec interface {
	Serializer
	Decoder
}

// bookDocument задает общую форму книги для json и xml.
type bookDocument struct {
	XMLName xml.Name `json:"-" xml:"book"`
	Title   string   `json:"title" xml:"title"`
	Content string   `json:"content" xml:"content"`
}

func newDocument(book models.Book) bookDocument {
	return bookDocument{Title: book.Title, Content: book.Content}
}

func (d bookDocument) book() models.Book {
	return models.Book{Title: d.Title, Content: d.Content}
}

// Defaults возвращает стандартную таблицу сериализаторов.
func Defaults() map[string]Serializer {
	return map[string]Serializer{
		"json": JSON{},
		"xml":  XML{},
		"html": HTML{},
	}
}
