package serializer

import (
	"encoding/xml"
	"fmt"

	"book_strategy/internal/models"
)

// XML кодирует книгу как <book><title>...</title><content>...</content></book>.
type XML struct{}

func (XML) Serialize(book models.Book) (string, error) {
	data, err := xml.Marshal(newDocument(book))
	if err != nil {
		return "", fmt.Errorf("ошибка сериализации xml: %w", err)
	}
	return string(data), nil
}

// Deserialize требует корневой элемент <book>.
func (XML) Deserialize(text string) (models.Book, error) {
	var doc bookDocument
	if err := xml.Unmarshal([]byte(text), &doc); err != nil {
		return models.Book{}, fmt.Errorf("ошибка разбора xml: %w", err)
	}
	return doc.book(), nil
}
