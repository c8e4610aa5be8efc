package serializer

import (
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"book_strategy/internal/models"
)

// ErrInvalidJSON: текст не является корректным JSON.
var ErrInvalidJSON = errors.New("book json is not valid")

// JSON кодирует книгу как {"title":...,"content":...}.
type JSON struct{}

func (JSON) Serialize(book models.Book) (string, error) {
	data, err := jsoniter.ConfigFastest.Marshal(newDocument(book))
	if err != nil {
		return "", fmt.Errorf("ошибка сериализации json: %w", err)
	}
	return string(data), nil
}

func (JSON) Deserialize(text string) (models.Book, error) {
	if !jsoniter.ConfigFastest.Valid([]byte(text)) {
		return models.Book{}, ErrInvalidJSON
	}

	var doc bookDocument
	if err := jsoniter.ConfigFastest.UnmarshalFromString(text, &doc); err != nil {
		return models.Book{}, fmt.Errorf("ошибка разбора json: %w", err)
	}
	return doc.book(), nil
}
