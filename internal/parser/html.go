package parser

import (
	"errors"
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"

	"book_strategy/internal/models"
)

// ErrBookNotFound возвращается, если в документе нет элемента article.book.
var ErrBookNotFound = errors.New("элемент article.book не найден")

// ParseBookHTML принимает поток HTML (результат HTML-сериализатора) и восстанавливает книгу.
func ParseBookHTML(body io.Reader) (models.Book, error) {
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return models.Book{}, fmt.Errorf("ошибка чтения HTML: %w", err)
	}

	article := doc.Find("article.book").First()
	if article.Length() == 0 {
		return models.Book{}, ErrBookNotFound
	}

	// Берем только первые h1/p: заголовок и текст книги
	return models.Book{
		Title:   article.Find("h1").First().Text(),
		Content: article.Find("p").First().Text(),
	}, nil
}
