package serializer

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"book_strategy/internal/models"
	"book_strategy/internal/parser"
)

// HTML рендерит книгу фрагментом <article class="book"><h1>title</h1><p>content</p></article>.
type HTML struct{}

func (HTML) Serialize(book models.Book) (string, error) {
	article := &html.Node{
		Type:     html.ElementNode,
		Data:     "article",
		DataAtom: atom.Article,
		Attr:     []html.Attribute{{Key: "class", Val: "book"}},
	}
	article.AppendChild(textElement(atom.H1, book.Title))
	article.AppendChild(textElement(atom.P, book.Content))

	var sb strings.Builder
	if err := html.Render(&sb, article); err != nil {
		return "", fmt.Errorf("ошибка рендера html: %w", err)
	}
	return sb.String(), nil
}

func (HTML) Deserialize(text string) (models.Book, error) {
	book, err := parser.ParseBookHTML(strings.NewReader(text))
	if err != nil {
		return models.Book{}, fmt.Errorf("ошибка разбора html: %w", err)
	}
	return book, nil
}

func textElement(a atom.Atom, text string) *html.Node {
	el := &html.Node{Type: html.ElementNode, Data: a.String(), DataAtom: a}
	el.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return el
}
