package service

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sort"

	"book_strategy/internal/display"
	"book_strategy/internal/models"
	"book_strategy/internal/printer"
	"book_strategy/internal/serializer"
)

// Команды, которые понимает Execute.
const (
	CommandDisplay   = "display"
	CommandPrint     = "print"
	CommandSerialize = "serialize"
)

var (
	// ErrUnknownCommand: команда не входит в display/print/serialize.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrUnknownVariant: в таблице команды нет такого ключа.
	ErrUnknownVariant = errors.New("key not found")

	// ErrNotDecodable: сериализатор не умеет читать свой формат обратно.
	ErrNotDecodable = errors.New("serializer cannot decode")

	// ErrVerifyMismatch: после декодирования получилась другая книга.
	ErrVerifyMismatch = errors.New("decoded book differs from source")
)

// BookService владеет одной книгой и тремя неизменяемыми таблицами стратегий.
type BookService struct {
	book        models.Book
	displays    map[string]display.Strategy
	printers    map[string]printer.Strategy
	serializers map[string]serializer.Serializer
	logger      *log.Logger
}

// Option настраивает BookService при создании.
type Option func(*options)

type options struct {
	displays    map[string]display.Strategy
	printers    map[string]printer.Strategy
	serializers map[string]serializer.Serializer
	out         io.Writer
	logger      *log.Logger
}

// WithDisplayStrategies подменяет таблицу стратегий отображения.
func WithDisplayStrategies(table map[string]display.Strategy) Option {
	return func(o *options) { o.displays = table }
}

// WithPrintStrategies подменяет таблицу стратегий печати.
func WithPrintStrategies(table map[string]printer.Strategy) Option {
	return func(o *options) { o.printers = table }
}

// WithSerializers подменяет таблицу сериализаторов.
func WithSerializers(table map[string]serializer.Serializer) Option {
	return func(o *options) { o.serializers = table }
}

// WithOutput задает writer для стандартных таблиц display/print (по умолчанию os.Stdout).
// На таблицы, переданные через With*Strategies, не влияет.
func WithOutput(out io.Writer) Option {
	return func(o *options) { o.out = out }
}

func WithLogger(logger *log.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// New создает сервис вокруг книги. Пропущенные таблицы заменяются стандартными.
func New(book models.Book, opts ...Option) *BookService {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	if o.displays == nil {
		o.displays = display.Defaults(o.out)
	}
	if o.printers == nil {
		o.printers = printer.Defaults(o.out)
	}
	if o.serializers == nil {
		o.serializers = serializer.Defaults()
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard, "", 0)
	}

	return &BookService{
		book:        book,
		displays:    copyTable(o.displays),
		printers:    copyTable(o.printers),
		serializers: copyTable(o.serializers),
		logger:      o.logger,
	}
}

// Execute выполняет команду над книгой стратегией variant.
// Для serialize возвращает текст, для display и print пустую строку.
func (s *BookService) Execute(command, variant string) (string, error) {
	s.logger.Printf("execute %s/%s: %s", command, variant, s.book)

	switch command {
	case CommandDisplay:
		strategy, err := lookup(s.displays, command, variant)
		if err != nil {
			return "", err
		}
		if err := strategy.Display(s.book); err != nil {
			return "", fmt.Errorf("%s/%s: %w", command, variant, err)
		}
		return "", nil

	case CommandPrint:
		strategy, err := lookup(s.printers, command, variant)
		if err != nil {
			return "", err
		}
		if err := strategy.PrintBook(s.book); err != nil {
			return "", fmt.Errorf("%s/%s: %w", command, variant, err)
		}
		return "", nil

	case CommandSerialize:
		strategy, err := lookup(s.serializers, command, variant)
		if err != nil {
			return "", err
		}
		text, err := strategy.Serialize(s.book)
		if err != nil {
			return "", fmt.Errorf("%s/%s: %w", command, variant, err)
		}
		return text, nil

	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
}

// Variants возвращает отсортированные ключи таблицы команды.
func (s *BookService) Variants(command string) ([]string, error) {
	switch command {
	case CommandDisplay:
		return sortedKeys(s.displays), nil
	case CommandPrint:
		return sortedKeys(s.printers), nil
	case CommandSerialize:
		return sortedKeys(s.serializers), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
}

// Verify декодирует text сериализатором variant и сравнивает результат с книгой сервиса.
func (s *BookService) Verify(variant, text string) error {
	strategy, err := lookup(s.serializers, CommandSerialize, variant)
	if err != nil {
		return err
	}

	decoder, ok := strategy.(serializer.Decoder)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotDecodable, variant)
	}

	book, err := decoder.Deserialize(text)
	if err != nil {
		return fmt.Errorf("проверка %s: %w", variant, err)
	}
	if book != s.book {
		return fmt.Errorf("%w: %s: получили %+v, ожидали %+v", ErrVerifyMismatch, variant, book, s.book)
	}
	return nil
}

func lookup[T any](table map[string]T, command, variant string) (T, error) {
	strategy, ok := table[variant]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %s/%q", ErrUnknownVariant, command, variant)
	}
	return strategy, nil
}

func copyTable[T any](table map[string]T) map[string]T {
	out := make(map[string]T, len(table))
	for k, v := range table {
		out[k] = v
	}
	return out
}

func sortedKeys[T any](table map[string]T) []string {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
