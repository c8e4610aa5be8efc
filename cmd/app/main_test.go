package main

import (
	"bytes"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"book_strategy/internal/config"
	"book_strategy/internal/models"
	"book_strategy/internal/runner"
	"book_strategy/internal/service"
)

func sampleConfig(steps string) *config.Config {
	return &config.Config{
		Title:   "Sample Book",
		Content: "This is some sample content.",
		Steps:   steps,
	}
}

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestRunDefaultSteps(t *testing.T) {
	var out bytes.Buffer

	err := run(sampleConfig("display:reverse,serialize:xml"), &out, quietLogger())

	require.NoError(t, err)
	assert.Equal(t, ".tnetnoc elpmas emos si sihT\n"+
		"<book><title>Sample Book</title><content>This is some sample content.</content></book>\n", out.String())
}

func TestRunNoResultForPrint(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, run(sampleConfig("print:console"), &out, quietLogger()))
	assert.Equal(t, "Printing the book: Sample Book...\nThis is some sample content.\n", out.String())
}

func TestRunUnknownVariantListsVariants(t *testing.T) {
	err := run(sampleConfig("display:nope"), &bytes.Buffer{}, quietLogger())

	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrUnknownVariant))
	assert.Contains(t, err.Error(), "display: console, reverse")
	assert.Contains(t, err.Error(), "print: console, reverse")
	assert.Contains(t, err.Error(), "serialize: html, json, xml")
}

func TestRunUnknownCommandListsVariants(t *testing.T) {
	err := run(sampleConfig("bogus:console"), &bytes.Buffer{}, quietLogger())

	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrUnknownCommand))
	assert.Contains(t, err.Error(), "Доступные команды:")
}

func TestRunInvalidSteps(t *testing.T) {
	err := run(sampleConfig("display"), &bytes.Buffer{}, quietLogger())

	require.Error(t, err)
	assert.True(t, errors.Is(err, runner.ErrInvalidStep))
	assert.NotContains(t, err.Error(), "Доступные команды:")
}

func TestRunVerifiesSerializedResult(t *testing.T) {
	for _, variant := range []string{"json", "xml", "html"} {
		t.Run(variant, func(t *testing.T) {
			var out, logs bytes.Buffer
			cfg := sampleConfig("display:console,serialize:" + variant)
			cfg.Verify = true
			cfg.Content = "Tom & Jerry <b>\"quoted\"</b>\nsecond line"

			require.NoError(t, run(cfg, &out, log.New(&logs, "", 0)))
			assert.Contains(t, logs.String(), "проверка "+variant+" пройдена")
		})
	}
}

func TestRunVerifySkippedWhenLastStepIsNotSerialize(t *testing.T) {
	var logs bytes.Buffer
	cfg := sampleConfig("serialize:json,display:console")
	cfg.Verify = true

	require.NoError(t, run(cfg, &bytes.Buffer{}, log.New(&logs, "", 0)))
	assert.NotContains(t, logs.String(), "проверка")
}

func TestUsage(t *testing.T) {
	svc := service.New(models.Book{Title: "Sample Book"}, service.WithOutput(&bytes.Buffer{}))

	assert.Equal(t, "Доступные команды:\n"+
		"  display: console, reverse\n"+
		"  print: console, reverse\n"+
		"  serialize: html, json, xml", usage(svc))
}
