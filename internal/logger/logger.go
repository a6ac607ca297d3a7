package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New инициализирует логгер сервиса. JSON формат и уровень Info по умолчанию,
// вне продакшн-режима gin переключается на текстовый вывод с уровнем Debug.
// Переменная окружения LOG_LEVEL имеет приоритет над обоими режимами.
func New(output io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(output)
	l.SetFormatter(new(logrus.JSONFormatter))
	l.SetLevel(logrus.InfoLevel)

	if os.Getenv("GIN_MODE") != "release" {
		l.SetLevel(logrus.DebugLevel)
		l.SetFormatter(new(logrus.TextFormatter))
	}

	if rawLevel := os.Getenv("LOG_LEVEL"); rawLevel != "" {
		if level, parseErr := logrus.ParseLevel(rawLevel); parseErr == nil {
			l.SetLevel(level)
		}
	}

	return l
}
