// Package lexer — однопроходный лексер JS/TS-подобного языка.
//
// Вход — *source.File, выход — поток token.Token плюс диагностики через
// diag.Reporter. Лексер не останавливается на ошибках: диагностика
// записывается, скан продолжается. Единственное исключение — символ,
// не открывающий ни одного класса токенов: по нему поток завершается
// и Next навсегда возвращает EOF.
//
// Все позиции — в символах, не в байтах (см. internal/source).
package lexer
