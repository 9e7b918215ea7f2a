package streamer

import (
	"bufio"
	"context"
	"time"

	"github.com/pkg/errors"
)

// Tamanhos de bloco usados pelas rotas de streaming
const (
	JSONChunkSize     = 100
	MarkdownChunkSize = 256

	DefaultDelay = 10 * time.Millisecond
)

// Deliver escreve o conteúdo em blocos de tamanho fixo com pausa entre eles,
// simulando entrega progressiva. O cancelamento do contexto interrompe o envio
// sem erro adicional além do próprio ctx.Err().
func Deliver(ctx context.Context, w *bufio.Writer, content string, chunkSize int, delay time.Duration) error {
	if chunkSize <= 0 {
		chunkSize = MarkdownChunkSize
	}
	runes := []rune(content)
	for start := 0; start < len(runes); start += chunkSize {
		if err := ctx.Err(); err != nil {
			return err
		}
		end := start + chunkSize
		if end > len(runes) {
			end = len(runes)
		}
		if _, err := w.WriteString(string(runes[start:end])); err != nil {
			return errors.Wrap(err, "erro ao escrever bloco do stream")
		}
		if err := w.Flush(); err != nil {
			return errors.Wrap(err, "erro ao descarregar bloco do stream")
		}
		if end < len(runes) && delay > 0 {
			time.Sleep(delay)
		}
	}
	return nil
}
