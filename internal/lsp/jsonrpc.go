package lsp

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// maxMessageSize bounds a single JSON-RPC payload. Larger frames are skipped.
var maxMessageSize = 32 << 20

var errMessageTooLarge = errors.New("lsp message too large")

// readMessage reads one Content-Length framed payload. A stream closed
// between messages yields io.EOF.
func readMessage(r *bufio.Reader) ([]byte, error) {
	length := -1
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return nil, err
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		name, value, ok := strings.Cut(line, ":")
		if !ok || !strings.EqualFold(strings.TrimSpace(name), "Content-Length") {
			// Content-Type и прочие заголовки не нужны
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid Content-Length %q", strings.TrimSpace(value))
		}
		length = n
	}
	if length < 0 {
		return nil, errors.New("missing Content-Length header")
	}
	if length > maxMessageSize {
		if _, err := r.Discard(length); err != nil {
			return nil, fmt.Errorf("skip oversized message: %w", err)
		}
		return nil, fmt.Errorf("%w: %d bytes", errMessageTooLarge, length)
	}
	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("read message body: %w", err)
	}
	return payload, nil
}

func writeMessage(w io.Writer, payload []byte) error {
	if _, err := fmt.Fprintf(w, "Content-Length: %d\r\n\r\n", len(payload)); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("write body: %w", err)
	}
	return nil
}
