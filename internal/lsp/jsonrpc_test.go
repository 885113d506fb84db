package lsp

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestJSONRPCFramingMultipleMessages(t *testing.T) {
	var buf bytes.Buffer
	msgs := [][]byte{
		[]byte(`{"jsonrpc":"2.0","id":1,"method":"textDocument/completion"}`),
		[]byte(`{"jsonrpc":"2.0","method":"textDocument/didChange"}`),
	}
	for i, msg := range msgs {
		if err := writeMessage(&buf, msg); err != nil {
			t.Fatalf("write message %d: %v", i, err)
		}
	}

	reader := bufio.NewReader(bytes.NewReader(buf.Bytes()))
	for i, want := range msgs {
		got, err := readMessage(reader)
		if err != nil {
			t.Fatalf("read message %d: %v", i, err)
		}
		if !bytes.Equal(got, want) {
			t.Fatalf("message %d = %s, want %s", i, got, want)
		}
	}
	if _, err := readMessage(reader); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF after last message, got %v", err)
	}
}

func TestReadMessageHeaders(t *testing.T) {
	cases := []struct {
		name    string
		frame   string
		want    string
		wantErr string
	}{
		{
			name:  "extra headers and lower case",
			frame: "Content-Type: application/vscode-jsonrpc; charset=utf-8\r\ncontent-length: 2\r\n\r\n{}",
			want:  "{}",
		},
		{
			name:    "missing length",
			frame:   "Content-Type: x\r\n\r\n{}",
			wantErr: "missing Content-Length",
		},
		{
			name:    "bad length",
			frame:   "Content-Length: -3\r\n\r\n{}",
			wantErr: "invalid Content-Length",
		},
		{
			name:    "truncated body",
			frame:   "Content-Length: 10\r\n\r\n{}",
			wantErr: "read message body",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := readMessage(bufio.NewReader(strings.NewReader(tc.frame)))
			if tc.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
					t.Fatalf("err = %v, want %q", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("readMessage: %v", err)
			}
			if string(got) != tc.want {
				t.Fatalf("payload = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestReadMessageSkipsOversized(t *testing.T) {
	orig := maxMessageSize
	maxMessageSize = 8
	t.Cleanup(func() { maxMessageSize = orig })

	var buf bytes.Buffer
	big := []byte(`{"jsonrpc":"2.0","method":"textDocument/didOpen"}`)
	small := []byte(`{"a":1}`)
	if err := writeMessage(&buf, big); err != nil {
		t.Fatal(err)
	}
	if err := writeMessage(&buf, small); err != nil {
		t.Fatal(err)
	}
	reader := bufio.NewReader(&buf)
	if _, err := readMessage(reader); !errors.Is(err, errMessageTooLarge) {
		t.Fatalf("expected errMessageTooLarge, got %v", err)
	}
	got, err := readMessage(reader)
	if err != nil {
		t.Fatalf("read after oversized: %v", err)
	}
	if !bytes.Equal(got, small) {
		t.Fatalf("payload = %s, want %s", got, small)
	}
}
